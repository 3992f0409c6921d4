package models

// UserRef is an entry in the remote user directory, consumed when
// resolving assignment labels.
type UserRef struct {
	ID          string `json:"_id"`
	DisplayName string `json:"name"`
}

// UserDirectory indexes users by id for O(1) display-name lookup.
type UserDirectory map[string]string

// NewUserDirectory builds a directory from the remote lookup result.
func NewUserDirectory(users []UserRef) UserDirectory {
	dir := make(UserDirectory, len(users))
	for _, u := range users {
		dir[u.ID] = u.DisplayName
	}
	return dir
}

// DisplayName resolves a user id, returning "Unassigned" for unknown ids
// and the unassigned sentinel.
func (d UserDirectory) DisplayName(id string) string {
	if id == "" || id == Unassigned {
		return "Unassigned"
	}
	if name, ok := d[id]; ok {
		return name
	}
	return "Unassigned"
}
