package handlers

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/realtycrm/pkg/leads"
	"github.com/jordanlanch/realtycrm/pkg/models"
)

// UserHandler serves the assignable-user directory.
type UserHandler struct {
	service *leads.Service
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service *leads.Service) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers returns the known users sorted by display name.
func (h *UserHandler) ListUsers(c echo.Context) error {
	directory := h.service.Users()

	users := make([]models.UserRef, 0, len(directory))
	for id, name := range directory {
		users = append(users, models.UserRef{ID: id, DisplayName: name})
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].DisplayName < users[j].DisplayName
	})

	return c.JSON(http.StatusOK, users)
}
