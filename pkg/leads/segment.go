package leads

import "github.com/jordanlanch/realtycrm/pkg/models"

// SegmentByTemperature partitions an already-filtered set into status
// buckets. Buckets are mutually exclusive and exhaustive: a lead with no
// status counts under the documented default ("cold"), so the counts
// always sum to the set size. Only non-empty buckets appear.
func SegmentByTemperature(filtered []models.Lead) map[models.Status]int {
	buckets := make(map[models.Status]int)
	for _, lead := range filtered {
		buckets[lead.DisplayStatus()]++
	}
	return buckets
}

// SegmentByLocation counts a lead under every bucket its primary location
// or any nested preferred location matches. A lead relevant to several
// regions appears in each of them, so bucket counts may sum to more than
// the set size. Only non-empty buckets appear.
func SegmentByLocation(filtered []models.Lead) map[models.Location]int {
	buckets := make(map[models.Location]int)
	for _, lead := range filtered {
		seen := make(map[models.Location]bool, 1+len(lead.PropertyPreferences.Locations))
		if lead.Location != "" {
			seen[lead.Location] = true
		}
		for _, loc := range lead.PropertyPreferences.Locations {
			if loc != "" {
				seen[loc] = true
			}
		}
		for loc := range seen {
			buckets[loc]++
		}
	}
	return buckets
}

// Segment derives both bucketings from the same filtered set.
func Segment(filtered []models.Lead) models.Segments {
	return models.Segments{
		Temperature: SegmentByTemperature(filtered),
		Location:    SegmentByLocation(filtered),
	}
}
