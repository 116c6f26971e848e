package models

import "time"

// EntryFilter narrows an entry query. Zero-value fields are ignored.
type EntryFilter struct {
	// Start and End bound the entry timestamp at day granularity,
	// inclusive on both ends.
	Start *time.Time
	End   *time.Time

	// Tag matches case-insensitively as a substring of the entry's stored
	// tag list.
	Tag string

	// ProjectID is an exact match on the referenced project.
	ProjectID *int64

	// Text matches title, notes, or linked paths (substring).
	Text string
}
