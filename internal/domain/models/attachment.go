package models

import (
	"fmt"
	"time"
)

// Attachment is a file stored under an entry-specific directory.
type Attachment struct {
	ID        int64     `json:"id" db:"id"`
	EntryID   int64     `json:"entry_id" db:"entry_id"`
	Filename  string    `json:"filename" db:"filename"`
	RelPath   string    `json:"rel_path" db:"rel_path"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AttachmentDirName returns the per-entry directory name under the
// attachments root.
func AttachmentDirName(entryID int64) string {
	return fmt.Sprintf("entry_%d", entryID)
}
