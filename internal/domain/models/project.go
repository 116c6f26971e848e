package models

import (
	"time"
)

// Project is a named grouping that entries may reference. BasePath, when set,
// pre-fills the capture form's workspace path.
type Project struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	BasePath  *string   `json:"base_path,omitempty" db:"base_path"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
