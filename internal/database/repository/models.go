package repository

import "time"

// LayoutEntry represents a persisted splitter row.
type LayoutEntry struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}
