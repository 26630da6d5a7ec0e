package storage

import "time"

// DocumentRecord is one saved document in the database.
type DocumentRecord struct {
	Name      string // Document name, the store key
	Content   string // Raw JSON block sequence
	CreatedAt time.Time
	UpdatedAt time.Time
}
