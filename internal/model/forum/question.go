package forum

import "time"

// Question is a top-level board entry. Questions are never mutated or
// deleted once created.
type Question struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
