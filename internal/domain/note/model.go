package note

import "time"

// Note is a user-authored text record with an optional color tag.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}
