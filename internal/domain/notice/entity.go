package notice

import "time"

// Notice is an announcement published by an admin for all members.
type Notice struct {
	ID          string
	AuthorID    string
	Title       string
	Body        string
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	AuthorName *string
}
