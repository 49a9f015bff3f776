package industry

import "time"

// Document is a task record stored in its encoded text form
type Document struct {
	ID        string
	Name      string
	Kind      Kind
	Body      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
