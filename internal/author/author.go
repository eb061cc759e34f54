package author

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an author does not exist.
var ErrNotFound = errors.New("author not found")

// ErrInvalidDNI is returned when the national id is not 8 digits.
var ErrInvalidDNI = errors.New("invalid DNI format")

// Author represents a book author.
type Author struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DNI         string    `json:"dni"`
	Nationality string    `json:"nationality"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Input carries the author fields accepted on create and update.
type Input struct {
	FirstName   string
	LastName    string
	DNI         string
	Nationality string
}
