package book

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a book does not exist.
var ErrNotFound = errors.New("book not found")

// ErrNoAuthors is returned when a book is written with an empty author list.
var ErrNoAuthors = errors.New("book needs at least one author")

// ReferenceError reports an author or publisher id that did not resolve
// to an existing record at write time.
type ReferenceError struct {
	Entity string
	ID     string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s with ID %s does not exist.", e.Entity, e.ID)
}

// AuthorSnapshot is a denormalized copy of an author, frozen at the time
// the book was written. Later edits to the author never change it.
type AuthorSnapshot struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DNI         string `json:"dni"`
	Nationality string `json:"nationality"`
}

// PublisherSnapshot is a denormalized copy of an editorial, frozen at the
// time the book was written.
type PublisherSnapshot struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	CUIT    string `json:"cuit"`
}

// Book represents a catalog entry. Authors and Publisher are snapshots
// owned by the book, not live references.
type Book struct {
	ID          string            `json:"id"`
	Authors     []AuthorSnapshot  `json:"authors"`
	Publisher   PublisherSnapshot `json:"publisher"`
	Title       string            `json:"title"`
	Genre       string            `json:"genre"`
	Price       float64           `json:"price"`
	ReleaseDate time.Time         `json:"releaseDate"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// Query defines the filter and pagination for listing books. Page is
// 1-indexed.
type Query struct {
	Genre string
	Page  int
	Limit int
}

// Input carries the book fields accepted on create and update. Author and
// publisher ids are resolved against the live records before persisting.
type Input struct {
	AuthorIDs   []string
	PublisherID string
	Title       string
	Genre       string
	Price       float64
	ReleaseDate string
	Description string
}
