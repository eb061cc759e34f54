package editorial

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an editorial does not exist.
var ErrNotFound = errors.New("editorial not found")

// ErrInvalidCUIT is returned when the tax id does not match NN-NNNNNNNN-N.
var ErrInvalidCUIT = errors.New("invalid CUIT format")

// ErrDuplicateCUIT is returned when another editorial already holds the
// same CUIT. Uniqueness is enforced by the store.
var ErrDuplicateCUIT = errors.New("duplicate CUIT")

// Editorial represents a publishing house.
type Editorial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CUIT      string    `json:"cuit"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Input carries the editorial fields accepted on create and update.
type Input struct {
	Name    string
	Address string
	CUIT    string
}
