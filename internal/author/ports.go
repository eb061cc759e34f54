package author

import (
	"context"
)

// Repository defines the contract for author data storage.
type Repository interface {
	Insert(ctx context.Context, a Author) error
	List(ctx context.Context) ([]Author, error)
	GetByID(ctx context.Context, id string) (Author, error)
	Update(ctx context.Context, a Author) (Author, error)
	Delete(ctx context.Context, id string) error
}
