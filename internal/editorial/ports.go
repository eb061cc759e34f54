package editorial

import (
	"context"
)

// Repository defines the contract for editorial data storage.
type Repository interface {
	Insert(ctx context.Context, e Editorial) error
	List(ctx context.Context) ([]Editorial, error)
	GetByID(ctx context.Context, id string) (Editorial, error)
	Update(ctx context.Context, e Editorial) (Editorial, error)
	Delete(ctx context.Context, id string) error
}
