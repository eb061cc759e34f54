package book

import (
	"context"

	"libreria/internal/author"
	"libreria/internal/editorial"
)

// Repository defines the contract for book data storage.
type Repository interface {
	Insert(ctx context.Context, b Book) error
	List(ctx context.Context, q Query) ([]Book, int, error)
	GetByID(ctx context.Context, id string) (Book, error)
	Update(ctx context.Context, b Book) (Book, error)
	Delete(ctx context.Context, id string) error
}

// AuthorDirectory resolves author ids to live author records.
// *author.Service satisfies it.
type AuthorDirectory interface {
	Get(ctx context.Context, id string) (author.Author, error)
}

// PublisherDirectory resolves editorial ids to live editorial records.
// *editorial.Service satisfies it.
type PublisherDirectory interface {
	Get(ctx context.Context, id string) (editorial.Editorial, error)
}
