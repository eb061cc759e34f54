package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"libreria/internal/author"
	"libreria/internal/editorial"
	"libreria/internal/validate"

	"github.com/google/uuid"
)

// Service provides book-related business logic. The write path resolves
// every author and publisher reference before touching the store, so a
// failed resolution never leaves a partial write behind.
type Service struct {
	repo       Repository
	authors    AuthorDirectory
	publishers PublisherDirectory
}

func NewService(repo Repository, authors AuthorDirectory, publishers PublisherDirectory) *Service {
	return &Service{repo: repo, authors: authors, publishers: publishers}
}

// resolved holds the outcome of reference resolution for a book write.
type resolved struct {
	authors     []AuthorSnapshot
	publisher   PublisherSnapshot
	releaseDate time.Time
}

// resolve checks every referenced author and the publisher in input order,
// short-circuiting on the first missing one, and normalizes the release
// date. No persistence happens here.
func (s *Service) resolve(ctx context.Context, in Input) (resolved, error) {
	if len(in.AuthorIDs) == 0 {
		return resolved{}, ErrNoAuthors
	}

	snapshots := make([]AuthorSnapshot, 0, len(in.AuthorIDs))
	for _, id := range in.AuthorIDs {
		a, err := s.authors.Get(ctx, id)
		if err != nil {
			if errors.Is(err, author.ErrNotFound) {
				return resolved{}, &ReferenceError{Entity: "Author", ID: id}
			}
			return resolved{}, fmt.Errorf("resolving author %s: %w", id, err)
		}
		snapshots = append(snapshots, AuthorSnapshot{
			ID:          a.ID,
			FirstName:   a.FirstName,
			LastName:    a.LastName,
			DNI:         a.DNI,
			Nationality: a.Nationality,
		})
	}

	e, err := s.publishers.Get(ctx, in.PublisherID)
	if err != nil {
		if errors.Is(err, editorial.ErrNotFound) {
			return resolved{}, &ReferenceError{Entity: "Publisher", ID: in.PublisherID}
		}
		return resolved{}, fmt.Errorf("resolving publisher %s: %w", in.PublisherID, err)
	}

	releaseDate, err := validate.NormalizeDate(in.ReleaseDate)
	if err != nil {
		return resolved{}, err
	}

	return resolved{
		authors: snapshots,
		publisher: PublisherSnapshot{
			ID:      e.ID,
			Name:    e.Name,
			Address: e.Address,
			CUIT:    e.CUIT,
		},
		releaseDate: releaseDate,
	}, nil
}

// Create resolves all references and persists a new book embedding the
// resolved snapshots, not the raw ids.
func (s *Service) Create(ctx context.Context, in Input) (Book, error) {
	res, err := s.resolve(ctx, in)
	if err != nil {
		return Book{}, err
	}

	now := time.Now().UTC()
	b := Book{
		ID:          uuid.NewString(),
		Authors:     res.authors,
		Publisher:   res.publisher,
		Title:       in.Title,
		Genre:       in.Genre,
		Price:       in.Price,
		ReleaseDate: res.releaseDate,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, b); err != nil {
		return Book{}, fmt.Errorf("inserting book: %w", err)
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, q Query) ([]Book, int, error) {
	return s.repo.List(ctx, q)
}

func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Update re-runs the same reference resolution as Create and stores fresh
// snapshots. References are checked before the book's own existence, so a
// bad reference reports 400 even when the book id is unknown.
func (s *Service) Update(ctx context.Context, id string, in Input) (Book, error) {
	res, err := s.resolve(ctx, in)
	if err != nil {
		return Book{}, err
	}

	b := Book{
		ID:          id,
		Authors:     res.authors,
		Publisher:   res.publisher,
		Title:       in.Title,
		Genre:       in.Genre,
		Price:       in.Price,
		ReleaseDate: res.releaseDate,
		Description: in.Description,
		UpdatedAt:   time.Now().UTC(),
	}
	return s.repo.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
