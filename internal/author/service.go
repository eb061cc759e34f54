package author

import (
	"context"
	"fmt"
	"time"

	"libreria/internal/validate"

	"github.com/google/uuid"
)

// Service provides author-related business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the DNI and persists a new author.
func (s *Service) Create(ctx context.Context, in Input) (Author, error) {
	if !validate.DNI(in.DNI) {
		return Author{}, ErrInvalidDNI
	}

	now := time.Now().UTC()
	a := Author{
		ID:          uuid.NewString(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DNI:         in.DNI,
		Nationality: in.Nationality,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return Author{}, fmt.Errorf("inserting author: %w", err)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Author, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Author, error) {
	return s.repo.GetByID(ctx, id)
}

// Update validates the DNI and replaces the author's fields.
func (s *Service) Update(ctx context.Context, id string, in Input) (Author, error) {
	if !validate.DNI(in.DNI) {
		return Author{}, ErrInvalidDNI
	}

	a := Author{
		ID:          id,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DNI:         in.DNI,
		Nationality: in.Nationality,
		UpdatedAt:   time.Now().UTC(),
	}
	return s.repo.Update(ctx, a)
}

// Delete removes the author. Books keep their snapshotted author data,
// so no cascade is needed.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
