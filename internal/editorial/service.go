package editorial

import (
	"context"
	"fmt"
	"time"

	"libreria/internal/validate"

	"github.com/google/uuid"
)

// Service provides editorial-related business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the CUIT and persists a new editorial. The store
// rejects a CUIT already held by another editorial.
func (s *Service) Create(ctx context.Context, in Input) (Editorial, error) {
	if !validate.CUIT(in.CUIT) {
		return Editorial{}, ErrInvalidCUIT
	}

	now := time.Now().UTC()
	e := Editorial{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Address:   in.Address,
		CUIT:      in.CUIT,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, e); err != nil {
		return Editorial{}, fmt.Errorf("inserting editorial: %w", err)
	}
	return e, nil
}

func (s *Service) List(ctx context.Context) ([]Editorial, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Editorial, error) {
	return s.repo.GetByID(ctx, id)
}

// Update validates the CUIT and replaces the editorial's fields.
func (s *Service) Update(ctx context.Context, id string, in Input) (Editorial, error) {
	if !validate.CUIT(in.CUIT) {
		return Editorial{}, ErrInvalidCUIT
	}

	e := Editorial{
		ID:        id,
		Name:      in.Name,
		Address:   in.Address,
		CUIT:      in.CUIT,
		UpdatedAt: time.Now().UTC(),
	}
	return s.repo.Update(ctx, e)
}

// Delete removes the editorial. Books keep their snapshotted publisher
// data, so no cascade is needed.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
