package author

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Insert(ctx context.Context, a Author) error {
	const sql = `
		INSERT INTO authors (id, first_name, last_name, dni, nationality, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, sql,
		a.ID, a.FirstName, a.LastName, a.DNI, a.Nationality, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert author: %w", err)
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Author, error) {
	const query = `
		SELECT id, first_name, last_name, dni, nationality, created_at, updated_at
		FROM authors
		ORDER BY created_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Author{}
	for rows.Next() {
		var a Author
		if err := rows.Scan(
			&a.ID, &a.FirstName, &a.LastName, &a.DNI, &a.Nationality,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Author, error) {
	// A malformed id can never match a stored row.
	if _, err := uuid.Parse(id); err != nil {
		return Author{}, ErrNotFound
	}

	const query = `
		SELECT id, first_name, last_name, dni, nationality, created_at, updated_at
		FROM authors
		WHERE id = $1`

	var a Author
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.DNI, &a.Nationality,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, ErrNotFound
		}
		return Author{}, err
	}
	return a, nil
}

func (r *PostgresRepo) Update(ctx context.Context, a Author) (Author, error) {
	if _, err := uuid.Parse(a.ID); err != nil {
		return Author{}, ErrNotFound
	}

	const sql = `
		UPDATE authors
		SET first_name = $2, last_name = $3, dni = $4, nationality = $5, updated_at = $6
		WHERE id = $1
		RETURNING created_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, sql,
		a.ID, a.FirstName, a.LastName, a.DNI, a.Nationality, a.UpdatedAt,
	).Scan(&a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, ErrNotFound
		}
		return Author{}, err
	}
	return a, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
