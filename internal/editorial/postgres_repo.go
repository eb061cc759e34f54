package editorial

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code raised by the unique index
// on editorials.cuit.
const uniqueViolation = "23505"

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

func isDuplicateCUIT(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (r *PostgresRepo) Insert(ctx context.Context, e Editorial) error {
	const sql = `
		INSERT INTO editorials (id, name, address, cuit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, sql,
		e.ID, e.Name, e.Address, e.CUIT, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isDuplicateCUIT(err) {
			return ErrDuplicateCUIT
		}
		return err
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Editorial, error) {
	const query = `
		SELECT id, name, address, cuit, created_at, updated_at
		FROM editorials
		ORDER BY created_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Editorial{}
	for rows.Next() {
		var e Editorial
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Address, &e.CUIT, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Editorial, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Editorial{}, ErrNotFound
	}

	const query = `
		SELECT id, name, address, cuit, created_at, updated_at
		FROM editorials
		WHERE id = $1`

	var e Editorial
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&e.ID, &e.Name, &e.Address, &e.CUIT, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Editorial{}, ErrNotFound
		}
		return Editorial{}, err
	}
	return e, nil
}

func (r *PostgresRepo) Update(ctx context.Context, e Editorial) (Editorial, error) {
	if _, err := uuid.Parse(e.ID); err != nil {
		return Editorial{}, ErrNotFound
	}

	const sql = `
		UPDATE editorials
		SET name = $2, address = $3, cuit = $4, updated_at = $5
		WHERE id = $1
		RETURNING created_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, sql,
		e.ID, e.Name, e.Address, e.CUIT, e.UpdatedAt,
	).Scan(&e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Editorial{}, ErrNotFound
		}
		if isDuplicateCUIT(err) {
			return Editorial{}, ErrDuplicateCUIT
		}
		return Editorial{}, err
	}
	return e, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM editorials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
