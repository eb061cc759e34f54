package book

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo stores books with the author and publisher snapshots as
// JSONB documents inside the row.
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

func marshalSnapshots(b Book) ([]byte, []byte, error) {
	authors, err := json.Marshal(b.Authors)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal author snapshots: %w", err)
	}
	publisher, err := json.Marshal(b.Publisher)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal publisher snapshot: %w", err)
	}
	return authors, publisher, nil
}

func scanBook(row pgx.Row) (Book, error) {
	var (
		b             Book
		authorsJSON   []byte
		publisherJSON []byte
	)
	err := row.Scan(
		&b.ID, &authorsJSON, &publisherJSON, &b.Title, &b.Genre, &b.Price,
		&b.ReleaseDate, &b.Description, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return Book{}, err
	}
	if err := json.Unmarshal(authorsJSON, &b.Authors); err != nil {
		return Book{}, fmt.Errorf("unmarshal author snapshots: %w", err)
	}
	if err := json.Unmarshal(publisherJSON, &b.Publisher); err != nil {
		return Book{}, fmt.Errorf("unmarshal publisher snapshot: %w", err)
	}
	return b, nil
}

func (r *PostgresRepo) Insert(ctx context.Context, b Book) error {
	authors, publisher, err := marshalSnapshots(b)
	if err != nil {
		return err
	}

	const sql = `
		INSERT INTO books (id, authors, publisher, title, genre, price, release_date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err = r.db.Exec(timeoutCtx, sql,
		b.ID, authors, publisher, b.Title, b.Genre, b.Price,
		b.ReleaseDate, b.Description, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, int, error) {
	where := ""
	args := []any{}
	if q.Genre != "" {
		where = "WHERE genre = $1"
		args = append(args, q.Genre)
	}

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM books %s", where)
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT id, authors, publisher, title, genre, price, release_date, description, created_at, updated_at
		FROM books
		%s
		ORDER BY created_at
		LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)

	args = append(args, q.Limit, (q.Page-1)*q.Limit)
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Book{}, ErrNotFound
	}

	const query = `
		SELECT id, authors, publisher, title, genre, price, release_date, description, created_at, updated_at
		FROM books
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Update(ctx context.Context, b Book) (Book, error) {
	if _, err := uuid.Parse(b.ID); err != nil {
		return Book{}, ErrNotFound
	}

	authors, publisher, err := marshalSnapshots(b)
	if err != nil {
		return Book{}, err
	}

	const sql = `
		UPDATE books
		SET authors = $2, publisher = $3, title = $4, genre = $5, price = $6,
		    release_date = $7, description = $8, updated_at = $9
		WHERE id = $1
		RETURNING created_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err = r.db.QueryRow(timeoutCtx, sql,
		b.ID, authors, publisher, b.Title, b.Genre, b.Price,
		b.ReleaseDate, b.Description, b.UpdatedAt,
	).Scan(&b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
