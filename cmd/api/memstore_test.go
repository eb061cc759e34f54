package main

import (
	"context"
	"sync"

	"libreria/internal/author"
	"libreria/internal/book"
	"libreria/internal/editorial"
)

// In-memory repositories backing the end-to-end routing tests. They keep
// insertion order and mirror the error contract of the Postgres repos.

type memAuthorRepo struct {
	mu    sync.Mutex
	byID  map[string]author.Author
	order []string
}

func newMemAuthorRepo() *memAuthorRepo {
	return &memAuthorRepo{byID: map[string]author.Author{}}
}

func (m *memAuthorRepo) Insert(ctx context.Context, a author.Author) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[a.ID] = a
	m.order = append(m.order, a.ID)
	return nil
}

func (m *memAuthorRepo) List(ctx context.Context) ([]author.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []author.Author{}
	for _, id := range m.order {
		if a, ok := m.byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAuthorRepo) GetByID(ctx context.Context, id string) (author.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return author.Author{}, author.ErrNotFound
	}
	return a, nil
}

func (m *memAuthorRepo) Update(ctx context.Context, a author.Author) (author.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.byID[a.ID]
	if !ok {
		return author.Author{}, author.ErrNotFound
	}
	a.CreatedAt = old.CreatedAt
	m.byID[a.ID] = a
	return a, nil
}

func (m *memAuthorRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return author.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memEditorialRepo struct {
	mu    sync.Mutex
	byID  map[string]editorial.Editorial
	order []string
}

func newMemEditorialRepo() *memEditorialRepo {
	return &memEditorialRepo{byID: map[string]editorial.Editorial{}}
}

func (m *memEditorialRepo) Insert(ctx context.Context, e editorial.Editorial) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, other := range m.byID {
		if other.CUIT == e.CUIT {
			return editorial.ErrDuplicateCUIT
		}
	}
	m.byID[e.ID] = e
	m.order = append(m.order, e.ID)
	return nil
}

func (m *memEditorialRepo) List(ctx context.Context) ([]editorial.Editorial, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []editorial.Editorial{}
	for _, id := range m.order {
		if e, ok := m.byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memEditorialRepo) GetByID(ctx context.Context, id string) (editorial.Editorial, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byID[id]
	if !ok {
		return editorial.Editorial{}, editorial.ErrNotFound
	}
	return e, nil
}

func (m *memEditorialRepo) Update(ctx context.Context, e editorial.Editorial) (editorial.Editorial, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.byID[e.ID]
	if !ok {
		return editorial.Editorial{}, editorial.ErrNotFound
	}
	for id, other := range m.byID {
		if id != e.ID && other.CUIT == e.CUIT {
			return editorial.Editorial{}, editorial.ErrDuplicateCUIT
		}
	}
	e.CreatedAt = old.CreatedAt
	m.byID[e.ID] = e
	return e, nil
}

func (m *memEditorialRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return editorial.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memBookRepo struct {
	mu    sync.Mutex
	byID  map[string]book.Book
	order []string
}

func newMemBookRepo() *memBookRepo {
	return &memBookRepo{byID: map[string]book.Book{}}
}

func (m *memBookRepo) Insert(ctx context.Context, b book.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[b.ID] = b
	m.order = append(m.order, b.ID)
	return nil
}

func (m *memBookRepo) List(ctx context.Context, q book.Query) ([]book.Book, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matching := []book.Book{}
	for _, id := range m.order {
		b, ok := m.byID[id]
		if !ok {
			continue
		}
		if q.Genre != "" && b.Genre != q.Genre {
			continue
		}
		matching = append(matching, b)
	}
	total := len(matching)

	start := (q.Page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return matching[start:end], total, nil
}

func (m *memBookRepo) GetByID(ctx context.Context, id string) (book.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.byID[id]
	if !ok {
		return book.Book{}, book.ErrNotFound
	}
	return b, nil
}

func (m *memBookRepo) Update(ctx context.Context, b book.Book) (book.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.byID[b.ID]
	if !ok {
		return book.Book{}, book.ErrNotFound
	}
	b.CreatedAt = old.CreatedAt
	m.byID[b.ID] = b
	return b, nil
}

func (m *memBookRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return book.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}
