package book

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(repo Repository) http.Handler {
	return NewHTTPHandler(NewService(repo, testAuthors, testPublishers)).Routes()
}

const createBody = `{
	"authors": %s,
	"publisher": %q,
	"title": "Cien años de soledad",
	"genre": "Realismo mágico",
	"price": 19.99,
	"releaseDate": "22/03/2005",
	"description": "Macondo."
}`

func TestHTTPHandler_Create(t *testing.T) {
	t.Run("list of author ids", func(t *testing.T) {
		h := newTestHandler(&fakeRepo{})

		body := fmt.Sprintf(createBody, `["a1","a2"]`, "e1")
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		h.ServeHTTP(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		var got Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got.Authors, 2)
		assert.Equal(t, "Gabriel", got.Authors[0].FirstName)
	})

	t.Run("single author id behaves like a one-element list", func(t *testing.T) {
		h := newTestHandler(&fakeRepo{})

		body := fmt.Sprintf(createBody, `"a1"`, "e1")
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		h.ServeHTTP(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		var got Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got.Authors, 1)
		assert.Equal(t, "a1", got.Authors[0].ID)
	})

	t.Run("non-string author id", func(t *testing.T) {
		h := newTestHandler(&fakeRepo{})

		body := fmt.Sprintf(createBody, `["a1", 7]`, "e1")
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid author ID format.")
	})

	t.Run("non-string publisher id", func(t *testing.T) {
		h := newTestHandler(&fakeRepo{})

		body := `{"authors":["a1"],"publisher":12,"title":"T","genre":"G","price":1,"releaseDate":"22/03/2005","description":"D"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid publisher ID format.")
	})

	t.Run("unknown author id", func(t *testing.T) {
		repo := &fakeRepo{}
		h := newTestHandler(repo)

		body := fmt.Sprintf(createBody, `["ghost"]`, "e1")
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Author with ID ghost does not exist.")
		assert.Zero(t, repo.inserts)
	})

	t.Run("invalid release date", func(t *testing.T) {
		h := newTestHandler(&fakeRepo{})

		body := `{"authors":["a1"],"publisher":"e1","title":"T","genre":"G","price":1,"releaseDate":"2005-03-22","description":"D"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid date format")
	})
}

func TestHTTPHandler_List(t *testing.T) {
	t.Run("pagination envelope", func(t *testing.T) {
		var seen Query
		repo := &fakeRepo{listFn: func(ctx context.Context, q Query) ([]Book, int, error) {
			seen = q
			return []Book{{ID: "b1", Genre: q.Genre}}, 23, nil
		}}
		h := newTestHandler(repo)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/?genre=Realismo+m%C3%A1gico&page=2&limit=10", nil)
		h.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, Query{Genre: "Realismo mágico", Page: 2, Limit: 10}, seen)

		var got listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 23, got.TotalBooks)
		assert.Equal(t, 3, got.TotalPages)
		assert.Equal(t, 2, got.CurrentPage)
		assert.Len(t, got.Books, 1)
	})

	t.Run("defaults to page 1 limit 10", func(t *testing.T) {
		var seen Query
		repo := &fakeRepo{listFn: func(ctx context.Context, q Query) ([]Book, int, error) {
			seen = q
			return nil, 0, nil
		}}
		h := newTestHandler(repo)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		h.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, Query{Page: 1, Limit: 10}, seen)

		// empty result still serializes books as []
		assert.Contains(t, w.Body.String(), `"books":[]`)
	})
}

func TestHTTPHandler_GetByID(t *testing.T) {
	t.Run("found with snapshots inline", func(t *testing.T) {
		repo := &fakeRepo{getFn: func(ctx context.Context, id string) (Book, error) {
			return Book{
				ID:      id,
				Authors: []AuthorSnapshot{{ID: "a1", FirstName: "Gabriel"}},
			}, nil
		}}
		h := newTestHandler(repo)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/b1", nil)
		h.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var got Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Gabriel", got.Authors[0].FirstName)
	})

	t.Run("not found", func(t *testing.T) {
		h := newTestHandler(&fakeRepo{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/missing", nil)
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Book not found")
	})
}

func TestHTTPHandler_Update(t *testing.T) {
	t.Run("updated with fresh snapshots", func(t *testing.T) {
		var updated Book
		repo := &fakeRepo{updateFn: func(ctx context.Context, b Book) (Book, error) {
			updated = b
			return b, nil
		}}
		h := newTestHandler(repo)

		body := fmt.Sprintf(createBody, `["a2"]`, "e1")
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/b1", strings.NewReader(body))
		h.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, updated.Authors, 1)
		assert.Equal(t, "Julio", updated.Authors[0].FirstName)
	})

	t.Run("book not found", func(t *testing.T) {
		repo := &fakeRepo{updateFn: func(ctx context.Context, b Book) (Book, error) {
			return Book{}, ErrNotFound
		}}
		h := newTestHandler(repo)

		body := fmt.Sprintf(createBody, `["a1"]`, "e1")
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/missing", strings.NewReader(body))
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h := newTestHandler(&fakeRepo{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/b1", nil)
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Book deleted successfully")
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeRepo{deleteFn: func(ctx context.Context, id string) error {
			return ErrNotFound
		}}
		h := newTestHandler(repo)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/missing", nil)
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
