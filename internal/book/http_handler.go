package book

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"libreria/internal/httpx"
	"libreria/internal/validate"

	"github.com/go-chi/chi/v5"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Routes mounts the book endpoints on a chi router.
func (h *HTTPHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

// bookRequest leaves the reference fields raw: authors may arrive as a
// single id string or a list of ids, and both must be id strings only.
type bookRequest struct {
	Authors     json.RawMessage `json:"authors"`
	Publisher   json.RawMessage `json:"publisher"`
	Title       string          `json:"title"`
	Genre       string          `json:"genre"`
	Price       float64         `json:"price"`
	ReleaseDate string          `json:"releaseDate"`
	Description string          `json:"description"`
}

var (
	errAuthorIDFormat    = errors.New("author ids must be strings")
	errPublisherIDFormat = errors.New("publisher id must be a string")
)

// authorIDs normalizes the authors field: a single id becomes a
// one-element list, anything that is not a string (or list of strings)
// is rejected.
func (req *bookRequest) authorIDs() ([]string, error) {
	if len(req.Authors) == 0 {
		return nil, errAuthorIDFormat
	}
	var ids []string
	if err := json.Unmarshal(req.Authors, &ids); err == nil {
		return ids, nil
	}
	var single string
	if err := json.Unmarshal(req.Authors, &single); err == nil {
		return []string{single}, nil
	}
	return nil, errAuthorIDFormat
}

func (req *bookRequest) publisherID() (string, error) {
	if len(req.Publisher) == 0 {
		return "", errPublisherIDFormat
	}
	var id string
	if err := json.Unmarshal(req.Publisher, &id); err != nil {
		return "", errPublisherIDFormat
	}
	return id, nil
}

// input validates the wire shape of the reference fields and builds the
// service input.
func (req *bookRequest) input() (Input, error) {
	authorIDs, err := req.authorIDs()
	if err != nil {
		return Input{}, err
	}
	publisherID, err := req.publisherID()
	if err != nil {
		return Input{}, err
	}
	return Input{
		AuthorIDs:   authorIDs,
		PublisherID: publisherID,
		Title:       req.Title,
		Genre:       req.Genre,
		Price:       req.Price,
		ReleaseDate: req.ReleaseDate,
		Description: req.Description,
	}, nil
}

func writeInputError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errAuthorIDFormat):
		httpx.Error(w, http.StatusBadRequest, "Invalid author ID format.")
	case errors.Is(err, errPublisherIDFormat):
		httpx.Error(w, http.StatusBadRequest, "Invalid publisher ID format.")
	default:
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
	}
}

// writeServiceError maps resolution and validation failures to 400s and
// leaves everything unexpected as a 500 with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, op, fallback string) {
	var refErr *ReferenceError
	switch {
	case errors.As(err, &refErr):
		httpx.Error(w, http.StatusBadRequest, refErr.Error())
	case errors.Is(err, ErrNoAuthors):
		httpx.Error(w, http.StatusBadRequest, "A book needs at least one author.")
	case errors.Is(err, validate.ErrInvalidDate):
		httpx.Error(w, http.StatusBadRequest, "Invalid date format")
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "Book not found")
	default:
		slog.Error(op, "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.Error(w, http.StatusInternalServerError, fallback)
	}
}

// @Summary Create a book
// @Description Resolves every author id and the publisher id against the live records, normalizes the release date, and stores the book with denormalized snapshots.
// @Tags books
// @Accept json
// @Produce json
// @Param book body bookRequest true "Book fields; authors may be a single id or a list of ids"
// @Success 201 {object} Book
// @Failure 400 {object} httpx.MessageResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	in, err := req.input()
	if err != nil {
		writeInputError(w, err)
		return
	}

	b, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "creating book", "Error creating the book")
		return
	}
	httpx.JSON(w, http.StatusCreated, b)
}

type listResponse struct {
	Books       []Book `json:"books"`
	TotalBooks  int    `json:"totalBooks"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
}

// @Summary List books
// @Tags books
// @Produce json
// @Param genre query string false "Exact-match genre filter"
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param limit query int false "Books per page" default(10)
// @Success 200 {object} listResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit < 1 {
		limit = 10
	}

	books, total, err := h.service.List(r.Context(), Query{
		Genre: query.Get("genre"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		slog.Error("listing books", "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.Error(w, http.StatusInternalServerError, "Error retrieving books")
		return
	}
	if books == nil {
		books = []Book{}
	}

	httpx.JSON(w, http.StatusOK, listResponse{
		Books:       books,
		TotalBooks:  total,
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: page,
	})
}

// @Summary Get a book by id
// @Tags books
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} Book
// @Failure 404 {object} httpx.MessageResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Book not found")
			return
		}
		slog.Error("fetching book", "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.Error(w, http.StatusInternalServerError, "Error retrieving the book")
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// @Summary Update a book
// @Description Re-runs the same reference resolution as create and stores fresh snapshots.
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book id"
// @Param book body bookRequest true "Book fields"
// @Success 200 {object} Book
// @Failure 400 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse
// @Router /books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	in, err := req.input()
	if err != nil {
		writeInputError(w, err)
		return
	}

	b, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, r, err, "updating book", "Error updating the book")
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// @Summary Delete a book
// @Tags books
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse
// @Router /books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Book not found")
			return
		}
		slog.Error("deleting book", "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.Error(w, http.StatusInternalServerError, "Error deleting the book")
		return
	}
	httpx.Message(w, "Book deleted successfully")
}
