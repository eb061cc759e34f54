package author

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"libreria/internal/httpx"

	"github.com/go-chi/chi/v5"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Routes mounts the author endpoints on a chi router.
func (h *HTTPHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

type authorRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DNI         string `json:"dni"`
	Nationality string `json:"nationality"`
}

// @Summary Create an author
// @Tags authors
// @Accept json
// @Produce json
// @Param author body authorRequest true "Author fields"
// @Success 201 {object} Author
// @Failure 400 {object} httpx.MessageResponse
// @Router /authors [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req authorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.service.Create(r.Context(), Input(req))
	if err != nil {
		if errors.Is(err, ErrInvalidDNI) {
			httpx.Error(w, http.StatusBadRequest, "Invalid DNI format")
			return
		}
		slog.Error("creating author", "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.Error(w, http.StatusInternalServerError, "Error creating the author")
		return
	}
	httpx.JSON(w, http.StatusCreated, a)
}

// @Summary List authors
// @Tags authors
// @Produce json
// @Success 200 {array} Author
// @Router /authors [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("listing authors", "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.Error(w, http.StatusInternalServerError, "Error fetching authors")
		return
	}
	httpx.JSON(w, http.StatusOK, authors)
}

// @Summary Get an author by id
// @Tags authors
// @Produce json
// @Param id path string true "Author id"
// @Success 200 {object} Author
// @Failure 404 {object} httpx.MessageResponse
// @Router /authors/{id} [get]
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Author not found")
			return
		}
		slog.Error("fetching author", "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.Error(w, http.StatusInternalServerError, "Error fetching the author")
		return
	}
	httpx.JSON(w, http.StatusOK, a)
}

// @Summary Update an author
// @Tags authors
// @Accept json
// @Produce json
// @Param id path string true "Author id"
// @Param author body authorRequest true "Author fields"
// @Success 200 {object} Author
// @Failure 400 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse
// @Router /authors/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req authorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), Input(req))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDNI):
			httpx.Error(w, http.StatusBadRequest, "Invalid DNI format")
		case errors.Is(err, ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Author not found")
		default:
			slog.Error("updating author", "error", err, "request_id", httpx.RequestIDFrom(r))
			httpx.Error(w, http.StatusInternalServerError, "Error updating the author")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, a)
}

// @Summary Delete an author
// @Tags authors
// @Produce json
// @Param id path string true "Author id"
// @Success 200 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse
// @Router /authors/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Author not found")
			return
		}
		slog.Error("deleting author", "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.Error(w, http.StatusInternalServerError, "Error deleting the author")
		return
	}
	httpx.Message(w, "Author deleted successfully")
}
