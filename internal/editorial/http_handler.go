package editorial

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

// Routes mounts the editorial endpoints on a chi router.
func (h *HTTPHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

type editorialRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	CUIT    string `json:"cuit"`
}

// @Summary Create an editorial
// @Tags editorials
// @Accept json
// @Produce json
// @Param editorial body editorialRequest true "Editorial fields"
// @Success 201 {object} Editorial
// @Failure 400 {object} httpx.MessageResponse
// @Router /editorials [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req editorialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	e, err := h.service.Create(r.Context(), Input(req))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCUIT):
			httpx.Error(w, http.StatusBadRequest, "Invalid CUIT format")
		case errors.Is(err, ErrDuplicateCUIT):
			httpx.Error(w, http.StatusBadRequest, "An editorial with that CUIT already exists")
		default:
			slog.Error("creating editorial", "error", err, "request_id", httpx.RequestIDFrom(r))
			httpx.Error(w, http.StatusInternalServerError, "Error creating the editorial")
		}
		return
	}
	httpx.JSON(w, http.StatusCreated, e)
}

// @Summary List editorials
// @Tags editorials
// @Produce json
// @Success 200 {array} Editorial
// @Router /editorials [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	editorials, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("listing editorials", "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.Error(w, http.StatusInternalServerError, "Error fetching editorials")
		return
	}
	httpx.JSON(w, http.StatusOK, editorials)
}

// @Summary Get an editorial by id
// @Tags editorials
// @Produce json
// @Param id path string true "Editorial id"
// @Success 200 {object} Editorial
// @Failure 404 {object} httpx.MessageResponse
// @Router /editorials/{id} [get]
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Editorial not found")
			return
		}
		slog.Error("fetching editorial", "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.Error(w, http.StatusInternalServerError, "Error fetching the editorial")
		return
	}
	httpx.JSON(w, http.StatusOK, e)
}

// @Summary Update an editorial
// @Tags editorials
// @Accept json
// @Produce json
// @Param id path string true "Editorial id"
// @Param editorial body editorialRequest true "Editorial fields"
// @Success 200 {object} Editorial
// @Failure 400 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse
// @Router /editorials/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req editorialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	e, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), Input(req))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCUIT):
			httpx.Error(w, http.StatusBadRequest, "Invalid CUIT format")
		case errors.Is(err, ErrDuplicateCUIT):
			httpx.Error(w, http.StatusBadRequest, "An editorial with that CUIT already exists")
		case errors.Is(err, ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Editorial not found")
		default:
			slog.Error("updating editorial", "error", err, "request_id", httpx.RequestIDFrom(r))
			httpx.Error(w, http.StatusInternalServerError, "Error updating the editorial")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, e)
}

// @Summary Delete an editorial
// @Tags editorials
// @Produce json
// @Param id path string true "Editorial id"
// @Success 200 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse
// @Router /editorials/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Editorial not found")
			return
		}
		slog.Error("deleting editorial", "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.Error(w, http.StatusInternalServerError, "Error deleting the editorial")
		return
	}
	httpx.Message(w, "Editorial deleted successfully")
}
