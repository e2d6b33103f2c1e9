package book

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/platform/alfabank"

	"github.com/go-chi/chi/v5"
)

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPHandler{service: service, logger: logger}
}

// Routes returns the book routes. writeGuards wrap the mutating endpoints.
func (h *HTTPHandler) Routes(writeGuards ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/openlibrary", h.ReadFromOpenLibrary)
	r.Get("/by-author", h.ReadByAuthor)
	r.Get("/price", h.GetPrice)
	r.Get("/price/currencies", h.GetPriceInCurrencies)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(writeGuards...)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]any{"total": len(books)})
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var d DTO
	if !httpx.DecodeAndValidate(w, r, &d) {
		return
	}
	id, err := h.service.Create(r.Context(), d)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, Record{ID: id, DTO: d})
}

// Update handles PUT /books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var d DTO
	if !httpx.DecodeAndValidate(w, r, &d) {
		return
	}
	updated, err := h.service.Update(r.Context(), d, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !updated {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "book not found", nil)
		return
	}
	httpx.JSONSuccess(w, r, Record{ID: id, DTO: d}, nil)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !deleted {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "book not found", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// ReadFromOpenLibrary handles GET /books/openlibrary?author=
func (h *HTTPHandler) ReadFromOpenLibrary(w http.ResponseWriter, r *http.Request) {
	author, ok := requiredQuery(w, r, "author")
	if !ok {
		return
	}
	books, err := h.service.ReadFromOpenLibrary(r.Context(), author)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]any{"total": len(books)})
}

// ReadByAuthor handles GET /books/by-author?author=
func (h *HTTPHandler) ReadByAuthor(w http.ResponseWriter, r *http.Request) {
	author, ok := requiredQuery(w, r, "author")
	if !ok {
		return
	}
	books, err := h.service.ReadByAuthorFromDBAndOpenLibrary(r.Context(), author)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]any{"total": len(books)})
}

// GetPrice handles GET /books/price?title=
func (h *HTTPHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	title, ok := requiredQuery(w, r, "title")
	if !ok {
		return
	}
	price, err := h.service.GetPriceByTitle(r.Context(), title)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"title": title, "cost": price}, nil)
}

// GetPriceInCurrencies handles GET /books/price/currencies?title=&currency=RUB,USD
func (h *HTTPHandler) GetPriceInCurrencies(w http.ResponseWriter, r *http.Request) {
	title, ok := requiredQuery(w, r, "title")
	if !ok {
		return
	}
	raw, ok := requiredQuery(w, r, "currency")
	if !ok {
		return
	}
	currencies, err := alfabank.ParseCurrencies(raw)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), []httpx.ErrorDetail{
			{Field: "currency", Message: err.Error()},
		})
		return
	}

	res, err := h.service.GetPriceByTitleInCurrencies(r.Context(), title, currencies)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, res, nil)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "book not found", nil)
	case errors.Is(err, ErrDuplicateISBN):
		httpx.JSONError(w, r, http.StatusConflict, "CONFLICT", err.Error(), nil)
	case errors.Is(err, ErrUpstream):
		h.logger.Warn("upstream failure", "request_id", httpx.RequestIDFrom(r), "error", err)
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR", "external service unavailable", nil)
	default:
		h.logger.Error("request failed", "request_id", httpx.RequestIDFrom(r), "error", err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

func requiredQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", name+" is required", []httpx.ErrorDetail{
			{Field: name, Message: name + " is required"},
		})
		return "", false
	}
	return v, true
}
