package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PageHandler serves the landing page.
type PageHandler struct {
	*Pages
}

func NewPageHandler(pages *Pages) *PageHandler {
	return &PageHandler{Pages: pages}
}

func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.index)
}

func (h *PageHandler) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index", "University Dashboard", nil)
}
