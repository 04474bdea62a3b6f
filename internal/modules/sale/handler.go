package sale

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes sale HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/stores/{store_id}/sales", func(r chi.Router) {
		r.Get("/", h.listSales)
		r.Post("/", h.createSale)
	})
	r.Get("/api/v1/stores/{store_id}/sales-stats", h.sellerStats)
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	sales, err := h.service.ListSales(r.Context(), storeID, from, to)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"items": sales})
}

func (h *Handler) createSale(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s, err := h.service.CreateSale(r.Context(), storeID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, s)
}

func (h *Handler) sellerStats(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	stats, err := h.service.SellerStats(r.Context(), storeID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"items": stats})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	msg := err.Error()
	switch {
	case errors.Is(err, ErrNotFound):
		code = http.StatusNotFound
	case strings.Contains(msg, "invalid") || strings.Contains(msg, "Valor") ||
		strings.Contains(msg, "must be"):
		code = http.StatusBadRequest
	}
	respond(w, code, map[string]string{"error": msg})
}
