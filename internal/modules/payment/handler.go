package payment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes payment method HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/stores/{store_id}/payment-methods", func(r chi.Router) {
		r.Get("/", h.listMethods)
		r.Post("/", h.createMethod)
		r.Delete("/{method_id}", h.deleteMethod)
	})
}

func (h *Handler) listMethods(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	methods, err := h.service.ListMethods(r.Context(), storeID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"items": methods})
}

func (h *Handler) createMethod(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	var req CreateMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	m, err := h.service.CreateMethod(r.Context(), storeID, req)
	if err != nil {
		code := http.StatusInternalServerError
		msg := err.Error()
		if strings.Contains(msg, "Insira") || strings.Contains(msg, "Código") ||
			strings.Contains(msg, "Parcela") || strings.Contains(msg, "invalid") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": msg})
		return
	}
	respond(w, http.StatusCreated, m)
}

func (h *Handler) deleteMethod(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	methodID := chi.URLParam(r, "method_id")
	if err := h.service.DeleteMethod(r.Context(), storeID, methodID); err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrNotFound):
			code = http.StatusNotFound
		case errors.Is(err, ErrUnauthorized):
			code = http.StatusForbidden
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]bool{"success": true})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
