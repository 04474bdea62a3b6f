package team

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes team member HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/stores/{store_id}/team", func(r chi.Router) {
		r.Get("/", h.listMembers)
		r.Post("/", h.createMember)
		r.Put("/{member_id}", h.updateMember)
		r.Delete("/{member_id}", h.deleteMember)
	})
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	members, err := h.service.ListMembers(r.Context(), storeID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"items": members})
}

func (h *Handler) createMember(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	var req CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	m, err := h.service.CreateMember(r.Context(), storeID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, m)
}

func (h *Handler) updateMember(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	memberID := chi.URLParam(r, "member_id")
	var req UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	m, err := h.service.UpdateMember(r.Context(), storeID, memberID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, m)
}

func (h *Handler) deleteMember(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	memberID := chi.URLParam(r, "member_id")
	if err := h.service.DeleteMember(r.Context(), storeID, memberID); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]bool{"success": true})
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
	case strings.Contains(msg, "required") || strings.Contains(msg, "invalid"):
		code = http.StatusBadRequest
	}
	respond(w, code, map[string]string{"error": msg})
}
