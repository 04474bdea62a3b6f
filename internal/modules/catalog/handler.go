package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the product configuration HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/stores/{store_id}/product-attributes", func(r chi.Router) {
		r.Get("/", h.listAttributes)
		r.Post("/", h.createAttribute)
		r.Put("/", h.updateAttribute)
		r.Delete("/", h.deleteAttribute)
	})
	r.Route("/api/v1/stores/{store_id}/product-columns", func(r chi.Router) {
		r.Get("/", h.listColumns)
		r.Post("/", h.createColumn)
		r.Put("/", h.updateColumn)
		r.Delete("/", h.deleteColumn)
	})
	r.Route("/api/v1/stores/{store_id}/product-column-options", func(r chi.Router) {
		r.Get("/", h.listColumnOptions)
		r.Post("/", h.addColumnOption)
		r.Put("/", h.updateColumnOption)
		r.Delete("/", h.deleteColumnOption)
	})
	r.Get("/api/v1/stores/{store_id}/product-data", h.productData)
}

// ── attributes ────────────────────────────────────────────────────────────────

func (h *Handler) listAttributes(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	attrs, err := h.service.ListAttributes(r.Context(), storeID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"attributes": attrs})
}

func (h *Handler) createAttribute(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	var req CreateAttributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	result, err := h.service.CreateAttribute(r.Context(), storeID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, result)
}

func (h *Handler) updateAttribute(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	var req struct {
		AttributeID string `json:"attributeId"`
		UpdateAttributeRequest
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.AttributeID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "attributeId is required"})
		return
	}
	attr, err := h.service.UpdateAttribute(r.Context(), storeID, req.AttributeID, req.UpdateAttributeRequest)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, attr)
}

func (h *Handler) deleteAttribute(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	attributeID := r.URL.Query().Get("attributeId")
	if attributeID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Attribute ID is required"})
		return
	}
	if err := h.service.DeleteAttribute(r.Context(), storeID, attributeID); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]bool{"success": true})
}

// ── columns ───────────────────────────────────────────────────────────────────

func (h *Handler) listColumns(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	cols, err := h.service.ListColumns(r.Context(), storeID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"columns": cols})
}

func (h *Handler) createColumn(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	var req CreateColumnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	col, err := h.service.CreateColumn(r.Context(), storeID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, col)
}

func (h *Handler) updateColumn(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	var req struct {
		ColumnID string `json:"columnId"`
		UpdateColumnRequest
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.ColumnID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "columnId is required"})
		return
	}
	col, err := h.service.UpdateColumn(r.Context(), storeID, req.ColumnID, req.UpdateColumnRequest)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, col)
}

func (h *Handler) deleteColumn(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	columnID := r.URL.Query().Get("columnId")
	if columnID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "columnId is required"})
		return
	}
	if err := h.service.DeleteColumn(r.Context(), storeID, columnID); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]bool{"success": true})
}

// ── column options ────────────────────────────────────────────────────────────

func (h *Handler) listColumnOptions(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	columnID := r.URL.Query().Get("columnId")
	opts, err := h.service.ListColumnOptions(r.Context(), storeID, columnID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"options": opts})
}

func (h *Handler) addColumnOption(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ColumnID string `json:"columnId"`
		Value    string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.ColumnID == "" || req.Value == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "columnId and value are required"})
		return
	}
	opt, err := h.service.AddColumnOption(r.Context(), req.ColumnID, req.Value)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, opt)
}

func (h *Handler) updateColumnOption(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OptionID string `json:"optionId"`
		UpdateColumnOptionRequest
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.OptionID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "optionId is required"})
		return
	}
	opt, err := h.service.UpdateColumnOption(r.Context(), req.OptionID, req.UpdateColumnOptionRequest)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, opt)
}

func (h *Handler) deleteColumnOption(w http.ResponseWriter, r *http.Request) {
	optionID := r.URL.Query().Get("optionId")
	if optionID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "optionId is required"})
		return
	}
	if err := h.service.DeleteColumnOption(r.Context(), optionID); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) productData(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	data, err := h.service.ProductData(r.Context(), storeID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, data)
}

// ── helpers ───────────────────────────────────────────────────────────────────

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
	case errors.Is(err, ErrDuplicate):
		code = http.StatusConflict
	case strings.Contains(msg, "required") || strings.Contains(msg, "invalid"):
		code = http.StatusBadRequest
	}
	respond(w, code, map[string]string{"error": msg})
}
