package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes product and product-variation HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/stores/{store_id}/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProducts)
		r.Get("/{product_id}", h.getProduct)
		r.Put("/{product_id}", h.updateProduct)
		r.Delete("/{product_id}", h.deleteProduct)
	})
	r.Route("/api/v1/stores/{store_id}/product-variations", func(r chi.Router) {
		r.Get("/", h.listVariations)
		r.Post("/", h.createVariation)
		r.Delete("/", h.deleteVariation)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	products, err := h.service.ListProducts(r.Context(), storeID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"items": products})
}

func (h *Handler) createProducts(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	result, err := h.service.CreateProducts(r.Context(), storeID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, result)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	productID := chi.URLParam(r, "product_id")
	p, err := h.service.GetProduct(r.Context(), storeID, productID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	productID := chi.URLParam(r, "product_id")
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	p, err := h.service.UpdateProduct(r.Context(), storeID, productID, fields)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	productID := chi.URLParam(r, "product_id")
	if err := h.service.DeleteProduct(r.Context(), storeID, productID); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) listVariations(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	productID := r.URL.Query().Get("productId")
	variations, err := h.service.ListVariations(r.Context(), storeID, productID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"variations": variations})
}

func (h *Handler) createVariation(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	var req struct {
		ProductID         string `json:"productId"`
		AttributeOptionID string `json:"attributeOptionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.ProductID == "" || req.AttributeOptionID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Missing required fields: productId, attributeOptionId"})
		return
	}
	v, err := h.service.CreateVariation(r.Context(), storeID, req.ProductID, req.AttributeOptionID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, v)
}

func (h *Handler) deleteVariation(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	variationID := r.URL.Query().Get("variationId")
	if variationID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Variation ID is required"})
		return
	}
	if err := h.service.DeleteVariation(r.Context(), storeID, variationID); err != nil {
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
	case errors.Is(err, ErrDuplicate):
		code = http.StatusConflict
	case strings.Contains(msg, "required") || strings.Contains(msg, "invalid") ||
		strings.Contains(msg, "no updatable"):
		code = http.StatusBadRequest
	}
	respond(w, code, map[string]string{"error": msg})
}
