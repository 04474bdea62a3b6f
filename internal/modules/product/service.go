package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines product business logic, including expansion of variation
// groups into concrete product rows.
type Service interface {
	// CreateProducts inserts one product, or one per variation combination
	// when variationGroups are present. Variation links are best-effort:
	// failures after the product insert are reported as warnings, never as
	// request errors.
	CreateProducts(ctx context.Context, storeID string, req CreateProductRequest) (*CreateProductsResult, error)
	ListProducts(ctx context.Context, storeID string) ([]*Product, error)
	GetProduct(ctx context.Context, storeID, productID string) (*Product, error)
	// UpdateProduct writes only allow-listed fields; relationship-shaped
	// keys in the payload are dropped. The returned row carries an empty
	// variation list regardless of existing links.
	UpdateProduct(ctx context.Context, storeID, productID string, fields map[string]interface{}) (*Product, error)
	DeleteProduct(ctx context.Context, storeID, productID string) error

	CreateVariation(ctx context.Context, storeID, productID, attributeOptionID string) (*Variation, error)
	ListVariations(ctx context.Context, storeID, productID string) ([]*Variation, error)
	DeleteVariation(ctx context.Context, storeID, variationID string) error
}

// CreateProductRequest holds the base product payload plus optional
// variation groups to expand.
type CreateProductRequest struct {
	Codigo       string  `json:"codigo"`
	Name         string  `json:"name"`
	Marca        string  `json:"marca"`
	Categoria    string  `json:"categoria"`
	Subcategoria string  `json:"subcategoria"`
	Grupo        string  `json:"grupo"`
	Subgrupo     string  `json:"subgrupo"`
	Departamento string  `json:"departamento"`
	Secao        string  `json:"secao"`
	Estacao      string  `json:"estacao"`
	Colecao      string  `json:"colecao"`
	Descricao    string  `json:"descricao"`
	Observacao   string  `json:"observacao"`
	Fabricante   string  `json:"fabricante"`
	Fornecedor   string  `json:"fornecedor"`
	NCM          string  `json:"ncm"`
	CEST         string  `json:"cest"`
	Custo        float64 `json:"custo"`
	Preco1       float64 `json:"preco1"`
	Preco2       float64 `json:"preco2"`
	Preco3       float64 `json:"preco3"`
	Stock        int     `json:"stock"`

	VariationGroups []VariationGroup `json:"variationGroups"`
}

// CreateProductsResult distinguishes the products that were created from the
// variation links that could not be attached to them.
type CreateProductsResult struct {
	Products []*Product `json:"products"`
	Warnings []string   `json:"warnings,omitempty"`
}

// updatableFields is the allow-list of product columns a caller may update.
var updatableFields = map[string]bool{
	"codigo": true, "name": true, "marca": true, "categoria": true,
	"subcategoria": true, "grupo": true, "subgrupo": true,
	"departamento": true, "secao": true, "estacao": true, "colecao": true,
	"descricao": true, "observacao": true, "fabricante": true,
	"fornecedor": true, "ncm": true, "cest": true,
	"custo": true, "preco1": true, "preco2": true, "preco3": true,
	"stock": true,
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new product service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) CreateProducts(ctx context.Context, storeID string, req CreateProductRequest) (*CreateProductsResult, error) {
	sid, err := uuid.Parse(storeID)
	if err != nil {
		return nil, fmt.Errorf("invalid store_id: %w", err)
	}
	if req.Codigo == "" {
		return nil, fmt.Errorf("codigo is required")
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	combos := expandCombinations(req.VariationGroups)
	if len(combos) == 0 {
		p := req.baseProduct(sid)
		p.Stock = req.Stock
		if err := s.repo.InsertProducts(ctx, []*Product{p}); err != nil {
			return nil, err
		}
		return &CreateProductsResult{Products: []*Product{p}}, nil
	}

	products := make([]*Product, len(combos))
	for i, c := range combos {
		p := req.baseProduct(sid)
		p.Codigo = c.codigo(req.Codigo)
		p.Stock = c.stock
		products[i] = p
	}
	if err := s.repo.InsertProducts(ctx, products); err != nil {
		return nil, err
	}

	result := &CreateProductsResult{Products: products}
	s.linkVariations(ctx, storeID, products, combos, result)
	return result, nil
}

// linkVariations resolves each combination's attribute/value pairs against
// the store's configured options and attaches the resulting links. Products
// are paired with combinations by index, so insertion order matters.
func (s *service) linkVariations(ctx context.Context, storeID string, products []*Product, combos []combination, result *CreateProductsResult) {
	options, err := s.repo.ListAttributeOptionsByStore(ctx, storeID)
	if err != nil {
		s.logger.Warn("products created but option lookup failed",
			zap.String("store_id", storeID), zap.Error(err))
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("failed to load attribute options: %v", err))
		return
	}
	lookup := make(map[string]uuid.UUID, len(options))
	for _, o := range options {
		lookup[o.AttributeID.String()+":"+o.Value] = o.ID
	}

	var variations []*Variation
	for i, c := range combos {
		for _, v := range c.values {
			optionID, ok := lookup[v.attributeID+":"+v.value]
			if !ok {
				// Typed value with no configured option: the product row
				// stays, the link is dropped.
				s.logger.Warn("no attribute option matches variation value",
					zap.String("store_id", storeID),
					zap.String("attribute_id", v.attributeID),
					zap.String("value", v.value))
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("no configured option for attribute %s value %q", v.attributeID, v.value))
				continue
			}
			variations = append(variations, &Variation{
				ID:                uuid.New(),
				ProductID:         products[i].ID,
				AttributeOptionID: optionID,
			})
		}
	}

	if len(variations) > 0 {
		if err := s.repo.InsertVariations(ctx, variations); err != nil {
			// No rollback of the created products.
			s.logger.Warn("products created but variation insert failed",
				zap.String("store_id", storeID), zap.Error(err))
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("failed to create product variations: %v", err))
			return
		}
	}

	ids := make([]uuid.UUID, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	created, err := s.repo.ListVariationsByProducts(ctx, ids)
	if err != nil {
		s.logger.Warn("failed to re-fetch product variations",
			zap.String("store_id", storeID), zap.Error(err))
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("failed to fetch product variations: %v", err))
		return
	}
	byProduct := make(map[uuid.UUID][]*Variation, len(products))
	for _, v := range created {
		byProduct[v.ProductID] = append(byProduct[v.ProductID], v)
	}
	for _, p := range products {
		if vs := byProduct[p.ID]; vs != nil {
			p.Variations = vs
		}
	}
}

func (req CreateProductRequest) baseProduct(storeID uuid.UUID) *Product {
	return &Product{
		ID:           uuid.New(),
		StoreID:      storeID,
		Codigo:       req.Codigo,
		Name:         req.Name,
		Marca:        req.Marca,
		Categoria:    req.Categoria,
		Subcategoria: req.Subcategoria,
		Grupo:        req.Grupo,
		Subgrupo:     req.Subgrupo,
		Departamento: req.Departamento,
		Secao:        req.Secao,
		Estacao:      req.Estacao,
		Colecao:      req.Colecao,
		Descricao:    req.Descricao,
		Observacao:   req.Observacao,
		Fabricante:   req.Fabricante,
		Fornecedor:   req.Fornecedor,
		NCM:          req.NCM,
		CEST:         req.CEST,
		Custo:        req.Custo,
		Preco1:       req.Preco1,
		Preco2:       req.Preco2,
		Preco3:       req.Preco3,
		Variations:   []*Variation{},
	}
}

func (s *service) ListProducts(ctx context.Context, storeID string) ([]*Product, error) {
	products, err := s.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return []*Product{}, nil
	}
	ids := make([]uuid.UUID, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	variations, err := s.repo.ListVariationsByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}
	byProduct := make(map[uuid.UUID][]*Variation)
	for _, v := range variations {
		byProduct[v.ProductID] = append(byProduct[v.ProductID], v)
	}
	for _, p := range products {
		p.Variations = byProduct[p.ID]
		if p.Variations == nil {
			p.Variations = []*Variation{}
		}
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, storeID, productID string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	variations, err := s.repo.ListVariationsByProducts(ctx, []uuid.UUID{p.ID})
	if err != nil {
		return nil, err
	}
	p.Variations = variations
	if p.Variations == nil {
		p.Variations = []*Variation{}
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, storeID, productID string, fields map[string]interface{}) (*Product, error) {
	filtered := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if updatableFields[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no updatable fields in payload")
	}
	p, err := s.repo.UpdateFields(ctx, storeID, productID, filtered)
	if err != nil {
		return nil, err
	}
	// Variations are not re-fetched on update.
	p.Variations = []*Variation{}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, storeID, productID string) error {
	return s.repo.Delete(ctx, storeID, productID)
}

func (s *service) CreateVariation(ctx context.Context, storeID, productID, attributeOptionID string) (*Variation, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid productId: %w", err)
	}
	oid, err := uuid.Parse(attributeOptionID)
	if err != nil {
		return nil, fmt.Errorf("invalid attributeOptionId: %w", err)
	}
	if _, err := s.repo.GetByID(ctx, storeID, productID); err != nil {
		return nil, err
	}
	v := &Variation{ID: uuid.New(), ProductID: pid, AttributeOptionID: oid}
	if err := s.repo.InsertVariations(ctx, []*Variation{v}); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) ListVariations(ctx context.Context, storeID, productID string) ([]*Variation, error) {
	ids, err := s.repo.ListProductIDs(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*Variation{}, nil
	}
	if productID != "" {
		pid, err := uuid.Parse(productID)
		if err != nil {
			return nil, fmt.Errorf("invalid productId: %w", err)
		}
		owned := false
		for _, id := range ids {
			if id == pid {
				owned = true
				break
			}
		}
		if !owned {
			return []*Variation{}, nil
		}
		ids = []uuid.UUID{pid}
	}
	variations, err := s.repo.ListVariationsByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}
	if variations == nil {
		variations = []*Variation{}
	}
	return variations, nil
}

// DeleteVariation verifies ownership through the variation's product before
// deleting: variation -> product -> store.
func (s *service) DeleteVariation(ctx context.Context, storeID, variationID string) error {
	v, err := s.repo.GetVariation(ctx, variationID)
	if err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, storeID, v.ProductID.String()); err != nil {
		return fmt.Errorf("variation %w or unauthorized", ErrNotFound)
	}
	return s.repo.DeleteVariation(ctx, variationID)
}
