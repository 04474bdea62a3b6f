package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines business logic for the tenant product configuration:
// attributes with their option lists and display columns for the product table.
type Service interface {
	// Attribute operations
	ListAttributes(ctx context.Context, storeID string) ([]*ProductAttribute, error)
	CreateAttribute(ctx context.Context, storeID string, req CreateAttributeRequest) (*CreateAttributeResult, error)
	UpdateAttribute(ctx context.Context, storeID, attributeID string, req UpdateAttributeRequest) (*ProductAttribute, error)
	DeleteAttribute(ctx context.Context, storeID, attributeID string) error

	// Column operations
	ListColumns(ctx context.Context, storeID string) ([]*ProductColumn, error)
	CreateColumn(ctx context.Context, storeID string, req CreateColumnRequest) (*ProductColumn, error)
	UpdateColumn(ctx context.Context, storeID, columnID string, req UpdateColumnRequest) (*ProductColumn, error)
	DeleteColumn(ctx context.Context, storeID, columnID string) error

	// Column option operations
	ListColumnOptions(ctx context.Context, storeID, columnID string) ([]*ColumnOption, error)
	AddColumnOption(ctx context.Context, columnID, value string) (*ColumnOption, error)
	UpdateColumnOption(ctx context.Context, optionID string, req UpdateColumnOptionRequest) (*ColumnOption, error)
	DeleteColumnOption(ctx context.Context, optionID string) error

	// ProductData aggregates attributes (with options) and columns in one read.
	ProductData(ctx context.Context, storeID string) (*ProductData, error)
}

// CreateAttributeRequest holds data for creating a product attribute.
// Options are positioned by their index in the array.
type CreateAttributeRequest struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	IsVariation bool     `json:"is_variation"`
	IsRequired  bool     `json:"is_required"`
	Options     []string `json:"options"`
}

// CreateAttributeResult reports the created attribute plus any non-fatal
// option-insert failures. The attribute is created even when options fail.
type CreateAttributeResult struct {
	Attribute *ProductAttribute `json:"attribute"`
	Warnings  []string          `json:"warnings,omitempty"`
}

// UpdateAttributeRequest holds the mutable attribute fields.
type UpdateAttributeRequest struct {
	Name        *string `json:"name"`
	Label       *string `json:"label"`
	IsVariation *bool   `json:"is_variation"`
	IsRequired  *bool   `json:"is_required"`
}

// CreateColumnRequest holds data for creating a product column.
type CreateColumnRequest struct {
	FieldName  string `json:"field_name"`
	Label      string `json:"label"`
	IsVisible  *bool  `json:"is_visible"`
	IsEditable *bool  `json:"is_editable"`
	ColumnType string `json:"column_type"`
	Width      string `json:"width"`
	Position   int    `json:"position"`
}

// UpdateColumnRequest holds the mutable column fields. field_name is
// deliberately absent: it is fixed at creation.
type UpdateColumnRequest struct {
	Label      *string `json:"label"`
	IsVisible  *bool   `json:"is_visible"`
	IsEditable *bool   `json:"is_editable"`
	ColumnType *string `json:"column_type"`
	Width      *string `json:"width"`
	Position   *int    `json:"position"`
}

// UpdateColumnOptionRequest holds the mutable column option fields.
type UpdateColumnOptionRequest struct {
	Value    *string `json:"value"`
	Position *int    `json:"position"`
}

// ProductData bundles the configuration a product table needs in one payload.
type ProductData struct {
	Attributes []*ProductAttribute `json:"attributes"`
	Columns    []*ProductColumn    `json:"columns"`
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new catalog configuration service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) ListAttributes(ctx context.Context, storeID string) ([]*ProductAttribute, error) {
	attrs, err := s.repo.ListAttributes(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if len(attrs) == 0 {
		return []*ProductAttribute{}, nil
	}
	ids := make([]uuid.UUID, len(attrs))
	for i, a := range attrs {
		ids[i] = a.ID
	}
	opts, err := s.repo.ListAttributeOptions(ctx, ids)
	if err != nil {
		return nil, err
	}
	byAttr := make(map[uuid.UUID][]*AttributeOption, len(attrs))
	for _, o := range opts {
		byAttr[o.AttributeID] = append(byAttr[o.AttributeID], o)
	}
	for _, a := range attrs {
		a.Options = byAttr[a.ID]
		if a.Options == nil {
			a.Options = []*AttributeOption{}
		}
	}
	return attrs, nil
}

func (s *service) CreateAttribute(ctx context.Context, storeID string, req CreateAttributeRequest) (*CreateAttributeResult, error) {
	sid, err := uuid.Parse(storeID)
	if err != nil {
		return nil, fmt.Errorf("invalid store_id: %w", err)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Label == "" {
		return nil, fmt.Errorf("label is required")
	}

	attr := &ProductAttribute{
		ID:          uuid.New(),
		StoreID:     sid,
		Name:        req.Name,
		Label:       req.Label,
		IsVariation: req.IsVariation,
		IsRequired:  req.IsRequired,
		Options:     []*AttributeOption{},
	}
	if err := s.repo.CreateAttribute(ctx, attr); err != nil {
		return nil, err
	}

	result := &CreateAttributeResult{Attribute: attr}
	if len(req.Options) > 0 {
		opts := make([]*AttributeOption, len(req.Options))
		for i, v := range req.Options {
			opts[i] = &AttributeOption{
				ID:          uuid.New(),
				AttributeID: attr.ID,
				Value:       v,
				Position:    i,
			}
		}
		// Option failures do not undo the attribute; the caller gets the
		// attribute plus a warning.
		if err := s.repo.CreateAttributeOptions(ctx, opts); err != nil {
			s.logger.Warn("attribute created but options failed",
				zap.String("attribute_id", attr.ID.String()),
				zap.String("store_id", storeID),
				zap.Error(err))
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("failed to create attribute options: %v", err))
		} else {
			attr.Options = opts
		}
	}
	return result, nil
}

func (s *service) UpdateAttribute(ctx context.Context, storeID, attributeID string, req UpdateAttributeRequest) (*ProductAttribute, error) {
	return s.repo.UpdateAttribute(ctx, storeID, attributeID, req)
}

func (s *service) DeleteAttribute(ctx context.Context, storeID, attributeID string) error {
	return s.repo.DeleteAttribute(ctx, storeID, attributeID)
}

func (s *service) ListColumns(ctx context.Context, storeID string) ([]*ProductColumn, error) {
	cols, err := s.repo.ListColumns(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if cols == nil {
		cols = []*ProductColumn{}
	}
	return cols, nil
}

func (s *service) CreateColumn(ctx context.Context, storeID string, req CreateColumnRequest) (*ProductColumn, error) {
	sid, err := uuid.Parse(storeID)
	if err != nil {
		return nil, fmt.Errorf("invalid store_id: %w", err)
	}
	if req.FieldName == "" || req.Label == "" {
		return nil, fmt.Errorf("field_name and label are required")
	}
	col := &ProductColumn{
		ID:         uuid.New(),
		StoreID:    sid,
		FieldName:  req.FieldName,
		Label:      req.Label,
		IsVisible:  true,
		IsEditable: true,
		ColumnType: req.ColumnType,
		Width:      req.Width,
		Position:   req.Position,
	}
	if req.IsVisible != nil {
		col.IsVisible = *req.IsVisible
	}
	if req.IsEditable != nil {
		col.IsEditable = *req.IsEditable
	}
	if col.ColumnType == "" {
		col.ColumnType = "text"
	}
	if col.Width == "" {
		col.Width = "auto"
	}
	if err := s.repo.CreateColumn(ctx, col); err != nil {
		return nil, err
	}
	return col, nil
}

func (s *service) UpdateColumn(ctx context.Context, storeID, columnID string, req UpdateColumnRequest) (*ProductColumn, error) {
	return s.repo.UpdateColumn(ctx, storeID, columnID, req)
}

func (s *service) DeleteColumn(ctx context.Context, storeID, columnID string) error {
	return s.repo.DeleteColumn(ctx, storeID, columnID)
}

// ListColumnOptions returns options for one column, or for every column of the
// store when columnID is empty. A store without columns gets an empty list.
func (s *service) ListColumnOptions(ctx context.Context, storeID, columnID string) ([]*ColumnOption, error) {
	if columnID != "" {
		opts, err := s.repo.ListColumnOptions(ctx, columnID)
		if err != nil {
			return nil, err
		}
		if opts == nil {
			opts = []*ColumnOption{}
		}
		return opts, nil
	}

	cols, err := s.repo.ListColumns(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return []*ColumnOption{}, nil
	}
	ids := make([]uuid.UUID, len(cols))
	for i, c := range cols {
		ids[i] = c.ID
	}
	opts, err := s.repo.ListColumnOptionsByColumns(ctx, ids)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = []*ColumnOption{}
	}
	return opts, nil
}

func (s *service) AddColumnOption(ctx context.Context, columnID, value string) (*ColumnOption, error) {
	cid, err := uuid.Parse(columnID)
	if err != nil {
		return nil, fmt.Errorf("invalid columnId: %w", err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("columnId and value are required")
	}

	// Read-then-write: two callers racing here can pick the same position.
	max, found, err := s.repo.MaxColumnOptionPosition(ctx, columnID)
	if err != nil {
		s.logger.Warn("failed to read existing option positions",
			zap.String("column_id", columnID), zap.Error(err))
	}
	next := 0
	if found {
		next = max + 1
	}

	opt := &ColumnOption{
		ID:       uuid.New(),
		ColumnID: cid,
		Value:    value,
		Position: next,
	}
	if err := s.repo.CreateColumnOption(ctx, opt); err != nil {
		return nil, err
	}
	return opt, nil
}

func (s *service) UpdateColumnOption(ctx context.Context, optionID string, req UpdateColumnOptionRequest) (*ColumnOption, error) {
	return s.repo.UpdateColumnOption(ctx, optionID, req.Value, req.Position)
}

func (s *service) DeleteColumnOption(ctx context.Context, optionID string) error {
	return s.repo.DeleteColumnOption(ctx, optionID)
}

func (s *service) ProductData(ctx context.Context, storeID string) (*ProductData, error) {
	attrs, err := s.ListAttributes(ctx, storeID)
	if err != nil {
		return nil, err
	}
	cols, err := s.ListColumns(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return &ProductData{Attributes: attrs, Columns: cols}, nil
}
