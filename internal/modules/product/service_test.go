package product

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	products   []*Product
	variations []*Variation
	options    []*StoreAttributeOption

	insertProductsErr   error
	insertVariationsErr error
	optionsErr          error

	lastUpdateFields map[string]interface{}
	deletedVariation string
}

func (f *fakeRepo) InsertProducts(_ context.Context, products []*Product) error {
	if f.insertProductsErr != nil {
		return f.insertProductsErr
	}
	f.products = append(f.products, products...)
	return nil
}

func (f *fakeRepo) ListByStore(_ context.Context, storeID string) ([]*Product, error) {
	var out []*Product
	for _, p := range f.products {
		if p.StoreID.String() == storeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, storeID, productID string) (*Product, error) {
	for _, p := range f.products {
		if p.ID.String() == productID && p.StoreID.String() == storeID {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) UpdateFields(_ context.Context, storeID, productID string, fields map[string]interface{}) (*Product, error) {
	f.lastUpdateFields = fields
	for _, p := range f.products {
		if p.ID.String() == productID && p.StoreID.String() == storeID {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) Delete(_ context.Context, storeID, productID string) error {
	for i, p := range f.products {
		if p.ID.String() == productID && p.StoreID.String() == storeID {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) ListProductIDs(_ context.Context, storeID string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, p := range f.products {
		if p.StoreID.String() == storeID {
			ids = append(ids, p.ID)
		}
	}
	return ids, nil
}

func (f *fakeRepo) ListAttributeOptionsByStore(_ context.Context, _ string) ([]*StoreAttributeOption, error) {
	if f.optionsErr != nil {
		return nil, f.optionsErr
	}
	return f.options, nil
}

func (f *fakeRepo) InsertVariations(_ context.Context, variations []*Variation) error {
	if f.insertVariationsErr != nil {
		return f.insertVariationsErr
	}
	f.variations = append(f.variations, variations...)
	return nil
}

func (f *fakeRepo) ListVariationsByProducts(_ context.Context, productIDs []uuid.UUID) ([]*Variation, error) {
	want := make(map[uuid.UUID]bool, len(productIDs))
	for _, id := range productIDs {
		want[id] = true
	}
	var out []*Variation
	for _, v := range f.variations {
		if want[v.ProductID] {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetVariation(_ context.Context, variationID string) (*Variation, error) {
	for _, v := range f.variations {
		if v.ID.String() == variationID {
			return v, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) DeleteVariation(_ context.Context, variationID string) error {
	f.deletedVariation = variationID
	return nil
}

func newTestService(repo *fakeRepo) Service {
	return NewService(repo, zap.NewNop())
}

func TestCreateProductsSimplePath(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	storeID := uuid.New().String()

	result, err := svc.CreateProducts(context.Background(), storeID, CreateProductRequest{
		Codigo: "P1", Name: "Camisa", Preco1: 50, Stock: 7,
	})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Empty(t, result.Warnings)

	p := result.Products[0]
	assert.Equal(t, "P1", p.Codigo)
	assert.Equal(t, 7, p.Stock)
	assert.Equal(t, []*Variation{}, p.Variations)
}

func TestCreateProductsValidation(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	storeID := uuid.New().String()

	_, err := svc.CreateProducts(context.Background(), storeID, CreateProductRequest{Name: "Camisa"})
	assert.EqualError(t, err, "codigo is required")

	_, err = svc.CreateProducts(context.Background(), storeID, CreateProductRequest{Codigo: "P1"})
	assert.EqualError(t, err, "name is required")

	_, err = svc.CreateProducts(context.Background(), "not-a-uuid", CreateProductRequest{Codigo: "P1", Name: "x"})
	assert.Error(t, err)
}

func TestCreateProductsWithVariations(t *testing.T) {
	tamanho := uuid.New()
	optM := uuid.New()
	optG := uuid.New()
	repo := &fakeRepo{options: []*StoreAttributeOption{
		{ID: optM, AttributeID: tamanho, Value: "M"},
		{ID: optG, AttributeID: tamanho, Value: "G"},
	}}
	svc := newTestService(repo)
	storeID := uuid.New().String()

	result, err := svc.CreateProducts(context.Background(), storeID, CreateProductRequest{
		Codigo: "P1", Name: "Camisa", Preco1: 50,
		VariationGroups: []VariationGroup{{
			AttributeID: tamanho.String(),
			Values:      []VariationValue{{Value: "M", Stock: 5}, {Value: "G", Stock: 3}},
		}},
	})
	require.NoError(t, err)
	require.Len(t, result.Products, 2)
	assert.Empty(t, result.Warnings)

	assert.Equal(t, "P1-M", result.Products[0].Codigo)
	assert.Equal(t, 5, result.Products[0].Stock)
	assert.Equal(t, "P1-G", result.Products[1].Codigo)
	assert.Equal(t, 3, result.Products[1].Stock)

	require.Len(t, result.Products[0].Variations, 1)
	assert.Equal(t, optM, result.Products[0].Variations[0].AttributeOptionID)
	require.Len(t, result.Products[1].Variations, 1)
	assert.Equal(t, optG, result.Products[1].Variations[0].AttributeOptionID)
}

func TestCreateProductsTwoGroupsCount(t *testing.T) {
	size := uuid.New()
	color := uuid.New()
	repo := &fakeRepo{}
	svc := newTestService(repo)
	storeID := uuid.New().String()

	result, err := svc.CreateProducts(context.Background(), storeID, CreateProductRequest{
		Codigo: "P1", Name: "Camisa",
		VariationGroups: []VariationGroup{
			{AttributeID: size.String(), Values: []VariationValue{{Value: "M"}, {Value: "G"}}},
			{AttributeID: color.String(), Values: []VariationValue{{Value: "Red"}, {Value: "Blue"}, {Value: "Black"}}},
		},
	})
	require.NoError(t, err)
	assert.Len(t, result.Products, 6)
	assert.Equal(t, "P1-M-Red", result.Products[0].Codigo)
	assert.Equal(t, "P1-G-Black", result.Products[5].Codigo)
}

func TestCreateProductsUnmatchedValueKeepsProduct(t *testing.T) {
	tamanho := uuid.New()
	optM := uuid.New()
	repo := &fakeRepo{options: []*StoreAttributeOption{
		{ID: optM, AttributeID: tamanho, Value: "M"},
	}}
	svc := newTestService(repo)
	storeID := uuid.New().String()

	result, err := svc.CreateProducts(context.Background(), storeID, CreateProductRequest{
		Codigo: "P1", Name: "Camisa",
		VariationGroups: []VariationGroup{{
			AttributeID: tamanho.String(),
			Values:      []VariationValue{{Value: "M", Stock: 1}, {Value: "XG", Stock: 2}},
		}},
	})
	require.NoError(t, err)
	require.Len(t, result.Products, 2)
	require.Len(t, result.Warnings, 1)

	// The unmatched value still produced a product row, just without a link.
	assert.Len(t, result.Products[0].Variations, 1)
	assert.Empty(t, result.Products[1].Variations)
}

func TestCreateProductsInsertFailureAborts(t *testing.T) {
	repo := &fakeRepo{insertProductsErr: errors.New("connection reset")}
	svc := newTestService(repo)

	_, err := svc.CreateProducts(context.Background(), uuid.New().String(), CreateProductRequest{
		Codigo: "P1", Name: "Camisa",
	})
	assert.Error(t, err)
}

func TestCreateProductsVariationInsertFailureIsWarning(t *testing.T) {
	tamanho := uuid.New()
	repo := &fakeRepo{
		options:             []*StoreAttributeOption{{ID: uuid.New(), AttributeID: tamanho, Value: "M"}},
		insertVariationsErr: errors.New("constraint violation"),
	}
	svc := newTestService(repo)

	result, err := svc.CreateProducts(context.Background(), uuid.New().String(), CreateProductRequest{
		Codigo: "P1", Name: "Camisa",
		VariationGroups: []VariationGroup{{
			AttributeID: tamanho.String(),
			Values:      []VariationValue{{Value: "M", Stock: 1}},
		}},
	})
	// Products survive the failed variation insert.
	require.NoError(t, err)
	assert.Len(t, result.Products, 1)
	assert.NotEmpty(t, result.Warnings)
	assert.Empty(t, result.Products[0].Variations)
}

func TestUpdateProductFiltersDisallowedFields(t *testing.T) {
	storeID := uuid.New()
	p := &Product{ID: uuid.New(), StoreID: storeID, Codigo: "P1", Name: "Camisa"}
	repo := &fakeRepo{products: []*Product{p}}
	svc := newTestService(repo)

	updated, err := svc.UpdateProduct(context.Background(), storeID.String(), p.ID.String(), map[string]interface{}{
		"name":               "Camisa Polo",
		"preco1":             60.0,
		"product_variations": []interface{}{"x"},
		"store_id":           uuid.New().String(),
		"id":                 uuid.New().String(),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "Camisa Polo", "preco1": 60.0}, repo.lastUpdateFields)
	assert.Equal(t, []*Variation{}, updated.Variations)
}

func TestUpdateProductNoUpdatableFields(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	_, err := svc.UpdateProduct(context.Background(), uuid.New().String(), uuid.New().String(),
		map[string]interface{}{"product_variations": []interface{}{}})
	assert.Error(t, err)
}

func TestUpdateProductWrongStore(t *testing.T) {
	p := &Product{ID: uuid.New(), StoreID: uuid.New(), Codigo: "P1"}
	repo := &fakeRepo{products: []*Product{p}}
	svc := newTestService(repo)

	_, err := svc.UpdateProduct(context.Background(), uuid.New().String(), p.ID.String(),
		map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteVariationOwnership(t *testing.T) {
	ownerStore := uuid.New()
	p := &Product{ID: uuid.New(), StoreID: ownerStore}
	v := &Variation{ID: uuid.New(), ProductID: p.ID, AttributeOptionID: uuid.New()}
	repo := &fakeRepo{products: []*Product{p}, variations: []*Variation{v}}
	svc := newTestService(repo)

	// A different store cannot delete the variation.
	err := svc.DeleteVariation(context.Background(), uuid.New().String(), v.ID.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, repo.deletedVariation)

	// The owning store can.
	err = svc.DeleteVariation(context.Background(), ownerStore.String(), v.ID.String())
	require.NoError(t, err)
	assert.Equal(t, v.ID.String(), repo.deletedVariation)
}

func TestListVariationsScopedToStore(t *testing.T) {
	storeA := uuid.New()
	storeB := uuid.New()
	pa := &Product{ID: uuid.New(), StoreID: storeA}
	pb := &Product{ID: uuid.New(), StoreID: storeB}
	va := &Variation{ID: uuid.New(), ProductID: pa.ID}
	vb := &Variation{ID: uuid.New(), ProductID: pb.ID}
	repo := &fakeRepo{products: []*Product{pa, pb}, variations: []*Variation{va, vb}}
	svc := newTestService(repo)

	variations, err := svc.ListVariations(context.Background(), storeA.String(), "")
	require.NoError(t, err)
	require.Len(t, variations, 1)
	assert.Equal(t, va.ID, variations[0].ID)

	// Filtering by a product of another store yields nothing.
	variations, err = svc.ListVariations(context.Background(), storeA.String(), pb.ID.String())
	require.NoError(t, err)
	assert.Empty(t, variations)
}
