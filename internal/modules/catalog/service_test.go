package catalog

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
	attributes []*ProductAttribute
	attrOpts   []*AttributeOption
	columns    []*ProductColumn
	colOpts    []*ColumnOption

	createOptionsErr error
	updateAttrErr    error
}

func (f *fakeRepo) CreateAttribute(_ context.Context, a *ProductAttribute) error {
	f.attributes = append(f.attributes, a)
	return nil
}

func (f *fakeRepo) CreateAttributeOptions(_ context.Context, opts []*AttributeOption) error {
	if f.createOptionsErr != nil {
		return f.createOptionsErr
	}
	f.attrOpts = append(f.attrOpts, opts...)
	return nil
}

func (f *fakeRepo) ListAttributes(_ context.Context, storeID string) ([]*ProductAttribute, error) {
	var out []*ProductAttribute
	for _, a := range f.attributes {
		if a.StoreID.String() == storeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAttributeOptions(_ context.Context, attributeIDs []uuid.UUID) ([]*AttributeOption, error) {
	want := make(map[uuid.UUID]bool, len(attributeIDs))
	for _, id := range attributeIDs {
		want[id] = true
	}
	var out []*AttributeOption
	for _, o := range f.attrOpts {
		if want[o.AttributeID] {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateAttribute(_ context.Context, storeID, attributeID string, fields UpdateAttributeRequest) (*ProductAttribute, error) {
	if f.updateAttrErr != nil {
		return nil, f.updateAttrErr
	}
	for _, a := range f.attributes {
		if a.ID.String() == attributeID && a.StoreID.String() == storeID {
			if fields.Name != nil {
				a.Name = *fields.Name
			}
			if fields.Label != nil {
				a.Label = *fields.Label
			}
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) DeleteAttribute(_ context.Context, storeID, attributeID string) error {
	for i, a := range f.attributes {
		if a.ID.String() == attributeID && a.StoreID.String() == storeID {
			f.attributes = append(f.attributes[:i], f.attributes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) CreateColumn(_ context.Context, c *ProductColumn) error {
	f.columns = append(f.columns, c)
	return nil
}

func (f *fakeRepo) ListColumns(_ context.Context, storeID string) ([]*ProductColumn, error) {
	var out []*ProductColumn
	for _, c := range f.columns {
		if c.StoreID.String() == storeID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateColumn(_ context.Context, storeID, columnID string, fields UpdateColumnRequest) (*ProductColumn, error) {
	for _, c := range f.columns {
		if c.ID.String() == columnID && c.StoreID.String() == storeID {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) DeleteColumn(_ context.Context, storeID, columnID string) error {
	for i, c := range f.columns {
		if c.ID.String() == columnID && c.StoreID.String() == storeID {
			f.columns = append(f.columns[:i], f.columns[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) CreateColumnOption(_ context.Context, o *ColumnOption) error {
	f.colOpts = append(f.colOpts, o)
	return nil
}

func (f *fakeRepo) ListColumnOptions(_ context.Context, columnID string) ([]*ColumnOption, error) {
	var out []*ColumnOption
	for _, o := range f.colOpts {
		if o.ColumnID.String() == columnID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListColumnOptionsByColumns(_ context.Context, columnIDs []uuid.UUID) ([]*ColumnOption, error) {
	want := make(map[uuid.UUID]bool, len(columnIDs))
	for _, id := range columnIDs {
		want[id] = true
	}
	var out []*ColumnOption
	for _, o := range f.colOpts {
		if want[o.ColumnID] {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRepo) MaxColumnOptionPosition(_ context.Context, columnID string) (int, bool, error) {
	max, found := 0, false
	for _, o := range f.colOpts {
		if o.ColumnID.String() != columnID {
			continue
		}
		if !found || o.Position > max {
			max = o.Position
		}
		found = true
	}
	return max, found, nil
}

func (f *fakeRepo) UpdateColumnOption(_ context.Context, optionID string, value *string, position *int) (*ColumnOption, error) {
	for _, o := range f.colOpts {
		if o.ID.String() == optionID {
			if value != nil {
				o.Value = *value
			}
			if position != nil {
				o.Position = *position
			}
			return o, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) DeleteColumnOption(_ context.Context, optionID string) error {
	for i, o := range f.colOpts {
		if o.ID.String() == optionID {
			f.colOpts = append(f.colOpts[:i], f.colOpts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func newTestService(repo *fakeRepo) Service {
	return NewService(repo, zap.NewNop())
}

func TestCreateAttributeWithOptions(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	storeID := uuid.New().String()

	result, err := svc.CreateAttribute(context.Background(), storeID, CreateAttributeRequest{
		Name: "tamanho", Label: "Tamanho", IsVariation: true,
		Options: []string{"M", "G"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)

	attr := result.Attribute
	assert.Equal(t, "tamanho", attr.Name)
	assert.True(t, attr.IsVariation)
	require.Len(t, attr.Options, 2)
	assert.Equal(t, "M", attr.Options[0].Value)
	assert.Equal(t, 0, attr.Options[0].Position)
	assert.Equal(t, "G", attr.Options[1].Value)
	assert.Equal(t, 1, attr.Options[1].Position)

	// Options landed in storage linked to the attribute.
	require.Len(t, repo.attrOpts, 2)
	assert.Equal(t, attr.ID, repo.attrOpts[0].AttributeID)
}

func TestCreateAttributeOptionFailureIsWarning(t *testing.T) {
	repo := &fakeRepo{createOptionsErr: errors.New("insert failed")}
	svc := newTestService(repo)

	result, err := svc.CreateAttribute(context.Background(), uuid.New().String(), CreateAttributeRequest{
		Name: "cor", Label: "Cor", Options: []string{"Azul"},
	})
	// The attribute survives; the failure is reported, not returned.
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Len(t, repo.attributes, 1)
	assert.Equal(t, []*AttributeOption{}, result.Attribute.Options)
}

func TestCreateAttributeValidation(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	storeID := uuid.New().String()

	_, err := svc.CreateAttribute(context.Background(), storeID, CreateAttributeRequest{Label: "Tamanho"})
	assert.EqualError(t, err, "name is required")

	_, err = svc.CreateAttribute(context.Background(), storeID, CreateAttributeRequest{Name: "tamanho"})
	assert.EqualError(t, err, "label is required")

	_, err = svc.CreateAttribute(context.Background(), "bogus", CreateAttributeRequest{Name: "x", Label: "X"})
	assert.Error(t, err)
}

func TestListAttributesEnrichesOptions(t *testing.T) {
	storeID := uuid.New()
	withOpts := &ProductAttribute{ID: uuid.New(), StoreID: storeID, Name: "tamanho"}
	bare := &ProductAttribute{ID: uuid.New(), StoreID: storeID, Name: "cor"}
	repo := &fakeRepo{
		attributes: []*ProductAttribute{withOpts, bare},
		attrOpts: []*AttributeOption{
			{ID: uuid.New(), AttributeID: withOpts.ID, Value: "M", Position: 0},
		},
	}
	svc := newTestService(repo)

	attrs, err := svc.ListAttributes(context.Background(), storeID.String())
	require.NoError(t, err)
	require.Len(t, attrs, 2)
	require.Len(t, attrs[0].Options, 1)
	assert.Equal(t, "M", attrs[0].Options[0].Value)
	// An attribute without options still serializes an empty array.
	assert.Equal(t, []*AttributeOption{}, attrs[1].Options)
}

func TestUpdateAttributeNotFound(t *testing.T) {
	repo := &fakeRepo{updateAttrErr: ErrNotFound}
	svc := newTestService(repo)

	name := "novo"
	_, err := svc.UpdateAttribute(context.Background(), uuid.New().String(), uuid.New().String(),
		UpdateAttributeRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateColumnDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	col, err := svc.CreateColumn(context.Background(), uuid.New().String(), CreateColumnRequest{
		FieldName: "marca", Label: "Marca",
	})
	require.NoError(t, err)
	assert.True(t, col.IsVisible)
	assert.True(t, col.IsEditable)
	assert.Equal(t, "text", col.ColumnType)
	assert.Equal(t, "auto", col.Width)

	hidden := false
	col, err = svc.CreateColumn(context.Background(), uuid.New().String(), CreateColumnRequest{
		FieldName: "custo", Label: "Custo", IsVisible: &hidden, ColumnType: "number", Width: "120px",
	})
	require.NoError(t, err)
	assert.False(t, col.IsVisible)
	assert.Equal(t, "number", col.ColumnType)
	assert.Equal(t, "120px", col.Width)
}

func TestAddColumnOptionPositions(t *testing.T) {
	storeID := uuid.New()
	col := &ProductColumn{ID: uuid.New(), StoreID: storeID, FieldName: "marca"}
	repo := &fakeRepo{columns: []*ProductColumn{col}}
	svc := newTestService(repo)

	// First option on an empty column starts at zero.
	opt, err := svc.AddColumnOption(context.Background(), col.ID.String(), "Nike")
	require.NoError(t, err)
	assert.Equal(t, 0, opt.Position)

	opt, err = svc.AddColumnOption(context.Background(), col.ID.String(), "  Adidas  ")
	require.NoError(t, err)
	assert.Equal(t, 1, opt.Position)
	assert.Equal(t, "Adidas", opt.Value)
}

func TestAddColumnOptionValidation(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.AddColumnOption(context.Background(), "not-a-uuid", "Nike")
	assert.Error(t, err)

	_, err = svc.AddColumnOption(context.Background(), uuid.New().String(), "   ")
	assert.EqualError(t, err, "columnId and value are required")
}

func TestListColumnOptionsEmptyStore(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	opts, err := svc.ListColumnOptions(context.Background(), uuid.New().String(), "")
	require.NoError(t, err)
	assert.Equal(t, []*ColumnOption{}, opts)
}

func TestListColumnOptionsAcrossColumns(t *testing.T) {
	storeID := uuid.New()
	colA := &ProductColumn{ID: uuid.New(), StoreID: storeID}
	colB := &ProductColumn{ID: uuid.New(), StoreID: storeID}
	other := &ProductColumn{ID: uuid.New(), StoreID: uuid.New()}
	repo := &fakeRepo{
		columns: []*ProductColumn{colA, colB, other},
		colOpts: []*ColumnOption{
			{ID: uuid.New(), ColumnID: colA.ID, Value: "Nike"},
			{ID: uuid.New(), ColumnID: colB.ID, Value: "P"},
			{ID: uuid.New(), ColumnID: other.ID, Value: "Elsewhere"},
		},
	}
	svc := newTestService(repo)

	// No columnId: every option of the store's columns, none from others.
	opts, err := svc.ListColumnOptions(context.Background(), storeID.String(), "")
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	// With columnId: just that column.
	opts, err = svc.ListColumnOptions(context.Background(), storeID.String(), colA.ID.String())
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "Nike", opts[0].Value)
}

func TestProductDataAggregates(t *testing.T) {
	storeID := uuid.New()
	attr := &ProductAttribute{ID: uuid.New(), StoreID: storeID, Name: "tamanho"}
	col := &ProductColumn{ID: uuid.New(), StoreID: storeID, FieldName: "marca"}
	repo := &fakeRepo{
		attributes: []*ProductAttribute{attr},
		columns:    []*ProductColumn{col},
		attrOpts:   []*AttributeOption{{ID: uuid.New(), AttributeID: attr.ID, Value: "M"}},
	}
	svc := newTestService(repo)

	data, err := svc.ProductData(context.Background(), storeID.String())
	require.NoError(t, err)
	require.Len(t, data.Attributes, 1)
	require.Len(t, data.Attributes[0].Options, 1)
	require.Len(t, data.Columns, 1)
}
