package payment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	methods []*Method
}

func (f *fakeRepo) Create(_ context.Context, m *Method) error {
	f.methods = append(f.methods, m)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Method, error) {
	for _, m := range f.methods {
		if m.ID.String() == id {
			return m, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) ListByStore(_ context.Context, storeID string) ([]*Method, error) {
	var out []*Method
	for _, m := range f.methods {
		if m.StoreID.String() == storeID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	for i, m := range f.methods {
		if m.ID.String() == id {
			f.methods = append(f.methods[:i], f.methods[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func TestCreateMethodDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	m, err := svc.CreateMethod(context.Background(), uuid.New().String(), CreateMethodRequest{
		Name: "  Cartão de Crédito  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cartão de Crédito", m.Name)
	assert.Equal(t, "À Vista", m.Parcelas)
	assert.Empty(t, m.Codigo)
}

func TestCreateMethodValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})
	storeID := uuid.New().String()

	_, err := svc.CreateMethod(context.Background(), storeID, CreateMethodRequest{Name: "   "})
	assert.EqualError(t, err, "Insira o nome do Método de Pagamento")

	_, err = svc.CreateMethod(context.Background(), storeID, CreateMethodRequest{Name: "Pix", Codigo: "1234"})
	assert.EqualError(t, err, "Código deve ter no máximo 3 números")

	_, err = svc.CreateMethod(context.Background(), storeID, CreateMethodRequest{Name: "Pix", Codigo: "ab"})
	assert.EqualError(t, err, "Código deve ter no máximo 3 números")

	_, err = svc.CreateMethod(context.Background(), storeID, CreateMethodRequest{Name: "Pix", Parcelas: "13x"})
	assert.EqualError(t, err, "Parcela inválida")
}

func TestCreateMethodAcceptsValidParcelas(t *testing.T) {
	svc := NewService(&fakeRepo{})
	storeID := uuid.New().String()

	for _, parcelas := range []string{"À Vista", "2x", "12x"} {
		m, err := svc.CreateMethod(context.Background(), storeID, CreateMethodRequest{
			Name: "Cartão", Codigo: "001", Parcelas: parcelas,
		})
		require.NoError(t, err)
		assert.Equal(t, parcelas, m.Parcelas)
	}
}

func TestDeleteMethodOwnership(t *testing.T) {
	ownerStore := uuid.New()
	m := &Method{ID: uuid.New(), StoreID: ownerStore, Name: "Pix"}
	repo := &fakeRepo{methods: []*Method{m}}
	svc := NewService(repo)

	err := svc.DeleteMethod(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteMethod(context.Background(), uuid.New().String(), m.ID.String())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Len(t, repo.methods, 1)

	err = svc.DeleteMethod(context.Background(), ownerStore.String(), m.ID.String())
	require.NoError(t, err)
	assert.Empty(t, repo.methods)
}
