package cataloging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/talent-commerce-api/infrastructure/docstore"
	"github.com/vfg2006/talent-commerce-api/infrastructure/docstore/mocks"
	"github.com/vfg2006/talent-commerce-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_TalentLifecycle(t *testing.T) {
	service := NewService(docstore.NewMemoryStore())
	ctx := context.Background()

	id, err := service.CreateTalent(ctx, "Ana")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	talents, err := service.ListTalents(ctx)
	require.NoError(t, err)
	require.Len(t, talents, 1)
	assert.Equal(t, "Ana", talents[0].Name)

	require.NoError(t, service.UpdateTalent(ctx, id, "Ana Clara"))

	talents, err = service.ListTalents(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana Clara", talents[0].Name)

	require.NoError(t, service.DeleteTalent(ctx, id))

	talents, err = service.ListTalents(ctx)
	require.NoError(t, err)
	assert.Empty(t, talents)
}

func TestService_CreateValidaNomeAntesDoStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa registrada: qualquer chamada ao store falha o teste
	service := NewService(mocks.NewMockStore(ctrl))
	ctx := context.Background()

	_, err := service.CreateTalent(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = service.CreateStore(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = service.CreateAccount(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	assert.ErrorIs(t, service.UpdateAccount(ctx, "ACC-1", ""), domain.ErrNameRequired)
}

func TestService_UpdateTalentInexistente(t *testing.T) {
	service := NewService(docstore.NewMemoryStore())

	err := service.UpdateTalent(context.Background(), "nao-existe", "Ana")
	assert.ErrorIs(t, err, docstore.ErrDocumentNotFound)
}

func TestService_DeleteTalents(t *testing.T) {
	store := docstore.NewMemoryStore()
	service := NewService(store)
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"Ana", "Bruno", "Carla"} {
		id, err := service.CreateTalent(ctx, name)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	// Exclusão em massa de um subconjunto selecionado
	require.NoError(t, service.DeleteTalents(ctx, ids[:2]))

	talents, err := service.ListTalents(ctx)
	require.NoError(t, err)
	require.Len(t, talents, 1)
	assert.Equal(t, "Carla", talents[0].Name)
}

func TestService_ProductLifecycle(t *testing.T) {
	service := NewService(docstore.NewMemoryStore())
	ctx := context.Background()

	storeID, err := service.CreateStore(ctx, "Loja Beleza")
	require.NoError(t, err)

	productID, err := service.CreateProduct(ctx, domain.NewProduct{
		Name:    "Batom",
		StoreID: storeID,
		Link:    "https://loja.example/batom",
	})
	require.NoError(t, err)

	products, err := service.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Batom", products[0].Name)
	assert.Equal(t, "Loja Beleza", products[0].StoreName)
	assert.Equal(t, "https://loja.example/batom", products[0].Link)

	require.NoError(t, service.UpdateProduct(ctx, productID, domain.NewProduct{
		Name:    "Batom Vermelho",
		StoreID: storeID,
	}))

	products, err = service.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Batom Vermelho", products[0].Name)
}

func TestService_ProductComLojaApagada(t *testing.T) {
	service := NewService(docstore.NewMemoryStore())
	ctx := context.Background()

	storeID, err := service.CreateStore(ctx, "Loja Beleza")
	require.NoError(t, err)

	_, err = service.CreateProduct(ctx, domain.NewProduct{Name: "Batom", StoreID: storeID})
	require.NoError(t, err)

	// Apagar a loja não apaga o produto; a exibição cai no substituto
	require.NoError(t, service.DeleteStore(ctx, storeID))

	products, err := service.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, domain.UnknownStore, products[0].StoreName)
}

func TestService_CreateProductInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockStore(ctrl))
	ctx := context.Background()

	_, err := service.CreateProduct(ctx, domain.NewProduct{StoreID: "STO-1"})
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = service.CreateProduct(ctx, domain.NewProduct{Name: "Batom"})
	assert.ErrorIs(t, err, domain.ErrStoreRequired)
}
