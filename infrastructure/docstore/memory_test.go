package docstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AddAtribuiID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.Add(ctx, "talents", Fields{"name": "Ana"})
	require.NoError(t, err)
	assert.Len(t, id, 20)

	docs, err := store.GetAll(ctx, "talents")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, id, docs[0].ID)
}

func TestMemoryStore_SnapshotPreservaOrdemDeInsercao(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := store.Add(ctx, "talents", Fields{"name": fmt.Sprintf("Talento %d", i)})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	docs, err := store.GetAll(ctx, "talents")
	require.NoError(t, err)
	require.Len(t, docs, 5)
	for i, doc := range docs {
		assert.Equal(t, ids[i], doc.ID)
	}
}

func TestMemoryStore_SubscribeEntregaImediata(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Add(ctx, "stores", Fields{"name": "Loja Beleza"})
	require.NoError(t, err)

	var deliveries [][]Document
	disposer, err := store.Subscribe(ctx, "stores", func(docs []Document) {
		deliveries = append(deliveries, docs)
	})
	require.NoError(t, err)

	// O estado corrente chega antes de qualquer alteração
	require.Len(t, deliveries, 1)
	assert.Len(t, deliveries[0], 1)

	_, err = store.Add(ctx, "stores", Fields{"name": "Loja Moda"})
	require.NoError(t, err)
	require.Len(t, deliveries, 2)
	assert.Len(t, deliveries[1], 2)

	// Após o descarte nenhuma entrega acontece
	disposer()
	_, err = store.Add(ctx, "stores", Fields{"name": "Loja Esporte"})
	require.NoError(t, err)
	assert.Len(t, deliveries, 2)
}

func TestMemoryStore_Update(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.Add(ctx, "products", Fields{"name": "Batom", "storeId": "STO-1"})
	require.NoError(t, err)

	// Merge parcial: campos não informados permanecem
	require.NoError(t, store.Update(ctx, "products", id, Fields{"name": "Batom Vermelho"}))

	docs, err := store.GetAll(ctx, "products")
	require.NoError(t, err)
	require.Len(t, docs, 1)

	var decoded map[string]any
	require.NoError(t, docs[0].Decode(&decoded))
	assert.Equal(t, "Batom Vermelho", decoded["name"])
	assert.Equal(t, "STO-1", decoded["storeId"])
}

func TestMemoryStore_UpdateDocumentoInexistente(t *testing.T) {
	store := NewMemoryStore()

	err := store.Update(context.Background(), "products", "nao-existe", Fields{"name": "x"})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestMemoryStore_DeleteInexistenteNaoFalha(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Delete(context.Background(), "products", "nao-existe"))
}

func TestMemoryStore_ServerTimestamp(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	before := time.Now().UTC()
	_, err := store.Add(ctx, "productPosts", Fields{
		"videoUrl": "https://video.example/1",
		"postedAt": ServerTimestamp,
	})
	require.NoError(t, err)
	after := time.Now().UTC()

	docs, err := store.GetAll(ctx, "productPosts")
	require.NoError(t, err)
	require.Len(t, docs, 1)

	var decoded struct {
		PostedAt time.Time `json:"postedAt"`
	}
	require.NoError(t, docs[0].Decode(&decoded))

	// O sentinela foi substituído pelo horário do servidor na gravação
	assert.False(t, decoded.PostedAt.Before(before))
	assert.False(t, decoded.PostedAt.After(after))
}

func TestMemoryStore_BatchDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	// 1200 documentos excedem duas vezes o limite de lote
	ids := make([]string, 0, 1200)
	for i := 0; i < 1200; i++ {
		id, err := store.Add(ctx, "sales", Fields{"gmv": float64(i)})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	// Um assinante registrado após a carga recebe a entrega inicial e depois
	// uma única entrega consolidada da exclusão em massa
	var deliveries int
	_, err := store.Subscribe(ctx, "sales", func([]Document) { deliveries++ })
	require.NoError(t, err)
	require.Equal(t, 1, deliveries)

	require.NoError(t, store.BatchDelete(ctx, "sales", ids))

	docs, err := store.GetAll(ctx, "sales")
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.Equal(t, 2, deliveries)
}

func TestMemoryStore_BatchDeleteVazio(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var deliveries int
	_, err := store.Subscribe(ctx, "sales", func([]Document) { deliveries++ })
	require.NoError(t, err)

	// Sem ids nenhum lote é executado e nenhuma notificação é emitida
	require.NoError(t, store.BatchDelete(ctx, "sales", nil))
	assert.Equal(t, 1, deliveries)
}

func TestMemoryStore_ColecoesIndependentes(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Add(ctx, "talents", Fields{"name": "Ana"})
	require.NoError(t, err)

	docs, err := store.GetAll(ctx, "stores")
	require.NoError(t, err)
	assert.Empty(t, docs)
}
