package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNameIndex_Resolve(t *testing.T) {
	ix := NameIndex{"TAL001": "Ana"}

	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{
			name:     "Id presente resolve para o nome cadastrado",
			id:       "TAL001",
			expected: "Ana",
		},
		{
			name:     "Id ausente resolve para o fallback",
			id:       "TAL999",
			expected: UnknownTalent,
		},
		{
			name:     "Id vazio resolve para o fallback",
			id:       "",
			expected: UnknownTalent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ix.Resolve(tt.id, UnknownTalent))
		})
	}
}

func TestDecorateSales(t *testing.T) {
	talents := TalentNames([]Talent{{ID: "TAL001", Name: "Ana"}})
	accounts := AccountNames([]Account{{ID: "ACC001", Name: "Conta Principal"}})

	sales := []Sale{
		{ID: "S1", TalentID: "TAL001", AccountID: "ACC001", GMV: 100},
		{ID: "S2", TalentID: "TAL999", AccountID: "", GMV: 50},
	}

	decorated := DecorateSales(sales, talents, accounts)

	assert.Len(t, decorated, 2)
	assert.Equal(t, "Ana", decorated[0].TalentName)
	assert.Equal(t, "Conta Principal", decorated[0].AccountName)

	// Referência apagada e referência vazia caem no substituto
	assert.Equal(t, UnknownTalent, decorated[1].TalentName)
	assert.Equal(t, UnknownAccount, decorated[1].AccountName)
}

func TestDecoratePosts(t *testing.T) {
	products := ProductNames([]Product{{ID: "PROD001", Name: "Batom Vermelho"}})
	stores := StoreNames([]Store{{ID: "STO001", Name: "Loja Beleza"}})
	accounts := AccountNames([]Account{{ID: "ACC001", Name: "Conta Principal"}})
	talents := TalentNames([]Talent{{ID: "TAL001", Name: "Ana"}})

	posts := []ProductPost{
		{
			ID:        "P1",
			ProductID: "PROD001",
			StoreID:   "STO001",
			AccountID: "ACC001",
			TalentID:  "TAL001",
			PostedAt:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{ID: "P2", ProductID: "PROD999", StoreID: "STO999", AccountID: "ACC999", TalentID: "TAL999"},
	}

	decorated := DecoratePosts(posts, products, stores, accounts, talents)

	assert.Len(t, decorated, 2)
	assert.Equal(t, "Batom Vermelho", decorated[0].ProductName)
	assert.Equal(t, "Loja Beleza", decorated[0].StoreName)
	assert.Equal(t, "Conta Principal", decorated[0].AccountName)
	assert.Equal(t, "Ana", decorated[0].TalentName)

	assert.Equal(t, UnknownProduct, decorated[1].ProductName)
	assert.Equal(t, UnknownStore, decorated[1].StoreName)
	assert.Equal(t, UnknownAccount, decorated[1].AccountName)
	assert.Equal(t, UnknownTalent, decorated[1].TalentName)
}

func TestDecorateProducts(t *testing.T) {
	stores := StoreNames([]Store{{ID: "STO001", Name: "Loja Beleza"}})

	decorated := DecorateProducts([]Product{
		{ID: "PROD001", Name: "Batom Vermelho", StoreID: "STO001"},
		{ID: "PROD002", Name: "Máscara de Cílios", StoreID: "STO999"},
	}, stores)

	assert.Equal(t, "Loja Beleza", decorated[0].StoreName)
	assert.Equal(t, UnknownStore, decorated[1].StoreName)
}

func TestDecorateProductSales(t *testing.T) {
	stores := StoreNames([]Store{{ID: "STO001", Name: "Loja Beleza"}})
	products := ProductNames([]Product{{ID: "PROD001", Name: "Batom Vermelho"}})

	decorated := DecorateProductSales([]ProductSale{
		{ID: "PS1", StoreID: "STO001", ProductID: "PROD001", Quantity: 2},
		{ID: "PS2", StoreID: "", ProductID: ""},
	}, stores, products)

	assert.Equal(t, "Loja Beleza", decorated[0].StoreName)
	assert.Equal(t, "Batom Vermelho", decorated[0].ProductName)
	assert.Equal(t, UnknownStore, decorated[1].StoreName)
	assert.Equal(t, UnknownProduct, decorated[1].ProductName)
}

func TestDecorateContentCounts(t *testing.T) {
	talents := TalentNames([]Talent{{ID: "TAL001", Name: "Ana"}})
	stores := StoreNames([]Store{{ID: "STO001", Name: "Loja Beleza"}})

	decorated := DecorateContentCounts([]ContentCount{
		{ID: "CC1", TalentID: "TAL001", StoreID: "STO001", Count: 5},
		{ID: "CC2", TalentID: "TAL999", StoreID: "STO999", Count: 3},
	}, talents, stores)

	assert.Equal(t, "Ana", decorated[0].TalentName)
	assert.Equal(t, "Loja Beleza", decorated[0].StoreName)
	assert.Equal(t, UnknownTalent, decorated[1].TalentName)
	assert.Equal(t, UnknownStore, decorated[1].StoreName)
}
