package domain

import "time"

// Nomes das coleções no document store. Cada coleção entrega o snapshot
// completo a cada alteração (semântica de substituição total).
const (
	CollectionTalents        = "talents"
	CollectionStores         = "stores"
	CollectionAccounts       = "accounts"
	CollectionProducts       = "products"
	CollectionProductPosts   = "productPosts"
	CollectionSales          = "sales"
	CollectionProductSales   = "productSales"
	CollectionContentCounts  = "contentCounts"
	CollectionDailySummaries = "dailySummaries"
)

// Talent representa um criador de conteúdo atribuído a vendas e postagens
type Talent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Store representa uma loja vinculada aos produtos
type Store struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Account representa um canal/identidade de divulgação e vendas
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product pertence a exatamente uma loja
type Product struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	StoreID string `json:"storeId"`
	Link    string `json:"link,omitempty"`
}

// ProductPost representa um evento de conteúdo promocional.
// PostedAt é atribuído pelo servidor no momento da criação.
type ProductPost struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	StoreID   string    `json:"storeId"`
	VideoURL  string    `json:"videoUrl"`
	AccountID string    `json:"accountId"`
	TalentID  string    `json:"talentId"`
	PostedAt  time.Time `json:"postedAt"`
}

// Sale representa um evento de receita atribuído a um par talento+conta.
// Não está vinculada a um produto específico.
type Sale struct {
	ID                  string    `json:"id"`
	TalentID            string    `json:"talentId"`
	AccountID           string    `json:"accountId"`
	SaleDate            time.Time `json:"saleDate"`
	GMV                 float64   `json:"gmv"`
	EstimatedCommission float64   `json:"estimatedCommission"`
	ProductViews        int       `json:"productViews"`
	ProductClicks       int       `json:"productClicks"`
}

// ProductSale representa um evento de venda unitária de um produto específico
type ProductSale struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Date      time.Time `json:"date"`
}

// ContentCount registra o volume agregado de conteúdo por talento/loja
type ContentCount struct {
	ID         string    `json:"id"`
	TalentID   string    `json:"talentId"`
	StoreID    string    `json:"storeId"`
	Count      int       `json:"count"`
	RecordedAt time.Time `json:"recordedAt"`
}
