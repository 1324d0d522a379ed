package domain

// Nomes substitutos quando uma chave estrangeira não resolve para uma
// entidade de referência existente (referência apagada ou ausente).
// A decoração nunca falha por causa de referência quebrada.
const (
	UnknownTalent  = "Unknown Talent"
	UnknownStore   = "Unknown Store"
	UnknownAccount = "Unknown Account"
	UnknownProduct = "Unknown Product"
)

// NameIndex mapeia o id de uma entidade de referência para o nome de exibição
type NameIndex map[string]string

// Resolve retorna o nome de exibição para o id informado, ou o fallback
// quando o id é vazio ou não consta no índice
func (ix NameIndex) Resolve(id, fallback string) string {
	if id == "" {
		return fallback
	}
	if name, ok := ix[id]; ok {
		return name
	}
	return fallback
}

// TalentNames constrói o índice id -> nome a partir do snapshot de talentos
func TalentNames(talents []Talent) NameIndex {
	ix := make(NameIndex, len(talents))
	for _, t := range talents {
		ix[t.ID] = t.Name
	}
	return ix
}

func StoreNames(stores []Store) NameIndex {
	ix := make(NameIndex, len(stores))
	for _, s := range stores {
		ix[s.ID] = s.Name
	}
	return ix
}

func AccountNames(accounts []Account) NameIndex {
	ix := make(NameIndex, len(accounts))
	for _, a := range accounts {
		ix[a.ID] = a.Name
	}
	return ix
}

func ProductNames(products []Product) NameIndex {
	ix := make(NameIndex, len(products))
	for _, p := range products {
		ix[p.ID] = p.Name
	}
	return ix
}

// SaleWithNames é uma venda decorada com os nomes resolvidos das referências
type SaleWithNames struct {
	Sale
	TalentName  string `json:"talentName"`
	AccountName string `json:"accountName"`
}

// ProductPostWithNames é uma postagem decorada com os nomes resolvidos
type ProductPostWithNames struct {
	ProductPost
	ProductName string `json:"productName"`
	StoreName   string `json:"storeName"`
	AccountName string `json:"accountName"`
	TalentName  string `json:"talentName"`
}

// ProductWithStore é um produto decorado com o nome da loja
type ProductWithStore struct {
	Product
	StoreName string `json:"storeName"`
}

// ProductSaleWithNames é uma venda de produto decorada com os nomes resolvidos
type ProductSaleWithNames struct {
	ProductSale
	StoreName   string `json:"storeName"`
	ProductName string `json:"productName"`
}

// ContentCountWithNames é um registro de volume de conteúdo decorado
type ContentCountWithNames struct {
	ContentCount
	TalentName string `json:"talentName"`
	StoreName  string `json:"storeName"`
}

// DecorateSales decora as vendas com nomes de talento e conta. Função pura:
// deve ser reexecutada sempre que as vendas ou as referências mudarem.
func DecorateSales(sales []Sale, talents, accounts NameIndex) []SaleWithNames {
	out := make([]SaleWithNames, 0, len(sales))
	for _, s := range sales {
		out = append(out, SaleWithNames{
			Sale:        s,
			TalentName:  talents.Resolve(s.TalentID, UnknownTalent),
			AccountName: accounts.Resolve(s.AccountID, UnknownAccount),
		})
	}
	return out
}

// DecoratePosts decora as postagens com os quatro nomes resolvidos
func DecoratePosts(posts []ProductPost, products, stores, accounts, talents NameIndex) []ProductPostWithNames {
	out := make([]ProductPostWithNames, 0, len(posts))
	for _, p := range posts {
		out = append(out, ProductPostWithNames{
			ProductPost: p,
			ProductName: products.Resolve(p.ProductID, UnknownProduct),
			StoreName:   stores.Resolve(p.StoreID, UnknownStore),
			AccountName: accounts.Resolve(p.AccountID, UnknownAccount),
			TalentName:  talents.Resolve(p.TalentID, UnknownTalent),
		})
	}
	return out
}

// DecorateProducts decora os produtos com o nome da loja
func DecorateProducts(products []Product, stores NameIndex) []ProductWithStore {
	out := make([]ProductWithStore, 0, len(products))
	for _, p := range products {
		out = append(out, ProductWithStore{
			Product:   p,
			StoreName: stores.Resolve(p.StoreID, UnknownStore),
		})
	}
	return out
}

// DecorateProductSales decora as vendas de produto com loja e produto
func DecorateProductSales(sales []ProductSale, stores, products NameIndex) []ProductSaleWithNames {
	out := make([]ProductSaleWithNames, 0, len(sales))
	for _, s := range sales {
		out = append(out, ProductSaleWithNames{
			ProductSale: s,
			StoreName:   stores.Resolve(s.StoreID, UnknownStore),
			ProductName: products.Resolve(s.ProductID, UnknownProduct),
		})
	}
	return out
}

// DecorateContentCounts decora os registros de volume de conteúdo
func DecorateContentCounts(counts []ContentCount, talents, stores NameIndex) []ContentCountWithNames {
	out := make([]ContentCountWithNames, 0, len(counts))
	for _, c := range counts {
		out = append(out, ContentCountWithNames{
			ContentCount: c,
			TalentName:   talents.Resolve(c.TalentID, UnknownTalent),
			StoreName:    stores.Resolve(c.StoreID, UnknownStore),
		})
	}
	return out
}
