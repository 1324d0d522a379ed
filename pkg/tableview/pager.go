package tableview

// DefaultPageSize é o tamanho fixo de página das tabelas
const DefaultPageSize = 10

// Pager controla a página corrente de um conjunto ordenado e filtrado.
// Qualquer mudança de filtro ou ordenação deve redefinir a página para 1.
type Pager struct {
	Page     int
	PageSize int
}

func NewPager() Pager {
	return Pager{Page: 1, PageSize: DefaultPageSize}
}

// Reset volta para a primeira página
func (p *Pager) Reset() {
	p.Page = 1
}

// SetPage define a página corrente, rejeitando valores inválidos
func (p *Pager) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	p.Page = page
}

// TotalPages calcula o número de páginas para o total de itens
func (p Pager) TotalPages(totalItems int) int {
	if totalItems <= 0 {
		return 0
	}
	return (totalItems + p.PageSize - 1) / p.PageSize
}

// Page recorta a página corrente do conjunto ordenado
func Page[T any](items []T, p Pager) []T {
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	start := (p.Page - 1) * p.PageSize
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
