package domain

import "time"

// DateRange é um intervalo inclusivo de datas de calendário fornecido pelo
// usuário (sem componente de hora). Os limites são normalizados para
// 00:00:00.000 e 23:59:59.999 dos respectivos dias antes da comparação, de
// forma que um intervalo de um único dia captura o dia inteiro. Um lado
// ausente significa que aquele lado não restringe.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// startOfDay normaliza para 00:00:00.000 do dia
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay normaliza para 23:59:59.999 do dia
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// Unbounded indica que nenhum dos lados restringe o intervalo
func (r DateRange) Unbounded() bool {
	return r.Start == nil && r.End == nil
}

// Contains decide a inclusão de um timestamp no intervalo. Registros sem
// timestamp (zero) são excluídos de visões limitadas por data.
func (r DateRange) Contains(t time.Time) bool {
	if r.Unbounded() {
		return true
	}
	if t.IsZero() {
		return false
	}
	if r.Start != nil && t.Before(startOfDay(*r.Start)) {
		return false
	}
	if r.End != nil && t.After(endOfDay(*r.End)) {
		return false
	}
	return true
}

// Equal compara dois intervalos pelos valores dos limites
func (r DateRange) Equal(other DateRange) bool {
	return equalTimePtr(r.Start, other.Start) && equalTimePtr(r.End, other.End)
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// MetricAll seleciona todas as métricas escalares (filtro identidade)
const MetricAll = "all"

// ReportFilters são os filtros ativos do dashboard e das listagens.
// Os filtros dimensionais combinam conjuntivamente com o intervalo de datas.
type ReportFilters struct {
	DateRange DateRange
	AccountID string
	TalentID  string
	Metric    string
}

// Equal compara filtros pelos valores
func (f ReportFilters) Equal(other ReportFilters) bool {
	return f.DateRange.Equal(other.DateRange) &&
		f.AccountID == other.AccountID &&
		f.TalentID == other.TalentID &&
		f.Metric == other.Metric
}

// MatchSale aplica intervalo de datas e filtros dimensionais a uma venda
func (f ReportFilters) MatchSale(s Sale) bool {
	if !f.DateRange.Contains(s.SaleDate) {
		return false
	}
	if f.AccountID != "" && s.AccountID != f.AccountID {
		return false
	}
	if f.TalentID != "" && s.TalentID != f.TalentID {
		return false
	}
	return true
}

// MatchPost aplica intervalo de datas e filtros dimensionais a uma postagem
func (f ReportFilters) MatchPost(p ProductPost) bool {
	if !f.DateRange.Contains(p.PostedAt) {
		return false
	}
	if f.AccountID != "" && p.AccountID != f.AccountID {
		return false
	}
	if f.TalentID != "" && p.TalentID != f.TalentID {
		return false
	}
	return true
}

// MatchProductSale aplica o intervalo de datas a uma venda de produto
func (f ReportFilters) MatchProductSale(s ProductSale) bool {
	return f.DateRange.Contains(s.Date)
}

// MatchContentCount aplica intervalo de datas e filtro de talento
func (f ReportFilters) MatchContentCount(c ContentCount) bool {
	if !f.DateRange.Contains(c.RecordedAt) {
		return false
	}
	if f.TalentID != "" && c.TalentID != f.TalentID {
		return false
	}
	return true
}

// FilterSales retorna as vendas que passam pelos filtros ativos
func FilterSales(sales []Sale, f ReportFilters) []Sale {
	out := make([]Sale, 0, len(sales))
	for _, s := range sales {
		if f.MatchSale(s) {
			out = append(out, s)
		}
	}
	return out
}

// FilterPosts retorna as postagens que passam pelos filtros ativos
func FilterPosts(posts []ProductPost, f ReportFilters) []ProductPost {
	out := make([]ProductPost, 0, len(posts))
	for _, p := range posts {
		if f.MatchPost(p) {
			out = append(out, p)
		}
	}
	return out
}

// FilterProductSales retorna as vendas de produto dentro do intervalo
func FilterProductSales(sales []ProductSale, f ReportFilters) []ProductSale {
	out := make([]ProductSale, 0, len(sales))
	for _, s := range sales {
		if f.MatchProductSale(s) {
			out = append(out, s)
		}
	}
	return out
}

// FilterContentCounts retorna os registros de conteúdo que passam pelos filtros
func FilterContentCounts(counts []ContentCount, f ReportFilters) []ContentCount {
	out := make([]ContentCount, 0, len(counts))
	for _, c := range counts {
		if f.MatchContentCount(c) {
			out = append(out, c)
		}
	}
	return out
}
