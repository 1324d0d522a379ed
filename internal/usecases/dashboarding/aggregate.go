package dashboarding

import (
	"sort"
	"time"

	"github.com/vfg2006/talent-commerce-api/internal/domain"
	"github.com/vfg2006/talent-commerce-api/pkg/utils"
)

// Snapshot é o estado corrente de todas as coleções assinadas pelo dashboard.
// Cada campo é substituído integralmente a cada entrega da respectiva coleção.
type Snapshot struct {
	Talents       []domain.Talent
	Stores        []domain.Store
	Accounts      []domain.Account
	Products      []domain.Product
	Posts         []domain.ProductPost
	Sales         []domain.Sale
	ProductSales  []domain.ProductSale
	ContentCounts []domain.ContentCount
}

// BuildSummary reduz o snapshot filtrado às métricas do dashboard. Função
// pura e determinística: independe da ordem dos registros de entrada, e os
// empates de ordenação são resolvidos pelo id da entidade (crescente).
func BuildSummary(snap Snapshot, filters domain.ReportFilters) *domain.DashboardSummary {
	talentNames := domain.TalentNames(snap.Talents)
	accountNames := domain.AccountNames(snap.Accounts)

	filteredSales := domain.FilterSales(snap.Sales, filters)
	filteredPosts := domain.FilterPosts(snap.Posts, filters)
	filteredCounts := domain.FilterContentCounts(snap.ContentCounts, filters)

	summary := &domain.DashboardSummary{
		Totals:          sumSales(filteredSales),
		TotalSalesCount: len(filteredSales),
		TotalPosts:      len(filteredPosts),
		TalentRanking:   rankTalents(filteredSales, talentNames),
		SalesByAccount:  rollupAccounts(filteredSales, accountNames),
		AccountAnalysis: analyzeAccounts(filteredPosts, accountNames),
		GeneratedAt:     time.Now().UTC(),
	}

	for _, c := range filteredCounts {
		summary.TotalContentCount += c.Count
	}

	if len(summary.TalentRanking) > 0 {
		top := summary.TalentRanking[0]
		summary.TopTalent = &domain.TopTalent{
			TalentID:   top.TalentID,
			TalentName: top.TalentName,
			GMV:        top.GMV,
		}
	}

	summary.AllSalesMetrics = []domain.MetricValue{
		{Name: domain.MetricTotalGMV, Value: summary.Totals.GMV, Type: domain.MetricTypeCurrency},
		{Name: domain.MetricTotalCommission, Value: summary.Totals.EstimatedCommission, Type: domain.MetricTypeCurrency},
		{Name: domain.MetricTotalViews, Value: float64(summary.Totals.ProductViews), Type: domain.MetricTypeNumber},
		{Name: domain.MetricTotalClicks, Value: float64(summary.Totals.ProductClicks), Type: domain.MetricTypeNumber},
	}
	summary.SalesMetrics = domain.SelectMetrics(summary.AllSalesMetrics, filters.Metric)

	return summary
}

// sumSales calcula as somas escalares sobre as vendas filtradas
func sumSales(sales []domain.Sale) domain.SalesTotals {
	totals := domain.SalesTotals{}
	for _, s := range sales {
		totals.GMV += s.GMV
		totals.EstimatedCommission += s.EstimatedCommission
		totals.ProductViews += s.ProductViews
		totals.ProductClicks += s.ProductClicks
	}

	totals.GMV = utils.RoundWithTwoDecimalPlace(totals.GMV)
	totals.EstimatedCommission = utils.RoundWithTwoDecimalPlace(totals.EstimatedCommission)
	return totals
}

// rankTalents agrupa as vendas por talento, soma o GMV por grupo e ordena
// decrescentemente. Empates são resolvidos pelo id do talento em ordem
// crescente para que o ranking seja determinístico.
func rankTalents(sales []domain.Sale, talents domain.NameIndex) []domain.TalentRankingEntry {
	byTalent := make(map[string]float64)
	for _, s := range sales {
		byTalent[s.TalentID] += s.GMV
	}

	ranking := make([]domain.TalentRankingEntry, 0, len(byTalent))
	for id, gmv := range byTalent {
		ranking = append(ranking, domain.TalentRankingEntry{
			TalentID:   id,
			TalentName: talents.Resolve(id, domain.UnknownTalent),
			GMV:        utils.RoundWithTwoDecimalPlace(gmv),
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].GMV != ranking[j].GMV {
			return ranking[i].GMV > ranking[j].GMV
		}
		return ranking[i].TalentID < ranking[j].TalentID
	})

	return ranking
}

// rollupAccounts agrupa as vendas por conta somando GMV e visualizações,
// ordenado decrescentemente por GMV com empate pelo id da conta
func rollupAccounts(sales []domain.Sale, accounts domain.NameIndex) []domain.AccountSalesEntry {
	type accTotals struct {
		gmv   float64
		views int
	}

	byAccount := make(map[string]*accTotals)
	for _, s := range sales {
		current, ok := byAccount[s.AccountID]
		if !ok {
			current = &accTotals{}
			byAccount[s.AccountID] = current
		}
		current.gmv += s.GMV
		current.views += s.ProductViews
	}

	rollup := make([]domain.AccountSalesEntry, 0, len(byAccount))
	for id, totals := range byAccount {
		rollup = append(rollup, domain.AccountSalesEntry{
			AccountID:    id,
			AccountName:  accounts.Resolve(id, domain.UnknownAccount),
			GMV:          utils.RoundWithTwoDecimalPlace(totals.gmv),
			ProductViews: totals.views,
		})
	}

	sort.Slice(rollup, func(i, j int) bool {
		if rollup[i].GMV != rollup[j].GMV {
			return rollup[i].GMV > rollup[j].GMV
		}
		return rollup[i].AccountID < rollup[j].AccountID
	})

	return rollup
}

// analyzeAccounts agrupa as postagens por conta e calcula a cardinalidade de
// lojas e produtos promovidos (contagem distinta, não soma) e o total de
// postagens, ordenado decrescentemente por postagens com empate pelo id
func analyzeAccounts(posts []domain.ProductPost, accounts domain.NameIndex) []domain.AccountContentEntry {
	type contentSets struct {
		stores   map[string]struct{}
		products map[string]struct{}
		posts    int
	}

	byAccount := make(map[string]*contentSets)
	for _, p := range posts {
		current, ok := byAccount[p.AccountID]
		if !ok {
			current = &contentSets{
				stores:   make(map[string]struct{}),
				products: make(map[string]struct{}),
			}
			byAccount[p.AccountID] = current
		}
		current.stores[p.StoreID] = struct{}{}
		current.products[p.ProductID] = struct{}{}
		current.posts++
	}

	analysis := make([]domain.AccountContentEntry, 0, len(byAccount))
	for id, sets := range byAccount {
		analysis = append(analysis, domain.AccountContentEntry{
			AccountID:        id,
			AccountName:      accounts.Resolve(id, domain.UnknownAccount),
			PromotedStores:   len(sets.stores),
			PromotedProducts: len(sets.products),
			TotalPosts:       sets.posts,
		})
	}

	sort.Slice(analysis, func(i, j int) bool {
		if analysis[i].TotalPosts != analysis[j].TotalPosts {
			return analysis[i].TotalPosts > analysis[j].TotalPosts
		}
		return analysis[i].AccountID < analysis[j].AccountID
	})

	return analysis
}
