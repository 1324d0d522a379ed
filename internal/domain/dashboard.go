package domain

import "time"

// Rótulos das métricas escalares de vendas expostas como lista selecionável
const (
	MetricTotalGMV        = "Total GMV"
	MetricTotalCommission = "Total Estimated Commission"
	MetricTotalViews      = "Total Product Views"
	MetricTotalClicks     = "Total Product Clicks"
)

// Tipos de formatação das métricas
const (
	MetricTypeCurrency = "currency"
	MetricTypeNumber   = "number"
)

// MetricValue é uma métrica escalar rotulada
type MetricValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Type  string  `json:"type"`
}

// SalesTotals são as somas escalares sobre o conjunto filtrado de vendas
type SalesTotals struct {
	GMV                 float64 `json:"gmv"`
	EstimatedCommission float64 `json:"estimatedCommission"`
	ProductViews        int     `json:"productViews"`
	ProductClicks       int     `json:"productClicks"`
}

// TopTalent é o talento com maior GMV somado no período filtrado
type TopTalent struct {
	TalentID   string  `json:"talentId"`
	TalentName string  `json:"talentName"`
	GMV        float64 `json:"gmv"`
}

// TalentRankingEntry é uma posição do ranking completo de talentos por GMV
type TalentRankingEntry struct {
	TalentID   string  `json:"talentId"`
	TalentName string  `json:"talentName"`
	GMV        float64 `json:"gmv"`
}

// AccountSalesEntry é o rollup de vendas por conta (GMV + visualizações)
type AccountSalesEntry struct {
	AccountID    string  `json:"accountId"`
	AccountName  string  `json:"accountName"`
	GMV          float64 `json:"gmv"`
	ProductViews int     `json:"productViews"`
}

// AccountContentEntry é a análise de conteúdo por conta: contagens
// distintas de lojas e produtos promovidos (cardinalidade de conjunto,
// não soma) mais o total de postagens
type AccountContentEntry struct {
	AccountID        string `json:"accountId"`
	AccountName      string `json:"accountName"`
	PromotedStores   int    `json:"promotedStores"`
	PromotedProducts int    `json:"promotedProducts"`
	TotalPosts       int    `json:"totalPosts"`
}

// DashboardSummary é a saída completa da agregação do dashboard
type DashboardSummary struct {
	Totals            SalesTotals           `json:"totals"`
	TotalSalesCount   int                   `json:"totalSalesCount"`
	TotalPosts        int                   `json:"totalPosts"`
	TotalContentCount int                   `json:"totalContentCount"`
	TopTalent         *TopTalent            `json:"topTalent,omitempty"`
	TalentRanking     []TalentRankingEntry  `json:"talentRanking"`
	SalesByAccount    []AccountSalesEntry   `json:"salesByAccount"`
	AccountAnalysis   []AccountContentEntry `json:"accountAnalysis"`
	SalesMetrics      []MetricValue         `json:"salesMetrics"`
	AllSalesMetrics   []MetricValue         `json:"allSalesMetrics"`
	GeneratedAt       time.Time             `json:"generatedAt"`
}

// SelectMetrics restringe a lista de métricas à métrica nomeada, ou retorna
// a lista completa quando a seleção é vazia ou MetricAll
func SelectMetrics(all []MetricValue, selected string) []MetricValue {
	if selected == "" || selected == MetricAll {
		return all
	}
	out := make([]MetricValue, 0, 1)
	for _, m := range all {
		if m.Name == selected {
			out = append(out, m)
		}
	}
	return out
}
