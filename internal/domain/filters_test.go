package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestDateRange_Contains(t *testing.T) {
	tests := []struct {
		name      string
		dateRange DateRange
		timestamp time.Time
		expected  bool
	}{
		{
			name:      "Intervalo sem limites aceita qualquer timestamp",
			dateRange: DateRange{},
			timestamp: time.Date(1999, 7, 1, 12, 0, 0, 0, time.UTC),
			expected:  true,
		},
		{
			name:      "Intervalo sem limites aceita timestamp zero",
			dateRange: DateRange{},
			timestamp: time.Time{},
			expected:  true,
		},
		{
			name:      "Timestamp zero é excluído quando há limite de data",
			dateRange: DateRange{Start: datePtr(2024, 1, 1)},
			timestamp: time.Time{},
			expected:  false,
		},
		{
			name:      "Início normalizado para 00:00:00.000 inclui a primeira hora do dia",
			dateRange: DateRange{Start: datePtr(2024, 1, 15)},
			timestamp: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			expected:  true,
		},
		{
			name:      "Momento anterior ao início do dia fica fora",
			dateRange: DateRange{Start: datePtr(2024, 1, 15)},
			timestamp: time.Date(2024, 1, 14, 23, 59, 59, int(999*time.Millisecond), time.UTC),
			expected:  false,
		},
		{
			name:      "Fim normalizado para 23:59:59.999 inclui o último milissegundo",
			dateRange: DateRange{End: datePtr(2024, 1, 15)},
			timestamp: time.Date(2024, 1, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC),
			expected:  true,
		},
		{
			name:      "Momento após 23:59:59.999 fica fora",
			dateRange: DateRange{End: datePtr(2024, 1, 15)},
			timestamp: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			expected:  false,
		},
		{
			name:      "Intervalo de um único dia captura o dia inteiro",
			dateRange: DateRange{Start: datePtr(2024, 3, 10), End: datePtr(2024, 3, 10)},
			timestamp: time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
			expected:  true,
		},
		{
			name:      "Limites fornecidos com hora são normalizados antes da comparação",
			dateRange: DateRange{Start: timePtr(time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)), End: timePtr(time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC))},
			timestamp: time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC),
			expected:  true,
		},
		{
			name:      "Somente início: datas futuras continuam dentro",
			dateRange: DateRange{Start: datePtr(2024, 1, 1)},
			timestamp: time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.dateRange.Contains(tt.timestamp))
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestDateRange_Unbounded(t *testing.T) {
	assert.True(t, DateRange{}.Unbounded())
	assert.False(t, DateRange{Start: datePtr(2024, 1, 1)}.Unbounded())
	assert.False(t, DateRange{End: datePtr(2024, 1, 1)}.Unbounded())
}

func TestReportFilters_Equal(t *testing.T) {
	base := ReportFilters{
		DateRange: DateRange{Start: datePtr(2024, 1, 1), End: datePtr(2024, 1, 31)},
		AccountID: "ACC001",
		TalentID:  "TAL001",
		Metric:    MetricTotalGMV,
	}

	same := ReportFilters{
		DateRange: DateRange{Start: datePtr(2024, 1, 1), End: datePtr(2024, 1, 31)},
		AccountID: "ACC001",
		TalentID:  "TAL001",
		Metric:    MetricTotalGMV,
	}
	assert.True(t, base.Equal(same))

	other := same
	other.AccountID = "ACC002"
	assert.False(t, base.Equal(other))

	other = same
	other.DateRange.End = datePtr(2024, 2, 1)
	assert.False(t, base.Equal(other))
}

func TestReportFilters_MatchSale(t *testing.T) {
	sale := Sale{
		ID:        "S1",
		TalentID:  "TAL001",
		AccountID: "ACC001",
		SaleDate:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		filters  ReportFilters
		expected bool
	}{
		{
			name:     "Sem filtros aceita a venda",
			filters:  ReportFilters{},
			expected: true,
		},
		{
			name:     "Filtro de conta correspondente",
			filters:  ReportFilters{AccountID: "ACC001"},
			expected: true,
		},
		{
			name:     "Filtro de conta divergente rejeita",
			filters:  ReportFilters{AccountID: "ACC002"},
			expected: false,
		},
		{
			name:     "Filtro de talento divergente rejeita",
			filters:  ReportFilters{TalentID: "TAL002"},
			expected: false,
		},
		{
			name: "Filtros dimensionais combinam conjuntivamente com a data",
			filters: ReportFilters{
				DateRange: DateRange{Start: datePtr(2024, 1, 15), End: datePtr(2024, 1, 15)},
				AccountID: "ACC001",
				TalentID:  "TAL001",
			},
			expected: true,
		},
		{
			name: "Data fora do intervalo rejeita mesmo com dimensões corretas",
			filters: ReportFilters{
				DateRange: DateRange{Start: datePtr(2024, 1, 16)},
				AccountID: "ACC001",
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filters.MatchSale(sale))
		})
	}
}

func TestReportFilters_MatchProductSale(t *testing.T) {
	productSale := ProductSale{
		ID:   "PS1",
		Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	// Filtros de conta e talento não se aplicam a vendas de produto
	filters := ReportFilters{AccountID: "ACC999", TalentID: "TAL999"}
	assert.True(t, filters.MatchProductSale(productSale))

	filters.DateRange = DateRange{End: datePtr(2024, 1, 14)}
	assert.False(t, filters.MatchProductSale(productSale))
}

func TestReportFilters_MatchContentCount(t *testing.T) {
	count := ContentCount{
		ID:         "CC1",
		TalentID:   "TAL001",
		RecordedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	// O filtro de conta não se aplica a registros de conteúdo
	assert.True(t, ReportFilters{AccountID: "ACC999"}.MatchContentCount(count))
	assert.True(t, ReportFilters{TalentID: "TAL001"}.MatchContentCount(count))
	assert.False(t, ReportFilters{TalentID: "TAL002"}.MatchContentCount(count))
}

func TestFilterSales(t *testing.T) {
	sales := []Sale{
		{ID: "S1", TalentID: "TAL001", SaleDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "S2", TalentID: "TAL002", SaleDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "S3", TalentID: "TAL001", SaleDate: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)},
	}

	filtered := FilterSales(sales, ReportFilters{
		DateRange: DateRange{Start: datePtr(2024, 1, 1), End: datePtr(2024, 1, 31)},
		TalentID:  "TAL001",
	})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "S1", filtered[0].ID)
}

func TestSelectMetrics(t *testing.T) {
	all := []MetricValue{
		{Name: MetricTotalGMV, Value: 100, Type: MetricTypeCurrency},
		{Name: MetricTotalCommission, Value: 10, Type: MetricTypeCurrency},
		{Name: MetricTotalViews, Value: 500, Type: MetricTypeNumber},
		{Name: MetricTotalClicks, Value: 50, Type: MetricTypeNumber},
	}

	tests := []struct {
		name     string
		selected string
		expected []string
	}{
		{
			name:     "Seleção vazia retorna todas as métricas",
			selected: "",
			expected: []string{MetricTotalGMV, MetricTotalCommission, MetricTotalViews, MetricTotalClicks},
		},
		{
			name:     "Seleção 'all' retorna todas as métricas",
			selected: MetricAll,
			expected: []string{MetricTotalGMV, MetricTotalCommission, MetricTotalViews, MetricTotalClicks},
		},
		{
			name:     "Métrica nomeada restringe a lista",
			selected: MetricTotalViews,
			expected: []string{MetricTotalViews},
		},
		{
			name:     "Métrica desconhecida resulta em lista vazia",
			selected: "Total Refunds",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SelectMetrics(all, tt.selected)
			names := make([]string, 0, len(result))
			for _, m := range result {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}
