package exporting

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/talent-commerce-api/internal/domain"
)

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSV_Sales(t *testing.T) {
	sales := []domain.SaleWithNames{
		{
			Sale: domain.Sale{
				SaleDate:            time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				GMV:                 1250.5,
				EstimatedCommission: 125.05,
				ProductViews:        3000,
				ProductClicks:       150,
			},
			TalentName:  "Ana",
			AccountName: "Conta Principal",
		},
		{
			Sale:        domain.Sale{GMV: 10},
			TalentName:  domain.UnknownTalent,
			AccountName: domain.UnknownAccount,
		},
	}

	data, err := WriteCSV(sales, SaleColumns())
	require.NoError(t, err)

	rows := parseCSV(t, data)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Data", "Talento", "Conta", "GMV", "Comissão Estimada", "Visualizações", "Cliques"}, rows[0])
	assert.Equal(t, []string{"15/01/2024", "Ana", "Conta Principal", "1250.50", "125.05", "3000", "150"}, rows[1])

	// Data zerada exporta como campo vazio
	assert.Equal(t, "", rows[2][0])
	assert.Equal(t, domain.UnknownTalent, rows[2][1])
	assert.Equal(t, "10.00", rows[2][3])
}

func TestWriteCSV_Posts(t *testing.T) {
	posts := []domain.ProductPostWithNames{
		{
			ProductPost: domain.ProductPost{
				VideoURL: "https://video.example/1",
				PostedAt: time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC),
			},
			ProductName: "Batom",
			StoreName:   "Loja Beleza",
			AccountName: "Conta Principal",
			TalentName:  "Ana",
		},
	}

	data, err := WriteCSV(posts, PostColumns())
	require.NoError(t, err)

	rows := parseCSV(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Data", "Produto", "Loja", "Conta", "Talento", "Vídeo"}, rows[0])
	assert.Equal(t, []string{"03/02/2024", "Batom", "Loja Beleza", "Conta Principal", "Ana", "https://video.example/1"}, rows[1])
}

func TestWriteCSV_ProductSales(t *testing.T) {
	sales := []domain.ProductSaleWithNames{
		{
			ProductSale: domain.ProductSale{
				Quantity: 4,
				Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			StoreName:   "Loja Beleza",
			ProductName: "Batom",
		},
	}

	data, err := WriteCSV(sales, ProductSaleColumns())
	require.NoError(t, err)

	rows := parseCSV(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Data", "Loja", "Produto", "Quantidade"}, rows[0])
	assert.Equal(t, []string{"01/03/2024", "Loja Beleza", "Batom", "4"}, rows[1])
}

func TestWriteCSV_ContentCounts(t *testing.T) {
	counts := []domain.ContentCountWithNames{
		{
			ContentCount: domain.ContentCount{
				Count:      17,
				RecordedAt: time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC),
			},
			TalentName: "Ana",
			StoreName:  "Loja Beleza",
		},
	}

	data, err := WriteCSV(counts, ContentCountColumns())
	require.NoError(t, err)

	rows := parseCSV(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Data", "Talento", "Loja", "Conteúdos"}, rows[0])
	assert.Equal(t, []string{"20/04/2024", "Ana", "Loja Beleza", "17"}, rows[1])
}

func TestWriteCSV_SemRegistros(t *testing.T) {
	data, err := WriteCSV(nil, SaleColumns())
	require.NoError(t, err)

	// Apenas o cabeçalho
	rows := parseCSV(t, data)
	assert.Len(t, rows, 1)
}

func TestWriteCSV_EscapaCamposComVirgula(t *testing.T) {
	sales := []domain.SaleWithNames{
		{TalentName: `Ana "Lu", Silva`, AccountName: "Conta"},
	}

	data, err := WriteCSV(sales, SaleColumns())
	require.NoError(t, err)

	rows := parseCSV(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, `Ana "Lu", Silva`, rows[1][1])
}
