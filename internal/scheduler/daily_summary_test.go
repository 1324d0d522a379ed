package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/talent-commerce-api/infrastructure/docstore"
	"github.com/vfg2006/talent-commerce-api/internal/config"
	"github.com/vfg2006/talent-commerce-api/internal/domain"
)

func newTestService(store docstore.Store) *DailySummaryService {
	cfg := &config.Config{}
	cfg.DailySummarySync.CronSchedule = "0 3 * * *"
	cfg.DailySummarySync.Enabled = false
	return NewDailySummaryService(store, cfg)
}

type dailySummaryDoc struct {
	Day               string             `json:"day"`
	Totals            domain.SalesTotals `json:"totals"`
	TotalSalesCount   int                `json:"totalSalesCount"`
	TotalPosts        int                `json:"totalPosts"`
	TotalContentCount int                `json:"totalContentCount"`
	TopTalent         *domain.TopTalent  `json:"topTalent"`
	GeneratedAt       time.Time          `json:"generatedAt"`
}

func TestDailySummaryService_SummarizeDay(t *testing.T) {
	store := docstore.NewMemoryStore()
	ctx := context.Background()

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)

	talentID, err := store.Add(ctx, domain.CollectionTalents, docstore.Fields{"name": "Ana"})
	require.NoError(t, err)

	// Duas vendas no dia consolidado e uma fora dele
	_, err = store.Add(ctx, domain.CollectionSales, docstore.Fields{
		"talentId": talentID,
		"gmv":      100.0,
		"saleDate": day.Add(10 * time.Hour),
	})
	require.NoError(t, err)

	_, err = store.Add(ctx, domain.CollectionSales, docstore.Fields{
		"talentId": talentID,
		"gmv":      50.0,
		"saleDate": day.Add(23 * time.Hour),
	})
	require.NoError(t, err)

	_, err = store.Add(ctx, domain.CollectionSales, docstore.Fields{
		"talentId": talentID,
		"gmv":      999.0,
		"saleDate": day.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	_, err = store.Add(ctx, domain.CollectionContentCounts, docstore.Fields{
		"talentId":   talentID,
		"count":      8,
		"recordedAt": day.Add(12 * time.Hour),
	})
	require.NoError(t, err)

	service := newTestService(store)
	require.NoError(t, service.summarizeDay(ctx, day))

	docs, err := store.GetAll(ctx, domain.CollectionDailySummaries)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	var summary dailySummaryDoc
	require.NoError(t, docs[0].Decode(&summary))

	assert.Equal(t, "2024-01-15", summary.Day)
	assert.Equal(t, 150.0, summary.Totals.GMV)
	assert.Equal(t, 2, summary.TotalSalesCount)
	assert.Equal(t, 8, summary.TotalContentCount)
	require.NotNil(t, summary.TopTalent)
	assert.Equal(t, "Ana", summary.TopTalent.TalentName)
	assert.Equal(t, 150.0, summary.TopTalent.GMV)
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestDailySummaryService_SummarizeDaySemMovimento(t *testing.T) {
	store := docstore.NewMemoryStore()
	ctx := context.Background()

	service := newTestService(store)
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	require.NoError(t, service.summarizeDay(ctx, day))

	docs, err := store.GetAll(ctx, domain.CollectionDailySummaries)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	var summary dailySummaryDoc
	require.NoError(t, docs[0].Decode(&summary))

	assert.Equal(t, 0.0, summary.Totals.GMV)
	assert.Equal(t, 0, summary.TotalSalesCount)
	assert.Nil(t, summary.TopTalent)
}

func TestDailySummaryService_RunDailySummary(t *testing.T) {
	store := docstore.NewMemoryStore()
	service := newTestService(store)

	require.NoError(t, service.RunDailySummary(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())

	docs, err := store.GetAll(context.Background(), domain.CollectionDailySummaries)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestDailySummaryService_StartDesabilitado(t *testing.T) {
	store := docstore.NewMemoryStore()
	service := newTestService(store)

	// Com o agendamento desabilitado o Start não registra jobs
	require.NoError(t, service.Start(context.Background()))
	assert.Len(t, service.scheduler.Jobs(), 0)
}
