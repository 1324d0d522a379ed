// Package scheduler contém os serviços de agendamento para consolidação de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/talent-commerce-api/infrastructure/docstore"
	"github.com/vfg2006/talent-commerce-api/internal/config"
	"github.com/vfg2006/talent-commerce-api/internal/domain"
	"github.com/vfg2006/talent-commerce-api/internal/usecases/dashboarding"
)

type DailySummaryConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailySummaryService consolida os indicadores do dia anterior e grava o
// resultado na coleção dailySummaries.
type DailySummaryService struct {
	scheduler           *gocron.Scheduler
	store               docstore.Store
	config              DailySummaryConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDailySummaryService(store docstore.Store, cfg *config.Config) *DailySummaryService {
	summaryConfig := DailySummaryConfig{
		CronSchedule: cfg.DailySummarySync.CronSchedule, // Default: 3h da manhã todos os dias
		Enabled:      cfg.DailySummarySync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": summaryConfig.CronSchedule,
	}).Info("Configuração do agendador de consolidação diária carregada")

	return &DailySummaryService{
		scheduler: scheduler,
		store:     store,
		config:    summaryConfig,
	}
}

func (s *DailySummaryService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de consolidação diária desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de consolidação diária")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunDailySummary(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na consolidação diária dos indicadores")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação diária: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de consolidação diária")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDailySummary consolida os indicadores do dia anterior.
func (s *DailySummaryService) RunDailySummary(ctx context.Context) error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Consolidação diária já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	return s.summarizeDay(ctx, time.Now().AddDate(0, 0, -1))
}

func (s *DailySummaryService) summarizeDay(ctx context.Context, day time.Time) error {
	logrus.WithField("day", day.Format(time.DateOnly)).Info("Iniciando consolidação diária dos indicadores")

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar coleções para a consolidação diária")
		return err
	}

	filters := domain.ReportFilters{
		DateRange: domain.DateRange{Start: &day, End: &day},
	}

	summary := dashboarding.BuildSummary(*snap, filters)

	_, err = s.store.Add(ctx, domain.CollectionDailySummaries, docstore.Fields{
		"day":               day.Format(time.DateOnly),
		"totals":            summary.Totals,
		"totalSalesCount":   summary.TotalSalesCount,
		"totalPosts":        summary.TotalPosts,
		"totalContentCount": summary.TotalContentCount,
		"topTalent":         summary.TopTalent,
		"generatedAt":       docstore.ServerTimestamp,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao gravar a consolidação diária")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"day":   day.Format(time.DateOnly),
		"gmv":   summary.Totals.GMV,
		"sales": summary.TotalSalesCount,
	}).Info("Consolidação diária concluída")

	return nil
}

func (s *DailySummaryService) loadSnapshot(ctx context.Context) (*dashboarding.Snapshot, error) {
	snap := &dashboarding.Snapshot{}

	loaders := []struct {
		collection string
		decode     func([]docstore.Document) error
	}{
		{domain.CollectionTalents, func(docs []docstore.Document) (err error) {
			snap.Talents, err = docstore.DecodeAll[domain.Talent](docs)
			return
		}},
		{domain.CollectionStores, func(docs []docstore.Document) (err error) {
			snap.Stores, err = docstore.DecodeAll[domain.Store](docs)
			return
		}},
		{domain.CollectionAccounts, func(docs []docstore.Document) (err error) {
			snap.Accounts, err = docstore.DecodeAll[domain.Account](docs)
			return
		}},
		{domain.CollectionProducts, func(docs []docstore.Document) (err error) {
			snap.Products, err = docstore.DecodeAll[domain.Product](docs)
			return
		}},
		{domain.CollectionProductPosts, func(docs []docstore.Document) (err error) {
			snap.Posts, err = docstore.DecodeAll[domain.ProductPost](docs)
			return
		}},
		{domain.CollectionSales, func(docs []docstore.Document) (err error) {
			snap.Sales, err = docstore.DecodeAll[domain.Sale](docs)
			return
		}},
		{domain.CollectionProductSales, func(docs []docstore.Document) (err error) {
			snap.ProductSales, err = docstore.DecodeAll[domain.ProductSale](docs)
			return
		}},
		{domain.CollectionContentCounts, func(docs []docstore.Document) (err error) {
			snap.ContentCounts, err = docstore.DecodeAll[domain.ContentCount](docs)
			return
		}},
	}

	for _, loader := range loaders {
		docs, err := s.store.GetAll(ctx, loader.collection)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar coleção %s: %w", loader.collection, err)
		}
		if err := loader.decode(docs); err != nil {
			return nil, fmt.Errorf("erro ao decodificar coleção %s: %w", loader.collection, err)
		}
	}

	return snap, nil
}

// TriggerManualSync inicia manualmente uma consolidação diária
func (s *DailySummaryService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação diária já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação diária manual")
	go s.RunDailySummary(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DailySummaryService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
