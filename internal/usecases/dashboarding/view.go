// Package dashboarding implementa a visão reativa do dashboard: assina todas
// as coleções do document store, mantém o snapshot corrente e recalcula as
// agregações a cada entrega.
package dashboarding

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/talent-commerce-api/infrastructure/docstore"
	"github.com/vfg2006/talent-commerce-api/internal/domain"
)

// dashboardCollections são as coleções assinadas pela visão. O estado de
// carregamento só é concluído quando todas entregaram ao menos um snapshot.
var dashboardCollections = []string{
	domain.CollectionTalents,
	domain.CollectionStores,
	domain.CollectionAccounts,
	domain.CollectionProducts,
	domain.CollectionProductPosts,
	domain.CollectionSales,
	domain.CollectionProductSales,
	domain.CollectionContentCounts,
}

// View é a visão reativa do dashboard. Entre coleções não há garantia de
// ordem de entrega; cada snapshot substitui integralmente o estado anterior
// da sua coleção, e a visão tolera prontidão parcial até o carregamento
// completar.
type View struct {
	store docstore.Store

	mu        sync.Mutex
	snap      Snapshot
	pending   map[string]struct{}
	disposers []docstore.Disposer
	version   uint64
	closed    bool

	// memoização da última agregação calculada
	memoVersion uint64
	memoFilters domain.ReportFilters
	memoSummary *domain.DashboardSummary

	listeners  map[int]func()
	nextListen int
}

func NewView(store docstore.Store) *View {
	pending := make(map[string]struct{}, len(dashboardCollections))
	for _, name := range dashboardCollections {
		pending[name] = struct{}{}
	}

	return &View{
		store:     store,
		pending:   pending,
		listeners: make(map[int]func()),
	}
}

// Start assina todas as coleções do dashboard. Em caso de falha em qualquer
// assinatura, desfaz as já registradas e retorna o erro; a visão permanece
// utilizável (não carregada).
func (v *View) Start(ctx context.Context) error {
	for _, name := range dashboardCollections {
		collection := name
		disposer, err := v.store.Subscribe(ctx, collection, func(docs []docstore.Document) {
			v.applySnapshot(collection, docs)
		})
		if err != nil {
			logrus.WithError(err).WithField("collection", collection).Error("Erro ao assinar coleção do dashboard")
			v.Close()
			return err
		}

		v.mu.Lock()
		if v.closed {
			v.mu.Unlock()
			disposer()
			return nil
		}
		v.disposers = append(v.disposers, disposer)
		v.mu.Unlock()
	}

	return nil
}

// applySnapshot substitui o estado da coleção pelo snapshot entregue
func (v *View) applySnapshot(collection string, docs []docstore.Document) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}

	var err error
	switch collection {
	case domain.CollectionTalents:
		v.snap.Talents, err = docstore.DecodeAll[domain.Talent](docs)
	case domain.CollectionStores:
		v.snap.Stores, err = docstore.DecodeAll[domain.Store](docs)
	case domain.CollectionAccounts:
		v.snap.Accounts, err = docstore.DecodeAll[domain.Account](docs)
	case domain.CollectionProducts:
		v.snap.Products, err = docstore.DecodeAll[domain.Product](docs)
	case domain.CollectionProductPosts:
		v.snap.Posts, err = docstore.DecodeAll[domain.ProductPost](docs)
	case domain.CollectionSales:
		v.snap.Sales, err = docstore.DecodeAll[domain.Sale](docs)
	case domain.CollectionProductSales:
		v.snap.ProductSales, err = docstore.DecodeAll[domain.ProductSale](docs)
	case domain.CollectionContentCounts:
		v.snap.ContentCounts, err = docstore.DecodeAll[domain.ContentCount](docs)
	}

	if err != nil {
		v.mu.Unlock()
		logrus.WithError(err).WithField("collection", collection).Error("Erro ao decodificar snapshot da coleção")
		return
	}

	delete(v.pending, collection)
	v.version++

	fns := make([]func(), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Loaded indica se todas as coleções assinadas já entregaram um snapshot
func (v *View) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pending) == 0
}

// Summary retorna a agregação para os filtros informados e se a visão já
// está carregada. O resultado é memoizado sobre (versão do estado, filtros)
// e nunca é mutado após calculado.
func (v *View) Summary(filters domain.ReportFilters) (*domain.DashboardSummary, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.pending) > 0 {
		return nil, false
	}

	if v.memoSummary != nil && v.memoVersion == v.version && v.memoFilters.Equal(filters) {
		return v.memoSummary, true
	}

	summary := BuildSummary(v.snap, filters)
	v.memoVersion = v.version
	v.memoFilters = filters
	v.memoSummary = summary
	return summary, true
}

// Sales retorna as vendas decoradas do snapshot corrente, filtradas
func (v *View) Sales(filters domain.ReportFilters) []domain.SaleWithNames {
	v.mu.Lock()
	defer v.mu.Unlock()
	return domain.DecorateSales(
		domain.FilterSales(v.snap.Sales, filters),
		domain.TalentNames(v.snap.Talents),
		domain.AccountNames(v.snap.Accounts),
	)
}

// OnChange registra um listener notificado após cada entrega de snapshot.
// O cancelamento retornado remove o registro.
func (v *View) OnChange(fn func()) (cancel func()) {
	v.mu.Lock()
	id := v.nextListen
	v.nextListen++
	v.listeners[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.listeners, id)
		v.mu.Unlock()
	}
}

// Close invoca todos os disposers das assinaturas. Após o encerramento
// nenhum snapshot é mais aplicado ao estado da visão.
func (v *View) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	disposers := v.disposers
	v.disposers = nil
	v.mu.Unlock()

	for _, dispose := range disposers {
		dispose()
	}
}
