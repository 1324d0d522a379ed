// Package recording implementa o lançamento dos fatos do negócio: vendas,
// postagens promocionais, vendas de produto e registros de volume de
// conteúdo. As listagens retornam registros decorados com os nomes de
// exibição resolvidos.
package recording

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/talent-commerce-api/infrastructure/docstore"
	"github.com/vfg2006/talent-commerce-api/internal/domain"
)

type RecordService interface {
	ListSales(ctx context.Context, filters domain.ReportFilters) ([]domain.SaleWithNames, error)
	AddSale(ctx context.Context, input domain.NewSale) (string, error)
	UpdateSale(ctx context.Context, id string, input domain.NewSale) error
	DeleteSale(ctx context.Context, id string) error
	DeleteSales(ctx context.Context, ids []string) error

	ListPosts(ctx context.Context, filters domain.ReportFilters) ([]domain.ProductPostWithNames, error)
	AddPost(ctx context.Context, input domain.NewProductPost) (string, error)
	UpdatePost(ctx context.Context, id string, input domain.NewProductPost) error
	DeletePost(ctx context.Context, id string) error
	DeletePosts(ctx context.Context, ids []string) error

	ListProductSales(ctx context.Context, filters domain.ReportFilters) ([]domain.ProductSaleWithNames, error)
	AddProductSale(ctx context.Context, input domain.NewProductSale) (string, error)
	UpdateProductSale(ctx context.Context, id string, input domain.NewProductSale) error
	DeleteProductSale(ctx context.Context, id string) error
	DeleteProductSales(ctx context.Context, ids []string) error

	ListContentCounts(ctx context.Context, filters domain.ReportFilters) ([]domain.ContentCountWithNames, error)
	AddContentCount(ctx context.Context, input domain.NewContentCount) (string, error)
	UpdateContentCount(ctx context.Context, id string, input domain.NewContentCount) error
	DeleteContentCount(ctx context.Context, id string) error
	DeleteContentCounts(ctx context.Context, ids []string) error
}

type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) RecordService {
	return &Service{store: store}
}

func list[T any](ctx context.Context, store docstore.Store, collection string) ([]T, error) {
	docs, err := store.GetAll(ctx, collection)
	if err != nil {
		logrus.WithError(err).WithField("collection", collection).Error("Erro ao listar coleção")
		return nil, err
	}
	return docstore.DecodeAll[T](docs)
}

// nameIndexes busca os índices de nome das coleções de referência pedidas
func (s *Service) nameIndexes(ctx context.Context, collections ...string) (map[string]domain.NameIndex, error) {
	out := make(map[string]domain.NameIndex, len(collections))
	for _, collection := range collections {
		switch collection {
		case domain.CollectionTalents:
			talents, err := list[domain.Talent](ctx, s.store, collection)
			if err != nil {
				return nil, err
			}
			out[collection] = domain.TalentNames(talents)
		case domain.CollectionStores:
			stores, err := list[domain.Store](ctx, s.store, collection)
			if err != nil {
				return nil, err
			}
			out[collection] = domain.StoreNames(stores)
		case domain.CollectionAccounts:
			accounts, err := list[domain.Account](ctx, s.store, collection)
			if err != nil {
				return nil, err
			}
			out[collection] = domain.AccountNames(accounts)
		case domain.CollectionProducts:
			products, err := list[domain.Product](ctx, s.store, collection)
			if err != nil {
				return nil, err
			}
			out[collection] = domain.ProductNames(products)
		}
	}
	return out, nil
}

func (s *Service) ListSales(ctx context.Context, filters domain.ReportFilters) ([]domain.SaleWithNames, error) {
	sales, err := list[domain.Sale](ctx, s.store, domain.CollectionSales)
	if err != nil {
		return nil, err
	}

	names, err := s.nameIndexes(ctx, domain.CollectionTalents, domain.CollectionAccounts)
	if err != nil {
		return nil, err
	}

	return domain.DecorateSales(
		domain.FilterSales(sales, filters),
		names[domain.CollectionTalents],
		names[domain.CollectionAccounts],
	), nil
}

func (s *Service) AddSale(ctx context.Context, input domain.NewSale) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}
	return s.store.Add(ctx, domain.CollectionSales, saleFields(input))
}

func (s *Service) UpdateSale(ctx context.Context, id string, input domain.NewSale) error {
	if err := input.Validate(); err != nil {
		return err
	}
	return s.store.Update(ctx, domain.CollectionSales, id, saleFields(input))
}

func (s *Service) DeleteSale(ctx context.Context, id string) error {
	return s.store.Delete(ctx, domain.CollectionSales, id)
}

func (s *Service) DeleteSales(ctx context.Context, ids []string) error {
	return s.store.BatchDelete(ctx, domain.CollectionSales, ids)
}

func saleFields(input domain.NewSale) docstore.Fields {
	return docstore.Fields{
		"talentId":            input.TalentID,
		"accountId":           input.AccountID,
		"saleDate":            input.SaleDate,
		"gmv":                 input.GMV,
		"estimatedCommission": input.EstimatedCommission,
		"productViews":        input.ProductViews,
		"productClicks":       input.ProductClicks,
	}
}

func (s *Service) ListPosts(ctx context.Context, filters domain.ReportFilters) ([]domain.ProductPostWithNames, error) {
	posts, err := list[domain.ProductPost](ctx, s.store, domain.CollectionProductPosts)
	if err != nil {
		return nil, err
	}

	names, err := s.nameIndexes(ctx,
		domain.CollectionProducts,
		domain.CollectionStores,
		domain.CollectionAccounts,
		domain.CollectionTalents,
	)
	if err != nil {
		return nil, err
	}

	return domain.DecoratePosts(
		domain.FilterPosts(posts, filters),
		names[domain.CollectionProducts],
		names[domain.CollectionStores],
		names[domain.CollectionAccounts],
		names[domain.CollectionTalents],
	), nil
}

func (s *Service) AddPost(ctx context.Context, input domain.NewProductPost) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	fields := postFields(input)
	// O horário da postagem é atribuído pelo servidor na criação
	fields["postedAt"] = docstore.ServerTimestamp
	return s.store.Add(ctx, domain.CollectionProductPosts, fields)
}

func (s *Service) UpdatePost(ctx context.Context, id string, input domain.NewProductPost) error {
	if err := input.Validate(); err != nil {
		return err
	}
	return s.store.Update(ctx, domain.CollectionProductPosts, id, postFields(input))
}

func (s *Service) DeletePost(ctx context.Context, id string) error {
	return s.store.Delete(ctx, domain.CollectionProductPosts, id)
}

func (s *Service) DeletePosts(ctx context.Context, ids []string) error {
	return s.store.BatchDelete(ctx, domain.CollectionProductPosts, ids)
}

func postFields(input domain.NewProductPost) docstore.Fields {
	return docstore.Fields{
		"productId": input.ProductID,
		"storeId":   input.StoreID,
		"videoUrl":  input.VideoURL,
		"accountId": input.AccountID,
		"talentId":  input.TalentID,
	}
}

func (s *Service) ListProductSales(ctx context.Context, filters domain.ReportFilters) ([]domain.ProductSaleWithNames, error) {
	sales, err := list[domain.ProductSale](ctx, s.store, domain.CollectionProductSales)
	if err != nil {
		return nil, err
	}

	names, err := s.nameIndexes(ctx, domain.CollectionStores, domain.CollectionProducts)
	if err != nil {
		return nil, err
	}

	return domain.DecorateProductSales(
		domain.FilterProductSales(sales, filters),
		names[domain.CollectionStores],
		names[domain.CollectionProducts],
	), nil
}

func (s *Service) AddProductSale(ctx context.Context, input domain.NewProductSale) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}
	return s.store.Add(ctx, domain.CollectionProductSales, productSaleFields(input))
}

func (s *Service) UpdateProductSale(ctx context.Context, id string, input domain.NewProductSale) error {
	if err := input.Validate(); err != nil {
		return err
	}
	return s.store.Update(ctx, domain.CollectionProductSales, id, productSaleFields(input))
}

func (s *Service) DeleteProductSale(ctx context.Context, id string) error {
	return s.store.Delete(ctx, domain.CollectionProductSales, id)
}

func (s *Service) DeleteProductSales(ctx context.Context, ids []string) error {
	return s.store.BatchDelete(ctx, domain.CollectionProductSales, ids)
}

func productSaleFields(input domain.NewProductSale) docstore.Fields {
	return docstore.Fields{
		"storeId":   input.StoreID,
		"productId": input.ProductID,
		"quantity":  input.Quantity,
		"date":      input.Date,
	}
}

func (s *Service) ListContentCounts(ctx context.Context, filters domain.ReportFilters) ([]domain.ContentCountWithNames, error) {
	counts, err := list[domain.ContentCount](ctx, s.store, domain.CollectionContentCounts)
	if err != nil {
		return nil, err
	}

	names, err := s.nameIndexes(ctx, domain.CollectionTalents, domain.CollectionStores)
	if err != nil {
		return nil, err
	}

	return domain.DecorateContentCounts(
		domain.FilterContentCounts(counts, filters),
		names[domain.CollectionTalents],
		names[domain.CollectionStores],
	), nil
}

func (s *Service) AddContentCount(ctx context.Context, input domain.NewContentCount) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	fields := contentCountFields(input)
	fields["recordedAt"] = docstore.ServerTimestamp
	return s.store.Add(ctx, domain.CollectionContentCounts, fields)
}

func (s *Service) UpdateContentCount(ctx context.Context, id string, input domain.NewContentCount) error {
	if err := input.Validate(); err != nil {
		return err
	}
	return s.store.Update(ctx, domain.CollectionContentCounts, id, contentCountFields(input))
}

func (s *Service) DeleteContentCount(ctx context.Context, id string) error {
	return s.store.Delete(ctx, domain.CollectionContentCounts, id)
}

func (s *Service) DeleteContentCounts(ctx context.Context, ids []string) error {
	return s.store.BatchDelete(ctx, domain.CollectionContentCounts, ids)
}

func contentCountFields(input domain.NewContentCount) docstore.Fields {
	return docstore.Fields{
		"talentId": input.TalentID,
		"storeId":  input.StoreID,
		"count":    input.Count,
	}
}
