// Package cataloging implementa o cadastro mestre: talentos, lojas, contas e
// produtos. Operações finas sobre o document store com validação prévia.
package cataloging

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/talent-commerce-api/infrastructure/docstore"
	"github.com/vfg2006/talent-commerce-api/internal/domain"
)

type CatalogService interface {
	ListTalents(ctx context.Context) ([]domain.Talent, error)
	CreateTalent(ctx context.Context, name string) (string, error)
	UpdateTalent(ctx context.Context, id, name string) error
	DeleteTalent(ctx context.Context, id string) error
	DeleteTalents(ctx context.Context, ids []string) error

	ListStores(ctx context.Context) ([]domain.Store, error)
	CreateStore(ctx context.Context, name string) (string, error)
	UpdateStore(ctx context.Context, id, name string) error
	DeleteStore(ctx context.Context, id string) error
	DeleteStores(ctx context.Context, ids []string) error

	ListAccounts(ctx context.Context) ([]domain.Account, error)
	CreateAccount(ctx context.Context, name string) (string, error)
	UpdateAccount(ctx context.Context, id, name string) error
	DeleteAccount(ctx context.Context, id string) error
	DeleteAccounts(ctx context.Context, ids []string) error

	ListProducts(ctx context.Context) ([]domain.ProductWithStore, error)
	CreateProduct(ctx context.Context, input domain.NewProduct) (string, error)
	UpdateProduct(ctx context.Context, id string, input domain.NewProduct) error
	DeleteProduct(ctx context.Context, id string) error
	DeleteProducts(ctx context.Context, ids []string) error
}

type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) CatalogService {
	return &Service{store: store}
}

// listNamed busca e decodifica uma coleção de entidades nomeadas
func listNamed[T any](ctx context.Context, store docstore.Store, collection string) ([]T, error) {
	docs, err := store.GetAll(ctx, collection)
	if err != nil {
		logrus.WithError(err).WithField("collection", collection).Error("Erro ao listar coleção")
		return nil, err
	}
	return docstore.DecodeAll[T](docs)
}

func (s *Service) ListTalents(ctx context.Context) ([]domain.Talent, error) {
	return listNamed[domain.Talent](ctx, s.store, domain.CollectionTalents)
}

func (s *Service) CreateTalent(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", domain.ErrNameRequired
	}
	return s.store.Add(ctx, domain.CollectionTalents, docstore.Fields{"name": name})
}

func (s *Service) UpdateTalent(ctx context.Context, id, name string) error {
	if name == "" {
		return domain.ErrNameRequired
	}
	return s.store.Update(ctx, domain.CollectionTalents, id, docstore.Fields{"name": name})
}

func (s *Service) DeleteTalent(ctx context.Context, id string) error {
	return s.store.Delete(ctx, domain.CollectionTalents, id)
}

func (s *Service) DeleteTalents(ctx context.Context, ids []string) error {
	return s.store.BatchDelete(ctx, domain.CollectionTalents, ids)
}

func (s *Service) ListStores(ctx context.Context) ([]domain.Store, error) {
	return listNamed[domain.Store](ctx, s.store, domain.CollectionStores)
}

func (s *Service) CreateStore(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", domain.ErrNameRequired
	}
	return s.store.Add(ctx, domain.CollectionStores, docstore.Fields{"name": name})
}

func (s *Service) UpdateStore(ctx context.Context, id, name string) error {
	if name == "" {
		return domain.ErrNameRequired
	}
	return s.store.Update(ctx, domain.CollectionStores, id, docstore.Fields{"name": name})
}

func (s *Service) DeleteStore(ctx context.Context, id string) error {
	return s.store.Delete(ctx, domain.CollectionStores, id)
}

func (s *Service) DeleteStores(ctx context.Context, ids []string) error {
	return s.store.BatchDelete(ctx, domain.CollectionStores, ids)
}

func (s *Service) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return listNamed[domain.Account](ctx, s.store, domain.CollectionAccounts)
}

func (s *Service) CreateAccount(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", domain.ErrNameRequired
	}
	return s.store.Add(ctx, domain.CollectionAccounts, docstore.Fields{"name": name})
}

func (s *Service) UpdateAccount(ctx context.Context, id, name string) error {
	if name == "" {
		return domain.ErrNameRequired
	}
	return s.store.Update(ctx, domain.CollectionAccounts, id, docstore.Fields{"name": name})
}

func (s *Service) DeleteAccount(ctx context.Context, id string) error {
	return s.store.Delete(ctx, domain.CollectionAccounts, id)
}

func (s *Service) DeleteAccounts(ctx context.Context, ids []string) error {
	return s.store.BatchDelete(ctx, domain.CollectionAccounts, ids)
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.ProductWithStore, error) {
	products, err := listNamed[domain.Product](ctx, s.store, domain.CollectionProducts)
	if err != nil {
		return nil, err
	}

	stores, err := listNamed[domain.Store](ctx, s.store, domain.CollectionStores)
	if err != nil {
		return nil, err
	}

	return domain.DecorateProducts(products, domain.StoreNames(stores)), nil
}

func (s *Service) CreateProduct(ctx context.Context, input domain.NewProduct) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}
	return s.store.Add(ctx, domain.CollectionProducts, docstore.Fields{
		"name":    input.Name,
		"storeId": input.StoreID,
		"link":    input.Link,
	})
}

func (s *Service) UpdateProduct(ctx context.Context, id string, input domain.NewProduct) error {
	if err := input.Validate(); err != nil {
		return err
	}
	return s.store.Update(ctx, domain.CollectionProducts, id, docstore.Fields{
		"name":    input.Name,
		"storeId": input.StoreID,
		"link":    input.Link,
	})
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.store.Delete(ctx, domain.CollectionProducts, id)
}

func (s *Service) DeleteProducts(ctx context.Context, ids []string) error {
	return s.store.BatchDelete(ctx, domain.CollectionProducts, ids)
}
