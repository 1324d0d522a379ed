package handler

import (
	"net/http"

	"github.com/vfg2006/talent-commerce-api/internal/api/handler/router"
	"github.com/vfg2006/talent-commerce-api/internal/domain"
	"github.com/vfg2006/talent-commerce-api/internal/usecases/authenticating"
	"github.com/vfg2006/talent-commerce-api/internal/usecases/cataloging"
	"github.com/vfg2006/talent-commerce-api/internal/usecases/dashboarding"
	"github.com/vfg2006/talent-commerce-api/internal/usecases/recording"
	"github.com/vfg2006/talent-commerce-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(view *dashboarding.View) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     GetDashboardSummary(view),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// namedCatalogRoutes monta o CRUD padrão das entidades de cadastro que só
// possuem nome
func namedCatalogRoutes(
	base string,
	list http.HandlerFunc,
	create func(r *http.Request, name string) (string, error),
	update func(r *http.Request, id, name string) error,
	del func(r *http.Request, id string) error,
	batchDel func(r *http.Request, ids []string) error,
) []router.Route {
	allRoles := []func(http.Handler) http.Handler{middleware.AllRoles()}
	return []router.Route{
		{Path: base, Method: http.MethodGet, Handler: list, Middlewares: allRoles},
		{Path: base, Method: http.MethodPost, Handler: namedCreateHandler(create), Middlewares: allRoles},
		{Path: base + "/batch-delete", Method: http.MethodPost, Handler: batchDeleteHandler(batchDel), Middlewares: allRoles},
		{Path: base + "/:id", Method: http.MethodPut, Handler: namedUpdateHandler(update), Middlewares: allRoles},
		{Path: base + "/:id", Method: http.MethodDelete, Handler: deleteHandler(del), Middlewares: allRoles},
	}
}

// Catalog retorna as rotas de cadastro: talentos, lojas, contas e produtos
func Catalog(service cataloging.CatalogService) []router.Route {
	allRoles := []func(http.Handler) http.Handler{middleware.AllRoles()}

	routes := namedCatalogRoutes("/v1/talents",
		listHandler(func(r *http.Request) ([]domain.Talent, error) { return service.ListTalents(r.Context()) }),
		func(r *http.Request, name string) (string, error) { return service.CreateTalent(r.Context(), name) },
		func(r *http.Request, id, name string) error { return service.UpdateTalent(r.Context(), id, name) },
		func(r *http.Request, id string) error { return service.DeleteTalent(r.Context(), id) },
		func(r *http.Request, ids []string) error { return service.DeleteTalents(r.Context(), ids) },
	)

	routes = append(routes, namedCatalogRoutes("/v1/stores",
		listHandler(func(r *http.Request) ([]domain.Store, error) { return service.ListStores(r.Context()) }),
		func(r *http.Request, name string) (string, error) { return service.CreateStore(r.Context(), name) },
		func(r *http.Request, id, name string) error { return service.UpdateStore(r.Context(), id, name) },
		func(r *http.Request, id string) error { return service.DeleteStore(r.Context(), id) },
		func(r *http.Request, ids []string) error { return service.DeleteStores(r.Context(), ids) },
	)...)

	routes = append(routes, namedCatalogRoutes("/v1/accounts",
		listHandler(func(r *http.Request) ([]domain.Account, error) { return service.ListAccounts(r.Context()) }),
		func(r *http.Request, name string) (string, error) { return service.CreateAccount(r.Context(), name) },
		func(r *http.Request, id, name string) error { return service.UpdateAccount(r.Context(), id, name) },
		func(r *http.Request, id string) error { return service.DeleteAccount(r.Context(), id) },
		func(r *http.Request, ids []string) error { return service.DeleteAccounts(r.Context(), ids) },
	)...)

	routes = append(routes, []router.Route{
		{
			Path:   "/v1/products",
			Method: http.MethodGet,
			Handler: listHandler(func(r *http.Request) ([]domain.ProductWithStore, error) {
				return service.ListProducts(r.Context())
			}),
			Middlewares: allRoles,
		},
		{Path: "/v1/products", Method: http.MethodPost, Handler: CreateProduct(service), Middlewares: allRoles},
		{
			Path:   "/v1/products/batch-delete",
			Method: http.MethodPost,
			Handler: batchDeleteHandler(func(r *http.Request, ids []string) error {
				return service.DeleteProducts(r.Context(), ids)
			}),
			Middlewares: allRoles,
		},
		{Path: "/v1/products/:id", Method: http.MethodPut, Handler: UpdateProduct(service), Middlewares: allRoles},
		{
			Path:   "/v1/products/:id",
			Method: http.MethodDelete,
			Handler: deleteHandler(func(r *http.Request, id string) error {
				return service.DeleteProduct(r.Context(), id)
			}),
			Middlewares: allRoles,
		},
	}...)

	return routes
}

// Records retorna as rotas dos lançamentos: vendas, postagens, vendas por
// produto e volume de conteúdo
func Records(service recording.RecordService) []router.Route {
	allRoles := []func(http.Handler) http.Handler{middleware.AllRoles()}

	return []router.Route{
		// Vendas
		{Path: "/v1/sales", Method: http.MethodGet, Handler: ListSales(service), Middlewares: allRoles},
		{
			Path:   "/v1/sales",
			Method: http.MethodPost,
			Handler: recordCreateHandler(func(r *http.Request, input domain.NewSale) (string, error) {
				return service.AddSale(r.Context(), input)
			}),
			Middlewares: allRoles,
		},
		{Path: "/v1/sales/export", Method: http.MethodGet, Handler: ExportSales(service), Middlewares: allRoles},
		{
			Path:   "/v1/sales/batch-delete",
			Method: http.MethodPost,
			Handler: batchDeleteHandler(func(r *http.Request, ids []string) error {
				return service.DeleteSales(r.Context(), ids)
			}),
			Middlewares: allRoles,
		},
		{
			Path:   "/v1/sales/:id",
			Method: http.MethodPut,
			Handler: recordUpdateHandler(func(r *http.Request, id string, input domain.NewSale) error {
				return service.UpdateSale(r.Context(), id, input)
			}),
			Middlewares: allRoles,
		},
		{
			Path:   "/v1/sales/:id",
			Method: http.MethodDelete,
			Handler: deleteHandler(func(r *http.Request, id string) error {
				return service.DeleteSale(r.Context(), id)
			}),
			Middlewares: allRoles,
		},

		// Postagens promocionais
		{Path: "/v1/posts", Method: http.MethodGet, Handler: ListPosts(service), Middlewares: allRoles},
		{
			Path:   "/v1/posts",
			Method: http.MethodPost,
			Handler: recordCreateHandler(func(r *http.Request, input domain.NewProductPost) (string, error) {
				return service.AddPost(r.Context(), input)
			}),
			Middlewares: allRoles,
		},
		{Path: "/v1/posts/export", Method: http.MethodGet, Handler: ExportPosts(service), Middlewares: allRoles},
		{
			Path:   "/v1/posts/batch-delete",
			Method: http.MethodPost,
			Handler: batchDeleteHandler(func(r *http.Request, ids []string) error {
				return service.DeletePosts(r.Context(), ids)
			}),
			Middlewares: allRoles,
		},
		{
			Path:   "/v1/posts/:id",
			Method: http.MethodPut,
			Handler: recordUpdateHandler(func(r *http.Request, id string, input domain.NewProductPost) error {
				return service.UpdatePost(r.Context(), id, input)
			}),
			Middlewares: allRoles,
		},
		{
			Path:   "/v1/posts/:id",
			Method: http.MethodDelete,
			Handler: deleteHandler(func(r *http.Request, id string) error {
				return service.DeletePost(r.Context(), id)
			}),
			Middlewares: allRoles,
		},

		// Vendas por produto
		{Path: "/v1/product-sales", Method: http.MethodGet, Handler: ListProductSales(service), Middlewares: allRoles},
		{
			Path:   "/v1/product-sales",
			Method: http.MethodPost,
			Handler: recordCreateHandler(func(r *http.Request, input domain.NewProductSale) (string, error) {
				return service.AddProductSale(r.Context(), input)
			}),
			Middlewares: allRoles,
		},
		{
			Path:   "/v1/product-sales/batch-delete",
			Method: http.MethodPost,
			Handler: batchDeleteHandler(func(r *http.Request, ids []string) error {
				return service.DeleteProductSales(r.Context(), ids)
			}),
			Middlewares: allRoles,
		},
		{
			Path:   "/v1/product-sales/:id",
			Method: http.MethodPut,
			Handler: recordUpdateHandler(func(r *http.Request, id string, input domain.NewProductSale) error {
				return service.UpdateProductSale(r.Context(), id, input)
			}),
			Middlewares: allRoles,
		},
		{
			Path:   "/v1/product-sales/:id",
			Method: http.MethodDelete,
			Handler: deleteHandler(func(r *http.Request, id string) error {
				return service.DeleteProductSale(r.Context(), id)
			}),
			Middlewares: allRoles,
		},

		// Volume de conteúdo
		{Path: "/v1/content-counts", Method: http.MethodGet, Handler: ListContentCounts(service), Middlewares: allRoles},
		{
			Path:   "/v1/content-counts",
			Method: http.MethodPost,
			Handler: recordCreateHandler(func(r *http.Request, input domain.NewContentCount) (string, error) {
				return service.AddContentCount(r.Context(), input)
			}),
			Middlewares: allRoles,
		},
		{
			Path:   "/v1/content-counts/batch-delete",
			Method: http.MethodPost,
			Handler: batchDeleteHandler(func(r *http.Request, ids []string) error {
				return service.DeleteContentCounts(r.Context(), ids)
			}),
			Middlewares: allRoles,
		},
		{
			Path:   "/v1/content-counts/:id",
			Method: http.MethodPut,
			Handler: recordUpdateHandler(func(r *http.Request, id string, input domain.NewContentCount) error {
				return service.UpdateContentCount(r.Context(), id, input)
			}),
			Middlewares: allRoles,
		},
		{
			Path:   "/v1/content-counts/:id",
			Method: http.MethodDelete,
			Handler: deleteHandler(func(r *http.Request, id string) error {
				return service.DeleteContentCount(r.Context(), id)
			}),
			Middlewares: allRoles,
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
