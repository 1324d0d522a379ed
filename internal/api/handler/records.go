package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/talent-commerce-api/internal/domain"
	"github.com/vfg2006/talent-commerce-api/internal/usecases/recording"
	"github.com/vfg2006/talent-commerce-api/pkg/apiErrors"
	"github.com/vfg2006/talent-commerce-api/pkg/tableview"
)

// PagedResponse é o envelope das listagens paginadas das tabelas de registros
type PagedResponse[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// parseTableParams extrai ordenação e página da query string
func parseTableParams(r *http.Request) (tableview.SortState, tableview.Pager) {
	sort := tableview.SortState{
		Key:       r.URL.Query().Get("sort_by"),
		Direction: tableview.Direction(r.URL.Query().Get("sort_dir")),
	}
	if sort.Direction != tableview.Descending {
		sort.Direction = tableview.Ascending
	}

	pager := tableview.NewPager()
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		pager.SetPage(page)
	}

	return sort, pager
}

// respondPaged ordena, pagina e serializa os registros de uma tabela
func respondPaged[T any](w http.ResponseWriter, r *http.Request, items []T, keys map[string]tableview.KeyFunc[T]) {
	sort, pager := parseTableParams(r)

	if key, ok := keys[sort.Key]; ok {
		items = tableview.SortRecords(items, key, sort.Direction)
	}

	respondJSON(w, http.StatusOK, PagedResponse[T]{
		Items:      tableview.Page(items, pager),
		Page:       pager.Page,
		PageSize:   pager.PageSize,
		TotalItems: len(items),
		TotalPages: pager.TotalPages(len(items)),
	})
}

func saleSortKeys() map[string]tableview.KeyFunc[domain.SaleWithNames] {
	return map[string]tableview.KeyFunc[domain.SaleWithNames]{
		"date":       func(s domain.SaleWithNames) any { return s.SaleDate },
		"talent":     func(s domain.SaleWithNames) any { return s.TalentName },
		"account":    func(s domain.SaleWithNames) any { return s.AccountName },
		"gmv":        func(s domain.SaleWithNames) any { return s.GMV },
		"commission": func(s domain.SaleWithNames) any { return s.EstimatedCommission },
		"views":      func(s domain.SaleWithNames) any { return s.ProductViews },
		"clicks":     func(s domain.SaleWithNames) any { return s.ProductClicks },
	}
}

func postSortKeys() map[string]tableview.KeyFunc[domain.ProductPostWithNames] {
	return map[string]tableview.KeyFunc[domain.ProductPostWithNames]{
		"date":    func(p domain.ProductPostWithNames) any { return p.PostedAt },
		"product": func(p domain.ProductPostWithNames) any { return p.ProductName },
		"store":   func(p domain.ProductPostWithNames) any { return p.StoreName },
		"account": func(p domain.ProductPostWithNames) any { return p.AccountName },
		"talent":  func(p domain.ProductPostWithNames) any { return p.TalentName },
	}
}

func productSaleSortKeys() map[string]tableview.KeyFunc[domain.ProductSaleWithNames] {
	return map[string]tableview.KeyFunc[domain.ProductSaleWithNames]{
		"date":     func(s domain.ProductSaleWithNames) any { return s.Date },
		"store":    func(s domain.ProductSaleWithNames) any { return s.StoreName },
		"product":  func(s domain.ProductSaleWithNames) any { return s.ProductName },
		"quantity": func(s domain.ProductSaleWithNames) any { return s.Quantity },
	}
}

func contentCountSortKeys() map[string]tableview.KeyFunc[domain.ContentCountWithNames] {
	return map[string]tableview.KeyFunc[domain.ContentCountWithNames]{
		"date":   func(c domain.ContentCountWithNames) any { return c.RecordedAt },
		"talent": func(c domain.ContentCountWithNames) any { return c.TalentName },
		"store":  func(c domain.ContentCountWithNames) any { return c.StoreName },
		"count":  func(c domain.ContentCountWithNames) any { return c.Count },
	}
}

func ListSales(service recording.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		sales, err := service.ListSales(r.Context(), filters)
		if err != nil {
			writeRecordError(w, err)
			return
		}
		respondPaged(w, r, sales, saleSortKeys())
	}
}

func ListPosts(service recording.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		posts, err := service.ListPosts(r.Context(), filters)
		if err != nil {
			writeRecordError(w, err)
			return
		}
		respondPaged(w, r, posts, postSortKeys())
	}
}

func ListProductSales(service recording.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		sales, err := service.ListProductSales(r.Context(), filters)
		if err != nil {
			writeRecordError(w, err)
			return
		}
		respondPaged(w, r, sales, productSaleSortKeys())
	}
}

func ListContentCounts(service recording.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		counts, err := service.ListContentCounts(r.Context(), filters)
		if err != nil {
			writeRecordError(w, err)
			return
		}
		respondPaged(w, r, counts, contentCountSortKeys())
	}
}

// writeRecordError converte erros dos lançamentos no payload padrão da API
func writeRecordError(w http.ResponseWriter, err error) {
	if domain.IsValidationError(err) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return
	}
	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar requisição", nil)
}

// recordCreateHandler trata a criação de um lançamento
func recordCreateHandler[T any](create func(r *http.Request, input T) (string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req T
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		id, err := create(r, req)
		if err != nil {
			writeRecordError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, CreatedResponse{ID: id})
	}
}

// recordUpdateHandler trata a atualização de um lançamento
func recordUpdateHandler[T any](update func(r *http.Request, id string, input T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req T
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := update(r, pathID(r), req); err != nil {
			writeRecordError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, nil)
	}
}
