package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/talent-commerce-api/internal/domain"
	"github.com/vfg2006/talent-commerce-api/internal/usecases/cataloging"
	"github.com/vfg2006/talent-commerce-api/pkg/apiErrors"
)

type NamedEntityRequest struct {
	Name string `json:"name"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type BatchDeleteRequest struct {
	IDs []string `json:"ids"`
}

// writeCatalogError converte erros do catálogo no payload padrão da API
func writeCatalogError(w http.ResponseWriter, err error) {
	if domain.IsValidationError(err) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return
	}
	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar requisição", nil)
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

func pathID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

// listHandler serializa qualquer listagem do catálogo
func listHandler[T any](list func(r *http.Request) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r)
		if err != nil {
			writeCatalogError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// namedCreateHandler trata a criação de entidades que só possuem nome
// (talentos, lojas e contas)
func namedCreateHandler(create func(r *http.Request, name string) (string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NamedEntityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		id, err := create(r, req.Name)
		if err != nil {
			writeCatalogError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, CreatedResponse{ID: id})
	}
}

// namedUpdateHandler trata a atualização de entidades que só possuem nome
func namedUpdateHandler(update func(r *http.Request, id, name string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NamedEntityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := update(r, pathID(r), req.Name); err != nil {
			writeCatalogError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, nil)
	}
}

func deleteHandler(del func(r *http.Request, id string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := del(r, pathID(r)); err != nil {
			writeCatalogError(w, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

// batchDeleteHandler remove os documentos selecionados em lote
func batchDeleteHandler(del func(r *http.Request, ids []string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BatchDeleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if len(req.IDs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum id informado", nil)
			return
		}

		if err := del(r, req.IDs); err != nil {
			writeCatalogError(w, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

func CreateProduct(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.NewProduct
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		id, err := service.CreateProduct(r.Context(), req)
		if err != nil {
			writeCatalogError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, CreatedResponse{ID: id})
	}
}

func UpdateProduct(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.NewProduct
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.UpdateProduct(r.Context(), pathID(r), req); err != nil {
			writeCatalogError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, nil)
	}
}
