package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/talent-commerce-api/internal/domain"
	"github.com/vfg2006/talent-commerce-api/internal/usecases/dashboarding"
	"github.com/vfg2006/talent-commerce-api/pkg/apiErrors"
	"github.com/vfg2006/talent-commerce-api/pkg/utils"
)

// parseReportFilters extrai os filtros do relatório da query string.
// Datas no formato 2006-01-02; valores inválidos são rejeitados.
func parseReportFilters(r *http.Request) (domain.ReportFilters, error) {
	filters := domain.ReportFilters{
		AccountID: r.URL.Query().Get("account_id"),
		TalentID:  r.URL.Query().Get("talent_id"),
		Metric:    r.URL.Query().Get("metric"),
	}

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		parsed, err := utils.ParseDate(startDate)
		if err != nil {
			return filters, err
		}
		filters.DateRange.Start = parsed
	}

	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		parsed, err := utils.ParseDate(endDate)
		if err != nil {
			return filters, err
		}
		filters.DateRange.End = parsed
	}

	return filters, nil
}

// GetDashboardSummary retorna a agregação do painel para os filtros
// informados. Responde 503 enquanto as coleções ainda não terminaram a
// primeira carga.
func GetDashboardSummary(view *dashboarding.View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDashboardSummary")

		if !view.Loaded() {
			apiErrors.WriteError(w, apiErrors.ErrNotReady, "Painel ainda carregando os dados", nil)
			return
		}

		filters, err := parseReportFilters(r)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		summary, ok := view.Summary(filters)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotReady, "Painel ainda carregando os dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
