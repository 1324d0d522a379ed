package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/talent-commerce-api/internal/usecases/exporting"
	"github.com/vfg2006/talent-commerce-api/internal/usecases/recording"
	"github.com/vfg2006/talent-commerce-api/pkg/apiErrors"
)

func writeCSV(w http.ResponseWriter, name string, data []byte) {
	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().Format(time.DateOnly))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(data); err != nil {
		logrus.WithError(err).Error("Erro ao enviar CSV")
	}
}

// ExportSales baixa as vendas filtradas em CSV
func ExportSales(service recording.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportSales")

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

		data, err := exporting.WriteCSV(sales, exporting.SaleColumns())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar CSV", nil)
			return
		}

		writeCSV(w, "vendas", data)
	}
}

// ExportPosts baixa as postagens filtradas em CSV
func ExportPosts(service recording.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportPosts")

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

		data, err := exporting.WriteCSV(posts, exporting.PostColumns())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar CSV", nil)
			return
		}

		writeCSV(w, "postagens", data)
	}
}
