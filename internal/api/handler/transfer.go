package handler

import (
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/tracking"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/transfer"
	"github.com/vfg2006/sales-kpi-api/pkg/apiErrors"
	"github.com/vfg2006/sales-kpi-api/pkg/log"
)

// Limite do blob de importação
const maxImportBytes = 1 << 20

// ExportMonthCSV exporta o mês em CSV. Mês sem associados produz corpo vazio.
func ExportMonthCSV(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month := httprouter.ParamsFromContext(r.Context()).ByName("month")

		state, err := service.GetMonth(month)
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="kpi-`+month+`.csv"`)

		if _, err := w.Write([]byte(transfer.ExportCSV(state))); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("transfer: erro ao escrever CSV")
		}
	})
}

// ExportMonthJSON exporta o blob de backup {month, targets, associates}
func ExportMonthJSON(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month := httprouter.ParamsFromContext(r.Context()).ByName("month")

		state, err := service.GetMonth(month)
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		raw, err := transfer.ExportJSON(month, state)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar o mês", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(raw)); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("transfer: erro ao escrever JSON")
		}
	})
}

// ImportMonth importa um blob {month, targets, associates} e substitui o mês
// inteiro. Blob malformado ou incompleto não altera estado algum.
func ImportMonth(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o corpo da requisição", nil)
			return
		}

		export, err := transfer.ParseImport(payload)
		if err != nil {
			logger.WithError(err).Warn("transfer: blob de importação rejeitado")
			apiErrors.WriteError(w, apiErrors.ErrInvalidImport, err.Error(), nil)
			return
		}

		if err := service.ReplaceMonth(export.Month, export.ToMonthState()); err != nil {
			writeTrackingError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"month":      export.Month,
			"associates": len(export.Associates),
		}).Info("transfer: mês importado com sucesso")

		respondJSON(w, map[string]any{
			"month":      export.Month,
			"associates": len(export.Associates),
		})
	})
}
