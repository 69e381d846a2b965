package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/tracking"
	"github.com/vfg2006/sales-kpi-api/pkg/log"
)

// GetMonthReport retorna as visões derivadas do mês para o painel:
// totais, metas da equipe, ranking e séries dos gráficos
func GetMonthReport(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		month := httprouter.ParamsFromContext(r.Context()).ByName("month")

		state, err := service.GetMonth(month)
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		report := reporting.BuildReport(month, state)

		logger.WithFields(log.Fields{
			"month":     month,
			"headcount": report.Headcount,
		}).Info("reports: relatório mensal gerado")

		respondJSON(w, report)
	})
}

// GetMonthSummary retorna o bloco de texto do resumo diário
func GetMonthSummary(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month := httprouter.ParamsFromContext(r.Context()).ByName("month")

		state, err := service.GetMonth(month)
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(reporting.SummaryText(month, state))); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reports: erro ao escrever resumo")
		}
	})
}
