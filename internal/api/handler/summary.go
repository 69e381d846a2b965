package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-kpi-api/internal/domain"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/summarizing"
	"github.com/vfg2006/sales-kpi-api/pkg/apiErrors"
	"github.com/vfg2006/sales-kpi-api/pkg/log"
)

// SendSummary dispara o envio interativo do resumo. Sem webhook configurado
// a resposta traz a URI mailto para o painel abrir no cliente de e-mail.
func SendSummary(dispatcher summarizing.Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := r.URL.Query().Get("month")
		if month == "" {
			month = domain.MonthKey(time.Now())
		}

		result, err := dispatcher.SendMonthlySummary(r.Context(), month)
		if err != nil {
			logger.WithError(err).WithField("month", month).Error("summary: falha no envio do resumo")
			apiErrors.WriteError(w, apiErrors.ErrDispatchFailed, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"month":    result.Month,
			"delivery": result.Delivery,
		}).Info("summary: envio do resumo concluído")

		respondJSON(w, result)
	})
}
