package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-kpi-api/internal/scheduler"
	"github.com/vfg2006/sales-kpi-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDailySummary = "daily-summary"
)

// CronJobServices contém os serviços de cron disponíveis para execução manual
type CronJobServices struct {
	DailySummaryService *scheduler.DailySummaryService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDailySummary:
			if services.DailySummaryService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço do resumo diário não disponível", nil)
				return
			}
			services.DailySummaryService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valor aceito: daily-summary", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		respondJSON(w, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, map[string]any{
			"daily-summary": services.DailySummaryService.GetStatus(),
		})
	}
}
