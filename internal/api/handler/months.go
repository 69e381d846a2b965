package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-kpi-api/internal/domain"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/tracking"
	"github.com/vfg2006/sales-kpi-api/pkg/apiErrors"
	"github.com/vfg2006/sales-kpi-api/pkg/log"
)

// monthStateResponse devolve o estado do mês no mesmo formato do backup JSON
type monthStateResponse struct {
	Month      string              `json:"month"`
	Targets    domain.TargetSet    `json:"targets"`
	Associates []*domain.Associate `json:"associates"`
}

type createAssociateRequest struct {
	Name string `json:"name"`
}

type updateMetricRequest struct {
	Value int `json:"value"`
}

// GetMonthState retorna o estado de um mês; mês ausente resulta no padrão
func GetMonthState(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month := httprouter.ParamsFromContext(r.Context()).ByName("month")

		state, err := service.GetMonth(month)
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		respondJSON(w, monthStateResponse{
			Month:      month,
			Targets:    state.Targets,
			Associates: state.Associates,
		})
	})
}

// UpdateTargets substitui as metas mensais por associado
func UpdateTargets(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month := httprouter.ParamsFromContext(r.Context()).ByName("month")

		var targets domain.TargetSet
		if err := json.NewDecoder(r.Body).Decode(&targets); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		state, err := service.SetTargets(month, targets)
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"month": month,
		}).Info("months: metas atualizadas")

		respondJSON(w, monthStateResponse{
			Month:      month,
			Targets:    state.Targets,
			Associates: state.Associates,
		})
	})
}

// CreateAssociate cria um associado com todos os contadores zerados
func CreateAssociate(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month := httprouter.ParamsFromContext(r.Context()).ByName("month")

		var request createAssociateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		associate, err := service.AddAssociate(month, request.Name)
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(associate); err != nil {
			log.L.WithError(err).Error("Erro ao codificar resposta JSON")
		}
	})
}

// UpdateAssociateMetric define o valor de um contador de um associado
func UpdateAssociateMetric(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		month := params.ByName("month")
		associateID := params.ByName("id")

		metric, ok := domain.ParseMetric(params.ByName("metric"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Métrica desconhecida", params.ByName("metric"))
			return
		}

		var request updateMetricRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		associate, err := service.UpdateMetric(month, associateID, metric, request.Value)
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		respondJSON(w, associate)
	})
}

// DeleteAssociate remove um associado do mês
func DeleteAssociate(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		err := service.RemoveAssociate(params.ByName("month"), params.ByName("id"))
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeTrackingError mapeia os erros do tracking para os códigos da API
func writeTrackingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tracking.ErrInvalidMonth):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, tracking.ErrAssociateNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	case errors.Is(err, tracking.ErrUnknownMetric),
		errors.Is(err, tracking.ErrNegativeValue),
		errors.Is(err, tracking.ErrEmptyName):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

func respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta JSON")
	}
}
