// Package summarizing monta e despacha o resumo diário de KPIs. O envio é
// uma máquina de dois estados por tentativa: ocioso para enviado ou ocioso
// para falho, sem retentativa e sem backoff.
package summarizing

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-kpi-api/infrastructure/repository"
	"github.com/vfg2006/sales-kpi-api/infrastructure/webhook"
	"github.com/vfg2006/sales-kpi-api/internal/domain"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/tracking"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/transfer"
)

// Formas de entrega do resumo
const (
	DeliveryWebhook = "webhook"
	DeliveryMailto  = "mailto"
	DeliveryNone    = "none"
)

// sendWindow é a tolerância em torno da hora configurada de envio
const sendWindow = 30 * time.Minute

// DispatchResult descreve o desfecho de uma tentativa de envio
type DispatchResult struct {
	Month     string `json:"month"`
	Delivery  string `json:"delivery"`
	Subject   string `json:"subject,omitempty"`
	MailtoURI string `json:"mailtoUri,omitempty"`
}

// Dispatcher despacha o resumo diário pelos caminhos interativo e agendado
type Dispatcher interface {
	SendMonthlySummary(ctx context.Context, month string) (*DispatchResult, error)
	SendScheduledSummary(ctx context.Context, now time.Time) (*DispatchResult, error)
}

type Service struct {
	tracker      tracking.Tracker
	storeRepo    repository.KPIStoreRepository
	settingsRepo repository.EmailSettingsRepository
	client       webhook.Client
}

func NewService(
	tracker tracking.Tracker,
	storeRepo repository.KPIStoreRepository,
	settingsRepo repository.EmailSettingsRepository,
	client webhook.Client,
) Dispatcher {
	return &Service{
		tracker:      tracker,
		storeRepo:    storeRepo,
		settingsRepo: settingsRepo,
		client:       client,
	}
}

// SendMonthlySummary é o caminho interativo: usa o estado em memória do
// tracker e, sem webhook configurado, devolve a URI mailto para o painel abrir.
func (s *Service) SendMonthlySummary(ctx context.Context, month string) (*DispatchResult, error) {
	state, err := s.tracker.GetMonth(month)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	return s.dispatch(ctx, month, state, settings, true)
}

// SendScheduledSummary é o caminho agendado. Só prossegue dentro da janela
// de envio; fora dela é um no-op, não uma falha. Relê todo o estado
// persistido porque roda em contexto de execução próprio, independente do
// caminho interativo. Não há deduplicação: mais de um disparo dentro da
// mesma janela é aceito (entrega ao menos uma vez).
func (s *Service) SendScheduledSummary(ctx context.Context, now time.Time) (*DispatchResult, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	month := domain.MonthKey(now)

	if !WithinSendWindow(now, settings.SendHourLocal) {
		logrus.WithFields(logrus.Fields{
			"send_hour": settings.SendHourLocal,
			"now":       now.Format(time.TimeOnly),
		}).Debug("Fora da janela de envio do resumo diário, nada a fazer")

		return &DispatchResult{Month: month, Delivery: DeliveryNone}, nil
	}

	store, err := s.storeRepo.LoadStore()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao recarregar o store de KPIs")
	}

	state, ok := store[month]
	if !ok {
		state = domain.NewMonthState()
	}
	state.Normalize()

	if settings.WebhookURL == "" {
		// Sem webhook não há caminho de entrega em segundo plano; o mailto
		// só faz sentido no caminho interativo
		logrus.Info("Resumo agendado sem webhook configurado: nenhum caminho de entrega disponível")
		return &DispatchResult{Month: month, Delivery: DeliveryNone}, nil
	}

	return s.dispatch(ctx, month, state, settings, false)
}

func (s *Service) dispatch(
	ctx context.Context,
	month string,
	state *domain.MonthState,
	settings domain.EmailSettings,
	allowMailto bool,
) (*DispatchResult, error) {
	subject := fmt.Sprintf("Daily KPI Summary %s", month)
	text := reporting.SummaryText(month, state)

	if settings.WebhookURL != "" {
		payload := webhook.SummaryPayload{
			To:      settings.To,
			Subject: subject,
			Text:    text,
			CSV:     transfer.ExportCSV(state),
			Month:   month,
		}

		if err := s.client.SendSummary(ctx, settings.WebhookURL, payload); err != nil {
			logrus.WithError(err).WithField("month", month).Error("Falha no envio do resumo via webhook")
			return nil, errors.Wrap(err, "falha no envio do resumo via webhook")
		}

		logrus.WithFields(logrus.Fields{
			"month": month,
			"to":    settings.To,
		}).Info("Resumo enviado via webhook")

		return &DispatchResult{
			Month:    month,
			Delivery: DeliveryWebhook,
			Subject:  subject,
		}, nil
	}

	if !allowMailto {
		return &DispatchResult{Month: month, Delivery: DeliveryNone}, nil
	}

	return &DispatchResult{
		Month:     month,
		Delivery:  DeliveryMailto,
		Subject:   subject,
		MailtoURI: BuildMailtoURI(settings.To, subject, text),
	}, nil
}

// WithinSendWindow verifica se o horário está a até 30 minutos da hora
// configurada de envio. Gate grosseiro e sem estado, avaliado a cada
// despertar do agendador.
func WithinSendWindow(now time.Time, sendHour int) bool {
	target := time.Date(now.Year(), now.Month(), now.Day(), sendHour, 0, 0, 0, now.Location())
	diff := now.Sub(target)

	return diff >= -sendWindow && diff <= sendWindow
}

// BuildMailtoURI monta a URI mailto com assunto e corpo percent-encoded
func BuildMailtoURI(to, subject, body string) string {
	return fmt.Sprintf(
		"mailto:%s?subject=%s&body=%s",
		to,
		percentEncode(subject),
		percentEncode(body),
	)
}

// percentEncode codifica no estilo encodeURIComponent (espaço vira %20, não +)
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
