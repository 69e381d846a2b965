// Package scheduler contém o serviço de agendamento do resumo diário de KPIs
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-kpi-api/internal/config"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/summarizing"
)

type DailySummaryConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailySummaryService acorda periodicamente e delega ao dispatcher, que
// decide sozinho se o horário está dentro da janela de envio. O agendador
// roda em contexto próprio e cada execução relê o estado persistido.
type DailySummaryService struct {
	scheduler          *gocron.Scheduler
	dispatcher         summarizing.Dispatcher
	config             DailySummaryConfig
	runMutex           sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastDelivery       string
}

func NewDailySummaryService(
	dispatcher summarizing.Dispatcher,
	cfg *config.Config,
) *DailySummaryService {
	summaryConfig := DailySummaryConfig{
		CronSchedule: cfg.DailySummary.CronSchedule, // Default: a cada 30 minutos
		Enabled:      cfg.DailySummary.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": summaryConfig.CronSchedule,
	}).Info("Configuração do agendador do resumo diário carregada")

	return &DailySummaryService{
		scheduler:  scheduler,
		dispatcher: dispatcher,
		config:     summaryConfig,
	}
}

func (s *DailySummaryService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do resumo diário desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do resumo diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunDailySummary(); err != nil {
			logrus.WithError(err).Error("Erro no envio do resumo diário")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o resumo diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do resumo diário")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDailySummary executa uma tentativa de envio do resumo. Falha de envio é
// sinalizada ao chamador como falha da execução; não há retentativa aqui.
func (s *DailySummaryService) RunDailySummary() error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.running {
		logrus.Warn("Envio do resumo diário já está em execução")
		return nil
	}

	s.running = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.running = false
		s.lastRunCompletedAt = time.Now()
	}()

	result, err := s.dispatcher.SendScheduledSummary(context.Background(), time.Now())
	if err != nil {
		s.lastDelivery = "failed"
		return err
	}

	s.lastDelivery = result.Delivery

	if result.Delivery == summarizing.DeliveryNone {
		logrus.WithField("month", result.Month).Debug("Execução do resumo diário terminou sem envio")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"month":    result.Month,
		"delivery": result.Delivery,
	}).Info("Execução do resumo diário concluída")

	return nil
}

// TriggerManualSync dispara manualmente uma execução do resumo diário
func (s *DailySummaryService) TriggerManualSync() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Envio do resumo diário já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando execução manual do resumo diário")
	go func() {
		if err := s.RunDailySummary(); err != nil {
			logrus.WithError(err).Error("Erro na execução manual do resumo diário")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DailySummaryService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"running":               s.running,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_delivery":         s.lastDelivery,
	}
}
