package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-kpi-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-kpi-api/infrastructure/repository"
	"github.com/vfg2006/sales-kpi-api/infrastructure/webhook"
	"github.com/vfg2006/sales-kpi-api/internal/api"
	"github.com/vfg2006/sales-kpi-api/internal/config"
	"github.com/vfg2006/sales-kpi-api/internal/domain"
	"github.com/vfg2006/sales-kpi-api/internal/scheduler"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/summarizing"
	"github.com/vfg2006/sales-kpi-api/internal/usecases/tracking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	appStateRepo := repository.NewAppStateRepository(pgConn)
	kpiStoreRepo := repository.NewKPIStoreRepository(appStateRepo)
	userRepo := repository.NewUserRepository(pgConn)

	settingsDefaults := domain.EmailSettings{
		To:            cfg.Summary.DefaultRecipient,
		SendHourLocal: cfg.Summary.DefaultSendHour,
	}
	settingsRepo := repository.NewEmailSettingsRepository(appStateRepo, settingsDefaults)

	authenticator := authenticating.NewService(userRepo, cfg)

	trackingService := tracking.NewService(kpiStoreRepo)

	webhookClient := webhook.NewClient()

	dispatcher := summarizing.NewService(trackingService, kpiStoreRepo, settingsRepo, webhookClient)

	// Inicializa o agendador do resumo diário
	dailySummaryService := scheduler.NewDailySummaryService(dispatcher, cfg)

	// Inicia o agendador em background
	if err := dailySummaryService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo diário")
	} else {
		logrus.Info("Agendador do resumo diário iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		trackingService,
		dispatcher,
		settingsRepo,
		authenticator,
		dailySummaryService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
