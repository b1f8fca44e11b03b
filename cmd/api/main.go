package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stmbudget/sales-planning-api/infrastructure/cache"
	"github.com/stmbudget/sales-planning-api/infrastructure/database/postgres"
	"github.com/stmbudget/sales-planning-api/infrastructure/repository"
	"github.com/stmbudget/sales-planning-api/internal/api"
	"github.com/stmbudget/sales-planning-api/internal/config"
	"github.com/stmbudget/sales-planning-api/internal/scheduler"
	"github.com/stmbudget/sales-planning-api/internal/usecases/authenticating"
	"github.com/stmbudget/sales-planning-api/internal/usecases/budgeting"
	"github.com/stmbudget/sales-planning-api/internal/usecases/cataloging"
	"github.com/stmbudget/sales-planning-api/internal/usecases/forecasting"
	"github.com/stmbudget/sales-planning-api/internal/usecases/reporting"
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

	// Cache distribuído quando o Redis está configurado; caso contrário os
	// sumários são sempre recalculados
	cacheClient := cache.NewNoopCache()
	if cfg.Redis.Addr != "" {
		cacheClient = cache.NewRedisCache(ctx, cfg.Redis)
	}

	userRepo := repository.NewUserRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	itemRepo := repository.NewItemRepository(pgConn)
	inventoryRepo := repository.NewInventoryRepository(pgConn)
	budgetRepo := repository.NewBudgetEntryRepository(pgConn)
	forecastRepo := repository.NewForecastEntryRepository(pgConn)
	kpiRepo := repository.NewKPIMetricRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	catalogService := cataloging.NewService(customerRepo, itemRepo, inventoryRepo)

	budgetService := budgeting.NewService(budgetRepo, customerRepo, itemRepo, cacheClient)

	forecastService := forecasting.NewService(forecastRepo, budgetRepo, customerRepo, itemRepo, cacheClient)

	reportingService := reporting.NewService(budgetRepo, forecastRepo, customerRepo, itemRepo, cacheClient, cfg.Cache)

	kpiService := reporting.NewKPICalculator(kpiRepo, budgetRepo, forecastRepo, cacheClient, cfg.Cache.DashboardTTLSeconds)

	// Inicializa o agendador de recálculo das métricas mensais
	kpiSyncService := scheduler.NewKPIMetricsSyncService(kpiService, cfg)

	if err := kpiSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de métricas de KPI")
	} else {
		logrus.Info("Agendador de métricas de KPI iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		budgetService,
		forecastService,
		reportingService,
		kpiService,
		catalogService,
		authenticator,
		kpiSyncService,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

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
