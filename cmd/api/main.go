package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/api"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/scheduler"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/ledger"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/metric"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/reconciling"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/rollup"
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

	metricRepo := repository.NewMetricDefinitionRepository(pgConn)
	entryRepo := repository.NewDailyEntryRepository(pgConn)
	ownerDirectory := repository.NewOwnerDirectory(pgConn)

	metricService := metric.NewService(metricRepo, cfg)

	// O razão notifica o serviço de agregação para invalidar a visão mensal
	// após cada escrita
	rollupService := rollup.NewService(entryRepo, metricRepo)
	ledgerService := ledger.NewService(entryRepo, metricRepo).WithInvalidator(rollupService)

	reportService := rollup.NewReportService(rollupService, ownerDirectory)
	reconciler := reconciling.NewService(rollupService, metricRepo)

	// Inicializa o agendador de reconciliação
	reconciliationSyncService := scheduler.NewReconciliationSyncService(
		ownerDirectory,
		reconciler,
		cfg,
	)

	if err := reconciliationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação")
	} else {
		logrus.Info("Agendador de reconciliação iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		metricService,
		ledgerService,
		rollupService,
		reportService,
		reconciler,
		reconciliationSyncService,
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
