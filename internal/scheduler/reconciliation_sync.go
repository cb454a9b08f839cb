package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/reconciling"
)

// ReconciliationSyncConfig representa a configuração do agendador de
// reconciliação de valores consolidados
type ReconciliationSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	MonthLookBack     int
}

// ReconciliationSyncService gerencia o agendamento e execução da
// reconciliação dos agregados mensais para todos os responsáveis
type ReconciliationSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReconciliationSyncConfig
	ownerDirectory      repository.OwnerDirectory
	reconciler          reconciling.Reconciler
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReconciliationSyncService cria uma nova instância do serviço de
// sincronização de reconciliação
func NewReconciliationSyncService(
	ownerDirectory repository.OwnerDirectory,
	reconciler reconciling.Reconciler,
	appConfig *config.Config,
) *ReconciliationSyncService {
	// Criar a configuração com base na config global
	syncConfig := ReconciliationSyncConfig{
		CronSchedule:      appConfig.ReconciliationSync.CronSchedule,
		MaxConcurrentJobs: appConfig.ReconciliationSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.ReconciliationSync.Enabled,
		MonthLookBack:     appConfig.ReconciliationSync.MonthLookBack,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
		"month_lookback":      syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de reconciliação carregada")

	return &ReconciliationSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		ownerDirectory: ownerDirectory,
		reconciler:     reconciler,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *ReconciliationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reconciliação agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconciliação de valores consolidados")

	// Agendar a reconciliação
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllOwners(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconciliação")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllOwners reconcilia os agregados mensais de todos os responsáveis
func (s *ReconciliationSyncService) syncAllOwners(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando reconciliação para todos os responsáveis")

	ownerIDs, err := s.ownerDirectory.ListOwnerIDs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de responsáveis para reconciliação")
		return
	}

	if len(ownerIDs) == 0 {
		logrus.Info("Nenhum responsável encontrado para reconciliação")
		return
	}

	// Reconcilia o mês corrente e os meses anteriores do lookback
	for i := 0; i <= s.config.MonthLookBack; i++ {
		month := time.Now().AddDate(0, -i, 0)

		logrus.WithFields(logrus.Fields{
			"year":  month.Year(),
			"month": int(month.Month()),
		}).Info("Período para reconciliação")

		s.processOwners(ctx, ownerIDs, month.Year(), month.Month())
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"owners":   len(ownerIDs),
	}).Info("Reconciliação concluída")

	// Os carimbos de horário compartilham o mutex com GetStatus
	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// processOwners executa a reconciliação de cada responsável com
// concorrência limitada por semáforo
func (s *ReconciliationSyncService) processOwners(ctx context.Context, ownerIDs []string, year int, month time.Month) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, ownerID := range ownerIDs {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(owner string) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			result, err := s.reconciler.SyncRollupToDefinition(ctx, owner, year, month)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"owner_id": owner,
					"year":     year,
					"month":    int(month),
				}).Error("Erro ao reconciliar responsável")
				return
			}

			logrus.WithFields(logrus.Fields{
				"owner_id": owner,
				"metrics":  result.MetricsSynced,
			}).Info("Responsável reconciliado com sucesso")
		}(ownerID)
	}

	// Aguardar todos os workers terminarem
	wg.Wait()
}

// TriggerManualSync inicia manualmente uma reconciliação completa
func (s *ReconciliationSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reconciliação manual")
	go s.syncAllOwners(context.Background())
}

// GetStatus retorna o status atual da sincronização
func (s *ReconciliationSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
