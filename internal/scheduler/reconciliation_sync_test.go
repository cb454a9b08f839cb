package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	reconcilingmocks "github.com/vfg2006/kpi-dashboard-api/internal/usecases/reconciling/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(ownerDirectory *mocks.MockOwnerDirectory, reconciler *reconcilingmocks.MockReconciler, syncConfig ReconciliationSyncConfig) *ReconciliationSyncService {
	return &ReconciliationSyncService{
		scheduler:      gocron.NewScheduler(time.UTC),
		config:         syncConfig,
		ownerDirectory: ownerDirectory,
		reconciler:     reconciler,
	}
}

func TestReconciliationSyncService_SyncAllOwners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		config   ReconciliationSyncConfig
		setup    func(ownerDirectory *mocks.MockOwnerDirectory, reconciler *reconcilingmocks.MockReconciler)
		validate func(t *testing.T, service *ReconciliationSyncService)
	}{
		{
			name: "Reconcilia cada responsável para o mês corrente",
			config: ReconciliationSyncConfig{
				MaxConcurrentJobs: 2,
				MonthLookBack:     0,
			},
			setup: func(ownerDirectory *mocks.MockOwnerDirectory, reconciler *reconcilingmocks.MockReconciler) {
				ownerDirectory.EXPECT().
					ListOwnerIDs().
					Return([]string{"joao.martins", "ana.ferreira"}, nil)

				now := time.Now()
				reconciler.EXPECT().
					SyncRollupToDefinition(gomock.Any(), "joao.martins", now.Year(), now.Month()).
					Return(&domain.SyncResult{OwnerID: "joao.martins", MetricsSynced: 2}, nil)
				reconciler.EXPECT().
					SyncRollupToDefinition(gomock.Any(), "ana.ferreira", now.Year(), now.Month()).
					Return(&domain.SyncResult{OwnerID: "ana.ferreira", MetricsSynced: 1}, nil)
			},
			validate: func(t *testing.T, service *ReconciliationSyncService) {
				assert.False(t, service.lastSyncStartedAt.IsZero())
				assert.False(t, service.lastSyncCompletedAt.IsZero())
			},
		},
		{
			name: "Lookback reconcilia também os meses anteriores",
			config: ReconciliationSyncConfig{
				MaxConcurrentJobs: 1,
				MonthLookBack:     1,
			},
			setup: func(ownerDirectory *mocks.MockOwnerDirectory, reconciler *reconcilingmocks.MockReconciler) {
				ownerDirectory.EXPECT().
					ListOwnerIDs().
					Return([]string{"joao.martins"}, nil)

				// Mês corrente e mês anterior: duas chamadas para o responsável
				reconciler.EXPECT().
					SyncRollupToDefinition(gomock.Any(), "joao.martins", gomock.Any(), gomock.Any()).
					Return(&domain.SyncResult{OwnerID: "joao.martins"}, nil).
					Times(2)
			},
			validate: func(t *testing.T, service *ReconciliationSyncService) {
				assert.False(t, service.lastSyncCompletedAt.IsZero())
			},
		},
		{
			name: "Erro em um responsável não interrompe os demais",
			config: ReconciliationSyncConfig{
				MaxConcurrentJobs: 2,
				MonthLookBack:     0,
			},
			setup: func(ownerDirectory *mocks.MockOwnerDirectory, reconciler *reconcilingmocks.MockReconciler) {
				ownerDirectory.EXPECT().
					ListOwnerIDs().
					Return([]string{"joao.martins", "ana.ferreira"}, nil)

				reconciler.EXPECT().
					SyncRollupToDefinition(gomock.Any(), "joao.martins", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("erro no banco de dados"))
				reconciler.EXPECT().
					SyncRollupToDefinition(gomock.Any(), "ana.ferreira", gomock.Any(), gomock.Any()).
					Return(&domain.SyncResult{OwnerID: "ana.ferreira"}, nil)
			},
			validate: func(t *testing.T, service *ReconciliationSyncService) {
				assert.False(t, service.lastSyncCompletedAt.IsZero())
			},
		},
		{
			name: "Nenhum responsável cadastrado encerra sem reconciliar",
			config: ReconciliationSyncConfig{
				MaxConcurrentJobs: 2,
				MonthLookBack:     0,
			},
			setup: func(ownerDirectory *mocks.MockOwnerDirectory, reconciler *reconcilingmocks.MockReconciler) {
				ownerDirectory.EXPECT().ListOwnerIDs().Return([]string{}, nil)
			},
			validate: func(t *testing.T, service *ReconciliationSyncService) {
				assert.True(t, service.lastSyncCompletedAt.IsZero())
			},
		},
		{
			name: "Erro ao listar responsáveis encerra sem reconciliar",
			config: ReconciliationSyncConfig{
				MaxConcurrentJobs: 2,
				MonthLookBack:     0,
			},
			setup: func(ownerDirectory *mocks.MockOwnerDirectory, reconciler *reconcilingmocks.MockReconciler) {
				ownerDirectory.EXPECT().ListOwnerIDs().Return(nil, errors.New("erro no banco de dados"))
			},
			validate: func(t *testing.T, service *ReconciliationSyncService) {
				assert.True(t, service.lastSyncCompletedAt.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ownerDirectory := mocks.NewMockOwnerDirectory(ctrl)
			reconciler := reconcilingmocks.NewMockReconciler(ctrl)
			tt.setup(ownerDirectory, reconciler)

			service := newTestService(ownerDirectory, reconciler, tt.config)
			service.syncAllOwners(context.Background())

			assert.False(t, service.syncRunning)
			tt.validate(t, service)
		})
	}
}

func TestReconciliationSyncService_Start_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerDirectory := mocks.NewMockOwnerDirectory(ctrl)
	reconciler := reconcilingmocks.NewMockReconciler(ctrl)

	service := newTestService(ownerDirectory, reconciler, ReconciliationSyncConfig{
		SyncEnabled: false,
	})

	// Desabilitado por configuração: nada é agendado e nenhum mock é tocado
	assert.NoError(t, service.Start(context.Background()))
}

func TestReconciliationSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerDirectory := mocks.NewMockOwnerDirectory(ctrl)
	reconciler := reconcilingmocks.NewMockReconciler(ctrl)

	service := newTestService(ownerDirectory, reconciler, ReconciliationSyncConfig{
		CronSchedule: "0 5 * * *",
		SyncEnabled:  true,
	})

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
}

// Os carimbos de horário são lidos pelo mesmo mutex que os protege na
// escrita, então o status após uma reconciliação deve refleti-los
func TestReconciliationSyncService_GetStatus_AfterSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerDirectory := mocks.NewMockOwnerDirectory(ctrl)
	reconciler := reconcilingmocks.NewMockReconciler(ctrl)

	ownerDirectory.EXPECT().ListOwnerIDs().Return([]string{"joao.martins"}, nil)
	reconciler.EXPECT().
		SyncRollupToDefinition(gomock.Any(), "joao.martins", gomock.Any(), gomock.Any()).
		Return(&domain.SyncResult{OwnerID: "joao.martins"}, nil)

	service := newTestService(ownerDirectory, reconciler, ReconciliationSyncConfig{
		MaxConcurrentJobs: 1,
		MonthLookBack:     0,
	})

	service.syncAllOwners(context.Background())

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}
