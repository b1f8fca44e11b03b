// Package scheduler contém as rotinas agendadas do planejamento
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/stmbudget/sales-planning-api/internal/config"
	"github.com/stmbudget/sales-planning-api/internal/usecases/reporting"
)

// KPIMetricsSyncConfig representa a configuração do agendador de KPIs
type KPIMetricsSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookback int
}

// KPIMetricsSyncService agenda e executa o recálculo periódico das métricas
// de KPI. Como a gravação é por upsert, reprocessar um período já calculado
// é seguro.
type KPIMetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              KPIMetricsSyncConfig
	kpiService          reporting.KPIService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewKPIMetricsSyncService cria uma nova instância do serviço de sincronização de KPIs
func NewKPIMetricsSyncService(
	kpiService reporting.KPIService,
	cfg *config.Config,
) *KPIMetricsSyncService {
	syncConfig := KPIMetricsSyncConfig{
		CronSchedule:  cfg.KPISync.CronSchedule,  // Default: 5h da manhã no primeiro dia do mês
		SyncEnabled:   cfg.KPISync.Enabled,       // Default: desabilitado
		MonthLookback: cfg.KPISync.MonthLookback, // Default: 1 mês para trás
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"sync_enabled":   syncConfig.SyncEnabled,
		"month_lookback": syncConfig.MonthLookback,
	}).Info("Configuração do agendador de métricas de KPI carregada")

	return &KPIMetricsSyncService{
		scheduler:  scheduler,
		config:     syncConfig,
		kpiService: kpiService,
	}
}

// Start inicia o agendador
func (s *KPIMetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de métricas de KPI desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de métricas de KPI")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncKPIMetrics()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas de KPI: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de métricas de KPI")
		s.scheduler.Stop()
	}()

	return nil
}

// syncKPIMetrics recalcula as métricas dos meses da janela de lookback
func (s *KPIMetricsSyncService) syncKPIMetrics() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas de KPI já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	calculated := s.calculatePeriods(context.Background(), time.Now())

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"metrics":  calculated,
	}).Info("Sincronização de métricas de KPI concluída")

	s.lastSyncCompletedAt = time.Now()
}

// calculatePeriods processa os meses fechados dentro da janela de lookback,
// do mais antigo para o mais recente
func (s *KPIMetricsSyncService) calculatePeriods(ctx context.Context, reference time.Time) int {
	lookback := s.config.MonthLookback
	if lookback < 1 {
		lookback = 1
	}

	// Ancorar no primeiro dia do mês antes de subtrair: AddDate normaliza
	// datas de fim de mês (31 de março - 1 mês = 3 de março) e pularia o
	// mês fechado quando a sincronização roda nos dias 29-31
	firstOfMonth := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())

	calculated := 0
	for i := lookback; i >= 1; i-- {
		month := firstOfMonth.AddDate(0, -i, 0)

		logrus.WithFields(logrus.Fields{
			"year":  month.Year(),
			"month": int(month.Month()),
		}).Info("Calculando métricas de KPI do período")

		count, err := s.kpiService.CalculateMonthlyMetrics(ctx, month.Year(), int(month.Month()))
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"year":  month.Year(),
				"month": int(month.Month()),
			}).Error("Erro ao calcular métricas de KPI do período")
			continue
		}

		calculated += count
	}

	return calculated
}

// TriggerManualSync inicia manualmente uma sincronização de métricas de KPI
func (s *KPIMetricsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas de KPI já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de métricas de KPI")
	go s.syncKPIMetrics()
}

// GetStatus retorna o status atual da sincronização
func (s *KPIMetricsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"month_lookback":         s.config.MonthLookback,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
