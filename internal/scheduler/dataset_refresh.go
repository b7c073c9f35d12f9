// Package scheduler contém os serviços de agendamento para recarga de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/mohdanas86/hotelRevnue/infrastructure/dataset"
	"github.com/mohdanas86/hotelRevnue/internal/config"
	"github.com/mohdanas86/hotelRevnue/pkg/utils"
)

// ForecastCacheInvalidator limpa previsões memoizadas após uma recarga do
// dataset. Um fingerprint novo já invalida as chaves antigas, mas limpar o
// cache evita segurar resultados que nunca mais serão lidos.
type ForecastCacheInvalidator interface {
	ClearCache()
}

type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	store     dataset.Store
	forecasts ForecastCacheInvalidator
	config    config.DatasetRefresh

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDatasetRefreshService(
	store dataset.Store,
	forecasts ForecastCacheInvalidator,
	cfg *config.Config,
) *DatasetRefreshService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.DatasetRefresh.CronSchedule,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetRefreshService{
		scheduler: scheduler,
		store:     store,
		forecasts: forecasts,
		config:    cfg.DatasetRefresh,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de recarga do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunRefresh(); err != nil {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// RunRefresh recarrega o dataset da fonte e invalida o cache de previsões.
// Execuções concorrentes são rejeitadas sem erro.
func (s *DatasetRefreshService) RunRefresh() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Recarga do dataset já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	logrus.WithField("run_id", runID).Info("Iniciando recarga do dataset")

	refreshed, err := s.store.Refresh()
	if err != nil {
		logrus.WithError(err).WithField("run_id", runID).Error("Erro ao recarregar o dataset")
		return err
	}

	if s.forecasts != nil {
		s.forecasts.ClearCache()
	}

	logrus.WithFields(logrus.Fields{
		"run_id":  runID,
		"records": refreshed.Len(),
	}).Info("Recarga do dataset concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma recarga do dataset
func (s *DatasetRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do dataset")
	go func() {
		if err := s.RunRefresh(); err != nil {
			logrus.WithError(err).Error("Erro na recarga manual do dataset")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
