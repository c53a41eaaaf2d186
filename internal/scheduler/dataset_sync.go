package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/lugezz/marketminds-api/internal/config"
	"github.com/lugezz/marketminds-api/internal/usecases/importing"
	"github.com/sirupsen/logrus"
)

// DatasetSyncConfig representa la configuración del agendador de
// importación del dataset
type DatasetSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetSyncService gestiona el agendamiento y la ejecución periódica de
// la importación del dataset de puntos de venta
type DatasetSyncService struct {
	scheduler           *gocron.Scheduler
	config              DatasetSyncConfig
	importService       importing.Importer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewDatasetSyncService crea una nueva instancia del servicio de
// sincronización del dataset
func NewDatasetSyncService(
	importService importing.Importer,
	appConfig *config.Config,
) *DatasetSyncService {
	syncConfig := DatasetSyncConfig{
		CronSchedule: appConfig.DatasetSync.CronSchedule,
		SyncEnabled:  appConfig.DatasetSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuración del agendador de importación del dataset cargada")

	return &DatasetSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		importService: importService,
		syncRunning:   false,
	}
}

// Start inicia el agendador
func (s *DatasetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Importación periódica del dataset deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de importación del dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncDataset(ctx)
	})
	if err != nil {
		return fmt.Errorf("error al agendar la importación del dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Deteniendo agendador de importación del dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// syncDataset ejecuta una corrida completa de importación del dataset
func (s *DatasetSyncService) syncDataset(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Importación del dataset ya en curso, ignorando")
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

	logrus.Info("Iniciando importación agendada del dataset")

	result, err := s.importService.ImportDataset(ctx)
	if err != nil {
		// El servicio de importación ya serializa corridas concurrentes,
		// acá solo registramos el resultado
		if errors.Is(err, importing.ErrImportRunning) {
			logrus.Info("Importación del dataset ya en curso, ignorando corrida agendada")
			return
		}

		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Error en la importación agendada del dataset")
		return
	}

	s.lastSyncError = ""
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":        time.Since(startTime).String(),
		"registros_added": result.RegistrosAdded,
	}).Info("Importación agendada del dataset concluida")
}

// TriggerManualSync inicia manualmente una importación del dataset
func (s *DatasetSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Importación del dataset ya en curso, ignorando solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando importación manual del dataset")
	go s.syncDataset(context.Background())
}

// GetStatus devuelve el estado actual del agendador
func (s *DatasetSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
