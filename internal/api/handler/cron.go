package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lugezz/marketminds-api/internal/scheduler"
	"github.com/lugezz/marketminds-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CronJobType define el tipo de cron job a ejecutar
const (
	CronJobTypeImport = "import"
	CronJobTypeAll    = "all"
)

// CronJobServices contiene los servicios de cron necesarios para la
// ejecución manual
type CronJobServices struct {
	DatasetSyncService *scheduler.DatasetSyncService
}

// RunCronJob ejecuta manualmente una cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job no especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeImport, CronJobTypeAll:
			if services.DatasetSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de sincronización del dataset no disponible", nil)
				return
			}
			services.DatasetSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceptados: import, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada con éxito",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus devuelve el estado de las cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"import": services.DatasetSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
