package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/lugezz/marketminds-api/internal/usecases/importing"
	"github.com/lugezz/marketminds-api/pkg/apiErrors"
	"github.com/lugezz/marketminds-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ImportDataset ejecuta una corrida de importación del dataset y devuelve
// el resumen con los contadores de registros nuevos por entidad
func ImportDataset(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - ImportDataset")

		result, err := service.ImportDataset(r.Context())
		if err != nil {
			logger.WithError(err).Error("Error importing dataset")

			if errors.Is(err, importing.ErrImportRunning) {
				apiErrors.WriteError(w, apiErrors.ErrImportRunning, "Ya hay una importación en curso", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrImportFailed, "Error al importar el dataset", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}
