package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lugezz/marketminds-api/infrastructure/repository"
	"github.com/lugezz/marketminds-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// ListPDVs devuelve la proyección reducida de todos los puntos de venta
func ListPDVs(repo repository.PDVRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pdvs, err := repo.ListPDVs()
		if err != nil {
			logrus.Error("Error listing PDVs:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar los puntos de venta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(pdvs); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func GetPDVByID(repo repository.PDVRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pdvID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if pdvID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID del PDV no especificado", nil)
			return
		}

		pdv, err := repo.GetPDVByID(pdvID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"pdv_id": pdvID,
			}).Error("Error getting PDV:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar el punto de venta", nil)
			return
		}

		if pdv == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Punto de venta no encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(pdv); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}
