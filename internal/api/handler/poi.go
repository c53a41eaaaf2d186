package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lugezz/marketminds-api/infrastructure/repository"
	"github.com/lugezz/marketminds-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

func ListPOISTypes(repo repository.POIRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		types, err := repo.ListPOISTypes()
		if err != nil {
			logrus.Error("Error listing POI types:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar los tipos de POI", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(types); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func ListPOIsByPDV(repo repository.POIRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pdvID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if pdvID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID del PDV no especificado", nil)
			return
		}

		pois, err := repo.ListPOIsByPDV(pdvID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"pdv_id": pdvID,
			}).Error("Error listing POIs:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar los POIs del punto de venta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(pois); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}
