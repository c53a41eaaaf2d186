package handler

import (
	"net/http"

	"github.com/lugezz/marketminds-api/infrastructure/repository"
	"github.com/lugezz/marketminds-api/internal/domain"
	"github.com/lugezz/marketminds-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

func ListClients(repo repository.ClientRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clients, err := repo.ListClients()
		if err != nil {
			logrus.Error("Error listing clients:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar los clientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(clients); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

// ListAttributes arma el handler de listado para un kind de atributo de
// cliente. Las siete rutas de atributos comparten este constructor.
func ListAttributes(repo repository.AttributeRepository, kind domain.AttributeKind) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attributes, err := repo.ListAttributes(kind)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"kind": string(kind),
			}).Error("Error listing attributes:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar los atributos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(attributes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func ListProvincias(repo repository.ProvinciaRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provincias, err := repo.ListProvincias()
		if err != nil {
			logrus.Error("Error listing provincias:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar las provincias", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(provincias); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func ListDepartamentos(repo repository.ProvinciaRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		departamentos, err := repo.ListDepartamentos()
		if err != nil {
			logrus.Error("Error listing departamentos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar los departamentos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(departamentos); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}
