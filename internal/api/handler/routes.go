package handler

import (
	"net/http"

	"github.com/lugezz/marketminds-api/infrastructure/repository"
	"github.com/lugezz/marketminds-api/internal/api/handler/router"
	"github.com/lugezz/marketminds-api/internal/domain"
	"github.com/lugezz/marketminds-api/internal/usecases/importing"
	"github.com/lugezz/marketminds-api/pkg/middleware"
)

// BasePath es el prefijo común de todas las rutas de la API
const BasePath = "/api/marketminds"

func Healthcheck() []router.Route {
	return []router.Route{
		{
			// El nombre conserva el typo histórico del endpoint
			Path:    BasePath + "/healtz/",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dataset(service importing.Importer, authSecret string) []router.Route {
	return []router.Route{
		{
			Path:        BasePath + "/import-dataset/",
			Method:      http.MethodGet,
			Handler:     ImportDataset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(authSecret)},
		},
	}
}

func Clients(repo repository.ClientRepository) []router.Route {
	return []router.Route{
		{
			Path:    BasePath + "/clientes",
			Method:  http.MethodGet,
			Handler: ListClients(repo),
		},
	}
}

// Attributes arma las siete rutas de listado de entidades-atributo, una
// por kind, todas servidas por el mismo repositorio
func Attributes(repo repository.AttributeRepository) []router.Route {
	paths := map[domain.AttributeKind]string{
		domain.KindCanalDistribucion: "/canales-distribucion",
		domain.KindCategoria:         "/categorias",
		domain.KindGerenteNacional:   "/gerentes-nacionales",
		domain.KindGerenteRegional:   "/gerentes-regionales",
		domain.KindSucursal:          "/sucursales",
		domain.KindSubcanalAdicional: "/subcanales-adicionales",
		domain.KindVendedor:          "/vendedores",
	}

	routes := make([]router.Route, 0, len(paths))
	for _, kind := range domain.AttributeKinds() {
		routes = append(routes, router.Route{
			Path:    BasePath + paths[kind],
			Method:  http.MethodGet,
			Handler: ListAttributes(repo, kind),
		})
	}

	return routes
}

func Provincias(repo repository.ProvinciaRepository) []router.Route {
	return []router.Route{
		{
			Path:    BasePath + "/provincias",
			Method:  http.MethodGet,
			Handler: ListProvincias(repo),
		},
		{
			Path:    BasePath + "/departamentos",
			Method:  http.MethodGet,
			Handler: ListDepartamentos(repo),
		},
	}
}

func PDVs(repo repository.PDVRepository) []router.Route {
	return []router.Route{
		{
			Path:    BasePath + "/pdv",
			Method:  http.MethodGet,
			Handler: ListPDVs(repo),
		},
		{
			Path:    BasePath + "/pdv/:id",
			Method:  http.MethodGet,
			Handler: GetPDVByID(repo),
		},
	}
}

func POIs(repo repository.POIRepository) []router.Route {
	return []router.Route{
		{
			Path:    BasePath + "/pois-types",
			Method:  http.MethodGet,
			Handler: ListPOISTypes(repo),
		},
		{
			Path:    BasePath + "/pdv/:id/pois",
			Method:  http.MethodGet,
			Handler: ListPOIsByPDV(repo),
		},
	}
}

func CronJobs(services CronJobServices, authSecret string) []router.Route {
	return []router.Route{
		{
			Path:        BasePath + "/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(authSecret)},
		},
		{
			Path:        BasePath + "/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(authSecret)},
		},
	}
}
