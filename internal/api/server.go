package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/lugezz/marketminds-api/infrastructure/repository"
	"github.com/lugezz/marketminds-api/internal/api/handler"
	"github.com/lugezz/marketminds-api/internal/api/handler/router"
	"github.com/lugezz/marketminds-api/internal/config"
	"github.com/lugezz/marketminds-api/internal/scheduler"
	"github.com/lugezz/marketminds-api/internal/usecases/importing"
	"github.com/lugezz/marketminds-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	importService importing.Importer,
	clientRepo repository.ClientRepository,
	attributeRepo repository.AttributeRepository,
	provinciaRepo repository.ProvinciaRepository,
	pdvRepo repository.PDVRepository,
	poiRepo repository.POIRepository,
	datasetSyncService *scheduler.DatasetSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		DatasetSyncService: datasetSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dataset(importService, cfg.Auth.Secret)...),
		router.WithRoutes(handler.Clients(clientRepo)...),
		router.WithRoutes(handler.Attributes(attributeRepo)...),
		router.WithRoutes(handler.Provincias(provinciaRepo)...),
		router.WithRoutes(handler.PDVs(pdvRepo)...),
		router.WithRoutes(handler.POIs(poiRepo)...),
		router.WithRoutes(handler.CronJobs(cronServices, cfg.Auth.Secret)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error durante la ejecución del servidor")
		}
	}()

	// Canal para esperar señales de terminación
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Señal de interrupción recibida")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicación cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando apagado gradual del servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error durante el apagado del servidor")
		return err
	}

	logrus.Info("Servidor apagado con éxito")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP apagado con éxito")
	return nil
}
