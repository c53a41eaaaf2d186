package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/lugezz/marketminds-api/infrastructure/database/postgres"
	"github.com/lugezz/marketminds-api/infrastructure/repository"
	"github.com/lugezz/marketminds-api/internal/api"
	"github.com/lugezz/marketminds-api/internal/config"
	"github.com/lugezz/marketminds-api/internal/scheduler"
	"github.com/lugezz/marketminds-api/internal/usecases/importing"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa la configuración de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define el nivel de log en base a la configuración
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	entityStore := repository.NewEntityStore(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	attributeRepo := repository.NewAttributeRepository(pgConn)
	provinciaRepo := repository.NewProvinciaRepository(pgConn)
	pdvRepo := repository.NewPDVRepository(pgConn)
	poiRepo := repository.NewPOIRepository(pgConn)

	importService := importing.NewService(entityStore, cfg.Dataset.Path)

	datasetSyncService := scheduler.NewDatasetSyncService(importService, cfg)

	if err := datasetSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de importación del dataset")
	} else {
		logrus.Info("Agendador de importación del dataset iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		importService,
		clientRepo,
		attributeRepo,
		provinciaRepo,
		pdvRepo,
		poiRepo,
		datasetSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato y el comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea una conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar a PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
