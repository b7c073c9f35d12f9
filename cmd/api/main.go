package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mohdanas86/hotelRevnue/infrastructure/dataset"
	"github.com/mohdanas86/hotelRevnue/internal/api"
	"github.com/mohdanas86/hotelRevnue/internal/config"
	"github.com/mohdanas86/hotelRevnue/internal/scheduler"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/aggregating"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/filtering"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/forecasting"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/insighting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := dataset.NewStore(cfg.Dataset)

	// Carrega o dataset na partida para falhar cedo em fonte inválida
	if d, err := store.Load(); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset")
	} else {
		logrus.WithField("records", d.Len()).Info("Dataset carregado com sucesso")
	}

	filterService := filtering.NewService(store)
	analyticsService := aggregating.NewAnalyticsService(store, cfg.Dashboard)
	insightService := insighting.NewService(store)
	forecastService := forecasting.NewForecastService(store, cfg.Forecast)

	refreshService := scheduler.NewDatasetRefreshService(store, forecastService, cfg)

	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		insightService,
		forecastService,
		filterService,
		refreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
