package main

import (
	"context"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/weather-agent/config"
	"ulascansenturk/weather-agent/internal/agents"
	"ulascansenturk/weather-agent/internal/api/v1/handlers"
	"ulascansenturk/weather-agent/internal/db/weatherquery"
	"ulascansenturk/weather-agent/internal/providers"
	"ulascansenturk/weather-agent/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()

	ctx, mainCtxStop := context.WithCancel(context.Background())

	geocoder := providers.NewOpenMeteoGeocoder(conf.GeocodingBaseURL, conf.UpstreamTimeout)
	forecaster := providers.NewOpenMeteoForecaster(conf.ForecastBaseURL, conf.ForecastTimezone, conf.UpstreamTimeout)

	weatherService := service.NewWeatherService(geocoder, forecaster)

	var queryRepo weatherquery.Repository
	if conf.QueryLogEnabled {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			log.Fatal().Err(dbErr).Msg("failed to initialize database")
		}

		queryRepo = weatherquery.NewRepository(db)
		weatherService = service.NewLoggingWeatherService(weatherService, queryRepo)
	}

	handler := handlers.NewWeatherHandler(
		weatherService,
		queryRepo,
		agents.New(conf.AgentModel),
		conf.HTTPTimeoutDuration(),
	)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().
		Bool("query_log", conf.QueryLogEnabled).
		Str("timezone", conf.ForecastTimezone).
		Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && serverErr != http.ErrServerClosed {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

func initializeDatabase(conf *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(conf.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&weatherquery.WeatherQuery{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
