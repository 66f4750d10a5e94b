package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"benerin-admin-service/src/internal/config"
	"benerin-admin-service/src/internal/usecase"
	"benerin-admin-service/src/pkg/log"

	"github.com/hibiken/asynq"
)

func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "BENERIN_ADMIN_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("asynq.concurrency", 5)
	viperConfig.SetDefault("asynq.reconcile_interval", "@every 1h")

	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	config.NewKafkaConfig(viperConfig)
	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis()
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)

	geoservice, err := config.NewGeoService(viperConfig)
	if err != nil {
		logger.Error("main", fmt.Sprintf("Geoservice unavailable: %v", err), "main", "")
	}

	asynqClient := config.NewAsynqClient(viperConfig)
	asynqServer, asynqMux := config.NewAsynqServer(viperConfig)

	app := config.NewFiber(viperConfig)
	config.Bootstrap(&config.BootstrapConfig{
		DB:          db,
		App:         app,
		Log:         logger,
		Validate:    validate,
		Config:      viperConfig,
		Producer:    producer,
		Redis:       redisClient,
		Geoservice:  geoservice,
		AsynqClient: asynqClient,
		Async:       asynqMux,
	})

	go func() {
		if err := asynqServer.Run(asynqMux); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start asynq server: %v", err), "main", "")
		}
	}()

	scheduler := config.NewAsynqScheduler(viperConfig)
	if _, err := scheduler.Register(
		viperConfig.GetString("asynq.reconcile_interval"),
		asynq.NewTask(usecase.TypeReconcilePayouts, nil),
	); err != nil {
		logger.Error("main", fmt.Sprintf("Failed to register reconcile schedule: %v", err), "main", "")
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start asynq scheduler: %v", err), "main", "")
		}
	}()

	go func() {
		webPort := viperConfig.GetInt("web.port")
		if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		}
	}()

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	go func() {
		<-quit
		logger.Info("main", "Server benerin-admin-service is shutting down...", "graceful", "")

		_, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		asynqServer.Shutdown()
		scheduler.Shutdown()
		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
		close(done)
	}()

	<-done
	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
