package main

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/delivery/graphql"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/delivery/http/routers"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"
	"clinic-service/internal/app/drivers/messaging"
	"clinic-service/internal/app/services/core/appointments"
	"clinic-service/internal/app/services/core/patients"
	"clinic-service/internal/app/services/shared/eventpublisher"
	"clinic-service/internal/app/services/shared/locker"
	"clinic-service/internal/app/services/shared/phonevalidator"
	"clinic-service/internal/app/services/shared/redis"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	if err := config.Validate(driverConfig, internalConfig); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)

	var eventPublisher contracts.EventPublisher = eventpublisher.NewNoopPublisher(log)
	if rabbitMQ != nil {
		publisher, err := eventpublisher.NewRabbitMQPublisher(rabbitMQ, log)
		if err != nil {
			log.Fatal("Failed to set up event publisher", zap.Error(err))
		}
		eventPublisher = publisher
	}

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		EventPublisher: eventPublisher,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server listening", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to release drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Lock
	var lockService contracts.LockerService
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		lockService = locker.NewLockService(redisRepository, bootstrap.Logger)
	} else {
		bootstrap.Logger.Warn("Redis not configured, duplicate checks run without locking")
		lockService = locker.NewNoopLockService()
	}

	// Phone validator
	phoneValidatorService := phonevalidator.NewPhoneValidatorService(bootstrap.InternalConfig, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	patientUsecase := patients.NewPatientUsecase(
		patientMongoRepository,
		phoneValidatorService,
		lockService,
		bootstrap.EventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, bootstrap.InternalConfig)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		patientMongoRepository,
		lockService,
		bootstrap.EventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, bootstrap.InternalConfig)

	// Health
	healthController := controllers.NewHealthController(bootstrap.Logger, bootstrap.MongoDB, bootstrap.InternalConfig)

	// GraphQL
	graphqlResolver := graphql.NewResolver(patientUsecase, appointmentUsecase, bootstrap.Logger)
	graphqlHandler := graphql.NewHandler(graphqlResolver, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		patientController,
		appointmentController,
		healthController,
		graphqlHandler,
	)
}
