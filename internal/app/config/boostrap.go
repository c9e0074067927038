package config

import (
	"clinic-service/internal/app/contracts"
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	EventPublisher contracts.EventPublisher
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

// Shutdown releases the drivers in reverse order of their creation. Redis and
// RabbitMQ are optional and may be nil.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.EventPublisher != nil {
		if err := b.EventPublisher.Close(); err != nil {
			return err
		}
		b.Logger.Info("Successfully closing event publisher")
	}

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		b.Logger.Info("Successfully closing RabbitMQ")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		b.Logger.Info("Successfully closing Redis")
	}

	if err := b.MongoDB.Disconnect(ctx); err != nil {
		return err
	}
	b.Logger.Info("Successfully closing MongoDB")

	b.Logger.Sync()
	return nil
}
