package messaging

import (
	"clinic-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NewRabbitMQ returns nil when no URL is configured; domain events are then
// dropped.
func NewRabbitMQ(driverConfig *config.DriverConfig, log *zap.Logger) *amqp091.Connection {
	if driverConfig.RabbitMQ.URL == "" {
		log.Warn("RabbitMQ URL not configured, domain events will not be published")
		return nil
	}

	conn, err := amqp091.Dial(driverConfig.RabbitMQ.URL)
	if err != nil {
		log.Fatal("Failed to connect to rabbitMQ", zap.Error(err))
	}
	log.Info("Successfully connected to rabbitMQ")
	return conn
}
