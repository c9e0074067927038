package eventpublisher

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// confirmation is the broker acknowledgement of one published message.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type publishFunc func(ctx context.Context, exchange, routingKey string, msg amqp.Publishing) (confirmation, error)

type rabbitMQPublisher struct {
	publish  publishFunc
	close    func() error
	exchange string
	Log      *zap.Logger
}

// NewRabbitMQPublisher declares the durable topic exchange and enables
// publisher confirms on a dedicated channel.
func NewRabbitMQPublisher(conn *amqp.Connection, logger *zap.Logger) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		constvars.EventExchangeName,
		constvars.EventExchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, err
	}

	logger.Info("Declared event exchange", zap.String("exchange", constvars.EventExchangeName))

	publish := func(ctx context.Context, exchange, routingKey string, msg amqp.Publishing) (confirmation, error) {
		deferred, err := ch.PublishWithDeferredConfirmWithContext(ctx, exchange, routingKey, false, false, msg)
		if err != nil {
			return nil, err
		}
		return deferred, nil
	}

	return newRabbitMQPublisher(publish, ch.Close, constvars.EventExchangeName, logger), nil
}

func newRabbitMQPublisher(publish publishFunc, closeChannel func() error, exchange string, logger *zap.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		publish:  publish,
		close:    closeChannel,
		exchange: exchange,
		Log:      logger,
	}
}

// Publish waits for the confirmation of this message only; a confirmation
// that arrives after ctx is done is discarded by the channel.
func (p *rabbitMQPublisher) Publish(ctx context.Context, routingKey string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    uuid.NewString(),
	}

	confirmed, err := p.publish(ctx, p.exchange, routingKey, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.exchange, routingKey)
	}

	acked, err := confirmed.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.exchange, routingKey)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), p.exchange, routingKey)
	}

	p.Log.Debug("rabbitMQPublisher.Publish event published",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRoutingKey, routingKey),
		zap.String(constvars.LoggingMessageIDKey, msg.MessageId),
	)
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.close()
}

type noopPublisher struct {
	Log *zap.Logger
}

func NewNoopPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &noopPublisher{Log: logger}
}

func (p *noopPublisher) Publish(ctx context.Context, routingKey string, event interface{}) error {
	p.Log.Debug("noopPublisher.Publish skipping event",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRoutingKey, routingKey),
	)
	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublishAndLog publishes after a mutation has been committed. A failure is
// logged and never returned: the mutation is not rolled back.
func PublishAndLog(ctx context.Context, publisher contracts.EventPublisher, logger *zap.Logger, routingKey string, event interface{}) {
	err := publisher.Publish(ctx, routingKey, event)
	if err != nil {
		logger.Warn("failed to publish domain event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRoutingKey, routingKey),
			zap.Error(err),
		)
	}
}
