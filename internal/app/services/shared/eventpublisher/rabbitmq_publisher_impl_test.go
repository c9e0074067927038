package eventpublisher

import (
	"clinic-service/internal/pkg/constvars"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type failingPublisher struct{}

func (failingPublisher) Publish(ctx context.Context, routingKey string, event interface{}) error {
	return errors.New("channel closed")
}

func (failingPublisher) Close() error {
	return nil
}

func TestPublishAndLog(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	assert.NotPanics(t, func() {
		PublishAndLog(context.Background(), failingPublisher{}, zap.New(core), constvars.EventPatientCreated, struct{}{})
	})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, constvars.EventPatientCreated, entries[0].ContextMap()[constvars.LoggingRoutingKey])
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(zap.NewNop())
	assert.NoError(t, publisher.Publish(context.Background(), constvars.EventAppointmentDeleted, struct{}{}))
	assert.NoError(t, publisher.Close())
}

// pendingConfirmation resolves when the broker answers for one message.
type pendingConfirmation struct {
	answer chan bool
}

func newPendingConfirmation() *pendingConfirmation {
	return &pendingConfirmation{answer: make(chan bool, 1)}
}

func (c *pendingConfirmation) WaitContext(ctx context.Context) (bool, error) {
	select {
	case acked := <-c.answer:
		return acked, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

type fakeChannel struct {
	mu            sync.Mutex
	published     []amqp.Publishing
	confirmations []*pendingConfirmation
	err           error
}

func (f *fakeChannel) publish(ctx context.Context, exchange, routingKey string, msg amqp.Publishing) (confirmation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	confirmation := newPendingConfirmation()
	f.published = append(f.published, msg)
	f.confirmations = append(f.confirmations, confirmation)
	return confirmation, nil
}

func (f *fakeChannel) confirmation(i int) *pendingConfirmation {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i >= len(f.confirmations) {
		return nil
	}
	return f.confirmations[i]
}

func TestRabbitMQPublisher(t *testing.T) {
	t.Run("Acked Message Is Published", func(t *testing.T) {
		channel := &fakeChannel{}
		publisher := newRabbitMQPublisher(func(ctx context.Context, exchange, routingKey string, msg amqp.Publishing) (confirmation, error) {
			confirmation, err := channel.publish(ctx, exchange, routingKey, msg)
			confirmation.(*pendingConfirmation).answer <- true
			return confirmation, err
		}, func() error { return nil }, constvars.EventExchangeName, zap.NewNop())

		require.NoError(t, publisher.Publish(context.Background(), constvars.EventPatientCreated, map[string]string{"id": "1"}))
		require.Len(t, channel.published, 1)
		assert.Equal(t, amqp.Persistent, channel.published[0].DeliveryMode)
		assert.Equal(t, constvars.MIMEApplicationJSON, channel.published[0].ContentType)
		assert.NotEmpty(t, channel.published[0].MessageId)
		assert.JSONEq(t, `{"id":"1"}`, string(channel.published[0].Body))
	})

	t.Run("Nack Is Error", func(t *testing.T) {
		channel := &fakeChannel{}
		publisher := newRabbitMQPublisher(func(ctx context.Context, exchange, routingKey string, msg amqp.Publishing) (confirmation, error) {
			confirmation, err := channel.publish(ctx, exchange, routingKey, msg)
			confirmation.(*pendingConfirmation).answer <- false
			return confirmation, err
		}, func() error { return nil }, constvars.EventExchangeName, zap.NewNop())

		assert.Error(t, publisher.Publish(context.Background(), constvars.EventPatientCreated, struct{}{}))
	})

	t.Run("Late Confirmation Is Not Taken By The Next Message", func(t *testing.T) {
		channel := &fakeChannel{}
		publisher := newRabbitMQPublisher(channel.publish, func() error { return nil }, constvars.EventExchangeName, zap.NewNop())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := publisher.Publish(ctx, constvars.EventPatientCreated, struct{}{})
		require.Error(t, err)

		// The broker acks the first message after its caller gave up.
		channel.confirmation(0).answer <- true

		done := make(chan error, 1)
		go func() {
			done <- publisher.Publish(context.Background(), constvars.EventPatientUpdated, struct{}{})
		}()

		select {
		case err := <-done:
			t.Fatalf("second publish returned before its own confirmation: %v", err)
		case <-time.After(20 * time.Millisecond):
		}

		require.Eventually(t, func() bool { return channel.confirmation(1) != nil }, time.Second, time.Millisecond)
		channel.confirmation(1).answer <- false
		assert.Error(t, <-done)
	})

	t.Run("Publish Error Is Returned", func(t *testing.T) {
		channel := &fakeChannel{err: amqp.ErrClosed}
		publisher := newRabbitMQPublisher(channel.publish, func() error { return nil }, constvars.EventExchangeName, zap.NewNop())

		err := publisher.Publish(context.Background(), constvars.EventPatientCreated, struct{}{})
		assert.ErrorIs(t, err, amqp.ErrClosed)
	})
}
