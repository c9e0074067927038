package phonevalidator

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(baseUrl string, maxRetries int) *phoneValidatorService {
	internalConfig := &config.InternalConfig{
		PhoneValidator: config.PhoneValidator{
			BaseUrl:          baseUrl,
			ApiKey:           "test-api-key",
			TimeoutInSeconds: 2,
			MaxRetries:       maxRetries,
		},
	}
	service := NewPhoneValidatorService(internalConfig, zap.NewNop()).(*phoneValidatorService)
	service.NewBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return service
}

func TestValidatePhone(t *testing.T) {
	t.Run("Valid Phone", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.PhoneValidatorPath, r.URL.Path)
			assert.Equal(t, "+34600000000", r.URL.Query().Get(constvars.PhoneValidatorQueryParamNumber))
			assert.Equal(t, "test-api-key", r.Header.Get(constvars.HeaderXApiKey))
			w.Write([]byte(`{"is_valid": true, "country": "Spain", "format_e164": "+34600000000"}`))
		}))
		defer server.Close()

		result, err := newTestService(server.URL, 0).ValidatePhone(context.Background(), "+34600000000")
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, "Spain", result.Country)
	})

	t.Run("Invalid Phone Is Not An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"is_valid": false}`))
		}))
		defer server.Close()

		result, err := newTestService(server.URL, 0).ValidatePhone(context.Background(), "123")
		require.NoError(t, err)
		assert.False(t, result.IsValid)
	})

	t.Run("Non Success Status Is Upstream Error", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		_, err := newTestService(server.URL, 3).ValidatePhone(context.Background(), "123")
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeUpstreamError, exceptions.KindOf(err))
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "client errors must not be retried")
	})

	t.Run("No Retry By Default", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newTestService(server.URL, 0).ValidatePhone(context.Background(), "123")
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeUpstreamError, exceptions.KindOf(err))
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("Retries Server Errors", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(`{"is_valid": true, "country": "Mexico"}`))
		}))
		defer server.Close()

		result, err := newTestService(server.URL, 2).ValidatePhone(context.Background(), "+5215512345678")
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("Malformed Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		_, err := newTestService(server.URL, 0).ValidatePhone(context.Background(), "123")
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeUpstreamError, exceptions.KindOf(err))
	})

	t.Run("Unreachable Service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseUrl := server.URL
		server.Close()

		_, err := newTestService(baseUrl, 0).ValidatePhone(context.Background(), "123")
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeUpstreamError, exceptions.KindOf(err))
	})
}
