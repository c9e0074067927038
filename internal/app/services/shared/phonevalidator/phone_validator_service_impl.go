package phonevalidator

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type phoneValidatorService struct {
	HttpClient *http.Client
	BaseUrl    string
	ApiKey     string
	MaxRetries int
	NewBackOff func() backoff.BackOff
	Log        *zap.Logger
}

func NewPhoneValidatorService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PhoneValidatorService {
	return &phoneValidatorService{
		HttpClient: &http.Client{
			Timeout: time.Duration(internalConfig.PhoneValidator.TimeoutInSeconds) * time.Second,
		},
		BaseUrl:    strings.TrimRight(internalConfig.PhoneValidator.BaseUrl, "/"),
		ApiKey:     internalConfig.PhoneValidator.ApiKey,
		MaxRetries: internalConfig.PhoneValidator.MaxRetries,
		NewBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
		Log:        logger,
	}
}

func (s *phoneValidatorService) ValidatePhone(ctx context.Context, phone string) (*responses.PhoneValidation, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("phoneValidatorService.ValidatePhone called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	query.Set(constvars.PhoneValidatorQueryParamNumber, phone)
	endpoint := s.BaseUrl + constvars.PhoneValidatorPath + "?" + query.Encode()

	var result *responses.PhoneValidation
	attempt := 0
	operation := func() error {
		attempt++
		res, err := s.doRequest(ctx, endpoint)
		if err != nil {
			s.Log.Warn("phoneValidatorService.ValidatePhone attempt failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingAttemptKey, attempt),
				zap.Error(err),
			)
			return err
		}
		result = res
		return nil
	}

	policy := backoff.WithMaxRetries(s.NewBackOff(), uint64(max(s.MaxRetries, 0)))

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		var customErr *exceptions.CustomError
		if !errors.As(err, &customErr) {
			err = exceptions.ErrSendHTTPRequest(err)
		}
		s.Log.Error("phoneValidatorService.ValidatePhone failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Error(err),
		)
		return nil, err
	}

	s.Log.Info("phoneValidatorService.ValidatePhone succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingPhoneValidKey, result.IsValid),
		zap.String(constvars.LoggingPhoneCountryKey, result.Country),
	)
	return result, nil
}

// doRequest performs one lookup. Errors worth retrying are returned as is,
// everything else is wrapped in backoff.Permanent.
func (s *phoneValidatorService) doRequest(ctx context.Context, endpoint string) (*responses.PhoneValidation, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(exceptions.ErrCreateHTTPRequest(err))
	}
	req.Header.Set(constvars.HeaderXApiKey, s.ApiKey)

	res, err := s.HttpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(exceptions.ErrSendHTTPRequest(err))
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer res.Body.Close()

	if res.StatusCode != constvars.StatusOK {
		statusErr := exceptions.ErrPhoneValidatorStatus(nil, res.StatusCode)
		if isRetriableStatus(res.StatusCode) {
			return nil, statusErr
		}
		return nil, backoff.Permanent(statusErr)
	}

	var result responses.PhoneValidation
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, backoff.Permanent(exceptions.ErrPhoneValidatorDecode(err))
	}
	return &result, nil
}

func isRetriableStatus(statusCode int) bool {
	return statusCode == constvars.StatusTooManyRequests || statusCode >= constvars.StatusInternalServerError
}
