package exceptions

import (
	"clinic-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := map[string]error{
		constvars.ErrCodeNotFound:      ErrPatientNotExist(nil, "abc"),
		constvars.ErrCodeConflict:      ErrAppointmentAlreadyExist(nil, "abc", "2024-05-01"),
		constvars.ErrCodeValidation:    ErrInvalidPhone(nil),
		constvars.ErrCodeUpstreamError: ErrPhoneValidatorStatus(nil, 500),
		constvars.ErrCodeInternal:      ErrMongoDBFindDocument(errors.New("socket closed")),
		constvars.ErrCodeConfig:        ErrMissingConfig([]string{"MONGO_URL"}),
	}
	for want, err := range cases {
		assert.Equal(t, want, KindOf(err), err.Error())
	}

	assert.Equal(t, constvars.ErrCodeInternal, KindOf(errors.New("plain")))
	assert.Equal(t, constvars.ErrCodeNotFound, KindOf(fmt.Errorf("wrapped: %w", ErrPatientNotExist(nil, "abc"))))
}

func TestBuildNewCustomError(t *testing.T) {
	cause := errors.New("connection reset")
	err := ErrMongoDBInsertDocument(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.DevMessage, "connection reset")
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, err.ClientMessage)
	if assert.NotNil(t, err.Location) {
		assert.Contains(t, err.Location.FunctionName, "TestBuildNewCustomError")
	}
}

func TestErrMissingConfig(t *testing.T) {
	err := ErrMissingConfig([]string{"MONGO_URL", "PHONE_VALIDATOR_API_KEY"})
	assert.Contains(t, err.DevMessage, "MONGO_URL, PHONE_VALIDATOR_API_KEY")
}
