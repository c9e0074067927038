package contracts

import (
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type PhoneValidatorService interface {
	ValidatePhone(ctx context.Context, phone string) (*responses.PhoneValidation, error)
}
