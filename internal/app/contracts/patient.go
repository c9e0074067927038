package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PatientUsecase interface {
	FindByID(ctx context.Context, patientID string) (*responses.Patient, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.Patient, error)
}

// PatientRepository finders return (nil, nil) when no document matches.
type PatientRepository interface {
	FindByID(ctx context.Context, patientID primitive.ObjectID) (*models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	FindByEmailExcludingID(ctx context.Context, email string, excludedID primitive.ObjectID) (*models.Patient, error)
	CreatePatient(ctx context.Context, patient *models.Patient) (primitive.ObjectID, error)
	UpdatePatient(ctx context.Context, patientID primitive.ObjectID, update *models.PatientUpdate) error
}
