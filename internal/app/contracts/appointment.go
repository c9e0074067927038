package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentUsecase interface {
	FindAll(ctx context.Context) ([]responses.Appointment, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) (bool, error)
}

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]models.Appointment, error)
	// FindByPatientAndDay matches appointments whose fecha falls on day
	// (YYYY-MM-DD), regardless of any time-of-day suffix.
	FindByPatientAndDay(ctx context.Context, patientID primitive.ObjectID, day string) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (primitive.ObjectID, error)
	DeleteByID(ctx context.Context, appointmentID primitive.ObjectID) (deletedCount int64, err error)
}
