package appointments

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/shared/eventpublisher"
	"clinic-service/internal/app/services/shared/locker"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	LockerService         contracts.LockerService
	EventPublisher        contracts.EventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
		LockerService:         lockerService,
		EventPublisher:        eventPublisher,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Appointment, len(appointments))
	for i := range appointments {
		view := appointments[i].View()
		patient, err := uc.resolvePatient(ctx, view)
		if err != nil {
			uc.Log.Error("appointmentUsecase.FindAll error resolving patient",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, view.ID.Hex()),
				zap.Error(err),
			)
			return nil, err
		}
		response[i] = *utils.BuildAppointmentResponse(view, patient)
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCount, len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patientID, err := primitive.ObjectIDFromHex(request.PatientID)
	if err != nil {
		return nil, exceptions.ErrInvalidObjectID(err, request.PatientID)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil, request.PatientID)
	}

	fecha := strings.TrimSpace(request.Fecha)
	day := utils.DayOf(fecha)
	appointment := &models.Appointment{
		PatientID: patientID,
		Fecha:     fecha,
		Tipo:      request.Tipo,
	}

	lockKey := fmt.Sprintf(constvars.LockKeyAppointmentFormat, request.PatientID, day)
	lockTTL := time.Duration(uc.InternalConfig.App.LockTTLInSeconds) * time.Second
	err = locker.Run(ctx, uc.LockerService, uc.Log, lockKey, lockTTL, func(ctx context.Context) error {
		existing, err := uc.AppointmentRepository.FindByPatientAndDay(ctx, patientID, day)
		if err != nil {
			return err
		}
		if existing != nil {
			return exceptions.ErrAppointmentAlreadyExist(nil, request.PatientID, day)
		}

		appointment.ID, err = uc.AppointmentRepository.CreateAppointment(ctx, appointment)
		return err
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentDayKey, day),
			zap.String(constvars.LoggingErrorTypeKey, exceptions.KindOf(err)),
			zap.Error(err),
		)
		return nil, err
	}

	eventpublisher.PublishAndLog(ctx, uc.EventPublisher, uc.Log, constvars.EventAppointmentCreated, models.AppointmentEvent{
		BaseEvent: models.NewBaseEvent(constvars.EventAppointmentCreated),
		Data: models.AppointmentEventData{
			AppointmentID: appointment.ID.Hex(),
			PatientID:     request.PatientID,
			Fecha:         appointment.Fecha,
			Tipo:          appointment.Tipo,
		},
	})

	view := appointment.View()
	view.Patient = models.ResolvedPatient(patient)

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
	)
	return utils.BuildAppointmentResponse(view, patient), nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) (bool, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		uc.Log.Info("appointmentUsecase.DeleteAppointment malformed id, nothing deleted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return false, nil
	}

	deletedCount, err := uc.AppointmentRepository.DeleteByID(ctx, objectID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.DeleteAppointment error deleting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, err
	}

	deleted := deletedCount == 1
	if deleted {
		eventpublisher.PublishAndLog(ctx, uc.EventPublisher, uc.Log, constvars.EventAppointmentDeleted, models.AppointmentEvent{
			BaseEvent: models.NewBaseEvent(constvars.EventAppointmentDeleted),
			Data:      models.AppointmentEventData{AppointmentID: appointmentID},
		})
	}

	uc.Log.Info("appointmentUsecase.DeleteAppointment completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, deleted),
	)
	return deleted, nil
}

// resolvePatient turns the view's patient reference into a full record.
// A reference to a missing patient is reported as NotFound.
func (uc *appointmentUsecase) resolvePatient(ctx context.Context, view models.AppointmentView) (*models.Patient, error) {
	if patient, ok := view.Patient.Resolved(); ok {
		return patient, nil
	}

	patientID := view.Patient.ID()
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDanglingPatientReference(nil, view.ID.Hex(), patientID.Hex())
	}
	return patient, nil
}
