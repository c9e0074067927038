package patients

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
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository     contracts.PatientRepository
	PhoneValidatorService contracts.PhoneValidatorService
	LockerService         contracts.LockerService
	EventPublisher        contracts.EventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	phoneValidatorService contracts.PhoneValidatorService,
	lockerService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository:     patientRepository,
		PhoneValidatorService: phoneValidatorService,
		LockerService:         lockerService,
		EventPublisher:        eventPublisher,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrInvalidObjectID(err, patientID)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, objectID)
	if err != nil {
		uc.Log.Error("patientUsecase.FindByID error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil, patientID)
	}

	uc.Log.Info("patientUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return utils.BuildPatientResponse(patient), nil
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Info("patientUsecase.CreatePatient request rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	patient := &models.Patient{
		Nombre:   request.Nombre,
		Telefono: request.Telefono,
		Correo:   request.Correo,
	}

	lockKey := fmt.Sprintf(constvars.LockKeyPatientEmailFormat, patient.Correo)
	err := locker.Run(ctx, uc.LockerService, uc.Log, lockKey, uc.lockTTL(), func(ctx context.Context) error {
		existing, err := uc.PatientRepository.FindByEmail(ctx, patient.Correo)
		if err != nil {
			return err
		}
		if existing != nil {
			return exceptions.ErrEmailAlreadyRegistered(nil, patient.Correo)
		}

		if err := uc.validatePhone(ctx, patient.Telefono); err != nil {
			return err
		}

		patient.ID, err = uc.PatientRepository.CreatePatient(ctx, patient)
		return err
	})
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, exceptions.KindOf(err)),
			zap.Error(err),
		)
		return nil, err
	}

	eventpublisher.PublishAndLog(ctx, uc.EventPublisher, uc.Log, constvars.EventPatientCreated, models.PatientEvent{
		BaseEvent: models.NewBaseEvent(constvars.EventPatientCreated),
		Data:      buildPatientEventData(patient, nil),
	})

	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID.Hex()),
	)
	return utils.BuildPatientResponse(patient), nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.ID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patientID, err := primitive.ObjectIDFromHex(request.ID)
	if err != nil {
		return nil, exceptions.ErrInvalidObjectID(err, request.ID)
	}

	update := &models.PatientUpdate{
		Nombre:   suppliedValue(request.Nombre),
		Telefono: suppliedValue(request.Telefono),
		Correo:   suppliedValue(request.Correo),
	}

	existing, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrPatientNotExist(nil, request.ID)
	}

	emailChanged := update.Correo != nil && *update.Correo != existing.Correo
	lockKey := ""
	if emailChanged {
		lockKey = fmt.Sprintf(constvars.LockKeyPatientEmailFormat, *update.Correo)
	}

	var updated *models.Patient
	err = locker.Run(ctx, uc.LockerService, uc.Log, lockKey, uc.lockTTL(), func(ctx context.Context) error {
		if emailChanged {
			owner, err := uc.PatientRepository.FindByEmailExcludingID(ctx, *update.Correo, patientID)
			if err != nil {
				return err
			}
			if owner != nil {
				return exceptions.ErrEmailAlreadyRegistered(nil, *update.Correo)
			}
		}

		if update.Telefono != nil {
			if err := uc.validatePhone(ctx, *update.Telefono); err != nil {
				return err
			}
		}

		if err := uc.PatientRepository.UpdatePatient(ctx, patientID, update); err != nil {
			return err
		}

		updated, err = uc.PatientRepository.FindByID(ctx, patientID)
		if err != nil {
			return err
		}
		if updated == nil {
			return exceptions.ErrPatientNotExist(nil, request.ID)
		}
		return nil
	})
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatient failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, exceptions.KindOf(err)),
			zap.Error(err),
		)
		return nil, err
	}

	updatedFields := updatedFieldNames(update)
	if len(updatedFields) > 0 {
		eventpublisher.PublishAndLog(ctx, uc.EventPublisher, uc.Log, constvars.EventPatientUpdated, models.PatientEvent{
			BaseEvent: models.NewBaseEvent(constvars.EventPatientUpdated),
			Data:      buildPatientEventData(updated, updatedFields),
		})
	}

	uc.Log.Info("patientUsecase.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.ID),
		zap.Strings(constvars.LoggingUpdatedFieldsKey, updatedFields),
	)
	return utils.BuildPatientResponse(updated), nil
}

func (uc *patientUsecase) validatePhone(ctx context.Context, phone string) error {
	result, err := uc.PhoneValidatorService.ValidatePhone(ctx, phone)
	if err != nil {
		return err
	}
	if !result.IsValid {
		return exceptions.ErrInvalidPhone(nil)
	}
	return nil
}

func (uc *patientUsecase) lockTTL() time.Duration {
	return time.Duration(uc.InternalConfig.App.LockTTLInSeconds) * time.Second
}

// suppliedValue treats blank strings as absent.
func suppliedValue(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	return value
}

func updatedFieldNames(update *models.PatientUpdate) []string {
	fields := make([]string, 0, 3)
	for name := range update.ConvertToBsonM() {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

func buildPatientEventData(patient *models.Patient, updatedFields []string) models.PatientEventData {
	return models.PatientEventData{
		PatientID:     patient.ID.Hex(),
		Nombre:        patient.Nombre,
		Telefono:      patient.Telefono,
		Correo:        patient.Correo,
		UpdatedFields: updatedFields,
	}
}
