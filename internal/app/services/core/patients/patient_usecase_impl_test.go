package patients

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/testutil"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type patientUsecaseFixture struct {
	repo      *testutil.PatientRepository
	validator *testutil.PhoneValidator
	locker    *testutil.Locker
	publisher *testutil.EventPublisher
	usecase   *patientUsecase
}

func newPatientUsecaseFixture(seed ...models.Patient) *patientUsecaseFixture {
	f := &patientUsecaseFixture{
		repo:      testutil.NewPatientRepository(seed...),
		validator: testutil.NewPhoneValidator(),
		locker:    testutil.NewLocker(),
		publisher: &testutil.EventPublisher{},
	}
	internalConfig := &config.InternalConfig{App: config.App{LockTTLInSeconds: constvars.DefaultLockTTLInSeconds}}
	f.usecase = NewPatientUsecase(f.repo, f.validator, f.locker, f.publisher, internalConfig, zap.NewNop()).(*patientUsecase)
	return f
}

func strPtr(s string) *string {
	return &s
}

func TestCreatePatient(t *testing.T) {
	ctx := context.Background()

	t.Run("Succeeds With Valid Phone", func(t *testing.T) {
		f := newPatientUsecaseFixture()

		result, err := f.usecase.CreatePatient(ctx, &requests.CreatePatient{Nombre: "Ana", Telefono: "5551234", Correo: "ana@x.com"})
		require.NoError(t, err)
		assert.True(t, primitive.IsValidObjectID(result.ID))
		assert.Equal(t, "Ana", result.Nombre)
		assert.Equal(t, "5551234", result.Telefono)
		assert.Equal(t, "ana@x.com", result.Correo)
		assert.Len(t, f.repo.All(), 1)
		assert.Equal(t, []string{constvars.EventPatientCreated}, f.publisher.RoutingKeys())
		assert.Equal(t, []string{"lock:patients:email:ana@x.com"}, f.locker.Acquired)
	})

	t.Run("Duplicate Email Is Conflict Regardless Of Phone", func(t *testing.T) {
		f := newPatientUsecaseFixture()
		_, err := f.usecase.CreatePatient(ctx, &requests.CreatePatient{Nombre: "Ana", Telefono: "5551234", Correo: "ana@x.com"})
		require.NoError(t, err)

		f.validator.Invalid["bad-phone"] = true
		_, err = f.usecase.CreatePatient(ctx, &requests.CreatePatient{Nombre: "Otra", Telefono: "bad-phone", Correo: "ana@x.com"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeConflict, exceptions.KindOf(err))
		assert.Equal(t, 1, f.validator.CallCount(), "email check must run before the phone lookup")
		assert.Len(t, f.repo.All(), 1)
	})

	t.Run("Invalid Phone Is Validation Error", func(t *testing.T) {
		f := newPatientUsecaseFixture()
		f.validator.Invalid["000"] = true

		_, err := f.usecase.CreatePatient(ctx, &requests.CreatePatient{Nombre: "Ana", Telefono: "000", Correo: "ana@x.com"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeValidation, exceptions.KindOf(err))
		assert.Empty(t, f.repo.All())
		assert.Empty(t, f.publisher.Events)
	})

	t.Run("Validator Failure Is Upstream Error", func(t *testing.T) {
		f := newPatientUsecaseFixture()
		f.validator.Err = exceptions.ErrPhoneValidatorStatus(nil, 503)

		_, err := f.usecase.CreatePatient(ctx, &requests.CreatePatient{Nombre: "Ana", Telefono: "5551234", Correo: "ana@x.com"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeUpstreamError, exceptions.KindOf(err))
		assert.Empty(t, f.repo.All())
	})

	t.Run("Missing Field Is Validation Error", func(t *testing.T) {
		f := newPatientUsecaseFixture()

		_, err := f.usecase.CreatePatient(ctx, &requests.CreatePatient{Nombre: "Ana", Correo: "ana@x.com"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeValidation, exceptions.KindOf(err))
		assert.Zero(t, f.validator.CallCount())
	})

	t.Run("Held Lock Is Conflict", func(t *testing.T) {
		f := newPatientUsecaseFixture()
		f.locker.Held["lock:patients:email:ana@x.com"] = true

		_, err := f.usecase.CreatePatient(ctx, &requests.CreatePatient{Nombre: "Ana", Telefono: "5551234", Correo: "ana@x.com"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeConflict, exceptions.KindOf(err))
		assert.Empty(t, f.repo.All())
	})

	t.Run("Publish Failure Does Not Fail The Request", func(t *testing.T) {
		f := newPatientUsecaseFixture()
		f.publisher.Err = errors.New("broker down")

		_, err := f.usecase.CreatePatient(ctx, &requests.CreatePatient{Nombre: "Ana", Telefono: "5551234", Correo: "ana@x.com"})
		require.NoError(t, err)
		assert.Len(t, f.repo.All(), 1)
	})
}

func TestFindPatientByID(t *testing.T) {
	ctx := context.Background()
	ana := models.Patient{ID: primitive.NewObjectID(), Nombre: "Ana", Telefono: "5551234", Correo: "ana@x.com"}
	f := newPatientUsecaseFixture(ana)

	t.Run("Found", func(t *testing.T) {
		result, err := f.usecase.FindByID(ctx, ana.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, ana.ID.Hex(), result.ID)
		assert.Equal(t, "ana@x.com", result.Correo)
	})

	t.Run("Unknown Id Is Not Found", func(t *testing.T) {
		_, err := f.usecase.FindByID(ctx, primitive.NewObjectID().Hex())
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeNotFound, exceptions.KindOf(err))
	})

	t.Run("Malformed Id Is Validation Error", func(t *testing.T) {
		_, err := f.usecase.FindByID(ctx, "not-an-id")
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeValidation, exceptions.KindOf(err))
	})
}

func TestUpdatePatient(t *testing.T) {
	ctx := context.Background()
	newPatients := func() (models.Patient, models.Patient) {
		return models.Patient{ID: primitive.NewObjectID(), Nombre: "Ana", Telefono: "5551234", Correo: "ana@x.com"},
			models.Patient{ID: primitive.NewObjectID(), Nombre: "Luis", Telefono: "5559876", Correo: "luis@x.com"}
	}

	t.Run("Single Field Leaves Others Untouched", func(t *testing.T) {
		ana, luis := newPatients()
		f := newPatientUsecaseFixture(ana, luis)

		result, err := f.usecase.UpdatePatient(ctx, &requests.UpdatePatient{ID: ana.ID.Hex(), Nombre: strPtr("Ana María")})
		require.NoError(t, err)
		assert.Equal(t, "Ana María", result.Nombre)
		assert.Equal(t, ana.Telefono, result.Telefono)
		assert.Equal(t, ana.Correo, result.Correo)
		assert.Zero(t, f.validator.CallCount())
		assert.Empty(t, f.locker.Acquired, "unchanged email needs no lock")
		assert.Equal(t, []string{constvars.EventPatientUpdated}, f.publisher.RoutingKeys())
	})

	t.Run("Invalid Phone Leaves Record Unchanged", func(t *testing.T) {
		ana, luis := newPatients()
		f := newPatientUsecaseFixture(ana, luis)
		f.validator.Invalid["000"] = true

		_, err := f.usecase.UpdatePatient(ctx, &requests.UpdatePatient{ID: ana.ID.Hex(), Telefono: strPtr("000")})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeValidation, exceptions.KindOf(err))

		stored, err := f.repo.FindByID(ctx, ana.ID)
		require.NoError(t, err)
		assert.Equal(t, ana, *stored)
	})

	t.Run("Email Taken By Another Patient Is Conflict", func(t *testing.T) {
		ana, luis := newPatients()
		f := newPatientUsecaseFixture(ana, luis)

		_, err := f.usecase.UpdatePatient(ctx, &requests.UpdatePatient{ID: ana.ID.Hex(), Correo: strPtr(luis.Correo)})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeConflict, exceptions.KindOf(err))

		stored, _ := f.repo.FindByID(ctx, ana.ID)
		assert.Equal(t, ana.Correo, stored.Correo)
	})

	t.Run("Own Email Is Not A Conflict", func(t *testing.T) {
		ana, luis := newPatients()
		f := newPatientUsecaseFixture(ana, luis)

		result, err := f.usecase.UpdatePatient(ctx, &requests.UpdatePatient{ID: ana.ID.Hex(), Correo: strPtr(ana.Correo)})
		require.NoError(t, err)
		assert.Equal(t, ana.Correo, result.Correo)
	})

	t.Run("New Email Is Stored", func(t *testing.T) {
		ana, luis := newPatients()
		f := newPatientUsecaseFixture(ana, luis)

		result, err := f.usecase.UpdatePatient(ctx, &requests.UpdatePatient{ID: ana.ID.Hex(), Correo: strPtr("ana.maria@x.com")})
		require.NoError(t, err)
		assert.Equal(t, "ana.maria@x.com", result.Correo)
		assert.Equal(t, []string{"lock:patients:email:ana.maria@x.com"}, f.locker.Acquired)
	})

	t.Run("Empty Strings Count As Not Supplied", func(t *testing.T) {
		ana, luis := newPatients()
		f := newPatientUsecaseFixture(ana, luis)

		result, err := f.usecase.UpdatePatient(ctx, &requests.UpdatePatient{ID: ana.ID.Hex(), Nombre: strPtr(""), Telefono: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, ana.Nombre, result.Nombre)
		assert.Equal(t, ana.Telefono, result.Telefono)
		assert.Zero(t, f.validator.CallCount())
		assert.Empty(t, f.publisher.Events)
	})

	t.Run("Unknown Id Is Not Found", func(t *testing.T) {
		f := newPatientUsecaseFixture()

		_, err := f.usecase.UpdatePatient(ctx, &requests.UpdatePatient{ID: primitive.NewObjectID().Hex(), Nombre: strPtr("X")})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeNotFound, exceptions.KindOf(err))
	})

	t.Run("Malformed Id Is Validation Error", func(t *testing.T) {
		f := newPatientUsecaseFixture()

		_, err := f.usecase.UpdatePatient(ctx, &requests.UpdatePatient{ID: "xyz", Nombre: strPtr("X")})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeValidation, exceptions.KindOf(err))
	})
}

func TestEmailsStayUniqueAcrossOperations(t *testing.T) {
	ctx := context.Background()
	f := newPatientUsecaseFixture()

	emails := []string{"a@x.com", "b@x.com", "a@x.com", "c@x.com", "b@x.com"}
	var ids []string
	for _, email := range emails {
		result, err := f.usecase.CreatePatient(ctx, &requests.CreatePatient{Nombre: "P", Telefono: "5551234", Correo: email})
		if err == nil {
			ids = append(ids, result.ID)
		}
	}
	require.Len(t, ids, 3)

	for _, id := range ids {
		for _, email := range []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"} {
			f.usecase.UpdatePatient(ctx, &requests.UpdatePatient{ID: id, Correo: strPtr(email)})
		}
	}

	seen := map[string]bool{}
	for _, p := range f.repo.All() {
		assert.False(t, seen[p.Correo], "email %s stored twice", p.Correo)
		seen[p.Correo] = true
	}
}
