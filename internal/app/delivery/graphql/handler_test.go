package graphql

import (
	"bytes"
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/appointments"
	"clinic-service/internal/app/services/core/patients"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/testutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type graphqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message    string                 `json:"message"`
		Extensions map[string]interface{} `json:"extensions"`
	} `json:"errors"`
}

type graphqlFixture struct {
	handler   *Handler
	patients  *testutil.PatientRepository
	validator *testutil.PhoneValidator
}

func newGraphqlFixture(seed ...models.Patient) *graphqlFixture {
	internalConfig := &config.InternalConfig{App: config.App{RequestTimeoutInSeconds: 5, LockTTLInSeconds: 5}}
	logger := zap.NewNop()
	f := &graphqlFixture{
		patients:  testutil.NewPatientRepository(seed...),
		validator: testutil.NewPhoneValidator(),
	}
	patientUsecase := patients.NewPatientUsecase(f.patients, f.validator, testutil.NewLocker(), &testutil.EventPublisher{}, internalConfig, logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(testutil.NewAppointmentRepository(), f.patients, testutil.NewLocker(), &testutil.EventPublisher{}, internalConfig, logger)
	f.handler = NewHandler(NewResolver(patientUsecase, appointmentUsecase, logger), internalConfig)
	return f
}

func (f *graphqlFixture) do(t *testing.T, query string, variables map[string]interface{}) graphqlResponse {
	body, err := json.Marshal(map[string]interface{}{"query": query, "variables": variables})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rr.Code)

	var response graphqlResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	return response
}

func TestGraphqlPatientFlow(t *testing.T) {
	f := newGraphqlFixture()

	created := f.do(t, `mutation($n: String!, $t: String!, $c: String!) {
		addPatient(nombre: $n, telefono: $t, correo: $c) { id nombre telefono correo }
	}`, map[string]interface{}{"n": "Ana", "t": "5551234", "c": "ana@x.com"})
	require.Empty(t, created.Errors)

	var patient struct {
		ID     string `json:"id"`
		Nombre string `json:"nombre"`
		Correo string `json:"correo"`
	}
	require.NoError(t, json.Unmarshal(created.Data["addPatient"], &patient))
	assert.True(t, primitive.IsValidObjectID(patient.ID))
	assert.Equal(t, "Ana", patient.Nombre)

	duplicate := f.do(t, `mutation {
		addPatient(nombre: "Otra", telefono: "999", correo: "ana@x.com") { id }
	}`, nil)
	require.Len(t, duplicate.Errors, 1)
	assert.Equal(t, constvars.ErrClientEmailAlreadyRegistered, duplicate.Errors[0].Message)
	assert.Equal(t, constvars.ErrCodeConflict, duplicate.Errors[0].Extensions["code"])

	appointment := f.do(t, `mutation($p: ID!) {
		addAppointment(paciente: $p, fecha: "2024-05-01", tipo: "checkup") { id fecha tipo paciente { id correo } }
	}`, map[string]interface{}{"p": patient.ID})
	require.Empty(t, appointment.Errors)

	listed := f.do(t, `{ getAppointments { id fecha paciente { nombre } } }`, nil)
	require.Empty(t, listed.Errors)
	var citas []struct {
		Fecha    string `json:"fecha"`
		Paciente struct {
			Nombre string `json:"nombre"`
		} `json:"paciente"`
	}
	require.NoError(t, json.Unmarshal(listed.Data["getAppointments"], &citas))
	require.Len(t, citas, 1)
	assert.Equal(t, "Ana", citas[0].Paciente.Nombre)

	updated := f.do(t, `mutation($id: ID!) { updatePatient(id: $id, nombre: "Ana María") { nombre correo } }`,
		map[string]interface{}{"id": patient.ID})
	require.Empty(t, updated.Errors)
	assert.JSONEq(t, `{"nombre":"Ana María","correo":"ana@x.com"}`, string(updated.Data["updatePatient"]))
}

func TestGraphqlErrorCodes(t *testing.T) {
	ana := models.Patient{ID: primitive.NewObjectID(), Nombre: "Ana", Telefono: "5551234", Correo: "ana@x.com"}
	f := newGraphqlFixture(ana)
	f.validator.Invalid["000"] = true

	t.Run("Not Found", func(t *testing.T) {
		response := f.do(t, `query($id: ID!) { getPacient(id: $id) { id } }`, map[string]interface{}{"id": primitive.NewObjectID().Hex()})
		require.Len(t, response.Errors, 1)
		assert.Equal(t, constvars.ErrCodeNotFound, response.Errors[0].Extensions["code"])
	})

	t.Run("Validation", func(t *testing.T) {
		response := f.do(t, `query { getPacient(id: "nope") { id } }`, nil)
		require.Len(t, response.Errors, 1)
		assert.Equal(t, constvars.ErrCodeValidation, response.Errors[0].Extensions["code"])
	})

	t.Run("Invalid Phone", func(t *testing.T) {
		response := f.do(t, `mutation($id: ID!) { updatePatient(id: $id, telefono: "000") { id } }`, map[string]interface{}{"id": ana.ID.Hex()})
		require.Len(t, response.Errors, 1)
		assert.Equal(t, constvars.ErrClientInvalidPhone, response.Errors[0].Message)
		assert.Equal(t, constvars.ErrCodeValidation, response.Errors[0].Extensions["code"])
	})

	t.Run("Delete Unknown Returns False", func(t *testing.T) {
		response := f.do(t, `mutation { deleteAppointment(id: "missing") }`, nil)
		require.Empty(t, response.Errors)
		assert.JSONEq(t, `false`, string(response.Data["deleteAppointment"]))
	})
}
