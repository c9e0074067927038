// Package testutil holds in-memory implementations of the repository and
// service contracts for usecase and transport tests.
package testutil

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/utils"
	"context"
	"regexp"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PatientRepository struct {
	mu       sync.Mutex
	patients []models.Patient
	Err      error
}

func NewPatientRepository(seed ...models.Patient) *PatientRepository {
	return &PatientRepository{patients: seed}
}

func (r *PatientRepository) FindByID(ctx context.Context, patientID primitive.ObjectID) (*models.Patient, error) {
	return r.find(func(p models.Patient) bool { return p.ID == patientID })
}

func (r *PatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	return r.find(func(p models.Patient) bool { return p.Correo == email })
}

func (r *PatientRepository) FindByEmailExcludingID(ctx context.Context, email string, excludedID primitive.ObjectID) (*models.Patient, error) {
	return r.find(func(p models.Patient) bool { return p.Correo == email && p.ID != excludedID })
}

func (r *PatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return primitive.NilObjectID, r.Err
	}
	stored := *patient
	stored.ID = primitive.NewObjectID()
	r.patients = append(r.patients, stored)
	return stored.ID, nil
}

func (r *PatientRepository) UpdatePatient(ctx context.Context, patientID primitive.ObjectID, update *models.PatientUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i := range r.patients {
		if r.patients[i].ID == patientID {
			applyUpdate(&r.patients[i], update)
		}
	}
	return nil
}

func applyUpdate(patient *models.Patient, update *models.PatientUpdate) {
	if update.Nombre != nil {
		patient.Nombre = *update.Nombre
	}
	if update.Telefono != nil {
		patient.Telefono = *update.Telefono
	}
	if update.Correo != nil {
		patient.Correo = *update.Correo
	}
}

// Delete removes a patient directly, to simulate a dangling reference.
func (r *PatientRepository) Delete(patientID primitive.ObjectID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.patients {
		if r.patients[i].ID == patientID {
			r.patients = append(r.patients[:i], r.patients[i+1:]...)
			return
		}
	}
}

func (r *PatientRepository) All() []models.Patient {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Patient(nil), r.patients...)
}

func (r *PatientRepository) find(match func(models.Patient) bool) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, p := range r.patients {
		if match(p) {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

type AppointmentRepository struct {
	mu           sync.Mutex
	appointments []models.Appointment
	Err          error
}

func NewAppointmentRepository(seed ...models.Appointment) *AppointmentRepository {
	return &AppointmentRepository{appointments: seed}
}

func (r *AppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return append(make([]models.Appointment, 0, len(r.appointments)), r.appointments...), nil
}

func (r *AppointmentRepository) FindByPatientAndDay(ctx context.Context, patientID primitive.ObjectID, day string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	// Same pattern as the Mongo filter, so stored values are matched verbatim.
	sameDay := regexp.MustCompile(utils.DayPattern(day))
	for _, a := range r.appointments {
		if a.PatientID == patientID && sameDay.MatchString(a.Fecha) {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r *AppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return primitive.NilObjectID, r.Err
	}
	stored := *appointment
	stored.ID = primitive.NewObjectID()
	r.appointments = append(r.appointments, stored)
	return stored.ID, nil
}

func (r *AppointmentRepository) DeleteByID(ctx context.Context, appointmentID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	for i := range r.appointments {
		if r.appointments[i].ID == appointmentID {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *AppointmentRepository) All() []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Appointment(nil), r.appointments...)
}

// PhoneValidator reports every phone as valid unless listed in Invalid.
type PhoneValidator struct {
	mu      sync.Mutex
	Invalid map[string]bool
	Err     error
	Calls   []string
}

func NewPhoneValidator() *PhoneValidator {
	return &PhoneValidator{Invalid: map[string]bool{}}
}

func (v *PhoneValidator) ValidatePhone(ctx context.Context, phone string) (*responses.PhoneValidation, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Calls = append(v.Calls, phone)
	if v.Err != nil {
		return nil, v.Err
	}
	return &responses.PhoneValidation{IsValid: !v.Invalid[phone], Country: "Spain"}, nil
}

func (v *PhoneValidator) CallCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.Calls)
}

// Locker grants every lock except the keys listed in Held.
type Locker struct {
	mu       sync.Mutex
	Held     map[string]bool
	Acquired []string
}

func NewLocker() *Locker {
	return &Locker{Held: map[string]bool{}}
}

func (l *Locker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Held[key] {
		return false, "", nil
	}
	l.Acquired = append(l.Acquired, key)
	return true, key, nil
}

func (l *Locker) Unlock(ctx context.Context, key, lockValue string) error {
	return nil
}

type PublishedEvent struct {
	RoutingKey string
	Event      interface{}
}

type EventPublisher struct {
	mu     sync.Mutex
	Events []PublishedEvent
	Err    error
}

func (p *EventPublisher) Publish(ctx context.Context, routingKey string, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, PublishedEvent{RoutingKey: routingKey, Event: event})
	return nil
}

func (p *EventPublisher) Close() error {
	return nil
}

func (p *EventPublisher) RoutingKeys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, len(p.Events))
	for i, e := range p.Events {
		keys[i] = e.RoutingKey
	}
	return keys
}
