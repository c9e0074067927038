package models

import (
	"clinic-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		ServiceName: constvars.EventServiceName,
	}
}

type PatientEvent struct {
	BaseEvent
	Data PatientEventData `json:"data"`
}

type PatientEventData struct {
	PatientID     string   `json:"patient_id"`
	Nombre        string   `json:"nombre"`
	Telefono      string   `json:"telefono"`
	Correo        string   `json:"correo"`
	UpdatedFields []string `json:"updated_fields,omitempty"`
}

type AppointmentEvent struct {
	BaseEvent
	Data AppointmentEventData `json:"data"`
}

type AppointmentEventData struct {
	AppointmentID string `json:"appointment_id"`
	PatientID     string `json:"patient_id,omitempty"`
	Fecha         string `json:"fecha,omitempty"`
	Tipo          string `json:"tipo,omitempty"`
}
