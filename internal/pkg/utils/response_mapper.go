package utils

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/responses"
)

func BuildPatientResponse(patient *models.Patient) *responses.Patient {
	return &responses.Patient{
		ID:       patient.ID.Hex(),
		Nombre:   patient.Nombre,
		Telefono: patient.Telefono,
		Correo:   patient.Correo,
	}
}

// BuildAppointmentResponse expects a view whose patient has already been
// resolved.
func BuildAppointmentResponse(view models.AppointmentView, patient *models.Patient) *responses.Appointment {
	return &responses.Appointment{
		ID:       view.ID.Hex(),
		Fecha:    view.Fecha,
		Tipo:     view.Tipo,
		Paciente: *BuildPatientResponse(patient),
	}
}
