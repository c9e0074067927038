package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is the stored shape: only the patient reference is persisted.
type Appointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PatientID primitive.ObjectID `bson:"paciente"`
	Fecha     string             `bson:"fecha"`
	Tipo      string             `bson:"tipo"`
}

// PatientReference is either Unresolved (only the id is known) or Resolved
// (the full patient record is attached). The constructor decides which.
type PatientReference struct {
	id      primitive.ObjectID
	patient *Patient
}

func UnresolvedPatient(id primitive.ObjectID) PatientReference {
	return PatientReference{id: id}
}

func ResolvedPatient(patient *Patient) PatientReference {
	return PatientReference{id: patient.ID, patient: patient}
}

func (r PatientReference) ID() primitive.ObjectID {
	return r.id
}

func (r PatientReference) Resolved() (*Patient, bool) {
	return r.patient, r.patient != nil
}

// AppointmentView is the read-time projection of an appointment.
type AppointmentView struct {
	ID      primitive.ObjectID
	Fecha   string
	Tipo    string
	Patient PatientReference
}

func (a *Appointment) View() AppointmentView {
	return AppointmentView{
		ID:      a.ID,
		Fecha:   a.Fecha,
		Tipo:    a.Tipo,
		Patient: UnresolvedPatient(a.PatientID),
	}
}
