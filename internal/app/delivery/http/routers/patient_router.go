package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Post("/", patientController.CreatePatient)
	router.Get("/{patient_id}", patientController.FindByID)
	router.Patch("/{patient_id}", patientController.UpdatePatient)
}
