package main

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/appointments"
	"clinic-service/internal/app/services/core/patients"
	"context"
	"flag"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
)

var appointmentTypes = []string{
	"checkup",
	"followup",
	"vaccination",
	"laboratory",
	"consultation",
}

func main() {
	patientCount := flag.Int("patients", 50, "number of patients to insert")
	appointmentsPerPatient := flag.Int("appointments", 2, "appointments to insert per patient")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	if driverConfig.MongoDB.URL == "" {
		log.Fatal("MONGO_URL is required")
	}

	mongoDB := database.NewMongoDB(driverConfig, log)
	defer mongoDB.Disconnect(context.Background())

	patientRepository := patients.NewPatientMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(mongoDB, driverConfig.MongoDB.DbName)

	gofakeit.Seed(time.Now().UnixNano())

	ctx := context.Background()
	seeded, err := seedPatients(ctx, patientRepository, *patientCount)
	if err != nil {
		log.Fatal("seed patients", zap.Error(err))
	}
	log.Info("patients seeded", zap.Int("count", len(seeded)))

	count, err := seedAppointments(ctx, appointmentRepository, seeded, *appointmentsPerPatient)
	if err != nil {
		log.Fatal("seed appointments", zap.Error(err))
	}
	log.Info("appointments seeded", zap.Int("count", count))
}

// seedPatients skips generated emails that are already registered.
func seedPatients(ctx context.Context, repo contracts.PatientRepository, count int) ([]models.Patient, error) {
	seeded := make([]models.Patient, 0, count)
	for len(seeded) < count {
		patient := models.Patient{
			Nombre:   gofakeit.Name(),
			Telefono: gofakeit.Phone(),
			Correo:   gofakeit.Email(),
		}

		existing, err := repo.FindByEmail(ctx, patient.Correo)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}

		patient.ID, err = repo.CreatePatient(ctx, &patient)
		if err != nil {
			return nil, err
		}
		seeded = append(seeded, patient)
	}
	return seeded, nil
}

// seedAppointments gives each patient appointments on distinct days.
func seedAppointments(ctx context.Context, repo contracts.AppointmentRepository, seeded []models.Patient, perPatient int) (int, error) {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	count := 0
	for _, patient := range seeded {
		offset := gofakeit.Number(1, 30)
		for i := 0; i < perPatient; i++ {
			day := start.AddDate(0, 0, offset+i*gofakeit.Number(1, 7))
			fecha := day.Add(time.Duration(gofakeit.Number(8, 17)) * time.Hour).Format(time.RFC3339)

			existing, err := repo.FindByPatientAndDay(ctx, patient.ID, day.Format("2006-01-02"))
			if err != nil {
				return count, err
			}
			if existing != nil {
				continue
			}

			_, err = repo.CreateAppointment(ctx, &models.Appointment{
				PatientID: patient.ID,
				Fecha:     fecha,
				Tipo:      appointmentTypes[gofakeit.Number(0, len(appointmentTypes)-1)],
			})
			if err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
