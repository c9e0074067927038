package graphql

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

type Resolver struct {
	PatientUsecase     contracts.PatientUsecase
	AppointmentUsecase contracts.AppointmentUsecase
	Log                *zap.Logger
}

func NewResolver(patientUsecase contracts.PatientUsecase, appointmentUsecase contracts.AppointmentUsecase, logger *zap.Logger) *Resolver {
	return &Resolver{
		PatientUsecase:     patientUsecase,
		AppointmentUsecase: appointmentUsecase,
		Log:                logger,
	}
}

func (r *Resolver) GetPacient(ctx context.Context, args struct{ ID graphql.ID }) (*pacienteResolver, error) {
	patient, err := r.PatientUsecase.FindByID(ctx, string(args.ID))
	if err != nil {
		return nil, r.resolverError(ctx, "getPacient", err)
	}
	return &pacienteResolver{patient: *patient}, nil
}

func (r *Resolver) GetAppointments(ctx context.Context) ([]*citaResolver, error) {
	appointments, err := r.AppointmentUsecase.FindAll(ctx)
	if err != nil {
		return nil, r.resolverError(ctx, "getAppointments", err)
	}
	result := make([]*citaResolver, len(appointments))
	for i := range appointments {
		result[i] = &citaResolver{appointment: appointments[i]}
	}
	return result, nil
}

func (r *Resolver) AddPatient(ctx context.Context, args struct {
	Nombre   string
	Telefono string
	Correo   string
}) (*pacienteResolver, error) {
	patient, err := r.PatientUsecase.CreatePatient(ctx, &requests.CreatePatient{
		Nombre:   args.Nombre,
		Telefono: args.Telefono,
		Correo:   args.Correo,
	})
	if err != nil {
		return nil, r.resolverError(ctx, "addPatient", err)
	}
	return &pacienteResolver{patient: *patient}, nil
}

func (r *Resolver) UpdatePatient(ctx context.Context, args struct {
	ID       graphql.ID
	Nombre   *string
	Telefono *string
	Correo   *string
}) (*pacienteResolver, error) {
	patient, err := r.PatientUsecase.UpdatePatient(ctx, &requests.UpdatePatient{
		ID:       string(args.ID),
		Nombre:   args.Nombre,
		Telefono: args.Telefono,
		Correo:   args.Correo,
	})
	if err != nil {
		return nil, r.resolverError(ctx, "updatePatient", err)
	}
	return &pacienteResolver{patient: *patient}, nil
}

func (r *Resolver) AddAppointment(ctx context.Context, args struct {
	Paciente graphql.ID
	Fecha    string
	Tipo     string
}) (*citaResolver, error) {
	appointment, err := r.AppointmentUsecase.CreateAppointment(ctx, &requests.CreateAppointment{
		PatientID: string(args.Paciente),
		Fecha:     args.Fecha,
		Tipo:      args.Tipo,
	})
	if err != nil {
		return nil, r.resolverError(ctx, "addAppointment", err)
	}
	return &citaResolver{appointment: *appointment}, nil
}

func (r *Resolver) DeleteAppointment(ctx context.Context, args struct{ ID graphql.ID }) (*bool, error) {
	deleted, err := r.AppointmentUsecase.DeleteAppointment(ctx, string(args.ID))
	if err != nil {
		return nil, r.resolverError(ctx, "deleteAppointment", err)
	}
	return &deleted, nil
}

func (r *Resolver) resolverError(ctx context.Context, operation string, err error) error {
	r.Log.Error("GraphQL operation failed",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.String(constvars.LoggingErrorTypeKey, exceptions.KindOf(err)),
		zap.Error(err),
	)
	return newOperationError(err)
}

type pacienteResolver struct {
	patient responses.Patient
}

func (p *pacienteResolver) ID() graphql.ID {
	return graphql.ID(p.patient.ID)
}

func (p *pacienteResolver) Nombre() string {
	return p.patient.Nombre
}

func (p *pacienteResolver) Telefono() string {
	return p.patient.Telefono
}

func (p *pacienteResolver) Correo() string {
	return p.patient.Correo
}

type citaResolver struct {
	appointment responses.Appointment
}

func (c *citaResolver) ID() graphql.ID {
	return graphql.ID(c.appointment.ID)
}

func (c *citaResolver) Fecha() string {
	return c.appointment.Fecha
}

func (c *citaResolver) Tipo() string {
	return c.appointment.Tipo
}

func (c *citaResolver) Paciente() *pacienteResolver {
	return &pacienteResolver{patient: c.appointment.Paciente}
}
