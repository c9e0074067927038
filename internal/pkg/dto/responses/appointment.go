package responses

// Appointment is always returned with its patient fully resolved.
type Appointment struct {
	ID       string  `json:"id"`
	Fecha    string  `json:"fecha"`
	Tipo     string  `json:"tipo"`
	Paciente Patient `json:"paciente"`
}

type DeleteAppointment struct {
	Deleted bool `json:"deleted"`
}
