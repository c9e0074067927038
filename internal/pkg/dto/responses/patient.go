package responses

type Patient struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Correo   string `json:"correo"`
}

type PhoneValidation struct {
	IsValid bool   `json:"is_valid"`
	Country string `json:"country"`
}
