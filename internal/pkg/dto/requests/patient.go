package requests

type CreatePatient struct {
	Nombre   string `json:"nombre" validate:"required,not_blank"`
	Telefono string `json:"telefono" validate:"required,not_blank"`
	Correo   string `json:"correo" validate:"required,not_blank"`
}

// UpdatePatient carries a partial update. A nil or empty field is treated as
// not supplied and leaves the stored value untouched.
type UpdatePatient struct {
	ID       string  `json:"id" validate:"required"`
	Nombre   *string `json:"nombre,omitempty"`
	Telefono *string `json:"telefono,omitempty"`
	Correo   *string `json:"correo,omitempty"`
}
