package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Nombre   string             `bson:"nombre"`
	Telefono string             `bson:"telefono"`
	Correo   string             `bson:"correo"`
}

// PatientUpdate holds the fields of a partial update; nil fields are left
// untouched in the store.
type PatientUpdate struct {
	Nombre   *string
	Telefono *string
	Correo   *string
}

func (u *PatientUpdate) IsEmpty() bool {
	return u.Nombre == nil && u.Telefono == nil && u.Correo == nil
}

func (u *PatientUpdate) ConvertToBsonM() bson.M {
	result := bson.M{}
	if u.Nombre != nil {
		result["nombre"] = *u.Nombre
	}
	if u.Telefono != nil {
		result["telefono"] = *u.Telefono
	}
	if u.Correo != nil {
		result["correo"] = *u.Correo
	}
	return result
}
