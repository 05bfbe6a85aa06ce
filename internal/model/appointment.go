package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is a clinic booking. Create-only: no read, update or
// cancellation workflow exists.
type Appointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UID       string             `bson:"uid"`
	ClinicaID string             `bson:"clinica_id"`
	DataHora  time.Time          `bson:"data_hora"`
	CriadoEm  time.Time          `bson:"criado_em"`
}
