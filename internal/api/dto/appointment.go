package dto

// AppointmentCreateDTO books a clinic appointment. DataHora is RFC3339.
type AppointmentCreateDTO struct {
	UID       string `json:"uid" binding:"required"`
	ClinicaID string `json:"clinicaId" binding:"required"`
	DataHora  string `json:"dataHora" binding:"required"`
}

// AppointmentCreatedDTO acknowledges the booking.
type AppointmentCreatedDTO struct {
	ID string `json:"id"`
}
