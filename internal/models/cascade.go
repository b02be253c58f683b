package models

// Cascade lista os registros removidos junto com a entidade principal.
type Cascade struct {
	PetIDs         []uint
	AppointmentIDs []uint
}
