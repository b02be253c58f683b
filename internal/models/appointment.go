package models

import "time"

// Appointment é a consulta de um pet com um veterinário.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// nil enquanto a consulta não tem data definida
	ScheduledAt *time.Time `json:"scheduled_time"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`

	VetID uint         `gorm:"not null;index" json:"vet_id"`
	Vet   Veterinarian `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PetID uint `gorm:"not null;index" json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
