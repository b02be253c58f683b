package models

import "time"

type Veterinarian struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:500;not null" json:"name"`
	Specialty    string `gorm:"size:100;not null" json:"specialty"`
	Email        string `gorm:"size:191;not null" json:"email"`
	PasswordHash string `gorm:"size:200;not null" json:"password_hash"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
