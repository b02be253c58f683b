package models

import "time"

// User é o dono (tutor) dos pets.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:500;not null" json:"name"`
	Email        string `gorm:"size:191;not null" json:"email"`
	PasswordHash string `gorm:"size:200;not null" json:"password_hash"`

	Pets []Pet `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
