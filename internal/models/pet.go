package models

import "time"

type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:500;not null" json:"name"`
	Species string `gorm:"size:100;not null" json:"species"`
	Age     int    `gorm:"not null;check:age >= 0" json:"age"`

	OwnerID uint `gorm:"not null;index" json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
