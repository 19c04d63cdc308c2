package models

import "time"

type Gym struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string  `gorm:"size:150;not null;index" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	Phone       *string `gorm:"size:20" json:"phone"`

	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
