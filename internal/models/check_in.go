package models

import "time"

type CheckIn struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_check_ins_user_day" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	GymID string `gorm:"type:uuid;not null;index" json:"gym_id"`
	Gym   Gym    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Calendar day of CreatedAt (YYYY-MM-DD); one check-in per user and day.
	CheckInDate string `gorm:"size:10;not null;uniqueIndex:idx_check_ins_user_day" json:"-"`

	ValidatedAt *time.Time `json:"validated_at"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
}
