package entity

import (
	"time"

	"gorm.io/gorm"
)

type VerificationCode struct {
	gorm.Model
	Email     string    `json:"email" gorm:"index"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}
