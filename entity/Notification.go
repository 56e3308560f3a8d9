package entity

import (
	"gorm.io/gorm"
)

const (
	AudienceUser  = "USER"
	AudienceAdmin = "ADMIN"
)

type Notification struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"index"`
	User   User `json:"-"`

	Message  string `json:"message"`
	Read     bool   `json:"read" gorm:"default:false"`
	Audience string `json:"audience"`
}
