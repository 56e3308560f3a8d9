package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusInProgress = "IN_PROGRESS"
	StatusInTransit  = "IN_TRANSIT"
	StatusDelivered  = "DELIVERED"
)

// Order is an immutable purchase record; only Status ever changes, and
// only forward along IN_PROGRESS -> IN_TRANSIT -> DELIVERED.
type Order struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"index"`
	User   User `json:"-"`

	PurchasedAt time.Time `json:"purchasedAt" gorm:"index"`
	Status      string    `json:"status" gorm:"not null;default:IN_PROGRESS"`
	Total       int64     `json:"total"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
