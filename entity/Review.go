package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReviewPage  = "PAGE"
	ReviewOrder = "ORDER"
)

type Review struct {
	gorm.Model
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Kind       string    `json:"kind"`
	ReviewDate time.Time `json:"reviewDate"`

	UserID uint `json:"userId" gorm:"index"`
	User   User `json:"-"`

	// Set only for ORDER reviews.
	OrderID *uint  `json:"orderId,omitempty"`
	Order   *Order `json:"-"`
}
