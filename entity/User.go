package entity

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Name     string `json:"name"`
	Password string `json:"-"`
	// Nullable so accounts without a phone never collide on the index.
	Phone    *string `gorm:"uniqueIndex" json:"phone"`
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Address  string  `json:"address"`
	Verified bool    `json:"verified"`
	Role     string  `gorm:"not null;default:customer" json:"role"`

	// Relations — preload only when needed
	Cart          *Cart          `json:"-"`
	Orders        []Order        `json:"-"`
	Reviews       []Review       `json:"-"`
	Notifications []Notification `json:"-"`
	TempAddresses []UserAddress  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
