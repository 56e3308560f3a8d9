package entity

import (
	"gorm.io/gorm"
)

// UserAddress is a temporary delivery address saved on a profile,
// separate from the user's main address.
type UserAddress struct {
	gorm.Model
	UserID  uint   `json:"userId" gorm:"index"`
	Address string `json:"address"`
}
