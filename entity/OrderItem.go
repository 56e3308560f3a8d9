package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a denormalized snapshot of a cart line at purchase time.
// It keeps the menu name and computed line total instead of a menu
// reference, so later menu edits never rewrite history.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId" gorm:"index"`
	Order   Order `json:"-"`

	MenuName string `json:"menuName"`
	Qty      int    `json:"qty"`
	Total    int64  `json:"total"`
}
