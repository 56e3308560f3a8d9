package entity

import (
	"gorm.io/gorm"
)

const (
	CategorySpecials = "SPECIALS"
	CategoryFastFood = "FAST_FOOD"
	CategorySnacks   = "SNACKS"
)

type Menu struct {
	gorm.Model
	MenuName string `gorm:"uniqueIndex;not null" json:"menuName"`
	Detail   string `json:"detail"`
	Price    int64  `json:"price"`
	Picture  string `json:"picture"`
	Category string `json:"category"`
}
