package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// Create persists the order together with its item snapshots (cascade).
func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByID(tx *gorm.DB, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).Preload("Items").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", id).Update("status", status).Error
}

// ListInRange returns orders purchased in [start, end).
func (r *OrderRepository) ListInRange(start, end time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("purchased_at >= ? AND purchased_at < ?", start, end).
		Preload("Items").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) CountInRange(start, end time.Time) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).
		Where("purchased_at >= ? AND purchased_at < ?", start, end).
		Count(&n).Error
	return n, err
}
