package repository

import (
	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
)

type NotificationRepository struct{ DB *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

// Create takes the handle explicitly so checkout can write notifications
// inside its transaction.
func (r *NotificationRepository) Create(tx *gorm.DB, n *entity.Notification) error {
	return tx.Create(n).Error
}

func (r *NotificationRepository) UnreadByUser(userID uint) ([]entity.Notification, error) {
	var out []entity.Notification
	err := r.DB.Where("user_id = ? AND read = ?", userID, false).Find(&out).Error
	return out, err
}

func (r *NotificationRepository) FindByID(id uint) (*entity.Notification, error) {
	var n entity.Notification
	if err := r.DB.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) Save(n *entity.Notification) error {
	return r.DB.Save(n).Error
}
