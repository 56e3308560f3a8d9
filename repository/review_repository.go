package repository

import (
	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) Create(rv *entity.Review) error {
	return r.DB.Create(rv).Error
}

func (r *ReviewRepository) CountByUserAndKind(userID uint, kind string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Review{}).
		Where("user_id = ? AND kind = ?", userID, kind).
		Count(&n).Error
	return n, err
}

func (r *ReviewRepository) ListByUser(userID uint) ([]entity.Review, error) {
	var out []entity.Review
	err := r.DB.Where("user_id = ?", userID).Find(&out).Error
	return out, err
}

func (r *ReviewRepository) ListByKind(kind string) ([]entity.Review, error) {
	var out []entity.Review
	err := r.DB.Where("kind = ?", kind).Find(&out).Error
	return out, err
}
