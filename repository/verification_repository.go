package repository

import (
	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
)

type VerificationRepository struct{ DB *gorm.DB }

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{DB: db}
}

func (r *VerificationRepository) Create(v *entity.VerificationCode) error {
	return r.DB.Create(v).Error
}

// FindLatest returns the most recent code issued for the email.
func (r *VerificationRepository) FindLatest(email string) (*entity.VerificationCode, error) {
	var v entity.VerificationCode
	err := r.DB.Where("email = ?", email).Order("id DESC").First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteForEmail consumes every outstanding code for the email.
func (r *VerificationRepository) DeleteForEmail(email string) error {
	return r.DB.Where("email = ?", email).Delete(&entity.VerificationCode{}).Error
}
