package repository

import (
	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) List() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) FindByName(name string) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Where("menu_name = ?", name).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Save(m *entity.Menu) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.Menu{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
