package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
	"github.com/solveighty/restaurant-mechita/repository"
)

var (
	ErrMenuExists   = errors.New("menu name already exists")
	ErrInvalidPrice = errors.New("price must not be negative")
)

type MenuService struct {
	repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) List() ([]entity.Menu, error) {
	return s.repo.List()
}

func (s *MenuService) Get(id uint) (*entity.Menu, error) {
	m, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return m, err
}

func (s *MenuService) Create(m *entity.Menu) error {
	if m.Price < 0 {
		return ErrInvalidPrice
	}
	if _, err := s.repo.FindByName(m.MenuName); err == nil {
		return ErrMenuExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.repo.Create(m)
}

type UpdateMenuIn struct {
	MenuName *string
	Detail   *string
	Price    *int64
	Picture  *string
	Category *string
}

func (s *MenuService) Update(id uint, in UpdateMenuIn) (*entity.Menu, error) {
	m, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.MenuName != nil && *in.MenuName != m.MenuName {
		if _, err := s.repo.FindByName(*in.MenuName); err == nil {
			return nil, ErrMenuExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		m.MenuName = *in.MenuName
	}
	if in.Detail != nil {
		m.Detail = *in.Detail
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, ErrInvalidPrice
		}
		m.Price = *in.Price
	}
	if in.Picture != nil {
		m.Picture = *in.Picture
	}
	if in.Category != nil {
		m.Category = *in.Category
	}

	if err := s.repo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Delete(id uint) error {
	err := s.repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
