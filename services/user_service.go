package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
	"github.com/solveighty/restaurant-mechita/repository"
)

// UserService carries the authorization capability plus the small
// profile extras (temporary addresses, admin listings).
type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{userRepo: repo}
}

func (s *UserService) IsAdmin(userID uint) bool {
	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		return false
	}
	return u.IsAdmin()
}

// RequireAdmin is the single role check every admin-gated operation
// consumes.
func (s *UserService) RequireAdmin(userID uint) error {
	if !s.IsAdmin(userID) {
		return ErrForbidden
	}
	return nil
}

func (s *UserService) ListAll(requesterID uint) ([]entity.User, error) {
	if err := s.RequireAdmin(requesterID); err != nil {
		return nil, err
	}
	return s.userRepo.ListAll()
}

// ----- temp addresses -----

func (s *UserService) AddTempAddress(userID uint, address string) (*entity.UserAddress, error) {
	if _, err := s.userRepo.FindByID(userID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return s.userRepo.AddAddress(userID, address)
}

func (s *UserService) TempAddresses(userID uint) ([]entity.UserAddress, error) {
	return s.userRepo.ListAddresses(userID)
}

func (s *UserService) RemoveTempAddress(userID, addressID uint) error {
	err := s.userRepo.DeleteAddress(userID, addressID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
