package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
	"github.com/solveighty/restaurant-mechita/repository"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, ur *repository.UserRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, UserRepo: ur, MenuRepo: mr}
}

// GetOrCreate returns the user's cart, creating an empty one on first
// access.
func (s *CartService) GetOrCreate(userID uint) (*entity.Cart, error) {
	if _, err := s.UserRepo.FindByID(userID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return s.CartRepo.GetOrCreate(userID)
}

// Subtotal prices the cart from current menu prices.
func (s *CartService) Subtotal(c *entity.Cart) int64 {
	var total int64
	for _, it := range c.Items {
		total += it.Menu.Price * int64(it.Qty)
	}
	return total
}

// Add merges qty into the user's cart line for the menu, creating cart
// and line as needed.
func (s *CartService) Add(userID, menuID uint, qty int) (*entity.Cart, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.MenuRepo.FindByID(menuID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, cart.ID, menuID, qty)
	})
	if err != nil {
		return nil, err
	}
	return s.CartRepo.GetOrCreate(userID)
}

// FindForUser resolves the caller's cart without creating one.
func (s *CartService) FindForUser(userID uint) (*entity.Cart, error) {
	cart, err := s.CartRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return cart, err
}

// UpdateQty overwrites a line's quantity. The line must belong to the
// user's own cart; lines in other carts are invisible.
func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	cart, err := s.FindForUser(userID)
	if err != nil {
		return err
	}
	it, err := s.CartRepo.FindItem(itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if it.CartID != cart.ID {
		return ErrNotFound
	}
	it.Qty = qty
	return s.CartRepo.SaveItem(it)
}

func (s *CartService) RemoveItem(cartID, itemID uint) error {
	if _, err := s.CartRepo.FindByID(s.DB, cartID); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, cartID, itemID)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
