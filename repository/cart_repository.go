package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetOrCreate returns the user's cart, creating an empty one on first
// access. The unique index on user_id keeps the one-cart-per-user
// invariant even under concurrent first calls.
func (r *CartRepository) GetOrCreate(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Menu").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

func (r *CartRepository) FindByID(tx *gorm.DB, cartID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Preload("Items").Preload("Items.Menu").First(&c, cartID).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) FindByUserID(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertItem merges a new line into an existing (cart, menu) line or
// creates it.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID, menuID uint, qty int) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_id = ?", cartID, menuID).First(&exist).Error
	if err == nil {
		exist.Qty += qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row := entity.CartItem{CartID: cartID, MenuID: menuID, Qty: qty}
	return tx.Create(&row).Error
}

func (r *CartRepository) FindItem(itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	if err := r.DB.First(&it, itemID).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) SaveItem(it *entity.CartItem) error {
	return r.DB.Save(it).Error
}

// RemoveItem deletes a line scoped to the given cart; removing a line
// that belongs to another cart is a not-found, not a cross-cart delete.
func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID, itemID uint) error {
	res := tx.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&entity.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearItems empties the cart; the cart row itself is retained.
func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
