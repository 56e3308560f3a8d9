package repository

import (
	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByLogin resolves a login identifier, which may be a username or an
// email address.
func (r *UserRepository) FindByLogin(identifier string) (*entity.User, error) {
	var u entity.User
	err := r.DB.Where("username = ? OR email = ?", identifier, identifier).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindAdmin returns the admin account checkout notifies.
func (r *UserRepository) FindAdmin(tx *gorm.DB) (*entity.User, error) {
	var u entity.User
	if err := tx.Where("role = ?", entity.RoleAdmin).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// existsOther reports whether a unique field value is taken by a user
// other than excludeID (0 means any user).
func (r *UserRepository) existsOther(field, value string, excludeID uint) (bool, error) {
	if value == "" {
		return false, nil
	}
	var count int64
	q := r.DB.Model(&entity.User{}).Where(field+" = ?", value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) UsernameTaken(username string, excludeID uint) (bool, error) {
	return r.existsOther("username", username, excludeID)
}
func (r *UserRepository) PhoneTaken(phone string, excludeID uint) (bool, error) {
	return r.existsOther("phone", phone, excludeID)
}
func (r *UserRepository) EmailTaken(email string, excludeID uint) (bool, error) {
	return r.existsOther("email", email, excludeID)
}

func (r *UserRepository) Save(u *entity.User) error {
	return r.DB.Save(u).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.User{}, id).Error
}

func (r *UserRepository) ListAll() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Find(&users).Error
	return users, err
}

func (r *UserRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Count(&n).Error
	return n, err
}

// ----- temp addresses -----

func (r *UserRepository) AddAddress(userID uint, address string) (*entity.UserAddress, error) {
	a := entity.UserAddress{UserID: userID, Address: address}
	if err := r.DB.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *UserRepository) ListAddresses(userID uint) ([]entity.UserAddress, error) {
	var out []entity.UserAddress
	err := r.DB.Where("user_id = ?", userID).Find(&out).Error
	return out, err
}

func (r *UserRepository) DeleteAddress(userID, addressID uint) error {
	res := r.DB.Where("id = ? AND user_id = ?", addressID, userID).Delete(&entity.UserAddress{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
