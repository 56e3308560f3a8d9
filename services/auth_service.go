package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
	"github.com/solveighty/restaurant-mechita/repository"
	"github.com/solveighty/restaurant-mechita/utils"
)

var (
	ErrUsernameTaken = errors.New("username already registered")
	ErrPhoneTaken    = errors.New("phone already registered")
	ErrEmailTaken    = errors.New("email already registered")
)

// IsConflict reports whether err is one of the duplicate-unique-field
// errors, so controllers can answer 409 without listing them.
func IsConflict(err error) bool {
	return errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrPhoneTaken) ||
		errors.Is(err, ErrEmailTaken)
}

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterIn struct {
	Username string
	Name     string
	Password string
	Phone    string
	Email    string
	Address  string
}

func (s *AuthService) Register(in RegisterIn) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)

	if err := s.checkUnique(username, phone, email, 0); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username: username,
		Name:     strings.TrimSpace(in.Name),
		Password: string(hashed),
		Phone:    phonePtr(phone),
		Email:    email,
		Address:  strings.TrimSpace(in.Address),
		Role:     entity.RoleCustomer,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login accepts a username or email plus password and mints a bearer
// token. Unknown identifier and wrong password are indistinguishable to
// the caller.
func (s *AuthService) Login(identifier, password string) (string, *entity.User, error) {
	identifier = strings.TrimSpace(identifier)
	user, err := s.userRepo.FindByLogin(identifier)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

type UpdateProfileIn struct {
	Username *string
	Name     *string
	Password *string
	Phone    *string
	Email    *string
	Address  *string
}

func (s *AuthService) UpdateProfile(userID uint, in UpdateProfileIn) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	username, email := user.Username, user.Email
	var phone string
	if user.Phone != nil {
		phone = *user.Phone
	}
	if in.Username != nil {
		username = strings.TrimSpace(*in.Username)
	}
	if in.Phone != nil {
		phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if err := s.checkUnique(username, phone, email, user.ID); err != nil {
		return nil, err
	}

	user.Username, user.Phone, user.Email = username, phonePtr(phone), email
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		user.Address = strings.TrimSpace(*in.Address)
	}
	if in.Password != nil && *in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) DeleteAccount(userID uint) error {
	if _, err := s.userRepo.FindByID(userID); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return s.userRepo.Delete(userID)
}

// phonePtr maps the optional phone onto its nullable column; an empty
// string stores as NULL.
func phonePtr(phone string) *string {
	if phone == "" {
		return nil
	}
	return &phone
}

func (s *AuthService) checkUnique(username, phone, email string, excludeID uint) error {
	if taken, err := s.userRepo.UsernameTaken(username, excludeID); err != nil {
		return err
	} else if taken {
		return ErrUsernameTaken
	}
	if taken, err := s.userRepo.PhoneTaken(phone, excludeID); err != nil {
		return err
	} else if taken {
		return ErrPhoneTaken
	}
	if taken, err := s.userRepo.EmailTaken(email, excludeID); err != nil {
		return err
	} else if taken {
		return ErrEmailTaken
	}
	return nil
}
