package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
	"github.com/solveighty/restaurant-mechita/pkg/mailer"
	"github.com/solveighty/restaurant-mechita/repository"
)

const codeTTL = 3 * time.Minute

var ErrCodeInvalid = errors.New("verification code invalid or expired")

type VerificationService struct {
	repo     *repository.VerificationRepository
	userRepo *repository.UserRepository
	mail     mailer.Mailer
	log      zerolog.Logger

	now func() time.Time
}

func NewVerificationService(repo *repository.VerificationRepository, ur *repository.UserRepository, mail mailer.Mailer, log zerolog.Logger) *VerificationService {
	return &VerificationService{repo: repo, userRepo: ur, mail: mail, log: log, now: time.Now}
}

// SendCode issues a fresh 6-digit code valid for three minutes and
// mails it to the address.
func (s *VerificationService) SendCode(email string) error {
	if _, err := s.userRepo.FindByEmail(email); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}

	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return err
	}
	code := fmt.Sprintf("%06d", n.Int64()+100000)

	if err := s.repo.Create(&entity.VerificationCode{
		Email:     email,
		Code:      code,
		ExpiresAt: s.now().Add(codeTTL),
	}); err != nil {
		return err
	}

	body := fmt.Sprintf("Hello,\n\nyour verification code is: %s\n\nIt is valid for 3 minutes. If you did not request it, ignore this message.", code)
	if err := s.mail.Send(email, "Verification code", body); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("verification mail failed")
	}
	return nil
}

// Verify consumes a matching, unexpired code and marks the account
// verified.
func (s *VerificationService) Verify(email, code string) error {
	v, err := s.repo.FindLatest(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCodeInvalid
	}
	if err != nil {
		return err
	}
	if v.Code != code || s.now().After(v.ExpiresAt) {
		return ErrCodeInvalid
	}

	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	user.Verified = true
	if err := s.userRepo.Save(user); err != nil {
		return err
	}
	return s.repo.DeleteForEmail(email)
}
