package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
	"github.com/solveighty/restaurant-mechita/repository"
)

var ErrNotAdmin = errors.New("user is not an administrator")

type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotifyAdmin queues an ADMIN-audience message; the recipient must
// actually hold the admin role.
func (s *NotificationService) NotifyAdmin(user *entity.User, message string) error {
	if !user.IsAdmin() {
		return ErrNotAdmin
	}
	return s.repo.Create(s.repo.DB, &entity.Notification{
		UserID: user.ID, Message: message, Audience: entity.AudienceAdmin,
	})
}

func (s *NotificationService) NotifyUser(user *entity.User, message string) error {
	return s.repo.Create(s.repo.DB, &entity.Notification{
		UserID: user.ID, Message: message, Audience: entity.AudienceUser,
	})
}

func (s *NotificationService) UnreadForUser(userID uint) ([]entity.Notification, error) {
	return s.repo.UnreadByUser(userID)
}

// MarkRead is idempotent: marking an already-read notification is a
// no-op, not an error. Only the recipient can mark it; anyone else sees
// a not-found.
func (s *NotificationService) MarkRead(userID, id uint) error {
	n, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return ErrNotFound
	}
	if n.Read {
		return nil
	}
	n.Read = true
	return s.repo.Save(n)
}
