package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
)

var (
	ErrUnknownStatus = errors.New("unknown status")
	ErrBadTransition = errors.New("status can only move forward")
)

// statusRank orders the delivery pipeline; transitions must strictly
// increase.
var statusRank = map[string]int{
	entity.StatusInProgress: 0,
	entity.StatusInTransit:  1,
	entity.StatusDelivered:  2,
}

// SetStatus advances an order's status. Admin only; backward or repeated
// transitions are rejected. The order's owner gets a notification about
// the change.
func (s *OrderService) SetStatus(requesterID, orderID uint, newStatus string) (*entity.Order, error) {
	if err := s.Users.RequireAdmin(requesterID); err != nil {
		return nil, err
	}
	newRank, ok := statusRank[newStatus]
	if !ok {
		return nil, ErrUnknownStatus
	}

	var order *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.OrderRepo.FindByID(tx, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if newRank <= statusRank[o.Status] {
			return ErrBadTransition
		}

		if err := s.OrderRepo.UpdateStatus(tx, o.ID, newStatus); err != nil {
			return err
		}
		o.Status = newStatus
		order = o

		msg := fmt.Sprintf("The status of your order with ID: %d has changed to: %s", o.ID, newStatus)
		return s.NotifRepo.Create(tx, &entity.Notification{
			UserID: o.UserID, Message: msg, Audience: entity.AudienceUser,
		})
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
