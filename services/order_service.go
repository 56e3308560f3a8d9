package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
	"github.com/solveighty/restaurant-mechita/pkg/mailer"
	"github.com/solveighty/restaurant-mechita/repository"
)

var ErrEmptyCart = errors.New("cart is empty")

type OrderService struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	CartRepo  *repository.CartRepository
	UserRepo  *repository.UserRepository
	NotifRepo *repository.NotificationRepository
	Users     *UserService
	Gateway   PaymentGateway
	Mail      mailer.Mailer
	Log       zerolog.Logger

	now func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	orderRepo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
	notifRepo *repository.NotificationRepository,
	users *UserService,
	gateway PaymentGateway,
	mail mailer.Mailer,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		DB:        db,
		OrderRepo: orderRepo,
		CartRepo:  cartRepo,
		UserRepo:  userRepo,
		NotifRepo: notifRepo,
		Users:     users,
		Gateway:   gateway,
		Mail:      mail,
		Log:       log,
		now:       time.Now,
	}
}

// Checkout converts the cart into an immutable order: price the lines,
// charge, snapshot them, empty the cart, and queue one notification for
// the admin and one for the buyer. All of it commits or none of it does.
func (s *OrderService) Checkout(cartID uint) (*entity.Order, error) {
	var (
		order entity.Order
		buyer entity.User
	)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.FindByID(tx, cartID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		var total int64
		items := make([]entity.OrderItem, 0, len(cart.Items))
		for _, it := range cart.Items {
			line := it.Menu.Price * int64(it.Qty)
			total += line
			items = append(items, entity.OrderItem{
				MenuName: it.Menu.MenuName,
				Qty:      it.Qty,
				Total:    line,
			})
		}

		if err := s.Gateway.Charge(cart.UserID, total); err != nil {
			return fmt.Errorf("payment: %w", err)
		}

		order = entity.Order{
			UserID:      cart.UserID,
			PurchasedAt: s.now(),
			Status:      entity.StatusInProgress,
			Total:       total,
			Items:       items,
		}
		if err := s.OrderRepo.Create(tx, &order); err != nil {
			return err
		}

		if err := s.CartRepo.ClearItems(tx, cart.ID); err != nil {
			return err
		}

		if err := tx.First(&buyer, cart.UserID).Error; err != nil {
			return err
		}
		admin, err := s.UserRepo.FindAdmin(tx)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("admin: %w", ErrNotFound)
		}
		if err != nil {
			return err
		}

		adminMsg := fmt.Sprintf("New order placed by %s with order ID: %d", buyer.Name, order.ID)
		if err := s.NotifRepo.Create(tx, &entity.Notification{
			UserID: admin.ID, Message: adminMsg, Audience: entity.AudienceAdmin,
		}); err != nil {
			return err
		}
		userMsg := fmt.Sprintf("Your order with ID: %d has been received and is being processed.", order.ID)
		return s.NotifRepo.Create(tx, &entity.Notification{
			UserID: buyer.ID, Message: userMsg, Audience: entity.AudienceUser,
		})
	})
	if err != nil {
		return nil, err
	}

	// Mail is best-effort after commit; a relay failure never unwinds
	// the purchase.
	subject := fmt.Sprintf("Order %d received", order.ID)
	body := fmt.Sprintf("Hi %s,\n\nyour order %d for a total of %d is being prepared.", buyer.Name, order.ID, order.Total)
	if err := s.Mail.Send(buyer.Email, subject, body); err != nil {
		s.Log.Error().Err(err).Uint("order_id", order.ID).Msg("order confirmation mail failed")
	}

	return &order, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.OrderRepo.ListByUser(userID)
}

func (s *OrderService) ListAll(requesterID uint) ([]entity.Order, error) {
	if err := s.Users.RequireAdmin(requesterID); err != nil {
		return nil, err
	}
	return s.OrderRepo.ListAll()
}

type SalesReport struct {
	Orders []entity.Order `json:"orders"`
	Total  int64          `json:"total"`
}

// SalesInRange returns the orders purchased in [start, end) and the sum
// of their line totals.
func (s *OrderService) SalesInRange(requesterID uint, start, end time.Time) (*SalesReport, error) {
	if err := s.Users.RequireAdmin(requesterID); err != nil {
		return nil, err
	}
	orders, err := s.OrderRepo.ListInRange(start, end)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, o := range orders {
		for _, it := range o.Items {
			total += it.Total
		}
	}
	return &SalesReport{Orders: orders, Total: total}, nil
}

func (s *OrderService) CountInRange(start, end time.Time) (int64, error) {
	return s.OrderRepo.CountInRange(start, end)
}

type Stats struct {
	TotalUsers  int64 `json:"totalUsers"`
	OrdersToday int64 `json:"ordersToday"`
	OrdersWeek  int64 `json:"ordersWeek"`
	OrdersMonth int64 `json:"ordersMonth"`
	OrdersYear  int64 `json:"ordersYear"`
}

// Stats buckets order counts by calendar boundaries: start of day, the
// most recent Monday, first of month, first of year.
func (s *OrderService) Stats(requesterID uint) (*Stats, error) {
	if err := s.Users.RequireAdmin(requesterID); err != nil {
		return nil, err
	}

	users, err := s.UserRepo.Count()
	if err != nil {
		return nil, err
	}

	now := s.now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	week := day.AddDate(0, 0, -(weekday - 1))
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	year := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	out := &Stats{TotalUsers: users}
	if out.OrdersToday, err = s.CountInRange(day, now); err != nil {
		return nil, err
	}
	if out.OrdersWeek, err = s.CountInRange(week, now); err != nil {
		return nil, err
	}
	if out.OrdersMonth, err = s.CountInRange(month, now); err != nil {
		return nil, err
	}
	if out.OrdersYear, err = s.CountInRange(year, now); err != nil {
		return nil, err
	}
	return out, nil
}
