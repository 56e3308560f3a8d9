package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/solveighty/restaurant-mechita/configs"
	"github.com/solveighty/restaurant-mechita/entity"
	"github.com/solveighty/restaurant-mechita/repository"
)

var dbSeq int
var dbSeqMu sync.Mutex

// newTestDB opens a fresh in-memory database per test. Shared cache
// keeps the schema visible across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSeqMu.Lock()
	dbSeq++
	name := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq)
	dbSeqMu.Unlock()

	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *entity.User {
	t.Helper()
	phone := fmt.Sprintf("555-%s", username)
	u := entity.User{
		Username: username,
		Name:     username,
		Password: "x",
		Email:    username + "@example.com",
		Phone:    &phone,
		Role:     role,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func createMenu(t *testing.T, db *gorm.DB, name string, price int64) *entity.Menu {
	t.Helper()
	m := entity.Menu{MenuName: name, Price: price, Category: entity.CategoryFastFood}
	require.NoError(t, db.Create(&m).Error)
	return &m
}

// recordingMailer captures sends instead of delivering them.
type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

var errSMTPDown = errors.New("smtp relay down")

// assertNothingPersisted checks the rollback outcome of a failed
// checkout: no order, no order items, no notifications, and the cart
// still holding its lines.
func assertNothingPersisted(t *testing.T, db *gorm.DB, cartID uint, wantItems int64) {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&n).Error)
	require.Zero(t, n, "no order may be visible")
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&n).Error)
	require.Zero(t, n)
	require.NoError(t, db.Model(&entity.Notification{}).Count(&n).Error)
	require.Zero(t, n)
	require.NoError(t, db.Model(&entity.CartItem{}).Where("cart_id = ?", cartID).Count(&n).Error)
	require.Equal(t, wantItems, n, "cart must be unchanged")
}

// failingGateway declines every charge.
type failingGateway struct{}

func (failingGateway) Charge(userID uint, amount int64) error {
	return errors.New("card declined")
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
		repository.NewMenuRepository(db),
	)
}

func newOrderService(db *gorm.DB, gw PaymentGateway, mail *recordingMailer) *OrderService {
	if gw == nil {
		gw = SimulatedGateway{}
	}
	userRepo := repository.NewUserRepository(db)
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		userRepo,
		repository.NewNotificationRepository(db),
		NewUserService(userRepo),
		gw,
		mail,
		zerolog.Nop(),
	)
}
