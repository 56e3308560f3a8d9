package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/solveighty/restaurant-mechita/entity"
)

func TestCheckoutSnapshotsAndClearsCart(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db)
	mail := &recordingMailer{}
	orders := newOrderService(db, nil, mail)

	createUser(t, db, "admin", entity.RoleAdmin)
	buyer := createUser(t, db, "alice", entity.RoleCustomer)
	a := createMenu(t, db, "item-a", 10)
	b := createMenu(t, db, "item-b", 5)

	_, err := carts.Add(buyer.ID, a.ID, 2)
	require.NoError(t, err)
	cart, err := carts.Add(buyer.ID, b.ID, 1)
	require.NoError(t, err)

	order, err := orders.Checkout(cart.ID)
	require.NoError(t, err)

	require.EqualValues(t, 25, order.Total)
	require.Equal(t, entity.StatusInProgress, order.Status)
	require.Equal(t, buyer.ID, order.UserID)
	require.False(t, order.PurchasedAt.IsZero())
	require.Len(t, order.Items, 2)

	var lineSum int64
	for _, it := range order.Items {
		lineSum += it.Total
	}
	require.EqualValues(t, 25, lineSum)

	// cart row survives, empty
	got, err := carts.GetOrCreate(buyer.ID)
	require.NoError(t, err)
	require.Equal(t, cart.ID, got.ID)
	require.Empty(t, got.Items)

	// exactly two notifications: one per audience
	var notifs []entity.Notification
	require.NoError(t, db.Find(&notifs).Error)
	require.Len(t, notifs, 2)
	audiences := map[string]int{}
	for _, n := range notifs {
		audiences[n.Audience]++
	}
	require.Equal(t, 1, audiences[entity.AudienceAdmin])
	require.Equal(t, 1, audiences[entity.AudienceUser])

	// confirmation mail went to the buyer, after commit
	require.Equal(t, []string{buyer.Email}, mail.sent)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db)
	orders := newOrderService(db, nil, &recordingMailer{})

	createUser(t, db, "admin", entity.RoleAdmin)
	buyer := createUser(t, db, "alice", entity.RoleCustomer)
	cart, err := carts.GetOrCreate(buyer.ID)
	require.NoError(t, err)

	_, err = orders.Checkout(cart.ID)
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutUnknownCart(t *testing.T) {
	db := newTestDB(t)
	orders := newOrderService(db, nil, &recordingMailer{})

	_, err := orders.Checkout(1234)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCheckoutRollsBackOnPaymentFailure(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db)
	mail := &recordingMailer{}
	orders := newOrderService(db, failingGateway{}, mail)

	createUser(t, db, "admin", entity.RoleAdmin)
	buyer := createUser(t, db, "alice", entity.RoleCustomer)
	menu := createMenu(t, db, "item-a", 10)
	cart, err := carts.Add(buyer.ID, menu.ID, 2)
	require.NoError(t, err)

	_, err = orders.Checkout(cart.ID)
	require.Error(t, err)

	assertNothingPersisted(t, db, cart.ID, 1)
	require.Empty(t, mail.sent)
}

// The admin lookup happens after the order write; a missing admin must
// unwind the already-written order and the cleared cart.
func TestCheckoutRollsBackWhenNoAdmin(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db)
	mail := &recordingMailer{}
	orders := newOrderService(db, nil, mail)

	buyer := createUser(t, db, "alice", entity.RoleCustomer)
	menu := createMenu(t, db, "item-a", 10)
	cart, err := carts.Add(buyer.ID, menu.ID, 2)
	require.NoError(t, err)

	_, err = orders.Checkout(cart.ID)
	require.ErrorIs(t, err, ErrNotFound)

	assertNothingPersisted(t, db, cart.ID, 1)
	require.Empty(t, mail.sent)
}

func TestCheckoutMailFailureDoesNotFail(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db)
	mail := &recordingMailer{err: errSMTPDown}
	orders := newOrderService(db, nil, mail)

	createUser(t, db, "admin", entity.RoleAdmin)
	buyer := createUser(t, db, "alice", entity.RoleCustomer)
	menu := createMenu(t, db, "item-a", 10)
	cart, err := carts.Add(buyer.ID, menu.ID, 1)
	require.NoError(t, err)

	order, err := orders.Checkout(cart.ID)
	require.NoError(t, err)
	require.NotZero(t, order.ID)
}

func TestListAllRequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	orders := newOrderService(db, nil, &recordingMailer{})

	admin := createUser(t, db, "admin", entity.RoleAdmin)
	buyer := createUser(t, db, "alice", entity.RoleCustomer)

	_, err := orders.ListAll(buyer.ID)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = orders.ListAll(admin.ID)
	require.NoError(t, err)
}

func TestSalesInRange(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db)
	orders := newOrderService(db, nil, &recordingMailer{})

	admin := createUser(t, db, "admin", entity.RoleAdmin)
	buyer := createUser(t, db, "alice", entity.RoleCustomer)
	menu := createMenu(t, db, "item-a", 10)

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	purchaseAt := func(ts time.Time) {
		cart, err := carts.Add(buyer.ID, menu.ID, 2)
		require.NoError(t, err)
		orders.now = func() time.Time { return ts }
		_, err = orders.Checkout(cart.ID)
		require.NoError(t, err)
	}

	purchaseAt(base)                    // inside
	purchaseAt(base.AddDate(0, 0, 1))   // inside
	purchaseAt(base.AddDate(0, 0, -10)) // before start
	purchaseAt(base.AddDate(0, 0, 10))  // at/after end

	start := base.Add(-time.Hour)
	end := base.AddDate(0, 0, 2)

	report, err := orders.SalesInRange(admin.ID, start, end)
	require.NoError(t, err)
	require.Len(t, report.Orders, 2)
	require.EqualValues(t, 40, report.Total)

	_, err = orders.SalesInRange(buyer.ID, start, end)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestCountInRangeBoundaries(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db)
	orders := newOrderService(db, nil, &recordingMailer{})

	createUser(t, db, "admin", entity.RoleAdmin)
	buyer := createUser(t, db, "alice", entity.RoleCustomer)
	menu := createMenu(t, db, "item-a", 10)

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	for _, ts := range []time.Time{start, end.Add(-time.Second), end} {
		cart, err := carts.Add(buyer.ID, menu.ID, 1)
		require.NoError(t, err)
		orders.now = func() time.Time { return ts }
		_, err = orders.Checkout(cart.ID)
		require.NoError(t, err)
	}

	n, err := orders.CountInRange(start, end)
	require.NoError(t, err)
	require.EqualValues(t, 2, n) // start inclusive, end exclusive
}

func TestStatsBuckets(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db)
	orders := newOrderService(db, nil, &recordingMailer{})

	admin := createUser(t, db, "admin", entity.RoleAdmin)
	buyer := createUser(t, db, "alice", entity.RoleCustomer)
	menu := createMenu(t, db, "item-a", 10)

	// Wednesday 2025-03-12
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	purchaseAt := func(ts time.Time) {
		cart, err := carts.Add(buyer.ID, menu.ID, 1)
		require.NoError(t, err)
		orders.now = func() time.Time { return ts }
		_, err = orders.Checkout(cart.ID)
		require.NoError(t, err)
	}

	purchaseAt(now.Add(-time.Hour))        // today
	purchaseAt(now.AddDate(0, 0, -2))      // Monday: this week, not today
	purchaseAt(now.AddDate(0, 0, -8))      // this month, previous week
	purchaseAt(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)) // this year only
	purchaseAt(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)) // last year

	orders.now = func() time.Time { return now }
	stats, err := orders.Stats(admin.ID)
	require.NoError(t, err)

	require.EqualValues(t, 2, stats.TotalUsers)
	require.EqualValues(t, 1, stats.OrdersToday)
	require.EqualValues(t, 2, stats.OrdersWeek)
	require.EqualValues(t, 3, stats.OrdersMonth)
	require.EqualValues(t, 4, stats.OrdersYear)

	_, err = orders.Stats(buyer.ID)
	require.ErrorIs(t, err, ErrForbidden)
}
