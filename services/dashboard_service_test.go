package services

import (
	"testing"
	"time"

	"github.com/andyrob2215/AAASmores/entity"
	"github.com/andyrob2215/AAASmores/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(t *testing.T, db *gorm.DB) *DashboardService {
	t.Helper()
	return NewDashboardService(
		repository.NewDashboardRepository(db),
		repository.NewMenuRepository(db),
		repository.NewIngredientRepository(db),
		repository.NewDiscountRepository(db),
		NewConfigService(db, repository.NewConfigRepository(db)),
	)
}

func seedDashOrder(t *testing.T, db *gorm.DB, status string, total float64, createdAt time.Time, pickedUp bool) entity.Order {
	t.Helper()
	o := entity.Order{
		CustomerName:  "Guest",
		Status:        status,
		PaymentStatus: entity.PaymentUnpaid,
		PaymentMethod: entity.MethodCash,
		TotalPrice:    total,
		PickedUp:      pickedUp,
	}
	o.CreatedAt = createdAt
	require.NoError(t, db.Create(&o).Error)
	return o
}

func TestDashboard_OrderGrouping(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(t, db)
	now := time.Date(2025, 7, 4, 19, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }

	item := seedMenuItem(t, db, "Classic S'more", 4.00)

	awaiting := seedDashOrder(t, db, entity.StatusAwaitingPayment, 4, now.Add(-3*time.Minute), false)
	pending := seedDashOrder(t, db, entity.StatusPending, 4, now.Add(-2*time.Minute), false)
	ready := seedDashOrder(t, db, entity.StatusCompleted, 4, now.Add(-10*time.Minute), false)
	gone := seedDashOrder(t, db, entity.StatusCompleted, 4, now.Add(-30*time.Minute), true)
	nixed := seedDashOrder(t, db, entity.StatusCancelled, 4, now.Add(-20*time.Minute), false)

	require.NoError(t, db.Create(&entity.OrderItem{
		OrderID: pending.ID, MenuItemID: item.ID, Quantity: 2,
		ItemPriceAtTime: 4.00, CustomizationDetails: "CUSTOM: 2x Chocolate",
	}).Error)

	out, err := svc.Build()
	require.NoError(t, err)

	require.Len(t, out.AwaitingPayment, 1)
	assert.Equal(t, awaiting.ID, out.AwaitingPayment[0].ID)

	// ready orders surface ahead of cooking ones
	require.Len(t, out.Pending, 2)
	assert.Equal(t, ready.ID, out.Pending[0].ID)
	assert.Equal(t, pending.ID, out.Pending[1].ID)
	require.Len(t, out.Pending[1].Items, 1)
	assert.Equal(t, "Classic S'more", out.Pending[1].Items[0].Name)
	assert.Equal(t, 2, out.Pending[1].Items[0].Qty)

	historyIDs := []uint{out.History[0].ID, out.History[1].ID}
	assert.ElementsMatch(t, []uint{gone.ID, nixed.ID}, historyIDs)
}

func TestDashboard_SalesRollups(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(t, db)
	now := time.Date(2025, 7, 4, 19, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }

	seedDashOrder(t, db, entity.StatusCompleted, 10, now.Add(-2*time.Hour), true)
	seedDashOrder(t, db, entity.StatusCompleted, 20, now.AddDate(0, 0, -3), true)
	seedDashOrder(t, db, entity.StatusCompleted, 40, now.AddDate(0, 0, -20), true)
	seedDashOrder(t, db, entity.StatusCompleted, 80, now.AddDate(0, -2, 0), true)
	// non-completed revenue never counts
	seedDashOrder(t, db, entity.StatusCancelled, 500, now.Add(-1*time.Hour), false)
	seedDashOrder(t, db, entity.StatusPending, 500, now.Add(-1*time.Hour), false)

	out, err := svc.Build()
	require.NoError(t, err)

	assert.InDelta(t, 10, out.Sales.Today, 1e-9)
	assert.InDelta(t, 30, out.Sales.Week, 1e-9)
	assert.InDelta(t, 70, out.Sales.Month, 1e-9)
	assert.InDelta(t, 150, out.Sales.Total, 1e-9)
}

func TestDashboard_ConfigEcho(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(t, db)
	seedUnlockCode(t, db, "campfire")

	out, err := svc.Build()
	require.NoError(t, err)
	assert.Equal(t, "campfire", out.CashUnlockCode)
	assert.True(t, out.DeliveryEnabled)
}
