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

func seedQueueOrder(t *testing.T, db *gorm.DB, name, status string, createdAt time.Time, pickedUp bool) entity.Order {
	t.Helper()
	o := entity.Order{
		CustomerName:  name,
		Status:        status,
		PaymentStatus: entity.PaymentUnpaid,
		PaymentMethod: entity.MethodCash,
		PickedUp:      pickedUp,
	}
	o.CreatedAt = createdAt
	require.NoError(t, db.Create(&o).Error)
	return o
}

func TestQueue_WaitEstimates(t *testing.T) {
	db := newTestDB(t)
	svc := NewQueueService(repository.NewOrderRepository(db))

	now := time.Date(2025, 7, 4, 19, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }

	// head order has been on the fire for 1 minute
	seedQueueOrder(t, db, "Head", entity.StatusPending, now.Add(-1*time.Minute), false)
	seedQueueOrder(t, db, "Second", entity.StatusPending, now.Add(-30*time.Second), false)
	seedQueueOrder(t, db, "Third", entity.StatusPending, now, false)

	entries, err := svc.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Head", entries[0].CustomerName)
	assert.Equal(t, 3, entries[0].EstimatedWaitMin) // max(0, 4-1)
	assert.Equal(t, 7, entries[1].EstimatedWaitMin) // 1*4 + 3
	assert.Equal(t, 11, entries[2].EstimatedWaitMin)
}

func TestQueue_HeadEstimateDecreasesAndFloorsAtZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewQueueService(repository.NewOrderRepository(db))

	start := time.Date(2025, 7, 4, 19, 0, 0, 0, time.UTC)
	seedQueueOrder(t, db, "Head", entity.StatusPending, start, false)

	previous := MinutesPerOrder + 1
	for _, elapsed := range []time.Duration{0, time.Minute, 2 * time.Minute, 3 * time.Minute} {
		svc.Now = func() time.Time { return start.Add(elapsed) }
		entries, err := svc.List()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Less(t, entries[0].EstimatedWaitMin, previous, "estimate must shrink as time passes")
		previous = entries[0].EstimatedWaitMin
	}

	// long past the service-rate window the estimate bottoms out at zero
	svc.Now = func() time.Time { return start.Add(30 * time.Minute) }
	entries, err := svc.List()
	require.NoError(t, err)
	assert.Zero(t, entries[0].EstimatedWaitMin)
}

func TestQueue_CompletedOrdersReportedReady(t *testing.T) {
	db := newTestDB(t)
	svc := NewQueueService(repository.NewOrderRepository(db))

	now := time.Date(2025, 7, 4, 19, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }

	seedQueueOrder(t, db, "Done", entity.StatusCompleted, now.Add(-10*time.Minute), false)
	seedQueueOrder(t, db, "Cooking", entity.StatusPending, now.Add(-2*time.Minute), false)

	entries, err := svc.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.True(t, entries[0].Ready)
	assert.Zero(t, entries[0].EstimatedWaitMin)

	// the ready order does not occupy a queue slot
	assert.False(t, entries[1].Ready)
	assert.Equal(t, 2, entries[1].EstimatedWaitMin) // max(0, 4-2)
}

func TestQueue_ExcludesPickedUpAndCancelled(t *testing.T) {
	db := newTestDB(t)
	svc := NewQueueService(repository.NewOrderRepository(db))

	now := time.Date(2025, 7, 4, 19, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }

	seedQueueOrder(t, db, "Gone", entity.StatusCompleted, now.Add(-20*time.Minute), true)
	seedQueueOrder(t, db, "Nixed", entity.StatusCancelled, now.Add(-5*time.Minute), false)
	seedQueueOrder(t, db, "Unpaid", entity.StatusAwaitingPayment, now.Add(-5*time.Minute), false)

	entries, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
