package repository

import (
	"time"

	"github.com/andyrob2215/AAASmores/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// ListQueue returns pending orders plus completed-but-unclaimed ones, oldest
// first, which is exactly what the queue screen renders.
func (r *OrderRepository) ListQueue() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Where("status = ?", entity.StatusPending).
		Or("status = ? AND picked_up = ?", entity.StatusCompleted, false).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

// ListUnpaid returns orders still awaiting electronic payment, newest first.
func (r *OrderRepository) ListUnpaid() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Where("status = ?", entity.StatusAwaitingPayment).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// ---------------- Lifecycle updates ----------------

// UpdateStatus sets any status. Completion stamps completed_at once; the
// timestamp is left alone on every other transition. No from-state guard:
// staff can move an order anywhere, matching how the stand actually operates.
func (r *OrderRepository) UpdateStatus(orderID uint, status string) error {
	updates := map[string]any{"status": status}
	if status == entity.StatusCompleted {
		updates["completed_at"] = gorm.Expr(
			"CASE WHEN completed_at IS NULL THEN ? ELSE completed_at END", time.Now())
	}
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(updates).Error
}

// MarkPaid flips payment_status and advances awaiting_payment to pending.
// Calling it again is a no-op on status.
func (r *OrderRepository) MarkPaid(orderID uint) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"payment_status": entity.PaymentPaid,
			"status": gorm.Expr(
				"CASE WHEN status = ? THEN ? ELSE status END",
				entity.StatusAwaitingPayment, entity.StatusPending),
		}).Error
}

func (r *OrderRepository) MarkPickedUp(orderID uint) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("picked_up", true).Error
}

func (r *OrderRepository) Cancel(orderID uint) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", entity.StatusCancelled).Error
}

// SetPaymentMethod switches the method and nudges status between pending and
// awaiting_payment for unpaid transitions. Other statuses are untouched.
func (r *OrderRepository) SetPaymentMethod(orderID uint, method string) error {
	updates := map[string]any{"payment_method": method}
	if entity.ElectronicMethod(method) {
		updates["status"] = gorm.Expr(
			"CASE WHEN status = ? THEN ? ELSE status END",
			entity.StatusPending, entity.StatusAwaitingPayment)
	} else if method == entity.MethodCash {
		updates["status"] = gorm.Expr(
			"CASE WHEN status = ? THEN ? ELSE status END",
			entity.StatusAwaitingPayment, entity.StatusPending)
	}
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(updates).Error
}
