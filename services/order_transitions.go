package services

import (
	"errors"

	"github.com/andyrob2215/AAASmores/entity"
)

var (
	ErrUnknownStatus = errors.New("unknown status")
	ErrUnknownMethod = errors.New("unknown payment method")
)

var knownStatuses = map[string]bool{
	entity.StatusPending:         true,
	entity.StatusAwaitingPayment: true,
	entity.StatusCompleted:       true,
	entity.StatusCancelled:       true,
}

var knownMethods = map[string]bool{
	entity.MethodCash:    true,
	entity.MethodCashApp: true,
	entity.MethodVenmo:   true,
	entity.MethodPayPal:  true,
}

// ----- Staff actions -----

// UpdateStatus moves the order to any known status. Transitions are not
// validated against the current state on purpose; staff sometimes walk
// orders backwards.
func (s *OrderService) UpdateStatus(orderID uint, status string) error {
	if !knownStatuses[status] {
		return ErrUnknownStatus
	}
	return s.Repo.UpdateStatus(orderID, status)
}

// MarkPaid confirms an electronic payment. Safe to call repeatedly.
func (s *OrderService) MarkPaid(orderID uint) error {
	return s.Repo.MarkPaid(orderID)
}

// MarkPickedUp hands a completed order to the customer. One-way.
func (s *OrderService) MarkPickedUp(orderID uint) error {
	return s.Repo.MarkPickedUp(orderID)
}

// Cancel retires the order. No restock, no refund.
func (s *OrderService) Cancel(orderID uint) error {
	return s.Repo.Cancel(orderID)
}

// ----- Customer action -----

// ChangePaymentMethod lets the customer flip payment method before
// fulfillment. Switching back to cash does not re-check the unlock code;
// the gate only runs at creation.
func (s *OrderService) ChangePaymentMethod(orderID uint, method string) error {
	if !knownMethods[method] {
		return ErrUnknownMethod
	}
	return s.Repo.SetPaymentMethod(orderID, method)
}
