package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses. No lookup table; the status column stores these strings.
const (
	StatusPending         = "pending"
	StatusAwaitingPayment = "awaiting_payment"
	StatusCompleted       = "completed"
	StatusCancelled       = "cancelled"
)

// Payment statuses, orthogonal to order status.
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// Payment methods.
const (
	MethodCash    = "cash"
	MethodCashApp = "cashapp"
	MethodVenmo   = "venmo"
	MethodPayPal  = "paypal"
)

// ElectronicMethod reports whether the method requires staff payment confirmation.
func ElectronicMethod(m string) bool {
	return m == MethodCashApp || m == MethodVenmo || m == MethodPayPal
}

type Order struct {
	gorm.Model
	CustomerName string `json:"customer_name"`

	TotalPrice     float64 `json:"total_price"`
	TipAmount      float64 `json:"tip_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	DiscountCodeID *uint   `json:"discount_code_id"`
	CouponCode     *string `gorm:"size:50" json:"coupon_code"`

	Notes            string   `json:"notes"`
	DeliveryType     string   `json:"delivery_type"`
	DeliveryLocation string   `json:"delivery_location"`
	PhoneNumber      *string  `gorm:"size:20" json:"phone_number"`
	GpsLat           *float64 `json:"gps_lat"`
	GpsLng           *float64 `json:"gps_lng"`

	PaymentMethod string `gorm:"size:50;default:cash" json:"payment_method"`
	PaymentStatus string `gorm:"size:20;default:unpaid" json:"payment_status"`
	Status        string `gorm:"size:30;default:pending" json:"status"`

	// PickedUp only means anything once Status is completed.
	PickedUp    bool       `json:"picked_up"`
	CompletedAt *time.Time `json:"completed_at"`

	Items []OrderItem `json:"-"` // preload only on detail/dashboard
}
