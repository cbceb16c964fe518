package services

import (
	"errors"
	"strings"

	"github.com/andyrob2215/AAASmores/entity"
	"github.com/andyrob2215/AAASmores/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrUnlockCode rejects cash checkout without the right unlock code.
var ErrUnlockCode = errors.New("cash payment not authorized without valid unlock code")

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	MenuRepo     *repository.MenuRepository
	IngRepo      *repository.IngredientRepository
	ConfigRepo   *repository.ConfigRepository
	DiscountRepo *repository.DiscountRepository
	Discounts    *DiscountService
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	ingRepo *repository.IngredientRepository,
	configRepo *repository.ConfigRepository,
	discountRepo *repository.DiscountRepository,
) *OrderService {
	return &OrderService{
		DB:           db,
		Repo:         repo,
		MenuRepo:     menuRepo,
		IngRepo:      ingRepo,
		ConfigRepo:   configRepo,
		DiscountRepo: discountRepo,
		Discounts:    NewDiscountService(discountRepo),
	}
}

// ----- DTOs from Controller -----

type CheckoutItemIn struct {
	MenuItemID uint    `json:"id" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	Price      float64 `json:"price"`
	// Customization is the client-rendered description; ignored when
	// Customizations is present and the server prices the line itself.
	Customization  string       `json:"customization"`
	Customizations map[uint]int `json:"customizations"`
}

type CheckoutReq struct {
	CustomerName     string           `json:"customerName" binding:"required"`
	Items            []CheckoutItemIn `json:"items" binding:"required,min=1"`
	Total            float64          `json:"total"`
	Notes            string           `json:"notes"`
	Tip              float64          `json:"tip"`
	DiscountCodeID   *uint            `json:"discountCodeId"`
	DiscountAmount   float64          `json:"discountAmount"`
	DeliveryType     string           `json:"deliveryType"`
	DeliveryLocation string           `json:"deliveryLocation"`
	PaymentMethod    string           `json:"paymentMethod"`
	CouponCode       string           `json:"couponCode"`
	UnlockCode       string           `json:"unlockCode"`
	PhoneNumber      *string          `json:"phoneNumber"`
	GpsLat           *float64         `json:"gpsLat"`
	GpsLng           *float64         `json:"gpsLng"`
}

type CheckoutRes struct {
	OrderID uint    `json:"orderId"`
	Total   float64 `json:"total"`
}

// Checkout runs the full order-creation path: coupon resolution, the cash
// unlock gate, line pricing, and a single transaction for the order plus its
// items. Nothing is persisted when the unlock code fails.
func (s *OrderService) Checkout(req *CheckoutReq) (*CheckoutRes, error) {
	method := req.PaymentMethod
	if method == "" {
		method = entity.MethodCash
	}

	// Coupon: a resolvable code supersedes whatever discount values the
	// client sent along.
	discountCodeID := req.DiscountCodeID
	discountAmount := req.DiscountAmount
	var couponCode *string
	if req.CouponCode != "" {
		d, err := s.Discounts.Validate(req.CouponCode)
		if err != nil {
			return nil, err
		}
		if d != nil {
			discountCodeID = &d.ID
			discountAmount = s.Discounts.Amount(d, req.Total)
			upper := strings.ToUpper(req.CouponCode)
			couponCode = &upper
		}
	}

	status := entity.StatusPending
	if entity.ElectronicMethod(method) {
		status = entity.StatusAwaitingPayment
	} else if method == entity.MethodCash {
		configured, err := s.ConfigRepo.Get(entity.ConfigCashUnlockCode, entity.DefaultCashUnlockCode)
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(req.UnlockCode, configured) {
			return nil, ErrUnlockCode
		}
	}

	lines, err := s.priceLines(req.Items)
	if err != nil {
		return nil, err
	}

	var out CheckoutRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			CustomerName:     req.CustomerName,
			TotalPrice:       req.Total,
			TipAmount:        req.Tip,
			DiscountAmount:   discountAmount,
			DiscountCodeID:   discountCodeID,
			CouponCode:       couponCode,
			Notes:            req.Notes,
			DeliveryType:     req.DeliveryType,
			DeliveryLocation: req.DeliveryLocation,
			PhoneNumber:      req.PhoneNumber,
			GpsLat:           req.GpsLat,
			GpsLng:           req.GpsLng,
			PaymentMethod:    method,
			PaymentStatus:    entity.PaymentUnpaid,
			Status:           status,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, line := range lines {
			line.OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &line); err != nil {
				return err
			}
		}
		out = CheckoutRes{OrderID: order.ID, Total: order.TotalPrice}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"orderId": out.OrderID,
		"method":  method,
		"status":  status,
	}).Info("order created")
	return &out, nil
}

// priceLines turns checkout items into order rows. Lines carrying structured
// counts are priced server-side against the recipe baseline; the rest keep
// the client's price snapshot verbatim.
func (s *OrderService) priceLines(items []CheckoutItemIn) ([]entity.OrderItem, error) {
	out := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		m, err := s.MenuRepo.FindByID(it.MenuItemID)
		if err != nil {
			return nil, errors.New("menu item not found")
		}

		price := it.Price
		custom := it.Customization
		if it.Customizations != nil {
			recipe, err := s.MenuRepo.GetRecipe(m.ID)
			if err != nil {
				return nil, err
			}
			baseline := make(map[uint]int, len(recipe))
			for _, row := range recipe {
				baseline[row.IngredientID] = row.Quantity
			}
			names, err := s.ingredientNames()
			if err != nil {
				return nil, err
			}
			price = m.Price + Surcharge(baseline, it.Customizations)
			custom = BuildCustomization(baseline, it.Customizations, names)
		} else if price == 0 {
			price = m.Price
		}

		out = append(out, entity.OrderItem{
			MenuItemID:           m.ID,
			Quantity:             it.Quantity,
			ItemPriceAtTime:      price,
			CustomizationDetails: custom,
		})
	}
	return out, nil
}

func (s *OrderService) ingredientNames() (map[uint]string, error) {
	all, err := s.IngRepo.ListAll()
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(all))
	for _, ing := range all {
		names[ing.ID] = ing.Name
	}
	return names, nil
}

func (s *OrderService) ListUnpaid() ([]entity.Order, error) {
	return s.Repo.ListUnpaid()
}
