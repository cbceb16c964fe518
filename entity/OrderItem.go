package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity        int     `json:"quantity"`
	ItemPriceAtTime float64 `json:"item_price_at_time"`

	// Free-text kitchen description; prefixed "CUSTOM: " when the line
	// deviates from the recipe baseline.
	CustomizationDetails string `json:"customization_details"`

	OrderID uint  `json:"order_id"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menu_item_id"`
	MenuItem   MenuItem `json:"-"` // preload when the item name is needed
}
