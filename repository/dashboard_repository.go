package repository

import (
	"time"

	"github.com/andyrob2215/AAASmores/entity"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	DB *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

// DashboardItem is one kitchen line on an order card.
type DashboardItem struct {
	Name   string `json:"name"`
	Qty    int    `json:"qty"`
	Custom string `json:"custom"`
}

// DashboardOrder is an order plus its item lines as the dashboard renders them.
type DashboardOrder struct {
	entity.Order
	Items []DashboardItem `json:"items"`
}

// ListAwaitingPayment feeds the "confirm payment" column, oldest first.
func (r *DashboardRepository) ListAwaitingPayment() ([]DashboardOrder, error) {
	var orders []entity.Order
	if err := r.DB.
		Where("status = ?", entity.StatusAwaitingPayment).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return r.withItems(orders)
}

// ListActive feeds the kitchen column: pending work plus completed orders
// still waiting at the counter, ready ones surfaced first.
func (r *DashboardRepository) ListActive() ([]DashboardOrder, error) {
	var orders []entity.Order
	if err := r.DB.
		Where("status = ?", entity.StatusPending).
		Or("status = ? AND picked_up = ?", entity.StatusCompleted, false).
		Order("CASE WHEN status = 'completed' THEN 1 ELSE 2 END ASC, created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return r.withItems(orders)
}

// ListHistory returns the most recent closed orders.
func (r *DashboardRepository) ListHistory(limit int) ([]DashboardOrder, error) {
	if limit <= 0 {
		limit = 50
	}
	var orders []entity.Order
	if err := r.DB.
		Where("status = ?", entity.StatusCancelled).
		Or("status = ? AND picked_up = ?", entity.StatusCompleted, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return r.withItems(orders)
}

func (r *DashboardRepository) withItems(orders []entity.Order) ([]DashboardOrder, error) {
	out := make([]DashboardOrder, 0, len(orders))
	for _, o := range orders {
		var rows []struct {
			Name                 string
			Quantity             int
			CustomizationDetails string
		}
		if err := r.DB.Table("order_items AS oi").
			Select("m.name, oi.quantity, oi.customization_details").
			Joins("JOIN menu_items m ON m.id = oi.menu_item_id").
			Where("oi.order_id = ? AND oi.deleted_at IS NULL", o.ID).
			Scan(&rows).Error; err != nil {
			return nil, err
		}
		card := DashboardOrder{Order: o}
		for _, row := range rows {
			card.Items = append(card.Items, DashboardItem{
				Name: row.Name, Qty: row.Quantity, Custom: row.CustomizationDetails,
			})
		}
		out = append(out, card)
	}
	return out, nil
}

// ---------------- Sales rollups ----------------

// SalesSince sums completed-order revenue created at or after the cutoff.
func (r *DashboardRepository) SalesSince(cutoff time.Time) (float64, error) {
	var row struct{ Total *float64 }
	err := r.DB.Model(&entity.Order{}).
		Select("SUM(total_price) AS total").
		Where("status = ? AND created_at >= ?", entity.StatusCompleted, cutoff).
		Scan(&row).Error
	if err != nil || row.Total == nil {
		return 0, err
	}
	return *row.Total, nil
}

// SalesAllTime sums completed-order revenue over the stand's lifetime.
func (r *DashboardRepository) SalesAllTime() (float64, error) {
	var row struct{ Total *float64 }
	err := r.DB.Model(&entity.Order{}).
		Select("SUM(total_price) AS total").
		Where("status = ?", entity.StatusCompleted).
		Scan(&row).Error
	if err != nil || row.Total == nil {
		return 0, err
	}
	return *row.Total, nil
}
