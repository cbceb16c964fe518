package services

import (
	"fmt"
	"testing"

	"github.com/andyrob2215/AAASmores/entity"
	"github.com/andyrob2215/AAASmores/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// unique shared-cache DSN so every pooled connection sees the same
	// in-memory database, isolated per test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite failed")

	err = db.AutoMigrate(
		&entity.StaffUser{},
		&entity.Ingredient{}, &entity.MenuItem{}, &entity.RecipeItem{},
		&entity.DiscountCode{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.SiteConfig{},
		&entity.Review{}, &entity.Feedback{},
	)
	require.NoError(t, err, "migrate failed")
	return db
}

func newOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		repository.NewIngredientRepository(db),
		repository.NewConfigRepository(db),
		repository.NewDiscountRepository(db),
	)
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64) entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{Name: name, Price: price, ManualAvailability: true, IsVisible: true}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func seedUnlockCode(t *testing.T, db *gorm.DB, code string) {
	t.Helper()
	require.NoError(t, db.Create(&entity.SiteConfig{
		ConfigKey:   entity.ConfigCashUnlockCode,
		ConfigValue: code,
	}).Error)
}
