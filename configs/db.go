package configs

import (
	"github.com/andyrob2215/AAASmores/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the database named by the config. Dev and tests run on
// sqlite; production runs on postgres like the stand's original install.
func ConnectionDB(cfg *Config) error {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.StaffUser{},
		&entity.Ingredient{}, &entity.MenuItem{}, &entity.RecipeItem{},
		&entity.DiscountCode{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.SiteConfig{},
		&entity.Review{}, &entity.Feedback{},
	)
}
