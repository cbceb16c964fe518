package configs

import (
	"github.com/andyrob2215/AAASmores/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// SeedStaff creates the first staff login from env. Skipped when the
// credentials are absent or the user already exists.
func SeedStaff() error {
	db := DB()
	username := getEnv("STAFF_USERNAME", "")
	pass := getEnv("STAFF_PASSWORD", "")
	if username == "" || pass == "" {
		logrus.Warn("skip seeding staff: missing STAFF_USERNAME/STAFF_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.StaffUser{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		logrus.WithField("username", username).Info("staff user already exists")
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	staff := entity.StaffUser{
		Username: username,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&staff).Error
}

// SeedConfig writes default site settings for keys that have never been set.
func SeedConfig() error {
	db := DB()

	defaults := map[string]string{
		entity.ConfigDeliveriesEnabled: "true",
		entity.ConfigCashUnlockCode:    entity.DefaultCashUnlockCode,
	}
	for key, value := range defaults {
		row := entity.SiteConfig{ConfigKey: key, ConfigValue: value}
		if err := db.Where(entity.SiteConfig{ConfigKey: key}).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	logrus.Info("site config defaults seeded")
	return nil
}
