package repository

import (
	"errors"

	"github.com/andyrob2215/AAASmores/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigRepository struct {
	DB *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{DB: db}
}

// GetAll returns every config row as a map.
func (r *ConfigRepository) GetAll() (map[string]string, error) {
	var rows []entity.SiteConfig
	if err := r.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.ConfigKey] = row.ConfigValue
	}
	return out, nil
}

// Get returns one value, or fallback when the key was never written.
func (r *ConfigRepository) Get(key, fallback string) (string, error) {
	var row entity.SiteConfig
	err := r.DB.Where("config_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	return row.ConfigValue, nil
}

// Upsert writes a key, replacing any existing value.
func (r *ConfigRepository) Upsert(tx *gorm.DB, key, value string) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"config_value"}),
	}).Create(&entity.SiteConfig{ConfigKey: key, ConfigValue: value}).Error
}
