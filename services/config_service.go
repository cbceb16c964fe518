package services

import (
	"strconv"

	"github.com/andyrob2215/AAASmores/entity"
	"github.com/andyrob2215/AAASmores/repository"

	"gorm.io/gorm"
)

type ConfigService struct {
	DB   *gorm.DB
	Repo *repository.ConfigRepository
}

func NewConfigService(db *gorm.DB, repo *repository.ConfigRepository) *ConfigService {
	return &ConfigService{DB: db, Repo: repo}
}

// SiteSettings is the public config payload.
type SiteSettings struct {
	DeliveriesEnabled  bool    `json:"deliveries_enabled"`
	CashUnlockCode     string  `json:"cash_unlock_code"`
	HeroBackgroundURL  *string `json:"hero_background_url"`
	HeroBackgroundType *string `json:"hero_background_type"`
}

// Get reads all settings, filling defaults for keys never written.
func (s *ConfigService) Get() (*SiteSettings, error) {
	raw, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}

	out := &SiteSettings{
		DeliveriesEnabled: true,
		CashUnlockCode:    entity.DefaultCashUnlockCode,
	}
	if v, ok := raw[entity.ConfigDeliveriesEnabled]; ok {
		out.DeliveriesEnabled = v == "true"
	}
	if v, ok := raw[entity.ConfigCashUnlockCode]; ok {
		out.CashUnlockCode = v
	}
	if v, ok := raw[entity.ConfigHeroBackgroundURL]; ok && v != "" {
		out.HeroBackgroundURL = &v
	}
	if v, ok := raw[entity.ConfigHeroBackgroundType]; ok && v != "" {
		out.HeroBackgroundType = &v
	}
	return out, nil
}

// UpdateReq carries partial settings; nil fields are left alone.
type UpdateReq struct {
	DeliveriesEnabled *bool   `json:"deliveries_enabled"`
	CashUnlockCode    *string `json:"cash_unlock_code"`
}

func (s *ConfigService) Update(req *UpdateReq) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if req.DeliveriesEnabled != nil {
			v := strconv.FormatBool(*req.DeliveriesEnabled)
			if err := s.Repo.Upsert(tx, entity.ConfigDeliveriesEnabled, v); err != nil {
				return err
			}
		}
		if req.CashUnlockCode != nil {
			if err := s.Repo.Upsert(tx, entity.ConfigCashUnlockCode, *req.CashUnlockCode); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetHeroBackground stores the uploaded background URL and kind together.
func (s *ConfigService) SetHeroBackground(url, kind string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Upsert(tx, entity.ConfigHeroBackgroundURL, url); err != nil {
			return err
		}
		return s.Repo.Upsert(tx, entity.ConfigHeroBackgroundType, kind)
	})
}
