package entity

// Well-known config keys.
const (
	ConfigDeliveriesEnabled  = "deliveries_enabled"
	ConfigCashUnlockCode     = "cash_unlock_code"
	ConfigHeroBackgroundURL  = "hero_background_url"
	ConfigHeroBackgroundType = "hero_background_type"
)

// Defaults applied when a key has never been written.
const (
	DefaultCashUnlockCode = "familycash"
)

// SiteConfig is an upserted key-value row; no gorm.Model, the key is the PK.
type SiteConfig struct {
	ConfigKey   string `gorm:"primaryKey;size:50" json:"config_key"`
	ConfigValue string `json:"config_value"`
}
