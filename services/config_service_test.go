package services

import (
	"testing"

	"github.com/andyrob2215/AAASmores/entity"
	"github.com/andyrob2215/AAASmores/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigGet_Defaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewConfigService(db, repository.NewConfigRepository(db))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.True(t, settings.DeliveriesEnabled)
	assert.Equal(t, entity.DefaultCashUnlockCode, settings.CashUnlockCode)
	assert.Nil(t, settings.HeroBackgroundURL)
	assert.Nil(t, settings.HeroBackgroundType)
}

func TestConfigUpdate_PartialUpsert(t *testing.T) {
	db := newTestDB(t)
	svc := NewConfigService(db, repository.NewConfigRepository(db))

	off := false
	require.NoError(t, svc.Update(&UpdateReq{DeliveriesEnabled: &off}))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.False(t, settings.DeliveriesEnabled)
	// untouched key keeps its default
	assert.Equal(t, entity.DefaultCashUnlockCode, settings.CashUnlockCode)

	code := "newsecret"
	require.NoError(t, svc.Update(&UpdateReq{CashUnlockCode: &code}))
	require.NoError(t, svc.Update(&UpdateReq{CashUnlockCode: &code})) // upsert, not insert

	settings, err = svc.Get()
	require.NoError(t, err)
	assert.False(t, settings.DeliveriesEnabled)
	assert.Equal(t, "newsecret", settings.CashUnlockCode)
}

func TestConfigSetHeroBackground(t *testing.T) {
	db := newTestDB(t)
	svc := NewConfigService(db, repository.NewConfigRepository(db))

	require.NoError(t, svc.SetHeroBackground("/uploads/fire.mp4", "video"))

	settings, err := svc.Get()
	require.NoError(t, err)
	require.NotNil(t, settings.HeroBackgroundURL)
	assert.Equal(t, "/uploads/fire.mp4", *settings.HeroBackgroundURL)
	require.NotNil(t, settings.HeroBackgroundType)
	assert.Equal(t, "video", *settings.HeroBackgroundType)

	// replacing swaps both keys together
	require.NoError(t, svc.SetHeroBackground("/uploads/camp.jpg", "image"))
	settings, err = svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "/uploads/camp.jpg", *settings.HeroBackgroundURL)
	assert.Equal(t, "image", *settings.HeroBackgroundType)
}
