package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnishhq/quotation-api/internal/domain"
)

func TestConfigurationGetInitializesDefaults(t *testing.T) {
	env := newTestEnv(t)

	cfg, err := env.configuration.Get(env.ctx)
	require.NoError(t, err)

	assert.Equal(t, 180.0, cfg.DefaultMakingRate)
	assert.Equal(t, 300.0, cfg.DefaultFittingRate)
	assert.Equal(t, 180.0, cfg.DefaultTrackRate)
	assert.Equal(t, 200.0, cfg.DefaultHookRate)
	assert.Equal(t, domain.DefaultTermsAndConditions, cfg.TermsAndConditions)

	// Second read returns the same record, not a new one
	again, err := env.configuration.Get(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, again.ID)
}

func TestConfigurationUpdate(t *testing.T) {
	env := newTestEnv(t)

	making := 220.0
	name := "Meena Furnishings"
	gst := "29ABCDE1234F1Z5"
	updated, err := env.configuration.Update(env.ctx, &domain.UpdateConfigurationRequest{
		DefaultMakingRate: &making,
		CompanyName:       &name,
		GSTNumber:         &gst,
	})
	require.NoError(t, err)

	assert.Equal(t, 220.0, updated.DefaultMakingRate)
	// Untouched fields keep their defaults
	assert.Equal(t, 300.0, updated.DefaultFittingRate)
	assert.Equal(t, "Meena Furnishings", updated.CompanyName)
	assert.Equal(t, gst, updated.GSTNumber)
}

func TestConfigurationIsPerUser(t *testing.T) {
	env := newTestEnv(t)
	otherCtx := env.secondUserCtx(t)

	making := 999.0
	_, err := env.configuration.Update(env.ctx, &domain.UpdateConfigurationRequest{
		DefaultMakingRate: &making,
	})
	require.NoError(t, err)

	otherCfg, err := env.configuration.Get(otherCtx)
	require.NoError(t, err)
	assert.Equal(t, 180.0, otherCfg.DefaultMakingRate)
}

func TestUploadLogoRejectsUnsupportedType(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.configuration.UploadLogo(env.ctx, "logo.gif", "image/gif", []byte{0x47})
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
}

func TestUploadLogoAcceptsWebP(t *testing.T) {
	env := newTestEnv(t)

	cfg, err := env.configuration.UploadLogo(env.ctx, "logo.webp", "image/webp", []byte("RIFF....WEBP"))
	require.NoError(t, err)
	assert.Contains(t, cfg.CompanyLogo, "logo.webp")
}

func TestUploadLogoStoresPath(t *testing.T) {
	env := newTestEnv(t)

	cfg, err := env.configuration.UploadLogo(env.ctx, "logo.png", "image/png", []byte{0x89, 0x50, 0x4e, 0x47})
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.CompanyLogo)
	assert.Contains(t, cfg.CompanyLogo, "logos/")
}
