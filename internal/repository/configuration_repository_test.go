package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/furnishhq/quotation-api/internal/database"
	"github.com/furnishhq/quotation-api/internal/domain"
)

func TestConfigurationGetOrInitCreatesDefaults(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	repo := NewConfigurationRepository(db)
	userID := uuid.New()

	cfg, err := repo.GetOrInit(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMakingRate, cfg.RateCard.MakingRate)
	assert.Equal(t, domain.DefaultHookRate, cfg.RateCard.HookRate)

	again, err := repo.GetOrInit(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, again.ID)
}

// A concurrent first read can insert the configuration between our not-found
// lookup and our insert; the loser must return the winner's row, via a fresh
// query rather than the failed insert's transaction.
func TestConfigurationGetOrInitLostRaceReturnsWinner(t *testing.T) {
	db, err := gorm.Open(
		sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{SkipDefaultTransaction: true},
	)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	repo := NewConfigurationRepository(db)
	userID := uuid.New()

	// Sneak a competing row in just before the repository's own insert runs,
	// so the insert fails on the user_id unique index.
	winner := domain.Configuration{
		UserID: userID,
		RateCard: domain.RateCard{
			MakingRate:  555,
			FittingRate: domain.DefaultFittingRate,
			TrackRate:   domain.DefaultTrackRate,
			HookRate:    domain.DefaultHookRate,
		},
		TermsAndConditions: "winner's terms",
	}
	raced := false
	err = db.Callback().Create().Before("gorm:create").Register("test:competing_insert", func(tx *gorm.DB) {
		if raced || tx.Statement.Table != "configurations" {
			return
		}
		raced = true
		require.NoError(t, db.Session(&gorm.Session{NewDB: true}).Create(&winner).Error)
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Callback().Create().Remove("test:competing_insert")
	})

	cfg, err := repo.GetOrInit(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, raced)
	assert.Equal(t, winner.ID, cfg.ID)
	assert.Equal(t, 555.0, cfg.RateCard.MakingRate)
	assert.Equal(t, "winner's terms", cfg.TermsAndConditions)
}
