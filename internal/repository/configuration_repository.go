package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/furnishhq/quotation-api/internal/domain"
)

type ConfigurationRepository struct {
	db *gorm.DB
}

func NewConfigurationRepository(db *gorm.DB) *ConfigurationRepository {
	return &ConfigurationRepository{db: db}
}

// GetOrInit returns the user's configuration, creating it with system
// defaults on first access. The unique index on user_id arbitrates
// concurrent first reads; the loser re-reads the winner's row.
func (r *ConfigurationRepository) GetOrInit(ctx context.Context, userID uuid.UUID) (*domain.Configuration, error) {
	var cfg domain.Configuration

	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cfg).Error
	if err == nil {
		return &cfg, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}

	cfg = domain.Configuration{
		UserID: userID,
		RateCard: domain.RateCard{
			MakingRate:  domain.DefaultMakingRate,
			FittingRate: domain.DefaultFittingRate,
			TrackRate:   domain.DefaultTrackRate,
			HookRate:    domain.DefaultHookRate,
		},
		TermsAndConditions: domain.DefaultTermsAndConditions,
	}

	if createErr := r.db.WithContext(ctx).Create(&cfg).Error; createErr != nil {
		// Lost the race against a concurrent first read; use theirs. The
		// lookup runs on a fresh query, not inside the failed insert's
		// transaction, which postgres would have aborted.
		var existing domain.Configuration
		if lookupErr := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error; lookupErr == nil {
			return &existing, nil
		}
		return nil, fmt.Errorf("failed to create configuration: %w", createErr)
	}

	return &cfg, nil
}

func (r *ConfigurationRepository) Update(ctx context.Context, cfg *domain.Configuration) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}
