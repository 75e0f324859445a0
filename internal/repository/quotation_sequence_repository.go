package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/furnishhq/quotation-api/internal/domain"
)

// QuotationSequenceRepository backs quotation number generation. One counter
// row per user, incremented under a row lock, never reset.
type QuotationSequenceRepository struct {
	db *gorm.DB
}

func NewQuotationSequenceRepository(db *gorm.DB) *QuotationSequenceRepository {
	return &QuotationSequenceRepository{db: db}
}

// NextSequence atomically increments and returns the user's sequence.
// Uses SELECT FOR UPDATE so concurrent project creations cannot observe
// the same value. Creates the counter row on first use.
func (r *QuotationSequenceRepository) NextSequence(ctx context.Context, userID uuid.UUID) (int, error) {
	var seq domain.QuotationSequence
	var next int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&seq)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			seq = domain.QuotationSequence{
				UserID:       userID,
				LastSequence: 1,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}
			if err := tx.Create(&seq).Error; err != nil {
				return fmt.Errorf("failed to create quotation sequence: %w", err)
			}
			next = 1
			return nil
		}
		if result.Error != nil {
			return fmt.Errorf("failed to get quotation sequence: %w", result.Error)
		}

		next = seq.LastSequence + 1
		if err := tx.Model(&seq).Updates(map[string]interface{}{
			"last_sequence": next,
			"updated_at":    time.Now(),
		}).Error; err != nil {
			return fmt.Errorf("failed to update quotation sequence: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return next, nil
}

// CurrentSequence returns the last used sequence without incrementing.
// Returns 0 when the user has never generated a quotation number.
func (r *QuotationSequenceRepository) CurrentSequence(ctx context.Context, userID uuid.UUID) (int, error) {
	var seq domain.QuotationSequence
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&seq)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if result.Error != nil {
		return 0, fmt.Errorf("failed to get quotation sequence: %w", result.Error)
	}
	return seq.LastSequence, nil
}

// SetSequence moves the counter forward to value, for migrating accounts
// with existing numbered quotations. Never lowers the counter.
func (r *QuotationSequenceRepository) SetSequence(ctx context.Context, userID uuid.UUID, value int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq domain.QuotationSequence
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&seq)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			seq = domain.QuotationSequence{
				UserID:       userID,
				LastSequence: value,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}
			if err := tx.Create(&seq).Error; err != nil {
				return fmt.Errorf("failed to create quotation sequence: %w", err)
			}
			return nil
		}
		if result.Error != nil {
			return fmt.Errorf("failed to get quotation sequence: %w", result.Error)
		}

		if value > seq.LastSequence {
			if err := tx.Model(&seq).Updates(map[string]interface{}{
				"last_sequence": value,
				"updated_at":    time.Now(),
			}).Error; err != nil {
				return fmt.Errorf("failed to update quotation sequence: %w", err)
			}
		}
		return nil
	})
}
