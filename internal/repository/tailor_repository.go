package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/furnishhq/quotation-api/internal/domain"
)

type TailorRepository struct {
	db *gorm.DB
}

func NewTailorRepository(db *gorm.DB) *TailorRepository {
	return &TailorRepository{db: db}
}

func (r *TailorRepository) Create(ctx context.Context, tailor *domain.Tailor) error {
	return r.db.WithContext(ctx).Create(tailor).Error
}

func (r *TailorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tailor, error) {
	var tailor domain.Tailor
	query := r.db.WithContext(ctx).Where("id = ?", id)
	query = ApplyUserScope(ctx, query)
	err := query.First(&tailor).Error
	if err != nil {
		return nil, err
	}
	return &tailor, nil
}

// NameExists reports whether the user already has a tailor with the name,
// excluding the given id (uuid.Nil for creates).
func (r *TailorRepository) NameExists(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Tailor{}).
		Where("LOWER(name) = LOWER(?)", name)
	query = ApplyUserScope(ctx, query)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *TailorRepository) Update(ctx context.Context, tailor *domain.Tailor) error {
	return r.db.WithContext(ctx).Save(tailor).Error
}

func (r *TailorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := ApplyUserScope(ctx, r.db.WithContext(ctx))
	return query.Delete(&domain.Tailor{}, "id = ?", id).Error
}

// List returns the user's tailors, active ones first
func (r *TailorRepository) List(ctx context.Context, includeInactive bool) ([]domain.Tailor, error) {
	var tailors []domain.Tailor
	query := r.db.WithContext(ctx).Model(&domain.Tailor{})
	query = ApplyUserScope(ctx, query)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("is_active DESC, name ASC").Find(&tailors).Error
	return tailors, err
}
