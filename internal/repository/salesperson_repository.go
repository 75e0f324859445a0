package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/furnishhq/quotation-api/internal/domain"
)

type SalesPersonRepository struct {
	db *gorm.DB
}

func NewSalesPersonRepository(db *gorm.DB) *SalesPersonRepository {
	return &SalesPersonRepository{db: db}
}

func (r *SalesPersonRepository) Create(ctx context.Context, sp *domain.SalesPerson) error {
	return r.db.WithContext(ctx).Create(sp).Error
}

func (r *SalesPersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SalesPerson, error) {
	var sp domain.SalesPerson
	query := r.db.WithContext(ctx).Where("id = ?", id)
	query = ApplyUserScope(ctx, query)
	err := query.First(&sp).Error
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

// NameExists reports whether the user already has a sales person with the
// name, excluding the given id (uuid.Nil for creates).
func (r *SalesPersonRepository) NameExists(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.SalesPerson{}).
		Where("LOWER(name) = LOWER(?)", name)
	query = ApplyUserScope(ctx, query)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *SalesPersonRepository) Update(ctx context.Context, sp *domain.SalesPerson) error {
	return r.db.WithContext(ctx).Save(sp).Error
}

func (r *SalesPersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := ApplyUserScope(ctx, r.db.WithContext(ctx))
	return query.Delete(&domain.SalesPerson{}, "id = ?", id).Error
}

// List returns the user's sales persons, active ones first
func (r *SalesPersonRepository) List(ctx context.Context, includeInactive bool) ([]domain.SalesPerson, error) {
	var persons []domain.SalesPerson
	query := r.db.WithContext(ctx).Model(&domain.SalesPerson{})
	query = ApplyUserScope(ctx, query)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("is_active DESC, name ASC").Find(&persons).Error
	return persons, err
}

// GetProjectsCount returns the number of projects assigned to a sales person
func (r *SalesPersonRepository) GetProjectsCount(ctx context.Context, salesPersonID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Project{}).
		Where("sales_person_id = ?", salesPersonID).
		Count(&count).Error
	return int(count), err
}
