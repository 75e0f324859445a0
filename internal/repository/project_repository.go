package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/furnishhq/quotation-api/internal/domain"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// CreateWithCustomer creates a project and, when customer is non-nil, the
// inline customer in the same transaction.
func (r *ProjectRepository) CreateWithCustomer(ctx context.Context, project *domain.Project, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if customer != nil {
			if err := tx.Create(customer).Error; err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}
			project.CustomerID = customer.ID
		}
		if err := tx.Create(project).Error; err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		return nil
	})
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	query := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("SalesPerson").
		Preload("Tailor").
		Where("id = ?", id)
	query = ApplyUserScope(ctx, query)
	err := query.First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByIDWithRooms loads a project with its full room and window tree,
// windows ordered by window_number within each room.
func (r *ProjectRepository) GetByIDWithRooms(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	query := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("SalesPerson").
		Preload("Tailor").
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("rooms.created_at ASC")
		}).
		Preload("Rooms.Windows", func(db *gorm.DB) *gorm.DB {
			return db.Order("windows.window_number ASC")
		}).
		Where("id = ?", id)
	query = ApplyUserScope(ctx, query)
	err := query.First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes a project and all of its rooms and windows in one
// transaction. The child deletes are explicit so the behavior does not
// depend on database-level cascade support.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&domain.Window{}).Error; err != nil {
			return fmt.Errorf("failed to delete windows: %w", err)
		}
		if err := tx.Where("project_id = ?", id).Delete(&domain.Room{}).Error; err != nil {
			return fmt.Errorf("failed to delete rooms: %w", err)
		}
		if err := tx.Delete(&domain.Project{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		return nil
	})
}

// ProjectListFilter narrows List results
type ProjectListFilter struct {
	Status     domain.ProjectStatus
	CustomerID *uuid.UUID
	Search     string
}

var projectSortFields = map[string]string{
	"createdAt":       "projects.created_at",
	"updatedAt":       "projects.updated_at",
	"quotationNumber": "projects.quotation_number",
	"status":          "projects.status",
}

func (r *ProjectRepository) List(ctx context.Context, page, pageSize int, filter ProjectListFilter, sort SortConfig) ([]domain.Project, int64, error) {
	var projects []domain.Project
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Project{})
	// Qualified scope: the search branch joins customers, which also has a
	// user_id column.
	query = ApplyUserScopeWithAlias(ctx, query, "projects")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.
			Joins("JOIN customers ON customers.id = projects.customer_id").
			Where("LOWER(customers.name) LIKE ? OR LOWER(projects.quotation_number) LIKE ?", searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := BuildOrderClause(sort, projectSortFields, "projects.created_at DESC")
	offset := (page - 1) * pageSize
	err := query.
		Preload("Customer").
		Preload("SalesPerson").
		Preload("Rooms.Windows").
		Offset(offset).Limit(pageSize).
		Order(orderClause).
		Find(&projects).Error

	return projects, total, err
}

// CountByStatus returns per-status project counts for the user's dashboard
func (r *ProjectRepository) CountByStatus(ctx context.Context) (map[domain.ProjectStatus]int64, error) {
	type row struct {
		Status domain.ProjectStatus
		Count  int64
	}
	var rows []row
	query := r.db.WithContext(ctx).Model(&domain.Project{}).
		Select("status, COUNT(*) as count").
		Group("status")
	query = ApplyUserScope(ctx, query)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[domain.ProjectStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

// DeleteEmptyDraftsBefore removes draft projects with no rooms that have not
// been touched since the cutoff. Used by the cleanup job.
func (r *ProjectRepository) DeleteEmptyDraftsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ?", domain.ProjectStatusDraft).
		Where("updated_at < ?", cutoff).
		Where("NOT EXISTS (SELECT 1 FROM rooms WHERE rooms.project_id = projects.id)").
		Delete(&domain.Project{})
	return result.RowsAffected, result.Error
}
