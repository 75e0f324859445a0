package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/furnishhq/quotation-api/internal/domain"
)

type WindowRepository struct {
	db *gorm.DB
}

func NewWindowRepository(db *gorm.DB) *WindowRepository {
	return &WindowRepository{db: db}
}

// CreateNumbered assigns the next window number within the room and inserts
// the window in one transaction. The room row is locked so two concurrent
// inserts into the same room cannot pick the same number. Numbers are never
// reused or renumbered afterwards.
func (r *WindowRepository) CreateNumbered(ctx context.Context, window *domain.Window) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room domain.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", window.RoomID).
			First(&room).Error; err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		var count int64
		if err := tx.Model(&domain.Window{}).
			Where("room_id = ?", window.RoomID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count windows: %w", err)
		}

		window.ProjectID = room.ProjectID
		window.WindowNumber = int(count) + 1

		if err := tx.Create(window).Error; err != nil {
			return fmt.Errorf("failed to create window: %w", err)
		}
		return nil
	})
}

func (r *WindowRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Window, error) {
	var window domain.Window
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&window).Error
	if err != nil {
		return nil, err
	}
	return &window, nil
}

func (r *WindowRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.Window, error) {
	var windows []domain.Window
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("window_number ASC").
		Find(&windows).Error
	return windows, err
}

func (r *WindowRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Window, error) {
	var windows []domain.Window
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("window_number ASC").
		Find(&windows).Error
	return windows, err
}
