package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/furnishhq/quotation-api/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).
		Preload("Windows", func(db *gorm.DB) *gorm.DB {
			return db.Order("windows.window_number ASC")
		}).
		Where("id = ?", id).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.WithContext(ctx).
		Preload("Windows", func(db *gorm.DB) *gorm.DB {
			return db.Order("windows.window_number ASC")
		}).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&rooms).Error
	return rooms, err
}
