package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/furnishhq/quotation-api/internal/domain"
	"github.com/furnishhq/quotation-api/internal/mapper"
	"github.com/furnishhq/quotation-api/internal/pricing"
	"github.com/furnishhq/quotation-api/internal/repository"
)

type RoomService struct {
	roomRepo    *repository.RoomRepository
	projectRepo *repository.ProjectRepository
	logger      *zap.Logger
}

func NewRoomService(
	roomRepo *repository.RoomRepository,
	projectRepo *repository.ProjectRepository,
	logger *zap.Logger,
) *RoomService {
	return &RoomService{
		roomRepo:    roomRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// ownedProject loads a project only if the authenticated user owns it.
// Rooms and windows carry no user_id of their own; ownership is always
// derived through the project.
func (s *RoomService) ownedProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// Create adds a room to a project. The same room type may appear multiple
// times; rooms are distinguished by creation order.
func (s *RoomService) Create(ctx context.Context, req *domain.CreateRoomRequest) (*domain.RoomDTO, error) {
	if _, err := s.ownedProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	room := &domain.Room{
		ProjectID: req.ProjectID,
		RoomType:  req.RoomType,
		Notes:     req.Notes,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	dto := mapper.ToRoomDTO(room, nil, pricing.Summary{})
	return &dto, nil
}

func (s *RoomService) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoomDTO, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	project, err := s.ownedProject(ctx, room.ProjectID)
	if err != nil {
		return nil, ErrRoomNotInProject
	}

	dto := s.toDTO(room, project)
	return &dto, nil
}

func (s *RoomService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.RoomDTO, error) {
	project, err := s.ownedProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	dtos := make([]domain.RoomDTO, len(rooms))
	for i := range rooms {
		dtos[i] = s.toDTO(&rooms[i], project)
	}
	return dtos, nil
}

func (s *RoomService) toDTO(room *domain.Room, project *domain.Project) domain.RoomDTO {
	rates := ratesOf(project)

	windowDTOs := make([]domain.WindowDTO, len(room.Windows))
	var totals pricing.Summary
	for i := range room.Windows {
		cost := pricing.WindowCost(measurementsOf(&room.Windows[i]), rates)
		totals.Add(cost)
		windowDTOs[i] = mapper.ToWindowDTO(&room.Windows[i], cost)
	}

	return mapper.ToRoomDTO(room, windowDTOs, totals)
}
