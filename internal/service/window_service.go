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

type WindowService struct {
	windowRepo  *repository.WindowRepository
	roomRepo    *repository.RoomRepository
	projectRepo *repository.ProjectRepository
	logger      *zap.Logger
}

func NewWindowService(
	windowRepo *repository.WindowRepository,
	roomRepo *repository.RoomRepository,
	projectRepo *repository.ProjectRepository,
	logger *zap.Logger,
) *WindowService {
	return &WindowService{
		windowRepo:  windowRepo,
		roomRepo:    roomRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Create adds a window to a room. PannaCount and Meters are derived from the
// submitted width and height server-side; any caller-supplied values are
// ignored so the stored figures always match the formulas. The window number
// is assigned atomically within the room and never reused.
func (s *WindowService) Create(ctx context.Context, req *domain.CreateWindowRequest) (*domain.WindowDTO, error) {
	room, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	project, err := s.projectRepo.GetByID(ctx, room.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotInProject
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	trackCount := 1
	if req.TrackCount != nil {
		trackCount = *req.TrackCount
	}

	window := &domain.Window{
		RoomID:             req.RoomID,
		Style:              req.Style,
		Width:              req.Width,
		Height:             req.Height,
		PannaCount:         pricing.PannaCount(req.Width),
		Meters:             pricing.Meters(req.Width, req.Height),
		FabricCostPerMeter: req.FabricCostPerMeter,
		TrackCount:         trackCount,
		HookCount:          req.HookCount,
	}

	if err := s.windowRepo.CreateNumbered(ctx, window); err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	s.logger.Info("window created",
		zap.String("window_id", window.ID.String()),
		zap.String("room_id", room.ID.String()),
		zap.Int("window_number", window.WindowNumber),
	)

	cost := pricing.WindowCost(measurementsOf(window), ratesOf(project))
	dto := mapper.ToWindowDTO(window, cost)
	return &dto, nil
}

func (s *WindowService) GetByID(ctx context.Context, id uuid.UUID) (*domain.WindowDTO, error) {
	window, err := s.windowRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get window: %w", err)
	}

	project, err := s.projectRepo.GetByID(ctx, window.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	cost := pricing.WindowCost(measurementsOf(window), ratesOf(project))
	dto := mapper.ToWindowDTO(window, cost)
	return &dto, nil
}

func (s *WindowService) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.WindowDTO, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	project, err := s.projectRepo.GetByID(ctx, room.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotInProject
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	rates := ratesOf(project)
	dtos := make([]domain.WindowDTO, len(room.Windows))
	for i := range room.Windows {
		cost := pricing.WindowCost(measurementsOf(&room.Windows[i]), rates)
		dtos[i] = mapper.ToWindowDTO(&room.Windows[i], cost)
	}
	return dtos, nil
}
