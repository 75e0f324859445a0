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

// QuotationService assembles the full recomputed quotation for a project.
// Nothing here reads stored totals: every figure is derived from the live
// window rows under the project's frozen rate card, so a quotation can never
// drift out of sync with its windows.
type QuotationService struct {
	projectRepo *repository.ProjectRepository
	logger      *zap.Logger
}

func NewQuotationService(
	projectRepo *repository.ProjectRepository,
	logger *zap.Logger,
) *QuotationService {
	return &QuotationService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// ratesOf converts a project's frozen rate card to pricing rates
func ratesOf(project *domain.Project) pricing.Rates {
	return pricing.Rates{
		Making:  project.RateCard.MakingRate,
		Fitting: project.RateCard.FittingRate,
		Track:   project.RateCard.TrackRate,
		Hook:    project.RateCard.HookRate,
	}
}

// measurementsOf converts a stored window to pricing measurements
func measurementsOf(w *domain.Window) pricing.Measurements {
	return pricing.Measurements{
		Meters:             w.Meters,
		FabricCostPerMeter: w.FabricCostPerMeter,
		PannaCount:         w.PannaCount,
		TrackCount:         w.TrackCount,
		HookCount:          w.HookCount,
	}
}

// Build computes the complete quotation for a project the user owns
func (s *QuotationService) Build(ctx context.Context, projectID uuid.UUID) (*domain.QuotationDTO, error) {
	project, err := s.projectRepo.GetByIDWithRooms(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return s.BuildFromProject(project), nil
}

// BuildFromProject computes the quotation from an already loaded project
// tree. Rooms with no windows contribute nothing to any total.
func (s *QuotationService) BuildFromProject(project *domain.Project) *domain.QuotationDTO {
	rates := ratesOf(project)

	roomDTOs := make([]domain.RoomDTO, len(project.Rooms))
	var totals pricing.Summary

	for i := range project.Rooms {
		room := &project.Rooms[i]

		windowDTOs := make([]domain.WindowDTO, len(room.Windows))
		var roomTotals pricing.Summary
		for j := range room.Windows {
			window := &room.Windows[j]
			cost := pricing.WindowCost(measurementsOf(window), rates)
			roomTotals.Add(cost)
			windowDTOs[j] = mapper.ToWindowDTO(window, cost)
		}

		roomDTOs[i] = mapper.ToRoomDTO(room, windowDTOs, roomTotals)
		totals.Merge(roomTotals)
	}

	grandTotal := pricing.ApplyDiscount(totals.Total, project.Discount, string(project.DiscountType))
	balance := grandTotal - project.AdvanceAmount

	projectDTO := mapper.ToProjectDTO(project, grandTotal, balance)

	return &domain.QuotationDTO{
		Project:       projectDTO,
		Rooms:         roomDTOs,
		Totals:        totals,
		GrandTotal:    grandTotal,
		AdvanceAmount: project.AdvanceAmount,
		BalanceAmount: balance,
		RoomCount:     len(project.Rooms),
		WindowCount:   totals.WindowCount,
	}
}

// ProjectTotals returns only the discount-adjusted total and balance for a
// loaded project tree. Used when mapping projects in list responses.
func (s *QuotationService) ProjectTotals(project *domain.Project) (total, balance float64) {
	rates := ratesOf(project)
	var summary pricing.Summary
	for i := range project.Rooms {
		for j := range project.Rooms[i].Windows {
			summary.Add(pricing.WindowCost(measurementsOf(&project.Rooms[i].Windows[j]), rates))
		}
	}
	total = pricing.ApplyDiscount(summary.Total, project.Discount, string(project.DiscountType))
	return total, total - project.AdvanceAmount
}
