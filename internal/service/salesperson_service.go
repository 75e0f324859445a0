package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/furnishhq/quotation-api/internal/auth"
	"github.com/furnishhq/quotation-api/internal/domain"
	"github.com/furnishhq/quotation-api/internal/mapper"
	"github.com/furnishhq/quotation-api/internal/repository"
)

type SalesPersonService struct {
	salesPersonRepo *repository.SalesPersonRepository
	logger          *zap.Logger
}

func NewSalesPersonService(
	salesPersonRepo *repository.SalesPersonRepository,
	logger *zap.Logger,
) *SalesPersonService {
	return &SalesPersonService{
		salesPersonRepo: salesPersonRepo,
		logger:          logger,
	}
}

func (s *SalesPersonService) Create(ctx context.Context, req *domain.CreateSalesPersonRequest) (*domain.SalesPersonDTO, error) {
	taken, err := s.salesPersonRepo.NameExists(ctx, req.Name, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check sales person name: %w", err)
	}
	if taken {
		return nil, ErrNameTaken
	}

	sp := &domain.SalesPerson{
		UserID:           auth.UserIDFromContext(ctx),
		Name:             req.Name,
		ContactNumber:    req.ContactNumber,
		AlternateContact: req.AlternateContact,
		Territory:        req.Territory,
		Email:            req.Email,
		IsActive:         true,
	}

	if err := s.salesPersonRepo.Create(ctx, sp); err != nil {
		return nil, fmt.Errorf("failed to create sales person: %w", err)
	}

	dto := mapper.ToSalesPersonDTO(sp)
	return &dto, nil
}

func (s *SalesPersonService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SalesPersonDTO, error) {
	sp, err := s.salesPersonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sales person: %w", err)
	}

	dto := mapper.ToSalesPersonDTO(sp)
	return &dto, nil
}

func (s *SalesPersonService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateSalesPersonRequest) (*domain.SalesPersonDTO, error) {
	sp, err := s.salesPersonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sales person: %w", err)
	}

	if req.Name != nil && *req.Name != sp.Name {
		taken, err := s.salesPersonRepo.NameExists(ctx, *req.Name, sp.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check sales person name: %w", err)
		}
		if taken {
			return nil, ErrNameTaken
		}
		sp.Name = *req.Name
	}
	if req.ContactNumber != nil {
		sp.ContactNumber = *req.ContactNumber
	}
	if req.AlternateContact != nil {
		sp.AlternateContact = *req.AlternateContact
	}
	if req.Territory != nil {
		sp.Territory = *req.Territory
	}
	if req.Email != nil {
		sp.Email = *req.Email
	}
	if req.IsActive != nil {
		sp.IsActive = *req.IsActive
	}

	if err := s.salesPersonRepo.Update(ctx, sp); err != nil {
		return nil, fmt.Errorf("failed to update sales person: %w", err)
	}

	dto := mapper.ToSalesPersonDTO(sp)
	return &dto, nil
}

// Delete removes a sales person with no assigned projects. Assigned staff
// are deactivated instead so historical quotations keep their reference.
func (s *SalesPersonService) Delete(ctx context.Context, id uuid.UUID) error {
	sp, err := s.salesPersonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get sales person: %w", err)
	}

	count, err := s.salesPersonRepo.GetProjectsCount(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	if count > 0 {
		sp.IsActive = false
		if err := s.salesPersonRepo.Update(ctx, sp); err != nil {
			return fmt.Errorf("failed to deactivate sales person: %w", err)
		}
		s.logger.Info("sales person deactivated instead of deleted",
			zap.String("sales_person_id", id.String()),
			zap.Int("project_count", count),
		)
		return nil
	}

	if err := s.salesPersonRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sales person: %w", err)
	}
	return nil
}

func (s *SalesPersonService) List(ctx context.Context, includeInactive bool) ([]domain.SalesPersonDTO, error) {
	persons, err := s.salesPersonRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales persons: %w", err)
	}

	dtos := make([]domain.SalesPersonDTO, len(persons))
	for i := range persons {
		dtos[i] = mapper.ToSalesPersonDTO(&persons[i])
	}
	return dtos, nil
}
