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

type TailorService struct {
	tailorRepo *repository.TailorRepository
	logger     *zap.Logger
}

func NewTailorService(
	tailorRepo *repository.TailorRepository,
	logger *zap.Logger,
) *TailorService {
	return &TailorService{
		tailorRepo: tailorRepo,
		logger:     logger,
	}
}

func (s *TailorService) Create(ctx context.Context, req *domain.CreateTailorRequest) (*domain.TailorDTO, error) {
	taken, err := s.tailorRepo.NameExists(ctx, req.Name, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check tailor name: %w", err)
	}
	if taken {
		return nil, ErrNameTaken
	}

	tailor := &domain.Tailor{
		UserID:           auth.UserIDFromContext(ctx),
		Name:             req.Name,
		ContactNumber:    req.ContactNumber,
		AlternateContact: req.AlternateContact,
		Specialization:   req.Specialization,
		Address:          req.Address,
		IsActive:         true,
	}

	if err := s.tailorRepo.Create(ctx, tailor); err != nil {
		return nil, fmt.Errorf("failed to create tailor: %w", err)
	}

	dto := mapper.ToTailorDTO(tailor)
	return &dto, nil
}

func (s *TailorService) GetByID(ctx context.Context, id uuid.UUID) (*domain.TailorDTO, error) {
	tailor, err := s.tailorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tailor: %w", err)
	}

	dto := mapper.ToTailorDTO(tailor)
	return &dto, nil
}

func (s *TailorService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateTailorRequest) (*domain.TailorDTO, error) {
	tailor, err := s.tailorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tailor: %w", err)
	}

	if req.Name != nil && *req.Name != tailor.Name {
		taken, err := s.tailorRepo.NameExists(ctx, *req.Name, tailor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check tailor name: %w", err)
		}
		if taken {
			return nil, ErrNameTaken
		}
		tailor.Name = *req.Name
	}
	if req.ContactNumber != nil {
		tailor.ContactNumber = *req.ContactNumber
	}
	if req.AlternateContact != nil {
		tailor.AlternateContact = *req.AlternateContact
	}
	if req.Specialization != nil {
		tailor.Specialization = *req.Specialization
	}
	if req.Address != nil {
		tailor.Address = *req.Address
	}
	if req.IsActive != nil {
		tailor.IsActive = *req.IsActive
	}

	if err := s.tailorRepo.Update(ctx, tailor); err != nil {
		return nil, fmt.Errorf("failed to update tailor: %w", err)
	}

	dto := mapper.ToTailorDTO(tailor)
	return &dto, nil
}

func (s *TailorService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tailorRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get tailor: %w", err)
	}

	if err := s.tailorRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tailor: %w", err)
	}
	return nil
}

func (s *TailorService) List(ctx context.Context, includeInactive bool) ([]domain.TailorDTO, error) {
	tailors, err := s.tailorRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list tailors: %w", err)
	}

	dtos := make([]domain.TailorDTO, len(tailors))
	for i := range tailors {
		dtos[i] = mapper.ToTailorDTO(&tailors[i])
	}
	return dtos, nil
}
