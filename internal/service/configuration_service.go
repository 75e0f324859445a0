package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/furnishhq/quotation-api/internal/auth"
	"github.com/furnishhq/quotation-api/internal/domain"
	"github.com/furnishhq/quotation-api/internal/mapper"
	"github.com/furnishhq/quotation-api/internal/repository"
	"github.com/furnishhq/quotation-api/internal/storage"
)

type ConfigurationService struct {
	configRepo *repository.ConfigurationRepository
	storage    storage.Storage
	logger     *zap.Logger
}

func NewConfigurationService(
	configRepo *repository.ConfigurationRepository,
	storage storage.Storage,
	logger *zap.Logger,
) *ConfigurationService {
	return &ConfigurationService{
		configRepo: configRepo,
		storage:    storage,
		logger:     logger,
	}
}

// Get returns the user's configuration, creating it with defaults on first
// access. Configuration changes only affect projects created afterwards;
// existing projects keep their frozen rate card.
func (s *ConfigurationService) Get(ctx context.Context) (*domain.ConfigurationDTO, error) {
	cfg, err := s.configRepo.GetOrInit(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}

	dto := mapper.ToConfigurationDTO(cfg)
	return &dto, nil
}

func (s *ConfigurationService) Update(ctx context.Context, req *domain.UpdateConfigurationRequest) (*domain.ConfigurationDTO, error) {
	cfg, err := s.configRepo.GetOrInit(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}

	if req.DefaultMakingRate != nil {
		cfg.RateCard.MakingRate = *req.DefaultMakingRate
	}
	if req.DefaultFittingRate != nil {
		cfg.RateCard.FittingRate = *req.DefaultFittingRate
	}
	if req.DefaultTrackRate != nil {
		cfg.RateCard.TrackRate = *req.DefaultTrackRate
	}
	if req.DefaultHookRate != nil {
		cfg.RateCard.HookRate = *req.DefaultHookRate
	}
	if req.TermsAndConditions != nil {
		cfg.TermsAndConditions = *req.TermsAndConditions
	}
	if req.CompanyName != nil {
		cfg.CompanyName = *req.CompanyName
	}
	if req.CompanyAddress != nil {
		cfg.CompanyAddress = *req.CompanyAddress
	}
	if req.CompanyContact != nil {
		cfg.CompanyContact = *req.CompanyContact
	}
	if req.GSTNumber != nil {
		cfg.GSTNumber = *req.GSTNumber
	}

	if err := s.configRepo.Update(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to update configuration: %w", err)
	}

	dto := mapper.ToConfigurationDTO(cfg)
	return &dto, nil
}

// UploadLogo stores the company logo and records its path on the
// configuration. Only PNG, JPEG and WebP are accepted.
func (s *ConfigurationService) UploadLogo(ctx context.Context, filename, contentType string, data []byte) (*domain.ConfigurationDTO, error) {
	switch contentType {
	case "image/png", "image/jpeg", "image/webp":
	default:
		return nil, ErrUnsupportedImageType
	}

	cfg, err := s.configRepo.GetOrInit(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}

	path := fmt.Sprintf("logos/%s/%s", cfg.UserID.String(), filename)
	storedPath, err := s.storage.Save(ctx, path, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store logo: %w", err)
	}

	cfg.CompanyLogo = storedPath
	if err := s.configRepo.Update(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to update configuration: %w", err)
	}

	s.logger.Info("company logo updated",
		zap.String("user_id", cfg.UserID.String()),
		zap.String("path", storedPath),
	)

	dto := mapper.ToConfigurationDTO(cfg)
	return &dto, nil
}

// RateCardFor returns the rate card a new project should freeze, using the
// user's configuration defaults.
func (s *ConfigurationService) RateCardFor(ctx context.Context) (domain.RateCard, string, error) {
	cfg, err := s.configRepo.GetOrInit(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return domain.RateCard{}, "", fmt.Errorf("failed to get configuration: %w", err)
	}
	return cfg.RateCard, cfg.TermsAndConditions, nil
}
