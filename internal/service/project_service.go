package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/furnishhq/quotation-api/internal/auth"
	"github.com/furnishhq/quotation-api/internal/domain"
	"github.com/furnishhq/quotation-api/internal/mapper"
	"github.com/furnishhq/quotation-api/internal/repository"
)

type ProjectService struct {
	projectRepo     *repository.ProjectRepository
	customerRepo    *repository.CustomerRepository
	salesPersonRepo *repository.SalesPersonRepository
	tailorRepo      *repository.TailorRepository
	configService   *ConfigurationService
	numberService   *QuotationNumberService
	quotations      *QuotationService
	logger          *zap.Logger
}

func NewProjectService(
	projectRepo *repository.ProjectRepository,
	customerRepo *repository.CustomerRepository,
	salesPersonRepo *repository.SalesPersonRepository,
	tailorRepo *repository.TailorRepository,
	configService *ConfigurationService,
	numberService *QuotationNumberService,
	quotations *QuotationService,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:     projectRepo,
		customerRepo:    customerRepo,
		salesPersonRepo: salesPersonRepo,
		tailorRepo:      tailorRepo,
		configService:   configService,
		numberService:   numberService,
		quotations:      quotations,
		logger:          logger,
	}
}

// Create creates a quotation project in draft status.
//
// The customer is either referenced by id or created inline; inline customers
// are deduplicated on contact number, so quoting a repeat customer by phone
// reuses their record. The rate card is frozen from the user's configuration
// (or per-field overrides) at this moment and never re-read afterwards.
func (s *ProjectService) Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.ProjectDTO, error) {
	userID := auth.UserIDFromContext(ctx)

	salesPerson, err := s.salesPersonRepo.GetByID(ctx, req.SalesPersonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sales person: %w", err)
	}
	if !salesPerson.IsActive {
		return nil, ErrInactiveStaff
	}

	if req.TailorID != nil {
		if _, err := s.tailorRepo.GetByID(ctx, *req.TailorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to get tailor: %w", err)
		}
	}

	customerID, inlineCustomer, err := s.resolveCustomer(ctx, userID, &req.Customer)
	if err != nil {
		return nil, err
	}

	rateCard, terms, err := s.configService.RateCardFor(ctx)
	if err != nil {
		return nil, err
	}
	if req.DefaultMakingRate != nil {
		rateCard.MakingRate = *req.DefaultMakingRate
	}
	if req.DefaultFittingRate != nil {
		rateCard.FittingRate = *req.DefaultFittingRate
	}
	if req.DefaultTrackRate != nil {
		rateCard.TrackRate = *req.DefaultTrackRate
	}
	if req.DefaultHookRate != nil {
		rateCard.HookRate = *req.DefaultHookRate
	}

	number, err := s.numberService.Generate(ctx, userID)
	if err != nil {
		return nil, err
	}

	project := &domain.Project{
		UserID:               userID,
		QuotationNumber:      number,
		CustomerID:           customerID,
		SalesPersonID:        req.SalesPersonID,
		TailorID:             req.TailorID,
		ProjectType:          req.ProjectType,
		Status:               domain.ProjectStatusDraft,
		RateCard:             rateCard,
		DiscountType:         domain.DiscountTypePercentage,
		ProbableDeliveryDate: req.ProbableDeliveryDate,
		ProjectNotes:         req.ProjectNotes,
		TermsAndConditions:   terms,
	}

	if err := s.projectRepo.CreateWithCustomer(ctx, project, inlineCustomer); err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return nil, ErrDuplicateQuotation
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("project created",
		zap.String("project_id", project.ID.String()),
		zap.String("quotation_number", project.QuotationNumber),
		zap.String("user_id", userID.String()),
	)

	created, err := s.projectRepo.GetByID(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload project: %w", err)
	}
	dto := s.toDTO(created)
	return &dto, nil
}

// resolveCustomer returns the id of an existing customer, or nil id plus a
// customer entity to create inline alongside the project.
func (s *ProjectService) resolveCustomer(ctx context.Context, userID uuid.UUID, ref *domain.ProjectCustomerRef) (uuid.UUID, *domain.Customer, error) {
	if ref.ID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *ref.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, nil, ErrNotFound
			}
			return uuid.Nil, nil, fmt.Errorf("failed to get customer: %w", err)
		}
		return customer.ID, nil, nil
	}

	// Dedup inline customers on contact number
	existing, err := s.customerRepo.GetByContactNumber(ctx, ref.ContactNumber)
	if err == nil {
		return existing.ID, nil, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	return uuid.Nil, &domain.Customer{
		UserID:           userID,
		Name:             ref.Name,
		ContactNumber:    ref.ContactNumber,
		AlternateContact: ref.AlternateContact,
		Address:          ref.Address,
		Email:            ref.Email,
	}, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByIDWithRooms(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	dto := s.toDTO(project)
	return &dto, nil
}

// Update partially updates a project. The quotation number and frozen rate
// card are immutable; status changes must follow the state machine.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProjectRequest) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByIDWithRooms(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if req.Status != nil && *req.Status != project.Status {
		if !project.Status.CanTransitionTo(*req.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, project.Status, *req.Status)
		}
		project.Status = *req.Status
	}
	if req.SalesPersonID != nil {
		sp, err := s.salesPersonRepo.GetByID(ctx, *req.SalesPersonID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to get sales person: %w", err)
		}
		if !sp.IsActive {
			return nil, ErrInactiveStaff
		}
		project.SalesPersonID = *req.SalesPersonID
	}
	if req.TailorID != nil {
		if _, err := s.tailorRepo.GetByID(ctx, *req.TailorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to get tailor: %w", err)
		}
		project.TailorID = req.TailorID
	}
	if req.AdvanceAmount != nil {
		project.AdvanceAmount = *req.AdvanceAmount
	}
	if req.Discount != nil {
		project.Discount = *req.Discount
	}
	if req.DiscountType != nil {
		project.DiscountType = *req.DiscountType
	}
	if req.ProbableDeliveryDate != nil {
		project.ProbableDeliveryDate = req.ProbableDeliveryDate
	}
	if req.ProjectNotes != nil {
		project.ProjectNotes = *req.ProjectNotes
	}
	if req.TermsAndConditions != nil {
		project.TermsAndConditions = *req.TermsAndConditions
	}

	// A fixed discount larger than the recomputed total clamps to zero at
	// pricing time, but reject the obviously wrong input up front.
	if project.DiscountType == domain.DiscountTypePercentage && project.Discount > 100 {
		return nil, ErrInvalidDiscount
	}

	// Detach the preloaded tree before saving so gorm does not try to
	// upsert rooms and windows.
	rooms := project.Rooms
	project.Rooms = nil
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	project.Rooms = rooms

	dto := s.toDTO(project)
	return &dto, nil
}

// Delete removes the project with its rooms and windows in one transaction
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.logger.Info("project deleted", zap.String("project_id", id.String()))
	return nil
}

func (s *ProjectService) List(ctx context.Context, page, pageSize int, filter repository.ProjectListFilter, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > repository.MaxPageSize {
		pageSize = repository.MaxPageSize
	}
	if page < 1 {
		page = 1
	}

	projects, total, err := s.projectRepo.List(ctx, page, pageSize, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	dtos := make([]domain.ProjectDTO, len(projects))
	for i := range projects {
		dtos[i] = s.toDTO(&projects[i])
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// StatusCounts returns per-status project counts for the dashboard
func (s *ProjectService) StatusCounts(ctx context.Context) (map[domain.ProjectStatus]int64, error) {
	return s.projectRepo.CountByStatus(ctx)
}

func (s *ProjectService) toDTO(project *domain.Project) domain.ProjectDTO {
	total, balance := s.quotations.ProjectTotals(project)
	return mapper.ToProjectDTO(project, total, balance)
}
