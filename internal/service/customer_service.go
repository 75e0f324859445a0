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

type CustomerService struct {
	customerRepo *repository.CustomerRepository
	logger       *zap.Logger
}

func NewCustomerService(
	customerRepo *repository.CustomerRepository,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (s *CustomerService) Create(ctx context.Context, req *domain.CreateCustomerRequest) (*domain.CustomerDTO, error) {
	customer := &domain.Customer{
		UserID:           auth.UserIDFromContext(ctx),
		Name:             req.Name,
		ContactNumber:    req.ContactNumber,
		AlternateContact: req.AlternateContact,
		Address:          req.Address,
		Email:            req.Email,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomerDTO, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateCustomerRequest) (*domain.CustomerDTO, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	// Name and contact number identify the customer on existing quotations;
	// once any project references them they stay fixed.
	if req.Name != customer.Name || req.ContactNumber != customer.ContactNumber {
		count, err := s.customerRepo.GetProjectsCount(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to count projects: %w", err)
		}
		if count > 0 {
			return nil, ErrCustomerInUse
		}
	}

	customer.Name = req.Name
	customer.ContactNumber = req.ContactNumber
	customer.AlternateContact = req.AlternateContact
	customer.Address = req.Address
	customer.Email = req.Email

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

// Delete removes a customer. Customers referenced by any project cannot be
// deleted; the quotation history must stay intact.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get customer: %w", err)
	}

	count, err := s.customerRepo.GetProjectsCount(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	if count > 0 {
		return ErrCustomerInUse
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}

func (s *CustomerService) List(ctx context.Context, page, pageSize int, search string) (*domain.PaginatedResponse, error) {
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > repository.MaxPageSize {
		pageSize = repository.MaxPageSize
	}
	if page < 1 {
		page = 1
	}

	customers, total, err := s.customerRepo.List(ctx, page, pageSize, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	dtos := make([]domain.CustomerDTO, len(customers))
	for i := range customers {
		dtos[i] = mapper.ToCustomerDTO(&customers[i])
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
