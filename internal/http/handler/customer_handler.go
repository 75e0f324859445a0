package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/furnishhq/quotation-api/internal/domain"
	"github.com/furnishhq/quotation-api/internal/service"
)

type CustomerHandler struct {
	customerService *service.CustomerService
	logger          *zap.Logger
}

func NewCustomerHandler(customerService *service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// List godoc
// @Summary List customers
// @Description Get a paginated list of the caller's customers
// @Tags Customers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search by name or contact number"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.CustomerDTO}
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	search := r.URL.Query().Get("search")

	result, err := h.customerService.List(r.Context(), page, pageSize, search)
	if err != nil {
		h.logger.Error("failed to list customers", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list customers")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get customer by ID
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID" format(uuid)
// @Success 200 {object} domain.CustomerDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	customer, err := h.customerService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Customer not found")
			return
		}
		h.logger.Error("failed to get customer", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get customer")
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// Create godoc
// @Summary Create customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body domain.CreateCustomerRequest true "Customer data"
// @Success 201 {object} domain.CustomerDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	customer, err := h.customerService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create customer", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	w.Header().Set("Location", "/api/v1/customers/"+customer.ID.String())
	respondJSON(w, http.StatusCreated, customer)
}

// Update godoc
// @Summary Update customer
// @Description Update a customer. Name and contact number are locked once the customer is referenced by a project.
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID" format(uuid)
// @Param request body domain.UpdateCustomerRequest true "Customer data"
// @Success 200 {object} domain.CustomerDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Identity locked by existing projects"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var req domain.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	customer, err := h.customerService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Customer not found")
			return
		}
		if errors.Is(err, service.ErrCustomerInUse) {
			respondWithError(w, http.StatusConflict, "Customer name and contact number cannot change while projects reference them")
			return
		}
		h.logger.Error("failed to update customer", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// Delete godoc
// @Summary Delete customer
// @Description Delete a customer. Fails with 409 if the customer has projects.
// @Tags Customers
// @Param id path string true "Customer ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Customer has projects"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	if err := h.customerService.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Customer not found")
		case errors.Is(err, service.ErrCustomerInUse):
			respondWithError(w, http.StatusConflict, "Customer has projects and cannot be deleted")
		default:
			h.logger.Error("failed to delete customer", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to delete customer")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
