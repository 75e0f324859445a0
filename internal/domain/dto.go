package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/furnishhq/quotation-api/internal/pricing"
)

// PaginatedResponse wraps a paginated list result
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// ---- Auth ----

// SignupRequest creates a new owner account
type SignupRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,min=6,max=72"`
	Phone        string `json:"phone" validate:"omitempty,max=50"`
	BusinessName string `json:"businessName" validate:"omitempty,max=200"`
}

// LoginRequest authenticates an existing account
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDTO is the public representation of an account
type UserDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	BusinessName string    `json:"businessName,omitempty"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthResponse is returned from signup and login
type AuthResponse struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
	Token   string  `json:"token"`
}

// ---- Customers ----

// CreateCustomerRequest creates a standalone customer
type CreateCustomerRequest struct {
	Name             string `json:"name" validate:"required,max=200"`
	ContactNumber    string `json:"contactNumber" validate:"required,max=50"`
	AlternateContact string `json:"alternateContact" validate:"omitempty,max=50"`
	Address          string `json:"address" validate:"required,max=500"`
	Email            string `json:"email" validate:"omitempty,email,max=255"`
}

// UpdateCustomerRequest replaces a customer's mutable fields
type UpdateCustomerRequest struct {
	Name             string `json:"name" validate:"required,max=200"`
	ContactNumber    string `json:"contactNumber" validate:"required,max=50"`
	AlternateContact string `json:"alternateContact" validate:"omitempty,max=50"`
	Address          string `json:"address" validate:"required,max=500"`
	Email            string `json:"email" validate:"omitempty,email,max=255"`
}

// CustomerDTO is the public representation of a customer
type CustomerDTO struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	ContactNumber    string    `json:"contactNumber"`
	AlternateContact string    `json:"alternateContact,omitempty"`
	Address          string    `json:"address"`
	Email            string    `json:"email,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ---- Sales persons / tailors ----

// CreateSalesPersonRequest creates a sales staff member
type CreateSalesPersonRequest struct {
	Name             string `json:"name" validate:"required,max=200"`
	ContactNumber    string `json:"contactNumber" validate:"required,max=50"`
	AlternateContact string `json:"alternateContact" validate:"omitempty,max=50"`
	Territory        string `json:"territory" validate:"omitempty,max=200"`
	Email            string `json:"email" validate:"omitempty,email,max=255"`
}

// UpdateSalesPersonRequest partially updates a sales person
type UpdateSalesPersonRequest struct {
	Name             *string `json:"name" validate:"omitempty,max=200"`
	ContactNumber    *string `json:"contactNumber" validate:"omitempty,max=50"`
	AlternateContact *string `json:"alternateContact" validate:"omitempty,max=50"`
	Territory        *string `json:"territory" validate:"omitempty,max=200"`
	Email            *string `json:"email" validate:"omitempty,email,max=255"`
	IsActive         *bool   `json:"isActive"`
}

// SalesPersonDTO is the public representation of a sales person
type SalesPersonDTO struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	ContactNumber    string    `json:"contactNumber"`
	AlternateContact string    `json:"alternateContact,omitempty"`
	Territory        string    `json:"territory,omitempty"`
	Email            string    `json:"email,omitempty"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CreateTailorRequest creates a tailor
type CreateTailorRequest struct {
	Name             string `json:"name" validate:"required,max=200"`
	ContactNumber    string `json:"contactNumber" validate:"required,max=50"`
	AlternateContact string `json:"alternateContact" validate:"omitempty,max=50"`
	Specialization   string `json:"specialization" validate:"omitempty,max=200"`
	Address          string `json:"address" validate:"omitempty,max=500"`
}

// UpdateTailorRequest partially updates a tailor
type UpdateTailorRequest struct {
	Name             *string `json:"name" validate:"omitempty,max=200"`
	ContactNumber    *string `json:"contactNumber" validate:"omitempty,max=50"`
	AlternateContact *string `json:"alternateContact" validate:"omitempty,max=50"`
	Specialization   *string `json:"specialization" validate:"omitempty,max=200"`
	Address          *string `json:"address" validate:"omitempty,max=500"`
	IsActive         *bool   `json:"isActive"`
}

// TailorDTO is the public representation of a tailor
type TailorDTO struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	ContactNumber    string    `json:"contactNumber"`
	AlternateContact string    `json:"alternateContact,omitempty"`
	Specialization   string    `json:"specialization,omitempty"`
	Address          string    `json:"address,omitempty"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ---- Configuration ----

// UpdateConfigurationRequest updates the user's defaults and company profile.
// Nil fields are left unchanged.
type UpdateConfigurationRequest struct {
	DefaultMakingRate  *float64 `json:"defaultMakingRate" validate:"omitempty,gte=0"`
	DefaultFittingRate *float64 `json:"defaultFittingRate" validate:"omitempty,gte=0"`
	DefaultTrackRate   *float64 `json:"defaultTrackRate" validate:"omitempty,gte=0"`
	DefaultHookRate    *float64 `json:"defaultHookRate" validate:"omitempty,gte=0"`
	TermsAndConditions *string  `json:"termsAndConditions"`
	CompanyName        *string  `json:"companyName" validate:"omitempty,max=200"`
	CompanyAddress     *string  `json:"companyAddress" validate:"omitempty,max=500"`
	CompanyContact     *string  `json:"companyContact" validate:"omitempty,max=50"`
	GSTNumber          *string  `json:"gstNumber" validate:"omitempty,max=50"`
}

// ConfigurationDTO is the public representation of a user configuration
type ConfigurationDTO struct {
	ID                 uuid.UUID `json:"id"`
	DefaultMakingRate  float64   `json:"defaultMakingRate"`
	DefaultFittingRate float64   `json:"defaultFittingRate"`
	DefaultTrackRate   float64   `json:"defaultTrackRate"`
	DefaultHookRate    float64   `json:"defaultHookRate"`
	TermsAndConditions string    `json:"termsAndConditions"`
	CompanyName        string    `json:"companyName,omitempty"`
	CompanyLogo        string    `json:"companyLogo,omitempty"`
	CompanyAddress     string    `json:"companyAddress,omitempty"`
	CompanyContact     string    `json:"companyContact,omitempty"`
	GSTNumber          string    `json:"gstNumber,omitempty"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ---- Projects ----

// ProjectCustomerRef either references an existing customer by id or carries
// the fields to create one inline during project creation.
type ProjectCustomerRef struct {
	ID               *uuid.UUID `json:"id"`
	Name             string     `json:"name" validate:"required_without=ID,omitempty,max=200"`
	ContactNumber    string     `json:"contactNumber" validate:"required_without=ID,omitempty,max=50"`
	AlternateContact string     `json:"alternateContact" validate:"omitempty,max=50"`
	Address          string     `json:"address" validate:"omitempty,max=500"`
	Email            string     `json:"email" validate:"omitempty,email,max=255"`
}

// CreateProjectRequest creates a quotation project. Rate overrides default to
// the user's configuration values when nil; whichever values win are frozen
// onto the project permanently.
type CreateProjectRequest struct {
	Customer             ProjectCustomerRef `json:"customer" validate:"required"`
	ProjectType          ProjectType        `json:"projectType" validate:"required,oneof=1BHK 2BHK 3BHK 4BHK Villa Office Other"`
	SalesPersonID        uuid.UUID          `json:"salesPersonId" validate:"required"`
	TailorID             *uuid.UUID         `json:"tailorId"`
	ProjectNotes         string             `json:"projectNotes"`
	ProbableDeliveryDate *time.Time         `json:"probableDeliveryDate"`
	DefaultMakingRate    *float64           `json:"defaultMakingRate" validate:"omitempty,gte=0"`
	DefaultFittingRate   *float64           `json:"defaultFittingRate" validate:"omitempty,gte=0"`
	DefaultTrackRate     *float64           `json:"defaultTrackRate" validate:"omitempty,gte=0"`
	DefaultHookRate      *float64           `json:"defaultHookRate" validate:"omitempty,gte=0"`
}

// UpdateProjectRequest partially updates a project. Frozen rate card fields
// and the quotation number are deliberately not updatable.
type UpdateProjectRequest struct {
	Status               *ProjectStatus `json:"status" validate:"omitempty,oneof=draft quotation_sent confirmed completed cancelled"`
	SalesPersonID        *uuid.UUID     `json:"salesPersonId"`
	TailorID             *uuid.UUID     `json:"tailorId"`
	AdvanceAmount        *float64       `json:"advanceAmount" validate:"omitempty,gte=0"`
	Discount             *float64       `json:"discount" validate:"omitempty,gte=0"`
	DiscountType         *DiscountType  `json:"discountType" validate:"omitempty,oneof=percentage fixed"`
	ProbableDeliveryDate *time.Time     `json:"probableDeliveryDate"`
	ProjectNotes         *string        `json:"projectNotes"`
	TermsAndConditions   *string        `json:"termsAndConditions"`
}

// ProjectDTO is the list/detail representation of a project. TotalAmount and
// BalanceAmount are always recomputed from live window data, never stored.
type ProjectDTO struct {
	ID                   uuid.UUID       `json:"id"`
	QuotationNumber      string          `json:"quotationNumber"`
	CustomerID           uuid.UUID       `json:"customerId"`
	Customer             *CustomerDTO    `json:"customer,omitempty"`
	SalesPersonID        uuid.UUID       `json:"salesPersonId"`
	SalesPerson          *SalesPersonDTO `json:"salesPerson,omitempty"`
	TailorID             *uuid.UUID      `json:"tailorId,omitempty"`
	Tailor               *TailorDTO      `json:"tailor,omitempty"`
	ProjectType          ProjectType     `json:"projectType"`
	Status               ProjectStatus   `json:"status"`
	RateCard             RateCard        `json:"rateCard"`
	TotalAmount          float64         `json:"totalAmount"`
	AdvanceAmount        float64         `json:"advanceAmount"`
	BalanceAmount        float64         `json:"balanceAmount"`
	Discount             float64         `json:"discount,omitempty"`
	DiscountType         DiscountType    `json:"discountType,omitempty"`
	ProbableDeliveryDate *time.Time      `json:"probableDeliveryDate,omitempty"`
	ProjectNotes         string          `json:"projectNotes,omitempty"`
	TermsAndConditions   string          `json:"termsAndConditions,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// ---- Rooms and windows ----

// CreateRoomRequest adds a room to a project
type CreateRoomRequest struct {
	ProjectID uuid.UUID `json:"projectId" validate:"required"`
	RoomType  RoomType  `json:"roomType" validate:"required,oneof='Living Room' Bedroom 'Master Bedroom' Kitchen Dining Study Balcony Office Other"`
	Notes     string    `json:"notes"`
}

// RoomDTO is the public representation of a room with its recomputed totals
type RoomDTO struct {
	ID        uuid.UUID       `json:"id"`
	ProjectID uuid.UUID       `json:"projectId"`
	RoomType  RoomType        `json:"roomType"`
	Notes     string          `json:"notes,omitempty"`
	Windows   []WindowDTO     `json:"windows"`
	Totals    pricing.Summary `json:"totals"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CreateWindowRequest adds a window to a room. PannaCount and Meters are
// always derived server-side from width and height; caller-supplied values
// for them are ignored.
type CreateWindowRequest struct {
	RoomID             uuid.UUID `json:"roomId" validate:"required"`
	Style              string    `json:"style" validate:"required,max=100"`
	Width              float64   `json:"width" validate:"required,gt=0"`
	Height             float64   `json:"height" validate:"required,gt=0"`
	FabricCostPerMeter float64   `json:"fabricCostPerMeter" validate:"gte=0"`
	TrackCount         *int      `json:"trackCount" validate:"omitempty,gte=0"`
	HookCount          int       `json:"hookCount" validate:"gte=0"`
}

// WindowDTO is the public representation of a window including its cost
// breakdown under the owning project's frozen rate card.
type WindowDTO struct {
	ID                 uuid.UUID         `json:"id"`
	RoomID             uuid.UUID         `json:"roomId"`
	ProjectID          uuid.UUID         `json:"projectId"`
	WindowNumber       int               `json:"windowNumber"`
	Style              string            `json:"style"`
	Width              float64           `json:"width"`
	Height             float64           `json:"height"`
	PannaCount         int               `json:"pannaCount"`
	Meters             float64           `json:"meters"`
	FabricCostPerMeter float64           `json:"fabricCostPerMeter"`
	TrackCount         int               `json:"trackCount"`
	HookCount          int               `json:"hookCount"`
	Cost               pricing.Breakdown `json:"cost"`
	CreatedAt          time.Time         `json:"createdAt"`
}

// ---- Quotation ----

// QuotationDTO is the full recomputed quotation for a project, with
// per-room detail and the payable amounts after discount.
type QuotationDTO struct {
	Project       ProjectDTO      `json:"project"`
	Rooms         []RoomDTO       `json:"rooms"`
	Totals        pricing.Summary `json:"totals"`
	GrandTotal    float64         `json:"grandTotal"`
	AdvanceAmount float64         `json:"advanceAmount"`
	BalanceAmount float64         `json:"balanceAmount"`
	RoomCount     int             `json:"roomCount"`
	WindowCount   int             `json:"windowCount"`
}
