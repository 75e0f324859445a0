package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields. IDs are assigned client-side in
// BeforeCreate so the schema works on both postgres and the sqlite driver
// used in tests; the SQL migration still sets a gen_random_uuid() default
// for rows created outside gorm.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// UserRole represents the role of an account
type UserRole string

const (
	RoleOwner UserRole = "owner"
)

// User represents a shop owner account
type User struct {
	BaseModel
	Name         string   `gorm:"type:varchar(200);not null"`
	Email        string   `gorm:"type:varchar(255);not null;unique"`
	PasswordHash string   `gorm:"type:varchar(100);not null;column:password_hash"`
	Phone        string   `gorm:"type:varchar(50)"`
	BusinessName string   `gorm:"type:varchar(200);column:business_name"`
	Role         UserRole `gorm:"type:varchar(50);not null;default:'owner'"`
}

// Customer represents an end customer of the furnishing shop
type Customer struct {
	BaseModel
	UserID           uuid.UUID `gorm:"type:uuid;not null;index;column:user_id"`
	Name             string    `gorm:"type:varchar(200);not null;index"`
	ContactNumber    string    `gorm:"type:varchar(50);not null;index;column:contact_number"`
	AlternateContact string    `gorm:"type:varchar(50);column:alternate_contact"`
	Address          string    `gorm:"type:varchar(500);not null"`
	Email            string    `gorm:"type:varchar(255)"`
}

// SalesPerson represents a sales staff member belonging to a user
type SalesPerson struct {
	BaseModel
	UserID           uuid.UUID `gorm:"type:uuid;not null;index;column:user_id"`
	Name             string    `gorm:"type:varchar(200);not null"`
	ContactNumber    string    `gorm:"type:varchar(50);not null;column:contact_number"`
	AlternateContact string    `gorm:"type:varchar(50);column:alternate_contact"`
	Territory        string    `gorm:"type:varchar(200)"`
	Email            string    `gorm:"type:varchar(255)"`
	IsActive         bool      `gorm:"not null;default:true;column:is_active"`
}

// TableName matches the migration schema; gorm would otherwise pluralize
// SalesPerson to sales_people
func (SalesPerson) TableName() string {
	return "sales_persons"
}

// Tailor represents a tailor belonging to a user
type Tailor struct {
	BaseModel
	UserID           uuid.UUID `gorm:"type:uuid;not null;index;column:user_id"`
	Name             string    `gorm:"type:varchar(200);not null"`
	ContactNumber    string    `gorm:"type:varchar(50);not null;column:contact_number"`
	AlternateContact string    `gorm:"type:varchar(50);column:alternate_contact"`
	Specialization   string    `gorm:"type:varchar(200)"`
	Address          string    `gorm:"type:varchar(500)"`
	IsActive         bool      `gorm:"not null;default:true;column:is_active"`
}

// Default rate card values used when a user has no stored configuration yet
const (
	DefaultMakingRate  = 180.0
	DefaultFittingRate = 300.0
	DefaultTrackRate   = 180.0
	DefaultHookRate    = 200.0
)

// DefaultTermsAndConditions is the canonical terms text for new configurations
const DefaultTermsAndConditions = `1) Order once placed cannot be cancelled
2) Advance paid will not be refunded
3) Delivery will be done after full bill is cleared at the Shop
4) Shop Closed on TUESDAY`

// Configuration holds a user's default rate card and company profile.
// Exactly one record per user, lazily created on first read.
type Configuration struct {
	BaseModel
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:user_id"`
	RateCard           RateCard  `gorm:"embedded"`
	TermsAndConditions string    `gorm:"type:text;column:terms_and_conditions"`
	CompanyName        string    `gorm:"type:varchar(200);column:company_name"`
	CompanyLogo        string    `gorm:"type:varchar(500);column:company_logo"`
	CompanyAddress     string    `gorm:"type:varchar(500);column:company_address"`
	CompanyContact     string    `gorm:"type:varchar(50);column:company_contact"`
	GSTNumber          string    `gorm:"type:varchar(50);column:gst_number"`
}

// ProjectType represents the kind of property being furnished
type ProjectType string

const (
	ProjectType1BHK   ProjectType = "1BHK"
	ProjectType2BHK   ProjectType = "2BHK"
	ProjectType3BHK   ProjectType = "3BHK"
	ProjectType4BHK   ProjectType = "4BHK"
	ProjectTypeVilla  ProjectType = "Villa"
	ProjectTypeOffice ProjectType = "Office"
	ProjectTypeOther  ProjectType = "Other"
)

// IsValid checks if the ProjectType is a valid enum value
func (pt ProjectType) IsValid() bool {
	switch pt {
	case ProjectType1BHK, ProjectType2BHK, ProjectType3BHK, ProjectType4BHK,
		ProjectTypeVilla, ProjectTypeOffice, ProjectTypeOther:
		return true
	}
	return false
}

// ProjectStatus represents the status of a quotation project
type ProjectStatus string

const (
	ProjectStatusDraft         ProjectStatus = "draft"
	ProjectStatusQuotationSent ProjectStatus = "quotation_sent"
	ProjectStatusConfirmed     ProjectStatus = "confirmed"
	ProjectStatusCompleted     ProjectStatus = "completed"
	ProjectStatusCancelled     ProjectStatus = "cancelled"
)

// IsValid checks if the ProjectStatus is a valid enum value
func (ps ProjectStatus) IsValid() bool {
	switch ps {
	case ProjectStatusDraft, ProjectStatusQuotationSent, ProjectStatusConfirmed,
		ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from this status
func (ps ProjectStatus) IsTerminal() bool {
	return ps == ProjectStatusCompleted || ps == ProjectStatusCancelled
}

// CanTransitionTo reports whether the status state machine allows moving to next.
// The forward path is draft -> quotation_sent -> confirmed -> completed,
// with cancelled reachable from any non-terminal state.
func (ps ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	if ps.IsTerminal() {
		return false
	}
	if next == ProjectStatusCancelled {
		return true
	}
	switch ps {
	case ProjectStatusDraft:
		return next == ProjectStatusQuotationSent
	case ProjectStatusQuotationSent:
		return next == ProjectStatusConfirmed
	case ProjectStatusConfirmed:
		return next == ProjectStatusCompleted
	}
	return false
}

// DiscountType represents how a project discount is applied
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// IsValid checks if the DiscountType is a valid enum value
func (dt DiscountType) IsValid() bool {
	return dt == DiscountTypePercentage || dt == DiscountTypeFixed
}

// RateCard holds the four unit rates a quotation is priced against.
// Column names keep the historical default_* prefix used by the schema.
type RateCard struct {
	MakingRate  float64 `gorm:"type:decimal(10,2);not null;column:default_making_rate" json:"defaultMakingRate"`
	FittingRate float64 `gorm:"type:decimal(10,2);not null;column:default_fitting_rate" json:"defaultFittingRate"`
	TrackRate   float64 `gorm:"type:decimal(10,2);not null;column:default_track_rate" json:"defaultTrackRate"`
	HookRate    float64 `gorm:"type:decimal(10,2);not null;column:default_hook_rate" json:"defaultHookRate"`
}

// Project is the aggregate root of a quotation.
//
// The rate card is a frozen copy taken from the user's configuration (or a
// caller override) at creation time; later configuration changes never
// re-price existing quotations. Totals are not stored: they are recomputed
// from live window data on every read.
type Project struct {
	BaseModel
	UserID               uuid.UUID     `gorm:"type:uuid;not null;index;column:user_id"`
	QuotationNumber      string        `gorm:"type:varchar(20);not null;uniqueIndex;column:quotation_number"`
	CustomerID           uuid.UUID     `gorm:"type:uuid;not null;index;column:customer_id"`
	Customer             *Customer     `gorm:"foreignKey:CustomerID"`
	SalesPersonID        uuid.UUID     `gorm:"type:uuid;not null;index;column:sales_person_id"`
	SalesPerson          *SalesPerson  `gorm:"foreignKey:SalesPersonID"`
	TailorID             *uuid.UUID    `gorm:"type:uuid;index;column:tailor_id"`
	Tailor               *Tailor       `gorm:"foreignKey:TailorID"`
	ProjectType          ProjectType   `gorm:"type:varchar(20);not null;column:project_type"`
	Status               ProjectStatus `gorm:"type:varchar(50);not null;default:'draft';index"`
	RateCard             RateCard      `gorm:"embedded"`
	AdvanceAmount        float64       `gorm:"type:decimal(15,2);not null;default:0;column:advance_amount"`
	Discount             float64       `gorm:"type:decimal(15,2);not null;default:0"`
	DiscountType         DiscountType  `gorm:"type:varchar(20);not null;default:'percentage';column:discount_type"`
	ProbableDeliveryDate *time.Time    `gorm:"type:date;column:probable_delivery_date"`
	ProjectNotes         string        `gorm:"type:text;column:project_notes"`
	TermsAndConditions   string        `gorm:"type:text;column:terms_and_conditions"`
	Rooms                []Room        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// RoomType represents the fixed set of room classifications
type RoomType string

const (
	RoomTypeLivingRoom    RoomType = "Living Room"
	RoomTypeBedroom       RoomType = "Bedroom"
	RoomTypeMasterBedroom RoomType = "Master Bedroom"
	RoomTypeKitchen       RoomType = "Kitchen"
	RoomTypeDining        RoomType = "Dining"
	RoomTypeStudy         RoomType = "Study"
	RoomTypeBalcony       RoomType = "Balcony"
	RoomTypeOffice        RoomType = "Office"
	RoomTypeOther         RoomType = "Other"
)

// IsValid checks if the RoomType is a valid enum value
func (rt RoomType) IsValid() bool {
	switch rt {
	case RoomTypeLivingRoom, RoomTypeBedroom, RoomTypeMasterBedroom,
		RoomTypeKitchen, RoomTypeDining, RoomTypeStudy, RoomTypeBalcony,
		RoomTypeOffice, RoomTypeOther:
		return true
	}
	return false
}

// Room is a named space within a project containing zero or more windows.
// Room-level costs are never stored; they are derived from windows on read.
type Room struct {
	BaseModel
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index;column:project_id"`
	Project   *Project  `gorm:"foreignKey:ProjectID"`
	RoomType  RoomType  `gorm:"type:varchar(50);not null;column:room_type"`
	Notes     string    `gorm:"type:text"`
	Windows   []Window  `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

// Window is a single furnishing opening with its measurements and unit costs.
//
// WindowNumber is assigned as count-of-existing-windows-in-room + 1 at
// creation and never renumbered. PannaCount and Meters are derived from
// width/height by the pricing package and persisted, so a stored value is
// always identical to the live form preview the caller saw.
type Window struct {
	BaseModel
	RoomID             uuid.UUID `gorm:"type:uuid;not null;index;column:room_id"`
	Room               *Room     `gorm:"foreignKey:RoomID"`
	ProjectID          uuid.UUID `gorm:"type:uuid;not null;index;column:project_id"`
	WindowNumber       int       `gorm:"not null;column:window_number"`
	Style              string    `gorm:"type:varchar(100);not null"`
	Width              float64   `gorm:"type:decimal(10,2);not null"`
	Height             float64   `gorm:"type:decimal(10,2);not null"`
	PannaCount         int       `gorm:"not null;default:0;column:panna_count"`
	Meters             float64   `gorm:"type:decimal(10,2);not null;default:0"`
	FabricCostPerMeter float64   `gorm:"type:decimal(10,2);not null;default:0;column:fabric_cost_per_meter"`
	TrackCount         int       `gorm:"not null;default:1;column:track_count"`
	HookCount          int       `gorm:"not null;default:0;column:hook_count"`
}

// QuotationSequence backs quotation number generation. One row per user,
// incremented atomically under a row lock; the counter never resets.
type QuotationSequence struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id"`
	LastSequence int       `gorm:"not null;default:0;column:last_sequence"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName overrides the default table name
func (QuotationSequence) TableName() string {
	return "quotation_sequences"
}
