// Package mapper converts domain entities to API DTOs.
// Cost figures are always passed in by the caller, never read from storage:
// totals are recomputed from window data on every request.
package mapper

import (
	"github.com/furnishhq/quotation-api/internal/domain"
	"github.com/furnishhq/quotation-api/internal/pricing"
)

func ToUserDTO(user *domain.User) domain.UserDTO {
	return domain.UserDTO{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		BusinessName: user.BusinessName,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
	}
}

func ToCustomerDTO(customer *domain.Customer) domain.CustomerDTO {
	return domain.CustomerDTO{
		ID:               customer.ID,
		Name:             customer.Name,
		ContactNumber:    customer.ContactNumber,
		AlternateContact: customer.AlternateContact,
		Address:          customer.Address,
		Email:            customer.Email,
		CreatedAt:        customer.CreatedAt,
		UpdatedAt:        customer.UpdatedAt,
	}
}

func ToSalesPersonDTO(sp *domain.SalesPerson) domain.SalesPersonDTO {
	return domain.SalesPersonDTO{
		ID:               sp.ID,
		Name:             sp.Name,
		ContactNumber:    sp.ContactNumber,
		AlternateContact: sp.AlternateContact,
		Territory:        sp.Territory,
		Email:            sp.Email,
		IsActive:         sp.IsActive,
		CreatedAt:        sp.CreatedAt,
	}
}

func ToTailorDTO(tailor *domain.Tailor) domain.TailorDTO {
	return domain.TailorDTO{
		ID:               tailor.ID,
		Name:             tailor.Name,
		ContactNumber:    tailor.ContactNumber,
		AlternateContact: tailor.AlternateContact,
		Specialization:   tailor.Specialization,
		Address:          tailor.Address,
		IsActive:         tailor.IsActive,
		CreatedAt:        tailor.CreatedAt,
	}
}

func ToConfigurationDTO(cfg *domain.Configuration) domain.ConfigurationDTO {
	return domain.ConfigurationDTO{
		ID:                 cfg.ID,
		DefaultMakingRate:  cfg.RateCard.MakingRate,
		DefaultFittingRate: cfg.RateCard.FittingRate,
		DefaultTrackRate:   cfg.RateCard.TrackRate,
		DefaultHookRate:    cfg.RateCard.HookRate,
		TermsAndConditions: cfg.TermsAndConditions,
		CompanyName:        cfg.CompanyName,
		CompanyLogo:        cfg.CompanyLogo,
		CompanyAddress:     cfg.CompanyAddress,
		CompanyContact:     cfg.CompanyContact,
		GSTNumber:          cfg.GSTNumber,
		UpdatedAt:          cfg.UpdatedAt,
	}
}

// ToWindowDTO maps a window together with its cost breakdown computed under
// the owning project's frozen rate card.
func ToWindowDTO(window *domain.Window, cost pricing.Breakdown) domain.WindowDTO {
	return domain.WindowDTO{
		ID:                 window.ID,
		RoomID:             window.RoomID,
		ProjectID:          window.ProjectID,
		WindowNumber:       window.WindowNumber,
		Style:              window.Style,
		Width:              window.Width,
		Height:             window.Height,
		PannaCount:         window.PannaCount,
		Meters:             window.Meters,
		FabricCostPerMeter: window.FabricCostPerMeter,
		TrackCount:         window.TrackCount,
		HookCount:          window.HookCount,
		Cost:               cost,
		CreatedAt:          window.CreatedAt,
	}
}

// ToRoomDTO maps a room with its pre-computed window DTOs and totals
func ToRoomDTO(room *domain.Room, windows []domain.WindowDTO, totals pricing.Summary) domain.RoomDTO {
	if windows == nil {
		windows = []domain.WindowDTO{}
	}
	return domain.RoomDTO{
		ID:        room.ID,
		ProjectID: room.ProjectID,
		RoomType:  room.RoomType,
		Notes:     room.Notes,
		Windows:   windows,
		Totals:    totals,
		CreatedAt: room.CreatedAt,
	}
}

// ToProjectDTO maps a project. total is the recomputed, discount-adjusted
// grand total; balance is total minus advance.
func ToProjectDTO(project *domain.Project, total, balance float64) domain.ProjectDTO {
	dto := domain.ProjectDTO{
		ID:                   project.ID,
		QuotationNumber:      project.QuotationNumber,
		CustomerID:           project.CustomerID,
		SalesPersonID:        project.SalesPersonID,
		TailorID:             project.TailorID,
		ProjectType:          project.ProjectType,
		Status:               project.Status,
		RateCard:             project.RateCard,
		TotalAmount:          total,
		AdvanceAmount:        project.AdvanceAmount,
		BalanceAmount:        balance,
		Discount:             project.Discount,
		DiscountType:         project.DiscountType,
		ProbableDeliveryDate: project.ProbableDeliveryDate,
		ProjectNotes:         project.ProjectNotes,
		TermsAndConditions:   project.TermsAndConditions,
		CreatedAt:            project.CreatedAt,
		UpdatedAt:            project.UpdatedAt,
	}
	if project.Customer != nil {
		c := ToCustomerDTO(project.Customer)
		dto.Customer = &c
	}
	if project.SalesPerson != nil {
		sp := ToSalesPersonDTO(project.SalesPerson)
		dto.SalesPerson = &sp
	}
	if project.Tailor != nil {
		t := ToTailorDTO(project.Tailor)
		dto.Tailor = &t
	}
	return dto
}
