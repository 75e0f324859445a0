package service

import "errors"

// Sentinel errors mapped to HTTP status codes by the handlers
var (
	ErrNotFound             = errors.New("resource not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrCustomerInUse        = errors.New("customer has existing projects")
	ErrSalesPersonInUse     = errors.New("sales person has existing projects")
	ErrNameTaken            = errors.New("name already in use")
	ErrInactiveStaff        = errors.New("staff member is inactive")
	ErrDuplicateQuotation   = errors.New("quotation number already exists")
	ErrRoomNotInProject     = errors.New("room does not belong to an accessible project")
	ErrInvalidDiscount      = errors.New("discount exceeds quotation total")
	ErrUnsupportedImageType = errors.New("unsupported image type")
)
