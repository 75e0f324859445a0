package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/furnishhq/quotation-api/internal/auth"
)

// MaxPageSize is the maximum allowed page size for paginated queries
const MaxPageSize = 200

// SortOrder represents the sort direction
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// SortConfig holds sorting configuration for list queries
type SortConfig struct {
	Field string    // The field to sort by (API field name)
	Order SortOrder // asc or desc
}

// DefaultSortConfig returns a default sort configuration (created_at DESC)
func DefaultSortConfig() SortConfig {
	return SortConfig{
		Field: "createdAt",
		Order: SortOrderDesc,
	}
}

// ParseSortOrder parses a string into SortOrder, defaulting to desc
func ParseSortOrder(s string) SortOrder {
	if strings.ToLower(s) == "asc" {
		return SortOrderAsc
	}
	return SortOrderDesc
}

// BuildOrderClause builds the SQL ORDER BY clause from field mapping and sort
// config. fieldMap maps API field names to database column names; fields not
// in the whitelist fall back to defaultColumn.
func BuildOrderClause(config SortConfig, fieldMap map[string]string, defaultColumn string) string {
	column, ok := fieldMap[config.Field]
	if !ok {
		column = defaultColumn
	}

	order := "DESC"
	if config.Order == SortOrderAsc {
		order = "ASC"
	}

	return column + " " + order
}

// ApplyUserScope filters a query to rows owned by the authenticated user.
// Every account only ever sees its own customers, staff, and projects, so
// this is applied to all list and lookup queries.
func ApplyUserScope(ctx context.Context, query *gorm.DB) *gorm.DB {
	if userID := auth.UserIDFromContext(ctx); userID != uuid.Nil {
		return query.Where("user_id = ?", userID)
	}
	return query
}

// ApplyUserScopeWithAlias filters by user_id on a specific joined table
func ApplyUserScopeWithAlias(ctx context.Context, query *gorm.DB, tableAlias string) *gorm.DB {
	if userID := auth.UserIDFromContext(ctx); userID != uuid.Nil {
		return query.Where(tableAlias+".user_id = ?", userID)
	}
	return query
}
