package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/furnishhq/quotation-api/internal/repository"
)

// quotationNumberPattern matches Q + 2-digit year + 2-digit month + 4-digit sequence
var quotationNumberPattern = regexp.MustCompile(`^Q\d{2}(0[1-9]|1[0-2])\d{4}$`)

// QuotationNumberService generates unique quotation numbers per user.
//
// Format: Q{YY}{MM}{NNNN}, e.g. Q26080007 for the 7th quotation of a user,
// created in August 2026. YY/MM are the creation month in UTC; NNNN is a
// lifetime per-user counter that never resets, so numbers stay unique even
// across month boundaries.
type QuotationNumberService struct {
	seqRepo *repository.QuotationSequenceRepository
	logger  *zap.Logger
	now     func() time.Time
}

// NewQuotationNumberService creates a new QuotationNumberService
func NewQuotationNumberService(
	seqRepo *repository.QuotationSequenceRepository,
	logger *zap.Logger,
) *QuotationNumberService {
	return &QuotationNumberService{
		seqRepo: seqRepo,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Generate produces the next quotation number for the user. The underlying
// sequence increment is atomic, so concurrent project creations always get
// distinct numbers.
func (s *QuotationNumberService) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	next, err := s.seqRepo.NextSequence(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get next quotation sequence",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return "", fmt.Errorf("failed to generate quotation number: %w", err)
	}

	now := s.now()
	number := fmt.Sprintf("Q%02d%02d%04d", now.Year()%100, int(now.Month()), next)

	s.logger.Info("generated quotation number",
		zap.String("number", number),
		zap.String("user_id", userID.String()),
		zap.Int("sequence", next))

	return number, nil
}

// CurrentSequence returns the last used sequence for a user without
// incrementing it. Returns 0 when no quotation has been numbered yet.
func (s *QuotationNumberService) CurrentSequence(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.seqRepo.CurrentSequence(ctx, userID)
}

// InitializeSequence moves the counter forward for accounts migrated with
// existing numbered quotations. value is the last used sequence.
func (s *QuotationNumberService) InitializeSequence(ctx context.Context, userID uuid.UUID, value int) error {
	return s.seqRepo.SetSequence(ctx, userID, value)
}

// ValidQuotationNumber reports whether a number follows the Q{YY}{MM}{NNNN} format
func ValidQuotationNumber(number string) bool {
	return quotationNumberPattern.MatchString(number)
}
