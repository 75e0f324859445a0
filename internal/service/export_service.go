package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"go.uber.org/zap"

	"github.com/furnishhq/quotation-api/internal/auth"
	"github.com/furnishhq/quotation-api/internal/domain"
	"github.com/furnishhq/quotation-api/internal/storage"
)

// ExportService renders a recomputed quotation as WhatsApp share text or a
// PDF document. It consumes QuotationService output only; it never prices
// anything itself.
type ExportService struct {
	quotations    *QuotationService
	configService *ConfigurationService
	storage       storage.Storage
	logger        *zap.Logger
}

func NewExportService(
	quotations *QuotationService,
	configService *ConfigurationService,
	storage storage.Storage,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{
		quotations:    quotations,
		configService: configService,
		storage:       storage,
		logger:        logger,
	}
}

// WhatsAppText renders the quotation as a plain-text message ready to paste
// into WhatsApp. Rooms without windows are skipped.
func (s *ExportService) WhatsAppText(ctx context.Context, projectID uuid.UUID) (string, error) {
	q, err := s.quotations.Build(ctx, projectID)
	if err != nil {
		return "", err
	}

	cfg, err := s.configService.Get(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	company := cfg.CompanyName
	if company == "" {
		company = "Quotation"
	}
	fmt.Fprintf(&b, "*%s*\n", company)
	fmt.Fprintf(&b, "Quotation: %s\n", q.Project.QuotationNumber)
	if q.Project.Customer != nil {
		fmt.Fprintf(&b, "Customer: %s\n", q.Project.Customer.Name)
	}
	fmt.Fprintf(&b, "Date: %s\n\n", q.Project.CreatedAt.Format("02 Jan 2006"))

	for _, room := range q.Rooms {
		if len(room.Windows) == 0 {
			continue
		}
		fmt.Fprintf(&b, "*%s*\n", room.RoomType)
		for _, w := range room.Windows {
			fmt.Fprintf(&b, "  Window %d (%s): %.0f\" x %.0f\" — %s\n",
				w.WindowNumber, w.Style, w.Width, w.Height, FormatINR(w.Cost.Total))
		}
		fmt.Fprintf(&b, "  Room total: %s\n\n", FormatINR(room.Totals.Total))
	}

	fmt.Fprintf(&b, "Subtotal: %s\n", FormatINR(q.Totals.Total))
	if q.Project.Discount > 0 {
		if q.Project.DiscountType == domain.DiscountTypePercentage {
			fmt.Fprintf(&b, "Discount: %.1f%%\n", q.Project.Discount)
		} else {
			fmt.Fprintf(&b, "Discount: %s\n", FormatINR(q.Project.Discount))
		}
	}
	fmt.Fprintf(&b, "*Grand Total: %s*\n", FormatINR(q.GrandTotal))
	if q.AdvanceAmount > 0 {
		fmt.Fprintf(&b, "Advance: %s\n", FormatINR(q.AdvanceAmount))
		fmt.Fprintf(&b, "Balance: %s\n", FormatINR(q.BalanceAmount))
	}

	if q.Project.TermsAndConditions != "" {
		fmt.Fprintf(&b, "\n_%s_\n", q.Project.TermsAndConditions)
	}
	if cfg.CompanyContact != "" {
		fmt.Fprintf(&b, "\n%s", cfg.CompanyContact)
	}

	return b.String(), nil
}

// PDF renders the quotation as an A4 PDF and archives a copy in storage
// under quotations/{userId}/{number}.pdf.
func (s *ExportService) PDF(ctx context.Context, projectID uuid.UUID) ([]byte, string, error) {
	q, err := s.quotations.Build(ctx, projectID)
	if err != nil {
		return nil, "", err
	}

	cfg, err := s.configService.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	m := maroto.New(config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build())

	s.addHeader(m, q, cfg)
	s.addWindowTable(m, q)
	s.addSummary(m, q)
	s.addTerms(m, q)

	doc, err := m.Generate()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate PDF: %w", err)
	}
	pdfBytes := doc.GetBytes()

	filename := q.Project.QuotationNumber + ".pdf"
	archivePath := fmt.Sprintf("quotations/%s/%s", auth.UserIDFromContext(ctx).String(), filename)
	if _, err := s.storage.Save(ctx, archivePath, "application/pdf", pdfBytes); err != nil {
		// Archiving is best effort; the caller still gets the document.
		s.logger.Warn("failed to archive quotation PDF",
			zap.String("path", archivePath),
			zap.Error(err),
		)
	}

	return pdfBytes, filename, nil
}

func (s *ExportService) addHeader(m core.Maroto, q *domain.QuotationDTO, cfg *domain.ConfigurationDTO) {
	company := cfg.CompanyName
	if company == "" {
		company = "Quotation"
	}

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(company, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	if cfg.CompanyAddress != "" || cfg.CompanyContact != "" {
		sub := strings.TrimSpace(cfg.CompanyAddress + "  " + cfg.CompanyContact)
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(sub, props.Text{
						Size:  8,
						Align: align.Center,
						Color: &props.Color{Red: 80, Green: 80, Blue: 80},
					}),
				),
			),
		)
	}
	if cfg.GSTNumber != "" {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New("GSTIN: "+cfg.GSTNumber, props.Text{
						Size:  8,
						Align: align.Center,
						Color: &props.Color{Red: 80, Green: 80, Blue: 80},
					}),
				),
			),
		)
	}

	customerName := ""
	if q.Project.Customer != nil {
		customerName = q.Project.Customer.Name
	}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Quotation: %s", q.Project.QuotationNumber), props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", q.Project.CreatedAt.Format("02 Jan 2006")), props.Text{
					Size:  9,
					Align: align.Right,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Customer: %s", customerName), props.Text{
					Size:  9,
					Align: align.Left,
				}),
			),
		),
		row.New(4),
	)
}

func (s *ExportService) addWindowTable(m core.Maroto, q *domain.QuotationDTO) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: headerBg}

	for _, room := range q.Rooms {
		if len(room.Windows) == 0 {
			continue
		}

		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(
					text.New(string(room.RoomType), props.Text{
						Size:  10,
						Style: fontstyle.Bold,
						Align: align.Left,
					}),
				),
			),
			row.New(7).Add(
				col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
				col.New(2).Add(text.New("Style", headerText)).WithStyle(&headerCell),
				col.New(2).Add(text.New("Size (in)", headerText)).WithStyle(&headerCell),
				col.New(1).Add(text.New("Panna", headerText)).WithStyle(&headerCell),
				col.New(1).Add(text.New("Meters", headerText)).WithStyle(&headerCell),
				col.New(2).Add(text.New("Fabric", headerText)).WithStyle(&headerCell),
				col.New(3).Add(text.New("Total", headerText)).WithStyle(&headerCell),
			),
		)

		rowText := props.Text{Size: 7, Align: align.Center}
		rightText := props.Text{Size: 7, Align: align.Right}
		for _, w := range room.Windows {
			m.AddRows(
				row.New(6).Add(
					col.New(1).Add(text.New(fmt.Sprintf("%d", w.WindowNumber), rowText)),
					col.New(2).Add(text.New(w.Style, rowText)),
					col.New(2).Add(text.New(fmt.Sprintf("%.0f x %.0f", w.Width, w.Height), rowText)),
					col.New(1).Add(text.New(fmt.Sprintf("%d", w.PannaCount), rowText)),
					col.New(1).Add(text.New(fmt.Sprintf("%.2f", w.Meters), rowText)),
					col.New(2).Add(text.New(FormatINR(w.Cost.FabricCost), rightText)),
					col.New(3).Add(text.New(FormatINR(w.Cost.Total), rightText)),
				),
			)
		}

		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New("Room total", props.Text{
					Size:  8,
					Style: fontstyle.Bold,
					Align: align.Right,
				})),
				col.New(3).Add(text.New(FormatINR(room.Totals.Total), props.Text{
					Size:  8,
					Style: fontstyle.Bold,
					Align: align.Right,
				})),
			),
			row.New(3),
		)
	}
}

func (s *ExportService) addSummary(m core.Maroto, q *domain.QuotationDTO) {
	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	addLine := func(label, value string) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(value, labelStyle)).WithStyle(summaryCell),
			),
		)
	}

	m.AddRows(row.New(4))
	addLine("Fabric", FormatINR(q.Totals.FabricCost))
	addLine("Track", FormatINR(q.Totals.TrackCost))
	addLine("Making", FormatINR(q.Totals.MakingCost))
	addLine("Fitting", FormatINR(q.Totals.FittingCost))
	addLine("Hooks", FormatINR(q.Totals.HookCost))
	if q.Project.Discount > 0 {
		if q.Project.DiscountType == domain.DiscountTypePercentage {
			addLine(fmt.Sprintf("Discount (%.1f%%)", q.Project.Discount), FormatINR(q.Totals.Total-q.GrandTotal))
		} else {
			addLine("Discount", FormatINR(q.Totals.Total-q.GrandTotal))
		}
	}
	addLine("Grand Total", FormatINR(q.GrandTotal))
	if q.AdvanceAmount > 0 {
		addLine("Advance", FormatINR(q.AdvanceAmount))
		addLine("Balance", FormatINR(q.BalanceAmount))
	}
}

func (s *ExportService) addTerms(m core.Maroto, q *domain.QuotationDTO) {
	if q.Project.TermsAndConditions == "" {
		return
	}

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New("Terms & Conditions", props.Text{
					Size:  8,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
	for _, line := range strings.Split(q.Project.TermsAndConditions, "\n") {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(line, props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 80, Green: 80, Blue: 80},
					}),
				),
			),
		)
	}

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", time.Now().Format("02 Jan 2006 15:04")),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
