// Package export renders analytics reports into downloadable workbooks.
package export

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/storefront-hub/backend/internal/application/usecase/analytics"
)

// Sheet names of the exported workbook.
const (
	SummarySheet = "Summary"
	TrendSheet   = "Trend"
)

// ContentType is the MIME type of an exported workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TrendWorkbookExporter builds an XLSX workbook from an evaluated report.
type TrendWorkbookExporter struct{}

// NewTrendWorkbookExporter creates a new TrendWorkbookExporter instance.
func NewTrendWorkbookExporter() *TrendWorkbookExporter {
	return &TrendWorkbookExporter{}
}

// FileName returns the attachment name of a company's workbook.
func FileName(companyID uuid.UUID, report *analytics.Report) string {
	return fmt.Sprintf("analytics-%s-%s.xlsx", companyID.String()[:8], report.Range.Kind)
}

// Export writes the summary and the trend series into two sheets.
// The report must carry a trend series.
func (e *TrendWorkbookExporter) Export(companyID uuid.UUID, generatedAt time.Time, report *analytics.Report) (*excelize.File, error) {
	if report == nil || report.Trend == nil {
		return nil, fmt.Errorf("report has no trend series")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := writeSummary(f, companyID, generatedAt, report, headerStyle); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to write summary sheet: %w", err)
	}
	if err := writeTrend(f, report.Trend, headerStyle); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to write trend sheet: %w", err)
	}

	return f, nil
}

func writeSummary(f *excelize.File, companyID uuid.UUID, generatedAt time.Time, report *analytics.Report, headerStyle int) error {
	s := report.Summary
	a := report.Allocation

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Company", companyID.String()},
		{"Period", string(report.Range.Kind)},
		{"Generated at", generatedAt.Format(time.RFC3339)},
		{"Revenue", money(s.Revenue)},
		{"Expenses", money(s.Expenses)},
		{"Balance", money(s.Balance)},
		{"Operating expenses", money(s.OperatingExpenses)},
		{"Inventory valuation", money(s.InventoryValuation)},
		{"Employee expenses", money(a.Employee)},
		{"Electricity expenses", money(a.Electricity)},
		{"Purchase costs", money(a.Purchase)},
		{"Custom expenses", money(a.DiscretionaryShare)},
		{"Orders", s.OrderCount},
		{"Average order value", money(s.AverageOrderValue)},
		{"Markup profit", money(s.MarkupProfit)},
		{"Manual payments", money(s.Payments.Manual)},
		{"Demo online payments", money(s.Payments.DemoOnline)},
		{"Real online payments", money(s.Payments.RealOnline)},
	}
	if report.Range.Bounded {
		rows = append(rows,
			[]interface{}{"From", report.Range.Start.Format(time.DateOnly)},
			[]interface{}{"To", report.Range.End.Format(time.DateOnly)},
		)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetRowStyle(SummarySheet, 1, 1, headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheet, "A", "B", 24)
}

func writeTrend(f *excelize.File, series *analytics.BucketSeries, headerStyle int) error {
	if _, err := f.NewSheet(TrendSheet); err != nil {
		return err
	}

	headers := []string{"Bucket", "Current", "Previous"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(TrendSheet, cell, h); err != nil {
			return err
		}
	}

	for i, b := range series.Buckets {
		row := i + 2
		if err := f.SetCellValue(TrendSheet, fmt.Sprintf("A%d", row), b.Label); err != nil {
			return err
		}
		if err := f.SetCellValue(TrendSheet, fmt.Sprintf("B%d", row), money(b.Current)); err != nil {
			return err
		}
		if err := f.SetCellValue(TrendSheet, fmt.Sprintf("C%d", row), money(b.Previous)); err != nil {
			return err
		}
	}

	totalRow := len(series.Buckets) + 2
	if err := f.SetCellValue(TrendSheet, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(TrendSheet, fmt.Sprintf("B%d", totalRow), money(series.TotalCurrent())); err != nil {
		return err
	}
	if err := f.SetCellValue(TrendSheet, fmt.Sprintf("C%d", totalRow), money(series.TotalPrevious())); err != nil {
		return err
	}

	return f.SetRowStyle(TrendSheet, 1, 1, headerStyle)
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
