package analytics

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/storefront-hub/backend/internal/domain/error"
	"github.com/storefront-hub/backend/internal/domain/valueobject"
)

// PeriodInput is the period selection shared by the analytics use cases.
type PeriodInput struct {
	Period    string
	StartDate *time.Time
	EndDate   *time.Time
}

// parsePeriod validates the period token and builds the custom range, if any.
func parsePeriod(input PeriodInput) (valueobject.PeriodKind, *DateRange, error) {
	kind, ok := valueobject.ParsePeriodKind(input.Period)
	if !ok {
		return "", nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeUnknownPeriod,
			"period must be: today, yesterday, last-7-days, last-30-days, last-365-days, custom, or all-time",
			domainerror.ErrUnknownPeriod,
		)
	}

	if kind != valueobject.PeriodCustom {
		return kind, nil, nil
	}

	if input.StartDate == nil || input.EndDate == nil {
		return "", nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeMissingCustomRange,
			"custom period requires start_date and end_date",
			domainerror.ErrMissingCustomRange,
		)
	}

	return kind, &DateRange{Start: *input.StartDate, End: *input.EndDate}, nil
}

func validateCompanyID(companyID uuid.UUID) error {
	if companyID == uuid.Nil {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeMissingCompanyID,
			"company_id is required",
			domainerror.ErrMissingCompanyID,
		)
	}
	return nil
}

// logDiagnostics reports excluded records without failing the request.
func logDiagnostics(companyID uuid.UUID, report *Report) {
	diag := report.Diagnostics
	if diag.IsClean() {
		return
	}
	slog.Warn("Analytics data-quality issues",
		"company_id", companyID,
		"period", report.Range.Kind,
		"missing_timestamps", diag.MissingTimestamps,
		"unparseable_timestamps", diag.UnparseableTimestamps,
		"malformed_expense_dates", diag.MalformedExpenseDates,
	)
}
