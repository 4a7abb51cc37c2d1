package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/storefront-hub/backend/internal/application/adapter"
	domainerror "github.com/storefront-hub/backend/internal/domain/error"
)

// GetFinancialSummaryInput represents the input for getting a financial summary.
type GetFinancialSummaryInput struct {
	CompanyID uuid.UUID
	PeriodInput
}

// GetFinancialSummaryOutput represents the output of getting a financial summary.
type GetFinancialSummaryOutput struct {
	CompanyID   uuid.UUID
	GeneratedAt time.Time
	Report      *Report
}

// GetFinancialSummaryUseCase computes revenue, expenses and balance of a company
// for a reporting period, along with the period-over-period comparison.
type GetFinancialSummaryUseCase struct {
	loader   *SnapshotLoader
	clock    adapter.Clock
	location *time.Location
}

// NewGetFinancialSummaryUseCase creates a new GetFinancialSummaryUseCase instance.
func NewGetFinancialSummaryUseCase(loader *SnapshotLoader, clock adapter.Clock, location *time.Location) *GetFinancialSummaryUseCase {
	if location == nil {
		location = time.UTC
	}
	return &GetFinancialSummaryUseCase{
		loader:   loader,
		clock:    clock,
		location: location,
	}
}

// Execute loads the company's data and evaluates the requested period.
func (uc *GetFinancialSummaryUseCase) Execute(
	ctx context.Context,
	input GetFinancialSummaryInput,
) (*GetFinancialSummaryOutput, error) {
	// Validate input
	if err := validateCompanyID(input.CompanyID); err != nil {
		return nil, err
	}
	kind, custom, err := parsePeriod(input.PeriodInput)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now().In(uc.location)

	// Fail on range errors before touching the data sources
	if _, err := Resolve(kind, now, custom); err != nil {
		return nil, err
	}

	snapshot, err := uc.loader.Load(ctx, input.CompanyID)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeDataSourceUnavailable,
			"failed to load analytics data",
			err,
		)
	}

	report, err := Evaluate(snapshot, Request{Period: kind, Custom: custom, Now: now})
	if err != nil {
		return nil, err
	}
	logDiagnostics(input.CompanyID, report)

	return &GetFinancialSummaryOutput{
		CompanyID:   input.CompanyID,
		GeneratedAt: now,
		Report:      report,
	}, nil
}
