package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/storefront-hub/backend/internal/application/adapter"
	domainerror "github.com/storefront-hub/backend/internal/domain/error"
)

// GetRevenueTrendInput represents the input for getting a revenue trend.
type GetRevenueTrendInput struct {
	CompanyID uuid.UUID
	PeriodInput
}

// GetRevenueTrendOutput represents the output of getting a revenue trend.
// Report.Trend is always set.
type GetRevenueTrendOutput struct {
	CompanyID   uuid.UUID
	GeneratedAt time.Time
	Report      *Report
}

// GetRevenueTrendUseCase builds the bucketed current/previous revenue series.
type GetRevenueTrendUseCase struct {
	loader   *SnapshotLoader
	clock    adapter.Clock
	location *time.Location
}

// NewGetRevenueTrendUseCase creates a new GetRevenueTrendUseCase instance.
func NewGetRevenueTrendUseCase(loader *SnapshotLoader, clock adapter.Clock, location *time.Location) *GetRevenueTrendUseCase {
	if location == nil {
		location = time.UTC
	}
	return &GetRevenueTrendUseCase{
		loader:   loader,
		clock:    clock,
		location: location,
	}
}

// Execute evaluates the period with its trend series.
// Requesting a trend for all-time fails with an UndefinedBucketing error.
func (uc *GetRevenueTrendUseCase) Execute(
	ctx context.Context,
	input GetRevenueTrendInput,
) (*GetRevenueTrendOutput, error) {
	if err := validateCompanyID(input.CompanyID); err != nil {
		return nil, err
	}
	kind, custom, err := parsePeriod(input.PeriodInput)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now().In(uc.location)

	current, err := Resolve(kind, now, custom)
	if err != nil {
		return nil, err
	}
	if _, err := planBuckets(current); err != nil {
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

	report, err := Evaluate(snapshot, Request{Period: kind, Custom: custom, Now: now, WithTrend: true})
	if err != nil {
		return nil, err
	}
	logDiagnostics(input.CompanyID, report)

	return &GetRevenueTrendOutput{
		CompanyID:   input.CompanyID,
		GeneratedAt: now,
		Report:      report,
	}, nil
}
