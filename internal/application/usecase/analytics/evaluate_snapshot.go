package analytics

import (
	"context"
	"time"

	"github.com/storefront-hub/backend/internal/application/adapter"
	"github.com/storefront-hub/backend/internal/domain/valueobject"
)

// EvaluateSnapshotInput carries caller-supplied data to evaluate without
// touching any repository.
type EvaluateSnapshotInput struct {
	PeriodInput
	Snapshot Snapshot

	// Now overrides the evaluation instant; the clock is used when nil.
	Now *time.Time
}

// EvaluateSnapshotOutput represents the output of a stateless evaluation.
type EvaluateSnapshotOutput struct {
	GeneratedAt time.Time
	Report      *Report
}

// EvaluateSnapshotUseCase runs the engine over an in-memory snapshot.
type EvaluateSnapshotUseCase struct {
	clock    adapter.Clock
	location *time.Location
}

// NewEvaluateSnapshotUseCase creates a new EvaluateSnapshotUseCase instance.
func NewEvaluateSnapshotUseCase(clock adapter.Clock, location *time.Location) *EvaluateSnapshotUseCase {
	if location == nil {
		location = time.UTC
	}
	return &EvaluateSnapshotUseCase{
		clock:    clock,
		location: location,
	}
}

// Execute evaluates the snapshot. The trend series is included for every
// period kind except all-time.
func (uc *EvaluateSnapshotUseCase) Execute(_ context.Context, input EvaluateSnapshotInput) (*EvaluateSnapshotOutput, error) {
	kind, custom, err := parsePeriod(input.PeriodInput)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if input.Now != nil {
		now = *input.Now
	}
	now = now.In(uc.location)

	report, err := Evaluate(input.Snapshot, Request{
		Period:    kind,
		Custom:    custom,
		Now:       now,
		WithTrend: kind != valueobject.PeriodAllTime,
	})
	if err != nil {
		return nil, err
	}

	return &EvaluateSnapshotOutput{
		GeneratedAt: now,
		Report:      report,
	}, nil
}
