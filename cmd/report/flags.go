package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/storefront-hub/backend/internal/application/usecase/analytics"
)

const dateLayout = "2006-01-02"

// reportFlags are the persistent flags shared by every report command.
type reportFlags struct {
	company  string
	period   string
	start    string
	end      string
	timezone string
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.company, "company", "", "Company ID (UUID)")
	cmd.PersistentFlags().StringVar(&f.period, "period", "today", "Reporting period (today, yesterday, last-7-days, last-30-days, last-365-days, custom, all-time)")
	cmd.PersistentFlags().StringVar(&f.start, "start", "", "Custom period start date (YYYY-MM-DD)")
	cmd.PersistentFlags().StringVar(&f.end, "end", "", "Custom period end date (YYYY-MM-DD)")
	cmd.PersistentFlags().StringVar(&f.timezone, "timezone", "", "IANA timezone overriding REPORT_TIMEZONE")
}

func (f *reportFlags) companyID() (uuid.UUID, error) {
	if f.company == "" {
		return uuid.Nil, fmt.Errorf("--company is required")
	}
	id, err := uuid.Parse(f.company)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --company %q: %w", f.company, err)
	}
	return id, nil
}

func (f *reportFlags) periodInput() (analytics.PeriodInput, error) {
	input := analytics.PeriodInput{Period: f.period}

	if f.start != "" {
		start, err := time.Parse(dateLayout, f.start)
		if err != nil {
			return input, fmt.Errorf("invalid --start %q, expected YYYY-MM-DD", f.start)
		}
		input.StartDate = &start
	}
	if f.end != "" {
		end, err := time.Parse(dateLayout, f.end)
		if err != nil {
			return input, fmt.Errorf("invalid --end %q, expected YYYY-MM-DD", f.end)
		}
		input.EndDate = &end
	}
	return input, nil
}
