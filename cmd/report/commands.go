package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/storefront-hub/backend/internal/application/usecase/analytics"
	"github.com/storefront-hub/backend/internal/integration/entrypoint/dto"
	"github.com/storefront-hub/backend/internal/integration/export"
)

const commandTimeout = 60 * time.Second

func newSummaryCmd(f *reportFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print revenue, allocated expenses and balance for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			companyID, err := f.companyID()
			if err != nil {
				return err
			}
			period, err := f.periodInput()
			if err != nil {
				return err
			}

			app, err := newApp(f.timezone)
			if err != nil {
				return err
			}
			defer app.Close()

			output, err := app.injector.SummaryUseCase.Execute(ctx, analytics.GetFinancialSummaryInput{
				CompanyID:   companyID,
				PeriodInput: period,
			})
			if err != nil {
				return fmt.Errorf("failed to compute summary: %w", err)
			}

			return writeJSON(cmd.OutOrStdout(), dto.ToSummaryResponse(output.CompanyID, output.GeneratedAt, output.Report))
		},
	}
}

func newTrendCmd(f *reportFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Print the bucketed revenue trend for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			output, closeApp, err := runTrend(ctx, f)
			if err != nil {
				return err
			}
			defer closeApp()

			return writeJSON(cmd.OutOrStdout(), dto.ToSummaryResponse(output.CompanyID, output.GeneratedAt, output.Report))
		},
	}
}

func newExportCmd(f *reportFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the summary and trend of a period to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			output, closeApp, err := runTrend(ctx, f)
			if err != nil {
				return err
			}
			defer closeApp()

			if out == "" {
				out = export.FileName(output.CompanyID, output.Report)
			}

			file, err := export.NewTrendWorkbookExporter().Export(output.CompanyID, output.GeneratedAt, output.Report)
			if err != nil {
				return fmt.Errorf("failed to build workbook: %w", err)
			}
			defer file.Close()

			if err := file.SaveAs(out); err != nil {
				return fmt.Errorf("failed to save workbook: %w", err)
			}
			slog.Info("Workbook written", "path", out, "company_id", output.CompanyID)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Output file (defaults to analytics-<company>-<period>.xlsx)")
	return cmd
}

func runTrend(ctx context.Context, f *reportFlags) (*analytics.GetRevenueTrendOutput, func(), error) {
	companyID, err := f.companyID()
	if err != nil {
		return nil, nil, err
	}
	period, err := f.periodInput()
	if err != nil {
		return nil, nil, err
	}

	app, err := newApp(f.timezone)
	if err != nil {
		return nil, nil, err
	}

	output, err := app.injector.TrendUseCase.Execute(ctx, analytics.GetRevenueTrendInput{
		CompanyID:   companyID,
		PeriodInput: period,
	})
	if err != nil {
		app.Close()
		return nil, nil, fmt.Errorf("failed to compute trend: %w", err)
	}
	return output, app.Close, nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
