// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/storefront-hub/backend/internal/application/usecase/analytics"
	domainerror "github.com/storefront-hub/backend/internal/domain/error"
	"github.com/storefront-hub/backend/internal/integration/entrypoint/dto"
	"github.com/storefront-hub/backend/internal/integration/export"
)

const queryDateLayout = "2006-01-02"

var errNoDataSource = domainerror.NewAnalyticsError(
	domainerror.ErrCodeDataSourceUnavailable,
	"No analytics data source is configured",
	nil,
)

// AnalyticsController handles analytics endpoints.
type AnalyticsController struct {
	summaryUseCase  *analytics.GetFinancialSummaryUseCase
	trendUseCase    *analytics.GetRevenueTrendUseCase
	evaluateUseCase *analytics.EvaluateSnapshotUseCase
	exporter        *export.TrendWorkbookExporter
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	summaryUseCase *analytics.GetFinancialSummaryUseCase,
	trendUseCase *analytics.GetRevenueTrendUseCase,
	evaluateUseCase *analytics.EvaluateSnapshotUseCase,
	exporter *export.TrendWorkbookExporter,
) *AnalyticsController {
	return &AnalyticsController{
		summaryUseCase:  summaryUseCase,
		trendUseCase:    trendUseCase,
		evaluateUseCase: evaluateUseCase,
		exporter:        exporter,
	}
}

// Summary handles GET /analytics/summary requests.
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	if c.summaryUseCase == nil {
		c.handleAnalyticsError(ctx, errNoDataSource)
		return
	}

	companyID, period, err := parseAnalyticsQuery(ctx)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), analytics.GetFinancialSummaryInput{
		CompanyID:   companyID,
		PeriodInput: period,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.CompanyID, output.GeneratedAt, output.Report))
}

// Trend handles GET /analytics/trend requests.
func (c *AnalyticsController) Trend(ctx *gin.Context) {
	output, ok := c.executeTrend(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.CompanyID, output.GeneratedAt, output.Report))
}

// ExportTrend handles GET /analytics/trend/export requests.
// It responds with an XLSX workbook holding the summary and the trend series.
func (c *AnalyticsController) ExportTrend(ctx *gin.Context) {
	output, ok := c.executeTrend(ctx)
	if !ok {
		return
	}

	file, err := c.exporter.Export(output.CompanyID, output.GeneratedAt, output.Report)
	if err != nil {
		slog.Error("Failed to build analytics workbook", "company_id", output.CompanyID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export report",
			Code:  string(domainerror.ErrCodeAnalyticsInternalError),
		})
		return
	}
	defer file.Close()

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", export.FileName(output.CompanyID, output.Report)))
	ctx.Header("Content-Type", export.ContentType)
	ctx.Status(http.StatusOK)

	if err := file.Write(ctx.Writer); err != nil {
		slog.Error("Failed to write analytics workbook", "company_id", output.CompanyID, "error", err)
	}
}

func (c *AnalyticsController) executeTrend(ctx *gin.Context) (*analytics.GetRevenueTrendOutput, bool) {
	if c.trendUseCase == nil {
		c.handleAnalyticsError(ctx, errNoDataSource)
		return nil, false
	}

	companyID, period, err := parseAnalyticsQuery(ctx)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return nil, false
	}

	output, err := c.trendUseCase.Execute(ctx.Request.Context(), analytics.GetRevenueTrendInput{
		CompanyID:   companyID,
		PeriodInput: period,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return nil, false
	}
	return output, true
}

// Evaluate handles POST /analytics/evaluate requests.
// The request body carries the orders, expenses and products to evaluate.
func (c *AnalyticsController) Evaluate(ctx *gin.Context) {
	var req dto.EvaluateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidPayload),
			Details: err.Error(),
		})
		return
	}

	period, err := buildPeriodInput(req.Period, req.StartDate, req.EndDate)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	output, err := c.evaluateUseCase.Execute(ctx.Request.Context(), analytics.EvaluateSnapshotInput{
		PeriodInput: period,
		Snapshot:    req.ToSnapshot(),
		Now:         req.Now,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(uuid.Nil, output.GeneratedAt, output.Report))
}

// parseAnalyticsQuery reads company_id, period, start_date and end_date.
// The period defaults to today.
func parseAnalyticsQuery(ctx *gin.Context) (uuid.UUID, analytics.PeriodInput, error) {
	companyID, err := parseCompanyID(ctx)
	if err != nil {
		return uuid.Nil, analytics.PeriodInput{}, err
	}

	period, err := buildPeriodInput(ctx.DefaultQuery("period", "today"), ctx.Query("start_date"), ctx.Query("end_date"))
	if err != nil {
		return uuid.Nil, analytics.PeriodInput{}, err
	}
	return companyID, period, nil
}

func parseCompanyID(ctx *gin.Context) (uuid.UUID, error) {
	rawCompanyID := ctx.Query("company_id")
	if rawCompanyID == "" {
		return uuid.Nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeMissingCompanyID,
			"company_id is required",
			domainerror.ErrMissingCompanyID,
		)
	}
	companyID, err := uuid.Parse(rawCompanyID)
	if err != nil {
		return uuid.Nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeMissingCompanyID,
			"company_id must be a valid UUID",
			domainerror.ErrMissingCompanyID,
		)
	}
	return companyID, nil
}

func buildPeriodInput(period, rawStart, rawEnd string) (analytics.PeriodInput, error) {
	input := analytics.PeriodInput{Period: period}

	if rawStart != "" {
		start, err := time.Parse(queryDateLayout, rawStart)
		if err != nil {
			return input, invalidDateFormat("start_date")
		}
		input.StartDate = &start
	}
	if rawEnd != "" {
		end, err := time.Parse(queryDateLayout, rawEnd)
		if err != nil {
			return input, invalidDateFormat("end_date")
		}
		input.EndDate = &end
	}
	return input, nil
}

func invalidDateFormat(field string) error {
	return domainerror.NewAnalyticsError(
		domainerror.ErrCodeInvalidDateFormat,
		fmt.Sprintf("Invalid %s format, expected YYYY-MM-DD", field),
		domainerror.ErrInvalidDateFormat,
	)
}

// handleAnalyticsError handles analytics errors and returns appropriate HTTP responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var analyticsErr *domainerror.AnalyticsError
	if errors.As(err, &analyticsErr) {
		statusCode := c.getStatusCodeForAnalyticsError(analyticsErr.Code)
		if statusCode >= http.StatusInternalServerError {
			slog.Error("Analytics request failed", "code", analyticsErr.Code, "error", err)
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: analyticsErr.Message,
			Code:  string(analyticsErr.Code),
		})
		return
	}

	slog.Error("Unexpected analytics error", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeAnalyticsInternalError),
	})
}

// getStatusCodeForAnalyticsError maps analytics error codes to HTTP status codes.
func (c *AnalyticsController) getStatusCodeForAnalyticsError(code domainerror.AnalyticsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidRange,
		domainerror.ErrCodeUnknownPeriod,
		domainerror.ErrCodeMissingCustomRange,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeMissingCompanyID,
		domainerror.ErrCodeInvalidPayload:
		return http.StatusBadRequest
	case domainerror.ErrCodeUndefinedBucketing:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeDataSourceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
