package controller

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/storefront-hub/backend/internal/domain/error"
	"github.com/storefront-hub/backend/internal/integration/entrypoint/dto"
)

// CacheInvalidator drops everything cached for a company.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, companyID string) error
}

// CacheController handles cache maintenance endpoints.
type CacheController struct {
	invalidator CacheInvalidator
}

// NewCacheController creates a new cache controller instance.
// A nil invalidator means nothing is cached and refreshes are no-ops.
func NewCacheController(invalidator CacheInvalidator) *CacheController {
	return &CacheController{invalidator: invalidator}
}

// Refresh handles POST /analytics/refresh requests.
// The next report for the company reads its data source again.
func (c *CacheController) Refresh(ctx *gin.Context) {
	companyID, err := parseCompanyID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "company_id is required and must be a valid UUID",
			Code:  string(domainerror.ErrCodeMissingCompanyID),
		})
		return
	}

	if c.invalidator != nil {
		if err := c.invalidator.Invalidate(ctx.Request.Context(), companyID.String()); err != nil {
			slog.Error("Failed to invalidate analytics cache", "company_id", companyID, "error", err)
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: "Failed to refresh cached data",
				Code:  string(domainerror.ErrCodeDataSourceUnavailable),
			})
			return
		}
	}

	ctx.Status(http.StatusNoContent)
}
