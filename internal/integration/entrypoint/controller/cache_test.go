package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubInvalidator struct {
	companyIDs []string
	err        error
}

func (s *stubInvalidator) Invalidate(_ context.Context, companyID string) error {
	s.companyIDs = append(s.companyIDs, companyID)
	return s.err
}

func TestCacheController_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const companyID = "8f14e45f-ceea-467f-a0e6-2b5c1e0c7a11"

	serve := func(invalidator CacheInvalidator, query string) *httptest.ResponseRecorder {
		engine := gin.New()
		engine.POST("/refresh", NewCacheController(invalidator).Refresh)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/refresh"+query, nil))
		return w
	}

	t.Run("invalidates the company", func(t *testing.T) {
		stub := &stubInvalidator{}
		w := serve(stub, "?company_id="+companyID)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, []string{companyID}, stub.companyIDs)
	})

	t.Run("without cache", func(t *testing.T) {
		w := serve(nil, "?company_id="+companyID)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("invalid company", func(t *testing.T) {
		stub := &stubInvalidator{}
		w := serve(stub, "?company_id=shop")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ANL-010005")
		assert.Empty(t, stub.companyIDs)
	})

	t.Run("redis failure", func(t *testing.T) {
		w := serve(&stubInvalidator{err: errors.New("connection refused")}, "?company_id="+companyID)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "ANL-990002")
	})
}
