package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportFlags_CompanyID(t *testing.T) {
	t.Run("missing company", func(t *testing.T) {
		f := &reportFlags{}
		_, err := f.companyID()
		assert.EqualError(t, err, "--company is required")
	})

	t.Run("invalid company", func(t *testing.T) {
		f := &reportFlags{company: "shop-1"}
		_, err := f.companyID()
		assert.ErrorContains(t, err, "invalid --company")
	})

	t.Run("valid company", func(t *testing.T) {
		f := &reportFlags{company: "8f14e45f-ceea-467f-a0e6-2b5c1e0c7a11"}
		id, err := f.companyID()
		require.NoError(t, err)
		assert.Equal(t, "8f14e45f-ceea-467f-a0e6-2b5c1e0c7a11", id.String())
	})
}

func TestReportFlags_PeriodInput(t *testing.T) {
	t.Run("custom dates", func(t *testing.T) {
		f := &reportFlags{period: "custom", start: "2024-03-01", end: "2024-03-10"}
		input, err := f.periodInput()
		require.NoError(t, err)
		assert.Equal(t, "custom", input.Period)
		require.NotNil(t, input.StartDate)
		require.NotNil(t, input.EndDate)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *input.StartDate)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *input.EndDate)
	})

	t.Run("no dates", func(t *testing.T) {
		f := &reportFlags{period: "last-7-days"}
		input, err := f.periodInput()
		require.NoError(t, err)
		assert.Nil(t, input.StartDate)
		assert.Nil(t, input.EndDate)
	})

	t.Run("bad start", func(t *testing.T) {
		f := &reportFlags{period: "custom", start: "01/03/2024"}
		_, err := f.periodInput()
		assert.ErrorContains(t, err, "invalid --start")
	})

	t.Run("bad end", func(t *testing.T) {
		f := &reportFlags{period: "custom", start: "2024-03-01", end: "tomorrow"}
		_, err := f.periodInput()
		assert.ErrorContains(t, err, "invalid --end")
	})
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "dev\n", out.String())
}
