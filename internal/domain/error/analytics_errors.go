// Package error defines domain-specific errors for the storefront analytics service.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidRange is returned when a custom range starts after it ends.
	ErrInvalidRange = errors.New("start_date must not be after end_date")

	// ErrUnknownPeriod is returned when the period token is not recognized.
	ErrUnknownPeriod = errors.New("period must be: today, yesterday, last-7-days, last-30-days, last-365-days, custom, or all-time")

	// ErrMissingCustomRange is returned when a custom period lacks start_date or end_date.
	ErrMissingCustomRange = errors.New("custom period requires start_date and end_date")

	// ErrInvalidDateFormat is returned when a date parameter cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrMissingCompanyID is returned when company_id is absent or malformed.
	ErrMissingCompanyID = errors.New("company_id is required and must be a valid UUID")

	// ErrUndefinedBucketing is returned when a trend series is requested for all-time.
	ErrUndefinedBucketing = errors.New("trend series is undefined for the all-time period")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRange       AnalyticsErrorCode = "ANL-010001"
	ErrCodeUnknownPeriod      AnalyticsErrorCode = "ANL-010002"
	ErrCodeMissingCustomRange AnalyticsErrorCode = "ANL-010003"
	ErrCodeInvalidDateFormat  AnalyticsErrorCode = "ANL-010004"
	ErrCodeMissingCompanyID   AnalyticsErrorCode = "ANL-010005"
	ErrCodeInvalidPayload     AnalyticsErrorCode = "ANL-010006"

	// Contract errors (02XXXX)
	ErrCodeUndefinedBucketing AnalyticsErrorCode = "ANL-020001"

	// Throttling errors (03XXXX)
	ErrCodeRateLimited AnalyticsErrorCode = "ANL-030001"

	// Internal errors (99XXXX)
	ErrCodeAnalyticsInternalError AnalyticsErrorCode = "ANL-990001"
	ErrCodeDataSourceUnavailable  AnalyticsErrorCode = "ANL-990002"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
