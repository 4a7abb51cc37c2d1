// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront-hub/backend/internal/application/usecase/analytics"
	"github.com/storefront-hub/backend/internal/domain/entity"
)

// SummaryResponse represents the response for the financial summary API.
type SummaryResponse struct {
	Data SummaryData `json:"data"`
}

// SummaryData represents the data section of the summary response.
type SummaryData struct {
	CompanyID   string                `json:"company_id,omitempty"`
	GeneratedAt string                `json:"generated_at"`
	Period      PeriodResponse        `json:"period"`
	Summary     BalanceResponse       `json:"summary"`
	Allocation  AllocationResponse    `json:"allocation"`
	Comparison  *ComparisonResponse   `json:"comparison"`
	Trend       *TrendResponse        `json:"trend,omitempty"`
	Diagnostics analytics.Diagnostics `json:"diagnostics"`
}

// PeriodResponse describes the resolved reporting window.
type PeriodResponse struct {
	Kind       string  `json:"kind"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	Days       int     `json:"days"`
	Multiplier float64 `json:"multiplier"`
}

// BalanceResponse represents the financial result of a period.
type BalanceResponse struct {
	Revenue            float64                  `json:"revenue"`
	Expenses           float64                  `json:"expenses"`
	Balance            float64                  `json:"balance"`
	OperatingExpenses  float64                  `json:"operating_expenses"`
	InventoryValuation float64                  `json:"inventory_valuation"`
	OrderCount         int                      `json:"order_count"`
	AverageOrderValue  float64                  `json:"average_order_value"`
	MarkupProfit       float64                  `json:"markup_profit"`
	Payments           PaymentBreakdownResponse `json:"payments"`
}

// PaymentBreakdownResponse splits revenue by payment method.
type PaymentBreakdownResponse struct {
	Manual     float64 `json:"manual"`
	DemoOnline float64 `json:"demo_online"`
	RealOnline float64 `json:"real_online"`
}

// AllocationResponse represents the period share of the company's costs.
type AllocationResponse struct {
	EmployeeExpenses    float64 `json:"employee_expenses"`
	ElectricityExpenses float64 `json:"electricity_expenses"`
	PurchaseCosts       float64 `json:"purchase_costs"`
	FixedShare          float64 `json:"fixed_share"`
	CustomExpenses      float64 `json:"custom_expenses"`
	CustomExpenseCount  int     `json:"custom_expense_count"`
}

// ComparisonResponse compares the period with the preceding one.
type ComparisonResponse struct {
	PreviousStartDate string         `json:"previous_start_date"`
	PreviousEndDate   string         `json:"previous_end_date"`
	Revenue           MetricResponse `json:"revenue"`
	Expenses          MetricResponse `json:"expenses"`
	Balance           MetricResponse `json:"balance"`
	OrderCount        MetricResponse `json:"order_count"`
}

// MetricResponse holds one compared metric. ChangePct is null when the
// previous value is zero.
type MetricResponse struct {
	Current   float64  `json:"current"`
	Previous  float64  `json:"previous"`
	ChangePct *float64 `json:"change_pct"`
}

// TrendResponse represents the bucketed revenue series.
type TrendResponse struct {
	Unit          string           `json:"unit"`
	Buckets       []BucketResponse `json:"buckets"`
	TotalCurrent  float64          `json:"total_current"`
	TotalPrevious float64          `json:"total_previous"`
}

// BucketResponse represents one trend bucket.
type BucketResponse struct {
	Index    int     `json:"index"`
	Label    string  `json:"label"`
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

// ToSummaryResponse converts an evaluated report to a SummaryResponse DTO.
func ToSummaryResponse(companyID uuid.UUID, generatedAt time.Time, report *analytics.Report) SummaryResponse {
	data := SummaryData{
		GeneratedAt: generatedAt.Format(time.RFC3339),
		Period:      toPeriodResponse(report),
		Summary:     toBalanceResponse(report.Summary),
		Allocation:  toAllocationResponse(report.Allocation),
		Diagnostics: report.Diagnostics,
	}
	if companyID != uuid.Nil {
		data.CompanyID = companyID.String()
	}
	if report.Comparison != nil {
		data.Comparison = toComparisonResponse(report.Comparison)
	}
	if report.Trend != nil {
		trend := toTrendResponse(report.Trend)
		data.Trend = &trend
	}
	return SummaryResponse{Data: data}
}

func toPeriodResponse(report *analytics.Report) PeriodResponse {
	r := report.Range
	period := PeriodResponse{
		Kind:       string(r.Kind),
		Days:       r.Days(),
		Multiplier: report.Allocation.Multiplier.Float64(),
	}
	if r.Bounded {
		start := r.Start.Format("2006-01-02")
		end := r.End.Format("2006-01-02")
		period.StartDate = &start
		period.EndDate = &end
	}
	return period
}

func toBalanceResponse(b analytics.Balance) BalanceResponse {
	return BalanceResponse{
		Revenue:            toFloat(b.Revenue),
		Expenses:           toFloat(b.Expenses),
		Balance:            toFloat(b.Balance),
		OperatingExpenses:  toFloat(b.OperatingExpenses),
		InventoryValuation: toFloat(b.InventoryValuation),
		OrderCount:         b.OrderCount,
		AverageOrderValue:  toFloat(b.AverageOrderValue),
		MarkupProfit:       toFloat(b.MarkupProfit),
		Payments: PaymentBreakdownResponse{
			Manual:     toFloat(b.Payments.Manual),
			DemoOnline: toFloat(b.Payments.DemoOnline),
			RealOnline: toFloat(b.Payments.RealOnline),
		},
	}
}

func toAllocationResponse(a analytics.Allocation) AllocationResponse {
	return AllocationResponse{
		EmployeeExpenses:    toFloat(a.Employee),
		ElectricityExpenses: toFloat(a.Electricity),
		PurchaseCosts:       toFloat(a.Purchase),
		FixedShare:          toFloat(a.FixedShare),
		CustomExpenses:      toFloat(a.DiscretionaryShare),
		CustomExpenseCount:  a.DiscretionaryCount,
	}
}

func toComparisonResponse(c *analytics.PeriodComparison) *ComparisonResponse {
	return &ComparisonResponse{
		PreviousStartDate: c.PreviousRange.Start.Format("2006-01-02"),
		PreviousEndDate:   c.PreviousRange.End.Format("2006-01-02"),
		Revenue:           toMetricResponse(c.Revenue),
		Expenses:          toMetricResponse(c.Expenses),
		Balance:           toMetricResponse(c.Balance),
		OrderCount:        toMetricResponse(c.OrderCount),
	}
}

func toMetricResponse(m analytics.MetricComparison) MetricResponse {
	return MetricResponse{
		Current:   toFloat(m.Current),
		Previous:  toFloat(m.Previous),
		ChangePct: m.ChangePct,
	}
}

func toTrendResponse(s *analytics.BucketSeries) TrendResponse {
	buckets := make([]BucketResponse, len(s.Buckets))
	for i, b := range s.Buckets {
		buckets[i] = BucketResponse{
			Index:    b.Index,
			Label:    b.Label,
			Current:  toFloat(b.Current),
			Previous: toFloat(b.Previous),
		}
	}
	return TrendResponse{
		Unit:          string(s.Unit),
		Buckets:       buckets,
		TotalCurrent:  toFloat(s.TotalCurrent()),
		TotalPrevious: toFloat(s.TotalPrevious()),
	}
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// EvaluateRequest represents the request body for a stateless evaluation.
type EvaluateRequest struct {
	Period         string                 `json:"period" binding:"required"`
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	Now            *time.Time             `json:"now"`
	Orders         []OrderRequest         `json:"orders"`
	FixedExpenses  *FixedExpensesRequest  `json:"fixed_expenses"`
	CustomExpenses []CustomExpenseRequest `json:"custom_expenses"`
	Products       []ProductRequest       `json:"products"`
}

// OrderRequest represents an order of an evaluation payload.
// Date fields are raw strings and may be empty or malformed.
type OrderRequest struct {
	OrderCode     string          `json:"order_code"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	MarkupProfit  decimal.Decimal `json:"markup_profit"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	ConfirmedDate string          `json:"confirmed_date"`
	OrderDate     string          `json:"order_date"`
	CreatedAt     string          `json:"created_at"`
}

// FixedExpensesRequest holds the monthly fixed costs of an evaluation payload.
type FixedExpensesRequest struct {
	EmployeeExpenses    decimal.Decimal `json:"employee_expenses"`
	ElectricityExpenses decimal.Decimal `json:"electricity_expenses"`
	PurchaseCosts       decimal.Decimal `json:"purchase_costs"`
}

// CustomExpenseRequest represents a discretionary expense of an evaluation payload.
type CustomExpenseRequest struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate string          `json:"expense_date"`
}

// ProductRequest represents a stock item of an evaluation payload.
type ProductRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// ToSnapshot converts the payload into an engine snapshot.
func (r *EvaluateRequest) ToSnapshot() analytics.Snapshot {
	orders := make([]*entity.Order, len(r.Orders))
	for i, o := range r.Orders {
		orders[i] = &entity.Order{
			OrderCode:     o.OrderCode,
			TotalAmount:   o.TotalAmount,
			MarkupProfit:  o.MarkupProfit,
			PaymentMethod: entity.ParsePaymentMethod(o.PaymentMethod),
			Status:        o.Status,
			ConfirmedDate: o.ConfirmedDate,
			OrderDate:     o.OrderDate,
			CreatedDate:   o.CreatedAt,
		}
	}

	var fixed *entity.FixedExpenses
	if r.FixedExpenses != nil {
		fixed = &entity.FixedExpenses{
			Employee:    r.FixedExpenses.EmployeeExpenses,
			Electricity: r.FixedExpenses.ElectricityExpenses,
			Purchase:    r.FixedExpenses.PurchaseCosts,
		}
	}

	expenses := make([]*entity.ExpenseRecord, len(r.CustomExpenses))
	for i, e := range r.CustomExpenses {
		expenses[i] = &entity.ExpenseRecord{
			Name:       e.Name,
			Amount:     e.Amount,
			OccurredOn: e.ExpenseDate,
		}
	}

	stock := make([]*entity.StockItem, len(r.Products))
	for i, p := range r.Products {
		stock[i] = &entity.StockItem{
			Name:     p.Name,
			UnitCost: p.Price,
			Quantity: p.Quantity,
		}
	}

	return analytics.Snapshot{
		Orders:         orders,
		FixedExpenses:  fixed,
		CustomExpenses: expenses,
		Stock:          stock,
	}
}
