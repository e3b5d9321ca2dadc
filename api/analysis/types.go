package analysis

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawTable is the intermediate tabular form produced by extraction: a header
// row split from the data rows, all cells still untyped strings. It lives only
// for the duration of one analysis request.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// Transaction is the canonical ledger record every input format is normalized
// into. A batch is immutable once produced; metrics are pure functions over it.
type Transaction struct {
	Date     time.Time
	Industry string
	Category string
	Amount   decimal.Decimal
	Type     string
}

// Metrics holds the aggregate figures computed from one transaction batch.
// ProfitMargin is a percentage rounded to two decimals, zero whenever
// TotalIncome is not positive.
type Metrics struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetProfit    decimal.Decimal
	ProfitMargin decimal.Decimal
	Monthly      []MonthBucket
}

// MonthBucket aggregates one calendar month ("2006-01" key). A month appears
// if it has at least one transaction of any type; months with only
// unrecognized types carry zeros.
type MonthBucket struct {
	Month    string
	Income   decimal.Decimal
	Expense  decimal.Decimal
	Cashflow decimal.Decimal
}

// InvestorMetrics is the aggregate block of the JSON response.
type InvestorMetrics struct {
	TotalIncome         float64 `json:"total_income"`
	TotalExpense        float64 `json:"total_expense"`
	NetProfit           float64 `json:"net_profit"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
	CreditScore         int     `json:"credit_score"`
}

// MonthlyCashflow is one month row of the JSON response.
type MonthlyCashflow struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expense  float64 `json:"expense"`
	Cashflow float64 `json:"cashflow"`
}

// LoanRecommendation is the rule-derived loan block of the JSON response.
type LoanRecommendation struct {
	Eligible             string `json:"eligible"`
	RecommendedAmount    int64  `json:"recommended_amount"`
	TenureMonths         int    `json:"tenure_months"`
	InterestRateEstimate string `json:"interest_rate_estimate"`
	RiskLevel            string `json:"risk_level"`
	ConfidenceScore      int    `json:"confidence_score"`
}

// AISummary carries the fixed-template narrative in three languages.
type AISummary struct {
	English string `json:"english"`
	Tamil   string `json:"tamil"`
	Hindi   string `json:"hindi"`
}

// AnalysisResult is the full response of POST /analysis/final-report and the
// sole input of POST /analysis/report-pdf. Constructed once per request.
type AnalysisResult struct {
	InvestorMetrics    InvestorMetrics    `json:"investor_metrics"`
	MonthlyCashflow    []MonthlyCashflow  `json:"monthly_cashflow"`
	LoanRecommendation LoanRecommendation `json:"loan_recommendation"`
	AISummary          AISummary          `json:"ai_summary"`
}
