package analysis

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ComposeResult assembles the machine-readable analysis response from the
// computed metrics and loan recommendation, including the fixed-template
// trilingual summary.
func ComposeResult(m Metrics, credit int, loan LoanRecommendation) *AnalysisResult {
	monthly := make([]MonthlyCashflow, len(m.Monthly))
	for i, b := range m.Monthly {
		monthly[i] = MonthlyCashflow{
			Month:    b.Month,
			Income:   b.Income.InexactFloat64(),
			Expense:  b.Expense.InexactFloat64(),
			Cashflow: b.Cashflow.InexactFloat64(),
		}
	}

	income := formatAmount(m.TotalIncome)
	profit := formatAmount(m.NetProfit)

	return &AnalysisResult{
		InvestorMetrics: InvestorMetrics{
			TotalIncome:         m.TotalIncome.InexactFloat64(),
			TotalExpense:        m.TotalExpense.InexactFloat64(),
			NetProfit:           m.NetProfit.InexactFloat64(),
			ProfitMarginPercent: m.ProfitMargin.InexactFloat64(),
			CreditScore:         credit,
		},
		MonthlyCashflow:    monthly,
		LoanRecommendation: loan,
		AISummary: AISummary{
			English: fmt.Sprintf("Business earned ₹%s, profit ₹%s. Loan eligibility %s.", income, profit, loan.Eligible),
			Tamil:   fmt.Sprintf("மொத்த வருமானம் ₹%s. கடன் தகுதி: %s.", income, loan.Eligible),
			Hindi:   fmt.Sprintf("कुल आय ₹%s. ऋण पात्रता: %s.", income, loan.Eligible),
		},
	}
}

// formatAmount renders an amount rounded to whole units with thousands
// grouping, e.g. 1234567.4 -> "1,234,567".
func formatAmount(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// humanizeLabel turns a field name into a display label: separators become
// spaces and each word is title-cased ("net_profit" -> "Net Profit").
func humanizeLabel(field string) string {
	words := strings.Split(strings.ReplaceAll(field, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
