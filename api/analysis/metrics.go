package analysis

import (
	"sort"

	"github.com/shopspring/decimal"
)

const monthKeyLayout = "2006-01"

var oneHundred = decimal.NewFromInt(100)

// ComputeMetrics aggregates a transaction batch into totals and a
// month-bucketed cashflow series. Pure: row order never changes the values,
// only the pre-sort insertion order of buckets.
func ComputeMetrics(txns []Transaction) Metrics {
	m := Metrics{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	buckets := make(map[string]*MonthBucket)
	for _, t := range txns {
		key := t.Date.Format(monthKeyLayout)
		b, ok := buckets[key]
		if !ok {
			b = &MonthBucket{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			buckets[key] = b
		}
		switch t.Type {
		case "income":
			m.TotalIncome = m.TotalIncome.Add(t.Amount)
			b.Income = b.Income.Add(t.Amount)
		case "expense":
			m.TotalExpense = m.TotalExpense.Add(t.Amount)
			b.Expense = b.Expense.Add(t.Amount)
		}
		// any other type still claims its month, with zero contribution
	}

	m.NetProfit = m.TotalIncome.Sub(m.TotalExpense)
	if m.TotalIncome.IsPositive() {
		m.ProfitMargin = m.NetProfit.Div(m.TotalIncome).Mul(oneHundred).Round(2)
	} else {
		m.ProfitMargin = decimal.Zero
	}

	m.Monthly = make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		b.Cashflow = b.Income.Sub(b.Expense)
		m.Monthly = append(m.Monthly, *b)
	}
	sort.Slice(m.Monthly, func(i, j int) bool {
		return m.Monthly[i].Month < m.Monthly[j].Month
	})
	return m
}
