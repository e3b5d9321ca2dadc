package analysis

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func txn(date, typ, amount string) Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return Transaction{
		Date:     d,
		Industry: "General",
		Category: "General",
		Amount:   decimal.RequireFromString(amount),
		Type:     typ,
	}
}

func eq(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s: got %s, want %s", name, got, want)
	}
}

func TestComputeMetrics_SingleMonth(t *testing.T) {
	m := ComputeMetrics([]Transaction{
		txn("2024-01-05", "income", "1000"),
		txn("2024-01-10", "income", "2000"),
		txn("2024-01-20", "expense", "500"),
	})

	eq(t, "total income", m.TotalIncome, "3000")
	eq(t, "total expense", m.TotalExpense, "500")
	eq(t, "net profit", m.NetProfit, "2500")
	eq(t, "profit margin", m.ProfitMargin, "83.33")

	if len(m.Monthly) != 1 {
		t.Fatalf("buckets: got %d, want 1", len(m.Monthly))
	}
	b := m.Monthly[0]
	if b.Month != "2024-01" {
		t.Errorf("month key: got %q, want 2024-01", b.Month)
	}
	eq(t, "bucket cashflow", b.Cashflow, "2500")
}

func TestComputeMetrics_BucketSumsMatchTotals(t *testing.T) {
	txns := []Transaction{
		txn("2024-01-05", "income", "1200.25"),
		txn("2024-02-01", "income", "800"),
		txn("2024-02-15", "expense", "300.75"),
		txn("2024-03-09", "expense", "99.99"),
		txn("2024-03-10", "income", "450"),
	}
	m := ComputeMetrics(txns)

	income, expense := decimal.Zero, decimal.Zero
	for _, b := range m.Monthly {
		income = income.Add(b.Income)
		expense = expense.Add(b.Expense)
	}
	if !income.Equal(m.TotalIncome) {
		t.Errorf("bucket income sum %s != total income %s", income, m.TotalIncome)
	}
	if !expense.Equal(m.TotalExpense) {
		t.Errorf("bucket expense sum %s != total expense %s", expense, m.TotalExpense)
	}
}

func TestComputeMetrics_RowOrderInvariance(t *testing.T) {
	txns := []Transaction{
		txn("2024-03-10", "income", "450"),
		txn("2024-01-05", "income", "1200"),
		txn("2024-02-15", "expense", "300"),
		txn("2024-02-01", "income", "800"),
	}
	reversed := make([]Transaction, len(txns))
	for i, tx := range txns {
		reversed[len(txns)-1-i] = tx
	}

	a := ComputeMetrics(txns)
	b := ComputeMetrics(reversed)

	if !a.TotalIncome.Equal(b.TotalIncome) || !a.TotalExpense.Equal(b.TotalExpense) ||
		!a.NetProfit.Equal(b.NetProfit) || !a.ProfitMargin.Equal(b.ProfitMargin) {
		t.Error("aggregates differ after permuting input rows")
	}
	if len(a.Monthly) != len(b.Monthly) {
		t.Fatalf("bucket counts differ: %d vs %d", len(a.Monthly), len(b.Monthly))
	}
	for i := range a.Monthly {
		if a.Monthly[i].Month != b.Monthly[i].Month ||
			!a.Monthly[i].Income.Equal(b.Monthly[i].Income) ||
			!a.Monthly[i].Expense.Equal(b.Monthly[i].Expense) ||
			!a.Monthly[i].Cashflow.Equal(b.Monthly[i].Cashflow) {
			t.Errorf("bucket %d differs after permuting input rows", i)
		}
	}
}

func TestComputeMetrics_MonthsSorted(t *testing.T) {
	m := ComputeMetrics([]Transaction{
		txn("2024-03-10", "income", "1"),
		txn("2023-12-01", "income", "1"),
		txn("2024-01-05", "income", "1"),
	})
	want := []string{"2023-12", "2024-01", "2024-03"}
	if len(m.Monthly) != len(want) {
		t.Fatalf("buckets: got %d, want %d", len(m.Monthly), len(want))
	}
	for i, b := range m.Monthly {
		if b.Month != want[i] {
			t.Errorf("bucket %d: got %q, want %q", i, b.Month, want[i])
		}
	}
}

func TestComputeMetrics_UnrecognizedTypeClaimsMonth(t *testing.T) {
	m := ComputeMetrics([]Transaction{
		txn("2024-01-05", "income", "100"),
		txn("2024-02-14", "transfer", "9999"),
	})
	if len(m.Monthly) != 2 {
		t.Fatalf("buckets: got %d, want 2", len(m.Monthly))
	}
	b := m.Monthly[1]
	if b.Month != "2024-02" {
		t.Fatalf("month key: got %q, want 2024-02", b.Month)
	}
	if !b.Income.IsZero() || !b.Expense.IsZero() || !b.Cashflow.IsZero() {
		t.Errorf("transfer-only month should carry zeros, got %s/%s/%s", b.Income, b.Expense, b.Cashflow)
	}
	eq(t, "total income", m.TotalIncome, "100")
}

func TestComputeMetrics_NonPositiveIncomeMargin(t *testing.T) {
	m := ComputeMetrics([]Transaction{
		txn("2024-01-05", "expense", "700"),
		txn("2024-01-09", "expense", "300"),
	})
	eq(t, "total income", m.TotalIncome, "0")
	eq(t, "net profit", m.NetProfit, "-1000")
	eq(t, "profit margin", m.ProfitMargin, "0")

	// negative income amounts hit the same guard
	neg := ComputeMetrics([]Transaction{txn("2024-01-05", "income", "-50")})
	eq(t, "negative income margin", neg.ProfitMargin, "0")
}

func TestComputeMetrics_Empty(t *testing.T) {
	m := ComputeMetrics(nil)
	eq(t, "total income", m.TotalIncome, "0")
	eq(t, "net profit", m.NetProfit, "0")
	if len(m.Monthly) != 0 {
		t.Errorf("buckets: got %d, want 0", len(m.Monthly))
	}
}
