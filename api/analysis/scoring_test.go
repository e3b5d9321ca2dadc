package analysis

import (
	"testing"
)

func TestScoreMetrics_HealthyLedger(t *testing.T) {
	m := ComputeMetrics([]Transaction{
		txn("2024-01-05", "income", "1000"),
		txn("2024-01-10", "income", "2000"),
		txn("2024-01-20", "expense", "500"),
	})
	credit, loan := ScoreMetrics(m)

	if credit != 85 {
		t.Errorf("credit: got %d, want 85", credit)
	}
	if loan.RiskLevel != RiskLow {
		t.Errorf("risk: got %s, want LOW", loan.RiskLevel)
	}
	if loan.Eligible != EligibleYes {
		t.Errorf("eligible: got %s, want YES", loan.Eligible)
	}
	// single month: avg monthly profit 2500, LOW multiplier 12
	if loan.RecommendedAmount != 30000 {
		t.Errorf("recommended amount: got %d, want 30000", loan.RecommendedAmount)
	}
	if loan.TenureMonths != 24 {
		t.Errorf("tenure: got %d, want 24", loan.TenureMonths)
	}
	if loan.InterestRateEstimate != "10–12%" {
		t.Errorf("interest: got %q, want 10–12%%", loan.InterestRateEstimate)
	}
	if loan.ConfidenceScore != credit {
		t.Errorf("confidence %d should equal credit %d", loan.ConfidenceScore, credit)
	}
}

func TestScoreMetrics_AllExpenses(t *testing.T) {
	m := ComputeMetrics([]Transaction{
		txn("2024-01-05", "expense", "700"),
		txn("2024-02-09", "expense", "300"),
	})
	credit, loan := ScoreMetrics(m)

	if credit != 50 {
		t.Errorf("credit: got %d, want 50", credit)
	}
	if loan.RiskLevel != RiskHigh {
		t.Errorf("risk: got %s, want HIGH", loan.RiskLevel)
	}
	if loan.Eligible != EligibleNo {
		t.Errorf("eligible: got %s, want NO", loan.Eligible)
	}
	if loan.RecommendedAmount != 0 {
		t.Errorf("recommended amount: got %d, want 0", loan.RecommendedAmount)
	}
	if loan.TenureMonths != 18 {
		t.Errorf("tenure: got %d, want 18", loan.TenureMonths)
	}
	if loan.InterestRateEstimate != "13–16%" {
		t.Errorf("interest: got %q, want 13–16%%", loan.InterestRateEstimate)
	}
}

func TestScoreMetrics_ThinMargin(t *testing.T) {
	// margin 1% -> MEDIUM risk, profitable but no margin bonus
	m := ComputeMetrics([]Transaction{
		txn("2024-01-05", "income", "1000"),
		txn("2024-01-20", "expense", "990"),
	})
	credit, loan := ScoreMetrics(m)

	if credit != 70 {
		t.Errorf("credit: got %d, want 70", credit)
	}
	if loan.RiskLevel != RiskMedium {
		t.Errorf("risk: got %s, want MEDIUM", loan.RiskLevel)
	}
	if loan.Eligible != EligibleMaybe {
		t.Errorf("eligible: got %s, want MAYBE", loan.Eligible)
	}
	// avg monthly profit 10, MEDIUM multiplier 6
	if loan.RecommendedAmount != 60 {
		t.Errorf("recommended amount: got %d, want 60", loan.RecommendedAmount)
	}
	if loan.TenureMonths != 18 {
		t.Errorf("tenure: got %d, want 18", loan.TenureMonths)
	}
}

func TestScoreMetrics_ModerateMargin(t *testing.T) {
	// margin 8% -> LOW risk, but below the 10% credit bonus line
	m := ComputeMetrics([]Transaction{
		txn("2024-01-05", "income", "1000"),
		txn("2024-01-20", "expense", "920"),
	})
	credit, loan := ScoreMetrics(m)

	if credit != 70 {
		t.Errorf("credit: got %d, want 70", credit)
	}
	if loan.RiskLevel != RiskLow {
		t.Errorf("risk: got %s, want LOW", loan.RiskLevel)
	}
	if loan.Eligible != EligibleMaybe {
		t.Errorf("eligible: got %s, want MAYBE", loan.Eligible)
	}
	// avg monthly profit 80, LOW multiplier 12
	if loan.RecommendedAmount != 960 {
		t.Errorf("recommended amount: got %d, want 960", loan.RecommendedAmount)
	}
	if loan.TenureMonths != 24 {
		t.Errorf("tenure: got %d, want 24", loan.TenureMonths)
	}
}

func TestEligibility_StepFunction(t *testing.T) {
	cases := []struct {
		credit int
		want   string
	}{
		{50, EligibleNo},
		{54, EligibleNo},
		{55, EligibleMaybe},
		{74, EligibleMaybe},
		{75, EligibleYes},
		{100, EligibleYes},
	}
	for _, c := range cases {
		if got := eligibility(c.credit); got != c.want {
			t.Errorf("eligibility(%d): got %s, want %s", c.credit, got, c.want)
		}
	}
}

func TestCreditScore_MonotonicInProfit(t *testing.T) {
	loss := ComputeMetrics([]Transaction{txn("2024-01-05", "expense", "100")})
	smallProfit := ComputeMetrics([]Transaction{
		txn("2024-01-05", "income", "100"),
		txn("2024-01-06", "expense", "99"),
	})
	fatProfit := ComputeMetrics([]Transaction{
		txn("2024-01-05", "income", "100"),
		txn("2024-01-06", "expense", "10"),
	})

	a, _ := ScoreMetrics(loss)
	b, _ := ScoreMetrics(smallProfit)
	c, _ := ScoreMetrics(fatProfit)
	if !(a <= b && b <= c) {
		t.Errorf("credit should be non-decreasing in profit: %d, %d, %d", a, b, c)
	}
	for _, credit := range []int{a, b, c} {
		if credit < 50 || credit > 100 {
			t.Errorf("credit %d outside [50,100]", credit)
		}
	}
}
