package analysis

import (
	"github.com/shopspring/decimal"
)

// Risk tiers derived from profitability.
const (
	RiskHigh   = "HIGH"
	RiskMedium = "MEDIUM"
	RiskLow    = "LOW"
)

// Eligibility decisions derived from the credit score.
const (
	EligibleYes   = "YES"
	EligibleMaybe = "MAYBE"
	EligibleNo    = "NO"
)

// Fixed scoring rules. Credit starts at a floor of 50 and is capped at 100;
// eligibility is a step function of the resulting score.
const (
	creditFloor            = 50
	creditCeiling          = 100
	profitBonus            = 20
	marginBonus            = 15
	eligibleYesThreshold   = 75
	eligibleMaybeThreshold = 55
)

var (
	mediumMarginLimit = decimal.NewFromInt(5)
	bonusMarginLimit  = decimal.NewFromInt(10)
)

// riskLevel tiers a batch by profitability: unprofitable is HIGH, thin margins
// are MEDIUM, the rest LOW.
func riskLevel(m Metrics) string {
	if m.NetProfit.Sign() <= 0 {
		return RiskHigh
	}
	if m.ProfitMargin.LessThan(mediumMarginLimit) {
		return RiskMedium
	}
	return RiskLow
}

// creditScore applies the fixed bonus rules over the aggregates.
func creditScore(m Metrics) int {
	credit := creditFloor
	if m.NetProfit.Sign() > 0 {
		credit += profitBonus
	}
	if m.ProfitMargin.GreaterThan(bonusMarginLimit) {
		credit += marginBonus
	}
	if credit > creditCeiling {
		credit = creditCeiling
	}
	return credit
}

func eligibility(credit int) string {
	switch {
	case credit >= eligibleYesThreshold:
		return EligibleYes
	case credit >= eligibleMaybeThreshold:
		return EligibleMaybe
	default:
		return EligibleNo
	}
}

// ScoreMetrics derives risk, credit and the loan recommendation from the
// aggregates. Pure arithmetic, reproducible bit-for-bit for identical input.
func ScoreMetrics(m Metrics) (int, LoanRecommendation) {
	risk := riskLevel(m)
	credit := creditScore(m)
	eligible := eligibility(credit)

	months := int64(len(m.Monthly))
	if months < 1 {
		months = 1
	}
	avgMonthlyProfit := m.NetProfit.Div(decimal.NewFromInt(months))

	var multiplier int64
	switch risk {
	case RiskLow:
		multiplier = 12
	case RiskMedium:
		multiplier = 6
	default:
		multiplier = 3
	}

	var amount int64
	if eligible != EligibleNo {
		amount = avgMonthlyProfit.Mul(decimal.NewFromInt(multiplier)).IntPart()
	}

	tenure := 18
	interest := "13–16%"
	if risk == RiskLow {
		tenure = 24
		interest = "10–12%"
	}

	return credit, LoanRecommendation{
		Eligible:             eligible,
		RecommendedAmount:    amount,
		TenureMonths:         tenure,
		InterestRateEstimate: interest,
		RiskLevel:            risk,
		ConfidenceScore:      credit,
	}
}
