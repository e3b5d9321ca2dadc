package analysis

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Fixed A4 layout in points, mirroring the report template: title at the top,
// one labeled line per metric, a loan section, and the English narrative split
// into sentence lines.
const (
	pdfMarginX     = 50.0
	pdfTitleY      = 40.0
	pdfMetricStep  = 18.0
	pdfLoanStep    = 15.0
	pdfSummaryStep = 14.0
)

// RenderReportPDF lays out a previously computed result as a printable PDF.
// Document dates are pinned so rendering the same result twice produces
// byte-identical output.
func RenderReportPDF(res *AnalysisResult) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetCatalogSort(true)
	epoch := time.Unix(0, 0).UTC()
	pdf.SetCreationDate(epoch)
	pdf.SetModificationDate(epoch)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	y := pdfTitleY
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(pdfMarginX, y, "SME Financial Health Report")

	pdf.SetFont("Helvetica", "", 12)
	y += 40
	for _, line := range metricLines(res.InvestorMetrics) {
		pdf.Text(pdfMarginX, y, tr(line))
		y += pdfMetricStep
	}

	y += 20
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Text(pdfMarginX, y, "Loan Recommendation")
	y += 20

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range loanLines(res.LoanRecommendation) {
		pdf.Text(pdfMarginX, y, tr(line))
		y += pdfLoanStep
	}

	y += 20
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Text(pdfMarginX, y, "AI Summary")
	y += pdfLoanStep

	pdf.SetFont("Helvetica", "", 12)
	for _, sentence := range strings.Split(res.AISummary.English, ".") {
		if strings.TrimSpace(sentence) == "" {
			continue
		}
		pdf.Text(pdfMarginX, y, tr(sentence))
		y += pdfSummaryStep
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// metricLines renders the investor metrics as labeled lines in a fixed order.
func metricLines(m InvestorMetrics) []string {
	return []string{
		humanizeLabel("total_income") + ": " + formatFloat(m.TotalIncome),
		humanizeLabel("total_expense") + ": " + formatFloat(m.TotalExpense),
		humanizeLabel("net_profit") + ": " + formatFloat(m.NetProfit),
		humanizeLabel("profit_margin_percent") + ": " + formatFloat(m.ProfitMarginPercent),
		humanizeLabel("credit_score") + ": " + strconv.Itoa(m.CreditScore),
	}
}

func loanLines(l LoanRecommendation) []string {
	return []string{
		humanizeLabel("eligible") + ": " + l.Eligible,
		humanizeLabel("recommended_amount") + ": " + strconv.FormatInt(l.RecommendedAmount, 10),
		humanizeLabel("tenure_months") + ": " + strconv.Itoa(l.TenureMonths),
		humanizeLabel("interest_rate_estimate") + ": " + l.InterestRateEstimate,
		humanizeLabel("risk_level") + ": " + l.RiskLevel,
		humanizeLabel("confidence_score") + ": " + strconv.Itoa(l.ConfidenceScore),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
