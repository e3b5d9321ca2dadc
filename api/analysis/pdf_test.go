package analysis

import (
	"bytes"
	"testing"
)

func sampleResult() *AnalysisResult {
	m := ComputeMetrics([]Transaction{
		txn("2024-01-05", "income", "1000"),
		txn("2024-01-10", "income", "2000"),
		txn("2024-01-20", "expense", "500"),
	})
	credit, loan := ScoreMetrics(m)
	return ComposeResult(m, credit, loan)
}

func TestRenderReportPDF(t *testing.T) {
	doc, err := RenderReportPDF(sampleResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc) == 0 {
		t.Fatal("empty document")
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Errorf("document does not start with PDF header: %q", doc[:8])
	}
}

func TestRenderReportPDF_Idempotent(t *testing.T) {
	res := sampleResult()
	first, err := RenderReportPDF(res)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := RenderReportPDF(res)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("rendering the same result twice produced different bytes")
	}
}

func TestMetricLines_Order(t *testing.T) {
	lines := metricLines(sampleResult().InvestorMetrics)
	want := []string{
		"Total Income: 3000",
		"Total Expense: 500",
		"Net Profit: 2500",
		"Profit Margin Percent: 83.33",
		"Credit Score: 85",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines: got %d, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}
