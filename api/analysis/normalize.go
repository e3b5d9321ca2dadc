package analysis

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Recognized ledger columns. Matching is case-insensitive on the trimmed
// header name; everything else in the upload is ignored.
//
//	date      required; unparsable value fails the request
//	type      required; lower-cased and trimmed
//	amount    optional; unparsable or missing value defaults to 0
//	industry  optional; empty defaults to "General"
//	category  optional; empty defaults to "General"
const (
	colDate     = "date"
	colType     = "type"
	colAmount   = "amount"
	colIndustry = "industry"
	colCategory = "category"

	defaultLabel = "General"
)

// dateLayouts accepted by the permissive date parser, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// NormalizeRows maps a RawTable onto canonical transactions. Either every row
// normalizes (with per-row amount defaulting) or the whole request fails.
func NormalizeRows(table *RawTable) ([]Transaction, error) {
	dateIdx := findColumn(table.Columns, colDate)
	if dateIdx < 0 {
		return nil, errMissingColumn(colDate)
	}
	typeIdx := findColumn(table.Columns, colType)
	if typeIdx < 0 {
		return nil, errMissingColumn(colType)
	}
	amountIdx := findColumn(table.Columns, colAmount)
	industryIdx := findColumn(table.Columns, colIndustry)
	categoryIdx := findColumn(table.Columns, colCategory)

	txns := make([]Transaction, 0, len(table.Rows))
	for i, row := range table.Rows {
		rawDate := cellAt(row, dateIdx)
		date, ok := parseDate(rawDate)
		if !ok {
			return nil, errInvalidDate(i+1, rawDate)
		}
		txns = append(txns, Transaction{
			Date:     date,
			Industry: labelOrDefault(cellAt(row, industryIdx)),
			Category: labelOrDefault(cellAt(row, categoryIdx)),
			Amount:   parseAmount(cellAt(row, amountIdx)),
			Type:     strings.ToLower(strings.TrimSpace(cellAt(row, typeIdx))),
		})
	}
	return txns, nil
}

func findColumn(columns []string, name string) int {
	for i, col := range columns {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i
		}
	}
	return -1
}

// cellAt tolerates ragged rows: indexes past the row end read as empty.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func labelOrDefault(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultLabel
	}
	return s
}

// parseAmount coerces a cell to a decimal, defaulting dirty values to zero so
// one bad cell never sinks the whole ledger.
func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
