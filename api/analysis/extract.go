package analysis

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/extrame/xls"
	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"

	"SMEFinHealth/internal/config"
)

// ExtractTable turns uploaded bytes into a RawTable using the filename
// extension to pick the parse strategy. Pure transform: no side effects.
func ExtractTable(data []byte, filename string) (*RawTable, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv", ".txt":
		return parseDelimited(data)
	case ".xlsx":
		return parseWorkbook(data)
	case ".xls":
		return parseLegacyWorkbook(data)
	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			return nil, err
		}
		table, err := parseDelimited([]byte(text))
		if err != nil {
			return nil, errMalformedTable("text extracted from PDF is not a delimited table")
		}
		return table, nil
	default:
		return nil, errUnsupportedFormat(ext)
	}
}

// parseDelimited reads comma-separated UTF-8 text, first row as header.
func parseDelimited(data []byte) (*RawTable, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, errMalformedTable("could not parse delimited text: " + err.Error())
	}
	return tableFromRecords(records)
}

// parseWorkbook reads the first worksheet of an .xlsx file, first row as header.
func parseWorkbook(data []byte) (*RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errMalformedTable("could not open workbook: " + err.Error())
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errMalformedTable("could not read worksheet: " + err.Error())
	}
	return tableFromRecords(rows)
}

// parseLegacyWorkbook handles pre-2007 .xls workbooks.
func parseLegacyWorkbook(data []byte) (*RawTable, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, errMalformedTable("could not open legacy workbook: " + err.Error())
	}
	rows := wb.ReadAllCells(config.MaxLegacySheetRows)
	return tableFromRecords(rows)
}

func tableFromRecords(records [][]string) (*RawTable, error) {
	// drop rows that are entirely blank (trailing worksheet rows, PDF noise)
	filtered := make([][]string, 0, len(records))
	for _, row := range records {
		blank := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if !blank {
			filtered = append(filtered, row)
		}
	}
	if len(filtered) < 2 {
		return nil, errMalformedTable("file has no data rows")
	}
	header := make([]string, len(filtered[0]))
	for i, col := range filtered[0] {
		header[i] = strings.TrimSpace(col)
	}
	if len(header) < 2 {
		return nil, errMalformedTable("header row has fewer than two columns")
	}
	return &RawTable{Columns: header, Rows: filtered[1:]}, nil
}

// extractPDFText pulls the text layer of every page in order and joins them
// with newlines. Best effort: image-only or garbled PDFs are rejected rather
// than passed downstream as noise.
func extractPDFText(data []byte) (text string, err error) {
	defer func() {
		// the pdf library panics on some malformed files
		if r := recover(); r != nil {
			err = errMalformedTable(fmt.Sprintf("could not read PDF: %v", r))
		}
	}()

	reader, rerr := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if rerr != nil {
		return "", errMalformedTable("could not read PDF: " + rerr.Error())
	}
	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, perr := page.GetPlainText(nil)
		if perr != nil {
			return "", errMalformedTable("could not extract text from PDF page: " + perr.Error())
		}
		pages = append(pages, content)
	}
	joined := strings.Join(pages, "\n")
	if !isReadableText(joined) {
		return "", errMalformedTable("PDF has no readable text layer; it may be image-based or scanned")
	}
	return joined, nil
}

// isReadableText guards against identity-encoded fonts that decode into
// garbage: requires a minimum length and a high ratio of plain ASCII.
func isReadableText(text string) bool {
	if len(text) < 20 {
		return false
	}
	total, readable := 0, 0
	for _, r := range text {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
			strings.ContainsRune(".,-/:;()'\"%&@#!?+=*", r) {
			readable++
		}
	}
	return float64(readable)/float64(total) > 0.6
}
