package analysis

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// Error codes for request-scoped analysis failures. All of them abort the
// current request; none corrupt process state.
const (
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeMissingColumn     = "MISSING_COLUMN"
	CodeInvalidDate       = "INVALID_DATE"
	CodeMalformedTable    = "MALFORMED_TABLE"
)

// Error is a structured analysis failure reported to the caller.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func errUnsupportedFormat(ext string) *Error {
	return &Error{Code: CodeUnsupportedFormat, Message: fmt.Sprintf("unsupported file type %q; expected .csv, .xlsx, .xls or .pdf", ext)}
}

func errMissingColumn(name string) *Error {
	return &Error{Code: CodeMissingColumn, Message: fmt.Sprintf("required column %q not found in uploaded file", name)}
}

func errInvalidDate(row int, value string) *Error {
	return &Error{Code: CodeInvalidDate, Message: fmt.Sprintf("row %d: unparsable date %q", row, value)}
}

func errMalformedTable(reason string) *Error {
	return &Error{Code: CodeMalformedTable, Message: reason}
}

func statusForCode(code string) int {
	if code == CodeUnsupportedFormat {
		return http.StatusUnsupportedMediaType
	}
	return http.StatusBadRequest
}

// respondWithAnalysisError writes the JSON error envelope for a pipeline
// failure. Unknown error types fall back to a 500.
func respondWithAnalysisError(w http.ResponseWriter, err error) {
	log.Println("[ERROR]", err.Error())
	w.Header().Set("Content-Type", "application/json")
	if aerr, ok := err.(*Error); ok {
		w.WriteHeader(statusForCode(aerr.Code))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   aerr.Code,
			"message": aerr.Message,
		})
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   "INTERNAL",
		"message": err.Error(),
	})
}
