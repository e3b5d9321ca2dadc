package analysis

import (
	"database/sql"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"SMEFinHealth/api/utils"
	"SMEFinHealth/internal/config"
	"SMEFinHealth/internal/logger"
)

// AnalyzeFinalReport handles POST /analysis/final-report: multipart ledger
// upload in, full AnalysisResult JSON out. Persistence of the normalized batch
// is fire-and-forget.
func AnalyzeFinalReport(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
			http.Error(w, "Failed to parse multipart form", http.StatusBadRequest)
			return
		}
		file, fileHeader, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "No file uploaded", http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			http.Error(w, "Failed to read file: "+fileHeader.Filename, http.StatusBadRequest)
			return
		}

		table, err := ExtractTable(data, fileHeader.Filename)
		if err != nil {
			respondWithAnalysisError(w, err)
			return
		}
		txns, err := NormalizeRows(table)
		if err != nil {
			respondWithAnalysisError(w, err)
			return
		}

		if store != nil {
			batchID := uuid.New().String()
			if err := store.SaveBatch(ctx, batchID, txns); err != nil {
				msg := "[Analysis] persist failed for batch " + batchID + ": " + err.Error()
				if logger.GlobalLogger != nil {
					logger.GlobalLogger.LogAudit(msg)
				} else {
					log.Println(msg)
				}
			}
		}

		metrics := ComputeMetrics(txns)
		credit, loan := ScoreMetrics(metrics)
		result := ComposeResult(metrics, credit, loan)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// DownloadReportPDF handles POST /analysis/report-pdf: a previously computed
// AnalysisResult in, printable PDF bytes out.
func DownloadReportPDF() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var result AnalysisResult
		if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		doc, err := RenderReportPDF(&result)
		if err != nil {
			http.Error(w, "Failed to render PDF: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=SME_Financial_Report.pdf")
		w.Write(doc)
	}
}

// GetTransactions handles GET /analysis/transactions: persisted transactions,
// newest batch first, paginated via page/limit query parameters.
func GetTransactions(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
			return
		}
		pagination, err := utils.ExtractPagination(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		total, err := utils.CountTotal(db, `SELECT COUNT(*) FROM transactions`)
		if err != nil {
			http.Error(w, "Count failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		pagination.SetPaginationStats(total)

		rows, err := db.QueryContext(r.Context(), `
			SELECT upload_batch_id, txn_date, industry, category, amount, txn_type
			FROM transactions
			ORDER BY created_at DESC, txn_date
			LIMIT $1 OFFSET $2`, pagination.Limit, pagination.Offset)
		if err != nil {
			http.Error(w, "Query failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		out := make([]map[string]interface{}, 0)
		for rows.Next() {
			var batchID, industry, category, txnType string
			var txnDate sql.NullTime
			var amount float64
			if err := rows.Scan(&batchID, &txnDate, &industry, &category, &amount, &txnType); err != nil {
				http.Error(w, "Scan failed: "+err.Error(), http.StatusInternalServerError)
				return
			}
			rec := map[string]interface{}{
				"upload_batch_id": batchID,
				"industry":        industry,
				"category":        category,
				"amount":          amount,
				"type":            txnType,
			}
			if txnDate.Valid {
				rec["date"] = txnDate.Time.Format("2006-01-02")
			}
			out = append(out, rec)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":      true,
			"pagination":   pagination,
			"transactions": out,
		})
	}
}

// Health reports service liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "Backend running fine"})
}
