package analysis

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StartAnalysisService wires the analysis routes and serves them on the given
// port. Blocks; run in a goroutine from the service wrapper.
func StartAnalysisService(db *sql.DB, pool *pgxpool.Pool, port int) {
	var store TransactionStore
	if pool != nil {
		pg := NewPostgresStore(pool)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			log.Println("[Analysis] schema check failed:", err)
		}
		store = pg
	}

	router := mux.NewRouter()
	router.HandleFunc("/analysis/final-report", AnalyzeFinalReport(store)).Methods("POST")
	router.HandleFunc("/analysis/report-pdf", DownloadReportPDF()).Methods("POST")
	router.HandleFunc("/analysis/transactions", GetTransactions(db)).Methods("GET")
	router.HandleFunc("/analysis/health", Health).Methods("GET")

	addr := fmt.Sprintf(":%d", port)
	log.Println("Analysis Service started on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Analysis Service failed: %v", err)
	}
}
