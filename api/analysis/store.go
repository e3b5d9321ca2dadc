package analysis

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionStore persists normalized transaction batches. The analysis
// pipeline never depends on its success: a failed save is audited and the
// request still produces a result.
type TransactionStore interface {
	SaveBatch(ctx context.Context, batchID string, txns []Transaction) error
}

// PostgresStore stages transaction batches into Postgres with CopyFrom.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the transactions table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS transactions (
			id              BIGSERIAL PRIMARY KEY,
			upload_batch_id UUID NOT NULL,
			txn_date        DATE NOT NULL,
			industry        VARCHAR(100) NOT NULL DEFAULT 'General',
			category        VARCHAR(100) NOT NULL DEFAULT 'General',
			amount          NUMERIC(18,2) NOT NULL DEFAULT 0,
			txn_type        VARCHAR(20) NOT NULL,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (s *PostgresStore) SaveBatch(ctx context.Context, batchID string, txns []Transaction) error {
	now := time.Now().UTC()
	rows := make([][]interface{}, len(txns))
	for i, t := range txns {
		rows[i] = []interface{}{batchID, t.Date, t.Industry, t.Category, t.Amount.String(), t.Type, now}
	}
	_, err := s.pool.CopyFrom(
		ctx,
		pgx.Identifier{"transactions"},
		[]string{"upload_batch_id", "txn_date", "industry", "category", "amount", "txn_type", "created_at"},
		pgx.CopyFromRows(rows),
	)
	return err
}
