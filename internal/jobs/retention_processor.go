package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"SMEFinHealth/internal/config"
)

// RetentionConfig controls the scheduled purge of persisted transactions.
type RetentionConfig struct {
	Schedule      string
	TimeZone      string
	RetentionDays int
}

func NewDefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Schedule:      config.DefaultRetentionSchedule,
		TimeZone:      config.DefaultTimeZone,
		RetentionDays: config.DefaultRetentionDays,
	}
}

var retentionCron *cron.Cron

// RunRetentionScheduler schedules the purge job. Persisted ledgers are kept
// for analysis history only, so rows past the retention window are deleted.
func RunRetentionScheduler(cfg *RetentionConfig, pool *pgxpool.Pool) error {
	if pool == nil {
		log.Println("[Retention] no database pool configured, scheduler disabled")
		return nil
	}
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid time zone %q: %v", cfg.TimeZone, err)
	}

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc(cfg.Schedule, func() {
		purgeExpiredTransactions(pool, cfg.RetentionDays)
	})
	if err != nil {
		return fmt.Errorf("invalid retention schedule %q: %v", cfg.Schedule, err)
	}
	c.Start()
	retentionCron = c
	log.Printf("[Retention] scheduled %q, keeping %d days", cfg.Schedule, cfg.RetentionDays)
	return nil
}

func StopRetentionScheduler() {
	if retentionCron != nil {
		retentionCron.Stop()
	}
}

func purgeExpiredTransactions(pool *pgxpool.Pool, days int) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	tag, err := pool.Exec(ctx,
		`DELETE FROM transactions WHERE created_at < now() - make_interval(days => $1)`, days)
	if err != nil {
		log.Println("[Retention] purge failed:", err)
		return
	}
	log.Printf("[Retention] purged %d expired transactions", tag.RowsAffected())
}
