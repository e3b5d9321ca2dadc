package jobs

import (
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"SMEFinHealth/internal/logger"
	"SMEFinHealth/internal/serviceiface"
)

type CronService struct {
	config map[string]interface{}
	db     *pgxpool.Pool
}

func NewCronService(cfg map[string]interface{}, db *pgxpool.Pool) serviceiface.Service {
	return &CronService{
		config: cfg,
		db:     db,
	}
}

func (s *CronService) Name() string {
	return "cron"
}

func (s *CronService) Start() error {
	log.Println("Starting cron service...")

	retentionConfig := NewDefaultRetentionConfig()

	// Override retention config from services.yaml if provided
	if s.config != nil {
		if schedule, ok := s.config["retention_schedule"].(string); ok && schedule != "" {
			retentionConfig.Schedule = schedule
		}
		if days, ok := s.config["retention_days"].(int); ok && days > 0 {
			retentionConfig.RetentionDays = days
		}
	}

	if err := RunRetentionScheduler(retentionConfig, s.db); err != nil {
		return fmt.Errorf("failed to start retention scheduler: %v", err)
	}

	if logger.GlobalLogger != nil {
		logger.GlobalLogger.LogAudit("Cron service started with transaction retention scheduler")
	}
	log.Println("Cron service started — retention scheduler active")
	return nil
}

func (s *CronService) Stop() error {
	StopRetentionScheduler()
	return nil
}
