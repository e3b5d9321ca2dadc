package analysis

import (
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"SMEFinHealth/internal/config"
	"SMEFinHealth/internal/serviceiface"
)

type AnalysisService struct {
	config map[string]interface{}
	db     *sql.DB
	pool   *pgxpool.Pool
}

func NewAnalysisService(cfg map[string]interface{}, db *sql.DB, pool *pgxpool.Pool) serviceiface.Service {
	return &AnalysisService{config: cfg, db: db, pool: pool}
}

func (s *AnalysisService) Name() string {
	return "analysis"
}

func (s *AnalysisService) Start() error {
	port := config.DefaultAnalysisPort
	if s.config != nil {
		if p, ok := toInt(s.config["port"]); ok && p > 0 {
			port = p
		}
	}
	go StartAnalysisService(s.db, s.pool, port)
	return nil
}

func (s *AnalysisService) Stop() error {
	return nil
}

// toInt tolerates the loose typing of YAML config maps.
func toInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	}
	return 0, false
}
