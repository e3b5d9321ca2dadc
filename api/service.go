package api

import (
	"strings"

	"SMEFinHealth/internal/config"
	"SMEFinHealth/internal/serviceiface"
)

type GatewayService struct {
	config map[string]interface{}
}

func NewGatewayService(cfg map[string]interface{}) serviceiface.Service {
	return &GatewayService{config: cfg}
}

func (s *GatewayService) Name() string {
	return "gateway"
}

func (s *GatewayService) Start() error {
	port := config.DefaultGatewayPort
	backends := []string{defaultAnalysisBackend()}
	if s.config != nil {
		switch p := s.config["port"].(type) {
		case int:
			if p > 0 {
				port = p
			}
		case float64:
			if p > 0 {
				port = int(p)
			}
		}
		if raw, ok := s.config["analysis_backends"].(string); ok && raw != "" {
			backends = backends[:0]
			for _, b := range strings.Split(raw, ",") {
				if t := strings.TrimSpace(b); t != "" {
					backends = append(backends, t)
				}
			}
		}
	}
	go StartGateway(port, backends)
	return nil
}

func (s *GatewayService) Stop() error {
	return nil
}

func defaultAnalysisBackend() string {
	return "http://localhost:7143"
}
