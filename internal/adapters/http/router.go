package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/config"
	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/ports"
	"github.com/Joooooonha/Intership-Assignment-RECO/internal/observability/metrics"
)

const serviceName = "weighbridge-parser"

type Router struct {
	cfg     config.Config
	parser  ports.CertificateParser
	metrics *metrics.ServerMetrics
}

func NewRouter(cfg config.Config, parser ports.CertificateParser, m *metrics.ServerMetrics) *Router {
	return &Router{
		cfg:     cfg,
		parser:  parser,
		metrics: m,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ocr/health", rt.health)
	mux.HandleFunc("/api/ocr/parse", rt.parseFile)
	mux.HandleFunc("/api/ocr/parse/json", rt.parseJSON)
	mux.HandleFunc("/api/ocr/parse/batch", rt.parseBatch)
	mux.HandleFunc("/api/ocr/parse/batch/export", rt.exportBatch)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = backpressureMiddleware(handler, rt.cfg.BackpressureMaxConcurrent, rt.cfg.BackpressureWait)
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}
