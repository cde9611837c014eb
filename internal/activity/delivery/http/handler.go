package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/labtrack/labtrack/internal/activity/domain"
	"github.com/labtrack/labtrack/internal/activity/usecase/query"
	"github.com/labtrack/labtrack/pkg/logger"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labtrack_activity_requests_total",
			Help: "Total number of activity log requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "labtrack_activity_request_duration_seconds",
			Help:    "Duration of activity log requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// ActivityHandler handles HTTP requests for the audit log and the
// dashboard movement chart
type ActivityHandler struct {
	listHandler      *query.ListLogsHandler
	aggregateHandler *query.AggregateMovementsHandler
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(repo domain.LogRepository) *ActivityHandler {
	return &ActivityHandler{
		listHandler:      query.NewListLogsHandler(repo),
		aggregateHandler: query.NewAggregateMovementsHandler(repo),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListLogs handles GET /api/logs
func (h *ActivityHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	entries, err := h.listHandler.Handle(query.ListLogsQuery{Limit: limit})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list log entries")
		h.respondError(w, http.StatusInternalServerError, "Failed to list log entries")
		return
	}

	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    entries,
	})
}

// GetMovements handles GET /api/logs/movements
func (h *ActivityHandler) GetMovements(w http.ResponseWriter, r *http.Request) {
	windowDays := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.respondError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		windowDays = parsed
	}

	points, err := h.aggregateHandler.Handle(query.AggregateMovementsQuery{
		WindowDays:    windowDays,
		ReferenceTime: time.Now(),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to aggregate movements")
		h.respondError(w, http.StatusInternalServerError, "Failed to aggregate movements")
		return
	}

	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    points,
	})
}

// RegisterRoutes registers all activity log routes
func (h *ActivityHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/logs", h.metrics("/api/logs", h.ListLogs)).Methods("GET")
	router.HandleFunc("/api/logs/movements", h.metrics("/api/logs/movements", h.GetMovements)).Methods("GET")
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *ActivityHandler) metrics(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

func (h *ActivityHandler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *ActivityHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}
