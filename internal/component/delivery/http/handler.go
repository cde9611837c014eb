package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	activitydomain "github.com/labtrack/labtrack/internal/activity/domain"
	"github.com/labtrack/labtrack/internal/component/domain"
	"github.com/labtrack/labtrack/internal/component/usecase/command"
	"github.com/labtrack/labtrack/internal/component/usecase/query"
	userhttp "github.com/labtrack/labtrack/internal/user/delivery/http"
	userdomain "github.com/labtrack/labtrack/internal/user/domain"
	"github.com/labtrack/labtrack/kafka"
	"github.com/labtrack/labtrack/pkg/logger"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labtrack_inventory_requests_total",
			Help: "Total number of inventory requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "labtrack_inventory_request_duration_seconds",
			Help:    "Duration of inventory requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	lowStockGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "labtrack_low_stock_components",
			Help: "Number of components at or below their low stock threshold",
		},
	)
)

// ComponentHandler handles HTTP requests for the inventory
type ComponentHandler struct {
	createHandler   *command.CreateComponentHandler
	updateHandler   *command.UpdateComponentHandler
	deleteHandler   *command.DeleteComponentHandler
	movementHandler *command.ApplyMovementHandler

	listHandler    *query.ListComponentsHandler
	getHandler     *query.GetComponentHandler
	summaryHandler *query.GetSummaryHandler

	users userdomain.UserRepository
}

// NewComponentHandler creates a new component handler. The publisher may
// be nil when no Kafka brokers are configured.
func NewComponentHandler(
	repo domain.ComponentRepository,
	logs activitydomain.LogRepository,
	users userdomain.UserRepository,
	publisher *kafka.Publisher,
) *ComponentHandler {
	return &ComponentHandler{
		createHandler:   command.NewCreateComponentHandler(repo, logs),
		updateHandler:   command.NewUpdateComponentHandler(repo, logs),
		deleteHandler:   command.NewDeleteComponentHandler(repo, logs),
		movementHandler: command.NewApplyMovementHandler(repo, logs, publisher),
		listHandler:     query.NewListComponentsHandler(repo),
		getHandler:      query.NewGetComponentHandler(repo),
		summaryHandler:  query.NewGetSummaryHandler(repo),
		users:           users,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type componentRequest struct {
	Name              string          `json:"name"`
	PartNumber        string          `json:"partNumber"`
	Manufacturer      string          `json:"manufacturer"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	Location          string          `json:"location"`
	Quantity          int             `json:"quantity"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	DatasheetURL      string          `json:"datasheetUrl"`
}

// ListComponents handles GET /api/components
func (h *ComponentHandler) ListComponents(w http.ResponseWriter, r *http.Request) {
	q := query.ListComponentsQuery{
		Search:      r.URL.Query().Get("search"),
		Category:    r.URL.Query().Get("category"),
		Location:    r.URL.Query().Get("location"),
		StockStatus: r.URL.Query().Get("stock"),
	}

	components, err := h.listHandler.Handle(q)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    components,
	})
}

// GetComponent handles GET /api/components/{id}
func (h *ComponentHandler) GetComponent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	component, err := h.getHandler.Handle(query.GetComponentQuery{ID: vars["id"]})
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    component,
	})
}

// CreateComponent handles POST /api/components
func (h *ComponentHandler) CreateComponent(w http.ResponseWriter, r *http.Request) {
	var req componentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	actorName, actorAvatar := h.actor(r)
	cmd := command.CreateComponentCommand{
		Name:              req.Name,
		PartNumber:        req.PartNumber,
		Manufacturer:      req.Manufacturer,
		Description:       req.Description,
		Category:          req.Category,
		Location:          req.Location,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
		UnitPrice:         req.UnitPrice,
		DatasheetURL:      req.DatasheetURL,
		UserName:          actorName,
		UserAvatar:        actorAvatar,
	}

	component, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.refreshLowStockGauge()
	h.respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Component created",
		Data:    component,
	})
}

// UpdateComponent handles PUT /api/components/{id}
func (h *ComponentHandler) UpdateComponent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req componentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	actorName, actorAvatar := h.actor(r)
	cmd := command.UpdateComponentCommand{
		ID:                vars["id"],
		Name:              req.Name,
		PartNumber:        req.PartNumber,
		Manufacturer:      req.Manufacturer,
		Description:       req.Description,
		Category:          req.Category,
		Location:          req.Location,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
		UnitPrice:         req.UnitPrice,
		DatasheetURL:      req.DatasheetURL,
		UserName:          actorName,
		UserAvatar:        actorAvatar,
	}

	component, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.refreshLowStockGauge()
	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Component updated",
		Data:    component,
	})
}

// DeleteComponent handles DELETE /api/components/{id}
func (h *ComponentHandler) DeleteComponent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	actorName, actorAvatar := h.actor(r)
	err := h.deleteHandler.Handle(r.Context(), command.DeleteComponentCommand{
		ID:         vars["id"],
		UserName:   actorName,
		UserAvatar: actorAvatar,
	})
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.refreshLowStockGauge()
	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Component deleted",
	})
}

// ApplyMovement handles POST /api/components/{id}/movements
func (h *ComponentHandler) ApplyMovement(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Type     string `json:"type"`
		Quantity int    `json:"quantity"`
		Reason   string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	actorName, actorAvatar := h.actor(r)
	cmd := command.ApplyMovementCommand{
		ComponentID: vars["id"],
		Type:        domain.MovementType(req.Type),
		Quantity:    req.Quantity,
		Reason:      req.Reason,
		UserName:    actorName,
		UserAvatar:  actorAvatar,
	}

	component, err := h.movementHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	message := "Stock added"
	if cmd.Type == domain.MovementOutward {
		message = "Stock issued"
	}

	h.refreshLowStockGauge()
	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    component,
	})
}

// GetSummary handles GET /api/summary
func (h *ComponentHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summaryHandler.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute summary")
		h.respondError(w, http.StatusInternalServerError, "Failed to compute summary")
		return
	}

	lowStockGauge.Set(float64(summary.LowStockTypes))

	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    summary,
	})
}

// RegisterRoutes registers all inventory routes
func (h *ComponentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/components", h.metrics("/api/components", h.ListComponents)).Methods("GET")
	router.HandleFunc("/api/components", h.metrics("/api/components", userhttp.AuthMiddleware(h.CreateComponent))).Methods("POST")
	router.HandleFunc("/api/components/{id}", h.metrics("/api/components/{id}", h.GetComponent)).Methods("GET")
	router.HandleFunc("/api/components/{id}", h.metrics("/api/components/{id}", userhttp.AuthMiddleware(h.UpdateComponent))).Methods("PUT")
	router.HandleFunc("/api/components/{id}", h.metrics("/api/components/{id}", userhttp.AuthMiddleware(h.DeleteComponent))).Methods("DELETE")
	router.HandleFunc("/api/components/{id}/movements", h.metrics("/api/components/{id}/movements", userhttp.AuthMiddleware(h.ApplyMovement))).Methods("POST")
	router.HandleFunc("/api/summary", h.metrics("/api/summary", h.GetSummary)).Methods("GET")
}

// RegisterHealthCheck registers the health check endpoint. A nil db
// means the in-memory backend, which is always healthy.
func (h *ComponentHandler) RegisterHealthCheck(router *mux.Router, db *gorm.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.Ping()
			}
			if err != nil {
				h.respondError(w, http.StatusServiceUnavailable, "Database unavailable")
				return
			}
		}

		h.respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "labtrack is healthy",
		})
	}).Methods("GET")
}

// actor resolves the acting user for audit entries. Anonymous or
// unresolvable sessions fall back to the token email, then to "system".
func (h *ComponentHandler) actor(r *http.Request) (name, avatar string) {
	if id, ok := userhttp.UserID(r.Context()); ok {
		if user, err := h.users.FindByID(id); err == nil {
			return user.Name, user.Avatar
		}
	}
	if email, ok := r.Context().Value(userhttp.EmailKey).(string); ok && email != "" {
		return email, ""
	}
	return "system", ""
}

func (h *ComponentHandler) refreshLowStockGauge() {
	summary, err := h.summaryHandler.Handle()
	if err != nil {
		return
	}
	lowStockGauge.Set(float64(summary.LowStockTypes))
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

func (h *ComponentHandler) metrics(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func (h *ComponentHandler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *ComponentHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}
