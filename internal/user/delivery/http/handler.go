package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/labtrack/labtrack/internal/user/domain"
	"github.com/labtrack/labtrack/internal/user/usecase/command"
	"github.com/labtrack/labtrack/internal/user/usecase/query"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labtrack_auth_requests_total",
			Help: "Total number of auth and user directory requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "labtrack_auth_request_duration_seconds",
			Help:    "Duration of auth and user directory requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// UserHandler handles HTTP requests for sessions and the user directory
type UserHandler struct {
	loginHandler *command.LoginUserHandler
	getHandler   *query.GetUserHandler
	listHandler  *query.ListUsersHandler
}

// NewUserHandler creates a new user handler
func NewUserHandler(repo domain.UserRepository) *UserHandler {
	return &UserHandler{
		loginHandler: command.NewLoginUserHandler(repo),
		getHandler:   query.NewGetUserHandler(repo),
		listHandler:  query.NewListUsersHandler(repo),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
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

// metricsMiddleware wraps handlers with Prometheus metrics
func metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	response, err := h.loginHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Logged in",
		Data:    response,
	})
}

// Logout handles POST /auth/logout. The token lives client-side; the
// server only acknowledges so the client clears its persisted copy.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Logged out",
	})
}

// Me handles GET /auth/me, rehydrating the session from the token
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.getHandler.Handle(query.GetUserQuery{ID: userID})
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Session user no longer exists")
		return
	}

	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    user,
	})
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.listHandler.Handle(query.ListUsersQuery{})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	h.respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    users,
	})
}

// RegisterRoutes registers all session and user directory routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/login", metricsMiddleware("/auth/login", h.Login)).Methods("POST")
	router.HandleFunc("/auth/logout", metricsMiddleware("/auth/logout", h.Logout)).Methods("POST")
	router.HandleFunc("/auth/me", metricsMiddleware("/auth/me", AuthMiddleware(h.Me))).Methods("GET")
	router.HandleFunc("/api/users", metricsMiddleware("/api/users", AuthMiddleware(h.ListUsers))).Methods("GET")
}

func (h *UserHandler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *UserHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}
