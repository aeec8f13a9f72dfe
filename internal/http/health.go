package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/box-service/internal/circuitbreaker"
	"golang.org/x/sync/errgroup"
)

// readinessCheckTimeout bounds each dependency check of /readyz.
const readinessCheckTimeout = 2 * time.Second

// HealthChecker probes one dependency.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckerFunc adapts a function such as a database ping to HealthChecker.
type HealthCheckerFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// ReadinessReport is the /readyz body. Checks maps each store to "ok" or its
// error and each breaker, suffixed "_circuit", to its state.
type ReadinessReport struct {
	Status string                 `json:"status"`
	Checks map[string]interface{} `json:"checks"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
	breakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a handler with no dependencies registered.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers: make(map[string]HealthChecker),
		breakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// RegisterChecker adds a dependency probe to /readyz.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	h.checkers[name] = checker
	h.mu.Unlock()
}

// RegisterCircuitBreaker makes /readyz report unready while cb is not closed.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.mu.Lock()
	h.breakers[name] = cb
	h.mu.Unlock()
}

// Register mounts /healthz and /readyz.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK while the process is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Returns OK when the catalog store answers and no circuit breaker is open.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	report := h.check(c.Request.Context())
	status := http.StatusOK
	if report.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}

// check probes every registered dependency in parallel, each under its own
// deadline.
func (h *HealthHandler) check(ctx context.Context) ReadinessReport {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var (
		mu      sync.Mutex
		healthy = true
		checks  = make(map[string]interface{}, len(h.checkers)+len(h.breakers))
	)
	record := func(name string, value interface{}, ok bool) {
		mu.Lock()
		defer mu.Unlock()
		checks[name] = value
		healthy = healthy && ok
	}

	var g errgroup.Group
	for name, checker := range h.checkers {
		name, checker := name, checker
		g.Go(func() error {
			probeCtx, cancel := context.WithTimeout(ctx, readinessCheckTimeout)
			defer cancel()
			if err := checker.Check(probeCtx); err != nil {
				record(name, err.Error(), false)
				return nil
			}
			record(name, "ok", true)
			return nil
		})
	}
	_ = g.Wait()

	for name, cb := range h.breakers {
		stats := cb.GetStats()
		record(name+"_circuit", stats.State, stats.IsHealthy)
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}
	report := ReadinessReport{Status: "ok", Checks: checks}
	if !healthy {
		report.Status = "degraded"
	}
	return report
}
