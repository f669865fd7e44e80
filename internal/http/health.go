package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/portfolio-service/internal/circuitbreaker"
)

// DefaultCheckTimeout bounds each readiness ping.
const DefaultCheckTimeout = 2 * time.Second

// HealthChecker is a dependency the readiness check can ping.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// DependencyOption tunes how a registered dependency affects readiness.
type DependencyOption func(*dependency)

// Optional marks a dependency whose failure degrades the service without
// taking it out of rotation. The audit store is registered this way.
func Optional() DependencyOption {
	return func(d *dependency) { d.optional = true }
}

type dependency struct {
	optional bool
	checker  HealthChecker
	breaker  *circuitbreaker.CircuitBreaker
}

// HealthHandler serves the liveness and readiness checks.
type HealthHandler struct {
	timeout time.Duration
	deps    map[string]*dependency
}

// NewHealthHandler creates a HealthHandler with DefaultCheckTimeout.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		timeout: DefaultCheckTimeout,
		deps:    make(map[string]*dependency),
	}
}

// RegisterChecker adds a dependency pinged on every readiness check. Its
// result is reported under name.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker, opts ...DependencyOption) {
	h.register(name, &dependency{checker: checker}, opts)
}

// RegisterCircuitBreaker reports the breaker state under name + "_circuit".
// A breaker that is not closed fails readiness.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker, opts ...DependencyOption) {
	h.register(name+"_circuit", &dependency{breaker: cb}, opts)
}

func (h *HealthHandler) register(key string, d *dependency, opts []DependencyOption) {
	for _, opt := range opts {
		opt(d)
	}
	h.deps[key] = d
}

// Register mounts /healthz and /readyz.
func (h *HealthHandler) Register(router gin.IRoutes) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness check endpoint.
// @Summary     Liveness check
// @Description Returns OK while the process is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness check endpoint.
// @Summary     Readiness check
// @Description Pings the content and audit stores and reports circuit breaker states. Returns 503 when the content store is down or its breaker is not closed. A failing audit store reports degraded with 200.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	var (
		mu       sync.Mutex
		checks   = make(map[string]interface{}, len(h.deps))
		degraded bool
		down     bool
	)
	report := func(key string, d *dependency, value string, healthy bool) {
		mu.Lock()
		defer mu.Unlock()
		checks[key] = value
		if !healthy {
			degraded = true
			down = down || !d.optional
		}
	}

	var g errgroup.Group
	for key, d := range h.deps {
		if d.breaker != nil {
			stats := d.breaker.GetStats()
			report(key, d, stats.State, stats.IsHealthy)
			continue
		}
		g.Go(func() error {
			if err := d.checker.HealthCheck(ctx); err != nil {
				report(key, d, err.Error(), false)
				return nil
			}
			report(key, d, "ok", true)
			return nil
		})
	}
	_ = g.Wait()

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	status, code := "ok", http.StatusOK
	if degraded {
		status = "degraded"
	}
	if down {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "checks": checks})
}
