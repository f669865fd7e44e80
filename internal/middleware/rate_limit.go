package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/metrics"
)

const defaultNumShards = 16

// window counts the requests of one client since start.
type window struct {
	start time.Time
	used  int
}

type limiterShard struct {
	mu      sync.Mutex
	windows map[string]*window
}

// RateLimiterOption configures a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithShards sets the number of lock shards. Values below 1 are ignored.
func WithShards(n int) RateLimiterOption {
	return func(rl *RateLimiter) {
		if n > 0 {
			rl.numShards = n
		}
	}
}

// WithScope names the limiter in the rate_limited_total metric.
func WithScope(scope string) RateLimiterOption {
	return func(rl *RateLimiter) { rl.scope = scope }
}

// RateLimiter is a fixed window limiter keyed by client IP. Clients are
// spread over FNV hashed shards so concurrent requests rarely share a lock.
type RateLimiter struct {
	limit     int
	period    time.Duration
	scope     string
	numShards int
	shards    []*limiterShard
	now       func() time.Time
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// NewRateLimiter allows limit requests per period for every client IP and
// starts a goroutine forgetting idle clients. Call Stop to end it.
func NewRateLimiter(limit int, period time.Duration, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		limit:     limit,
		period:    period,
		scope:     "global",
		numShards: defaultNumShards,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}

	rl.shards = make([]*limiterShard, rl.numShards)
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{windows: make(map[string]*window)}
	}
	go rl.evictLoop()
	return rl
}

func (rl *RateLimiter) shard(client string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(client))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// take consumes one request of client's window and reports what is left
// and when the window ends.
func (rl *RateLimiter) take(client string) (ok bool, left int, resetIn time.Duration) {
	s := rl.shard(client)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := rl.now()
	w := s.windows[client]
	if w == nil || now.Sub(w.start) >= rl.period {
		w = &window{start: now}
		s.windows[client] = w
	}
	resetIn = rl.period - now.Sub(w.start)

	if w.used >= rl.limit {
		return false, 0, resetIn
	}
	w.used++
	return true, rl.limit - w.used, resetIn
}

// RateLimit answers 429 with a localized envelope once a client runs out
// of requests in its window.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	limit := strconv.Itoa(rl.limit)
	return func(c *gin.Context) {
		ok, left, resetIn := rl.take(c.ClientIP())

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(left))
		if ok {
			c.Next()
			return
		}

		metrics.RecordRateLimited(rl.scope)
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(resetIn.Seconds()))))
		message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			dto.NewError(dto.ErrCodeRateLimit, message, GetRequestID(c)))
	}
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.stopCh:
			return
		}
	}
}

// evictIdle forgets clients whose window ended more than one period ago.
func (rl *RateLimiter) evictIdle() {
	cutoff := rl.now().Add(-2 * rl.period)
	for _, s := range rl.shards {
		s.mu.Lock()
		for client, w := range s.windows {
			if w.start.Before(cutoff) {
				delete(s.windows, client)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the eviction goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Clients returns the number of tracked clients.
func (rl *RateLimiter) Clients() int {
	total := 0
	for _, s := range rl.shards {
		s.mu.Lock()
		total += len(s.windows)
		s.mu.Unlock()
	}
	return total
}
