package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/grantscout/grantscout-backend/utils"
)

const defaultRateLimitClients = 10_000

// Limit allows Requests per Period for a single client.
type Limit struct {
	Requests int
	Period   time.Duration
}

func (l Limit) String() string {
	for unit, period := range limitUnits {
		if period == l.Period {
			return fmt.Sprintf("%d per %s", l.Requests, unit)
		}
	}
	return fmt.Sprintf("%d per %s", l.Requests, l.Period)
}

var limitUnits = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
}

// ParseLimits reads limits written as "200 per day;50 per hour". Empty input means no limit.
func ParseLimits(s string) ([]Limit, error) {
	limits := []Limit{}
	for part := range strings.SplitSeq(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		fields := strings.Fields(strings.ToLower(part))
		if len(fields) != 3 || (fields[1] != "per" && fields[1] != "/") {
			return nil, errors.Newf("invalid rate limit %q, expected \"<count> per <unit>\"", part)
		}
		requests, err := strconv.Atoi(fields[0])
		if err != nil || requests <= 0 {
			return nil, errors.Newf("invalid request count in rate limit %q", part)
		}
		period, ok := limitUnits[strings.TrimSuffix(fields[2], "s")]
		if !ok {
			return nil, errors.Newf("invalid unit in rate limit %q", part)
		}

		limits = append(limits, Limit{Requests: requests, Period: period})
	}
	return limits, nil
}

type rateLimitConfig struct {
	maxClients int
	onLimited  func(c *gin.Context, retryAfter time.Duration)
	now        func() time.Time
}

type RateLimitOption func(*rateLimitConfig)

func WithMaxClients(n int) RateLimitOption {
	return func(c *rateLimitConfig) {
		c.maxClients = n
	}
}

// WithLimitExceededHandler writes the response of rejected requests. The Retry-After header is already set.
func WithLimitExceededHandler(f func(c *gin.Context, retryAfter time.Duration)) RateLimitOption {
	return func(c *rateLimitConfig) {
		c.onLimited = f
	}
}

func withClock(now func() time.Time) RateLimitOption {
	return func(c *rateLimitConfig) {
		c.now = now
	}
}

type rateLimiter struct {
	name   string
	limits []Limit
	config *rateLimitConfig

	mu      sync.Mutex
	clients *expirable.LRU[string, []*rate.Limiter]
}

// NewRateLimiter keeps one token bucket per limit and per client IP. Buckets of idle clients are evicted
// after the longest period.
func NewRateLimiter(name string, limits []Limit, options ...RateLimitOption) gin.HandlerFunc {
	if len(limits) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	config := &rateLimitConfig{
		maxClients: defaultRateLimitClients,
		onLimited: func(c *gin.Context, _ time.Duration) {
			c.AbortWithStatus(http.StatusTooManyRequests)
		},
		now: time.Now,
	}
	for _, option := range options {
		option(config)
	}

	var ttl time.Duration
	for _, l := range limits {
		ttl = max(ttl, l.Period)
	}

	limiter := &rateLimiter{
		name:    name,
		limits:  limits,
		config:  config,
		clients: expirable.NewLRU[string, []*rate.Limiter](config.maxClients, nil, ttl),
	}
	return limiter.handle
}

func (l *rateLimiter) bucketsFor(client string) []*rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if buckets, ok := l.clients.Get(client); ok {
		return buckets
	}
	buckets := make([]*rate.Limiter, len(l.limits))
	for i, limit := range l.limits {
		buckets[i] = rate.NewLimiter(rate.Every(limit.Period/time.Duration(limit.Requests)), limit.Requests)
	}
	l.clients.Add(client, buckets)
	return buckets
}

// allow takes one token from every bucket, or none of them.
func (l *rateLimiter) allow(client string) (bool, time.Duration) {
	now := l.config.now()
	buckets := l.bucketsFor(client)

	reservations := make([]*rate.Reservation, 0, len(buckets))
	var wait time.Duration
	for i, bucket := range buckets {
		r := bucket.ReserveN(now, 1)
		reservations = append(reservations, r)
		if !r.OK() {
			wait = max(wait, l.limits[i].Period)
			continue
		}
		wait = max(wait, r.DelayFrom(now))
	}

	if wait == 0 {
		return true, 0
	}
	for _, r := range reservations {
		r.CancelAt(now)
	}
	return false, wait
}

func (l *rateLimiter) handle(c *gin.Context) {
	allowed, retryAfter := l.allow(c.ClientIP())
	if allowed {
		c.Next()
		return
	}

	ctx := c.Request.Context()
	utils.MetricRateLimited.WithLabelValues(l.name).Inc()
	utils.LoggerFromContext(ctx).WarnContext(ctx, "rate limit exceeded",
		"limiter", l.name,
		"client_ip", c.ClientIP(),
		"retry_after", retryAfter.String())

	seconds := int(math.Ceil(retryAfter.Seconds()))
	c.Header("Retry-After", strconv.Itoa(max(seconds, 1)))
	l.config.onLimited(c, retryAfter)
	c.Abort()
}
