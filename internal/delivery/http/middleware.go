package http

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/veridoc/backend/internal/domain"
)

// CORSMiddleware handles CORS for the browser frontend
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Check if origin is allowed
		if isAllowedOrigin(origin, allowedOrigins) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Max-Age", "3600")
		}

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// isAllowedOrigin checks if the origin is in the allowed list
func isAllowedOrigin(origin string, allowedOrigins []string) bool {
	for _, allowed := range allowedOrigins {
		// Support wildcard suffix matching, e.g. https://*.example.com origins
		if strings.HasSuffix(allowed, "*") {
			prefix := strings.TrimSuffix(allowed, "*")
			if strings.HasPrefix(origin, prefix) {
				return true
			}
		} else if origin == allowed {
			return true
		}
	}
	return false
}

// limiterIdleTTL is how long a client IP's limiter survives without
// traffic before it is eligible for eviction
const limiterIdleTTL = 10 * time.Minute

// ipLimiters tracks one rate limiter per client IP. Idle entries are
// pruned whenever a new IP is added, so the map stays bounded by the
// set of recently active clients.
type ipLimiters struct {
	mu      sync.Mutex
	entries map[string]*ipLimiterEntry
	perIP   rate.Limit
	burst   int
}

type ipLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPLimiters(perIP float64, burst int) *ipLimiters {
	return &ipLimiters{
		entries: make(map[string]*ipLimiterEntry),
		perIP:   rate.Limit(perIP),
		burst:   burst,
	}
}

// get returns the limiter for ip, creating it if needed and refreshing
// its last-seen time
func (l *ipLimiters) get(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[ip]
	if !ok {
		l.prune(now)
		entry = &ipLimiterEntry{limiter: rate.NewLimiter(l.perIP, l.burst)}
		l.entries[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}

// prune drops limiters idle past limiterIdleTTL. Caller holds l.mu.
func (l *ipLimiters) prune(now time.Time) {
	for ip, entry := range l.entries {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(l.entries, ip)
		}
	}
}

func (l *ipLimiters) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// RateLimitMiddleware limits requests per client IP. OCR is expensive, so
// the verification endpoints sit behind this.
func RateLimitMiddleware(perIP float64, burst int) gin.HandlerFunc {
	if perIP <= 0 {
		perIP = 10
	}
	if burst <= 0 {
		burst = 20
	}

	limiters := newIPLimiters(perIP, burst)

	return func(c *gin.Context) {
		limiter := limiters.get(c.ClientIP(), time.Now())

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": domain.ErrRateLimited.Error()})
			return
		}

		c.Next()
	}
}

// LoggerMiddleware logs requests (simple version for now)
func LoggerMiddleware() gin.HandlerFunc {
	return gin.Logger()
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.Recovery()
}
