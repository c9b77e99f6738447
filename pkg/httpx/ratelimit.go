package httpx

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/gymtrack/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimit is a token bucket refilled with Requests per Window.
// A zero Requests value disables limiting.
type RateLimit struct {
	Requests int
	Window   time.Duration
	Burst    int
}

// Enabled reports whether the limit should be enforced.
func (l RateLimit) Enabled() bool { return l.Requests > 0 && l.Window > 0 }

// RateLimits groups the profiles used by the router.
type RateLimits struct {
	Strict   RateLimit // credential and email triggering endpoints
	Moderate RateLimit // account management
	Lenient  RateLimit // training CRUD
	Public   RateLimit // health checks
}

// DefaultRateLimits are the production profiles.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		Strict:   RateLimit{Requests: 5, Window: time.Minute, Burst: 5},
		Moderate: RateLimit{Requests: 30, Window: time.Minute, Burst: 30},
		Lenient:  RateLimit{Requests: 120, Window: time.Minute, Burst: 120},
		Public:   RateLimit{Requests: 1000, Window: time.Minute, Burst: 1000},
	}
}

// KeyFunc groups requests into buckets. An empty key skips limiting.
type KeyFunc func(*http.Request) string

// ClientIP returns the originating client address, honouring
// X-Forwarded-For and X-Real-IP.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// UserOrIP keys authenticated requests by user and anonymous ones by IP.
func UserOrIP(r *http.Request) string {
	if uid := UserIDFromContext(r.Context()); uid != "" {
		return "user:" + uid
	}
	return "ip:" + ClientIP(r)
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore holds one limiter per key and evicts idle ones.
type limiterStore struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	limit     rate.Limit
	burst     int
	idleAfter time.Duration
	lastSweep time.Time
}

func newLimiterStore(cfg RateLimit) *limiterStore {
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.Requests
	}
	return &limiterStore{
		entries:   make(map[string]*limiterEntry),
		limit:     rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds()),
		burst:     burst,
		idleAfter: max(cfg.Window, 5*time.Minute),
		lastSweep: time.Now(),
	}
}

func (s *limiterStore) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > s.idleAfter {
		for k, e := range s.entries {
			if now.Sub(e.lastSeen) > s.idleAfter {
				delete(s.entries, k)
			}
		}
		s.lastSweep = now
	}

	e, ok := s.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

// RateLimitMiddleware rejects requests over cfg with 429 and a Retry-After header.
func RateLimitMiddleware(cfg RateLimit, key KeyFunc) Middleware {
	if !cfg.Enabled() {
		return nil
	}
	store := newLimiterStore(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			now := time.Now()
			res := store.get(k, now).ReserveN(now, 1)
			if delay := res.DelayFrom(now); !res.OK() || delay > 0 {
				res.CancelAt(now)
				retryAfter := max(int(delay.Round(time.Second).Seconds()), 1)

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
				slogx.FromContext(r.Context()).Warn("rate limit exceeded",
					slog.String("key", k),
					slog.Int("retry_after", retryAfter),
				)
				writeError(w, http.StatusTooManyRequests, "rate_limited", "Request was throttled.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP limits per client IP.
func RateLimitByIP(cfg RateLimit) Middleware {
	return RateLimitMiddleware(cfg, func(r *http.Request) string { return "ip:" + ClientIP(r) })
}

// RateLimitByUser limits per authenticated user, falling back to the client IP.
func RateLimitByUser(cfg RateLimit) Middleware {
	return RateLimitMiddleware(cfg, UserOrIP)
}
