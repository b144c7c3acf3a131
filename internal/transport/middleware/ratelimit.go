package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// clientIdleTTL is how long a client's limiter survives without traffic.
const clientIdleTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client host. The source port is
// ignored so a client cannot dodge the budget by opening new connections.
type RateLimiter struct {
	clients  sync.Map // host -> *client
	stop     chan struct{}
	stopOnce sync.Once
}

type client struct {
	lim      *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewRateLimiter starts the background sweep of idle clients.
// Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.sweep(cleanupInterval)
	return rl
}

// Stop ends the sweep. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit allows each client a burst of maxPerMinute requests refilled evenly
// over a minute. Rejected requests get 429 RATE_LIMITED with Retry-After.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	every := rate.Every(time.Minute / time.Duration(maxPerMinute))
	limit := strconv.Itoa(maxPerMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := rl.client(clientKey(r), every, maxPerMinute)
			w.Header().Set("X-RateLimit-Limit", limit)

			now := time.Now()
			res := c.lim.ReserveN(now, 1)
			if delay := res.DelayFrom(now); delay > 0 {
				res.CancelAt(now)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) client(key string, every rate.Limit, burst int) *client {
	v, ok := rl.clients.Load(key)
	if !ok {
		v, _ = rl.clients.LoadOrStore(key, &client{lim: rate.NewLimiter(every, burst)})
	}
	c := v.(*client)
	c.lastSeen.Store(time.Now().UnixNano())
	return c
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			cutoff := now.Add(-clientIdleTTL).UnixNano()
			rl.clients.Range(func(key, value any) bool {
				if value.(*client).lastSeen.Load() < cutoff {
					rl.clients.Delete(key)
				}
				return true
			})
		}
	}
}
