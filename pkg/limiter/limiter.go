package limiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter hands out a per-client-IP token bucket. Entries idle longer
// than ttl are evicted on a ticker so the map does not grow unbounded.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*client
	rps     int
	burst   int
	ttl     time.Duration

	stopOnce sync.Once
	done     chan struct{}
}

func New(rps int, burst int, ttl time.Duration) *Limiter {
	l := &Limiter{
		clients: make(map[string]*client),
		rps:     rps,
		burst:   burst,
		ttl:     ttl,
		done:    make(chan struct{}),
	}

	go l.evict()

	return l
}

// Stop ends the eviction loop. Safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}

func (l *Limiter) evict() {
	ticker := time.NewTicker(l.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.mu.Lock()
			for ip, c := range l.clients {
				if time.Since(c.lastSeen) > l.ttl {
					delete(l.clients, ip)
				}
			}
			l.mu.Unlock()
		}
	}
}

func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		v, ok := l.clients[ip]
		if !ok {
			v = &client{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
			l.clients[ip] = v
		}
		v.lastSeen = time.Now()
		allowed := v.limiter.Allow()
		l.mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "請求過於頻繁，請稍後再試",
			})
			return
		}

		c.Next()
	}
}
