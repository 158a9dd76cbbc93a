package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// visitorTTL is how long a Visitor is remembered after it was last seen.
const visitorTTL = 60 * time.Minute

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
type Visitors struct {
	val   map[string]Visitor
	rps   rate.Limit
	burst int
	sync.Mutex
}

// NewVisitors constructs a Visitors limiting each address to rps requests every second
// with bursts of up to burst. Non-positive values fall back to 5 and 20.
func NewVisitors(rps float64, burst int) *Visitors {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 20
	}

	return &Visitors{val: make(map[string]Visitor), rps: rate.Limit(rps), burst: burst}
}

// Fetch retrieves the Visitor for the given ip creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.rps, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// Len counts the remembered visitors.
func (vs *Visitors) Len() int {
	vs.Lock()
	defer vs.Unlock()
	return len(vs.val)
}

// Cleanup forgets every Visitor not seen since before the TTL elapsed.
func (vs *Visitors) Cleanup(now time.Time) {
	vs.Lock()
	defer vs.Unlock()
	for ip, v := range vs.val {
		if now.Sub(v.LastSeen) > visitorTTL {
			delete(vs.val, ip)
		}
	}
}

// RateLimit encloses the Visitors map and serves the http.Handler,
// responding 429 Too Many Requests to addresses exceeding their limit.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
func RateLimit(visitors *Visitors) Adapter {
	if visitors == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := GetIPAddress(r.Header)
			if ip == UnknownIPAddress {
				ip = remoteAddr(r)
			}

			if !visitors.Fetch(ip).Limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			visitors.Cleanup(time.Now().UTC())
			h.ServeHTTP(w, r)
		})
	}
}
