package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultMaxClients bounds how many client buckets are tracked before idle
// ones are pruned.
const DefaultMaxClients = 10000

// DefaultIdleTTL is how long a bucket may go unused before it is eligible
// for pruning.
const DefaultIdleTTL = 3 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiters holds one token bucket per client key (usually the client
// IP). Each bucket refills at rps tokens per second up to burst.
type ClientLimiters struct {
	mu         sync.Mutex
	clients    map[string]*client
	limit      rate.Limit
	burst      int
	maxClients int
	idleTTL    time.Duration
	now        func() time.Time
}

// Option customises a ClientLimiters.
type Option func(*ClientLimiters)

// WithMaxClients overrides DefaultMaxClients.
func WithMaxClients(n int) Option {
	return func(cl *ClientLimiters) { cl.maxClients = n }
}

// WithIdleTTL overrides DefaultIdleTTL.
func WithIdleTTL(d time.Duration) Option {
	return func(cl *ClientLimiters) { cl.idleTTL = d }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(cl *ClientLimiters) { cl.now = now }
}

// New creates a ClientLimiters granting rps tokens per second per client.
func New(rps float64, burst int, opts ...Option) *ClientLimiters {
	cl := &ClientLimiters{
		clients:    make(map[string]*client),
		limit:      rate.Limit(rps),
		burst:      burst,
		maxClients: DefaultMaxClients,
		idleTTL:    DefaultIdleTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// Allow reports whether key may make a request now, consuming a token if so.
// Never blocks.
func (cl *ClientLimiters) Allow(key string) bool {
	now := cl.now()

	cl.mu.Lock()
	c, ok := cl.clients[key]
	if !ok {
		if len(cl.clients) >= cl.maxClients {
			cl.pruneLocked(now)
		}
		c = &client{limiter: rate.NewLimiter(cl.limit, cl.burst)}
		cl.clients[key] = c
	}
	c.lastSeen = now
	cl.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (cl *ClientLimiters) Len() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.clients)
}

// pruneLocked drops buckets idle for longer than idleTTL. If every bucket is
// still fresh the map is reset, which at worst hands a few clients a full
// burst early.
func (cl *ClientLimiters) pruneLocked(now time.Time) {
	for k, c := range cl.clients {
		if now.Sub(c.lastSeen) > cl.idleTTL {
			delete(cl.clients, k)
		}
	}
	if len(cl.clients) >= cl.maxClients {
		cl.clients = make(map[string]*client)
	}
}
