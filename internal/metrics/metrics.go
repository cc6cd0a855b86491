package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Registry groups the process counters exposed at /api/metrics.
type Registry struct {
	RequestsTotal   Counter
	OrdersCreated   Counter
	CheckoutsFailed Counter
	LoginsTotal     Counter
}

func NewRegistry() *Registry {
	return &Registry{}
}

type Snapshot struct {
	RequestsTotal   uint64 `json:"requestsTotal"`
	OrdersCreated   uint64 `json:"ordersCreated"`
	CheckoutsFailed uint64 `json:"checkoutsFailed"`
	LoginsTotal     uint64 `json:"loginsTotal"`
}

func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		RequestsTotal:   r.RequestsTotal.Load(),
		OrdersCreated:   r.OrdersCreated.Load(),
		CheckoutsFailed: r.CheckoutsFailed.Load(),
		LoginsTotal:     r.LoginsTotal.Load(),
	}
}
