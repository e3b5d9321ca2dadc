package loadbalancer

import (
	"sync"
)

// LoadBalancer hands out analysis backends round-robin. With a single backend
// it degenerates to a constant.
type LoadBalancer struct {
	backends []string
	mu       sync.Mutex
	current  int
}

func NewLoadBalancer(backends []string) *LoadBalancer {
	return &LoadBalancer{
		backends: backends,
		current:  0,
	}
}

func (lb *LoadBalancer) NextBackend() string {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	backend := lb.backends[lb.current]
	lb.current = (lb.current + 1) % len(lb.backends)
	return backend
}

func (lb *LoadBalancer) Len() int {
	return len(lb.backends)
}
