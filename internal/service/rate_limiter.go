package service

import (
	"context"
	"sync"
	"time"
)

// PredictRateLimiter limita cuántas predicciones puede pedir una IP dentro de una ventana.
type PredictRateLimiter interface {
	Allow(ctx context.Context, clientIP string) bool
}

// memoryRateLimiter guarda, por IP, los instantes de las predicciones aceptadas en la ventana.
type memoryRateLimiter struct {
	mu        sync.Mutex
	window    time.Duration
	max       int
	hits      map[string][]time.Time
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryRateLimiter crea un limiter de ventana deslizante local al proceso.
func NewMemoryRateLimiter(window time.Duration, max int) PredictRateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memoryRateLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (l *memoryRateLimiter) Allow(_ context.Context, clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)
	if now.Sub(l.lastSweep) >= l.window {
		l.evictIdle(cutoff)
		l.lastSweep = now
	}

	recent := dropBefore(l.hits[clientIP], cutoff)
	if len(recent) >= l.max {
		l.hits[clientIP] = recent
		return false
	}
	l.hits[clientIP] = append(recent, now)
	return true
}

// evictIdle borra las IPs cuya última predicción quedó fuera de la ventana.
func (l *memoryRateLimiter) evictIdle(cutoff time.Time) {
	for ip, ts := range l.hits {
		if len(ts) == 0 || !ts[len(ts)-1].After(cutoff) {
			delete(l.hits, ip)
		}
	}
}

// dropBefore asume ts ordenado ascendente.
func dropBefore(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	return ts[i:]
}
