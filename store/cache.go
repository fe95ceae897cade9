package store

import (
	"context"
	"sync"
	"time"

	"junket/metrics"
)

// ConnectionStatus is what the dashboard shows about the backend link.
type ConnectionStatus struct {
	Connected bool      `json:"connected"`
	Message   string    `json:"message"`
	LastSync  time.Time `json:"last_sync"`
}

// cache holds the latest good snapshot. Writers swap it wholesale, so a
// reader always sees one consistent snapshot, never a partial update.
var cache = struct {
	mu     sync.RWMutex
	snap   *metrics.Snapshot
	status ConnectionStatus
}{
	status: ConnectionStatus{Message: "not yet synced"},
}

// Refresh loads a fresh snapshot and publishes it. On failure the previous
// snapshot stays in place and only the status flips to disconnected.
func Refresh(ctx context.Context, loader Loader) error {
	snap, err := loader.Load(ctx)

	cache.mu.Lock()
	defer cache.mu.Unlock()
	if err != nil {
		cache.status.Connected = false
		cache.status.Message = "backend unavailable: " + err.Error()
		return err
	}
	cache.snap = snap
	cache.status = ConnectionStatus{
		Connected: true,
		Message:   "connected",
		LastSync:  time.Now(),
	}
	return nil
}

// DefaultLoader backs Snapshot when nothing has been published yet. Set
// once at startup, before the schedulers run.
var DefaultLoader Loader

// Snapshot returns the latest published snapshot, loading one on demand
// when the cache is still cold.
func Snapshot(ctx context.Context) (metrics.Snapshot, error) {
	if snap, ok := CurrentSnapshot(); ok {
		return snap, nil
	}
	if DefaultLoader == nil {
		return metrics.Snapshot{}, nil
	}
	if err := Refresh(ctx, DefaultLoader); err != nil {
		return metrics.Snapshot{}, err
	}
	snap, _ := CurrentSnapshot()
	return snap, nil
}

// CurrentSnapshot returns the latest published snapshot. The second value
// reports whether a snapshot has ever been published.
func CurrentSnapshot() (metrics.Snapshot, bool) {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	if cache.snap == nil {
		return metrics.Snapshot{}, false
	}
	return *cache.snap, true
}

func Status() ConnectionStatus {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return cache.status
}
