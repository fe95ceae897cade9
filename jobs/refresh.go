package jobs

import (
	"context"
	"os"
	"strconv"
	"time"

	"junket/config"
	"junket/store"
	"junket/task"
)

const defaultRefreshSeconds = 30

// SnapshotScheduler re-fetches the dashboard snapshot on a fixed interval.
// There is no push channel to the backend; polling is the refresh model.
type SnapshotScheduler struct {
	loader   store.Loader
	interval time.Duration
	stop     chan struct{}
}

func StartSnapshotScheduler(loader store.Loader) *SnapshotScheduler {
	seconds, err := strconv.Atoi(os.Getenv("SNAPSHOT_REFRESH_SECONDS"))
	if err != nil || seconds <= 0 {
		seconds = defaultRefreshSeconds
	}

	s := &SnapshotScheduler{
		loader:   loader,
		interval: time.Duration(seconds) * time.Second,
		stop:     make(chan struct{}),
	}

	// Prime the cache before the first tick so the dashboard is not
	// empty for a full interval after startup.
	if err := store.Refresh(context.Background(), loader); err != nil {
		config.LogError(config.GetLogger(), "jobs", "StartSnapshotScheduler", "initial snapshot load", nil, err)
	}

	go s.run()
	return s
}

func (s *SnapshotScheduler) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := store.Refresh(context.Background(), s.loader); err != nil {
				config.LogError(config.GetLogger(), "jobs", "run", "snapshot refresh", nil, err)
			}
		case <-s.stop:
			return
		}
	}
}

// Stop halts the polling loop. Safe to call once.
func (s *SnapshotScheduler) Stop() {
	close(s.stop)
}

// StartCleanupScheduler purges soft-deleted gaming records on a slow tick.
func StartCleanupScheduler() {
	ticker := time.NewTicker(6 * time.Hour)
	go func() {
		for {
			<-ticker.C
			task.CleanupDeletedRecords()
		}
	}()
}
