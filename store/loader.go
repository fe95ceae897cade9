// Package store loads operational snapshots for the aggregator, from the
// database or from the hosted REST backend, and normalizes raw records
// into the canonical shapes metrics works on.
package store

import (
	"context"

	"junket/metrics"
)

// Collection names understood by both loaders.
const (
	CollectionAgents          = "agents"
	CollectionCustomers       = "customers"
	CollectionTrips           = "trips"
	CollectionRollingRecords  = "rolling_records"
	CollectionBuyInOutRecords = "buy_in_out_records"
)

// Loader produces one consistent snapshot per call.
type Loader interface {
	Load(ctx context.Context) (*metrics.Snapshot, error)
}
