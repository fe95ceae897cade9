package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"junket/metrics"
)

// APILoader fetches collections from the hosted REST backend. Responses
// normally wrap the payload as {"data": [...]}; a bare array is tolerated.
// A missing collection reads as empty, not as an error.
type APILoader struct {
	BaseURL string
	Client  *http.Client
}

func NewAPILoader(baseURL string) *APILoader {
	return &APILoader{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (l *APILoader) Load(ctx context.Context) (*metrics.Snapshot, error) {
	snap := &metrics.Snapshot{}

	raw, err := l.Collection(ctx, CollectionAgents)
	if err != nil {
		return nil, err
	}
	for _, r := range raw {
		snap.Agents = append(snap.Agents, NormalizeAgent(r))
	}

	raw, err = l.Collection(ctx, CollectionCustomers)
	if err != nil {
		return nil, err
	}
	for _, r := range raw {
		snap.Customers = append(snap.Customers, NormalizeCustomer(r))
	}

	raw, err = l.Collection(ctx, CollectionTrips)
	if err != nil {
		return nil, err
	}
	for _, r := range raw {
		snap.Trips = append(snap.Trips, NormalizeTrip(r))
	}

	raw, err = l.Collection(ctx, CollectionRollingRecords)
	if err != nil {
		return nil, err
	}
	for _, r := range raw {
		snap.RollingRecords = append(snap.RollingRecords, NormalizeRollingRecord(r))
	}

	raw, err = l.Collection(ctx, CollectionBuyInOutRecords)
	if err != nil {
		return nil, err
	}
	for _, r := range raw {
		snap.BuyInOutRecords = append(snap.BuyInOutRecords, NormalizeBuyInOutRecord(r))
	}

	return snap, nil
}

// Collection fetches one raw collection by name.
func (l *APILoader) Collection(ctx context.Context, name string) ([]map[string]any, error) {
	url := l.BaseURL + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var bare []map[string]any
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		return wrapped.Data, nil
	}

	return nil, fmt.Errorf("fetch %s: unrecognized response shape", name)
}
