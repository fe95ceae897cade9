package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"junket/helpers"
	"junket/metrics"
	"junket/store"
)

// Summary returns the headline metrics card for the caller's scope.
func Summary(c *fiber.Ctx) error {
	snap, err := store.Snapshot(c.Context())
	if err != nil {
		return helpers.JSONError(c, "SNAPSHOT_UNAVAILABLE")
	}
	filter := helpers.ViewFilterFromCtx(c)

	return helpers.JSONSuccess(c, "Dashboard summary", fiber.Map{
		"summary": metrics.Aggregate(snap, filter),
		"status":  store.Status(),
	})
}

// DailyChart returns the chart-ready daily series.
func DailyChart(c *fiber.Ctx) error {
	snap, err := store.Snapshot(c.Context())
	if err != nil {
		return helpers.JSONError(c, "SNAPSHOT_UNAVAILABLE")
	}
	filter := helpers.ViewFilterFromCtx(c)

	return helpers.JSONSuccess(c, "Daily chart data", metrics.DailyChartData(snap, filter))
}

// TopCustomers returns the dashboard's top-five rolling customers.
func TopCustomers(c *fiber.Ctx) error {
	snap, err := store.Snapshot(c.Context())
	if err != nil {
		return helpers.JSONError(c, "SNAPSHOT_UNAVAILABLE")
	}
	filter := helpers.ViewFilterFromCtx(c)

	return helpers.JSONSuccess(c, "Top customers",
		metrics.TopCustomers(snap, filter, metrics.TopCustomersDashboard))
}

// AgentPerformance returns the per-agent rollup table.
func AgentPerformance(c *fiber.Ctx) error {
	snap, err := store.Snapshot(c.Context())
	if err != nil {
		return helpers.JSONError(c, "SNAPSHOT_UNAVAILABLE")
	}
	filter := helpers.ViewFilterFromCtx(c)

	return helpers.JSONSuccess(c, "Agent performance", metrics.AgentPerformance(snap, filter))
}

// Status reports the backend connection state for the status badge.
func Status(c *fiber.Ctx) error {
	return helpers.JSONSuccess(c, "Connection status", store.Status())
}

// Refresh is the manual retry action: re-fetch the snapshot now instead of
// waiting for the next poll tick.
func Refresh(c *fiber.Ctx) error {
	if store.DefaultLoader == nil {
		return helpers.JSONError(c, "NO_LOADER_CONFIGURED")
	}
	if err := store.Refresh(c.Context(), store.DefaultLoader); err != nil {
		return helpers.JSONError(c, "REFRESH_FAILED")
	}
	return helpers.JSONSuccess(c, "Snapshot refreshed", store.Status())
}
