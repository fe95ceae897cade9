package reports

import (
	"github.com/gofiber/fiber/v2"

	"junket/helpers"
	"junket/metrics"
	"junket/store"
)

// Generate produces the full report for the requested scope: summary,
// daily series, top-ten customers and per-agent rollups, all from the
// same snapshot and filter so the figures cannot disagree.
func Generate(c *fiber.Ctx) error {
	snap, err := store.Snapshot(c.Context())
	if err != nil {
		return helpers.JSONError(c, "SNAPSHOT_UNAVAILABLE")
	}
	filter := helpers.ViewFilterFromCtx(c)

	return helpers.JSONSuccess(c, "Report generated", fiber.Map{
		"summary":           metrics.Aggregate(snap, filter),
		"daily":             metrics.DailyChartData(snap, filter),
		"top_customers":     metrics.TopCustomers(snap, filter, metrics.TopCustomersReport),
		"agent_performance": metrics.AgentPerformance(snap, filter),
		"status":            store.Status(),
	})
}
