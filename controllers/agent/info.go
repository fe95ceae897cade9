package agent

import (
	"github.com/gofiber/fiber/v2"

	"junket/database"
	"junket/helpers"
	"junket/metrics"
	"junket/models"
	"junket/store"
)

// AgentInfo returns the calling agent's profile plus a summary of their
// book, computed from the shared snapshot.
func AgentInfo(c *fiber.Ctx) error {
	agent, ok := c.Locals("agent").(models.Agent)
	if !ok {
		return helpers.JSONError(c, "INVALID_AGENT_SESSION")
	}

	var customerCount int64
	if err := database.DB.Model(&models.Customer{}).
		Where("agent_code = ? AND is_active = true", agent.AgentCode).
		Count(&customerCount).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_COUNT_CUSTOMERS")
	}

	snap, err := store.Snapshot(c.Context())
	if err != nil {
		return helpers.JSONError(c, "SNAPSHOT_UNAVAILABLE")
	}
	sum := metrics.Aggregate(snap, metrics.ViewFilter{
		Role:      metrics.RoleAgent,
		AgentCode: agent.AgentCode,
	})

	return helpers.JSONSuccess(c, "Agent info retrieved successfully", fiber.Map{
		"agent_code":       agent.AgentCode,
		"name":             agent.Name,
		"commission_rate":  agent.CommissionRate,
		"customer_count":   customerCount,
		"total_rolling":    sum.CustomerTotalRolling,
		"total_commission": sum.TotalRollingCommission,
		"house_net_win":    sum.HouseNetWin,
	})
}

func ListAgents(c *fiber.Ctx) error {
	var agents []models.Agent
	if err := database.DB.Order("created_at").Find(&agents).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_AGENTS")
	}

	out := make([]fiber.Map, 0, len(agents))
	for _, a := range agents {
		out = append(out, fiber.Map{
			"agent_code":      a.AgentCode,
			"name":            a.Name,
			"commission_rate": a.CommissionRate,
			"is_active":       a.IsActive,
		})
	}
	return helpers.JSONSuccess(c, "Agents retrieved successfully", out)
}
