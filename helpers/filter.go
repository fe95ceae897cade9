package helpers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"junket/metrics"
	"junket/models"
)

// ViewFilterFromCtx builds the aggregation filter for a request. Role
// scope comes from whichever credential middleware ran; admins may drill
// down into one agent or staff member via query parameters.
func ViewFilterFromCtx(c *fiber.Ctx) metrics.ViewFilter {
	f := metrics.ViewFilter{Role: metrics.RoleAdmin}

	if agent, ok := c.Locals("agent").(models.Agent); ok {
		f.Role = metrics.RoleAgent
		f.AgentCode = agent.AgentCode
	} else if staff, ok := c.Locals("staff").(models.Staff); ok {
		f.Role = metrics.RoleStaff
		f.StaffCode = staff.StaffCode
	} else {
		// Administrative drill-down.
		f.AgentCode = c.Query("agent")
		if sc := c.Query("staff"); sc != "" {
			f.Role = metrics.RoleStaff
			f.StaffCode = sc
		}
	}

	if days, err := strconv.Atoi(c.Query("days")); err == nil && days > 0 {
		f.DateRangeDays = days
	}
	return f
}
