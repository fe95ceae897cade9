package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"junket/database"
	"junket/helpers"
	"junket/models"
)

// AgentAuth resolves the calling agent from header credentials and stores
// it in locals for the handlers behind it.
func AgentAuth(c *fiber.Ctx) error {
	agentCode := c.Get("X-Agent-Code")
	secretKey := c.Get("X-Secret-Key")

	if agentCode == "" || secretKey == "" {
		return helpers.JSONUnauthorized(c, "AGENT_CODE_AND_SECRET_REQUIRED")
	}

	var agent models.Agent
	if err := database.DB.Where("agent_code = ? AND secret_key = ? AND is_active = true", agentCode, secretKey).First(&agent).Error; err != nil {
		return helpers.JSONUnauthorized(c, "INVALID_AGENT_CREDENTIALS")
	}

	c.Locals("agent", agent)
	return c.Next()
}
