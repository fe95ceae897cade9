package agent

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"junket/database"
	"junket/helpers"
	"junket/models"
)

type RegisterAgentRequest struct {
	Name           string                `json:"name"`
	CommissionRate models.FlexibleNumber `json:"commission_rate"`
}

func RegisterAgent(c *fiber.Ctx) error {
	var req RegisterAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Name == "" {
		return helpers.JSONError(c, "NAME_REQUIRED")
	}

	rate := req.CommissionRate.Float64()
	if rate <= 0 {
		rate = models.DefaultRollingPercentage
	}

	agentCode := helpers.GenerateAgentCode()
	secretKey := uuid.New().String()

	var existing models.Agent
	if err := database.DB.Where("agent_code = ?", agentCode).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "AGENT_CODE_ALREADY_EXISTS")
	}

	agent := models.Agent{
		AgentCode:      agentCode,
		Name:           req.Name,
		SecretKey:      secretKey,
		CommissionRate: rate,
		IsActive:       true,
	}

	if err := database.DB.Create(&agent).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_REGISTER_AGENT")
	}

	return helpers.JSONSuccess(c, "Agent registered successfully", fiber.Map{
		"agent_code":      agent.AgentCode,
		"name":            agent.Name,
		"secret_key":      agent.SecretKey,
		"commission_rate": agent.CommissionRate,
	})
}
