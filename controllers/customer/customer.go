package customer

import (
	"github.com/gofiber/fiber/v2"

	"junket/database"
	"junket/helpers"
	"junket/models"
)

type CreateCustomerRequest struct {
	Name              string                `json:"name"`
	AgentCode         string                `json:"agent_code"`
	RollingPercentage models.FlexibleNumber `json:"rolling_percentage"`
	CreditLimit       models.FlexibleNumber `json:"credit_limit"`
}

func CreateCustomer(c *fiber.Ctx) error {
	var req CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.Name == "" {
		return helpers.JSONError(c, "NAME_REQUIRED")
	}

	// Agents create customers into their own book; admins must name one.
	agentCode := req.AgentCode
	if agent, ok := c.Locals("agent").(models.Agent); ok {
		agentCode = agent.AgentCode
	}
	if agentCode == "" {
		return helpers.JSONError(c, "AGENT_CODE_REQUIRED")
	}

	var agent models.Agent
	if err := database.DB.Where("agent_code = ? AND is_active = true", agentCode).First(&agent).Error; err != nil {
		return helpers.JSONError(c, "AGENT_NOT_FOUND")
	}

	cust := models.Customer{
		CustomerCode:      helpers.GenerateCustomerCode(),
		Name:              req.Name,
		AgentCode:         agentCode,
		RollingPercentage: req.RollingPercentage.Float64(),
		CreditLimit:       req.CreditLimit.Float64(),
		IsActive:          true,
	}
	if err := database.DB.Create(&cust).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_CUSTOMER")
	}

	return helpers.JSONSuccess(c, "Customer created successfully", fiber.Map{
		"customer_code":      cust.CustomerCode,
		"name":               cust.Name,
		"agent_code":         cust.AgentCode,
		"rolling_percentage": cust.EffectiveRollingPercentage(),
		"credit_limit":       cust.CreditLimit,
	})
}

type UpdateCustomerRequest struct {
	CustomerCode      string                 `json:"customer_code"`
	Name              *string                `json:"name"`
	RollingPercentage *models.FlexibleNumber `json:"rolling_percentage"`
	CreditLimit       *models.FlexibleNumber `json:"credit_limit"`
	IsActive          *bool                  `json:"is_active"`
}

func UpdateCustomer(c *fiber.Ctx) error {
	var req UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.CustomerCode == "" {
		return helpers.JSONError(c, "CUSTOMER_CODE_REQUIRED")
	}

	query := database.DB.Where("customer_code = ?", req.CustomerCode)
	if agent, ok := c.Locals("agent").(models.Agent); ok {
		query = query.Where("agent_code = ?", agent.AgentCode)
	}

	var cust models.Customer
	if err := query.First(&cust).Error; err != nil {
		return helpers.JSONError(c, "CUSTOMER_NOT_FOUND")
	}

	if req.Name != nil {
		cust.Name = *req.Name
	}
	if req.RollingPercentage != nil {
		cust.RollingPercentage = req.RollingPercentage.Float64()
	}
	if req.CreditLimit != nil {
		cust.CreditLimit = req.CreditLimit.Float64()
	}
	if req.IsActive != nil {
		cust.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&cust).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_CUSTOMER")
	}

	return helpers.JSONSuccess(c, "Customer updated successfully", fiber.Map{
		"customer_code":      cust.CustomerCode,
		"name":               cust.Name,
		"rolling_percentage": cust.EffectiveRollingPercentage(),
		"credit_limit":       cust.CreditLimit,
		"is_active":          cust.IsActive,
	})
}

func ListCustomers(c *fiber.Ctx) error {
	query := database.DB.Order("created_at")
	if agent, ok := c.Locals("agent").(models.Agent); ok {
		query = query.Where("agent_code = ?", agent.AgentCode)
	} else if ac := c.Query("agent"); ac != "" {
		query = query.Where("agent_code = ?", ac)
	}

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_CUSTOMERS")
	}

	out := make([]fiber.Map, 0, len(customers))
	for _, cust := range customers {
		out = append(out, fiber.Map{
			"customer_code":      cust.CustomerCode,
			"name":               cust.Name,
			"agent_code":         cust.AgentCode,
			"rolling_percentage": cust.EffectiveRollingPercentage(),
			"credit_limit":       cust.CreditLimit,
			"credit_used":        cust.CreditUsed,
			"is_active":          cust.IsActive,
		})
	}
	return helpers.JSONSuccess(c, "Customers retrieved successfully", out)
}
