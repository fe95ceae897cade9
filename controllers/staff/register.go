package staff

import (
	"github.com/gofiber/fiber/v2"

	"junket/database"
	"junket/helpers"
	"junket/models"
)

type RegisterStaffRequest struct {
	Name string `json:"name"`
}

func RegisterStaff(c *fiber.Ctx) error {
	var req RegisterStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.Name == "" {
		return helpers.JSONError(c, "NAME_REQUIRED")
	}

	staff := models.Staff{
		StaffCode: helpers.GenerateStaffCode(),
		Name:      req.Name,
		IsActive:  true,
	}
	if err := database.DB.Create(&staff).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_REGISTER_STAFF")
	}

	return helpers.JSONSuccess(c, "Staff registered successfully", fiber.Map{
		"staff_code": staff.StaffCode,
		"name":       staff.Name,
	})
}
