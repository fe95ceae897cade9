package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"junket/database"
	"junket/helpers"
	"junket/models"
)

// StaffAuth resolves the calling staff member from the header code.
func StaffAuth(c *fiber.Ctx) error {
	staffCode := c.Get("X-Staff-Code")
	if staffCode == "" {
		return helpers.JSONUnauthorized(c, "STAFF_CODE_REQUIRED")
	}

	var staff models.Staff
	if err := database.DB.Where("staff_code = ? AND is_active = true", staffCode).First(&staff).Error; err != nil {
		return helpers.JSONUnauthorized(c, "INVALID_STAFF_CODE")
	}

	c.Locals("staff", staff)
	return c.Next()
}
