package transactions

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"junket/database"
	"junket/helpers"
	"junket/models"
)

type RecordRollingRequest struct {
	CustomerCode  string                `json:"customer_code"`
	TripCode      string                `json:"trip_code"`
	GameType      string                `json:"game_type"`
	RollingAmount models.FlexibleNumber `json:"rolling_amount"`
	WinLoss       models.FlexibleNumber `json:"win_loss"`
	RecordedAt    string                `json:"recorded_at"`
}

// RecordRolling stores one gaming-session rolling entry for a customer.
func RecordRolling(c *fiber.Ctx) error {
	var req RecordRollingRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.CustomerCode == "" {
		return helpers.JSONError(c, "CUSTOMER_CODE_REQUIRED")
	}
	if req.RollingAmount.Float64() < 0 {
		return helpers.JSONError(c, "ROLLING_AMOUNT_MUST_BE_NON_NEGATIVE")
	}

	staff, ok := c.Locals("staff").(models.Staff)
	if !ok {
		return helpers.JSONError(c, "INVALID_STAFF_SESSION")
	}

	var customer models.Customer
	if err := database.DB.Where("customer_code = ? AND is_active = true", req.CustomerCode).First(&customer).Error; err != nil {
		return helpers.JSONError(c, "CUSTOMER_NOT_FOUND")
	}

	record := models.RollingRecord{
		CustomerCode:  customer.CustomerCode,
		TripCode:      req.TripCode,
		AgentCode:     customer.AgentCode,
		StaffCode:     staff.StaffCode,
		GameType:      req.GameType,
		RollingAmount: req.RollingAmount.Float64(),
		WinLoss:       req.WinLoss.Float64(),
		RecordedAt:    recordedAtOrNow(req.RecordedAt),
		RefID:         uuid.New().String(),
	}
	if err := database.DB.Create(&record).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_RECORD_ROLLING")
	}

	commission := record.RollingAmount * customer.EffectiveRollingPercentage() / 100

	return helpers.JSONSuccess(c, "Rolling recorded successfully", fiber.Map{
		"ref_id":         record.RefID,
		"customer_code":  record.CustomerCode,
		"trip_code":      record.TripCode,
		"rolling_amount": record.RollingAmount,
		"win_loss":       record.WinLoss,
		"commission":     helpers.FormatFloat(commission, 2),
		"recorded_at":    record.RecordedAt.Format("2006-01-02 15:04:05"),
	})
}

func recordedAtOrNow(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Now()
}
