package transactions

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"junket/database"
	"junket/helpers"
	"junket/models"
)

type RecordBuyInOutRequest struct {
	CustomerCode    string                `json:"customer_code"`
	TripCode        string                `json:"trip_code"`
	TransactionType string                `json:"transaction_type"`
	Amount          models.FlexibleNumber `json:"amount"`
	RecordedAt      string                `json:"recorded_at"`
}

// RecordBuyInOut stores one cash movement. Amounts are unsigned; the
// direction comes from the transaction type. cash-out is accepted as an
// alias of buy-out for the direct-client convention.
func RecordBuyInOut(c *fiber.Ctx) error {
	var req RecordBuyInOutRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.CustomerCode == "" {
		return helpers.JSONError(c, "CUSTOMER_CODE_REQUIRED")
	}

	trxType := req.TransactionType
	if trxType == "cash-out" {
		trxType = models.TrxTypeBuyOut
	}
	if trxType != models.TrxTypeBuyIn && trxType != models.TrxTypeBuyOut {
		return helpers.JSONError(c, "INVALID_TRANSACTION_TYPE")
	}
	if req.Amount.Float64() <= 0 {
		return helpers.JSONError(c, "AMOUNT_MUST_BE_POSITIVE")
	}

	staff, ok := c.Locals("staff").(models.Staff)
	if !ok {
		return helpers.JSONError(c, "INVALID_STAFF_SESSION")
	}

	var customer models.Customer
	if err := database.DB.Where("customer_code = ? AND is_active = true", req.CustomerCode).First(&customer).Error; err != nil {
		return helpers.JSONError(c, "CUSTOMER_NOT_FOUND")
	}

	record := models.BuyInOutRecord{
		CustomerCode:    customer.CustomerCode,
		TripCode:        req.TripCode,
		AgentCode:       customer.AgentCode,
		StaffCode:       staff.StaffCode,
		TransactionType: trxType,
		Amount:          req.Amount.Float64(),
		RecordedAt:      recordedAtOrNow(req.RecordedAt),
		RefID:           uuid.New().String(),
	}
	if err := database.DB.Create(&record).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_RECORD_TRANSACTION")
	}

	return helpers.JSONSuccess(c, "Transaction recorded successfully", fiber.Map{
		"ref_id":           record.RefID,
		"customer_code":    record.CustomerCode,
		"trip_code":        record.TripCode,
		"transaction_type": record.TransactionType,
		"amount":           record.Amount,
		"recorded_at":      record.RecordedAt.Format("2006-01-02 15:04:05"),
	})
}

// ListRecentRecords returns the staff member's records from the trailing
// 24 hours, newest first.
func ListRecentRecords(c *fiber.Ctx) error {
	staff, ok := c.Locals("staff").(models.Staff)
	if !ok {
		return helpers.JSONError(c, "INVALID_STAFF_SESSION")
	}

	since := time.Now().Add(-24 * time.Hour)

	var rollings []models.RollingRecord
	if err := database.DB.
		Where("staff_code = ? AND recorded_at >= ?", staff.StaffCode, since).
		Order("recorded_at desc").Find(&rollings).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_ROLLING_RECORDS")
	}

	var movements []models.BuyInOutRecord
	if err := database.DB.
		Where("staff_code = ? AND recorded_at >= ?", staff.StaffCode, since).
		Order("recorded_at desc").Find(&movements).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_TRANSACTIONS")
	}

	return helpers.JSONSuccess(c, "Recent records retrieved successfully", fiber.Map{
		"rolling_records":    rollings,
		"buy_in_out_records": movements,
	})
}
