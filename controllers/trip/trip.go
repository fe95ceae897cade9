package trip

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"junket/database"
	"junket/helpers"
	"junket/models"
)

var validStatuses = map[string]bool{
	models.TripStatusPlanned:   true,
	models.TripStatusOngoing:   true,
	models.TripStatusActive:    true,
	models.TripStatusCompleted: true,
}

type CreateTripRequest struct {
	Name      string   `json:"name"`
	AgentCode string   `json:"agent_code"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Customers []string `json:"customers"`
}

func CreateTrip(c *fiber.Ctx) error {
	var req CreateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.Name == "" {
		return helpers.JSONError(c, "NAME_REQUIRED")
	}

	agentCode := req.AgentCode
	if agent, ok := c.Locals("agent").(models.Agent); ok {
		agentCode = agent.AgentCode
	}
	if agentCode == "" {
		return helpers.JSONError(c, "AGENT_CODE_REQUIRED")
	}

	trip := models.Trip{
		TripCode:  helpers.GenerateTripCode(),
		Name:      req.Name,
		AgentCode: agentCode,
		Status:    models.TripStatusPlanned,
		StartDate: parseDate(req.StartDate),
		EndDate:   parseDate(req.EndDate),
	}
	for _, code := range req.Customers {
		trip.Participants = append(trip.Participants, models.TripParticipant{
			TripCode:     trip.TripCode,
			CustomerCode: code,
		})
	}

	if err := database.DB.Create(&trip).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_TRIP")
	}

	return helpers.JSONSuccess(c, "Trip created successfully", fiber.Map{
		"trip_code":  trip.TripCode,
		"name":       trip.Name,
		"agent_code": trip.AgentCode,
		"status":     trip.Status,
	})
}

type UpdateTripStatusRequest struct {
	TripCode string `json:"trip_code"`
	Status   string `json:"status"`
}

func UpdateTripStatus(c *fiber.Ctx) error {
	var req UpdateTripStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.TripCode == "" || !validStatuses[req.Status] {
		return helpers.JSONError(c, "TRIP_CODE_AND_VALID_STATUS_REQUIRED")
	}

	trip, err := findTrip(c, req.TripCode)
	if err != nil {
		return helpers.JSONError(c, "TRIP_NOT_FOUND")
	}

	trip.Status = req.Status
	if err := database.DB.Save(trip).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_TRIP")
	}

	return helpers.JSONSuccess(c, "Trip status updated", fiber.Map{
		"trip_code": trip.TripCode,
		"status":    trip.Status,
	})
}

type AddExpenseRequest struct {
	TripCode    string                `json:"trip_code"`
	Description string                `json:"description"`
	Amount      models.FlexibleNumber `json:"amount"`
}

func AddExpense(c *fiber.Ctx) error {
	var req AddExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.TripCode == "" || req.Amount.Float64() <= 0 {
		return helpers.JSONError(c, "TRIP_CODE_AND_VALID_AMOUNT_REQUIRED")
	}

	trip, err := findTrip(c, req.TripCode)
	if err != nil {
		return helpers.JSONError(c, "TRIP_NOT_FOUND")
	}

	expense := models.TripExpense{
		TripCode:    trip.TripCode,
		Description: req.Description,
		Amount:      req.Amount.Float64(),
	}
	if err := database.DB.Create(&expense).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_ADD_EXPENSE")
	}

	return helpers.JSONSuccess(c, "Expense added", fiber.Map{
		"trip_code":   expense.TripCode,
		"description": expense.Description,
		"amount":      expense.Amount,
	})
}

// SetSharingRequest carries the authoritative settlement breakdown for a
// completed trip; once stored it supersedes recomputed figures.
type SetSharingRequest struct {
	TripCode               string                `json:"trip_code"`
	TotalWinLoss           models.FlexibleNumber `json:"total_win_loss"`
	TotalExpenses          models.FlexibleNumber `json:"total_expenses"`
	TotalRollingCommission models.FlexibleNumber `json:"total_rolling_commission"`
	NetCashFlow            models.FlexibleNumber `json:"net_cash_flow"`
	CompanyShare           models.FlexibleNumber `json:"company_share"`
	AgentShare             models.FlexibleNumber `json:"agent_share"`
}

func SetSharing(c *fiber.Ctx) error {
	var req SetSharingRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.TripCode == "" {
		return helpers.JSONError(c, "TRIP_CODE_REQUIRED")
	}

	trip, err := findTrip(c, req.TripCode)
	if err != nil {
		return helpers.JSONError(c, "TRIP_NOT_FOUND")
	}

	sharing := models.TripSharing{
		TripCode:               trip.TripCode,
		TotalWinLoss:           req.TotalWinLoss.Float64(),
		TotalExpenses:          req.TotalExpenses.Float64(),
		TotalRollingCommission: req.TotalRollingCommission.Float64(),
		NetCashFlow:            req.NetCashFlow.Float64(),
		CompanyShare:           req.CompanyShare.Float64(),
		AgentShare:             req.AgentShare.Float64(),
	}

	var existing models.TripSharing
	if err := database.DB.Where("trip_code = ?", trip.TripCode).First(&existing).Error; err == nil {
		sharing.ID = existing.ID
	}
	if err := database.DB.Save(&sharing).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_SET_SHARING")
	}

	return helpers.JSONSuccess(c, "Trip sharing recorded", fiber.Map{
		"trip_code":     sharing.TripCode,
		"company_share": sharing.CompanyShare,
		"agent_share":   sharing.AgentShare,
	})
}

func ListTrips(c *fiber.Ctx) error {
	query := database.DB.
		Preload("Participants").
		Preload("Expenses").
		Preload("Sharing").
		Order("created_at desc")
	if agent, ok := c.Locals("agent").(models.Agent); ok {
		query = query.Where("agent_code = ?", agent.AgentCode)
	} else if ac := c.Query("agent"); ac != "" {
		query = query.Where("agent_code = ?", ac)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var trips []models.Trip
	if err := query.Find(&trips).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_TRIPS")
	}
	return helpers.JSONSuccess(c, "Trips retrieved successfully", trips)
}

// findTrip loads a trip by code, scoped to the calling agent when the
// request came through agent auth.
func findTrip(c *fiber.Ctx, tripCode string) (*models.Trip, error) {
	query := database.DB.Where("trip_code = ?", tripCode)
	if agent, ok := c.Locals("agent").(models.Agent); ok {
		query = query.Where("agent_code = ?", agent.AgentCode)
	}
	var trip models.Trip
	if err := query.First(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func parseDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}
