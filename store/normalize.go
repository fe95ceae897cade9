package store

import (
	"strings"
	"time"

	"junket/models"
)

// The hosted backend is reached through two paths with different naming
// conventions: the REST API emits snake_case, the direct client camelCase.
// Normalization happens here, once, so the aggregator only ever sees
// canonical structs. For every field the snake_case spelling is listed
// first and wins when both appear on the same record.

func NormalizeAgent(raw map[string]any) models.Agent {
	return models.Agent{
		AgentCode:      strField(raw, "agent_code", "agentCode", "id"),
		Name:           strField(raw, "name"),
		CommissionRate: numField(raw, "commission_rate", "commissionRate"),
		IsActive:       boolField(raw, "is_active", "isActive"),
	}
}

func NormalizeCustomer(raw map[string]any) models.Customer {
	return models.Customer{
		CustomerCode:      strField(raw, "customer_code", "customerCode", "id"),
		Name:              strField(raw, "name"),
		AgentCode:         strField(raw, "agent_code", "agentCode", "agent_id", "agentId"),
		RollingPercentage: numField(raw, "rolling_percentage", "rollingPercentage"),
		CreditLimit:       numField(raw, "credit_limit", "creditLimit"),
		CreditUsed:        numField(raw, "credit_used", "creditUsed"),
		IsActive:          boolField(raw, "is_active", "isActive"),
	}
}

func NormalizeTrip(raw map[string]any) models.Trip {
	trip := models.Trip{
		TripCode:  strField(raw, "trip_code", "tripCode", "id"),
		Name:      strField(raw, "name"),
		AgentCode: strField(raw, "agent_code", "agentCode", "agent_id", "agentId"),
		Status:    strField(raw, "status"),
		StartDate: timeField(raw, "start_date", "startDate"),
		EndDate:   timeField(raw, "end_date", "endDate"),
	}

	if list, ok := raw["expenses"].([]any); ok {
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				trip.Expenses = append(trip.Expenses, models.TripExpense{
					TripCode:    trip.TripCode,
					Description: strField(m, "description"),
					Amount:      numField(m, "amount"),
				})
			}
		}
	}
	if list, ok := raw["customers"].([]any); ok {
		for _, item := range list {
			if code, ok := item.(string); ok {
				trip.Participants = append(trip.Participants, models.TripParticipant{
					TripCode:     trip.TripCode,
					CustomerCode: code,
				})
			}
		}
	}
	if m, ok := raw["sharing"].(map[string]any); ok {
		trip.Sharing = &models.TripSharing{
			TripCode:               trip.TripCode,
			TotalWinLoss:           numField(m, "total_win_loss", "totalWinLoss"),
			TotalExpenses:          numField(m, "total_expenses", "totalExpenses"),
			TotalRollingCommission: numField(m, "total_rolling_commission", "totalRollingCommission"),
			NetCashFlow:            numField(m, "net_cash_flow", "netCashFlow"),
			CompanyShare:           numField(m, "company_share", "companyShare"),
			AgentShare:             numField(m, "agent_share", "agentShare"),
		}
	}
	return trip
}

func NormalizeRollingRecord(raw map[string]any) models.RollingRecord {
	return models.RollingRecord{
		CustomerCode:  strField(raw, "customer_code", "customerCode", "customer_id", "customerId"),
		TripCode:      strField(raw, "trip_code", "tripCode", "trip_id", "tripId"),
		AgentCode:     strField(raw, "agent_code", "agentCode", "agent_id", "agentId"),
		StaffCode:     strField(raw, "staff_code", "staffCode", "staff_id", "staffId"),
		GameType:      strField(raw, "game_type", "gameType"),
		RollingAmount: numField(raw, "rolling_amount", "rollingAmount"),
		WinLoss:       numField(raw, "win_loss", "winLoss"),
		RecordedAt:    timeField(raw, "recorded_at", "recordedAt", "created_at", "createdAt"),
		RefID:         strField(raw, "ref_id", "refId"),
	}
}

func NormalizeBuyInOutRecord(raw map[string]any) models.BuyInOutRecord {
	trxType := strField(raw, "transaction_type", "transactionType", "type")
	// The direct client spells buy-out as cash-out.
	if trxType == "cash-out" {
		trxType = models.TrxTypeBuyOut
	}
	return models.BuyInOutRecord{
		CustomerCode:    strField(raw, "customer_code", "customerCode", "customer_id", "customerId"),
		TripCode:        strField(raw, "trip_code", "tripCode", "trip_id", "tripId"),
		AgentCode:       strField(raw, "agent_code", "agentCode", "agent_id", "agentId"),
		StaffCode:       strField(raw, "staff_code", "staffCode", "staff_id", "staffId"),
		TransactionType: trxType,
		Amount:          numField(raw, "amount"),
		RecordedAt:      timeField(raw, "recorded_at", "recordedAt", "created_at", "createdAt"),
		RefID:           strField(raw, "ref_id", "refId"),
	}
}

// numField returns the first present key coerced to a float64. Numbers may
// arrive as JSON numbers or formatted strings; malformed values become 0.
func numField(raw map[string]any, keys ...string) float64 {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return models.FlexibleNumber(n).Float64()
		case int:
			return float64(n)
		case int64:
			return float64(n)
		case string:
			d, err := models.ParseAmount(n)
			if err != nil {
				return 0
			}
			return d.InexactFloat64()
		default:
			return 0
		}
	}
	return 0
}

func strField(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

func boolField(raw map[string]any, keys ...string) bool {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return false
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func timeField(raw map[string]any, keys ...string) time.Time {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		for _, layout := range timeLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts
			}
		}
	}
	return time.Time{}
}
