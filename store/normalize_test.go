package store

import (
	"testing"

	"junket/models"
)

func TestNormalizeRollingRecordNamingPreference(t *testing.T) {
	cases := []struct {
		name     string
		raw      map[string]any
		expected float64
	}{
		{
			name:     "snake only",
			raw:      map[string]any{"rolling_amount": 1000.0},
			expected: 1000,
		},
		{
			name:     "camel only",
			raw:      map[string]any{"rollingAmount": 2000.0},
			expected: 2000,
		},
		{
			name:     "snake wins over camel",
			raw:      map[string]any{"rolling_amount": 1000.0, "rollingAmount": 2000.0},
			expected: 1000,
		},
		{
			name:     "string amount",
			raw:      map[string]any{"rolling_amount": "1,500"},
			expected: 1500,
		},
		{
			name:     "malformed coerces to zero",
			raw:      map[string]any{"rolling_amount": "n/a"},
			expected: 0,
		},
		{
			name:     "missing coerces to zero",
			raw:      map[string]any{},
			expected: 0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := NormalizeRollingRecord(tc.raw)
			if rec.RollingAmount != tc.expected {
				t.Fatalf("rolling amount expected %v, got %v", tc.expected, rec.RollingAmount)
			}
		})
	}
}

func TestNormalizeBuyInOutCashOutAlias(t *testing.T) {
	rec := NormalizeBuyInOutRecord(map[string]any{
		"customer_code": "C1",
		"type":          "cash-out",
		"amount":        500.0,
	})
	if rec.TransactionType != models.TrxTypeBuyOut {
		t.Fatalf("cash-out must normalize to %s, got %s", models.TrxTypeBuyOut, rec.TransactionType)
	}
}

func TestNormalizeTripWithSharingAndExpenses(t *testing.T) {
	trip := NormalizeTrip(map[string]any{
		"trip_code":  "T1",
		"status":     "completed",
		"start_date": "2024-01-01",
		"expenses": []any{
			map[string]any{"description": "hotel", "amount": 1200.0},
			map[string]any{"description": "flight", "amount": "3,400"},
		},
		"customers": []any{"C1", "C2"},
		"sharing": map[string]any{
			"total_win_loss":  -5000.0,
			"totalWinLoss":    999.0, // camel duplicate must lose
			"company_share":   0.6,
			"total_expenses":  4600.0,
			"net_cash_flow":   "1,000",
			"totalCommission": 123.0,
		},
	})

	if trip.TripCode != "T1" || trip.Status != "completed" {
		t.Fatalf("unexpected trip header %+v", trip)
	}
	if len(trip.Expenses) != 2 || trip.Expenses[1].Amount != 3400 {
		t.Fatalf("expenses not normalized: %+v", trip.Expenses)
	}
	if len(trip.Participants) != 2 || trip.Participants[0].CustomerCode != "C1" {
		t.Fatalf("participants not normalized: %+v", trip.Participants)
	}
	if trip.Sharing == nil {
		t.Fatal("sharing breakdown missing")
	}
	if trip.Sharing.TotalWinLoss != -5000 {
		t.Fatalf("snake_case sharing value must win, got %v", trip.Sharing.TotalWinLoss)
	}
	if trip.Sharing.NetCashFlow != 1000 {
		t.Fatalf("string sharing value expected 1000, got %v", trip.Sharing.NetCashFlow)
	}
}

func TestNormalizeCustomerIDFallbacks(t *testing.T) {
	c := NormalizeCustomer(map[string]any{
		"id":                "C9",
		"agentId":           "A3",
		"rollingPercentage": 2.0,
		"is_active":         true,
	})
	if c.CustomerCode != "C9" {
		t.Fatalf("id fallback expected C9, got %s", c.CustomerCode)
	}
	if c.AgentCode != "A3" {
		t.Fatalf("agentId fallback expected A3, got %s", c.AgentCode)
	}
	if c.RollingPercentage != 2.0 || !c.IsActive {
		t.Fatalf("unexpected customer %+v", c)
	}
}
