package metrics

import (
	"testing"

	"junket/models"
)

func TestTopCustomersStableTies(t *testing.T) {
	s := Snapshot{
		Customers: []models.Customer{
			{CustomerCode: "A", Name: "Alpha"},
			{CustomerCode: "B", Name: "Bravo"},
			{CustomerCode: "C", Name: "Charlie"},
		},
		RollingRecords: []models.RollingRecord{
			rolling("C", "", 50, 0, testNow),
			rolling("A", "", 100, 0, testNow),
			rolling("B", "", 100, 0, testNow),
		},
	}

	top := TopCustomers(s, ViewFilter{Now: testNow}, 2)

	if len(top) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(top))
	}
	if top[0].CustomerCode != "A" || top[1].CustomerCode != "B" {
		t.Fatalf("tie on 100 must keep snapshot order [A B], got [%s %s]",
			top[0].CustomerCode, top[1].CustomerCode)
	}
}

func TestTopCustomersRollupFields(t *testing.T) {
	s := Snapshot{
		Customers: []models.Customer{{CustomerCode: "A", Name: "Alpha"}},
		RollingRecords: []models.RollingRecord{
			rolling("A", "", 700, -70, testNow),
			rolling("A", "", 300, 30, testNow),
		},
		BuyInOutRecords: []models.BuyInOutRecord{
			buyInOut("A", models.TrxTypeBuyIn, 500, testNow),
			buyInOut("A", models.TrxTypeBuyOut, 200, testNow),
		},
	}

	top := TopCustomers(s, ViewFilter{Now: testNow}, TopCustomersDashboard)

	if len(top) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(top))
	}
	got := top[0]
	if got.TotalRolling != 1000 || got.TotalWinLoss != -40 {
		t.Fatalf("rolling/winLoss expected 1000/-40, got %v/%v", got.TotalRolling, got.TotalWinLoss)
	}
	if got.TotalBuyIn != 500 || got.TotalBuyOut != 200 {
		t.Fatalf("buyIn/buyOut expected 500/200, got %v/%v", got.TotalBuyIn, got.TotalBuyOut)
	}
	if got.RecordCount != 2 {
		t.Fatalf("record count expected 2, got %d", got.RecordCount)
	}
}

func TestAgentPerformanceExcludesIdleAgents(t *testing.T) {
	s := Snapshot{
		Agents: []models.Agent{
			{AgentCode: "AG1", Name: "One"},
			{AgentCode: "AG2", Name: "Two"}, // no customers, no volume
		},
		Customers: []models.Customer{
			{CustomerCode: "C1", AgentCode: "AG1", RollingPercentage: 1.4},
		},
		RollingRecords: []models.RollingRecord{
			{CustomerCode: "C1", AgentCode: "AG1", RollingAmount: 10000, WinLoss: -500, RecordedAt: testNow},
		},
	}

	perf := AgentPerformance(s, ViewFilter{Now: testNow})

	if len(perf) != 1 {
		t.Fatalf("idle agent must be excluded, expected 1 row, got %d", len(perf))
	}
	row := perf[0]
	if row.AgentCode != "AG1" || row.CustomerCount != 1 {
		t.Fatalf("unexpected row %+v", row)
	}
	if row.TotalRolling != 10000 {
		t.Fatalf("agent rolling expected 10000, got %v", row.TotalRolling)
	}
	if row.TotalCommission != 140 {
		t.Fatalf("agent commission expected 140, got %v", row.TotalCommission)
	}
	if row.HouseNetWin != 360 {
		t.Fatalf("agent house net win expected 360, got %v", row.HouseNetWin)
	}
}

func TestAgentPerformanceKeepsAgentWithCustomersOnly(t *testing.T) {
	s := Snapshot{
		Agents:    []models.Agent{{AgentCode: "AG1"}},
		Customers: []models.Customer{{CustomerCode: "C1", AgentCode: "AG1"}},
	}

	perf := AgentPerformance(s, ViewFilter{Now: testNow})

	if len(perf) != 1 {
		t.Fatalf("agent with customers but no volume must be kept, got %d rows", len(perf))
	}
	if perf[0].TotalRolling != 0 {
		t.Fatalf("expected zero rolling, got %v", perf[0].TotalRolling)
	}
}
