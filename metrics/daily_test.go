package metrics

import (
	"testing"
	"time"

	"junket/models"
)

func TestDailyChartDataSparseBuckets(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 22, 30, 0, 0, time.UTC)

	s := Snapshot{
		RollingRecords: []models.RollingRecord{
			rolling("C1", "", 300, 50, day1),
			rolling("C1", "", 200, -20, day1),
		},
		BuyInOutRecords: []models.BuyInOutRecord{
			buyInOut("C1", models.TrxTypeBuyIn, 100, day2),
		},
	}

	rows := DailyChartData(s, ViewFilter{Now: testNow})

	if len(rows) != 2 {
		t.Fatalf("expected 2 sparse rows, got %d", len(rows))
	}
	if rows[0].Date != "2024-01-01" || rows[1].Date != "2024-01-02" {
		t.Fatalf("rows must be ascending by date, got [%s %s]", rows[0].Date, rows[1].Date)
	}

	first := rows[0]
	if first.Rolling != 500 || first.WinLoss != 30 {
		t.Fatalf("day one rolling/winLoss expected 500/30, got %v/%v", first.Rolling, first.WinLoss)
	}
	if first.RollingCount != 2 || first.TransactionCount != 0 {
		t.Fatalf("day one counts expected 2/0, got %d/%d", first.RollingCount, first.TransactionCount)
	}
	if first.Commission != 500*models.DefaultRollingPercentage/100 {
		t.Fatalf("day one commission expected flat-rate %v, got %v",
			500*models.DefaultRollingPercentage/100, first.Commission)
	}

	second := rows[1]
	if second.Rolling != 0 || second.BuyIn != 100 {
		t.Fatalf("day two rolling/buyIn expected 0/100, got %v/%v", second.Rolling, second.BuyIn)
	}
	if second.NetCashFlow != -100 {
		t.Fatalf("day two net cash flow expected -100, got %v", second.NetCashFlow)
	}
}

func TestDailyChartDataEmpty(t *testing.T) {
	rows := DailyChartData(Snapshot{}, ViewFilter{Now: testNow})
	if len(rows) != 0 {
		t.Fatalf("no activity must yield no rows, got %d", len(rows))
	}
}

func TestDailyChartDataKeepsRecordTimezone(t *testing.T) {
	// 01:00 Jan 2 in UTC+8 is still Jan 1 in UTC. The bucket must use the
	// record's own representation, so this lands on Jan 2.
	loc := time.FixedZone("UTC+8", 8*3600)
	s := Snapshot{
		RollingRecords: []models.RollingRecord{
			rolling("C1", "", 100, 0, time.Date(2024, 1, 2, 1, 0, 0, 0, loc)),
		},
	}

	rows := DailyChartData(s, ViewFilter{Now: testNow})

	if len(rows) != 1 || rows[0].Date != "2024-01-02" {
		t.Fatalf("bucket must use the record's own calendar day, got %+v", rows)
	}
}
