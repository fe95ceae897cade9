package metrics

import (
	"math"
	"testing"
	"time"

	"junket/models"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func rolling(customer, trip string, amount, winLoss float64, at time.Time) models.RollingRecord {
	return models.RollingRecord{
		CustomerCode:  customer,
		TripCode:      trip,
		RollingAmount: amount,
		WinLoss:       winLoss,
		RecordedAt:    at,
	}
}

func buyInOut(customer, trxType string, amount float64, at time.Time) models.BuyInOutRecord {
	return models.BuyInOutRecord{
		CustomerCode:    customer,
		TransactionType: trxType,
		Amount:          amount,
		RecordedAt:      at,
	}
}

func TestAggregateEmptySnapshot(t *testing.T) {
	sum := Aggregate(Snapshot{}, ViewFilter{Now: testNow})

	if sum != (Summary{}) {
		t.Fatalf("empty snapshot should yield the zero summary, got %+v", sum)
	}
}

func TestAggregateTotals(t *testing.T) {
	s := Snapshot{
		Customers: []models.Customer{
			{CustomerCode: "C1", RollingPercentage: 2.0, IsActive: true},
		},
		RollingRecords: []models.RollingRecord{
			rolling("C1", "", 100000, -20000, testNow.Add(-2*time.Hour)),
			rolling("C1", "", 50000, 5000, testNow.Add(-3*time.Hour)),
		},
		BuyInOutRecords: []models.BuyInOutRecord{
			buyInOut("C1", models.TrxTypeBuyIn, 80000, testNow.Add(-4*time.Hour)),
			buyInOut("C1", models.TrxTypeBuyOut, 30000, testNow.Add(-1*time.Hour)),
		},
	}

	sum := Aggregate(s, ViewFilter{Now: testNow})

	if sum.CustomerTotalRolling != 150000 {
		t.Fatalf("total rolling expected 150000, got %v", sum.CustomerTotalRolling)
	}
	if sum.CustomerTotalWinLoss != -15000 {
		t.Fatalf("total win/loss expected -15000, got %v", sum.CustomerTotalWinLoss)
	}
	if sum.CustomerTotalBuyIn != 80000 || sum.CustomerTotalBuyOut != 30000 {
		t.Fatalf("buy-in/out expected 80000/30000, got %v/%v", sum.CustomerTotalBuyIn, sum.CustomerTotalBuyOut)
	}
	if sum.NetCashFlow != -50000 {
		t.Fatalf("net cash flow expected -50000, got %v", sum.NetCashFlow)
	}
	// 150000 at the customer's 2% rate.
	if sum.TotalRollingCommission != 3000 {
		t.Fatalf("commission expected 3000, got %v", sum.TotalRollingCommission)
	}
	if sum.HouseGrossWin != 15000 {
		t.Fatalf("house gross win expected 15000, got %v", sum.HouseGrossWin)
	}
	if sum.HouseNetWin != 12000 {
		t.Fatalf("house net win expected 12000, got %v", sum.HouseNetWin)
	}
	if sum.HouseFinalProfit != 12000 {
		t.Fatalf("house final profit expected 12000, got %v", sum.HouseFinalProfit)
	}
	if got, want := sum.ProfitMargin, 12000.0/150000*100; math.Abs(got-want) > 1e-9 {
		t.Fatalf("profit margin expected %v, got %v", want, got)
	}
}

func TestAggregateSignConvention(t *testing.T) {
	s := Snapshot{
		RollingRecords: []models.RollingRecord{
			rolling("C1", "", 0, 500, testNow),
		},
	}

	sum := Aggregate(s, ViewFilter{Now: testNow})

	if sum.HouseGrossWin != -500 {
		t.Fatalf("customer win of 500 must give house gross win -500, got %v", sum.HouseGrossWin)
	}
}

func TestAggregateZeroSafety(t *testing.T) {
	s := Snapshot{
		Customers: []models.Customer{{CustomerCode: "C1"}},
		RollingRecords: []models.RollingRecord{
			rolling("C1", "", math.NaN(), math.Inf(1), testNow),
			rolling("C1", "", 1000, -100, testNow),
		},
		BuyInOutRecords: []models.BuyInOutRecord{
			buyInOut("C1", models.TrxTypeBuyIn, math.NaN(), testNow),
		},
		Trips: []models.Trip{
			{TripCode: "T1", Expenses: []models.TripExpense{{Amount: math.Inf(-1)}}},
		},
	}

	sum := Aggregate(s, ViewFilter{Now: testNow})

	for name, v := range map[string]float64{
		"rolling":     sum.CustomerTotalRolling,
		"winLoss":     sum.CustomerTotalWinLoss,
		"buyIn":       sum.CustomerTotalBuyIn,
		"commission":  sum.TotalRollingCommission,
		"expenses":    sum.TotalExpenses,
		"margin":      sum.ProfitMargin,
		"finalProfit": sum.HouseFinalProfit,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("field %s leaked a non-finite value: %v", name, v)
		}
	}
	if sum.CustomerTotalRolling != 1000 {
		t.Fatalf("NaN rolling amount must coerce to zero, total expected 1000, got %v", sum.CustomerTotalRolling)
	}
}

func TestAggregateRatioGuard(t *testing.T) {
	s := Snapshot{
		Trips: []models.Trip{
			{TripCode: "T1", Expenses: []models.TripExpense{{Amount: 5000}}},
		},
	}

	sum := Aggregate(s, ViewFilter{Now: testNow})

	if sum.CustomerTotalRolling != 0 {
		t.Fatalf("expected zero rolling, got %v", sum.CustomerTotalRolling)
	}
	if sum.ProfitMargin != 0 || sum.CommissionRatio != 0 || sum.ExpenseRatio != 0 {
		t.Fatalf("ratios over zero rolling must all be 0, got %v/%v/%v",
			sum.ProfitMargin, sum.CommissionRatio, sum.ExpenseRatio)
	}
}

func TestAggregateCommissionDefaultRate(t *testing.T) {
	s := Snapshot{
		Customers: []models.Customer{{CustomerCode: "C1"}}, // no rate set
		RollingRecords: []models.RollingRecord{
			rolling("C1", "", 100000, 0, testNow),
		},
	}

	sum := Aggregate(s, ViewFilter{Now: testNow})

	if sum.TotalRollingCommission != 1400 {
		t.Fatalf("default 1.4%% rate expected commission 1400, got %v", sum.TotalRollingCommission)
	}
}

func TestAggregateSharingPrecedence(t *testing.T) {
	// T1 carries an authoritative sharing breakdown; its records must not
	// also contribute recomputed win/loss or commission. T2 has none and
	// falls back to recomputation.
	s := Snapshot{
		Customers: []models.Customer{{CustomerCode: "C1", RollingPercentage: 1.0}},
		Trips: []models.Trip{
			{
				TripCode: "T1",
				Expenses: []models.TripExpense{{TripCode: "T1", Amount: 999}},
				Sharing: &models.TripSharing{
					TripCode:               "T1",
					TotalWinLoss:           -8000,
					TotalExpenses:          2000,
					TotalRollingCommission: 1500,
				},
			},
			{
				TripCode: "T2",
				Expenses: []models.TripExpense{{TripCode: "T2", Amount: 300}},
			},
		},
		RollingRecords: []models.RollingRecord{
			rolling("C1", "T1", 100000, -5000, testNow),
			rolling("C1", "T2", 20000, 1000, testNow),
		},
	}

	sum := Aggregate(s, ViewFilter{Now: testNow})

	// Win/loss: sharing -8000 for T1, recomputed 1000 for T2.
	if sum.CustomerTotalWinLoss != -7000 {
		t.Fatalf("win/loss expected -7000 (authoritative + recomputed), got %v", sum.CustomerTotalWinLoss)
	}
	// Commission: sharing 1500 for T1, 20000 * 1% = 200 for T2.
	if sum.TotalRollingCommission != 1700 {
		t.Fatalf("commission expected 1700, got %v", sum.TotalRollingCommission)
	}
	// Expenses: sharing 2000 for T1 (the 999 line is superseded), 300 for T2.
	if sum.TotalExpenses != 2300 {
		t.Fatalf("expenses expected 2300, got %v", sum.TotalExpenses)
	}
	// Rolling volume is always taken from the records themselves.
	if sum.CustomerTotalRolling != 120000 {
		t.Fatalf("rolling expected 120000, got %v", sum.CustomerTotalRolling)
	}
}

func TestAggregateRecentCounters(t *testing.T) {
	s := Snapshot{
		RollingRecords: []models.RollingRecord{
			rolling("C1", "", 100, 0, testNow.Add(-23*time.Hour)),
			rolling("C1", "", 100, 0, testNow.Add(-25*time.Hour)),
		},
		BuyInOutRecords: []models.BuyInOutRecord{
			buyInOut("C1", models.TrxTypeBuyIn, 100, testNow.Add(-30*time.Minute)),
			buyInOut("C1", models.TrxTypeBuyOut, 100, testNow.Add(-2*24*time.Hour)),
		},
	}

	sum := Aggregate(s, ViewFilter{Now: testNow})

	if sum.RecentRollingCount != 1 {
		t.Fatalf("recent rolling count expected 1 (trailing 24h), got %d", sum.RecentRollingCount)
	}
	if sum.RecentTransactionCount != 1 {
		t.Fatalf("recent transaction count expected 1, got %d", sum.RecentTransactionCount)
	}
	if sum.RollingRecordCount != 2 || sum.TransactionCount != 2 {
		t.Fatalf("overall counts expected 2/2, got %d/%d", sum.RollingRecordCount, sum.TransactionCount)
	}
}
