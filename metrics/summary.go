package metrics

import (
	"math"
	"time"

	"junket/models"
)

// recentWindow is the sliding window for "recent activity" counters.
const recentWindow = 24 * time.Hour

// Summary is the flat metrics record consumed by the dashboard and report
// screens. Win/loss is customer-signed; house figures are its negation.
type Summary struct {
	CustomerTotalRolling float64 `json:"customer_total_rolling"`
	CustomerTotalWinLoss float64 `json:"customer_total_win_loss"`
	CustomerTotalBuyIn   float64 `json:"customer_total_buy_in"`
	CustomerTotalBuyOut  float64 `json:"customer_total_buy_out"`
	NetCashFlow          float64 `json:"net_cash_flow"`

	TotalRollingCommission float64 `json:"total_rolling_commission"`
	TotalExpenses          float64 `json:"total_expenses"`

	HouseGrossWin    float64 `json:"house_gross_win"`
	HouseNetWin      float64 `json:"house_net_win"`
	HouseFinalProfit float64 `json:"house_final_profit"`

	ProfitMargin    float64 `json:"profit_margin"`
	CommissionRatio float64 `json:"commission_ratio"`
	ExpenseRatio    float64 `json:"expense_ratio"`

	ActiveCustomers int `json:"active_customers"`
	ActiveTrips     int `json:"active_trips"`

	RollingRecordCount     int `json:"rolling_record_count"`
	TransactionCount       int `json:"transaction_count"`
	RecentRollingCount     int `json:"recent_rolling_count"`
	RecentTransactionCount int `json:"recent_transaction_count"`
}

// Aggregate reduces a snapshot to a Summary under the given filter. It
// never fails: empty input yields the zero summary, malformed numerics are
// coerced to zero, and ratios over a zero base are defined as zero.
func Aggregate(s Snapshot, f ViewFilter) Summary {
	scoped := applyFilter(s, f)
	now := f.now()

	var sum Summary
	rates := rateByCustomer(scoped.Customers)
	sharing := sharingByTrip(scoped.Trips)

	for _, r := range scoped.RollingRecords {
		sum.CustomerTotalRolling += safeNum(r.RollingAmount)
		sum.RollingRecordCount++
		if now.Sub(r.RecordedAt) <= recentWindow && !r.RecordedAt.After(now) {
			sum.RecentRollingCount++
		}
		if _, ok := sharing[r.TripCode]; ok {
			// Win/loss and commission for this trip come from its
			// authoritative sharing breakdown below.
			continue
		}
		sum.CustomerTotalWinLoss += safeNum(r.WinLoss)
		sum.TotalRollingCommission += safeNum(r.RollingAmount) * rates.effective(r.CustomerCode) / 100
	}

	for _, b := range scoped.BuyInOutRecords {
		sum.TransactionCount++
		if now.Sub(b.RecordedAt) <= recentWindow && !b.RecordedAt.After(now) {
			sum.RecentTransactionCount++
		}
		switch b.TransactionType {
		case models.TrxTypeBuyIn:
			sum.CustomerTotalBuyIn += safeNum(b.Amount)
		case models.TrxTypeBuyOut:
			sum.CustomerTotalBuyOut += safeNum(b.Amount)
		}
	}

	for _, t := range scoped.Trips {
		if t.Status == models.TripStatusOngoing || t.Status == models.TripStatusActive {
			sum.ActiveTrips++
		}
		if t.Sharing != nil {
			sum.CustomerTotalWinLoss += safeNum(t.Sharing.TotalWinLoss)
			sum.TotalRollingCommission += safeNum(t.Sharing.TotalRollingCommission)
			sum.TotalExpenses += safeNum(t.Sharing.TotalExpenses)
			continue
		}
		for _, e := range t.Expenses {
			sum.TotalExpenses += safeNum(e.Amount)
		}
	}

	for _, c := range scoped.Customers {
		if c.IsActive {
			sum.ActiveCustomers++
		}
	}

	sum.NetCashFlow = sum.CustomerTotalBuyOut - sum.CustomerTotalBuyIn
	sum.HouseGrossWin = -sum.CustomerTotalWinLoss
	sum.HouseNetWin = sum.HouseGrossWin - sum.TotalRollingCommission
	sum.HouseFinalProfit = sum.HouseNetWin - sum.TotalExpenses
	sum.ProfitMargin = ratio(sum.HouseFinalProfit, sum.CustomerTotalRolling)
	sum.CommissionRatio = ratio(sum.TotalRollingCommission, sum.CustomerTotalRolling)
	sum.ExpenseRatio = ratio(sum.TotalExpenses, sum.CustomerTotalRolling)
	return sum
}

type customerRates map[string]float64

func rateByCustomer(customers []models.Customer) customerRates {
	rates := customerRates{}
	for i := range customers {
		rates[customers[i].CustomerCode] = customers[i].EffectiveRollingPercentage()
	}
	return rates
}

// effective resolves a commission rate for a customer code, falling back
// to the house default for records whose customer is outside the snapshot.
func (r customerRates) effective(customerCode string) float64 {
	if rate, ok := r[customerCode]; ok {
		return rate
	}
	return models.DefaultRollingPercentage
}

func sharingByTrip(trips []models.Trip) map[string]*models.TripSharing {
	out := map[string]*models.TripSharing{}
	for i := range trips {
		if trips[i].Sharing != nil {
			out[trips[i].TripCode] = trips[i].Sharing
		}
	}
	return out
}

func ratio(part, base float64) float64 {
	if base == 0 {
		return 0
	}
	return safeNum(part / base * 100)
}

func safeNum(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
