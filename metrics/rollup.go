package metrics

import (
	"sort"

	"junket/models"
)

const (
	// TopCustomersDashboard is the truncation used on the dashboard screen.
	TopCustomersDashboard = 5
	// TopCustomersReport is the truncation used on report screens.
	TopCustomersReport = 10
)

// CustomerRollup is one customer's aggregate activity.
type CustomerRollup struct {
	CustomerCode string  `json:"customer_code"`
	Name         string  `json:"name"`
	AgentCode    string  `json:"agent_code"`
	TotalRolling float64 `json:"total_rolling"`
	TotalWinLoss float64 `json:"total_win_loss"`
	TotalBuyIn   float64 `json:"total_buy_in"`
	TotalBuyOut  float64 `json:"total_buy_out"`
	RecordCount  int     `json:"record_count"`
}

// TopCustomers ranks customers by rolling volume, descending, truncated to
// n. The sort is stable so customers tied on volume keep their snapshot
// order.
func TopCustomers(s Snapshot, f ViewFilter, n int) []CustomerRollup {
	scoped := applyFilter(s, f)

	index := map[string]int{}
	rollups := make([]CustomerRollup, 0, len(scoped.Customers))
	for _, c := range scoped.Customers {
		index[c.CustomerCode] = len(rollups)
		rollups = append(rollups, CustomerRollup{
			CustomerCode: c.CustomerCode,
			Name:         c.Name,
			AgentCode:    c.AgentCode,
		})
	}

	for _, r := range scoped.RollingRecords {
		i, ok := index[r.CustomerCode]
		if !ok {
			continue
		}
		rollups[i].TotalRolling += safeNum(r.RollingAmount)
		rollups[i].TotalWinLoss += safeNum(r.WinLoss)
		rollups[i].RecordCount++
	}
	for _, b := range scoped.BuyInOutRecords {
		i, ok := index[b.CustomerCode]
		if !ok {
			continue
		}
		switch b.TransactionType {
		case models.TrxTypeBuyIn:
			rollups[i].TotalBuyIn += safeNum(b.Amount)
		case models.TrxTypeBuyOut:
			rollups[i].TotalBuyOut += safeNum(b.Amount)
		}
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].TotalRolling > rollups[j].TotalRolling
	})
	if n > 0 && len(rollups) > n {
		rollups = rollups[:n]
	}
	return rollups
}

// AgentRollup is the summary formulas scoped to one agent.
type AgentRollup struct {
	AgentCode        string  `json:"agent_code"`
	Name             string  `json:"name"`
	CustomerCount    int     `json:"customer_count"`
	TotalRolling     float64 `json:"total_rolling"`
	TotalWinLoss     float64 `json:"total_win_loss"`
	TotalCommission  float64 `json:"total_commission"`
	TotalExpenses    float64 `json:"total_expenses"`
	HouseNetWin      float64 `json:"house_net_win"`
	HouseFinalProfit float64 `json:"house_final_profit"`
	ProfitMargin     float64 `json:"profit_margin"`
}

// AgentPerformance computes the summary rollup per agent. Agents with no
// rolling volume and no customers are omitted.
func AgentPerformance(s Snapshot, f ViewFilter) []AgentRollup {
	scoped := applyFilter(s, f)

	out := make([]AgentRollup, 0, len(scoped.Agents))
	for _, a := range scoped.Agents {
		sum := Aggregate(scoped, ViewFilter{AgentCode: a.AgentCode, Now: f.now()})
		customers := 0
		for _, c := range scoped.Customers {
			if c.AgentCode == a.AgentCode {
				customers++
			}
		}
		if sum.CustomerTotalRolling == 0 && customers == 0 {
			continue
		}
		out = append(out, AgentRollup{
			AgentCode:        a.AgentCode,
			Name:             a.Name,
			CustomerCount:    customers,
			TotalRolling:     sum.CustomerTotalRolling,
			TotalWinLoss:     sum.CustomerTotalWinLoss,
			TotalCommission:  sum.TotalRollingCommission,
			TotalExpenses:    sum.TotalExpenses,
			HouseNetWin:      sum.HouseNetWin,
			HouseFinalProfit: sum.HouseFinalProfit,
			ProfitMargin:     sum.ProfitMargin,
		})
	}
	return out
}
