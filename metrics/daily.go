package metrics

import (
	"sort"

	"junket/models"
)

const dateLayout = "2006-01-02"

// DailyRow is one calendar day of activity for the dashboard charts.
type DailyRow struct {
	Date             string  `json:"date"`
	Rolling          float64 `json:"rolling"`
	WinLoss          float64 `json:"win_loss"`
	Commission       float64 `json:"commission"`
	BuyIn            float64 `json:"buy_in"`
	BuyOut           float64 `json:"buy_out"`
	NetCashFlow      float64 `json:"net_cash_flow"`
	RollingCount     int     `json:"rolling_count"`
	TransactionCount int     `json:"transaction_count"`
}

// DailyChartData buckets rolling and buy-in/out records by the calendar
// day of their timestamp, in the record's own timezone representation.
// Days with no activity are omitted; output is ascending by date. The
// per-day commission is derived at the flat default rate, matching the
// chart the screens render.
func DailyChartData(s Snapshot, f ViewFilter) []DailyRow {
	scoped := applyFilter(s, f)

	buckets := map[string]*DailyRow{}
	day := func(key string) *DailyRow {
		if row, ok := buckets[key]; ok {
			return row
		}
		row := &DailyRow{Date: key}
		buckets[key] = row
		return row
	}

	for _, r := range scoped.RollingRecords {
		row := day(r.RecordedAt.Format(dateLayout))
		row.Rolling += safeNum(r.RollingAmount)
		row.WinLoss += safeNum(r.WinLoss)
		row.RollingCount++
	}
	for _, b := range scoped.BuyInOutRecords {
		row := day(b.RecordedAt.Format(dateLayout))
		row.TransactionCount++
		switch b.TransactionType {
		case models.TrxTypeBuyIn:
			row.BuyIn += safeNum(b.Amount)
		case models.TrxTypeBuyOut:
			row.BuyOut += safeNum(b.Amount)
		}
	}

	rows := make([]DailyRow, 0, len(buckets))
	for _, row := range buckets {
		row.Commission = row.Rolling * models.DefaultRollingPercentage / 100
		row.NetCashFlow = row.BuyOut - row.BuyIn
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}
