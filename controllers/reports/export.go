package reports

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"junket/config"
	"junket/helpers"
	"junket/metrics"
	"junket/store"
)

// ExportExcel streams the report as an XLSX workbook with one sheet per
// report section.
func ExportExcel(c *fiber.Ctx) error {
	snap, err := store.Snapshot(c.Context())
	if err != nil {
		return helpers.JSONError(c, "SNAPSHOT_UNAVAILABLE")
	}
	filter := helpers.ViewFilterFromCtx(c)

	sum := metrics.Aggregate(snap, filter)
	daily := metrics.DailyChartData(snap, filter)
	top := metrics.TopCustomers(snap, filter, metrics.TopCustomersReport)
	perf := metrics.AgentPerformance(snap, filter)

	f := excelize.NewFile()
	defer f.Close()

	writeSummarySheet(f, sum)
	writeDailySheet(f, daily)
	writeTopCustomersSheet(f, top)
	writeAgentSheet(f, perf)
	f.DeleteSheet("Sheet1")

	filename := "junket-report-" + time.Now().Format("20060102") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)

	if err := f.Write(c.Response().BodyWriter()); err != nil {
		config.LogError(config.GetLogger(), "reports", "ExportExcel", "write workbook", nil, err)
		return helpers.JSONError(c, "FAILED_TO_WRITE_WORKBOOK")
	}
	return nil
}

func writeSummarySheet(f *excelize.File, sum metrics.Summary) {
	const sheet = "Summary"
	f.NewSheet(sheet)

	rows := []struct {
		label string
		value float64
	}{
		{"Total Rolling", sum.CustomerTotalRolling},
		{"Customer Win/Loss", sum.CustomerTotalWinLoss},
		{"Total Buy-In", sum.CustomerTotalBuyIn},
		{"Total Buy-Out", sum.CustomerTotalBuyOut},
		{"Net Cash Flow", sum.NetCashFlow},
		{"Rolling Commission", sum.TotalRollingCommission},
		{"Expenses", sum.TotalExpenses},
		{"House Gross Win", sum.HouseGrossWin},
		{"House Net Win", sum.HouseNetWin},
		{"House Final Profit", sum.HouseFinalProfit},
		{"Profit Margin %", sum.ProfitMargin},
		{"Commission Ratio %", sum.CommissionRatio},
		{"Expense Ratio %", sum.ExpenseRatio},
	}
	f.SetCellValue(sheet, "A1", "Metric")
	f.SetCellValue(sheet, "B1", "Value")
	for i, r := range rows {
		f.SetCellValue(sheet, "A"+fmt.Sprint(i+2), r.label)
		f.SetCellValue(sheet, "B"+fmt.Sprint(i+2), helpers.FormatFloat(r.value, 2))
	}
}

func writeDailySheet(f *excelize.File, daily []metrics.DailyRow) {
	const sheet = "Daily"
	f.NewSheet(sheet)

	headers := []string{"Date", "Rolling", "WinLoss", "Commission", "BuyIn", "BuyOut", "NetCashFlow", "Records", "Transactions"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
	}
	for i, d := range daily {
		row := fmt.Sprint(i + 2)
		f.SetCellValue(sheet, "A"+row, d.Date)
		f.SetCellValue(sheet, "B"+row, d.Rolling)
		f.SetCellValue(sheet, "C"+row, d.WinLoss)
		f.SetCellValue(sheet, "D"+row, helpers.FormatFloat(d.Commission, 2))
		f.SetCellValue(sheet, "E"+row, d.BuyIn)
		f.SetCellValue(sheet, "F"+row, d.BuyOut)
		f.SetCellValue(sheet, "G"+row, d.NetCashFlow)
		f.SetCellValue(sheet, "H"+row, d.RollingCount)
		f.SetCellValue(sheet, "I"+row, d.TransactionCount)
	}
}

func writeTopCustomersSheet(f *excelize.File, top []metrics.CustomerRollup) {
	const sheet = "Top Customers"
	f.NewSheet(sheet)

	headers := []string{"Customer", "Name", "Agent", "Rolling", "WinLoss", "BuyIn", "BuyOut", "Records"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
	}
	for i, t := range top {
		row := fmt.Sprint(i + 2)
		f.SetCellValue(sheet, "A"+row, t.CustomerCode)
		f.SetCellValue(sheet, "B"+row, t.Name)
		f.SetCellValue(sheet, "C"+row, t.AgentCode)
		f.SetCellValue(sheet, "D"+row, t.TotalRolling)
		f.SetCellValue(sheet, "E"+row, t.TotalWinLoss)
		f.SetCellValue(sheet, "F"+row, t.TotalBuyIn)
		f.SetCellValue(sheet, "G"+row, t.TotalBuyOut)
		f.SetCellValue(sheet, "H"+row, t.RecordCount)
	}
}

func writeAgentSheet(f *excelize.File, perf []metrics.AgentRollup) {
	const sheet = "Agents"
	f.NewSheet(sheet)

	headers := []string{"Agent", "Name", "Customers", "Rolling", "WinLoss", "Commission", "Expenses", "NetWin", "FinalProfit", "Margin %"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
	}
	for i, a := range perf {
		row := fmt.Sprint(i + 2)
		f.SetCellValue(sheet, "A"+row, a.AgentCode)
		f.SetCellValue(sheet, "B"+row, a.Name)
		f.SetCellValue(sheet, "C"+row, a.CustomerCount)
		f.SetCellValue(sheet, "D"+row, a.TotalRolling)
		f.SetCellValue(sheet, "E"+row, a.TotalWinLoss)
		f.SetCellValue(sheet, "F"+row, helpers.FormatFloat(a.TotalCommission, 2))
		f.SetCellValue(sheet, "G"+row, a.TotalExpenses)
		f.SetCellValue(sheet, "H"+row, a.HouseNetWin)
		f.SetCellValue(sheet, "I"+row, a.HouseFinalProfit)
		f.SetCellValue(sheet, "J"+row, helpers.FormatFloat(a.ProfitMargin, 2))
	}
}
