package routes

import (
	"github.com/gofiber/fiber/v2"

	"junket/controllers/agent"
	"junket/controllers/customer"
	"junket/controllers/dashboard"
	"junket/controllers/reports"
	"junket/controllers/staff"
	"junket/controllers/transactions"
	"junket/controllers/trip"
	"junket/middlewares"
)

func Setup(app *fiber.App) {
	// Administrative operations
	admin := app.Group("/admin", middlewares.AdminAuth())
	admin.Post("/agents/register", agent.RegisterAgent)
	admin.Get("/agents", agent.ListAgents)
	admin.Post("/staff/register", staff.RegisterStaff)
	admin.Post("/customers", customer.CreateCustomer)
	admin.Put("/customers", customer.UpdateCustomer)
	admin.Get("/customers", customer.ListCustomers)
	admin.Post("/trips", trip.CreateTrip)
	admin.Put("/trips/status", trip.UpdateTripStatus)
	admin.Post("/trips/expenses", trip.AddExpense)
	admin.Post("/trips/sharing", trip.SetSharing)
	admin.Get("/trips", trip.ListTrips)

	admin.Get("/dashboard/summary", dashboard.Summary)
	admin.Get("/dashboard/daily", dashboard.DailyChart)
	admin.Get("/dashboard/top-customers", dashboard.TopCustomers)
	admin.Get("/dashboard/agents", dashboard.AgentPerformance)
	admin.Get("/dashboard/status", dashboard.Status)
	admin.Post("/dashboard/refresh", dashboard.Refresh)
	admin.Get("/reports", reports.Generate)
	admin.Get("/reports/export", reports.ExportExcel)

	// Agent-scoped screens
	agentroutes := app.Group("/agent", middlewares.AgentAuth)
	agentroutes.Get("/info", agent.AgentInfo)
	agentroutes.Post("/customers", customer.CreateCustomer)
	agentroutes.Put("/customers", customer.UpdateCustomer)
	agentroutes.Get("/customers", customer.ListCustomers)
	agentroutes.Post("/trips", trip.CreateTrip)
	agentroutes.Put("/trips/status", trip.UpdateTripStatus)
	agentroutes.Post("/trips/expenses", trip.AddExpense)
	agentroutes.Get("/trips", trip.ListTrips)
	agentroutes.Get("/dashboard/summary", dashboard.Summary)
	agentroutes.Get("/dashboard/daily", dashboard.DailyChart)
	agentroutes.Get("/dashboard/top-customers", dashboard.TopCustomers)
	agentroutes.Get("/reports", reports.Generate)
	agentroutes.Get("/reports/export", reports.ExportExcel)

	// Staff recording screens
	staffroutes := app.Group("/staff", middlewares.StaffAuth)
	staffroutes.Post("/rolling", transactions.RecordRolling)
	staffroutes.Post("/buy-in-out", transactions.RecordBuyInOut)
	staffroutes.Get("/records/recent", transactions.ListRecentRecords)
	staffroutes.Get("/dashboard/summary", dashboard.Summary)
}
