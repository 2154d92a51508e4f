package routes

import (
	"github.com/arnav1824/stagepass_admin/handlers"
	"github.com/arnav1824/stagepass_admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App, h *handlers.Handler) {
	admin := app.Group("/api/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/artists", h.ListArtists)
	admin.Get("/artists/:artistId", h.GetArtist)
	admin.Put("/artists/:artistId/verify", h.VerifyArtist)
	admin.Put("/artists/:artistId/reject", h.RejectArtist)

	admin.Get("/planners", h.ListPlanners)
	admin.Get("/planners/:plannerId", h.GetPlanner)
	admin.Put("/planners/:plannerId/verify", h.VerifyPlanner)
	admin.Put("/planners/:plannerId/reject", h.RejectPlanner)

	admin.Get("/events", h.ListEvents)
	admin.Get("/events/:eventId", h.GetEvent)

	admin.Get("/bookings", h.ListBookings)
	admin.Get("/bookings/:bookingId", h.GetBooking)
	admin.Get("/booking-stats", h.BookingStats)

	// Registered before the :requestId routes so "stats" never matches as an id.
	admin.Get("/withdrawals/stats", h.WithdrawalStats)
	admin.Get("/withdrawals", h.ListWithdrawals)
	admin.Get("/withdrawals/:requestId", h.GetWithdrawal)
	admin.Put("/withdrawals/:requestId/status", h.UpdateWithdrawalStatus)

	admin.Get("/transactions", h.ListTransactions)

	admin.Get("/stats", h.DashboardStats)
	admin.Get("/revenue-chart", h.RevenueChart)
	admin.Get("/booking-trends", h.BookingTrends)

	admin.Get("/audit-logs", h.ListAuditLogs)

	reports := admin.Group("/reports")
	reports.Get("/settlements", h.SettlementReport)
}
