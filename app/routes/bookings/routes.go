package bookings

import (
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupBookingRoutes(app *fiber.App) {
	app.Post("/api/bookings", auth.AuthMiddleware, CreateBookingAPI)
	app.Delete("/api/bookings/:id", auth.AuthMiddleware, CancelBookingAPI)
	app.Get("/api/classes/:classId/occurrences/:date/bookings", auth.AuthMiddleware, ListBookingsAPI)
}
