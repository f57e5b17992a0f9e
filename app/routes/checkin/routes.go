package checkin

import (
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupCheckinRoutes(app *fiber.App) {
	app.Post("/api/checkin", auth.AuthMiddleware, RegisterAttendanceAPI)
	app.Delete("/api/attendance", auth.AuthMiddleware, auth.RequireRole("admin", "teacher"), RevokeAttendanceAPI)
}
