package students

import (
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoutes(app *fiber.App) {
	app.Get("/api/students/:id", auth.AuthMiddleware, GetStudentAPI)
}
