package graduation

import (
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupGraduationRoutes(app *fiber.App) {
	app.Get("/api/students/:id/eligibility", auth.AuthMiddleware, CheckEligibilityAPI)
	app.Get("/api/students/:id/graduations", auth.AuthMiddleware, ListGraduationHistoryAPI)
	app.Post("/api/students/:id/promote", auth.AuthMiddleware, auth.RequireRole("admin", "teacher"), PromoteAPI)

	app.Get("/api/graduation-rules", auth.AuthMiddleware, ListGraduationRulesAPI)
	app.Post("/api/graduation-rules", auth.AuthMiddleware, auth.RequireRole("admin"), CreateGraduationRuleAPI)
}
