package classes

import (
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupClassRoutes(app *fiber.App) {
	app.Get("/api/franchises/:id/classes", auth.AuthMiddleware, ListClassesAPI)
	app.Get("/api/classes/:id/next-occurrence", auth.AuthMiddleware, NextOccurrenceAPI)
	app.Post("/api/classes", auth.AuthMiddleware, auth.RequireRole("admin"), CreateClassAPI)
	app.Delete("/api/classes/:id", auth.AuthMiddleware, auth.RequireRole("admin"), DeactivateClassAPI)
}
