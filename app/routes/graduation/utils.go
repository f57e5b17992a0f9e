package graduation

import (
	"log"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/config"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/database"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/services"
	"github.com/gofiber/fiber/v2"
)

func graduationService() *services.GraduationService {
	store := database.NewStore(config.GetDB())
	return &services.GraduationService{
		Students:   store,
		Rules:      store,
		Attendance: store,
	}
}

func handleServiceError(c *fiber.Ctx, err error) error {
	if derr, ok := services.AsDomainError(err); ok {
		return c.Status(derr.HTTPStatus()).JSON(fiber.Map{
			"success": false,
			"error":   derr.Kind,
			"message": derr.Message,
		})
	}

	log.Printf("Graduation request failed: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Internal server error",
	})
}
