package checkin

import (
	"log"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/config"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/database"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/services"
	"github.com/gofiber/fiber/v2"
)

func attendanceService() *services.AttendanceService {
	store := database.NewStore(config.GetDB())
	loc := config.GetTimezone()
	return &services.AttendanceService{
		Classes:    store,
		Students:   store,
		Franchises: store,
		Bookings:   store,
		Attendance: store,
		Validator: &services.CheckinValidator{
			Policy: config.GetCheckinPolicy(),
			Loc:    loc,
		},
		Loc: loc,
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

	log.Printf("Check-in request failed: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Internal server error",
	})
}
