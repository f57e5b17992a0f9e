package bookings

import (
	"log"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/config"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/database"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/services"
	"github.com/gofiber/fiber/v2"
)

func serviceLoc() *time.Location {
	return config.GetTimezone()
}

func bookingService() *services.BookingService {
	store := database.NewStore(config.GetDB())
	return &services.BookingService{
		Classes:  store,
		Bookings: store,
		Loc:      config.GetTimezone(),
	}
}

// handleServiceError translates a business outcome into the API answer. Any
// error that is not a DomainError is an infrastructure failure and answers 500.
func handleServiceError(c *fiber.Ctx, err error) error {
	if derr, ok := services.AsDomainError(err); ok {
		return c.Status(derr.HTTPStatus()).JSON(fiber.Map{
			"success": false,
			"error":   derr.Kind,
			"message": derr.Message,
		})
	}

	log.Printf("Booking request failed: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Internal server error",
	})
}
