package bookings

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateBookingRequest struct {
	StudentID         string `json:"student_id" validate:"required"`
	ClassDefinitionID string `json:"class_definition_id" validate:"required"`
	Date              string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func CreateBookingAPI(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "student_id and class_definition_id are required; date must be YYYY-MM-DD",
		})
	}

	var requestedDate *time.Time
	if req.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", req.Date, serviceLoc())
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "date must be YYYY-MM-DD",
			})
		}
		requestedDate = &d
	}

	booking, err := bookingService().CreateBooking(req.StudentID, req.ClassDefinitionID, requestedDate)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"booking": booking,
	})
}

func CancelBookingAPI(c *fiber.Ctx) error {
	bookingID := c.Params("id")
	if bookingID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Booking ID is required",
		})
	}

	if err := bookingService().CancelBooking(bookingID); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking cancelled",
	})
}

func ListBookingsAPI(c *fiber.Ctx) error {
	classID := c.Params("classId")
	dateParam := c.Params("date")

	date, err := time.ParseInLocation("2006-01-02", dateParam, serviceLoc())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "date must be YYYY-MM-DD",
		})
	}

	seats, err := bookingService().ListBookings(classID, date)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"count":    len(seats),
		"bookings": seats,
	})
}
