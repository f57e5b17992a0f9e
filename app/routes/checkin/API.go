package checkin

import (
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/config"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/routes/auth"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CheckinRequest struct {
	StudentID         string   `json:"student_id" validate:"required"`
	ClassDefinitionID string   `json:"class_definition_id" validate:"required"`
	Method            string   `json:"method" validate:"required,oneof=self_service teacher"`
	Latitude          *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude         *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type RevokeRequest struct {
	StudentID         string `json:"student_id" validate:"required"`
	ClassDefinitionID string `json:"class_definition_id" validate:"required"`
	Date              string `json:"date" validate:"required,datetime=2006-01-02"`
}

func RegisterAttendanceAPI(c *fiber.Ctx) error {
	var req CheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "student_id, class_definition_id and a valid method are required",
		})
	}

	method := models.CheckInMethod(req.Method)
	teacherID := ""
	if method == models.CheckInTeacher {
		claims, ok := c.Locals("user").(*auth.JWTClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Authentication required",
			})
		}
		teacherID = claims.UserID
	}

	attendance, err := attendanceService().RegisterAttendance(services.CheckinRequest{
		StudentID:         req.StudentID,
		ClassDefinitionID: req.ClassDefinitionID,
		Method:            method,
		TeacherID:         teacherID,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"attendance": attendance,
	})
}

func RevokeAttendanceAPI(c *fiber.Ctx) error {
	var req RevokeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "student_id, class_definition_id and date (YYYY-MM-DD) are required",
		})
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, config.GetTimezone())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "date must be YYYY-MM-DD",
		})
	}

	if err := attendanceService().RevokeAttendance(req.StudentID, req.ClassDefinitionID, date); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Attendance revoked",
	})
}
