package students

import (
	"log"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/config"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/database"
	"github.com/gofiber/fiber/v2"
)

func GetStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	store := database.NewStore(config.GetDB())
	student, err := store.GetStudent(studentID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Student not found",
			})
		}
		log.Printf("Failed to load student %s: %v", studentID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"student": student,
	})
}
