package classes

import (
	"log"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/config"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/database"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateClassRequest struct {
	FranchiseID string `json:"franchise_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=gi nogi kids open_mat wrestling"`
	DayOfWeek   int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
}

func ListClassesAPI(c *fiber.Ctx) error {
	franchiseID := c.Params("id")

	store := database.NewStore(config.GetDB())
	classes, err := store.ListClassDefinitions(franchiseID)
	if err != nil {
		log.Printf("Failed to list classes for franchise %s: %v", franchiseID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(classes),
		"classes": classes,
	})
}

// NextOccurrenceAPI answers the next concrete date of a weekly class, with
// its check-in window, so the app can render "next class: Tuesday 19:00".
func NextOccurrenceAPI(c *fiber.Ctx) error {
	classID := c.Params("id")
	loc := config.GetTimezone()

	store := database.NewStore(config.GetDB())
	class, err := store.GetClassDefinition(classID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Class not found",
			})
		}
		log.Printf("Failed to load class %s: %v", classID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}

	occurrence := services.NextOccurrence(time.Now(), time.Weekday(class.DayOfWeek), loc)
	start, end, err := services.OccurrenceWindow(class, occurrence, loc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}

	policy := config.GetCheckinPolicy()
	return c.JSON(fiber.Map{
		"success":         true,
		"occurrence_date": occurrence.Format("2006-01-02"),
		"starts_at":       start,
		"ends_at":         end,
		"checkin_opens":   start.Add(-policy.EarlyWindow),
		"checkin_closes":  end.Add(policy.LateWindow),
	})
}

func CreateClassAPI(c *fiber.Ctx) error {
	var req CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "All fields are required; times must be HH:MM and capacity at least 1",
		})
	}

	if req.EndTime <= req.StartTime {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "end_time must be after start_time",
		})
	}

	class := &models.ClassDefinition{
		FranchiseID: req.FranchiseID,
		Name:        req.Name,
		Category:    models.ClassCategory(req.Category),
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Capacity:    req.Capacity,
	}

	store := database.NewStore(config.GetDB())
	if err := store.CreateClassDefinition(class); err != nil {
		if err == database.ErrDuplicateKey {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "A class already exists in this slot",
			})
		}
		log.Printf("Failed to create class: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"class":   class,
	})
}

func DeactivateClassAPI(c *fiber.Ctx) error {
	classID := c.Params("id")

	store := database.NewStore(config.GetDB())
	if err := store.DeactivateClassDefinition(classID); err != nil {
		if err == database.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Class not found",
			})
		}
		log.Printf("Failed to deactivate class %s: %v", classID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Class deactivated",
	})
}
