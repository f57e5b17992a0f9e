package graduation

import (
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/config"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/database"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/routes/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateRuleRequest struct {
	FromBelt        string `json:"from_belt" validate:"required"`
	FromDegree      int    `json:"from_degree" validate:"min=0"`
	ToBelt          string `json:"to_belt" validate:"required"`
	ToDegree        int    `json:"to_degree" validate:"min=0"`
	ClassesRequired int    `json:"classes_required" validate:"min=0"`
	MinDaysRequired int    `json:"min_days_required" validate:"min=0"`
	Fee             int64  `json:"fee" validate:"min=0"`
}

func CheckEligibilityAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	result, err := graduationService().CheckEligibility(studentID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"eligibility": result,
	})
}

func PromoteAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	claims, ok := c.Locals("user").(*auth.JWTClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Authentication required",
		})
	}

	student, err := graduationService().Promote(studentID, claims.UserID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"student": student,
	})
}

func ListGraduationHistoryAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	store := database.NewStore(config.GetDB())
	history, err := store.ListGraduationHistory(studentID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"count":       len(history),
		"graduations": history,
	})
}

func ListGraduationRulesAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	rules, err := store.ListGraduationRules()
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(rules),
		"rules":   rules,
	})
}

func CreateGraduationRuleAPI(c *fiber.Ctx) error {
	var req CreateRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "from_belt and to_belt are required; counts must be non-negative",
		})
	}

	rule := &models.GraduationRule{
		FromBelt:        models.Belt(req.FromBelt),
		FromDegree:      req.FromDegree,
		ToBelt:          models.Belt(req.ToBelt),
		ToDegree:        req.ToDegree,
		ClassesRequired: req.ClassesRequired,
		MinDaysRequired: req.MinDaysRequired,
		Fee:             req.Fee,
	}

	store := database.NewStore(config.GetDB())
	if err := store.CreateGraduationRule(rule); err != nil {
		if err == database.ErrDuplicateKey {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "A rule for this belt and degree already exists",
			})
		}
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"rule":    rule,
	})
}
