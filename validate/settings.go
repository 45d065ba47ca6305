package validate

import (
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
)

func TaxBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.TaxInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("taxInput", input)
		return c.Next()
	}
}

func MealPlanBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.MealPlanInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("mealPlanInput", input)
		return c.Next()
	}
}

func FacilityBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FacilityInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("facilityInput", input)
		return c.Next()
	}
}
