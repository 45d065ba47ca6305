package validate

import (
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateProperty() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePropertyInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("propertyInput", input)
		return c.Next()
	}
}

func UpdateProperty() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePropertyInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("propertyInput", input)
		return c.Next()
	}
}
