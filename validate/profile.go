package validate

import (
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
)

func IndividualProfileBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.IndividualProfileInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("individualProfileInput", input)
		return c.Next()
	}
}

func CompanyProfileBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CompanyProfileInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("companyProfileInput", input)
		return c.Next()
	}
}
