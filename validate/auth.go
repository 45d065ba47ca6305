package validate

import (
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("registerInput", input)
		return c.Next()
	}
}

func RegisterTeamMember() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.TeamRegisterInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("teamRegisterInput", input)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("loginInput", input)
		return c.Next()
	}
}
