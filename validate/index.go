package validate

import (
	"errors"
	"strconv"

	"pms_server/constants"
	"pms_server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetById checks a numeric path param and stashes it in locals under the
// same key.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		value, err := strconv.Atoi(params)
		if err != nil || value < 1 {
			return utils.Fail(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}

		c.Locals(key, uint(value))
		return c.Next()
	}
}

func parseAndValidate(c *fiber.Ctx, input any) error {
	if err := c.BodyParser(input); err != nil {
		return errors.New(constants.ERROR_INPUT)
	}
	if err := validate.Struct(input); err != nil {
		return err
	}
	return nil
}
