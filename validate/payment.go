package validate

import (
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
)

func PaymentBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PaymentInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("paymentInput", input)
		return c.Next()
	}
}
