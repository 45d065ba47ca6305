package validate

import (
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
)

func RoomTypeBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RoomTypeInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("roomTypeInput", input)
		return c.Next()
	}
}
