package validate

import (
	"pms_server/constants"
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateReservation parses the booking payload, resolves the date strings
// and stashes both the input and the parsed range.
func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReservationInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		checkIn, err := utils.ParseDate(input.CheckInDate)
		if err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, constants.MSG_DATE_RANGE_REQUIRED)
		}
		checkOut, err := utils.ParseDate(input.CheckOutDate)
		if err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, constants.MSG_DATE_RANGE_REQUIRED)
		}
		if !checkOut.After(checkIn) {
			return utils.Fail(c, fiber.StatusBadRequest, "Check-out date must be after check-in date")
		}

		c.Locals("reservationInput", input)
		c.Locals("checkInDate", checkIn)
		c.Locals("checkOutDate", checkOut)
		return c.Next()
	}
}

func CancelReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CancelReservationInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}
		if !*input.IsCancelled {
			return utils.Fail(c, fiber.StatusBadRequest, "isCancelled must be true")
		}

		c.Locals("cancelInput", input)
		return c.Next()
	}
}

func AssignRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AssignRoomInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("assignRoomInput", input)
		return c.Next()
	}
}
