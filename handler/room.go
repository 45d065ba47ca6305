package handler

import (
	"errors"
	"fmt"

	"pms_server/constants"
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RoomHandler struct {
	DB *gorm.DB
}

func NewRoomHandler(db *gorm.DB) *RoomHandler {
	return &RoomHandler{DB: db}
}

// CreateRoom adds a room under a room type. The room code is derived from
// the type code and the room number.
func (h *RoomHandler) CreateRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("roomInput").(model.RoomInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)

	var count int64
	if err := h.DB.Model(&model.Room{}).
		Where("property_ref = ? AND room_number = ?", propertyId, input.RoomNumber).
		Count(&count).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if count > 0 {
		return utils.Fail(c, fiber.StatusConflict, constants.DUPLICATE_ENTRY)
	}

	var roomType model.RoomType
	if err := h.DB.First(&roomType, input.RoomTypeRef).Error; err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Room type does not exist on this property")
	}

	room := model.Room{
		RoomNumber:  input.RoomNumber,
		RoomCode:    fmt.Sprintf("%s-%s", roomType.Code, input.RoomNumber),
		RoomTypeRef: input.RoomTypeRef,
		PropertyRef: propertyId,
		IsAvailable: true,
		Floor:       input.Floor,
	}
	if err := h.DB.Create(&room).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusCreated, "Room created successfully", room)
}

func (h *RoomHandler) GetRooms(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)

	query := h.DB.Preload("RoomType").Where("property_ref = ?", propertyId)
	if roomTypeRef := c.QueryInt("roomTypeRef", 0); roomTypeRef > 0 {
		query = query.Where("room_type_ref = ?", roomTypeRef)
	}

	var rooms []model.Room
	if err := query.Order("id").Find(&rooms).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, rooms)
}

func (h *RoomHandler) GetRoomById(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	roomId, _ := c.Locals("roomId").(uint)

	var room model.Room
	err := h.DB.Preload("RoomType").
		Where("id = ? AND property_ref = ?", roomId, propertyId).
		First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, "Room not found")
	}
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, room)
}

// SetRoomAvailability toggles a room in or out of service.
func (h *RoomHandler) SetRoomAvailability(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	roomId, _ := c.Locals("roomId").(uint)

	var input struct {
		IsAvailable *bool `json:"isAvailable"`
	}
	if err := c.BodyParser(&input); err != nil || input.IsAvailable == nil {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}

	result := h.DB.Model(&model.Room{}).
		Where("id = ? AND property_ref = ?", roomId, propertyId).
		Update("is_available", *input.IsAvailable)
	if result.Error != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if result.RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Room not found")
	}

	return utils.Success(c, fiber.StatusOK, "Room availability updated", nil)
}

func (h *RoomHandler) DeleteRoom(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	roomId, _ := c.Locals("roomId").(uint)

	var activeLicenses int64
	if err := h.DB.Model(&model.License{}).
		Where("room_ref = ? AND license_status IN ?", roomId,
			[]string{model.LicenseNotStarted, model.LicenseStarted}).
		Count(&activeLicenses).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if activeLicenses > 0 {
		return utils.Fail(c, fiber.StatusConflict, "Room has active licenses")
	}

	result := h.DB.Where("id = ? AND property_ref = ?", roomId, propertyId).Delete(&model.Room{})
	if result.Error != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if result.RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Room not found")
	}

	return utils.Success(c, fiber.StatusOK, "Room deleted successfully", nil)
}
