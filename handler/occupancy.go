package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pms_server/constants"
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const occupancyCacheTTL = 30 * time.Second

type OccupancyHandler struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewOccupancyHandler(db *gorm.DB, rdb *redis.Client) *OccupancyHandler {
	return &OccupancyHandler{DB: db, RDB: rdb}
}

type roomTypeOccupancy struct {
	RoomTypeRef    uint   `json:"roomTypeRef"`
	RoomTypeName   string `json:"roomTypeName"`
	TotalRooms     int64  `json:"totalRooms"`
	BookedRooms    int64  `json:"bookedRooms"`
	AvailableRooms int64  `json:"availableRooms"`
}

// GetOccupancy reports per-room-type availability for a date range.
// Available = total rooms minus licenses overlapping the range, floored at
// zero so overbooked types never go negative. Results sit in redis for a
// short TTL since front desks poll this constantly.
func (h *OccupancyHandler) GetOccupancy(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)

	checkIn, err := utils.ParseDate(c.Query("checkInDate"))
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, constants.MSG_DATE_RANGE_REQUIRED)
	}
	checkOut, err := utils.ParseDate(c.Query("checkOutDate"))
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, constants.MSG_DATE_RANGE_REQUIRED)
	}
	if !checkOut.After(checkIn) {
		return utils.Fail(c, fiber.StatusBadRequest, constants.MSG_DATE_RANGE_REQUIRED)
	}

	cacheKey := fmt.Sprintf("occupancy:%d:%s:%s",
		propertyId, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
	if h.RDB != nil {
		if cached, err := h.RDB.Get(context.Background(), cacheKey).Result(); err == nil {
			var report []roomTypeOccupancy
			if json.Unmarshal([]byte(cached), &report) == nil {
				return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, report)
			}
		}
	}

	var roomTypes []model.RoomType
	if err := h.DB.Where("property_ref = ?", propertyId).Order("id").Find(&roomTypes).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	report := make([]roomTypeOccupancy, 0, len(roomTypes))
	for _, rt := range roomTypes {
		var total int64
		if err := h.DB.Model(&model.Room{}).
			Where("property_ref = ? AND room_type_ref = ?", propertyId, rt.ID).
			Count(&total).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}

		var booked int64
		if err := h.DB.Model(&model.License{}).
			Where("property_ref = ? AND room_type_ref = ? AND is_cancelled = ?", propertyId, rt.ID, false).
			Where("check_in_date <= ? AND check_out_date >= ?", checkOut, checkIn).
			Count(&booked).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}

		available := total - booked
		if available < 0 {
			available = 0
		}
		report = append(report, roomTypeOccupancy{
			RoomTypeRef:    rt.ID,
			RoomTypeName:   rt.Name,
			TotalRooms:     total,
			BookedRooms:    booked,
			AvailableRooms: available,
		})
	}

	if h.RDB != nil {
		if payload, err := json.Marshal(report); err == nil {
			h.RDB.Set(context.Background(), cacheKey, payload, occupancyCacheTTL)
		}
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, report)
}
