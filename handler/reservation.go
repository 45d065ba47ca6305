package handler

import (
	"errors"
	"strings"
	"time"

	"pms_server/constants"
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationHandler struct {
	DB  *gorm.DB
	Hub *DeskHub
}

func NewReservationHandler(db *gorm.DB, hub *DeskHub) *ReservationHandler {
	return &ReservationHandler{DB: db, Hub: hub}
}

func newConfirmationCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// CreateReservation books the stay and its per-room licenses in one
// transaction. Either everything lands or nothing does.
func (h *ReservationHandler) CreateReservation(c *fiber.Ctx) error {
	input, ok := c.Locals("reservationInput").(model.CreateReservationInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	userId, _ := c.Locals("userId").(uint)
	checkIn, _ := c.Locals("checkInDate").(time.Time)
	checkOut, _ := c.Locals("checkOutDate").(time.Time)

	if err := h.bookerExists(propertyId, input.BookerId, input.BookerType); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	reservation := model.Reservation{
		PropertyRef:      propertyId,
		ConfirmationCode: newConfirmationCode(),
		BookerRef:        input.BookerId,
		BookerType:       input.BookerType,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		GuestList:        input.Guests,
		Source:           input.Source,
		PayType:          input.PayType,
		Notes:            input.Notes,
		CreatedBy:        userId,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		total := 0.0
		for _, l := range input.Licenses {
			var roomType model.RoomType
			if err := tx.Where("id = ? AND property_ref = ?", l.RoomTypeRef, propertyId).
				First(&roomType).Error; err != nil {
				return errors.New("Room type does not exist on this property")
			}
			total += model.NewCharges(l.BaseRate, l.TaxAmount, l.DiscountAmount).TotalCharges
		}

		reservation.PaymentDetails = model.PaymentDetails{TotalAmount: total, Balance: total}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		for _, l := range input.Licenses {
			license := model.License{
				ReservationRef: reservation.ID,
				PropertyRef:    propertyId,
				RoomTypeRef:    l.RoomTypeRef,
				GuestList:      input.Guests,
				CheckInDate:    checkIn,
				CheckOutDate:   checkOut,
				Charges:        model.NewCharges(l.BaseRate, l.TaxAmount, l.DiscountAmount),
				LicenseStatus:  model.LicenseNotStarted,
				CreatedBy:      userId,
			}
			if err := tx.Create(&license).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Preload("Licenses").First(&reservation, reservation.ID).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	h.sendConfirmation(&reservation)
	h.Hub.Broadcast(DeskEvent{
		Type:          DeskEventReservation,
		PropertyRef:   propertyId,
		ReservationId: reservation.ID,
	})

	return utils.Success(c, fiber.StatusCreated, "Reservation created successfully", reservation)
}

func (h *ReservationHandler) bookerExists(propertyId, bookerId uint, bookerType string) error {
	var count int64
	switch bookerType {
	case model.BookerIndividual:
		h.DB.Model(&model.IndividualProfile{}).
			Where("id = ? AND property_ref = ?", bookerId, propertyId).Count(&count)
	case model.BookerCompany:
		h.DB.Model(&model.CompanyProfile{}).
			Where("id = ? AND property_ref = ?", bookerId, propertyId).Count(&count)
	}
	if count == 0 {
		return errors.New("Booker profile not found on this property")
	}
	return nil
}

func (h *ReservationHandler) sendConfirmation(reservation *model.Reservation) {
	var property model.Property
	if err := h.DB.First(&property, reservation.PropertyRef).Error; err != nil {
		return
	}

	email := ""
	switch reservation.BookerType {
	case model.BookerIndividual:
		var p model.IndividualProfile
		if err := h.DB.First(&p, reservation.BookerRef).Error; err == nil {
			email = p.Email
		}
	case model.BookerCompany:
		var p model.CompanyProfile
		if err := h.DB.First(&p, reservation.BookerRef).Error; err == nil {
			email = p.ContactEmail
		}
	}
	if email == "" {
		return
	}

	utils.SendReservationConfirmationEmail(email, utils.ReservationEmailData{
		ConfirmationCode: reservation.ConfirmationCode,
		PropertyName:     property.Name,
		CheckInDate:      reservation.CheckInDate.Format("2006-01-02"),
		CheckOutDate:     reservation.CheckOutDate.Format("2006-01-02"),
		RoomCount:        len(reservation.Licenses),
		TotalAmount:      reservation.PaymentDetails.TotalAmount,
	})
}

// GetReservations lists reservations for the property with optional status
// and date-range filters.
func (h *ReservationHandler) GetReservations(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)

	query := h.DB.Preload("Licenses").Where("property_ref = ?", propertyId)
	switch c.Query("status") {
	case "cancelled":
		query = query.Where("is_cancelled = ?", true)
	case "closed":
		query = query.Where("is_closed = ? AND is_cancelled = ?", true, false)
	case "active":
		query = query.Where("is_cancelled = ? AND is_closed = ?", false, false)
	}
	if from := c.Query("from"); from != "" {
		if fromDate, err := utils.ParseDate(from); err == nil {
			query = query.Where("check_out_date >= ?", fromDate)
		}
	}
	if to := c.Query("to"); to != "" {
		if toDate, err := utils.ParseDate(to); err == nil {
			query = query.Where("check_in_date <= ?", toDate)
		}
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := query.Model(&model.Reservation{}).Count(&total).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	var reservations []model.Reservation
	if err := query.Offset((page - 1) * limit).Limit(limit).
		Order("id DESC").Find(&reservations).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, model.PagedResult{
		Rows:       reservations,
		Page:       page,
		Limit:      limit,
		TotalCount: total,
	})
}

func (h *ReservationHandler) GetReservationById(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	reservationId, _ := c.Locals("reservationId").(uint)

	var reservation model.Reservation
	err := h.DB.Preload("Licenses").Preload("Payments").
		Where("id = ? AND property_ref = ?", reservationId, propertyId).
		First(&reservation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, constants.MSG_RESERVATION_NOT_FOUND)
	}
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, reservation)
}

// CancelReservation cancels every non-terminal license and the reservation
// itself in one transaction. With cancelWithCharges the charges move into
// cancelledCharges and stay owed; without it they are dropped and the
// totals shrink.
func (h *ReservationHandler) CancelReservation(c *fiber.Ctx) error {
	input, ok := c.Locals("cancelInput").(model.CancelReservationInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	reservationId, _ := c.Locals("reservationId").(uint)
	userId, _ := c.Locals("userId").(uint)

	var status int
	var message string

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var reservation model.Reservation
		err := lockForUpdate(tx).
			Where("id = ? AND property_ref = ?", reservationId, propertyId).
			First(&reservation).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			status, message = fiber.StatusNotFound, constants.MSG_RESERVATION_NOT_FOUND
			return err
		}
		if err != nil {
			return err
		}
		if reservation.IsCancelled {
			status, message = fiber.StatusConflict, constants.MSG_ALREADY_CANCELLED
			return errors.New(message)
		}

		var licenses []model.License
		if err := tx.Where("reservation_ref = ?", reservation.ID).Find(&licenses).Error; err != nil {
			return err
		}

		today := utils.Today()
		for _, l := range licenses {
			if l.CheckInDate.Before(today) {
				status, message = fiber.StatusBadRequest, constants.MSG_PAST_DATED_CANCEL
				return errors.New(message)
			}
		}

		now := time.Now().UTC()
		retained := 0.0
		for i := range licenses {
			l := &licenses[i]
			if l.LicenseStatus == model.LicenseClosed || l.LicenseStatus == model.LicenseCancelled {
				retained += l.Charges.TotalCharges + l.CancelledCharges.TotalCharges
				continue
			}
			if input.CancelWithCharges {
				l.CancelledCharges = l.Charges
				retained += l.CancelledCharges.TotalCharges
			}
			l.Charges = model.Charges{}
			l.LicenseStatus = model.LicenseCancelled
			l.IsCancelled = true
			l.CancelledBy = &userId
			l.UpdatedBy = &userId
			l.ActualCheckOutDate = &now
			if err := tx.Save(l).Error; err != nil {
				return err
			}
		}

		reservation.IsCancelled = true
		reservation.CancelledBy = &userId
		reservation.UpdatedBy = &userId
		reservation.PaymentDetails.TotalAmount = retained
		reservation.PaymentDetails.Balance = retained - reservation.PaymentDetails.TotalPaid
		return tx.Save(&reservation).Error
	})
	if err != nil {
		if status != 0 {
			return utils.Fail(c, status, message)
		}
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	h.Hub.Broadcast(DeskEvent{
		Type:          DeskEventCancellation,
		PropertyRef:   propertyId,
		ReservationId: reservationId,
	})

	return utils.Success(c, fiber.StatusOK, "Reservation cancelled successfully", nil)
}

// CheckInLicense moves a license to STARTED. The license must hold a room,
// be in NOT_STARTED, and today must fall inside its stay window.
func (h *ReservationHandler) CheckInLicense(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	reservationId, _ := c.Locals("reservationId").(uint)
	licenseId, _ := c.Locals("licenseId").(uint)
	userId, _ := c.Locals("userId").(uint)

	var license model.License
	err := h.DB.Where("id = ? AND reservation_ref = ? AND property_ref = ?",
		licenseId, reservationId, propertyId).First(&license).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, constants.MSG_LICENSE_NOT_FOUND)
	}
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if license.LicenseStatus != model.LicenseNotStarted {
		return utils.Fail(c, fiber.StatusConflict, "License is not awaiting check-in")
	}
	if license.RoomRef == nil {
		return utils.Fail(c, fiber.StatusConflict, "A room must be assigned before check-in")
	}
	today := utils.Today()
	if !utils.Overlaps(today, today, license.CheckInDate, license.CheckOutDate) {
		return utils.Fail(c, fiber.StatusConflict, "Today is outside the license stay window")
	}

	now := time.Now().UTC()
	license.LicenseStatus = model.LicenseStarted
	license.ActualCheckInTime = &now
	license.CheckedInBy = &userId
	license.UpdatedBy = &userId
	if err := h.DB.Save(&license).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	h.Hub.Broadcast(DeskEvent{
		Type:          DeskEventCheckIn,
		PropertyRef:   propertyId,
		ReservationId: reservationId,
		LicenseId:     license.ID,
	})

	return utils.Success(c, fiber.StatusOK, "Checked in successfully", license)
}

// CheckOutLicense closes a STARTED license. The reservation closes when
// its last license goes terminal.
func (h *ReservationHandler) CheckOutLicense(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	reservationId, _ := c.Locals("reservationId").(uint)
	licenseId, _ := c.Locals("licenseId").(uint)
	userId, _ := c.Locals("userId").(uint)

	var status int
	var message string
	var license model.License

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		err := lockForUpdate(tx).
			Where("id = ? AND reservation_ref = ? AND property_ref = ?",
				licenseId, reservationId, propertyId).First(&license).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			status, message = fiber.StatusNotFound, constants.MSG_LICENSE_NOT_FOUND
			return err
		}
		if err != nil {
			return err
		}
		if license.LicenseStatus != model.LicenseStarted {
			status, message = fiber.StatusConflict, "License is not checked in"
			return errors.New(message)
		}

		now := time.Now().UTC()
		license.LicenseStatus = model.LicenseClosed
		license.ActualCheckOutDate = &now
		license.CheckedOutBy = &userId
		license.UpdatedBy = &userId
		if err := tx.Save(&license).Error; err != nil {
			return err
		}

		var open int64
		if err := tx.Model(&model.License{}).
			Where("reservation_ref = ? AND license_status IN ?", reservationId,
				[]string{model.LicenseNotStarted, model.LicenseStarted}).
			Count(&open).Error; err != nil {
			return err
		}
		if open == 0 {
			return tx.Model(&model.Reservation{}).
				Where("id = ?", reservationId).
				Updates(map[string]any{"is_closed": true, "updated_by": userId}).Error
		}
		return nil
	})
	if err != nil {
		if status != 0 {
			return utils.Fail(c, status, message)
		}
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	h.Hub.Broadcast(DeskEvent{
		Type:          DeskEventCheckOut,
		PropertyRef:   propertyId,
		ReservationId: reservationId,
		LicenseId:     license.ID,
	})

	return utils.Success(c, fiber.StatusOK, "Checked out successfully", license)
}

// AssignRoom puts a physical room on a license. Conflicting licenses are
// read under a row lock so two clerks cannot grab the same room for
// overlapping dates.
func (h *ReservationHandler) AssignRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("assignRoomInput").(model.AssignRoomInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	reservationId, _ := c.Locals("reservationId").(uint)
	licenseId, _ := c.Locals("licenseId").(uint)
	userId, _ := c.Locals("userId").(uint)

	var status int
	var message string
	var license model.License

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		err := lockForUpdate(tx).
			Where("id = ? AND reservation_ref = ? AND property_ref = ?",
				licenseId, reservationId, propertyId).First(&license).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			status, message = fiber.StatusNotFound, constants.MSG_LICENSE_NOT_FOUND
			return err
		}
		if err != nil {
			return err
		}
		if license.LicenseStatus == model.LicenseClosed || license.LicenseStatus == model.LicenseCancelled {
			status, message = fiber.StatusConflict, "License is no longer active"
			return errors.New(message)
		}

		var room model.Room
		err = tx.Where("id = ? AND property_ref = ?", input.RoomRef, propertyId).First(&room).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			status, message = fiber.StatusBadRequest, "Room not found on this property"
			return err
		}
		if err != nil {
			return err
		}
		if !room.IsAvailable {
			status, message = fiber.StatusConflict, "Room is out of service"
			return errors.New(message)
		}
		if room.RoomTypeRef != license.RoomTypeRef {
			status, message = fiber.StatusBadRequest, "Room does not match the booked room type"
			return errors.New(message)
		}

		var conflicts int64
		if err := lockForUpdate(tx).Model(&model.License{}).
			Where("room_ref = ? AND id <> ? AND is_cancelled = ? AND license_status <> ?",
				input.RoomRef, license.ID, false, model.LicenseClosed).
			Where("check_in_date <= ? AND check_out_date >= ?", license.CheckOutDate, license.CheckInDate).
			Count(&conflicts).Error; err != nil {
			return err
		}
		if conflicts > 0 {
			status, message = fiber.StatusConflict, constants.MSG_ROOM_OVERLAP
			return errors.New(message)
		}

		now := time.Now().UTC()
		license.RoomRef = &input.RoomRef
		license.Assignment = model.AssignmentDetails{AssignedAt: &now, AssignedBy: &userId}
		license.UpdatedBy = &userId
		return tx.Save(&license).Error
	})
	if err != nil {
		if status != 0 {
			return utils.Fail(c, status, message)
		}
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	h.Hub.Broadcast(DeskEvent{
		Type:          DeskEventRoomAssigned,
		PropertyRef:   propertyId,
		ReservationId: reservationId,
		LicenseId:     license.ID,
		RoomRef:       input.RoomRef,
	})

	return utils.Success(c, fiber.StatusOK, "Room assigned successfully", license)
}

// UnassignRoom clears the room from a license that has not closed out.
func (h *ReservationHandler) UnassignRoom(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	reservationId, _ := c.Locals("reservationId").(uint)
	licenseId, _ := c.Locals("licenseId").(uint)
	userId, _ := c.Locals("userId").(uint)

	var license model.License
	err := h.DB.Where("id = ? AND reservation_ref = ? AND property_ref = ?",
		licenseId, reservationId, propertyId).First(&license).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, constants.MSG_LICENSE_NOT_FOUND)
	}
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if license.LicenseStatus == model.LicenseClosed || license.LicenseStatus == model.LicenseCancelled {
		return utils.Fail(c, fiber.StatusConflict, "License is no longer active")
	}
	if license.RoomRef == nil {
		return utils.Fail(c, fiber.StatusConflict, "License has no room assigned")
	}

	roomRef := *license.RoomRef
	license.RoomRef = nil
	license.Assignment = model.AssignmentDetails{}
	license.UpdatedBy = &userId
	if err := h.DB.Save(&license).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	h.Hub.Broadcast(DeskEvent{
		Type:          DeskEventRoomUnassigned,
		PropertyRef:   propertyId,
		ReservationId: reservationId,
		LicenseId:     license.ID,
		RoomRef:       roomRef,
	})

	return utils.Success(c, fiber.StatusOK, "Room unassigned successfully", license)
}

// GetReservationQR renders the confirmation code as a PNG for scanning at
// the front desk.
func (h *ReservationHandler) GetReservationQR(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	reservationId, _ := c.Locals("reservationId").(uint)

	var reservation model.Reservation
	err := h.DB.Where("id = ? AND property_ref = ?", reservationId, propertyId).
		First(&reservation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, constants.MSG_RESERVATION_NOT_FOUND)
	}
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	png, err := utils.GenerateQRCode(reservation.ConfirmationCode, 256)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
