package handler

import (
	"errors"
	"time"

	"pms_server/constants"
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PaymentHandler struct {
	DB  *gorm.DB
	Hub *DeskHub
}

func NewPaymentHandler(db *gorm.DB, hub *DeskHub) *PaymentHandler {
	return &PaymentHandler{DB: db, Hub: hub}
}

// AddPayment records a payment and folds it into the reservation totals in
// one transaction.
func (h *PaymentHandler) AddPayment(c *fiber.Ctx) error {
	input, ok := c.Locals("paymentInput").(model.PaymentInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	reservationId, _ := c.Locals("reservationId").(uint)
	userId, _ := c.Locals("userId").(uint)

	var status int
	var message string
	payment := model.Payment{
		ReservationRef:  reservationId,
		PropertyRef:     propertyId,
		AmountPaid:      input.AmountPaid,
		PaymentMethod:   input.PaymentMethod,
		TransactionDate: time.Now().UTC(),
		ReferenceNumber: input.ReferenceNumber,
		Notes:           input.Notes,
		CreatedBy:       userId,
	}

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

		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		reservation.PaymentDetails.TotalPaid += input.AmountPaid
		reservation.PaymentDetails.Balance = reservation.PaymentDetails.TotalAmount - reservation.PaymentDetails.TotalPaid
		return tx.Save(&reservation).Error
	})
	if err != nil {
		if status != 0 {
			return utils.Fail(c, status, message)
		}
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	h.Hub.Broadcast(DeskEvent{
		Type:          DeskEventPayment,
		PropertyRef:   propertyId,
		ReservationId: reservationId,
	})

	return utils.Success(c, fiber.StatusCreated, "Payment recorded successfully", payment)
}

func (h *PaymentHandler) GetPayments(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	reservationId, _ := c.Locals("reservationId").(uint)

	var payments []model.Payment
	if err := h.DB.Where("reservation_ref = ? AND property_ref = ?", reservationId, propertyId).
		Order("id").Find(&payments).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, payments)
}

// loadLivePayment fetches a non-void payment, distinguishing a missing
// record from an already-voided one.
func loadLivePayment(tx *gorm.DB, paymentId, reservationId, propertyId uint) (*model.Payment, int, string, error) {
	var payment model.Payment
	err := lockForUpdate(tx).
		Where("id = ? AND reservation_ref = ? AND property_ref = ?", paymentId, reservationId, propertyId).
		First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.StatusNotFound, "Payment not found", err
	}
	if err != nil {
		return nil, 0, "", err
	}
	if payment.IsVoid {
		return nil, fiber.StatusConflict, "Payment is void", errors.New("payment is void")
	}
	return &payment, 0, "", nil
}

// UpdatePayment amends a live payment and shifts the reservation totals by
// the amount delta. Void payments reject the update.
func (h *PaymentHandler) UpdatePayment(c *fiber.Ctx) error {
	input, ok := c.Locals("paymentInput").(model.PaymentInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	reservationId, _ := c.Locals("reservationId").(uint)
	paymentId, _ := c.Locals("paymentId").(uint)
	userId, _ := c.Locals("userId").(uint)

	var status int
	var message string
	var payment *model.Payment

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		payment, status, message, err = loadLivePayment(tx, paymentId, reservationId, propertyId)
		if err != nil {
			return err
		}

		delta := input.AmountPaid - payment.AmountPaid
		payment.AmountPaid = input.AmountPaid
		payment.PaymentMethod = input.PaymentMethod
		payment.ReferenceNumber = input.ReferenceNumber
		payment.Notes = input.Notes
		payment.UpdatedBy = &userId
		if err := tx.Save(payment).Error; err != nil {
			return err
		}

		var reservation model.Reservation
		if err := lockForUpdate(tx).
			First(&reservation, reservationId).Error; err != nil {
			return err
		}
		reservation.PaymentDetails.TotalPaid += delta
		reservation.PaymentDetails.Balance = reservation.PaymentDetails.TotalAmount - reservation.PaymentDetails.TotalPaid
		return tx.Save(&reservation).Error
	})
	if err != nil {
		if status != 0 {
			return utils.Fail(c, status, message)
		}
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, "Payment updated successfully", payment)
}

// VoidPayment is terminal: the amount comes back out of the totals and the
// record stays for the audit trail. Voiding twice is a conflict.
func (h *PaymentHandler) VoidPayment(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	reservationId, _ := c.Locals("reservationId").(uint)
	paymentId, _ := c.Locals("paymentId").(uint)
	userId, _ := c.Locals("userId").(uint)

	var status int
	var message string
	var payment *model.Payment

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		payment, status, message, err = loadLivePayment(tx, paymentId, reservationId, propertyId)
		if err != nil {
			return err
		}

		payment.IsVoid = true
		payment.UpdatedBy = &userId
		if err := tx.Save(payment).Error; err != nil {
			return err
		}

		var reservation model.Reservation
		if err := lockForUpdate(tx).
			First(&reservation, reservationId).Error; err != nil {
			return err
		}
		reservation.PaymentDetails.TotalPaid -= payment.AmountPaid
		reservation.PaymentDetails.Balance = reservation.PaymentDetails.TotalAmount - reservation.PaymentDetails.TotalPaid
		return tx.Save(&reservation).Error
	})
	if err != nil {
		if status != 0 {
			return utils.Fail(c, status, message)
		}
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, "Payment voided successfully", payment)
}
