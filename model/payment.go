package model

import "time"

// Payment methods
const (
	PaymentCash         = "CASH"
	PaymentCreditCard   = "CREDIT_CARD"
	PaymentDebitCard    = "DEBIT_CARD"
	PaymentUPI          = "UPI"
	PaymentBankTransfer = "BANK_TRANSFER"
	PaymentCheque       = "CHEQUE"
	PaymentOther        = "OTHER"
)

type Payment struct {
	DTO
	ReservationRef  uint      `gorm:"index" json:"reservationRef"`
	PropertyRef     uint      `gorm:"index" json:"propertyRef"`
	AmountPaid      float64   `json:"amountPaid"`
	PaymentMethod   string    `json:"paymentMethod"`
	IsVoid          bool      `json:"isVoid"`
	TransactionDate time.Time `json:"transactionDate"`
	ReferenceNumber string    `json:"referenceNumber,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedBy       uint      `json:"createdBy"`
	UpdatedBy       *uint     `json:"updatedBy,omitempty"`
}

type PaymentInput struct {
	AmountPaid      float64 `json:"amountPaid" validate:"required,gt=0"`
	PaymentMethod   string  `json:"paymentMethod" validate:"required,oneof=CASH CREDIT_CARD DEBIT_CARD UPI BANK_TRANSFER CHEQUE OTHER"`
	ReferenceNumber string  `json:"referenceNumber" validate:"required"`
	Notes           string  `json:"notes"`
}
