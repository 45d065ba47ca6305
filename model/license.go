package model

import "time"

// License statuses. Transitions are one-directional:
// NOT_STARTED -> STARTED -> CLOSED, with CANCELLED reachable from
// NOT_STARTED or STARTED only.
const (
	LicenseNotStarted = "NOT_STARTED"
	LicenseStarted    = "STARTED"
	LicenseClosed     = "CLOSED"
	LicenseCancelled  = "CANCELLED"
)

type Charges struct {
	BaseRate       float64 `json:"baseRate"`
	TaxAmount      float64 `json:"taxAmount"`
	DiscountAmount float64 `json:"discountAmount"`
	TotalCharges   float64 `json:"totalCharges"`
}

// NewCharges computes the total as base + tax - discount.
func NewCharges(baseRate, taxAmount, discountAmount float64) Charges {
	return Charges{
		BaseRate:       baseRate,
		TaxAmount:      taxAmount,
		DiscountAmount: discountAmount,
		TotalCharges:   baseRate + taxAmount - discountAmount,
	}
}

type AssignmentDetails struct {
	AssignedAt *time.Time `json:"assignedAt,omitempty"`
	AssignedBy *uint      `json:"assignedBy,omitempty"`
}

type License struct {
	DTO
	ReservationRef     uint              `gorm:"index" json:"reservationRef"`
	PropertyRef        uint              `gorm:"index" json:"propertyRef"`
	RoomTypeRef        uint              `gorm:"index" json:"roomTypeRef"`
	RoomRef            *uint             `gorm:"index" json:"roomRef,omitempty"`
	Assignment         AssignmentDetails `gorm:"embedded;embeddedPrefix:assignment_" json:"assignmentDetails"`
	GuestList          []uint            `gorm:"serializer:json" json:"guestList"`
	CheckInDate        time.Time         `json:"checkInDate"`
	CheckOutDate       time.Time         `json:"checkOutDate"`
	Charges            Charges           `gorm:"embedded;embeddedPrefix:charges_" json:"charges"`
	CancelledCharges   Charges           `gorm:"embedded;embeddedPrefix:cancelled_" json:"cancelledCharges"`
	LicenseStatus      string            `gorm:"default:NOT_STARTED" json:"licenseStatus"`
	IsCancelled        bool              `json:"isCancelled"`
	ActualCheckInTime  *time.Time        `json:"actualCheckInTime,omitempty"`
	ActualCheckOutDate *time.Time        `json:"actualCheckOutDate,omitempty"`
	Notes              string            `json:"notes,omitempty"`
	CreatedBy          uint              `json:"createdBy"`
	UpdatedBy          *uint             `json:"updatedBy,omitempty"`
	CheckedInBy        *uint             `json:"checkedInBy,omitempty"`
	CheckedOutBy       *uint             `json:"checkedOutBy,omitempty"`
	CancelledBy        *uint             `json:"cancelledBy,omitempty"`
}

type AssignRoomInput struct {
	RoomRef uint `json:"roomRef" validate:"required"`
}
