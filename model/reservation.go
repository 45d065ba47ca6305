package model

import "time"

// Booking sources
const (
	SourceTravelAgent = "TRAVEL_AGENT"
	SourcePhone       = "PHONE"
	SourceEmail       = "EMAIL"
	SourceWebsite     = "WEBSITE"
	SourceSocialMedia = "SOCIAL_MEDIA"
	SourceWalkIn      = "WALK_IN"
	SourceOTA         = "OTA"
	SourceCorporate   = "CORPORATE"
	SourceMICE        = "MICE"
	SourceOther       = "OTHER"
)

// Pay types
const (
	PayTypeDirect        = "DIRECT"
	PayTypeBillToCompany = "BILL_TO_COMPANY"
)

// Booker kinds (tagged union discriminator)
const (
	BookerIndividual = "INDIVIDUAL"
	BookerCompany    = "COMPANY"
)

type PaymentDetails struct {
	TotalAmount float64 `json:"totalAmount"`
	TotalPaid   float64 `json:"totalPaid"`
	Balance     float64 `json:"balance"`
}

type Reservation struct {
	DTO
	PropertyRef        uint           `gorm:"index" json:"propertyRef"`
	ConfirmationCode   string         `gorm:"uniqueIndex" json:"confirmationCode"`
	BookerRef          uint           `json:"bookerRef"`
	BookerType         string         `json:"bookerType"`
	CheckInDate        time.Time      `json:"checkInDate"`
	CheckOutDate       time.Time      `json:"checkOutDate"`
	GuestList          []uint         `gorm:"serializer:json" json:"guestList"`
	Source             string         `json:"source"`
	PayType            string         `json:"payType"`
	IsCancelled        bool           `json:"isCancelled"`
	IsClosed           bool           `json:"isClosed"`
	Licenses           []License      `gorm:"foreignKey:ReservationRef" json:"licenses,omitempty"`
	Payments           []Payment      `gorm:"foreignKey:ReservationRef" json:"payments,omitempty"`
	PaymentDetails     PaymentDetails `gorm:"embedded;embeddedPrefix:payment_" json:"paymentDetails"`
	GSTDetails         GSTDetails     `gorm:"embedded;embeddedPrefix:gst_" json:"gstDetails"`
	GSTOtherThanBooker bool           `json:"gstOtherThanBooker"`
	Notes              string         `json:"notes,omitempty"`
	CreatedBy          uint           `json:"createdBy"`
	UpdatedBy          *uint          `json:"updatedBy,omitempty"`
	CancelledBy        *uint          `json:"cancelledBy,omitempty"`
}

type LicenseBookingInput struct {
	RoomTypeRef    uint    `json:"roomTypeRef" validate:"required"`
	BaseRate       float64 `json:"baseRate" validate:"gte=0"`
	TaxAmount      float64 `json:"taxAmount" validate:"gte=0"`
	DiscountAmount float64 `json:"discountAmount" validate:"gte=0"`
}

type CreateReservationInput struct {
	BookerId     uint                  `json:"bookerId" validate:"required"`
	BookerType   string                `json:"bookerType" validate:"required,oneof=INDIVIDUAL COMPANY"`
	Licenses     []LicenseBookingInput `json:"licenses" validate:"required,min=1,dive"`
	CheckInDate  string                `json:"checkInDate" validate:"required"`
	CheckOutDate string                `json:"checkOutDate" validate:"required"`
	Guests       []uint                `json:"guests"`
	Source       string                `json:"source" validate:"required,oneof=TRAVEL_AGENT PHONE EMAIL WEBSITE SOCIAL_MEDIA WALK_IN OTA CORPORATE MICE OTHER"`
	PayType      string                `json:"payType" validate:"required,oneof=DIRECT BILL_TO_COMPANY"`
	Notes        string                `json:"notes"`
}

type CancelReservationInput struct {
	IsCancelled       *bool `json:"isCancelled" validate:"required"`
	CancelWithCharges bool  `json:"cancelWithCharges"`
}
