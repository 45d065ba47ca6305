package model

import "time"

type ProfileAddress struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

type VerificationDetails struct {
	IdType       string     `json:"idType,omitempty"`
	PlaceOfIssue string     `json:"placeOfIssue,omitempty"`
	IssuedBy     string     `json:"issuedBy,omitempty"`
	DateOfIssue  *time.Time `json:"dateOfIssue,omitempty"`
	DateOfExpiry *time.Time `json:"dateOfExpiry,omitempty"`
}

type GSTDetails struct {
	BeneficiaryName string `json:"beneficiaryName,omitempty"`
	GSTIN           string `json:"gstin,omitempty"`
	AddressLine1    string `json:"addressLine1,omitempty"`
	AddressLine2    string `json:"addressLine2,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
}

type ContactPerson struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type IndividualProfile struct {
	DTO
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	Email        string              `gorm:"index" json:"email"`
	Phone        string              `json:"phone"`
	DateOfBirth  *time.Time          `json:"dateOfBirth,omitempty"`
	IsSuspended  bool                `json:"isSuspended"`
	Address      ProfileAddress      `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Verification VerificationDetails `gorm:"embedded;embeddedPrefix:verification_" json:"verificationDetails"`
	Preferences  []string            `gorm:"serializer:json" json:"preferences"`
	Notes        string              `json:"notes,omitempty"`
	PropertyRef  uint                `gorm:"index" json:"propertyRef"`
	CreatedBy    uint                `json:"createdBy"`
	UpdatedBy    *uint               `json:"updatedBy,omitempty"`
}

type CompanyProfile struct {
	DTO
	CompanyName   string         `json:"companyName"`
	CompanyCode   string         `gorm:"index" json:"companyCode"`
	ContactEmail  string         `gorm:"index" json:"contactEmail"`
	ContactPhone  string         `json:"contactPhone"`
	IsSuspended   bool           `json:"isSuspended"`
	GSTDetails    GSTDetails     `gorm:"embedded;embeddedPrefix:gst_" json:"gstDetails"`
	ContactPerson ContactPerson  `gorm:"embedded;embeddedPrefix:contact_" json:"contactPerson"`
	Address       ProfileAddress `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Notes         string         `json:"notes,omitempty"`
	PropertyRef   uint           `gorm:"index" json:"propertyRef"`
	CreatedBy     uint           `json:"createdBy"`
	UpdatedBy     *uint          `json:"updatedBy,omitempty"`
}

type IndividualProfileInput struct {
	FirstName   string         `json:"firstName" validate:"required"`
	LastName    string         `json:"lastName" validate:"required"`
	Email       string         `json:"email" validate:"required,email"`
	Phone       string         `json:"phone" validate:"required"`
	DateOfBirth string         `json:"dateOfBirth"`
	Address     ProfileAddress `json:"address"`
	Preferences []string       `json:"preferences"`
	Notes       string         `json:"notes"`
}

type CompanyProfileInput struct {
	CompanyName   string         `json:"companyName" validate:"required"`
	CompanyCode   string         `json:"companyCode" validate:"required"`
	ContactEmail  string         `json:"contactEmail" validate:"required,email"`
	ContactPhone  string         `json:"contactPhone" validate:"required"`
	GSTDetails    GSTDetails     `json:"gstDetails"`
	ContactPerson ContactPerson  `json:"contactPerson"`
	Address       ProfileAddress `json:"address"`
	Notes         string         `json:"notes"`
}
