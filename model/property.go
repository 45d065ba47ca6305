package model

type Address struct {
	Locality string `json:"locality,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
}

type Property struct {
	DTO
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Slug         string   `gorm:"uniqueIndex" json:"slug"`
	PhoneNumber  string   `json:"phoneNumber,omitempty"`
	WebsiteURL   string   `json:"websiteURL,omitempty"`
	MapURL       string   `json:"mapURL,omitempty"`
	Latitude     string   `json:"latitude,omitempty"`
	Longitude    string   `json:"longitude,omitempty"`
	Address      Address  `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	CheckInTime  string   `json:"checkInTime,omitempty"`
	CheckOutTime string   `json:"checkOutTime,omitempty"`
	Amenities    []string `gorm:"serializer:json" json:"amenities"`
	Description  string   `json:"description,omitempty"`
	Policies     []string `gorm:"serializer:json" json:"policies"`
	Images       []string `gorm:"serializer:json" json:"images"`
	Ratings      float64  `json:"ratings"`
}

// UserProperty links a user to a property with a property-level role.
type UserProperty struct {
	DTO
	UserRef     uint   `gorm:"index" json:"userRef"`
	PropertyRef uint   `gorm:"index" json:"propertyRef"`
	Role        string `gorm:"default:RECEPTION" json:"role"`
}

type CreatePropertyInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}
