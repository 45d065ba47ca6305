package model

type RoomType struct {
	DTO
	Name         string   `json:"name"`
	Code         string   `gorm:"index" json:"code"`
	BasePrice    float64  `json:"basePrice"`
	MaxOccupancy int      `json:"maxOccupancy"`
	Description  string   `json:"description,omitempty"`
	Amenities    []string `gorm:"serializer:json" json:"amenities"`
	Images       []string `gorm:"serializer:json" json:"images"`
	Policies     []string `gorm:"serializer:json" json:"policies"`
	PropertyRef  uint     `gorm:"index" json:"propertyRef"`
}

type RoomTypeInput struct {
	Name         string   `json:"name" validate:"required"`
	Code         string   `json:"code" validate:"required"`
	BasePrice    float64  `json:"basePrice" validate:"gte=0"`
	MaxOccupancy int      `json:"maxOccupancy" validate:"required,min=1"`
	Description  string   `json:"description"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
	Policies     []string `json:"policies"`
}
