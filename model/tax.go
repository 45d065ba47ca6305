package model

type Tax struct {
	DTO
	Name                 string   `json:"name"`
	Percentage           float64  `json:"percentage"`
	ApplicableCategories []string `gorm:"serializer:json" json:"applicableCategories"`
	PropertyRef          uint     `gorm:"index" json:"propertyRef"`
	CreatedBy            uint     `json:"createdBy"`
}

type TaxInput struct {
	Name                 string   `json:"name" validate:"required"`
	Percentage           float64  `json:"percentage" validate:"gte=0,lte=100"`
	ApplicableCategories []string `json:"applicableCategories" validate:"dive,oneof=Room 'Meal Plan' Other"`
}
