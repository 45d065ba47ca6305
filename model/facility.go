package model

type PropertyFacility struct {
	DTO
	Name        string `json:"name"`
	IsPublished bool   `gorm:"default:true" json:"isPublished"`
	PropertyRef uint   `gorm:"index" json:"propertyRef"`
	CreatedBy   uint   `json:"createdBy"`
}

type FacilityInput struct {
	Name        string `json:"name" validate:"required"`
	IsPublished *bool  `json:"isPublished"`
}
