package model

type MealPlan struct {
	DTO
	Name        string  `json:"name"`
	Code        string  `gorm:"index" json:"code"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	PropertyRef uint    `gorm:"index" json:"propertyRef"`
	CreatedBy   uint    `json:"createdBy"`
}

type MealPlanInput struct {
	Name        string  `json:"name" validate:"required"`
	Code        string  `json:"code" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
}
