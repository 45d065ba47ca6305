package model

type User struct {
	DTO
	Name        string `json:"name"`
	Email       string `gorm:"uniqueIndex" json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"-"`
	Role        string `gorm:"default:REGULAR_USER" json:"role"`
}

type RegisterInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required,min=8,max=30"`
}

type TeamRegisterInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required,min=8,max=30"`
	Role        string `json:"role" validate:"required,oneof=SUPER_ADMIN REGULAR_USER BOT"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
