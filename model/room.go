package model

type Room struct {
	DTO
	RoomNumber  string    `json:"roomNumber"`
	RoomCode    string    `json:"roomCode"`
	RoomTypeRef uint      `gorm:"index" json:"roomTypeRef"`
	RoomType    *RoomType `gorm:"foreignKey:RoomTypeRef" json:"roomType,omitempty"`
	PropertyRef uint      `gorm:"index" json:"propertyRef"`
	IsAvailable bool      `gorm:"default:true" json:"isAvailable"`
	Floor       int       `json:"floor,omitempty"`
}

type RoomInput struct {
	RoomNumber  string `json:"roomNumber" validate:"required"`
	RoomTypeRef uint   `json:"roomTypeRef" validate:"required"`
	Floor       int    `json:"floor"`
}
