package model

import (
	"time"

	"gorm.io/gorm"
)

type DTO struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type TokenClaim struct {
	UserId uint   `json:"userId"`
	Role   string `json:"role"`
}

// PagedResult wraps list responses that support page/limit queries.
type PagedResult struct {
	Rows       any   `json:"rows"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
}
