package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a user's rating and comment on a product.
type Review struct {
	ID      string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Rating  float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string  `json:"comment" validate:"omitempty,max=1000"`

	ProductID string  `json:"product_id" gorm:"index;type:varchar(36)" validate:"required"`
	UserID    *string `json:"user_id" gorm:"index;type:varchar(36)"` // nullable: kept when the user is deleted

	User    *User    `json:"user,omitempty"`
	Product *Product `json:"product,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
