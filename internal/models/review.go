package models

import "gorm.io/gorm"

// Review represents a star-rated review written by a user.
type Review struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	Author     User   `json:"author" gorm:"foreignKey:UserID;references:ID"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" gorm:"type:text" validate:"required"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
