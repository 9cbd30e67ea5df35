package entity

import (
	"gorm.io/gorm"
)

type Food struct {
	gorm.Model
	Name  string `json:"name"`
	Price int64  `json:"price"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Image     []byte `json:"-" gorm:"type:blob"`
	ImageType string `json:"-"`
	ImageSize int64  `json:"-"`
}
