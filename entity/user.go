package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"default:customer" json:"role"`

	// set for restaurant staff accounts
	RestaurantID *uint `json:"restaurantId"`

	Image     []byte `json:"-" gorm:"type:blob"`
	ImageType string `json:"-"`
	ImageSize int64  `json:"-"`

	Cart   *Cart   `gorm:"foreignKey:UserID" json:"-"`
	Orders []Order `json:"-"`
}
