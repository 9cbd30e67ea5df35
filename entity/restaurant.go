package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	CuisineType string `json:"cuisineType"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`

	DeliveryPrice int64  `json:"deliveryPrice"`
	DeliveryTime  string `json:"deliveryTime"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`

	Rating      float64 `json:"rating"`
	RatingCount int     `json:"ratingCount"`
	LoveCount   int     `json:"loveCount"`

	Image     []byte `json:"-" gorm:"type:blob"`
	ImageType string `json:"-"`
	ImageSize int64  `json:"-"`

	AdImage     []byte `json:"-" gorm:"type:blob"`
	AdImageType string `json:"-"`
	AdImageSize int64  `json:"-"`

	Foods  []Food  `json:"-"`
	Orders []Order `json:"-"`
}
