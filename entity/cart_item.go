package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	FoodID uint `json:"foodId"`
	Food   Food `json:"-"`

	Quantity int `json:"quantity"`

	// catalog price at the time the line was added
	UnitPrice int64 `json:"unitPrice"`
}
