package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	FoodID uint `json:"foodId"`
	Food   Food `json:"-"`

	// denormalized line snapshot
	FoodName string `json:"foodName"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}
