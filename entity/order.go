package entity

import (
	"gorm.io/gorm"
)

const (
	StatusPending = "Pending"

	// StatusConfirmedByDelivery may be set at most once per order;
	// a second confirmation is rejected.
	StatusConfirmedByDelivery = "Confirmed_by_delivery"
)

type Order struct {
	gorm.Model
	Code string `json:"code" gorm:"uniqueIndex"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// caller-supplied at checkout, stored as-is
	Total int64 `json:"total"`

	Status string `json:"status" gorm:"default:Pending"`

	// contact snapshot taken at checkout
	CustomerName      string `json:"customerName"`
	CustomerAddress   string `json:"customerAddress"`
	CustomerPhone     string `json:"customerPhone"`
	RestaurantName    string `json:"restaurantName"`
	RestaurantAddress string `json:"restaurantAddress"`
	RestaurantPhone   string `json:"restaurantPhone"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
