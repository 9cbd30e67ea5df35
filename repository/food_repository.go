package repository

import (
	"github.com/3bdelrahman-ibrahim/foodash/entity"

	"gorm.io/gorm"
)

type FoodRepository struct {
	DB *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{DB: db}
}

func (r *FoodRepository) Create(food *entity.Food) error {
	return r.DB.Create(food).Error
}

func (r *FoodRepository) List() ([]entity.Food, error) {
	var foods []entity.Food
	err := r.DB.Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) ListByRestaurant(restaurantID uint) ([]entity.Food, error) {
	var foods []entity.Food
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id").Find(&foods).Error
	return foods, err
}

// GetBasics fetches just what cart/order pricing needs.
func (r *FoodRepository) GetBasics(id uint) (entity.Food, error) {
	var food entity.Food
	err := r.DB.Select("id, name, price, restaurant_id").First(&food, id).Error
	return food, err
}
