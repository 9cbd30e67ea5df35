package repository

import (
	"github.com/3bdelrahman-ibrahim/foodash/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) List() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Find(&rests).Error
	return rests, err
}

// FindWithOrders resolves the restaurant's order list for the detail view.
func (r *RestaurantRepository) FindWithOrders(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Preload("Orders").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RestaurantRepository) TopByRating(limit int) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Order("rating DESC").Limit(limit).Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) TopByLoveCount(limit int) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Order("love_count DESC").Limit(limit).Find(&rests).Error
	return rests, err
}
