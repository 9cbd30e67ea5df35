package repository

import (
	"github.com/3bdelrahman-ibrahim/foodash/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// Reads take the handle explicitly so callers inside a transaction stay on
// the transaction connection instead of a second pooled one.
func (r *CartRepository) FindByUser(db *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := db.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Food").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) Create(tx *gorm.DB, c *entity.Cart) error {
	return tx.Create(c).Error
}

// DeleteCart removes the cart and its lines for good. Hard delete, so the
// unique user index frees up for the replacement cart.
func (r *CartRepository) DeleteCart(tx *gorm.DB, cartID uint) error {
	if err := tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Cart{}, cartID).Error
}

func (r *CartRepository) FindLineByFood(db *gorm.DB, cartID, foodID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	err := db.Where("cart_id = ? AND food_id = ?", cartID, foodID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) FindLineByID(db *gorm.DB, cartID, lineID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	err := db.Where("id = ? AND cart_id = ?", lineID, cartID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) SaveLine(tx *gorm.DB, line *entity.CartItem) error {
	return tx.Save(line).Error
}

func (r *CartRepository) DeleteLine(tx *gorm.DB, lineID uint) error {
	return tx.Unscoped().Delete(&entity.CartItem{}, lineID).Error
}

// RecomputeTotal rebuilds the cart total from the current lines. Every
// mutation path runs through here so the total can never drift.
func (r *CartRepository) RecomputeTotal(tx *gorm.DB, cartID uint) error {
	var lines []entity.CartItem
	if err := tx.Where("cart_id = ?", cartID).Find(&lines).Error; err != nil {
		return err
	}
	var total int64
	for _, line := range lines {
		total += line.UnitPrice * int64(line.Quantity)
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).Update("total", total).Error
}
