package repository

import (
	"github.com/3bdelrahman-ibrahim/foodash/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create inserts the order together with its line snapshot.
func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Preload("Restaurant").Preload("User").
		Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByRestaurant(restaurantID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Preload("Items").Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) SetStatus(tx *gorm.DB, orderID uint, status string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("status", status).Error
}

// SetStatusUnlessAlready is a compare-and-set: the update only lands when the
// stored status differs from the one being written. RowsAffected 0 means the
// order was already in that status.
func (r *OrderRepository) SetStatusUnlessAlready(tx *gorm.DB, orderID uint, status string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status <> ?", orderID, status).
		Update("status", status)
	return res.RowsAffected, res.Error
}
