package services

import (
	"fmt"
	"testing"

	"github.com/3bdelrahman-ibrahim/foodash/entity"
	"github.com/3bdelrahman-ibrahim/foodash/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a named in-memory database so every connection in the
// pool sees the same data, isolated per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Food{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newCartService(t *testing.T, db *gorm.DB) *CartService {
	t.Helper()
	return NewCartService(db, repository.NewCartRepository(db), repository.NewFoodRepository(db))
}

func newOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewFoodRepository(db),
	)
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) *entity.Restaurant {
	t.Helper()
	rest := &entity.Restaurant{Name: name, Address: "1 Test St", PhoneNumber: "555-0100"}
	require.NoError(t, db.Create(rest).Error)
	return rest
}

func seedFood(t *testing.T, db *gorm.DB, restaurantID uint, name string, price int64) *entity.Food {
	t.Helper()
	food := &entity.Food{Name: name, Price: price, RestaurantID: restaurantID}
	require.NoError(t, db.Create(food).Error)
	return food
}
