package services

import (
	"testing"

	"github.com/3bdelrahman-ibrahim/foodash/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemAccumulatesQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	rest := seedRestaurant(t, db, "Pasta Place")
	food := seedFood(t, db, rest.ID, "Carbonara", 10)

	_, err := svc.AddItem(1, &AddItemIn{RestaurantID: rest.ID, FoodID: food.ID, Quantity: 2})
	require.NoError(t, err)
	cart, err := svc.AddItem(1, &AddItemIn{RestaurantID: rest.ID, FoodID: food.ID, Quantity: 3})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, int64(50), cart.Total)
}

func TestAddItemSwitchingRestaurantReplacesCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	restA := seedRestaurant(t, db, "Pasta Place")
	restB := seedRestaurant(t, db, "Burger Barn")
	foodA := seedFood(t, db, restA.ID, "Carbonara", 10)
	foodB := seedFood(t, db, restB.ID, "Cheeseburger", 7)

	_, err := svc.AddItem(1, &AddItemIn{RestaurantID: restA.ID, FoodID: foodA.ID, Quantity: 2})
	require.NoError(t, err)

	cart, err := svc.AddItem(1, &AddItemIn{RestaurantID: restB.ID, FoodID: foodB.ID, Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, restB.ID, cart.RestaurantID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, foodB.ID, cart.Items[0].FoodID)
	assert.Equal(t, int64(7), cart.Total)
}

func TestAddItemUnknownFood(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	rest := seedRestaurant(t, db, "Pasta Place")

	_, err := svc.AddItem(1, &AddItemIn{RestaurantID: rest.ID, FoodID: 999, Quantity: 1})
	assert.True(t, apperr.IsNotFound(err))
}

func TestAddItemFoodFromAnotherRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	restA := seedRestaurant(t, db, "Pasta Place")
	restB := seedRestaurant(t, db, "Burger Barn")
	foodB := seedFood(t, db, restB.ID, "Cheeseburger", 7)

	_, err := svc.AddItem(1, &AddItemIn{RestaurantID: restA.ID, FoodID: foodB.ID, Quantity: 1})
	assert.True(t, apperr.IsValidation(err))
}

func TestSetQuantityByFoodRecomputesTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	rest := seedRestaurant(t, db, "Pasta Place")
	food := seedFood(t, db, rest.ID, "Carbonara", 10)

	_, err := svc.AddItem(1, &AddItemIn{RestaurantID: rest.ID, FoodID: food.ID, Quantity: 2})
	require.NoError(t, err)

	cart, err := svc.SetQuantityByFood(1, food.ID, 5)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, int64(50), cart.Total)
}

func TestSetQuantityByLineRecomputesTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	rest := seedRestaurant(t, db, "Pasta Place")
	food := seedFood(t, db, rest.ID, "Carbonara", 10)

	cart, err := svc.AddItem(1, &AddItemIn{RestaurantID: rest.ID, FoodID: food.ID, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	cart, err = svc.SetQuantityByLine(1, cart.Items[0].ID, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, int64(50), cart.Total)
}

func TestSetQuantityMissingLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	rest := seedRestaurant(t, db, "Pasta Place")
	food := seedFood(t, db, rest.ID, "Carbonara", 10)
	other := seedFood(t, db, rest.ID, "Lasagna", 12)

	_, err := svc.AddItem(1, &AddItemIn{RestaurantID: rest.ID, FoodID: food.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.SetQuantityByFood(1, other.ID, 3)
	assert.True(t, apperr.IsNotFound(err))
}

func TestSetQuantityNoCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	_, err := svc.SetQuantityByFood(1, 1, 3)
	assert.True(t, apperr.IsNotFound(err))
}

func TestRemoveByFoodRecomputesTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	rest := seedRestaurant(t, db, "Pasta Place")
	food := seedFood(t, db, rest.ID, "Carbonara", 10)
	other := seedFood(t, db, rest.ID, "Lasagna", 12)

	_, err := svc.AddItem(1, &AddItemIn{RestaurantID: rest.ID, FoodID: food.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddItem(1, &AddItemIn{RestaurantID: rest.ID, FoodID: other.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveByFood(1, food.ID))

	cart, err := svc.Get(1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, other.ID, cart.Items[0].FoodID)
	assert.Equal(t, int64(12), cart.Total)
}

func TestRemoveByLineRecomputesTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	rest := seedRestaurant(t, db, "Pasta Place")
	food := seedFood(t, db, rest.ID, "Carbonara", 10)

	cart, err := svc.AddItem(1, &AddItemIn{RestaurantID: rest.ID, FoodID: food.ID, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	require.NoError(t, svc.RemoveByLine(1, cart.Items[0].ID))

	cart, err = svc.Get(1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.Total)
}

func TestClearCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	rest := seedRestaurant(t, db, "Pasta Place")
	food := seedFood(t, db, rest.ID, "Carbonara", 10)

	_, err := svc.AddItem(1, &AddItemIn{RestaurantID: rest.ID, FoodID: food.ID, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(1))

	_, err = svc.Get(1)
	assert.True(t, apperr.IsNotFound(err))

	// the user can start a fresh cart afterwards
	_, err = svc.AddItem(1, &AddItemIn{RestaurantID: rest.ID, FoodID: food.ID, Quantity: 1})
	require.NoError(t, err)
}

func TestClearWithoutCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	err := svc.Clear(1)
	assert.True(t, apperr.IsNotFound(err))
}
