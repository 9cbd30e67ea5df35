package services

import (
	"testing"

	"github.com/3bdelrahman-ibrahim/foodash/entity"
	"github.com/3bdelrahman-ibrahim/foodash/pkg/apperr"
	"github.com/3bdelrahman-ibrahim/foodash/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogService(t *testing.T, db *gorm.DB) *CatalogService {
	t.Helper()
	return NewCatalogService(repository.NewRestaurantRepository(db), repository.NewFoodRepository(db))
}

func TestTopRatedOrdersByRating(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	require.NoError(t, db.Create(&entity.Restaurant{Name: "Mid", Rating: 3.5}).Error)
	require.NoError(t, db.Create(&entity.Restaurant{Name: "Best", Rating: 4.9}).Error)
	require.NoError(t, db.Create(&entity.Restaurant{Name: "Worst", Rating: 2.1}).Error)

	rests, err := svc.TopRated()
	require.NoError(t, err)
	require.Len(t, rests, 3)
	assert.Equal(t, "Best", rests[0].Name)
	assert.Equal(t, "Mid", rests[1].Name)
	assert.Equal(t, "Worst", rests[2].Name)
}

func TestTopRatedEmptyCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	_, err := svc.TopRated()
	assert.True(t, apperr.IsNotFound(err))
}

func TestMostLovedOrdersByLoveCount(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	require.NoError(t, db.Create(&entity.Restaurant{Name: "Liked", LoveCount: 10}).Error)
	require.NoError(t, db.Create(&entity.Restaurant{Name: "Loved", LoveCount: 99}).Error)

	rests, err := svc.MostLoved()
	require.NoError(t, err)
	require.Len(t, rests, 2)
	assert.Equal(t, "Loved", rests[0].Name)
}

func TestListFoodsForIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	rest := seedRestaurant(t, db, "Pasta Place")
	seedFood(t, db, rest.ID, "Carbonara", 10)
	seedFood(t, db, rest.ID, "Lasagna", 12)

	first, err := svc.ListFoodsFor(rest.ID)
	require.NoError(t, err)
	second, err := svc.ListFoodsFor(rest.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, "Carbonara", first[0].Name)
}

func TestListFoodsForUnknownRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	_, err := svc.ListFoodsFor(999)
	assert.True(t, apperr.IsNotFound(err))
}

func TestRestaurantImageRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	withImage, err := svc.CreateRestaurant(
		&CreateRestaurantIn{Name: "Pictured"},
		&Upload{Data: []byte{0xFF, 0xD8, 0xFF}, ContentType: "image/jpeg"},
		nil,
	)
	require.NoError(t, err)
	require.NotNil(t, withImage.Image)
	assert.Equal(t, "image/jpeg", withImage.Image.ContentType)
	assert.NotEmpty(t, withImage.Image.Data)
	assert.Nil(t, withImage.AdImage)

	plain, err := svc.CreateRestaurant(&CreateRestaurantIn{Name: "Plain"}, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, plain.Image)
}

func TestGetRestaurantIncludesOrders(t *testing.T) {
	db := newTestDB(t)
	catalogSvc := newCatalogService(t, db)
	orderSvc := newOrderService(t, db)

	rest := seedRestaurant(t, db, "Pasta Place")
	food := seedFood(t, db, rest.ID, "Carbonara", 10)

	placed, err := orderSvc.Place(1, placeOrderIn(rest.ID, food.ID))
	require.NoError(t, err)

	detail, err := catalogSvc.GetRestaurant(rest.ID)
	require.NoError(t, err)
	require.Len(t, detail.Orders, 1)
	assert.Equal(t, placed.Code, detail.Orders[0].Code)
	assert.Equal(t, entity.StatusPending, detail.Orders[0].Status)

	listed, err := catalogSvc.ListRestaurants()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Empty(t, listed[0].Orders)
}

func TestCreateFoodValidatesRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	_, err := svc.CreateFood(999, &CreateFoodIn{Name: "Orphan", Price: 5}, nil)
	assert.True(t, apperr.IsNotFound(err))

	rest := seedRestaurant(t, db, "Pasta Place")
	_, err = svc.CreateFood(rest.ID, &CreateFoodIn{Name: "Bad", Price: -1}, nil)
	assert.True(t, apperr.IsValidation(err))

	food, err := svc.CreateFood(rest.ID, &CreateFoodIn{Name: "Carbonara", Price: 10}, nil)
	require.NoError(t, err)
	assert.Equal(t, rest.ID, food.RestaurantID)
}
