package services

import (
	"errors"

	"github.com/3bdelrahman-ibrahim/foodash/entity"
	"github.com/3bdelrahman-ibrahim/foodash/pkg/apperr"
	"github.com/3bdelrahman-ibrahim/foodash/repository"

	"gorm.io/gorm"
)

const rankingLimit = 10

type CatalogService struct {
	restRepo *repository.RestaurantRepository
	foodRepo *repository.FoodRepository
}

func NewCatalogService(rr *repository.RestaurantRepository, fr *repository.FoodRepository) *CatalogService {
	return &CatalogService{restRepo: rr, foodRepo: fr}
}

type CreateRestaurantIn struct {
	Name          string  `form:"name" binding:"required"`
	Description   string  `form:"description"`
	CuisineType   string  `form:"cuisineType"`
	Address       string  `form:"address"`
	PhoneNumber   string  `form:"phoneNumber"`
	DeliveryPrice int64   `form:"deliveryPrice"`
	DeliveryTime  string  `form:"deliveryTime"`
	StartTime     string  `form:"startTime"`
	EndTime       string  `form:"endTime"`
	Rating        float64 `form:"rating"`
	RatingCount   int     `form:"ratingCount"`
	LoveCount     int     `form:"loveCount"`
}

type Upload struct {
	Data        []byte
	ContentType string
}

func (s *CatalogService) CreateRestaurant(in *CreateRestaurantIn, image, adImage *Upload) (*RestaurantView, error) {
	rest := &entity.Restaurant{
		Name:          in.Name,
		Description:   in.Description,
		CuisineType:   in.CuisineType,
		Address:       in.Address,
		PhoneNumber:   in.PhoneNumber,
		DeliveryPrice: in.DeliveryPrice,
		DeliveryTime:  in.DeliveryTime,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		Rating:        in.Rating,
		RatingCount:   in.RatingCount,
		LoveCount:     in.LoveCount,
	}
	if image != nil {
		rest.Image = image.Data
		rest.ImageType = image.ContentType
		rest.ImageSize = int64(len(image.Data))
	}
	if adImage != nil {
		rest.AdImage = adImage.Data
		rest.AdImageType = adImage.ContentType
		rest.AdImageSize = int64(len(adImage.Data))
	}
	if err := s.restRepo.Create(rest); err != nil {
		return nil, apperr.NewInternalError(err)
	}
	view := NewRestaurantView(*rest)
	return &view, nil
}

func (s *CatalogService) ListRestaurants() ([]RestaurantView, error) {
	rests, err := s.restRepo.List()
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	return NewRestaurantViews(rests), nil
}

func (s *CatalogService) GetRestaurant(id uint) (*RestaurantView, error) {
	rest, err := s.restRepo.FindWithOrders(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("restaurant not found")
		}
		return nil, apperr.NewInternalError(err)
	}
	view := NewRestaurantView(*rest)
	return &view, nil
}

// TopRated returns up to ten restaurants by descending rating. An empty
// catalog reads as not found, matching the public contract.
func (s *CatalogService) TopRated() ([]RestaurantView, error) {
	rests, err := s.restRepo.TopByRating(rankingLimit)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	if len(rests) == 0 {
		return nil, apperr.NewNotFoundError("no top restaurants found")
	}
	return NewRestaurantViews(rests), nil
}

func (s *CatalogService) MostLoved() ([]RestaurantView, error) {
	rests, err := s.restRepo.TopByLoveCount(rankingLimit)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	if len(rests) == 0 {
		return nil, apperr.NewNotFoundError("no top restaurants found")
	}
	return NewRestaurantViews(rests), nil
}

func (s *CatalogService) ListFoods() ([]FoodView, error) {
	foods, err := s.foodRepo.List()
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	return NewFoodViews(foods), nil
}

func (s *CatalogService) ListFoodsFor(restaurantID uint) ([]FoodView, error) {
	ok, err := s.restRepo.Exists(restaurantID)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	if !ok {
		return nil, apperr.NewNotFoundError("restaurant not found")
	}
	foods, err := s.foodRepo.ListByRestaurant(restaurantID)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	return NewFoodViews(foods), nil
}

type CreateFoodIn struct {
	Name  string `form:"name" binding:"required"`
	Price int64  `form:"price"`
}

func (s *CatalogService) CreateFood(restaurantID uint, in *CreateFoodIn, image *Upload) (*FoodView, error) {
	if in.Price < 0 {
		return nil, apperr.NewValidationError("price must not be negative")
	}
	ok, err := s.restRepo.Exists(restaurantID)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	if !ok {
		return nil, apperr.NewNotFoundError("restaurant not found")
	}

	food := &entity.Food{
		Name:         in.Name,
		Price:        in.Price,
		RestaurantID: restaurantID,
	}
	if image != nil {
		food.Image = image.Data
		food.ImageType = image.ContentType
		food.ImageSize = int64(len(image.Data))
	}
	if err := s.foodRepo.Create(food); err != nil {
		return nil, apperr.NewInternalError(err)
	}
	view := NewFoodView(*food)
	return &view, nil
}
