package services

import (
	"errors"

	"github.com/3bdelrahman-ibrahim/foodash/entity"
	"github.com/3bdelrahman-ibrahim/foodash/pkg/apperr"
	"github.com/3bdelrahman-ibrahim/foodash/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	repo     *repository.OrderRepository
	cartRepo *repository.CartRepository
	restRepo *repository.RestaurantRepository
	foodRepo *repository.FoodRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	restRepo *repository.RestaurantRepository,
	foodRepo *repository.FoodRepository,
) *OrderService {
	return &OrderService{DB: db, repo: repo, cartRepo: cartRepo, restRepo: restRepo, foodRepo: foodRepo}
}

type OrderItemIn struct {
	FoodID   uint `json:"foodId"`
	Quantity int  `json:"quantity"`
}

type PlaceOrderIn struct {
	RestaurantID      uint          `json:"restaurantId"`
	Items             []OrderItemIn `json:"items"`
	Total             int64         `json:"total"`
	CustomerName      string        `json:"customerName"`
	CustomerAddress   string        `json:"customerAddress"`
	CustomerPhone     string        `json:"customerPhone"`
	RestaurantName    string        `json:"restaurantName"`
	RestaurantAddress string        `json:"restaurantAddress"`
	RestaurantPhone   string        `json:"restaurantPhone"`
}

func (in *PlaceOrderIn) complete() bool {
	return in.RestaurantID != 0 && len(in.Items) > 0 && in.Total != 0 &&
		in.CustomerName != "" && in.CustomerAddress != "" && in.CustomerPhone != "" &&
		in.RestaurantName != "" && in.RestaurantAddress != "" && in.RestaurantPhone != ""
}

// Place converts a supplied item list into an order snapshot: contact fields
// and line prices are denormalized onto the order, the caller-supplied total
// is stored as-is, and the user's cart is cleared in the same transaction.
func (s *OrderService) Place(userID uint, in *PlaceOrderIn) (*OrderView, error) {
	if userID == 0 || !in.complete() {
		return nil, apperr.NewValidationError("incomplete order data")
	}

	ok, err := s.restRepo.Exists(in.RestaurantID)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	if !ok {
		return nil, apperr.NewNotFoundError("restaurant not found")
	}

	lines := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		food, err := s.foodRepo.GetBasics(it.FoodID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NewValidationError("order references an unknown food item")
			}
			return nil, apperr.NewInternalError(err)
		}
		if food.RestaurantID != in.RestaurantID {
			return nil, apperr.NewValidationError("food not in this restaurant")
		}
		lines = append(lines, entity.OrderItem{
			FoodID:   food.ID,
			FoodName: food.Name,
			Price:    food.Price,
			Quantity: it.Quantity,
		})
	}

	order := &entity.Order{
		Code:              uuid.NewString(),
		UserID:            userID,
		RestaurantID:      in.RestaurantID,
		Total:             in.Total,
		Status:            entity.StatusPending,
		CustomerName:      in.CustomerName,
		CustomerAddress:   in.CustomerAddress,
		CustomerPhone:     in.CustomerPhone,
		RestaurantName:    in.RestaurantName,
		RestaurantAddress: in.RestaurantAddress,
		RestaurantPhone:   in.RestaurantPhone,
		Items:             lines,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(tx, order); err != nil {
			return err
		}
		cart, err := s.cartRepo.FindByUser(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		return s.cartRepo.DeleteCart(tx, cart.ID)
	})
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}

	view := NewOrderView(*order, false)
	return &view, nil
}

// UpdateStatus accepts any status value, with one guard: confirming delivery
// twice is a conflict rather than a silent no-op.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*OrderView, error) {
	if status == "" {
		return nil, apperr.NewValidationError("status is required")
	}

	if _, err := s.repo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("order not found")
		}
		return nil, apperr.NewInternalError(err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if status == entity.StatusConfirmedByDelivery {
			affected, err := s.repo.SetStatusUnlessAlready(tx, orderID, status)
			if err != nil {
				return err
			}
			if affected == 0 {
				return apperr.NewConflictError("order already confirmed by delivery")
			}
			return nil
		}
		return s.repo.SetStatus(tx, orderID, status)
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperr.NewInternalError(err)
	}

	order, err := s.repo.FindByID(orderID)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	view := NewOrderView(*order, false)
	return &view, nil
}

func (s *OrderService) List() ([]OrderView, error) {
	orders, err := s.repo.ListAll()
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderView(o, true))
	}
	return out, nil
}

func (s *OrderService) ListForRestaurant(restaurantID uint) ([]OrderView, error) {
	orders, err := s.repo.ListByRestaurant(restaurantID)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderView(o, false))
	}
	return out, nil
}

func (s *OrderService) ListForUser(userID uint) ([]OrderView, error) {
	orders, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderView(o, false))
	}
	return out, nil
}
