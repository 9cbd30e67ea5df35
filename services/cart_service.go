package services

import (
	"errors"

	"github.com/3bdelrahman-ibrahim/foodash/entity"
	"github.com/3bdelrahman-ibrahim/foodash/pkg/apperr"
	"github.com/3bdelrahman-ibrahim/foodash/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	cartRepo *repository.CartRepository
	foodRepo *repository.FoodRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, fr *repository.FoodRepository) *CartService {
	return &CartService{DB: db, cartRepo: cr, foodRepo: fr}
}

type CartLineView struct {
	entity.CartItem
	Food *FoodView `json:"food,omitempty"`
}

type CartView struct {
	entity.Cart
	Items []CartLineView `json:"items"`
}

func newCartView(c *entity.Cart) *CartView {
	v := &CartView{Cart: *c, Items: make([]CartLineView, 0, len(c.Items))}
	for _, line := range c.Items {
		food := NewFoodView(line.Food)
		v.Items = append(v.Items, CartLineView{CartItem: line, Food: &food})
	}
	return v
}

func (s *CartService) Get(userID uint) (*CartView, error) {
	cart, err := s.cartRepo.FindByUser(s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("cart not found")
		}
		return nil, apperr.NewInternalError(err)
	}
	return newCartView(cart), nil
}

type AddItemIn struct {
	RestaurantID uint `json:"restaurantId" binding:"required"`
	FoodID       uint `json:"foodId" binding:"required"`
	Quantity     int  `json:"quantity"`
}

// AddItem accumulates a line into the user's single live cart. A cart scoped
// to a different restaurant is discarded wholesale first; no partial merge.
func (s *CartService) AddItem(userID uint, in *AddItemIn) (*CartView, error) {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	food, err := s.foodRepo.GetBasics(in.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("food item not found")
		}
		return nil, apperr.NewInternalError(err)
	}
	if food.RestaurantID != in.RestaurantID {
		return nil, apperr.NewValidationError("food not in this restaurant")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.cartRepo.FindByUser(tx, userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if cart != nil && cart.RestaurantID != in.RestaurantID {
			if err := s.cartRepo.DeleteCart(tx, cart.ID); err != nil {
				return err
			}
			cart = nil
		}

		if cart == nil {
			cart = &entity.Cart{UserID: userID, RestaurantID: in.RestaurantID}
			if err := s.cartRepo.Create(tx, cart); err != nil {
				return err
			}
		}

		line, err := s.cartRepo.FindLineByFood(tx, cart.ID, in.FoodID)
		switch {
		case err == nil:
			line.Quantity += in.Quantity
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = &entity.CartItem{
				CartID:    cart.ID,
				FoodID:    food.ID,
				Quantity:  in.Quantity,
				UnitPrice: food.Price,
			}
		default:
			return err
		}
		if err := s.cartRepo.SaveLine(tx, line); err != nil {
			return err
		}
		return s.cartRepo.RecomputeTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}

	return s.Get(userID)
}

// SetQuantityByFood replaces the quantity on the line holding the given food.
// A non-positive quantity drops the line.
func (s *CartService) SetQuantityByFood(userID, foodID uint, quantity int) (*CartView, error) {
	return s.setQuantity(userID, quantity, func(cartID uint) (*entity.CartItem, error) {
		line, err := s.cartRepo.FindLineByFood(s.DB, cartID, foodID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("food item not found in cart")
		}
		return line, err
	})
}

// SetQuantityByLine is the same operation keyed by the line's own id.
func (s *CartService) SetQuantityByLine(userID, lineID uint, quantity int) (*CartView, error) {
	return s.setQuantity(userID, quantity, func(cartID uint) (*entity.CartItem, error) {
		line, err := s.cartRepo.FindLineByID(s.DB, cartID, lineID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("item not found in cart")
		}
		return line, err
	})
}

func (s *CartService) setQuantity(userID uint, quantity int, locate func(cartID uint) (*entity.CartItem, error)) (*CartView, error) {
	cart, err := s.cartRepo.FindByUser(s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("cart not found")
		}
		return nil, apperr.NewInternalError(err)
	}

	line, err := locate(cart.ID)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperr.NewInternalError(err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if quantity <= 0 {
			if err := s.cartRepo.DeleteLine(tx, line.ID); err != nil {
				return err
			}
		} else {
			line.Quantity = quantity
			if err := s.cartRepo.SaveLine(tx, line); err != nil {
				return err
			}
		}
		return s.cartRepo.RecomputeTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}

	return s.Get(userID)
}

func (s *CartService) RemoveByLine(userID, lineID uint) error {
	return s.remove(userID, func(cartID uint) (*entity.CartItem, error) {
		line, err := s.cartRepo.FindLineByID(s.DB, cartID, lineID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("item not found in cart")
		}
		return line, err
	})
}

func (s *CartService) RemoveByFood(userID, foodID uint) error {
	return s.remove(userID, func(cartID uint) (*entity.CartItem, error) {
		line, err := s.cartRepo.FindLineByFood(s.DB, cartID, foodID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("food item not found in cart")
		}
		return line, err
	})
}

func (s *CartService) remove(userID uint, locate func(cartID uint) (*entity.CartItem, error)) error {
	cart, err := s.cartRepo.FindByUser(s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFoundError("cart not found")
		}
		return apperr.NewInternalError(err)
	}

	line, err := locate(cart.ID)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return err
		}
		return apperr.NewInternalError(err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.cartRepo.DeleteLine(tx, line.ID); err != nil {
			return err
		}
		return s.cartRepo.RecomputeTotal(tx, cart.ID)
	})
	if err != nil {
		return apperr.NewInternalError(err)
	}
	return nil
}

func (s *CartService) Clear(userID uint) error {
	cart, err := s.cartRepo.FindByUser(s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFoundError("cart not found")
		}
		return apperr.NewInternalError(err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.cartRepo.DeleteCart(tx, cart.ID)
	})
	if err != nil {
		return apperr.NewInternalError(err)
	}
	return nil
}
