package services

import (
	"github.com/3bdelrahman-ibrahim/foodash/entity"
	"github.com/3bdelrahman-ibrahim/foodash/utils"
)

// Response views: the stored blob columns never leave the entity as raw
// bytes; the outer Image fields shadow them with the base64 transport form.

type UserView struct {
	entity.User
	Image *utils.Image `json:"imageUrl"`
}

func NewUserView(u entity.User) UserView {
	return UserView{User: u, Image: utils.EncodeImage(u.Image, u.ImageType)}
}

func NewUserViews(users []entity.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserView(u))
	}
	return out
}

type RestaurantView struct {
	entity.Restaurant
	Image   *utils.Image `json:"imageUrl"`
	AdImage *utils.Image `json:"adImage"`
	Orders  []OrderView  `json:"orders,omitempty"`
}

func NewRestaurantView(r entity.Restaurant) RestaurantView {
	v := RestaurantView{
		Restaurant: r,
		Image:      utils.EncodeImage(r.Image, r.ImageType),
		AdImage:    utils.EncodeImage(r.AdImage, r.AdImageType),
	}
	for _, o := range r.Orders {
		v.Orders = append(v.Orders, NewOrderView(o, false))
	}
	return v
}

func NewRestaurantViews(rests []entity.Restaurant) []RestaurantView {
	out := make([]RestaurantView, 0, len(rests))
	for _, r := range rests {
		out = append(out, NewRestaurantView(r))
	}
	return out
}

type FoodView struct {
	entity.Food
	Image *utils.Image `json:"imageUrl"`
}

func NewFoodView(f entity.Food) FoodView {
	return FoodView{Food: f, Image: utils.EncodeImage(f.Image, f.ImageType)}
}

func NewFoodViews(foods []entity.Food) []FoodView {
	out := make([]FoodView, 0, len(foods))
	for _, f := range foods {
		out = append(out, NewFoodView(f))
	}
	return out
}

type OrderView struct {
	entity.Order
	Restaurant *RestaurantView `json:"restaurant,omitempty"`
	User       *UserView       `json:"user,omitempty"`
}

func NewOrderView(o entity.Order, withRelations bool) OrderView {
	v := OrderView{Order: o}
	if withRelations {
		rest := NewRestaurantView(o.Restaurant)
		user := NewUserView(o.User)
		v.Restaurant = &rest
		v.User = &user
	}
	return v
}
