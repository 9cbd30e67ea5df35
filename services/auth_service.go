package services

import (
	"errors"
	"strings"
	"time"

	"github.com/3bdelrahman-ibrahim/foodash/entity"
	"github.com/3bdelrahman-ibrahim/foodash/pkg/apperr"
	"github.com/3bdelrahman-ibrahim/foodash/repository"
	"github.com/3bdelrahman-ibrahim/foodash/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type SignupIn struct {
	Name         string `form:"name" binding:"required"`
	Phone        string `form:"phone"`
	Location     string `form:"location"`
	Email        string `form:"email" binding:"required,email"`
	Password     string `form:"password" binding:"required,min=6"`
	Role         string `form:"role"`
	RestaurantID *uint  `form:"restaurantId"`
}

type SignupOut struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

func (s *AuthService) Signup(in *SignupIn, image []byte, imageType string) (*SignupOut, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	if count > 0 {
		return nil, apperr.NewConflictError("email already in use")
	}

	if len(image) == 0 {
		return nil, apperr.NewValidationError("no file uploaded")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}

	role := in.Role
	if role == "" {
		role = "customer"
	}

	user := &entity.User{
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
		Location:     strings.TrimSpace(in.Location),
		Email:        email,
		Password:     string(hashed),
		Role:         role,
		RestaurantID: in.RestaurantID,
		Image:        image,
		ImageType:    imageType,
		ImageSize:    int64(len(image)),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.NewInternalError(err)
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}

	return &SignupOut{User: NewUserView(*user), Token: token}, nil
}

type SigninOut struct {
	UserID       uint   `json:"userId"`
	Token        string `json:"token"`
	Role         string `json:"role"`
	RestaurantID *uint  `json:"restaurantId"`
}

func (s *AuthService) Signin(email, password string) (*SigninOut, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewUnauthorizedError("invalid credentials")
		}
		return nil, apperr.NewInternalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.NewUnauthorizedError("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}

	return &SigninOut{
		UserID:       user.ID,
		Token:        token,
		Role:         user.Role,
		RestaurantID: user.RestaurantID,
	}, nil
}
