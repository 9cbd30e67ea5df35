package services

import (
	"errors"
	"strings"

	"github.com/3bdelrahman-ibrahim/foodash/pkg/apperr"
	"github.com/3bdelrahman-ibrahim/foodash/repository"

	"gorm.io/gorm"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List() ([]UserView, error) {
	users, err := s.repo.List()
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	return NewUserViews(users), nil
}

func (s *UserService) Get(id uint) (*UserView, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("user not found")
		}
		return nil, apperr.NewInternalError(err)
	}
	view := NewUserView(*user)
	return &view, nil
}

type UpdateProfileIn struct {
	Name     string `form:"name"`
	Phone    string `form:"phone"`
	Location string `form:"location"`
}

// UpdateProfile touches name, phone and location; the stored image is only
// replaced when a new payload arrives.
func (s *UserService) UpdateProfile(id uint, in *UpdateProfileIn, image *Upload) (*UserView, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("user not found")
		}
		return nil, apperr.NewInternalError(err)
	}

	updates := map[string]any{
		"name":     strings.TrimSpace(in.Name),
		"phone":    strings.TrimSpace(in.Phone),
		"location": strings.TrimSpace(in.Location),
	}
	if image != nil {
		updates["image"] = image.Data
		updates["image_type"] = image.ContentType
		updates["image_size"] = int64(len(image.Data))
	}

	if err := s.repo.Update(id, updates); err != nil {
		return nil, apperr.NewInternalError(err)
	}
	return s.Get(id)
}
