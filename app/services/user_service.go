package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shashiranjanraj/vinayak/app/models"
	"github.com/shashiranjanraj/vinayak/app/repositories"
	"github.com/shashiranjanraj/vinayak/pkg/validate"
)

// UserInput is the POST /api/user/register request body.
type UserInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

type UserService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register persists a new customer. Duplicate emails surface as
// ErrDuplicate so the handler can answer 409.
func (s *UserService) Register(ctx context.Context, in UserInput) (*models.User, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, &ErrValidation{Message: "Name and a valid email are required."}
	}

	u := &models.User{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.ToLower(strings.TrimSpace(in.Email)),
		Phone: in.Phone,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return u, nil
}
