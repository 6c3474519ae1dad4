package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/vinayak/app/services"
	"github.com/shashiranjanraj/vinayak/pkg/logger"
	"github.com/shashiranjanraj/vinayak/pkg/response"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// Register handles POST /api/user/register.
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.UserInput
	if err := decodeJSON(r, &in); err != nil {
		response.BadRequest(w, "Invalid registration payload.")
		return
	}

	user, err := c.service.Register(r.Context(), in)
	if err != nil {
		if ve, ok := services.AsValidation(err); ok {
			response.BadRequest(w, ve.Message)
			return
		}
		if errors.Is(err, services.ErrDuplicate) {
			response.Conflict(w, "Email already registered.")
			return
		}
		logger.WithCtx(r.Context()).Error("register user failed", "error", err)
		response.ServerError(w, err.Error())
		return
	}

	response.Created(w, map[string]interface{}{
		"message": "User registered!",
		"user":    user,
	})
}
