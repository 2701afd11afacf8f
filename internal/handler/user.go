package handler

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	auth *service.AuthService
}

func NewUserHandler(s *server.Server, auth *service.AuthService) *UserHandler {
	return &UserHandler{Handler: NewHandler(s), auth: auth}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *RegisterRequest) Validate() error {
	return validation.Struct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// EmptyRequest is bound by endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

func (h *UserHandler) Register(c echo.Context, req *RegisterRequest) (*model.User, error) {
	return h.auth.Register(c.Request().Context(), req.Name, req.Email, req.Password)
}

func (h *UserHandler) Login(c echo.Context, req *LoginRequest) (*service.Session, error) {
	return h.auth.Login(c.Request().Context(), req.Email, req.Password)
}

func (h *UserHandler) Me(c echo.Context, _ *EmptyRequest) (*model.User, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.auth.Me(c.Request().Context(), userID)
}
