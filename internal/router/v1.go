package router

import (
	"net/http"

	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/labstack/echo/v4"
)

func registerV1Routes(g *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	auth := m.Auth.RequireAuth

	users := g.Group("/users")
	users.POST("", handler.Handle(h.Users.Handler, h.Users.Register, http.StatusCreated, &handler.RegisterRequest{}))
	users.POST("/login", handler.Handle(h.Users.Handler, h.Users.Login, http.StatusOK, &handler.LoginRequest{}))
	users.GET("/me", handler.Handle(h.Users.Handler, h.Users.Me, http.StatusOK, &handler.EmptyRequest{}), auth)

	properties := g.Group("/properties")
	properties.GET("", handler.Handle(h.Properties.Handler, h.Properties.Search, http.StatusOK, &handler.SearchPropertiesRequest{}))
	properties.POST("", handler.Handle(h.Properties.Handler, h.Properties.Create, http.StatusCreated, &handler.CreatePropertyRequest{}), auth)
	properties.GET("/:id/reviews", handler.Handle(h.Reviews.Handler, h.Reviews.List, http.StatusOK, &handler.ListReviewsRequest{}))
	properties.POST("/:id/reviews", handler.Handle(h.Reviews.Handler, h.Reviews.Create, http.StatusCreated, &handler.CreateReviewRequest{}), auth)

	reservations := g.Group("/reservations", auth)
	reservations.GET("", handler.Handle(h.Reservations.Handler, h.Reservations.List, http.StatusOK, &handler.ListReservationsRequest{}))
	reservations.POST("", handler.Handle(h.Reservations.Handler, h.Reservations.Create, http.StatusCreated, &handler.CreateReservationRequest{}))
}
