package middleware

import (
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	// UserIDKey holds the authenticated user's id (int64) in the Echo
	// context.
	UserIDKey = "user_id"

	LoggerKey = "logger"
)

// ContextEnhancer attaches a request-scoped logger carrying request_id,
// method, path and ip (plus user_id once authenticated).
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if userID, ok := GetUserID(c); ok {
				contextLogger = contextLogger.With().Int64("user_id", userID).Logger()
			}

			setLogger(c, &contextLogger)
			return next(c)
		}
	}
}

// setLogger stores logger in both the Echo context and the request's
// context.Context so code below the handler can reach it with
// zerolog.Ctx.
func setLogger(c echo.Context, logger *zerolog.Logger) {
	c.Set(LoggerKey, logger)
	ctx := logger.WithContext(c.Request().Context())
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetUserID returns the id stored by RequireAuth.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(UserIDKey).(int64)
	return userID, ok
}

// GetLogger returns the request-scoped logger, or a no-op logger when
// EnhanceContext did not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
