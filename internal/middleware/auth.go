package middleware

import (
	"strings"
	"time"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/lib/token"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// TokenParser verifies bearer tokens.
type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

type AuthMiddleware struct {
	tokens TokenParser
	log    *zerolog.Logger
}

func NewAuthMiddleware(tokens TokenParser, logger *zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, log: logger}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, credentials, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(credentials)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer"
// token. On success the user id is stored under UserIDKey and added to the
// request logger.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		raw := bearerToken(c)
		if raw == "" {
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		claims, err := auth.tokens.Parse(raw)
		if err != nil {
			auth.log.Warn().
				Str("function", "RequireAuth").
				Str("request_id", GetRequestID(c)).
				Dur("duration", time.Since(start)).
				Msg("rejected bearer token")
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		// Parse already checked the subject.
		userID, _ := claims.UserID()
		c.Set(UserIDKey, userID)

		logger := GetLogger(c).With().Int64("user_id", userID).Logger()
		setLogger(c, &logger)

		auth.log.Debug().
			Str("function", "RequireAuth").
			Int64("user_id", userID).
			Str("request_id", GetRequestID(c)).
			Dur("duration", time.Since(start)).
			Msg("user authenticated successfully")

		return next(c)
	}
}
