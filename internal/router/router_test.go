package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/lib/token"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnreachable = errors.New("database unreachable")

// recordingQuerier fails every statement after recording it.
type recordingQuerier struct {
	sql  []string
	args [][]any
}

func (q *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql = append(q.sql, sql)
	q.args = append(q.args, args)
	return nil, errUnreachable
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql = append(q.sql, sql)
	q.args = append(q.args, args)
	return errRow{}
}

type errRow struct{}

func (errRow) Scan(...any) error { return errUnreachable }

func newTestRouter(t *testing.T) (*echo.Echo, *server.Server, *recordingQuerier) {
	t.Helper()
	return newRouterWith(t, zerolog.Nop(), 0)
}

func newRouterWith(t *testing.T, logger zerolog.Logger, rateLimit float64) (*echo.Echo, *server.Server, *recordingQuerier) {
	t.Helper()

	authCfg := config.AuthConfig{SecretKey: "router-secret", TokenTTL: 5}
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server:  config.ServerConfig{CORSAllowedOrigins: []string{"*"}, RateLimit: rateLimit},
			Auth:    authCfg,
		},
		Logger: &logger,
		Tokens: token.NewManager(authCfg),
	}

	q := &recordingQuerier{}
	repos := repository.NewRepositories(q, &logger)
	services := service.NewServices(s, repos)
	return NewRouter(s, handler.NewHandlers(s, services)), s, q
}

func do(e *echo.Echo, method, target, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouter_UnknownRoute(t *testing.T) {
	e, _, _ := newTestRouter(t)

	rec := do(e, http.MethodGet, "/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decode(t, rec).Message)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_StatusWithoutDatabase(t *testing.T) {
	e, _, _ := newTestRouter(t)

	rec := do(e, http.MethodGet, "/status", "", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	e, _, q := newTestRouter(t)

	for _, r := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodGet, "/api/v1/reservations"},
		{http.MethodPost, "/api/v1/reservations"},
		{http.MethodPost, "/api/v1/properties"},
		{http.MethodPost, "/api/v1/properties/1/reviews"},
	} {
		rec := do(e, r.method, r.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, r.path)
	}
	assert.Empty(t, q.sql)
}

func TestRouter_SearchBindsFilters(t *testing.T) {
	e, _, q := newTestRouter(t)

	rec := do(e, http.MethodGet,
		"/api/v1/properties?city=Van&minimum_price_per_night=50&maximum_price_per_night=150&minimum_rating=4&limit=3", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, q.args, 1)
	assert.Equal(t, []any{"%Van%", int64(5000), int64(15000), 4.0, 3}, q.args[0])
}

func TestRouter_SearchRejectsBadFilter(t *testing.T) {
	e, _, q := newTestRouter(t)

	rec := do(e, http.MethodGet, "/api/v1/properties?minimum_rating=high", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []errs.FieldError{{Field: "minimum_rating", Error: "must be a number"}}, decode(t, rec).Errors)
	assert.Empty(t, q.sql)
}

func TestRouter_RegisterValidation(t *testing.T) {
	e, _, q := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/users", `{"name":"Ann","email":"nope","password":"x"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, decode(t, rec).Errors, 2)
	assert.Empty(t, q.sql)
}

func TestRouter_ReservationsUseTokenSubject(t *testing.T) {
	e, s, q := newTestRouter(t)
	signed, _, err := s.Tokens.Issue(77, "guest@example.com")
	require.NoError(t, err)

	rec := do(e, http.MethodGet, "/api/v1/reservations?limit=4", "", signed)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, q.args, 1)
	assert.Equal(t, []any{int64(77), 4}, q.args[0])
}

func TestRouter_CreateReservationRejectsBadDates(t *testing.T) {
	e, s, q := newTestRouter(t)
	signed, _, err := s.Tokens.Issue(77, "guest@example.com")
	require.NoError(t, err)

	rec := do(e, http.MethodPost, "/api/v1/reservations",
		`{"property_id":1,"start_date":"2026-05-10","end_date":"2026-05-01"}`, signed)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "RESERVATION_INVALID", decode(t, rec).Code)
	assert.Empty(t, q.sql)
}

func TestRouter_SearchRejectsUnstorablePrice(t *testing.T) {
	e, _, q := newTestRouter(t)

	rec := do(e, http.MethodGet, "/api/v1/properties?maximum_price_per_night=184467440737095517", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []errs.FieldError{
		{Field: "maximum_price_per_night", Error: "must be between 0 and 21474836"},
	}, decode(t, rec).Errors)
	assert.Empty(t, q.sql)
}

func TestRouter_CreatePropertyRejectsUnstorableCost(t *testing.T) {
	e, s, q := newTestRouter(t)
	signed, _, err := s.Tokens.Issue(3, "owner@example.com")
	require.NoError(t, err)

	body := `{"title":"Loft","thumbnail_photo_url":"https://img.example.com/t.jpg",` +
		`"cover_photo_url":"https://img.example.com/c.jpg","cost_per_night":184467440737095517,` +
		`"street":"1 Main St","city":"Vancouver","province":"BC","post_code":"V5K","country":"Canada"}`
	rec := do(e, http.MethodPost, "/api/v1/properties", body, signed)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []errs.FieldError{
		{Field: "cost_per_night", Error: "must not exceed 21474836"},
	}, decode(t, rec).Errors)
	assert.Empty(t, q.sql)
}

func TestRouter_RateLimitHitIsLogged(t *testing.T) {
	var buf bytes.Buffer
	e, _, _ := newRouterWith(t, zerolog.New(&buf), 1)

	first := do(e, http.MethodGet, "/status", "", "")
	second := do(e, http.MethodGet, "/status", "", "")

	assert.Equal(t, http.StatusServiceUnavailable, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	requestID := second.Header().Get("X-Request-ID")
	require.NotEmpty(t, requestID)

	var hit map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["message"] == "rate limit hit" {
			hit = entry
		}
	}
	require.NotNil(t, hit, buf.String())
	assert.Equal(t, requestID, hit["request_id"])
	assert.Equal(t, "/status", hit["endpoint"])
}
