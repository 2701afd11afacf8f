package service

import (
	"context"
	"time"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the part of the Query Service the auth flow needs.
type UserStore interface {
	GetUserWithEmail(ctx context.Context, email string) (*model.User, error)
	GetUserWithID(ctx context.Context, id int64) (*model.User, error)
	AddUser(ctx context.Context, u model.NewUser) (*model.User, error)
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(userID int64, email string) (string, time.Time, error)
}

type AuthService struct {
	users  UserStore
	tokens TokenIssuer
}

func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Session is what a successful login returns.
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

func invalidCredentials() *errs.HTTPError {
	return errs.NewUnauthorizedError("Invalid email or password", true)
}

// Register hashes the password with bcrypt and stores the new user.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewBadRequestError("Password cannot be used", true, nil, nil, nil)
	}

	user, err := s.users.AddUser(ctx, model.NewUser{
		Name:     name,
		Email:    email,
		Password: string(hash),
	})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return user, nil
}

// Login checks the credentials and issues an access token. Unknown emails
// and wrong passwords get the same 401.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.GetUserWithEmail(ctx, email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, invalidCredentials()
		}
		return nil, sqlerr.HandleError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, invalidCredentials()
	}

	signed, expiresAt, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &Session{Token: signed, ExpiresAt: expiresAt, User: user}, nil
}

// Me returns the authenticated user.
func (s *AuthService) Me(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.GetUserWithID(ctx, userID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return user, nil
}
