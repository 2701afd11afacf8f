package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type UserRepository struct {
	base
}

func NewUserRepository(db Querier, logger *zerolog.Logger) *UserRepository {
	return &UserRepository{base{db: db, log: logger}}
}

const (
	getUserWithEmailSQL = `SELECT * FROM users WHERE email = $1;`
	getUserWithIDSQL    = `SELECT * FROM users WHERE id = $1;`
	addUserSQL          = `INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING *;`
)

// GetUserWithEmail looks a user up by exact (case-sensitive) email.
func (r *UserRepository) GetUserWithEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, "GetUserWithEmail", getUserWithEmailSQL, email)
}

func (r *UserRepository) GetUserWithID(ctx context.Context, id int64) (*model.User, error) {
	return r.getOne(ctx, "GetUserWithID", getUserWithIDSQL, id)
}

func (r *UserRepository) getOne(ctx context.Context, op, sql string, key any) (*model.User, error) {
	rows, err := r.query(ctx, op, sql, key)
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s query: %w", op, err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.User])
	if err != nil {
		if IsNotFound(err) {
			return nil, sqlerr.TableNotFound("users")
		}
		return nil, fmt.Errorf("failed to collect row from users: %w", err)
	}

	return user, nil
}

// AddUser inserts a user and returns the stored row including its new id.
// Password is stored as given; hashing is the caller's job.
func (r *UserRepository) AddUser(ctx context.Context, u model.NewUser) (*model.User, error) {
	r.trace("AddUser", addUserSQL, []any{u.Name, u.Email, redacted})

	rows, err := r.db.Query(ctx, addUserSQL, u.Name, u.Email, u.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to execute AddUser query: %w", err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect inserted user: %w", err)
	}

	return user, nil
}
