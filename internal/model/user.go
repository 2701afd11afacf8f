package model

// User is a row of the users table.
//
// Password holds the stored credential (a bcrypt hash) and is never
// serialised back to API clients.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
}

// NewUser is the payload for inserting a user.
type NewUser struct {
	Name     string
	Email    string
	Password string
}
