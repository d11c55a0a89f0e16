package users

// UserRepo stores accounts for the development API.
type UserRepo interface {
	Create(user *User) error
	GetByEmail(email string) (*User, error)
	GetByID(id int) (*User, error)
	GetByUsername(username string) (*User, error)
	SetVerified(email string, verified bool) error
	SetPasswordHash(email, hash string) error
}
