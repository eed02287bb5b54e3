package account

import "errors"

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("password must be at least 6 characters")
	ErrInvalidRole     = errors.New("invalid role")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAdminExists        = errors.New("admin account already exists")

	ErrStoreUnavailable = errors.New("account store unavailable")
	ErrStorePermission  = errors.New("account store permission denied")
)
