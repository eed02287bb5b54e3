package entities

import "time"

type Account struct {
	ID           string
	Email        string
	PasswordHash []byte
	Role         AccountRole
	CreatedAt    time.Time
}

type AccountRole string

const (
	RoleUser   AccountRole = "user"
	RoleDriver AccountRole = "driver"
	RoleAdmin  AccountRole = "admin"
)

const DefaultRole = RoleUser

func (r AccountRole) String() string {
	return string(r)
}

func (r AccountRole) IsValid() bool {
	switch r {
	case RoleUser, RoleDriver, RoleAdmin:
		return true
	default:
		return false
	}
}

type Session struct {
	Account   Account
	Token     string
	ExpiresAt time.Time
}

// Actor - аутентифицированный аккаунт текущего запроса.
type Actor struct {
	AccountID string
	Email     string
	Role      AccountRole
}
