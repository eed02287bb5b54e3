package account

import (
	"time"

	"logistics/internal/entities"
)

type AccountDB struct {
	ID           string
	Email        string
	PasswordHash []byte
	Role         string
	CreatedAt    time.Time
}

func ToDomain(a *AccountDB) *entities.Account {
	if a == nil {
		return nil
	}
	return &entities.Account{
		ID:           a.ID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         entities.AccountRole(a.Role),
		CreatedAt:    a.CreatedAt.UTC(),
	}
}
