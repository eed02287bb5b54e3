package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"logistics/internal/entities"
	"logistics/pkg/tx"
)

type Service struct {
	repository Repository
	txManager  TxManager
	passwords  PasswordHasher
	tokens     TokenIssuer
	now        func() time.Time
	newID      func() string
}

func New(repository Repository, txManager TxManager, passwords PasswordHasher, tokens TokenIssuer) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
		passwords:  passwords,
		tokens:     tokens,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

// Register создает аккаунт и сразу открывает сессию.
// Проверка единственного админа и вставка идут в одной serializable транзакции.
func (s *Service) Register(ctx context.Context, email, password string, role entities.AccountRole) (*entities.Session, error) {
	email = normalizeEmail(email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPassword(password) {
		return nil, ErrInvalidPassword
	}
	if role == "" {
		role = entities.DefaultRole
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	account := entities.Account{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now(),
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if role == entities.RoleAdmin {
			counts, err := s.repository.CountByRole(ctx)
			if err != nil {
				return fmt.Errorf("count admins: %w", err)
			}
			if counts[entities.RoleAdmin] > 0 {
				return ErrAdminExists
			}
		}
		return s.repository.Create(ctx, account)
	})
	if err != nil {
		// второй админ в параллельной транзакции виден только на COMMIT
		if role == entities.RoleAdmin && errors.Is(err, tx.ErrSerializationFailure) {
			return nil, fmt.Errorf("register: %w", ErrAdminExists)
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	return s.openSession(account)
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*entities.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("sign in: %w", err)
	}

	if err := s.passwords.Compare(account.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(*account)
}

// CountByRole для админского обзора.
func (s *Service) CountByRole(ctx context.Context) (map[entities.AccountRole]int64, error) {
	counts, err := s.repository.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("count accounts: %w", err)
	}
	return counts, nil
}

func (s *Service) openSession(account entities.Account) (*entities.Session, error) {
	token, expiresAt, err := s.tokens.Issue(account)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	account.PasswordHash = nil
	return &entities.Session{
		Account:   account,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ListAccounts аккаунты для админа, пустая роль значит все. Хеши паролей не отдаются.
func (s *Service) ListAccounts(ctx context.Context, role entities.AccountRole) ([]entities.Account, error) {
	if role != "" && !role.IsValid() {
		return nil, ErrInvalidRole
	}

	accounts, err := s.repository.ListByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	for i := range accounts {
		accounts[i].PasswordHash = nil
	}
	return accounts, nil
}
