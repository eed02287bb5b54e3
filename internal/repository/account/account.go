package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/account"
)

const (
	constraintEmail       = "accounts_email_key"
	constraintSingleAdmin = "accounts_single_admin_idx"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, a entities.Account) error {
	query := `INSERT INTO accounts (account_id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(ctx, query, a.ID, a.Email, a.PasswordHash, a.Role.String(), a.CreatedAt)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			switch repository.PgConstraint(err) {
			case constraintEmail:
				return account.ErrEmailTaken
			case constraintSingleAdmin:
				return account.ErrAdminExists
			}
		}
		// конкурентная регистрация админа откатывается serializable транзакцией
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) && a.Role == entities.RoleAdmin {
			return account.ErrAdminExists
		}
		return r.wrap("create", err)
	}
	return nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	query := `SELECT account_id, email, password_hash, role, created_at
		FROM accounts
		WHERE email = $1`

	var model AccountDB
	err := r.querier.QueryRow(ctx, query, email).
		Scan(&model.ID, &model.Email, &model.PasswordHash, &model.Role, &model.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, r.wrap("getbyemail", err)
	}
	return ToDomain(&model), nil
}

// ListByRole аккаунты с ролью role, все при пустой роли.
func (r *Repository) ListByRole(ctx context.Context, role entities.AccountRole) ([]entities.Account, error) {
	query := `SELECT account_id, email, password_hash, role, created_at
		FROM accounts
		WHERE $1::text = '' OR role = $1
		ORDER BY created_at, account_id`

	rows, err := r.querier.Query(ctx, query, role.String())
	if err != nil {
		return nil, r.wrap("listbyrole", err)
	}
	defer rows.Close()

	accounts := make([]entities.Account, 0, 8)
	for rows.Next() {
		var model AccountDB
		if err := rows.Scan(&model.ID, &model.Email, &model.PasswordHash, &model.Role, &model.CreatedAt); err != nil {
			return nil, r.wrap("listbyrole", err)
		}
		accounts = append(accounts, *ToDomain(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap("listbyrole", err)
	}
	return accounts, nil
}

func (r *Repository) CountByRole(ctx context.Context) (map[entities.AccountRole]int64, error) {
	rows, err := r.querier.Query(ctx, `SELECT role, COUNT(*) FROM accounts GROUP BY role`)
	if err != nil {
		return nil, r.wrap("countbyrole", err)
	}
	defer rows.Close()

	counts := make(map[entities.AccountRole]int64)
	for rows.Next() {
		var (
			role  string
			count int64
		)
		if err := rows.Scan(&role, &count); err != nil {
			return nil, r.wrap("countbyrole", err)
		}
		counts[entities.AccountRole(role)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap("countbyrole", err)
	}
	return counts, nil
}

func (r *Repository) wrap(op string, err error) error {
	if classified := repository.ClassifyStoreError(err, account.ErrStoreUnavailable, account.ErrStorePermission); classified != nil {
		return fmt.Errorf("account repository %s: %w", op, classified)
	}
	return fmt.Errorf("unexpected account repository %s error: %w", op, err)
}
