package tx

import (
	"context"
	"errors"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrSerializationFailure = "40001"

// ErrSerializationFailure транзакция откатилась из-за конкурентной транзакции,
// в том числе на COMMIT.
var ErrSerializationFailure = errors.New("transaction serialization failure")

// Manager оборачивает trm менеджер, транзакция пробрасывается через ctx
// и подхватывается querier.Querier.
type Manager struct {
	internal *manager.Manager
	settings pgxv5.Settings
}

func New(db pgxv5.Transactional) *Manager {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.Serializable}),
	)
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		settings: txSettings,
	}
}

// Do выполняет fn в serializable транзакции.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return markSerializationFailure(m.internal.DoWithSettings(ctx, m.settings, fn))
}

func markSerializationFailure(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrSerializationFailure && !errors.Is(err, ErrSerializationFailure) {
		return fmt.Errorf("%w: %w", ErrSerializationFailure, err)
	}
	return err
}
