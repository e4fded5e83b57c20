package postgres

import (
	"context"
	"testing"
	"time"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balanceCols() []string {
	return []string{"customer_id", "cash", "grams", "version", "updated_at"}
}

func TestBalanceRepo_GetByCustomer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM balances WHERE customer_id").
		WithArgs("9876543210").
		WillReturnRows(pgxmock.NewRows(balanceCols()).
			AddRow("9876543210", decimal.RequireFromString("7920.00"), decimal.RequireFromString("1.3200"), int64(3), now))

	b, err := repo.GetByCustomer(context.Background(), "9876543210")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "7920", b.Cash.String())
	assert.Equal(t, "1.32", b.Grams.String())
	assert.Equal(t, int64(3), b.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_GetByCustomer_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM balances").
		WithArgs("0000000000").
		WillReturnRows(pgxmock.NewRows(balanceCols()))

	b, err := NewBalanceRepo(mock).GetByCustomer(context.Background(), "0000000000")
	assert.NoError(t, err)
	assert.Nil(t, b)
}

func TestBalanceRepo_LockAndUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO balances .+ ON CONFLICT").
		WithArgs("9876543210").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectQuery("SELECT .+ FROM balances WHERE customer_id .+ FOR UPDATE").
		WithArgs("9876543210").
		WillReturnRows(pgxmock.NewRows(balanceCols()).
			AddRow("9876543210", decimal.NewFromInt(100), decimal.RequireFromString("0.0166"), int64(1), time.Now()))
	mock.ExpectExec("UPDATE balances SET cash").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), "9876543210", int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	tx, err := mock.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureExists(ctx, tx, "9876543210"))

	b, err := repo.GetForUpdate(ctx, tx, "9876543210")
	require.NoError(t, err)
	next := b.Credit(decimal.NewFromInt(50), decimal.RequireFromString("0.0083"))

	require.NoError(t, repo.Update(ctx, tx, &next))
	assert.Equal(t, int64(2), next.Version)
	assert.Equal(t, "150", next.Cash.String())
	assert.Equal(t, "0.0249", next.Grams.String())
	require.NoError(t, tx.Commit(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_Update_VersionConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE balances").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), "9876543210", int64(4)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	b := &domain.Balance{CustomerID: "9876543210", Version: 4}
	err = NewBalanceRepo(mock).Update(ctx, tx, b)
	assert.ErrorIs(t, err, ports.ErrVersionConflict)
	assert.Equal(t, int64(4), b.Version)
}
