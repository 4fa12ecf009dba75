package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/pkg/dbmetrics"
)

type mockTx struct {
	commits   int
	rollbacks int
	commitErr error
}

func (m *mockTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (m *mockTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (m *mockTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (m *mockTx) Commit() error {
	m.commits++
	return m.commitErr
}

func (m *mockTx) Rollback() error {
	m.rollbacks++
	return nil
}

type mockBeginner struct {
	tx       *mockTx
	begins   int
	opts     *sql.TxOptions
	beginErr error
}

func (m *mockBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	m.begins++
	m.opts = opts
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	return m.tx, nil
}

func newManager() (*TransactionManager, *mockBeginner) {
	db := &mockBeginner{tx: &mockTx{}}
	return NewTransactionManager(db), db
}

func TestTransactionManager_Commit(t *testing.T) {
	m, db := newManager()

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, sql.LevelSerializable, db.opts.Isolation)
	assert.Equal(t, 1, db.tx.commits)
	assert.Equal(t, 0, db.tx.rollbacks)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	m, db := newManager()
	fnErr := errors.New("conflict")

	err := m.Do(context.Background(), func(ctx context.Context) error { return fnErr })

	assert.ErrorIs(t, err, fnErr)
	assert.Equal(t, sql.LevelReadCommitted, db.opts.Isolation)
	assert.Equal(t, 0, db.tx.commits)
	assert.Equal(t, 1, db.tx.rollbacks)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	m, db := newManager()

	assert.PanicsWithValue(t, "boom", func() {
		_ = m.Do(context.Background(), func(ctx context.Context) error { panic("boom") })
	})

	assert.Equal(t, 0, db.tx.commits)
	assert.Equal(t, 1, db.tx.rollbacks)
}

func TestTransactionManager_NestedReusesTransaction(t *testing.T) {
	m, db := newManager()

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Equal(t, 1, db.begins)
	assert.Equal(t, 1, db.tx.commits)
}

func TestTransactionManager_TransactionErrors(t *testing.T) {
	t.Run("begin", func(t *testing.T) {
		m, db := newManager()
		db.beginErr = errors.New("pool exhausted")

		err := m.Do(context.Background(), func(ctx context.Context) error { return nil })
		assert.ErrorIs(t, err, ErrTransaction)
	})

	t.Run("commit", func(t *testing.T) {
		m, db := newManager()
		db.tx.commitErr = errors.New("serialization failure")

		err := m.Do(context.Background(), func(ctx context.Context) error { return nil })
		assert.ErrorIs(t, err, ErrTransaction)
	})
}
