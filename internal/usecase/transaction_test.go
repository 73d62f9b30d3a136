package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/xavierca1/soluvia-crm/internal/usecase"
)

func TestTransactionRunsAllOperations(t *testing.T) {
	var calls []string
	txn := usecase.NewTransaction(zaptest.NewLogger(t))
	txn.AddOperation("a", func(context.Context) error { calls = append(calls, "a"); return nil })
	txn.AddCompensation("undo_a", func(context.Context) error { calls = append(calls, "undo_a"); return nil })
	txn.AddOperation("b", func(context.Context) error { calls = append(calls, "b"); return nil })

	require.NoError(t, txn.Execute(context.Background()))
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestTransactionCompensatesInReverse(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	txn := usecase.NewTransaction(zaptest.NewLogger(t))
	txn.AddOperation("a", func(context.Context) error { calls = append(calls, "a"); return nil })
	txn.AddCompensation("undo_a", func(context.Context) error { calls = append(calls, "undo_a"); return nil })
	txn.AddOperation("b", func(context.Context) error { calls = append(calls, "b"); return nil })
	txn.AddCompensation("undo_b", func(context.Context) error { calls = append(calls, "undo_b"); return errors.New("ignored") })
	txn.AddOperation("c", func(context.Context) error { return boom })

	err := txn.Execute(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "operation 'c' failed")
	assert.Equal(t, []string{"a", "b", "undo_b", "undo_a"}, calls)
}
