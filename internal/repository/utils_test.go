package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BrandishEconomy/internal/domain"
)

type rollbackTx struct {
	err error
}

func (rollbackTx) Commit(context.Context) error { return nil }
func (r rollbackTx) Rollback(context.Context) error { return r.err }

func TestSafeRollback(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantLog bool
	}{
		{"rolled back", nil, false},
		{"already committed", domain.ErrTxClosed, false},
		{"wrapped closed", fmt.Errorf("memory: %w", domain.ErrTxClosed), false},
		{"connection lost", errors.New("conn reset"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			prev := slog.Default()
			slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
			t.Cleanup(func() { slog.SetDefault(prev) })

			SafeRollback(context.Background(), rollbackTx{err: tt.err})

			if tt.wantLog {
				assert.Contains(t, buf.String(), LogMsgRollbackFailed)
				assert.Contains(t, buf.String(), "conn reset")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
