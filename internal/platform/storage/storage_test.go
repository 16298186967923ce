package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/bookkeeping_core/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := Open(context.Background(), &config.Config{StorageDriver: config.StorageMemory}, logger)
	require.NoError(t, err)
	defer st.Close()

	require.NotNil(t, st.Memory)
	require.NotNil(t, st.Repos)
	assert.NotNil(t, st.Repos.UnitOfWork)
	assert.NotNil(t, st.Repos.PayrollRepo)
}

func TestOpen_UnknownDriver(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := Open(context.Background(), &config.Config{StorageDriver: "csv"}, logger)
	assert.Error(t, err)
}
