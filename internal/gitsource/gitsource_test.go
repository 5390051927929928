package gitsource_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factflip/backend/internal/gitsource"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestSync_ExistingDirIsNotARepo(t *testing.T) {
	dir := t.TempDir()

	err := gitsource.Sync(context.Background(), "https://example.com/decks.git", dir, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open existing repo")
}

func TestSync_CloneFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-remote")
	dest := filepath.Join(t.TempDir(), "decks")

	err := gitsource.Sync(context.Background(), missing, dest, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clone repo")
}

func TestSync_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gitsource.Sync(ctx, "https://example.com/decks.git", filepath.Join(t.TempDir(), "decks"), logger)
	assert.Error(t, err)
}
