package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInto_From_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := Into(context.Background(), logger)
	require.Same(t, logger, From(ctx))
}

func TestFrom_EmptyContext_ReturnsDefault(t *testing.T) {
	t.Parallel()

	require.Same(t, slog.Default(), From(context.Background()))
}

func TestFrom_NilLoggerInContext_ReturnsDefault(t *testing.T) {
	t.Parallel()

	ctx := Into(context.Background(), nil)
	require.Same(t, slog.Default(), From(ctx))
}

// Логгер из контекста реально пишет в свой handler, а не в глобальный.
func TestFrom_WritesThroughContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := Into(context.Background(), logger)

	From(ctx).Info("hello", slog.String("k", "v"))

	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "k=v")
}
