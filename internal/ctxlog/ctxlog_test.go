package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	ctx, logger := With(ctx, "request_id", "r-1")
	logger.Info("first")
	FromContext(ctx).Info("second")

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("request_id=r-1")))
}
