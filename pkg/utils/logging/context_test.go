package logging_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/osscat-dev/osscat/pkg/utils/logging"
)

func TestCtxRequestID(t *testing.T) {
	ctx := context.Background()

	id1, ctx := logging.CtxRequestID(ctx)
	gt.V(t, id1.String()).NotEqual("")

	id2, _ := logging.CtxRequestID(ctx)
	gt.V(t, id2).Equal(id1)
}

func TestLoggerContext(t *testing.T) {
	ctx := context.Background()
	gt.V(t, logging.From(ctx)).Equal(logging.Default())

	logger := slog.Default().With(slog.String("request_id", "x"))
	ctx = logging.With(ctx, logger)
	gt.V(t, logging.From(ctx)).Equal(logger)
}

func TestCtxTime(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return fixed })
	gt.V(t, logging.CtxTime(ctx)).Equal(fixed)

	now := logging.CtxTime(context.Background())
	gt.True(t, time.Since(now) < time.Minute)
}
