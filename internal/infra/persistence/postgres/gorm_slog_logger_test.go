package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"passport/config"
	deliverycontext "passport/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))

	return entry
}

func TestGormSlogLogger_TraceUsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	gormLogger := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

	reqLogger := newBufferLogger(&scoped).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	gormLogger.Trace(ctx, time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, assert.AnError)

	assert.Zero(t, base.Len())
	entry := decodeLastLine(t, &scoped)
	assert.Equal(t, "SQL query failed", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "SELECT 1", entry["sql"])
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	gormLogger := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM recipes WHERE id = '1'", 0
	}, gorm.ErrRecordNotFound)

	assert.Zero(t, buf.Len())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	gormLogger := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	gormLogger.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT * FROM recipes", 12
	}, nil)

	entry := decodeLastLine(t, &buf)
	assert.Equal(t, "SQL slow query", entry["msg"])
	assert.EqualValues(t, 12, entry["rows"])
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	gormLogger := newGormSlogLogger(newBufferLogger(&buf), &config.Config{}).LogMode(logger.Silent)

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, assert.AnError)
	gormLogger.Error(context.Background(), "boom %d", 1)

	assert.Zero(t, buf.Len())
}

func TestGormSlogLogger_IgnoresCanceledContext(t *testing.T) {
	var buf bytes.Buffer
	gormLogger := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM recipes", 0
	}, context.Canceled)

	assert.Zero(t, buf.Len())
}

func TestGormSlogLogger_DebugModeTruncatesLongStatements(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	gormLogger := newGormSlogLogger(newBufferLogger(&buf), cfg)

	longSQL := "SELECT * FROM favorites WHERE recipe_id IN (" + strings.Repeat("'x',", maxLoggedSQL) + "'x')"
	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return longSQL, 3
	}, nil)

	entry := decodeLastLine(t, &buf)
	assert.Equal(t, "SQL query", entry["msg"])
	assert.True(t, strings.HasSuffix(entry["sql"].(string), "...(truncated)"))
	assert.Len(t, entry["sql"].(string), maxLoggedSQL+len("...(truncated)"))
}
