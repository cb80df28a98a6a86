package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Setup(&buf, time.UTC)
	t.Cleanup(func() { Setup(os.Stdout, time.Local) })
	return &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestInfo(t *testing.T) {
	buf := capture(t)

	Info("content", "content_loaded", map[string]any{"projects": 4})

	m := decode(t, buf)
	assert.Equal(t, "info", m["level"])
	assert.Equal(t, "content", m["component"])
	assert.Equal(t, "content_loaded", m["event"])
	assert.Equal(t, float64(4), m["projects"])
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))

	ts, err := time.Parse(time.RFC3339Nano, m["ts"].(string))
	require.NoError(t, err)
	_, offset := ts.Zone()
	assert.Equal(t, 0, offset)
}

func TestError(t *testing.T) {
	buf := capture(t)

	Error("database", "db_migration_failed", errors.New("permission denied"), nil)

	m := decode(t, buf)
	assert.Equal(t, "error", m["level"])
	assert.Equal(t, "permission denied", m["error_message"])
}

func TestEmitDoesNotMutateFields(t *testing.T) {
	buf := capture(t)
	fields := map[string]any{"id": "p1"}

	Warn("content", "unparseable_date", fields)

	assert.Equal(t, map[string]any{"id": "p1"}, fields)
	assert.Equal(t, "warn", decode(t, buf)["level"])
}

func TestWrite_DefaultsLevel(t *testing.T) {
	var buf bytes.Buffer

	Write(&buf, nil, map[string]any{"event": "request"})

	m := decode(t, &buf)
	assert.Equal(t, "info", m["level"])
	assert.NotEmpty(t, m["ts"])
}

func TestSetup_NilKeepsCurrent(t *testing.T) {
	capture(t)

	Setup(nil, nil)

	assert.Equal(t, time.UTC, Location())
}
