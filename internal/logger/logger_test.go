package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info", "json")
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("Accounts provisioned", zap.Int("records", 2))
	require.NoError(t, log.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Accounts provisioned", entry["msg"])
	assert.EqualValues(t, 2, entry["records"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "DEBUG", "console")
	require.NoError(t, err)

	log.Debug("Loading accounts", zap.String("path", "accounts.csv"))

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "Loading accounts")
	assert.Contains(t, buf.String(), "accounts.csv")
}

func TestNew_Invalid(t *testing.T) {
	var buf bytes.Buffer

	_, err := New(&buf, "verbose", "json")
	assert.Error(t, err)

	_, err = New(&buf, "info", "xml")
	assert.Error(t, err)
}
