package logrus

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	logger := NewWithLogger(base)

	logger.Warn("Like rolled back", map[string]interface{}{"video_id": "7"})

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "Like rolled back", entry.Message)
	assert.Equal(t, "7", entry.Data["video_id"])
}

func TestLogger_NilFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	logger := NewWithLogger(base)

	logger.Info("Server starting", nil)

	require.Len(t, hook.Entries, 1)
	assert.Empty(t, hook.LastEntry().Data)
}

func TestLogger_LevelFilters(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.InfoLevel)
	logger := NewWithLogger(base)

	logger.Debug("hidden", nil)
	logger.Error("shown", nil)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "shown", hook.LastEntry().Message)
}

func TestNew_JSONFormat(t *testing.T) {
	logger := New(Options{Level: "debug", Format: "json"})
	var buf bytes.Buffer
	logger.entry.SetOutput(&buf)

	logger.Debug("Loaded page", map[string]interface{}{"page": 2})

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Loaded page", decoded["msg"])
	assert.Equal(t, float64(2), decoded["page"])
	assert.Equal(t, "debug", decoded["level"])
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	logger := New(Options{Level: "chatty"})

	assert.Equal(t, logrus.InfoLevel, logger.entry.GetLevel())
}

func TestNew_FileOutputIsRotated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger := New(Options{Format: "text", File: path, MaxSizeMB: 1, MaxBackups: 1})

	_, ok := logger.entry.Out.(interface{ Rotate() error })
	assert.True(t, ok, "file output should be a rotating writer")
}
