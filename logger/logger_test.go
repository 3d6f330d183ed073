package logger

import (
	"path/filepath"
	"testing"

	"github.com/fadhlanhapp/trekshare-backend/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextFormatAndLevel(t *testing.T) {
	l, err := New(config.LoggingConfig{Level: "debug", Format: "text", Output: "stdout"})

	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	_, isText := l.Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud"})

	assert.Error(t, err)
}

func TestNew_FileOutputCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "api.log")

	l, err := New(config.LoggingConfig{Level: "info", Output: "file", FilePath: path, MaxSize: 1})

	require.NoError(t, err)
	assert.DirExists(t, filepath.Dir(path))
	_, isJSON := l.Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}
