package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	InitLogger(Options{Level: "debug", File: file, MaxSize: 1})

	Logger.Info("写入测试", zap.String("key", "value"))
	_ = Logger.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "写入测试")
	assert.Same(t, Logger, zap.L(), "应替换全局 logger")
}

func TestInitLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	InitLogger(Options{Level: "verbose"})

	assert.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))
}
