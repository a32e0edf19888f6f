package log

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func logAll(l interface {
	Debug(string, ...any)
	Info(string, ...any)
	Warn(string, ...any)
	Error(string, ...any)
}) {
	l.Debug("asked %s", "加芝士吗?")
	l.Info("replayed %d answers", 2)
	l.Warn("unknown key %q", "colour")
	l.Error("history: %v", "disk full")
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level Level
		want  []string
		skip  []string
	}{
		{LevelDebug, []string{"DEBUG: asked 加芝士吗?", "INFO: replayed 2 answers", `WARN: unknown key "colour"`, "ERROR: history: disk full"}, nil},
		{LevelWarn, []string{"WARN:", "ERROR:"}, []string{"DEBUG:", "INFO:"}},
		{LevelError, []string{"ERROR:"}, []string{"DEBUG:", "INFO:", "WARN:"}},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			logAll(NewWriter(&buf, tt.level))

			for _, w := range tt.want {
				require.Contains(t, buf.String(), w)
			}
			for _, s := range tt.skip {
				require.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestLogger_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf, LevelInfo).Info("dispatch %s", "order")

	line := buf.String()
	require.True(t, strings.HasPrefix(line, "["))
	require.True(t, strings.HasSuffix(line, "] INFO: dispatch order\n"))
	// [2006-01-02 15:04:05]
	require.Len(t, strings.SplitN(line, "]", 2)[0], len("[2006-01-02 15:04:05"))
}

func TestNewRotating_File(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "dir", "burger.log")

	l, err := NewRotating(logPath, LevelDebug, Rotation{MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 7})
	require.NoError(t, err)

	lj, ok := l.out.(*lumberjack.Logger)
	require.True(t, ok)
	require.Equal(t, logPath, lj.Filename)
	require.Equal(t, 1, lj.MaxSize)
	require.Equal(t, 2, lj.MaxBackups)
	require.Equal(t, 7, lj.MaxAge)

	logAll(l)
	require.NoError(t, l.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Equal(t, 4, strings.Count(string(content), "\n"))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(logPath)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())

		dir, err := os.Stat(filepath.Dir(logPath))
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0700), dir.Mode().Perm())
	}
}

func TestNew_AppendsAndFixesMode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "burger.log")
	require.NoError(t, os.WriteFile(logPath, []byte("old line\n"), 0644))

	l, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	l.Info("new line")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "old line\n"))
	require.Contains(t, string(content), "INFO: new line")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(logPath)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}

func TestNew_BadPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0600))

	_, err := New(filepath.Join(file, "burger.log"), LevelInfo)
	require.Error(t, err)
}

func TestLogger_SetEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, LevelDebug)

	l.SetEnabled(false)
	l.Error("hidden")
	require.Empty(t, buf.String())

	l.SetEnabled(true)
	l.Error("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestLogger_NilSafe(t *testing.T) {
	var l *Logger
	require.NotPanics(t, func() {
		logAll(l)
		l.SetEnabled(true)
		require.NoError(t, l.Close())
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"Warn":    LevelWarn,
		"error":   LevelError,
		"verbose": LevelWarn,
		"":        LevelWarn,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseLevel(in), in)
	}
	require.Equal(t, "UNKNOWN", Level(42).String())
}

func TestDefaultLogger(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	SetDefault(nil)
	require.NotPanics(t, func() { logAll(Default()) })

	var buf bytes.Buffer
	SetDefault(NewWriter(&buf, LevelDebug))
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
	require.Equal(t, 4, strings.Count(buf.String(), "\n"))
}

func TestNopLogger(t *testing.T) {
	var l NopLogger
	logAll(l)
	require.NoError(t, l.Close())
}
