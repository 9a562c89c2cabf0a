package logfacade

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadChangesNamedLoggersNotSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logging.yaml")
	writeFile(t, path, "level: info\n")

	f, err := New(WithAppConfigPath(filepath.Join(dir, "app.yaml")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	require.NotNil(t, f.watcher)

	name := "host.main.1.main.Client.Start"
	l := f.registry.get(name)
	assert.False(t, l.Enabled(TraceLevel))

	writeFile(t, path, "level: info\nloggers:\n  main.Client: trace\n")

	require.Eventually(t, func() bool {
		return l.Enabled(TraceLevel)
	}, 5*time.Second, 20*time.Millisecond)

	// The gate snapshot is taken once at construction.
	assert.False(t, f.IsDebugEnabled())
	assert.True(t, f.IsInfoEnabled())
}

func TestWatch_InvalidReloadIsReported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logging.yaml")
	writeFile(t, path, "level: info\n")

	var mu sync.Mutex
	var reported []error
	w, err := watchConfig(configSource{Path: path}, func(*Config) error { return nil }, func(err error) {
		mu.Lock()
		defer mu.Unlock()
		reported = append(reported, err)
	})
	require.NoError(t, err)
	defer func() { _ = w.stop() }()

	writeFile(t, path, "level: loud\n")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(reported) > 0
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatch_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logging.yaml")
	writeFile(t, path, "level: info\n")

	w, err := watchConfig(configSource{Path: path}, func(*Config) error { return nil }, func(error) {})
	require.NoError(t, err)

	assert.NoError(t, w.stop())
	assert.NoError(t, w.stop())
}

func TestWatch_DisabledOrExplicitConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "logging.yaml"), "level: info\ndisable_watch: true\n")

	f, err := New(WithAppConfigPath(filepath.Join(dir, "app.yaml")))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Nil(t, f.watcher)

	g, err := New(WithConfig(DefaultConfig()))
	require.NoError(t, err)
	defer func() { _ = g.Close() }()
	assert.Nil(t, g.watcher)
}

func TestWatch_ReloadReplacesFileSink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logging.yaml")
	writeFile(t, path, "level: info\n")

	f, err := New(WithAppConfigPath(filepath.Join(dir, "app.yaml")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	first := filepath.Join(dir, "logs", "first.log")
	writeFile(t, path, "level: info\nfile_logging: true\nlog_file_name: first.log\n")
	require.Eventually(t, func() bool {
		f.Info("after first reload")
		data, err := os.ReadFile(first)
		return err == nil && strings.Contains(string(data), "after first reload")
	}, 5*time.Second, 20*time.Millisecond)
	assert.True(t, f.Config().FileLogging)

	second := filepath.Join(dir, "logs", "second.log")
	writeFile(t, path, "level: info\nfile_logging: true\nlog_file_name: second.log\n")
	require.Eventually(t, func() bool {
		f.Info("after second reload")
		data, err := os.ReadFile(second)
		return err == nil && strings.Contains(string(data), "after second reload")
	}, 5*time.Second, 20*time.Millisecond)

	f.Info("only in second")
	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "only in second")
}

func TestWatch_ReloadAppliesSettingsWithCustomProvider(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logging.yaml")
	writeFile(t, path, "level: info\n")

	p := newRecordingProvider(InfoLevel)
	f, err := New(WithAppConfigPath(filepath.Join(dir, "app.yaml")), WithProvider(p))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	require.NotNil(t, f.watcher)

	writeFile(t, path, "level: info\nreencode: windows-1252\nwrapper_types: [auditLogger]\n")
	require.Eventually(t, func() bool {
		return f.Config().Reencode == "windows-1252"
	}, 5*time.Second, 20*time.Millisecond)

	f.Info("ñ")
	auditLogger{f: f}.Info("audited")

	entries := p.entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Ã±", entries[0].Message)
	assert.Equal(t, "[Extra Frames: 1] audited", entries[1].Message)
}
