package logfacade

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func newBufferedFacade(t *testing.T, mutate func(*Config), opts ...Option) (*Facade, *bytes.Buffer) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DisableTimestamp = true
	cfg.DisableWatch = true
	if mutate != nil {
		mutate(cfg)
	}
	var buf bytes.Buffer
	f, err := New(append([]Option{WithConfig(cfg), WithWriter(&buf)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f, &buf
}

func decodeEntries(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()
	var out []logEntry
	dec := json.NewDecoder(buf)
	for dec.More() {
		var e logEntry
		require.NoError(t, dec.Decode(&e))
		out = append(out, e)
	}
	return out
}

func TestZerologProvider_WritesCallContext(t *testing.T) {
	f, buf := newBufferedFacade(t, nil)

	f.Info("hello {0}", "world")

	entries := decodeEntries(t, buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "info", e[zerolog.LevelFieldName])
	assert.Equal(t, "hello world", e[zerolog.MessageFieldName])
	assert.Equal(t, f.MachineName(), e[FieldMachine])
	assert.EqualValues(t, f.ProcessID(), e[FieldPID])
	assert.NotZero(t, e[FieldThread])
	assert.Equal(t, "logfacade", e[FieldClass])
	assert.Equal(t, "TestZerologProvider_WritesCallContext", e[FieldMethod])
	assert.Contains(t, e[FieldCaller], "provider_test.go:")
	assert.True(t, strings.HasSuffix(e[FieldLogger].(string), ".logfacade.TestZerologProvider_WritesCallContext"))
	_, hasTime := e[zerolog.TimestampFieldName]
	assert.False(t, hasTime)
}

func TestZerologProvider_FatalDoesNotExit(t *testing.T) {
	f, buf := newBufferedFacade(t, nil)

	f.Fatal("still running")

	entries := decodeEntries(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "fatal", entries[0][zerolog.LevelFieldName])
}

func TestZerologProvider_OverrideSilencesLogger(t *testing.T) {
	f, buf := newBufferedFacade(t, func(c *Config) {
		c.Level = "debug"
		c.Loggers = map[string]string{"logfacade.TestZerologProvider_OverrideSilencesLogger": "error"}
	})

	f.Debug("dropped")
	f.Info("dropped")
	f.Error("kept")

	entries := decodeEntries(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0][zerolog.MessageFieldName])
}

func TestZerologProvider_TraceFollowsNamedLogger(t *testing.T) {
	f, buf := newBufferedFacade(t, func(c *Config) {
		c.Level = "info"
		c.Loggers = map[string]string{"TestZerologProvider_TraceFollowsNamedLogger": "trace"}
	})

	assert.False(t, f.IsDebugEnabled())
	f.Trace("traced {0}", 1)

	entries := decodeEntries(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "trace", entries[0][zerolog.LevelFieldName])
	assert.Equal(t, "traced 1", entries[0][zerolog.MessageFieldName])
}

func TestZerologProvider_PublishErrorChain(t *testing.T) {
	f, buf := newBufferedFacade(t, nil)

	inner := smerrors.New("db.Connect").Msg("dial tcp 127.0.0.1:5432: connect: connection refused")
	outer := smerrors.New("server.Start").Err(inner).Msg("startup failed")

	root := f.PublishError(outer, "while starting")
	require.Error(t, root)
	assert.Equal(t, "dial tcp 127.0.0.1:5432: connect: connection refused", root.Error())

	entries := decodeEntries(t, buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "error", e[zerolog.LevelFieldName])
	assert.Contains(t, e[zerolog.MessageFieldName], "while starting startup failed")
	assert.NotEmpty(t, e[zerolog.ErrorFieldName])
	assert.Equal(t, "dial tcp 127.0.0.1:5432: connect: connection refused", e["error_root"])
	assert.Equal(t, "startup failed -> dial tcp 127.0.0.1:5432: connect: connection refused", e["error_history"])
	assert.Equal(t, []any{"server.Start", "db.Connect"}, e["error_ops"])
	assert.Equal(t, "db.Connect", e["error_root_op"])
}

type countingHook struct {
	levels []zerolog.Level
}

func (h *countingHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	h.levels = append(h.levels, level)
}

func TestZerologProvider_Hooks(t *testing.T) {
	hook := &countingHook{}
	f, _ := newBufferedFacade(t, nil, WithHooks(hook))

	f.Warn("one")
	f.Debug("suppressed")
	f.Error("two")

	assert.Equal(t, []zerolog.Level{zerolog.WarnLevel, zerolog.ErrorLevel}, hook.levels)
}

func TestZerologProvider_ReloadAppliesToExistingLoggers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "info"
	p, err := newZerologProvider(zerolog.Nop(), cfg)
	require.NoError(t, err)

	l := p.Logger("host.main.1.main.Client.Start")
	assert.True(t, l.Enabled(InfoLevel))
	assert.False(t, l.Enabled(DebugLevel))

	next := DefaultConfig()
	next.Level = "info"
	next.Loggers = map[string]string{"main.Client": "debug"}
	require.NoError(t, p.reload(next))

	assert.True(t, l.Enabled(DebugLevel))
	assert.False(t, p.Root().Enabled(DebugLevel))
}

func TestLevelTable_LongestKeyWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "warn"
	cfg.Loggers = map[string]string{
		"main":              "error",
		"main.Client":       "debug",
		"main.Client.Start": "off",
	}
	table, err := newLevelTable(cfg)
	require.NoError(t, err)

	assert.Equal(t, offLevel, table.resolve("host.main.7.main.Client.Start"))
	assert.Equal(t, DebugLevel, table.resolve("host.main.7.main.Client.Stop"))
	assert.Equal(t, ErrorLevel, table.resolve("host.main.7.main.Server.Run"))
	assert.Equal(t, WarnLevel, table.resolve("host.other.7.other.Server.Run"))
}

func TestLevelTable_InvalidLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Loggers = map[string]string{"x": "loud"}
	_, err := newLevelTable(cfg)
	assert.Error(t, err)
}

func TestMatchesSegments(t *testing.T) {
	tests := []struct {
		name, key string
		want      bool
	}{
		{"host.main.1.main.Client.Start", "main.Client", true},
		{"host.main.1.main.Client.Start", "Start", true},
		{"host.main.1.main.Client.Start", "host", true},
		{"host.main.1.main.ClientX.Start", "main.Client", false},
		{"host.main.1.main.Client.Start", "ain.Client", false},
		{"host.main.1.main.Client.Start", "", false},
		{"a.b", "a.b.c", false},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesSegments(tt.name, tt.key))
		})
	}
}
