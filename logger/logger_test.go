package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goforj/flyweight"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer func() { assert.NoError(t, os.Unsetenv("APP_ENV")) }()
	l := New("test")
	require.NotNil(t, l)
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Infow("info", map[string]any{"k": 2})
	l.Warnf("warn")
	l.Errorf("error")
}

func TestNewWithWriterHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "cli", zerolog.WarnLevel)
	l.Infof("hidden")
	l.Warnf("shown %d", 1)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown 1", lines[0]["message"])
	assert.Equal(t, "cli", lines[0]["component"])
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestObserverLogsConstructionOncePerKey(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "test", zerolog.InfoLevel)
	c := flyweight.NewInstanceCache[int](nil, flyweight.WithName("circles"), flyweight.WithObserver(Observer(l)))

	for _, color := range []string{"red", "green", "red"} {
		_, err := c.Get(color, 1)
		require.NoError(t, err)
	}

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "[red] created", lines[0]["message"])
	assert.Equal(t, "circles", lines[0]["cache"])
	assert.Equal(t, "red", lines[0]["key"])
	assert.Equal(t, "[green] created", lines[1]["message"])
}

func TestObserverLogsFailuresAtWarn(t *testing.T) {
	var buf bytes.Buffer
	obs := Observer(NewWithWriter(&buf, "test", zerolog.WarnLevel))
	obs.OnCacheOp(t.Context(), "persons", flyweight.OpCreate, "Z", false, errors.New("boom"), 0)
	obs.OnCacheOp(t.Context(), "persons", flyweight.OpCreate, "A", true, nil, 0)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Contains(t, lines[0]["message"], `persons create "Z" failed: boom`)
}

func TestObserverNilLogger(t *testing.T) {
	obs := Observer(nil)
	obs.OnCacheOp(t.Context(), "c", flyweight.OpConstruct, "k", false, nil, 0)
}
