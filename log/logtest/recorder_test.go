/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package logtest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acronis/go-limitrate/log"
)

func TestRecorder(t *testing.T) {
	recorder := NewRecorder()
	recorder.Warn("message1", log.Int("num", 10), log.String("str", "abc"))
	recorder.Info("message2")
	recorder.With(log.String("component", "gate")).Debug("message2")

	require.Len(t, recorder.Entries(), 3)

	_, found := recorder.FindEntry("unknown")
	require.False(t, found)

	entry, found := recorder.FindEntry("message1")
	require.True(t, found)
	require.Equal(t, log.LevelWarn, entry.Level)

	numField, found := entry.FindField("num")
	require.True(t, found)
	require.Equal(t, 10, int(numField.Int))

	strField, found := entry.FindField("str")
	require.True(t, found)
	require.Equal(t, "abc", string(strField.Bytes))

	entries := recorder.FindAllEntries("message2")
	require.Len(t, entries, 2)
	require.Equal(t, log.LevelDebug, entries[1].Level)
	_, found = entries[1].FindField("component")
	require.True(t, found)

	recorder.WithLevel(log.LevelError).Info("filtered")
	_, found = recorder.FindEntry("filtered")
	require.False(t, found)

	recorder.Reset()
	require.Empty(t, recorder.Entries())
}

func TestNewLoggerWithOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(&buf)
	logger.Info("hello", log.String("name", "gate"))
	require.Contains(t, buf.String(), `"msg":"hello"`)
	require.Contains(t, buf.String(), `"name":"gate"`)
}
