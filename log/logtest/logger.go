/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package logtest

import (
	"io"
	"os"
	"sync"

	"github.com/ssgreg/logf"

	"github.com/acronis/go-limitrate/log"
)

type syncEntryWriter struct {
	mu      sync.Mutex
	encoder logf.Encoder
	output  io.Writer
}

//nolint:gocritic
func (ew *syncEntryWriter) WriteEntry(e logf.Entry) {
	ew.mu.Lock()
	defer ew.mu.Unlock()

	var buf logf.Buffer
	if err := ew.encoder.Encode(&buf, e); err != nil {
		_, _ = io.WriteString(ew.output, err.Error())
		return
	}
	_, _ = ew.output.Write(buf.Data)
}

// NewLogger returns a simple synchronous JSON logger that writes entries of all levels to stderr.
// It's intended for tests only.
func NewLogger() log.FieldLogger {
	return NewLoggerWithOutput(os.Stderr)
}

// NewLoggerWithOutput is like NewLogger but writes entries to the given output.
func NewLoggerWithOutput(output io.Writer) log.FieldLogger {
	ew := &syncEntryWriter{
		encoder: logf.NewJSONEncoder(logf.JSONEncoderConfig{
			EncodeTime:   logf.RFC3339NanoTimeEncoder,
			FieldKeyTime: "time",
		}),
		output: output,
	}
	return &log.LogfAdapter{Logger: logf.NewLogger(logf.LevelDebug, ew)}
}
