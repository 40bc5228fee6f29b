package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, nil)
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Info(t *testing.T) {
	l, buf := newBufferLogger()
	l.Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"k":"v"`)
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	l, buf := newBufferLogger()

	child := l.With("component", "test")
	require.NotNil(t, child)
	child.Error(context.Background(), "boom")

	out := buf.String()
	assert.Contains(t, out, `"component":"test"`)
	assert.Contains(t, out, `"level":"ERROR"`)
}
