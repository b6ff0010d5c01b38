package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	test := []struct {
		level string
		exp   log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"bogus", log.InfoLevel},
	}
	for _, tt := range test {
		l := New(&bytes.Buffer{}, tt.level)
		assert.Equal(t, tt.exp, l.GetLevel(), tt.level)
	}
	assert.True(t, ValidLevel("Debug"))
	assert.False(t, ValidLevel("trace"))
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug")
	ctx := WithLogger(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
	assert.Same(t, Default(), FromContext(context.Background()))

	FromContext(ctx).Debug("hidden", FieldBits, 88)
	assert.Contains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "bits=88")
}
