package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"fatal": zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestFromContext_Fallback ensures FromContext returns the global logger
// when the context carries none, and the stored logger otherwise.
func TestFromContext_Fallback(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	require.Same(t, Logger(), FromContext(ctx))

	custom := zap.NewNop().Sugar()
	ctx = ToContext(ctx, custom)
	require.Same(t, custom, FromContext(ctx))
}

// TestWithName_DoesNotMutateParent checks that naming produces a new context
// and leaves the parent's logger untouched.
func TestWithName_DoesNotMutateParent(t *testing.T) {
	t.Parallel()

	parent := ToContext(context.Background(), zap.NewNop().Sugar())
	child := WithName(parent, "bundler")

	require.NotSame(t, FromContext(parent), FromContext(child))
}
