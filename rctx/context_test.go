package rctx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relspace/rctx"
)

func TestNewDefaultsToTableauBackend(t *testing.T) {
	ctx := rctx.New()
	require.Equal(t, rctx.BackendTableau, ctx.Backend())
}

func TestWithBackendOverridesDefault(t *testing.T) {
	ctx := rctx.New(rctx.WithBackend(rctx.BackendClassical))
	require.Equal(t, rctx.BackendClassical, ctx.Backend())
}

func TestWithAssertionHookReceivesWarnf(t *testing.T) {
	var got string
	ctx := rctx.New(rctx.WithAssertionHook(func(format string, args ...interface{}) {
		got = format
	}))
	ctx.Warnf("boom %d", 1)
	require.Equal(t, "boom %d", got)
}

func TestErrorfReturnsFormattedError(t *testing.T) {
	var warned bool
	ctx := rctx.New(rctx.WithAssertionHook(func(string, ...interface{}) { warned = true }))
	err := ctx.Errorf("mismatch: %s", "x")
	require.EqualError(t, err, "mismatch: x")
	require.True(t, warned)
}

func TestNilContextIsUsable(t *testing.T) {
	var ctx *rctx.Context
	require.Equal(t, rctx.BackendTableau, ctx.Backend())
	require.NotPanics(t, func() { ctx.Warnf("noop") })
}
