package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCLI(t *testing.T, args ...string) *kong.Context {
	t.Helper()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("aira"),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
	)
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	return kctx
}

func TestConfigLoadedOnDemand(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	// version doesn't take a config
	require.NoError(t, parseCLI(t, "--config", missing, "version").Run())

	err := parseCLI(t, "--config", missing, "token", "alice").Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}
