package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/combogen/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "combogen version "))
}

func TestGenerateAndGraphCommands(t *testing.T) {
	cfg := testutils.SetupTestConfig(t, "chains:\n  - name: sixty_nine\n    keys: [\"69\"]\n")
	dir := filepath.Dir(cfg)

	_, err := run(t, "generate", "--quiet", cfg)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "state_machine.gen.c"))
	assert.FileExists(t, filepath.Join(dir, "state_machine.gen.h"))

	out, err := run(t, "graph", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "graph LR")
}

func TestValidateCommand_Failure(t *testing.T) {
	cfg := testutils.SetupTestConfig(t, "chains:\n  - name: none\n    keys: [\"12\"]\n")

	out, err := run(t, "validate", cfg)
	require.Error(t, err)
	assert.Contains(t, out, "invalid")
}
