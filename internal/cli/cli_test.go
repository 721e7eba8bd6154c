package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/combogen/internal/logging"
	"github.com/aretw0/combogen/internal/testutils"
	"github.com/aretw0/combogen/pkg/domain"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
chains:
  - name: sixty_nine
    keys: ["69"]
  - name: shout
    keys:
      - key: KC_LSFT
      - any: [KC_1, KC_EXLM]
`

func TestPipeline_WritesBothArtifacts(t *testing.T) {
	path := testutils.SetupTestConfig(t, validConfig)
	dir := filepath.Dir(path)
	var out bytes.Buffer

	p := NewPipeline(GenerateOptions{ConfigPath: path}, logging.NewNop(), &out)
	res, err := p.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)

	dispatch, err := os.ReadFile(filepath.Join(dir, "state_machine.gen.c"))
	require.NoError(t, err)
	enum, err := os.ReadFile(filepath.Join(dir, "state_machine.gen.h"))
	require.NoError(t, err)

	assert.Equal(t, res.Dispatch, dispatch)
	assert.Equal(t, res.Enum, enum)
	assert.Contains(t, out.String(), "2 chains")
}

func TestPipeline_FlagOverridesAndMetrics(t *testing.T) {
	path := testutils.SetupTestConfig(t, validConfig)
	outDir := t.TempDir()
	opts := GenerateOptions{
		ConfigPath:  path,
		Dispatch:    filepath.Join(outDir, "combos.c"),
		Enum:        filepath.Join(outDir, "combos.h"),
		MetricsFile: filepath.Join(outDir, "combogen.prom"),
		Quiet:       true,
	}

	_, err := NewPipeline(opts, logging.NewNop(), os.Stdout).Run(context.Background())
	require.NoError(t, err)

	assert.FileExists(t, opts.Dispatch)
	assert.FileExists(t, opts.Enum)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(path), "state_machine.gen.c"))

	prom, err := os.ReadFile(opts.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `combogen_runs_total{outcome="success"} 1`)
	assert.Contains(t, string(prom), "combogen_chains_total 2")
}

func TestPipeline_FailureLeavesArtifactsUntouched(t *testing.T) {
	path := testutils.SetupTestConfig(t, validConfig)
	dir := filepath.Dir(path)
	p := NewPipeline(GenerateOptions{ConfigPath: path, Quiet: true}, logging.NewNop(), nil)

	_, err := p.Run(context.Background())
	require.NoError(t, err)
	before, err := os.ReadFile(filepath.Join(dir, "state_machine.gen.c"))
	require.NoError(t, err)

	// Two labels on the same sequence cannot be emitted.
	broken := validConfig + `
  - name: again
    keys: ["69"]
`
	require.NoError(t, os.WriteFile(path, []byte(broken), 0644))

	_, err = p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAmbiguousTerminal)

	after, err := os.ReadFile(filepath.Join(dir, "state_machine.gen.c"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestGenerate_MissingConfig(t *testing.T) {
	err := Generate(context.Background(), GenerateOptions{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		Quiet:      true,
	}, logging.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation failed")
}

func TestValidate(t *testing.T) {
	res, err := Validate(testutils.SetupTestConfig(t, validConfig), logging.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Stats.Chains)

	_, err = Validate(testutils.SetupTestConfig(t, "chains:\n  - name: short\n    keys: [\"1\"]\n"), logging.NewNop())
	assert.ErrorIs(t, err, domain.ErrDegenerateChain)
}

func TestGraph_WithTrace(t *testing.T) {
	var out bytes.Buffer
	err := Graph(&out, testutils.SetupTestConfig(t, validConfig), "KC_6, KC_9", logging.NewNop())
	require.NoError(t, err)

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "graph LR\n"))
	assert.Contains(t, s, `-- "KC_6" -->`)
	assert.Contains(t, s, "class s0 visited;")
	assert.Contains(t, s, "current;")
}

func TestInspect_Passthrough(t *testing.T) {
	var out bytes.Buffer
	identity := func(md string) (string, error) { return md, nil }

	err := Inspect(&out, testutils.SetupTestConfig(t, validConfig), identity, logging.NewNop())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "# Combo automaton")
	assert.Contains(t, out.String(), "sixty_nine")
}

func TestWatch_StopsOnCancel(t *testing.T) {
	path := testutils.SetupTestConfig(t, validConfig)
	enum := filepath.Join(filepath.Dir(path), "state_machine.gen.h")
	p := NewPipeline(GenerateOptions{ConfigPath: path, Quiet: true}, logging.NewNop(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, p)
	}()

	require.Eventually(t, func() bool {
		_, err := os.Stat(enum)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestIsConfigEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combos.yaml")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: path, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: path, Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: path, Op: fsnotify.Rename}, true},
		{"chmod", fsnotify.Event{Name: path, Op: fsnotify.Chmod}, false},
		{"sibling", fsnotify.Event{Name: filepath.Join(filepath.Dir(path), "other.yaml"), Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isConfigEvent(tt.event, path))
		})
	}
}

func TestSplitKeys(t *testing.T) {
	assert.Equal(t, []string{"KC_A", "KC_B"}, splitKeys(" KC_A, ,KC_B "))
	assert.Nil(t, splitKeys(""))
}
