package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/combogen"
	"github.com/aretw0/combogen/internal/adapters/file"
	"github.com/aretw0/combogen/internal/config"
	"github.com/aretw0/combogen/internal/metrics"
	"github.com/aretw0/combogen/internal/presentation/tui"
)

// GenerateOptions contains all the configuration for the generate command.
type GenerateOptions struct {
	ConfigPath  string
	Dispatch    string // overrides output.dispatch
	Enum        string // overrides output.enum
	MetricsFile string
	Watch       bool
	Quiet       bool
}

// Pipeline runs generation from a config file to artifacts on disk.
type Pipeline struct {
	opts     GenerateOptions
	logger   *slog.Logger
	writer   *file.Writer
	recorder *metrics.Recorder
	out      io.Writer
}

// NewPipeline creates a Pipeline. Status lines go to out unless opts.Quiet is set.
func NewPipeline(opts GenerateOptions, logger *slog.Logger, out io.Writer) *Pipeline {
	if opts.Quiet {
		out = io.Discard
	}
	return &Pipeline{
		opts:     opts,
		logger:   logger,
		writer:   file.NewWriter(),
		recorder: metrics.NewRecorder(),
		out:      out,
	}
}

// Recorder exposes the metrics collected across runs.
func (p *Pipeline) Recorder() *metrics.Recorder {
	return p.recorder
}

// Run performs one generation. On any error no artifact is touched.
func (p *Pipeline) Run(ctx context.Context) (*combogen.Result, error) {
	start := time.Now()
	res, err := p.run(ctx)

	composites := 0
	if res != nil {
		p.recorder.ObserveBuild(res.Stats, len(res.Diagnostics))
		composites = res.Composites()
	}
	p.recorder.ObserveRun(start, err, composites)

	if p.opts.MetricsFile != "" {
		if mErr := p.recorder.WriteFile(p.opts.MetricsFile); mErr != nil {
			p.logger.Error("Metrics export failed", "err", mErr)
		}
	}
	return res, err
}

func (p *Pipeline) run(ctx context.Context) (*combogen.Result, error) {
	cfg, err := config.Load(p.opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	res, err := generate(cfg, p.logger)
	if err != nil {
		return nil, err
	}

	dispatch, enum := cfg.Output.Dispatch, cfg.Output.Enum
	if p.opts.Dispatch != "" {
		dispatch = p.opts.Dispatch
	}
	if p.opts.Enum != "" {
		enum = p.opts.Enum
	}

	err = p.writer.Write(ctx,
		file.Artifact{Path: dispatch, Data: res.Dispatch},
		file.Artifact{Path: enum, Data: res.Enum},
	)
	if err != nil {
		return nil, err
	}

	tui.PrintDiagnostics(p.out, res.Diagnostics)
	tui.PrintSuccess(p.out, "%d chains -> %d states (%d merged): %s, %s",
		len(cfg.Chains), res.Table.Len(), res.Composites(), dispatch, enum)
	return res, nil
}

// Generate handles the 'generate' command, dispatching to watch mode when asked.
func Generate(ctx context.Context, opts GenerateOptions, logger *slog.Logger) error {
	p := NewPipeline(opts, logger, os.Stdout)
	if opts.Watch {
		return Watch(ctx, p)
	}
	if _, err := p.Run(ctx); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	return nil
}

// generate builds and emits the automaton described by cfg.
func generate(cfg *config.Config, logger *slog.Logger) (*combogen.Result, error) {
	gen, err := newGenerator(cfg, logger)
	if err != nil {
		return nil, err
	}
	return gen.Generate(cfg.Chains)
}

func newGenerator(cfg *config.Config, logger *slog.Logger) (*combogen.Generator, error) {
	alphabet, err := cfg.Alphabet()
	if err != nil {
		return nil, fmt.Errorf("invalid keycodes: %w", err)
	}
	return combogen.New(
		combogen.WithAlphabet(alphabet),
		combogen.WithRuntimeNames(cfg.Runtime),
		combogen.WithLogger(logger.With("config", cfg.Path)),
	), nil
}
