package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/combogen"
	"github.com/aretw0/combogen/internal/config"
	"github.com/aretw0/combogen/internal/presentation/graph"
	"github.com/aretw0/combogen/internal/presentation/report"
)

// Validate builds the automaton for the config at path and verifies every
// chain against it without writing anything.
func Validate(path string, logger *slog.Logger) (*combogen.Result, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return generate(cfg, logger)
}

// Graph writes a Mermaid diagram of the automaton to w. trace, when non-empty,
// is a comma separated key sequence highlighted on the diagram.
func Graph(w io.Writer, path, trace string, logger *slog.Logger) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	gen, err := newGenerator(cfg, logger)
	if err != nil {
		return err
	}
	m, err := gen.Build(cfg.Chains)
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if trace != "" {
		overlay = &graph.GraphOverlay{Trace: splitKeys(trace)}
	}
	_, err = io.WriteString(w, graph.GenerateMermaid(m, overlay))
	return err
}

// Inspect writes the markdown report of the automaton, passed through render.
func Inspect(w io.Writer, path string, render func(string) (string, error), logger *slog.Logger) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	res, err := generate(cfg, logger)
	if err != nil {
		return err
	}

	md := report.Markdown(report.Input{
		Source:      path,
		Chains:      cfg.Chains,
		Table:       res.Table,
		Diagnostics: res.Diagnostics,
	})
	out, err := render(md)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
