// Package config loads combo declarations from a YAML or JSON file.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/combogen/internal/emitter"
	"github.com/aretw0/combogen/pkg/domain"
	"github.com/aretw0/combogen/pkg/keymap"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Default artifact file names, relative to the config file.
const (
	DefaultDispatchFile = "state_machine.gen.c"
	DefaultEnumFile     = "state_machine.gen.h"
)

// Output holds the artifact destinations.
type Output struct {
	Dispatch string `yaml:"dispatch" json:"dispatch"`
	Enum     string `yaml:"enum" json:"enum"`
}

// Config is a fully decoded combo declaration file.
type Config struct {
	Path     string
	Output   Output
	Runtime  emitter.RuntimeNames
	Keycodes map[rune][]string
	Chains   []domain.Chain
}

// ConfigFile represents the on-disk structure of combos.yaml.
type ConfigFile struct {
	Output   Output               `yaml:"output" json:"output"`
	Runtime  emitter.RuntimeNames `yaml:"runtime" json:"runtime"`
	Keycodes map[string][]string  `yaml:"keycodes" json:"keycodes"`
	Chains   []ChainConfig        `yaml:"chains" json:"chains"`
}

// ChainConfig is one declared chain. Keys holds the raw position specs:
// a string, or a map with either "key" or "any".
type ChainConfig struct {
	Name string `yaml:"name" json:"name"`
	Keys []any  `yaml:"keys" json:"keys"`
}

// UnmarshalYAML keeps unquoted numeric positions as the text written, so 069
// stays three keys instead of becoming the integer 69.
func (c *ChainConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Name string      `yaml:"name"`
		Keys []yaml.Node `yaml:"keys"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	c.Name = raw.Name
	c.Keys = nil
	for i := range raw.Keys {
		k := &raw.Keys[i]
		if k.Kind == yaml.ScalarNode {
			if tag := k.ShortTag(); tag == "!!int" || tag == "!!float" {
				c.Keys = append(c.Keys, k.Value)
				continue
			}
		}
		var v any
		if err := k.Decode(&v); err != nil {
			return err
		}
		c.Keys = append(c.Keys, v)
	}
	return nil
}

type positionConfig struct {
	Key string   `mapstructure:"key"`
	Any []string `mapstructure:"any"`
}

// Load reads a configuration file (YAML or JSON) and decodes it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read combo config: %w", err)
	}

	cfg, err := Parse(data, strings.ToLower(filepath.Ext(path)) == ".json")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path

	dir := filepath.Dir(path)
	cfg.Output.Dispatch = resolve(dir, cfg.Output.Dispatch)
	cfg.Output.Enum = resolve(dir, cfg.Output.Enum)
	return cfg, nil
}

// Parse decodes raw config content. Output paths are left relative.
func Parse(data []byte, isJSON bool) (*Config, error) {
	var file ConfigFile
	if isJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("failed to parse combos.json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse combos.yaml: %w", err)
		}
	}
	return file.Decode()
}

// Decode converts the raw file structure into a Config, collecting every
// problem instead of stopping at the first one.
func (f *ConfigFile) Decode() (*Config, error) {
	cfg := &Config{
		Output:   f.Output,
		Runtime:  f.Runtime.WithDefaults(),
		Keycodes: make(map[rune][]string, len(f.Keycodes)),
	}
	if cfg.Output.Dispatch == "" {
		cfg.Output.Dispatch = DefaultDispatchFile
	}
	if cfg.Output.Enum == "" {
		cfg.Output.Enum = DefaultEnumFile
	}

	symbols := make([]string, 0, len(f.Keycodes))
	for sym := range f.Keycodes {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	var errs []error
	for _, sym := range symbols {
		keys := f.Keycodes[sym]
		r, err := keymap.ParseSymbol(sym)
		if err != nil {
			errs = append(errs, &FieldError{Key: "keycodes." + sym, Reason: err.Error()})
			continue
		}
		if len(keys) == 0 {
			errs = append(errs, &FieldError{Key: "keycodes." + sym, Reason: "needs at least one key"})
			continue
		}
		cfg.Keycodes[r] = keys
	}

	for i, c := range f.Chains {
		chain, chainErrs := c.decode(i)
		errs = append(errs, chainErrs...)
		if len(chainErrs) == 0 {
			cfg.Chains = append(cfg.Chains, chain)
		}
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return cfg, nil
}

func (c ChainConfig) decode(index int) (domain.Chain, []error) {
	field := fmt.Sprintf("chains[%d]", index)
	if c.Name != "" {
		field = fmt.Sprintf("chains[%d](%s)", index, c.Name)
	}

	chain := domain.Chain{Label: c.Name}
	var errs []error
	if c.Name == "" {
		errs = append(errs, &FieldError{Key: field + ".name", Reason: "is required"})
	}
	if len(c.Keys) == 0 {
		errs = append(errs, &FieldError{Key: field + ".keys", Reason: "is required"})
	}

	for j, raw := range c.Keys {
		pos, err := decodePosition(raw)
		if err != nil {
			errs = append(errs, &FieldError{Key: fmt.Sprintf("%s.keys[%d]", field, j), Reason: err.Error(), Value: raw})
			continue
		}
		chain.Positions = append(chain.Positions, pos)
	}
	return chain, errs
}

func decodePosition(raw any) (domain.Position, error) {
	switch v := raw.(type) {
	case string:
		return domain.Symbols(v), nil
	case json.Number:
		// Plain digits only; anything else would not read as written.
		if !isDigits(v.String()) {
			return domain.Position{}, fmt.Errorf("number %s is not a digit sequence, quote it", v)
		}
		return domain.Symbols(v.String()), nil
	case map[string]any:
		var pc positionConfig
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			ErrorUnused: true,
			Result:      &pc,
		})
		if err != nil {
			return domain.Position{}, err
		}
		if err := dec.Decode(v); err != nil {
			return domain.Position{}, fmt.Errorf("failed to decode position: %w", err)
		}
		switch {
		case pc.Key != "" && len(pc.Any) > 0:
			return domain.Position{}, fmt.Errorf("set either \"key\" or \"any\", not both")
		case pc.Key != "":
			return domain.Key(pc.Key), nil
		case len(pc.Any) > 0:
			return domain.AnyOf(pc.Any...), nil
		}
		return domain.Position{}, fmt.Errorf("expected \"key\" or \"any\"")
	}
	return domain.Position{}, fmt.Errorf("expected a string or a map")
}

// Alphabet returns the builtin key table with the configured overrides applied.
func (c *Config) Alphabet() (*keymap.Table, error) {
	return keymap.Default().Merge(c.Keycodes)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
