package analyzer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPackage is the import path of the propagation functions.
const DefaultPackage = "github.com/ib-77/try2/pkg/rop/solo"

// Target names propagation functions of one package.
type Target struct {
	Package string   `yaml:"package"`
	Funcs   []string `yaml:"funcs"`
}

// Config lists the functions whose results must be checked with an early return.
type Config struct {
	Targets []Target `yaml:"targets"`
}

// DefaultConfig checks Try2, Try2Err and Unwrap of the solo package.
func DefaultConfig() Config {
	return Config{
		Targets: []Target{
			{Package: DefaultPackage, Funcs: []string{"Try2", "Try2Err", "Unwrap"}},
		},
	}
}

// ConfigErrorKind tells at which stage loading a config failed.
type ConfigErrorKind int

const (
	KindRead ConfigErrorKind = iota
	KindParse
	KindValidate
)

func (k ConfigErrorKind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindParse:
		return "parse"
	case KindValidate:
		return "validate"
	default:
		return "unknown"
	}
}

// ConfigError is returned by LoadConfig.
type ConfigError struct {
	Kind  ConfigErrorKind
	Path  string
	Cause error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s config %s: %v", e.Kind, e.Path, e.Cause)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// LoadConfig reads a YAML config file. An empty targets list is rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ConfigError{Kind: KindRead, Path: path, Cause: err}
	}
	return parseConfig(path, data)
}

func parseConfig(path string, data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ConfigError{Kind: KindParse, Path: path, Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, &ConfigError{Kind: KindValidate, Path: path, Cause: err}
	}
	return cfg, nil
}

// Validate checks that every target names a package and at least one function.
func (c Config) Validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("no targets")
	}
	for i, t := range c.Targets {
		if t.Package == "" {
			return fmt.Errorf("target %d: missing package", i)
		}
		if len(t.Funcs) == 0 {
			return fmt.Errorf("target %d (%s): no funcs", i, t.Package)
		}
		for _, f := range t.Funcs {
			if f == "" {
				return fmt.Errorf("target %d (%s): empty func name", i, t.Package)
			}
		}
	}
	return nil
}

// index maps package path to function names.
func (c Config) index() map[string]map[string]bool {
	idx := make(map[string]map[string]bool, len(c.Targets))
	for _, t := range c.Targets {
		names, ok := idx[t.Package]
		if !ok {
			names = make(map[string]bool, len(t.Funcs))
			idx[t.Package] = names
		}
		for _, f := range t.Funcs {
			names[f] = true
		}
	}
	return idx
}
