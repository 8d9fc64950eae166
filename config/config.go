// Package config loads the glenum configuration: which registry to read and
// which packages to generate from it.
//
// Configuration comes from glenum.yaml (or .json/.toml) and from environment
// variables with the GLENUM_ prefix, uppercase and separated with _:
//
//	GLENUM_REGISTRY=/tmp/gl.xml glenum generate
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kkyr/fig"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "GLENUM"

// FileName is the configuration file looked up when no path is given.
const FileName = "glenum.yaml"

// DefaultRegistryURL is the upstream location of gl.xml.
const DefaultRegistryURL = "https://raw.githubusercontent.com/KhronosGroup/OpenGL-Registry/main/xml/gl.xml"

// ErrNoTargets is returned when the configuration doesn't name any package
// to generate.
var ErrNoTargets = errors.New("no generation targets configured")

// Config is the root of the configuration file.
type Config struct {
	// Registry is the path of the gl.xml file.
	Registry string `fig:"registry"`
	// RegistryURL is where `glenum fetch` downloads gl.xml from.
	RegistryURL string `fig:"registry_url"`
	// Lenient accepts registries failing validation.
	Lenient bool `fig:"lenient"`
	// NoCache disables the registry cache.
	NoCache bool     `fig:"no_cache"`
	Targets []Target `fig:"targets"`
}

// Target is one generated package.
type Target struct {
	// Package name, defaults to the base name of Out.
	Package string `fig:"package"`
	// Out is the output directory.
	Out     string   `fig:"out"`
	APIs    []string `fig:"apis"`
	Profile string   `fig:"profile"`
	// Groups restricts the package to the named groups.
	Groups     []string `fig:"groups"`
	FlagGroups []string `fig:"flag_groups"`
	Ungrouped  bool     `fig:"ungrouped"`
}

// Load reads the configuration file at path, or looks for glenum.yaml in the
// working directory and the user config directory when path is empty. A
// missing file isn't an error when path is empty; environment overrides and
// defaults still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if path != "" {
		err = fig.Load(cfg, fig.File(filepath.Base(path)), fig.Dirs(filepath.Dir(path)), fig.UseEnv(EnvPrefix))
	} else {
		dirs := []string{"."}
		if dir, derr := os.UserConfigDir(); derr == nil {
			dirs = append(dirs, filepath.Join(dir, "glenum"))
		}
		err = fig.Load(cfg, fig.File(FileName), fig.Dirs(dirs...), fig.UseEnv(EnvPrefix))
		if errors.Is(err, fig.ErrFileNotFound) {
			err = fig.Load(cfg, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills unset fields. Load calls it; callers that replace
// targets after loading call it again.
func (c *Config) ApplyDefaults() {
	if c.RegistryURL == "" {
		c.RegistryURL = DefaultRegistryURL
	}
	if c.Registry == "" {
		c.Registry = "gl.xml"
	}
	for i := range c.Targets {
		t := &c.Targets[i]
		if len(t.APIs) == 0 {
			t.APIs = []string{"gl"}
		}
		if t.Package == "" && t.Out != "" {
			t.Package = filepath.Base(filepath.Clean(t.Out))
		}
	}
}

// Validate checks that the configuration can drive a generate run.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTargets
	}
	seen := map[string]bool{}
	for i, t := range c.Targets {
		if t.Out == "" {
			return fmt.Errorf("target %d: no output directory", i)
		}
		out := filepath.Clean(t.Out)
		if seen[out] {
			return fmt.Errorf("target %d: output directory %s used twice", i, t.Out)
		}
		seen[out] = true
		switch t.Profile {
		case "", "core", "compatibility":
		default:
			return fmt.Errorf("target %d: unknown profile %q", i, t.Profile)
		}
	}
	return nil
}
