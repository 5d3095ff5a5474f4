// Package config loads the list of template repositories offered by gh-template.
//
// The file holds a single list field, configs, whose entries name a template and
// link it to an owner/repo reference:
//
//	configs:
//	  - name: Go service
//	    link: kxue43/go-service-template
//
// TOML is accepted as well when the file name ends in .toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

type (
	Template struct {
		Name string
		Link string
	}

	Config struct {
		Templates []Template
	}

	rawTemplate struct {
		Name *string `yaml:"name" toml:"name"`
		Link *string `yaml:"link" toml:"link"`
	}

	rawConfig struct {
		Configs []rawTemplate `yaml:"configs" toml:"configs"`
	}
)

const baseName = "config"

var (
	ErrConfig = errors.New("config failure")

	// Probed in order when the extension is left out.
	extensions = []string{".yaml", ".yml", ".toml"}

	executable = os.Executable
)

// DefaultPath returns the config file that sits beside the running executable.
// When no candidate exists the .yaml one is returned, so that loading it reports a useful path.
//
// Non-nil returned error wraps [ErrConfig].
func DefaultPath() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("%w: failed to locate the executable: %s", ErrConfig, err.Error())
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	dir := filepath.Dir(exe)

	for _, ext := range extensions {
		candidate := filepath.Join(dir, baseName+ext)

		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return filepath.Join(dir, baseName+extensions[0]), nil
}

// Load reads the config file at path. The format follows the extension.
//
// Non-nil returned error wraps [ErrConfig].
func Load(path string) (*Config, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file %q: %s", ErrConfig, path, err.Error())
	}

	var raw rawConfig

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = decodeTOML(contents, &raw)
	} else {
		err = decodeYAML(contents, &raw)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse config file %q: %s", ErrConfig, path, err.Error())
	}

	cfg, err := raw.validate()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid config file %q: %s", ErrConfig, path, err.Error())
	}

	return cfg, nil
}

func decodeYAML(contents []byte, raw *rawConfig) error {
	if err := yaml.Unmarshal(contents, raw); err != nil {
		return err
	}

	if raw.Configs == nil {
		return errors.New(`missing the "configs" list`)
	}

	return nil
}

func decodeTOML(contents []byte, raw *rawConfig) error {
	md, err := toml.Decode(string(contents), raw)
	if err != nil {
		return err
	}

	if !md.IsDefined("configs") {
		return errors.New(`missing the "configs" list`)
	}

	return nil
}

func (rc *rawConfig) validate() (*Config, error) {
	cfg := Config{Templates: make([]Template, 0, len(rc.Configs))}

	for i, item := range rc.Configs {
		if item.Name == nil || *item.Name == "" {
			return nil, fmt.Errorf("entry %d of configs has no name", i)
		}

		if item.Link == nil || *item.Link == "" {
			return nil, fmt.Errorf("entry %d (%q) of configs has no link", i, *item.Name)
		}

		cfg.Templates = append(cfg.Templates, Template{Name: *item.Name, Link: *item.Link})
	}

	return &cfg, nil
}

// Names returns the template names in file order.
func (c *Config) Names() []string {
	names := make([]string, len(c.Templates))

	for i := range c.Templates {
		names[i] = c.Templates[i].Name
	}

	return names
}

// Link maps a template name to its link. The first entry with that name wins.
// Anything that is not a configured name is taken as an owner/repo reference and returned as is.
func (c *Config) Link(s string) string {
	for i := range c.Templates {
		if c.Templates[i].Name == s {
			return c.Templates[i].Link
		}
	}

	return s
}
