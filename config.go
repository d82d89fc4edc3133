package main

import (
	_ "embed"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	localConfigPath = ".config/soup.cfg"
	siteConfigFile  = "config.toml"

	keySiteDir     = "zola_dir"
	keyFrontMatter = "front_matter"
	keyTagModel    = "tag_model"
	keyBaseURL     = "base_url"
	keyOutputDir   = "output_dir"
)

// Template written to the local config path on first use
//
//go:embed config/soup.cfg
var defaultLocalConfig string

// ConfigOverrides allows overriding well-known locations with flag values
type ConfigOverrides struct {
	LocalConfigPath *string
}

// Resolver locates and parses the local and site configuration files
type Resolver struct {
	fs        afero.Fs
	getenv    func(string) string
	overrides *ConfigOverrides
}

// NewResolver creates a resolver reading files from fs and the environment through getenv
func NewResolver(fs afero.Fs, getenv func(string) string, overrides *ConfigOverrides) *Resolver {
	return &Resolver{
		fs:        fs,
		getenv:    getenv,
		overrides: overrides,
	}
}

// ParseCommand returns the command named by the first argument, defaulting to add
func ParseCommand(args []string) (Command, error) {
	if len(args) == 0 {
		return CommandAdd, nil
	}
	switch Command(args[0]) {
	case CommandAdd:
		return CommandAdd, nil
	default:
		return "", errors.Wrapf(ErrInvalidCommand, "%q", args[0])
	}
}

// LocalConfigPath returns the per-user config location
func (r *Resolver) LocalConfigPath() (string, error) {
	if r.overrides != nil && r.overrides.LocalConfigPath != nil {
		return *r.overrides.LocalConfigPath, nil
	}
	home := r.getenv("HOME")
	if home == "" {
		return "", errors.New("HOME is not set")
	}
	return filepath.Join(home, localConfigPath), nil
}

// Resolve parses args and both config files into a Config
func (r *Resolver) Resolve(args []string) (*Config, error) {
	cmd, err := ParseCommand(args)
	if err != nil {
		return nil, err
	}

	localPath, err := r.LocalConfigPath()
	if err != nil {
		return nil, &ConfigError{Kind: ErrMissingConfig, Err: err}
	}
	localData, err := afero.ReadFile(r.fs, localPath)
	if err != nil {
		return nil, &ConfigError{Kind: ErrMissingConfig, Path: localPath, Err: err}
	}

	cfg, err := parseLocal(string(localData))
	if err != nil {
		return nil, &ConfigError{Kind: ErrInvalidConfig, Path: localPath, Err: err}
	}
	cfg.Command = cmd
	cfg.Site.Dir = r.expandHome(cfg.Site.Dir)

	sitePath := filepath.Join(cfg.Site.Dir, siteConfigFile)
	siteData, err := afero.ReadFile(r.fs, sitePath)
	if err != nil {
		return nil, &ConfigError{Kind: ErrMissingConfig, Path: sitePath, Err: err}
	}
	cfg.Site.BaseURL, cfg.Site.OutputDir = parseSite(string(siteData))

	return cfg, nil
}

// IsLocalConfigMissing reports whether err means the per-user config file is absent
func (r *Resolver) IsLocalConfigMissing(err error) bool {
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Kind != ErrMissingConfig {
		return false
	}
	localPath, perr := r.LocalConfigPath()
	return perr == nil && cfgErr.Path == localPath
}

// EnsureLocalConfig writes the template config to the local config path
func (r *Resolver) EnsureLocalConfig() (string, error) {
	path, err := r.LocalConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := r.fs.Stat(path); err == nil {
		return "", errors.Errorf("%s already exists", path)
	}
	if err := r.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrap(err, "creating config directory")
	}
	if err := afero.WriteFile(r.fs, path, []byte(defaultLocalConfig), 0644); err != nil {
		return "", errors.Wrap(err, "writing config template")
	}
	return path, nil
}

func (r *Resolver) expandHome(dir string) string {
	if !strings.HasPrefix(dir, "~/") {
		return dir
	}
	home := r.getenv("HOME")
	if home == "" {
		return dir
	}
	return filepath.Join(home, dir[2:])
}

// parseLocal parses the contents of the per-user config file
func parseLocal(content string) (*Config, error) {
	cfg := &Config{FrontMatter: FormatTOML}

	var siteDir string
	found := false
	for _, line := range strings.Split(content, "\n") {
		if v, ok := lookupValue(line, keySiteDir); ok && !found {
			siteDir, found = v, true
		}
		if v, ok := lookupValue(line, keyFrontMatter); ok {
			switch FrontMatterFormat(strings.ToLower(v)) {
			case FormatTOML, "":
				cfg.FrontMatter = FormatTOML
			case FormatYAML:
				cfg.FrontMatter = FormatYAML
			default:
				return nil, errors.Errorf("unknown %s %q", keyFrontMatter, v)
			}
		}
		if v, ok := lookupValue(line, keyTagModel); ok {
			cfg.TagModel = v
		}
	}

	if !found {
		return nil, errors.Errorf("%s is not set", keySiteDir)
	}
	if siteDir == "" {
		return nil, errors.Errorf("%s is empty", keySiteDir)
	}
	cfg.Site.Dir = siteDir

	return cfg, nil
}

// parseSite extracts base_url and output_dir from a Zola config.toml
func parseSite(content string) (baseURL, outputDir string) {
	for _, line := range strings.Split(content, "\n") {
		if v, ok := lookupValue(line, keyBaseURL); ok {
			baseURL = v
		}
		if v, ok := lookupValue(line, keyOutputDir); ok {
			outputDir = v
		}
	}
	return baseURL, outputDir
}

// lookupValue returns the trimmed value of a "key = value" line when the key matches exactly
func lookupValue(line, key string) (string, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, key) {
		return "", false
	}
	rest := strings.TrimSpace(line[len(key):])
	if !strings.HasPrefix(rest, "=") {
		return "", false
	}
	return trimValue(rest[1:]), true
}

// trimValue trims whitespace and quotes and strips one trailing separator
func trimValue(value string) string {
	value = strings.TrimSpace(value)
	value = strings.Trim(value, `"'`)
	value = strings.TrimSpace(value)
	return strings.TrimSuffix(value, "/")
}
