package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/viewpick/errors"
	"github.com/grovetools/viewpick/pkg/paths"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames lists project config file names in lookup order.
var configNames = []string{
	"viewpick.yml",
	"viewpick.yaml",
	".viewpick.yml",
	".viewpick.yaml",
	"viewpick.toml",
}

// overrideNames lists local override files applied after the project config.
var overrideNames = []string{
	"viewpick.override.yml",
	"viewpick.override.yaml",
	".viewpick.override.yml",
	".viewpick.override.yaml",
}

// Load reads, validates and applies defaults to a single configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	if isTOML(path) {
		return LoadFromTOMLBytes(data)
	}
	return LoadFromBytes(data)
}

// LoadDefault finds and loads the configuration with hierarchical merging:
// 1. Global config (~/.config/viewpick/viewpick.yml) - base layer
// 2. Project config (viewpick.yml) - overrides global
// 3. Local override (viewpick.override.yml) - overrides all
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadOrDefault behaves like LoadDefault but returns a default configuration
// when no file is found anywhere.
func LoadOrDefault() (*Config, error) {
	cfg, err := LoadDefault()
	if errors.Is(err, errors.ErrCodeConfigNotFound) {
		cfg = &Config{}
		cfg.SetDefaults()
		return cfg, nil
	}
	return cfg, err
}

// LoadFrom loads configuration with hierarchical merging starting from the given directory
func LoadFrom(startDir string) (*Config, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return LoadFromWithLogger(startDir, logger)
}

// LoadFromWithLogger loads configuration with hierarchical merging and logging
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	layered, err := loadLayers(startDir, logger)
	if err != nil {
		return nil, err
	}

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		configData, err := yaml.Marshal(layered.Final)
		if err == nil {
			logger.Debugf("Merged configuration:\n%s", string(configData))
		}
	}

	return layered.Final, nil
}

// LoadLayered finds and loads all configuration layers (global, project, overrides)
// without merging them, for analysis purposes. It also computes the final merged config.
func LoadLayered(startDir string) (*LayeredConfig, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return loadLayers(startDir, logger)
}

func loadLayers(startDir string, logger *logrus.Logger) (*LayeredConfig, error) {
	layered := &LayeredConfig{
		Overrides: make([]OverrideSource, 0),
		FilePaths: make(map[ConfigSource]string),
	}

	defaultCfg := &Config{}
	defaultCfg.SetDefaults()
	layered.Default = defaultCfg

	// The project file may itself be the global file when nothing closer exists
	projectPath, err := FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}

	// 1. Global config (optional)
	globalPath := getXDGConfigPath()
	if globalPath != "" && globalPath != projectPath {
		if _, err := os.Stat(globalPath); err == nil {
			logger.WithField("path", globalPath).Debug("Loading global configuration")
			globalConfig, err := readRaw(globalPath)
			if err != nil {
				logger.WithError(err).Warn("Failed to parse global configuration, continuing without it")
			} else {
				layered.Global = globalConfig
				layered.FilePaths[SourceGlobal] = globalPath
			}
		}
	}

	// 2. Project config (required)
	logger.WithField("path", projectPath).Debug("Loading project configuration")
	projectConfig, err := readRaw(projectPath)
	if err != nil {
		return nil, err
	}
	layered.Project = projectConfig
	layered.FilePaths[SourceProject] = projectPath

	// 3. Override files (optional)
	projectDir := filepath.Dir(projectPath)
	for _, name := range overrideNames {
		overridePath := filepath.Join(projectDir, name)
		if _, err := os.Stat(overridePath); err != nil {
			continue
		}
		logger.WithField("path", overridePath).Debug("Loading local override configuration")
		overrideConfig, err := readRaw(overridePath)
		if err != nil {
			logger.WithError(err).Warn("Failed to parse override file, skipping")
			continue
		}
		layered.Overrides = append(layered.Overrides, OverrideSource{
			Path:   overridePath,
			Config: overrideConfig,
		})
		if _, seen := layered.FilePaths[SourceOverride]; !seen {
			layered.FilePaths[SourceOverride] = overridePath
		}
	}

	finalConfig := &Config{}
	if layered.Global != nil {
		finalConfig = mergeConfigs(finalConfig, layered.Global)
	}
	finalConfig = mergeConfigs(finalConfig, layered.Project)
	for _, override := range layered.Overrides {
		finalConfig = mergeConfigs(finalConfig, override.Config)
	}

	finalConfig.SetDefaults()
	if err := finalConfig.Validate(); err != nil {
		return nil, err
	}

	layered.Final = finalConfig
	return layered, nil
}

// readRaw parses one file after schema validation, without defaults.
func readRaw(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config").
			WithDetail("path", path)
	}

	var cfg *Config
	if isTOML(path) {
		cfg, err = parseTOML(data)
	} else {
		cfg, err = parseYAML(data)
	}
	if err != nil {
		if pe, ok := err.(*errors.PickError); ok {
			return nil, pe.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFromBytes parses YAML configuration from a byte array
func LoadFromBytes(data []byte) (*Config, error) {
	cfg, err := parseYAML(data)
	if err != nil {
		return nil, err
	}
	return finish(cfg)
}

// LoadFromTOMLBytes parses TOML configuration from a byte array
func LoadFromTOMLBytes(data []byte) (*Config, error) {
	cfg, err := parseTOML(data)
	if err != nil {
		return nil, err
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseYAML(data []byte) (*Config, error) {
	expanded := []byte(expandEnvVars(string(data)))

	var doc interface{}
	if err := yaml.Unmarshal(expanded, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
	}
	return &cfg, nil
}

// parseTOML decodes TOML into a generic document and re-encodes it as YAML so
// that extension sections land in Config.Extensions the same way.
func parseTOML(data []byte) (*Config, error) {
	expanded := []byte(expandEnvVars(string(data)))

	var doc map[string]interface{}
	if err := toml.Unmarshal(expanded, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	asYAML, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to convert TOML configuration")
	}
	var cfg Config
	if err := yaml.Unmarshal(asYAML, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to convert TOML configuration")
	}
	return &cfg, nil
}

func validateDocument(doc interface{}) error {
	if doc == nil {
		return nil
	}
	validator, err := NewSchemaValidator()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create validator")
	}
	if err := validator.Validate(doc); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed")
	}
	return nil
}

// FindConfigFile searches for viewpick configuration files with the following precedence:
// 1. Current directory up to filesystem root
// 2. XDG config directory (~/.config/viewpick/viewpick.yml)
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if xdgConfigPath := getXDGConfigPath(); xdgConfigPath != "" {
		if info, err := os.Stat(xdgConfigPath); err == nil && !info.IsDir() {
			return xdgConfigPath, nil
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

// getXDGConfigPath returns the global config path for viewpick
func getXDGConfigPath() string {
	return paths.GlobalConfigFile()
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
