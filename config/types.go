package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Category ordering modes.
const (
	OrderAlphabetical = "alphabetical"
	OrderPriority     = "priority"
)

// KeybindingSectionConfig maps action names (e.g. "toggle", "select_all")
// to lists of key combinations.
type KeybindingSectionConfig map[string][]string

// PickerConfig holds settings for the selection session and its terminal UI.
type PickerConfig struct {
	CategoryOrder    string                  `yaml:"category_order,omitempty" toml:"category_order,omitempty" json:"category_order,omitempty" jsonschema:"enum=alphabetical,enum=priority,description=How categories are ordered in the list (default: alphabetical)"`
	CategoryPriority []string                `yaml:"category_priority,omitempty" toml:"category_priority,omitempty" json:"category_priority,omitempty" jsonschema:"description=Category labels listed first when category_order is priority"`
	Labels           map[string]string       `yaml:"labels,omitempty" toml:"labels,omitempty" json:"labels,omitempty" jsonschema:"description=Overrides for the category label shown for a view kind"`
	Kinds            []string                `yaml:"kinds,omitempty" toml:"kinds,omitempty" json:"kinds,omitempty" jsonschema:"description=Restrict eligible views to these kinds (can only narrow the built-in list)"`
	Confirm          *bool                   `yaml:"confirm,omitempty" toml:"confirm,omitempty" json:"confirm,omitempty" jsonschema:"description=Ask for confirmation before committing (default: true)"`
	Keys             KeybindingSectionConfig `yaml:"keys,omitempty" toml:"keys,omitempty" json:"keys,omitempty" jsonschema:"description=Key overrides for picker actions"`
}

// ConfirmEnabled reports whether the UI asks before committing.
func (p PickerConfig) ConfirmEnabled() bool {
	return p.Confirm == nil || *p.Confirm
}

// SourceConfig controls how the view export is read.
type SourceConfig struct {
	File   string   `yaml:"file,omitempty" toml:"file,omitempty" json:"file,omitempty" jsonschema:"description=Default path of the view export file"`
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty" json:"ignore,omitempty" jsonschema:"description=Glob patterns over view names to exclude before loading"`
}

// Config represents the viewpick.yml configuration
type Config struct {
	Version string       `yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty" jsonschema:"description=Configuration version (e.g. 1.0)"`
	Picker  PickerConfig `yaml:"picker,omitempty" toml:"picker,omitempty" json:"picker,omitempty"`
	Source  SourceConfig `yaml:"source,omitempty" toml:"source,omitempty" json:"source,omitempty"`

	// Extensions captures all other top-level keys for extensibility.
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"-" jsonschema:"-"`
}

// UnmarshalYAML keeps unknown top-level keys in Extensions.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type rawConfig struct {
		Version    string                 `yaml:"version"`
		Picker     PickerConfig           `yaml:"picker"`
		Source     SourceConfig           `yaml:"source"`
		Extensions map[string]interface{} `yaml:",inline"`
	}

	var raw rawConfig
	if err := node.Decode(&raw); err != nil {
		return err
	}

	c.Version = raw.Version
	c.Picker = raw.Picker
	c.Source = raw.Source
	c.Extensions = raw.Extensions
	return nil
}

// SetDefaults applies default values
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Picker.CategoryOrder == "" {
		c.Picker.CategoryOrder = OrderAlphabetical
	}
	if c.Picker.Confirm == nil {
		trueVal := true
		c.Picker.Confirm = &trueVal
	}
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded viewpick.yml into the provided target struct. The target must be a
// pointer.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// A missing section leaves the target zero-valued.
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// ConfigSource identifies the origin of a configuration value.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceGlobal   ConfigSource = "global"
	SourceProject  ConfigSource = "project"
	SourceOverride ConfigSource = "override"
	SourceExplicit ConfigSource = "explicit"
)

// OverrideSource holds a raw configuration from an override file and its path.
type OverrideSource struct {
	Path   string
	Config *Config
}

// LayeredConfig holds the raw configuration from each source file,
// as well as the final merged configuration, for analysis purposes.
type LayeredConfig struct {
	Default   *Config                 // Config with only default values applied.
	Global    *Config                 // Raw config from the global file.
	Project   *Config                 // Raw config from the project file.
	Overrides []OverrideSource        // Raw configs from override files, in order of application.
	Final     *Config                 // The fully merged and validated config.
	FilePaths map[ConfigSource]string // Maps sources to their file paths.
}
