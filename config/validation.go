package config

import (
	"fmt"
	"strings"

	"github.com/grovetools/viewpick/errors"
	"github.com/moby/patternmatcher"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validatePicker(&c.Picker); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid picker configuration")
	}

	if err := validateSource(&c.Source); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid source configuration")
	}

	return nil
}

func validatePicker(p *PickerConfig) error {
	switch p.CategoryOrder {
	case "", OrderAlphabetical, OrderPriority:
	default:
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("unknown category_order '%s' (expected %s or %s)", p.CategoryOrder, OrderAlphabetical, OrderPriority)).
			WithDetail("category_order", p.CategoryOrder)
	}

	if p.CategoryOrder == OrderPriority && len(p.CategoryPriority) == 0 {
		return errors.New(errors.ErrCodeConfigValidation, "category_priority must list at least one category when category_order is priority")
	}

	for _, label := range p.CategoryPriority {
		if strings.TrimSpace(label) == "" {
			return errors.New(errors.ErrCodeConfigValidation, "category_priority entries cannot be empty")
		}
	}

	for kind, label := range p.Labels {
		if strings.TrimSpace(kind) == "" || strings.TrimSpace(label) == "" {
			return errors.New(errors.ErrCodeConfigValidation, "labels cannot have empty kinds or values").
				WithDetail("kind", kind)
		}
	}

	for _, kind := range p.Kinds {
		if strings.TrimSpace(kind) == "" {
			return errors.New(errors.ErrCodeConfigValidation, "kinds entries cannot be empty")
		}
	}

	for action, keys := range p.Keys {
		if len(keys) == 0 {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("no keys bound for action '%s'", action)).
				WithDetail("action", action)
		}
		for _, k := range keys {
			if k == "" {
				return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("empty key for action '%s'", action)).
					WithDetail("action", action)
			}
		}
	}

	return nil
}

func validateSource(s *SourceConfig) error {
	if len(s.Ignore) == 0 {
		return nil
	}
	if _, err := patternmatcher.New(s.Ignore); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid ignore pattern").
			WithDetail("ignore", s.Ignore)
	}
	return nil
}
