package keymap

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/viewpick/config"
)

// ApplyOverrides applies keybinding overrides from config to any KeyMap struct.
// It uses reflection to map config keys (snake_case) to struct fields (CamelCase).
// Only exported fields of type key.Binding are processed. Embedded structs are
// recursively processed. Override keys that match no binding are returned as an
// error, after every known override has been applied.
//
// Example:
//
//	km := KeyMap{SelectAll: key.NewBinding(...), ...}
//	err := ApplyOverrides(&km, overrides) // overrides["select_all"] -> km.SelectAll
func ApplyOverrides(km interface{}, overrides config.KeybindingSectionConfig) error {
	if len(overrides) == 0 {
		return nil
	}

	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("keymap overrides need a pointer to a struct, got %T", km)
	}

	used := make(map[string]bool, len(overrides))
	applyOverridesRecursive(v.Elem(), overrides, used)

	var unknown []string
	for action := range overrides {
		if !used[action] {
			unknown = append(unknown, action)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown key actions: %s", strings.Join(unknown, ", "))
	}
	return nil
}

// applyOverridesRecursive applies overrides to struct fields, recursing into embedded structs.
func applyOverridesRecursive(v reflect.Value, overrides config.KeybindingSectionConfig, used map[string]bool) {
	t := v.Type()
	bindingType := reflect.TypeOf(key.Binding{})

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if fieldType.Anonymous && field.Kind() == reflect.Struct {
			applyOverridesRecursive(field, overrides, used)
			continue
		}

		if fieldType.Type != bindingType {
			continue
		}

		configKey := camelToSnake(fieldType.Name)
		keys, ok := overrides[configKey]
		if !ok || len(keys) == 0 {
			continue
		}
		used[configKey] = true

		// Keep the help description, show the new keys
		currentBinding := field.Interface().(key.Binding)
		newBinding := key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), currentBinding.Help().Desc),
		)
		field.Set(reflect.ValueOf(newBinding))
	}
}

// camelToSnake converts a CamelCase string to snake_case.
// Examples: SelectAll -> select_all, ClearSearch -> clear_search
func camelToSnake(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
