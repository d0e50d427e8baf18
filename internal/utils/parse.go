package utils

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Section is one [table] of a config file, decoded without a schema.
type Section map[string]any

// DecodeTOMLFile decodes configPath into v and warns about keys v has no field for.
func DecodeTOMLFile(configPath string, v any) error {
	meta, err := toml.DecodeFile(configPath, v)
	if err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return fmt.Errorf("failed to decode %s: %w", configPath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Warnf("Ignoring unknown keys in %s: %v", configPath, undecoded)
	}
	return nil
}

// ParseTOMLSections decodes configPath loosely and returns its tables by name.
// Top level keys outside a table are dropped.
func ParseTOMLSections(configPath string) (map[string]Section, error) {
	raw := make(map[string]any)
	if _, err := toml.DecodeFile(configPath, &raw); err != nil {
		return nil, err
	}
	sections := make(map[string]Section, len(raw))
	for name, value := range raw {
		if table, ok := value.(map[string]any); ok {
			sections[name] = Section(table)
		}
	}
	return sections, nil
}

// GetString returns key when it holds a string.
func (s Section) GetString(key string) (string, bool) {
	val, ok := s[key].(string)
	return val, ok
}

// GetInt returns key when it holds an integer.
func (s Section) GetInt(key string) (int, bool) {
	val, ok := s[key].(int64)
	return int(val), ok
}

// GetBool returns key when it holds a bool.
func (s Section) GetBool(key string) (bool, bool) {
	val, ok := s[key].(bool)
	return val, ok
}

// AtLeast returns val, or def with a warning when val is below floor.
func AtLeast(key string, val, floor, def int) int {
	if val < floor {
		log.Warnf("Invalid %s %d, using %d", key, val, def)
		return def
	}
	return val
}
