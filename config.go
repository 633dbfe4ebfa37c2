package delimcodec

import (
	"fmt"

	"github.com/unkn0wn-root/delimcodec/charset"
)

// Recognized setting names for NewFromSettings.
const (
	SettingDelimiter          = "delimiter"
	SettingCharset            = "charset"
	SettingReplaceUnsupported = "replace_unsupported"
)

// Setting declares one recognized configuration option and its default.
type Setting struct {
	Name    string
	Default any
}

// SettingsSchema lists every setting NewFromSettings accepts. Hosts use it
// to validate user configuration before handing it over.
func SettingsSchema() []Setting {
	return []Setting{
		{Name: SettingDelimiter, Default: defaultDelimiter},
		{Name: SettingCharset, Default: "UTF-8"},
		{Name: SettingReplaceUnsupported, Default: false},
	}
}

// NewFromSettings builds a codec from loosely-typed host configuration
// (e.g. decoded YAML/JSON). Unknown keys and type mismatches are rejected;
// absent keys take their schema defaults.
func NewFromSettings(settings map[string]any, log Logger) (Codec, error) {
	opts := Options{Logger: log}

	for name, raw := range settings {
		switch name {
		case SettingDelimiter:
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("delimcodec: setting %q: expected string, got %T", name, raw)
			}
			if s == "" {
				return nil, fmt.Errorf("delimcodec: setting %q: can't be empty", name)
			}
			opts.Delimiter = s
		case SettingCharset:
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("delimcodec: setting %q: expected string, got %T", name, raw)
			}
			cs, err := charset.Lookup(s)
			if err != nil {
				return nil, fmt.Errorf("delimcodec: setting %q: %w", name, err)
			}
			opts.Charset = cs
		case SettingReplaceUnsupported:
			b, ok := raw.(bool)
			if !ok {
				return nil, fmt.Errorf("delimcodec: setting %q: expected bool, got %T", name, raw)
			}
			opts.ReplaceUnsupported = b
		default:
			return nil, fmt.Errorf("delimcodec: unknown setting %q", name)
		}
	}

	return New(opts)
}
