package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/typofix/pkg/errors"
	"github.com/arthur-debert/typofix/pkg/logging"
	"github.com/arthur-debert/typofix/pkg/rules"
)

// Settings is the loaded configuration
type Settings struct {
	// Rules is the declarative transformation selection
	Rules rules.Config

	// MaxLookback bounds the probe window, in runes
	MaxLookback int
}

// Load discovers and loads configuration: defaults, the embedded app
// config, the first user config file found, and the environment
func Load() (*Settings, error) {
	return load(findUserConfig())
}

// LoadFrom loads configuration with an explicit user config file
func LoadFrom(path string) (*Settings, error) {
	if path == "" {
		return Load()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path)
	}
	return load(path)
}

func load(userPath string) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Hard defaults
	defaults := map[string]interface{}{
		"matching.max_lookback": 256,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Embedded app config
	if err := k.Load(&rawBytesProvider{bytes: appConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load app config")
	}

	// 3. User config file, if any
	if userPath != "" {
		parser := parserFor(userPath)
		if err := k.Load(file.Provider(userPath), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", userPath)
		}
		logger.Debug().Str("path", userPath).Msg("Loaded user config")
	}

	// 4. Environment. Double underscore separates nesting levels so
	// that keys like max_lookback survive: TYPOFIX_MATCHING__MAX_LOOKBACK.
	envProvider := env.Provider("TYPOFIX_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "TYPOFIX_")
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	return parse(k)
}

// parse materializes Settings from merged configuration
func parse(k *koanf.Koanf) (*Settings, error) {
	include, err := adaptEntries(k.Get("transformations.include"))
	if err != nil {
		return nil, err
	}
	extra, err := adaptEntries(k.Get("transformations.extra"))
	if err != nil {
		return nil, err
	}

	settings := &Settings{
		Rules: rules.Config{
			Include: include,
			Extra:   extra,
			Remove:  k.Strings("transformations.remove"),
		},
		MaxLookback: k.Int("matching.max_lookback"),
	}

	if settings.MaxLookback <= 0 {
		return nil, errors.Newf(errors.ErrConfigValid,
			"matching.max_lookback must be positive, got %d", settings.MaxLookback)
	}

	return settings, nil
}

// adaptEntries converts a mixed-shape config list (strings and
// {from, to} tables) into rule entries
func adaptEntries(raw interface{}) ([]rules.Entry, error) {
	if raw == nil {
		return nil, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrConfigValid,
			"transformation list has unexpected shape %T", raw)
	}

	var entries []rules.Entry
	for _, item := range list {
		switch v := item.(type) {
		case string:
			entries = append(entries, rules.ByName(v))
		case map[string]interface{}:
			entry, err := adaptInline(v)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		default:
			return nil, errors.Newf(errors.ErrConfigValid,
				"transformation entry has unexpected shape %T", item)
		}
	}
	return entries, nil
}

func adaptInline(m map[string]interface{}) (rules.Entry, error) {
	from, _ := m["from"].(string)
	to, _ := m["to"].(string)
	if from == "" {
		return rules.Entry{}, errors.New(errors.ErrConfigValid,
			"inline transformation needs a non-empty 'from'")
	}
	isRegexp, _ := m["regexp"].(bool)
	return rules.Entry{Inline: &rules.InlineRule{From: from, To: to, IsRegexp: isRegexp}}, nil
}

// parserFor picks the parser from the file extension
func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// findUserConfig returns the first config file present: the working
// directory first, then the XDG config dir
func findUserConfig() string {
	candidates := []string{
		"typofix.toml",
		"typofix.yaml",
		filepath.Join(xdg.ConfigHome, "typofix", "typofix.toml"),
		filepath.Join(xdg.ConfigHome, "typofix", "typofix.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
