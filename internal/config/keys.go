package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownKey is returned by Get and Set for keys that do not exist.
const ErrUnknownKey = constError("unknown config key")

type keyAccessor struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

//nolint:gochecknoglobals // Read-only accessor table for dotted config keys.
var keyAccessors = map[string]keyAccessor{
	"output.default_format": {
		get: func(c *Config) string { return c.Output.DefaultFormat },
		set: func(c *Config, v string) error { c.Output.DefaultFormat = v; return nil },
	},
	"output.precision": {
		get: func(c *Config) string { return strconv.Itoa(c.Output.Precision) },
		set: func(c *Config, v string) error { return setInt(&c.Output.Precision, v) },
	},
	"output.unit": {
		get: func(c *Config) string { return c.Output.Unit },
		set: func(c *Config, v string) error { c.Output.Unit = v; return nil },
	},
	"logging.level": {
		get: func(c *Config) string { return c.Logging.Level },
		set: func(c *Config, v string) error { c.Logging.Level = v; return nil },
	},
	"logging.format": {
		get: func(c *Config) string { return c.Logging.Format },
		set: func(c *Config, v string) error { c.Logging.Format = v; return nil },
	},
	"logging.file": {
		get: func(c *Config) string { return c.Logging.File },
		set: func(c *Config, v string) error { c.Logging.File = v; return nil },
	},
	"factors.file": {
		get: func(c *Config) string { return c.Factors.File },
		set: func(c *Config, v string) error { c.Factors.File = v; return nil },
	},
	"comparison.national_averages.home": {
		get: func(c *Config) string { return formatFloat(c.Comparison.NationalAverages.Home) },
		set: func(c *Config, v string) error { return setFloat(&c.Comparison.NationalAverages.Home, v) },
	},
	"comparison.national_averages.transport": {
		get: func(c *Config) string { return formatFloat(c.Comparison.NationalAverages.Transport) },
		set: func(c *Config, v string) error { return setFloat(&c.Comparison.NationalAverages.Transport, v) },
	},
	"comparison.national_averages.diet": {
		get: func(c *Config) string { return formatFloat(c.Comparison.NationalAverages.Diet) },
		set: func(c *Config, v string) error { return setFloat(&c.Comparison.NationalAverages.Diet, v) },
	},
	"comparison.national_averages.waste": {
		get: func(c *Config) string { return formatFloat(c.Comparison.NationalAverages.Waste) },
		set: func(c *Config, v string) error { return setFloat(&c.Comparison.NationalAverages.Waste, v) },
	},
	"comparison.tree_absorption_kg": {
		get: func(c *Config) string { return formatFloat(c.Comparison.TreeAbsorptionKg) },
		set: func(c *Config, v string) error { return setFloat(&c.Comparison.TreeAbsorptionKg, v) },
	},
	"engine.concurrency": {
		get: func(c *Config) string { return strconv.Itoa(c.Engine.Concurrency) },
		set: func(c *Config, v string) error { return setInt(&c.Engine.Concurrency, v) },
	},
}

// Keys returns every dotted key accepted by Get and Set, sorted.
func Keys() []string {
	keys := make([]string, 0, len(keyAccessors))
	for k := range keyAccessors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "output.unit".
func (c *Config) Get(key string) (string, error) {
	acc, ok := keyAccessors[strings.ToLower(key)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return acc.get(c), nil
}

// Set assigns a dotted key from its string form. The result is not validated;
// call Validate before saving.
func (c *Config) Set(key, value string) error {
	acc, ok := keyAccessors[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := acc.set(c, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

func setInt(dst *int, v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("invalid integer %q", v)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, v string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", v)
	}
	*dst = f
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
