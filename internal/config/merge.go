package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyOutput     = "output"
	keyLogging    = "logging"
	keyFactors    = "factors"
	keyComparison = "comparison"
	keyEngine     = "engine"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyOutput:     true,
	keyLogging:    true,
	keyFactors:    true,
	keyComparison: true,
	keyEngine:     true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Keys present in the overlay replace entire sections
// in the target. Keys absent in the overlay are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling overlay section %q: %w", key, marshalErr)
		}

		if err = unmarshalSection(target, key, sectionBytes); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// unmarshalSection unmarshals raw YAML bytes into the field of target named by key.
// Sections start from their defaults rather than zero values so that a partial
// section such as "output: {unit: t}" keeps the remaining defaults.
func unmarshalSection(target *Config, key string, data []byte) error {
	def := Default()
	switch key {
	case keyOutput:
		v := def.Output
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		v := def.Logging
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Logging = v
	case keyFactors:
		var v FactorsConfig
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Factors = v
	case keyComparison:
		v := def.Comparison
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Comparison = v
	case keyEngine:
		v := def.Engine
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Engine = v
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
