package factors

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SupportedVersions is the semver constraint factor files must satisfy.
const SupportedVersions = "^1"

// File is the on-disk YAML representation of a factor table.
//
// Factors missing from the file are taken from the built-in table. When Regions is
// non-empty it replaces the built-in region table entirely, since region names are
// specific to the country the file describes.
type File struct {
	Name    string             `json:"name"    yaml:"name"`
	Version string             `json:"version" yaml:"version"`
	Factors map[string]float64 `json:"factors" yaml:"factors"`
	Regions map[string]float64 `json:"regions" yaml:"regions"`
}

// Load reads a YAML factor file from path and builds a Table from it.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading factor file %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading factor file %s: %w", path, err)
	}
	return t, nil
}

// Parse builds a Table from YAML factor file contents.
func Parse(data []byte) (*Table, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing factor YAML: %w", err)
	}
	return f.Table()
}

// Table validates the file version and merges it over the built-in table.
func (f File) Table() (*Table, error) {
	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}

	base := Default()
	merged := base.Factors()
	for k, v := range f.Factors {
		merged[k] = v
	}

	regions := base.RegionFactors()
	if len(f.Regions) > 0 {
		regions = f.Regions
	}

	name := f.Name
	if name == "" {
		name = base.Name()
	}

	return New(name, f.Version, merged, regions)
}

// checkVersion verifies that version satisfies SupportedVersions.
func checkVersion(version string) error {
	if version == "" {
		return fmt.Errorf("%w: version is required", ErrUnsupportedVersion)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing constraint %q: %w", SupportedVersions, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}

// Export returns the table as a File suitable for YAML encoding.
func (t *Table) Export() File {
	return File{
		Name:    t.name,
		Version: t.version,
		Factors: t.Factors(),
		Regions: t.RegionFactors(),
	}
}
