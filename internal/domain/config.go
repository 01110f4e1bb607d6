package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ArtifactSpec declares one expected build output. The pointer ceilings
// distinguish "not specified" from zero and override the run budget when set.
type ArtifactSpec struct {
	Name                 string `json:"name"                             yaml:"name"`
	MaxUncompressedBytes *int64 `json:"max_uncompressed_bytes,omitempty" yaml:"max_uncompressed_bytes,omitempty"`
	MaxCompressedBytes   *int64 `json:"max_compressed_bytes,omitempty"   yaml:"max_compressed_bytes,omitempty"`
}

// Config describes a check run: where to look, what to expect, and the
// ceilings to enforce. Artifacts are examined in slice order.
type Config struct {
	Title     string         `json:"title"      yaml:"title"`
	OutputDir string         `json:"output_dir" yaml:"output_dir"`
	Budget    Budget         `json:"budget"     yaml:"budget"`
	Artifacts []ArtifactSpec `json:"artifacts"  yaml:"artifacts"`
}

// DefaultConfig returns the policy for the Ragi CSS bundle.
func DefaultConfig() Config {
	return Config{
		Title:     "Ragi CSS",
		OutputDir: "dist",
		Budget:    DefaultBudget(),
		Artifacts: []ArtifactSpec{
			{Name: "ragi.css"},
			{Name: "ragi.min.css"},
		},
	}
}

// BudgetFor resolves the ceilings for one artifact, applying its overrides.
func (c Config) BudgetFor(spec ArtifactSpec) Budget {
	b := c.Budget
	if spec.MaxUncompressedBytes != nil {
		b.MaxUncompressedBytes = *spec.MaxUncompressedBytes
	}
	if spec.MaxCompressedBytes != nil {
		b.MaxCompressedBytes = *spec.MaxCompressedBytes
	}
	return b
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	if err := c.Budget.validate("budget"); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.Artifacts))
	for i, a := range c.Artifacts {
		if err := validateArtifactName(a.Name); err != nil {
			return fmt.Errorf("artifacts[%d]: %w", i, err)
		}
		if seen[a.Name] {
			return fmt.Errorf("artifacts[%d]: duplicate artifact %q", i, a.Name)
		}
		seen[a.Name] = true

		if err := c.BudgetFor(a).validate(a.Name); err != nil {
			return err
		}
	}

	return nil
}

func (b Budget) validate(scope string) error {
	if b.MaxUncompressedBytes <= 0 {
		return fmt.Errorf("%s: max_uncompressed_bytes must be positive, got %d", scope, b.MaxUncompressedBytes)
	}
	if b.MaxCompressedBytes <= 0 {
		return fmt.Errorf("%s: max_compressed_bytes must be positive, got %d", scope, b.MaxCompressedBytes)
	}
	return nil
}

func validateArtifactName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("artifact name must not be empty")
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("artifact %q must be relative to the output directory", name)
	}
	clean := filepath.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("artifact %q escapes the output directory", name)
	}
	return nil
}
