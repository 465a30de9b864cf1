package domain

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"lanoma.dev/pkg/lanoma/internal/adapter"
	m "lanoma.dev/pkg/lanoma/internal/model"
)

// SubjectConfigFile is the metadata file kept in every subject directory.
const SubjectConfigFile = "info.yaml"

// SubjectConfig is the per-subject metadata. Empty fields fall back to the
// profile configuration.
type SubjectConfig struct {
	// Name is the display name of the subject.
	Name string `yaml:"name,omitempty"`
	// Command overrides the build command template for the subject.
	Command string `yaml:"command,omitempty"`
	// Files overrides the glob patterns selecting the notes to compile.
	Files []string `yaml:"files,omitempty"`
	// Extra keeps keys written by hand so that rewriting the file does not
	// drop them.
	Extra map[string]any `yaml:",inline"`
}

// LoadSubjectConfig reads the metadata file of dir. A missing file yields a
// zero config.
func LoadSubjectConfig(ctx context.Context, fs adapter.ShelfFSAdapter, dir m.Path) (SubjectConfig, error) {
	var cfg SubjectConfig

	path := dir.Join(SubjectConfigFile)
	if !fs.Exists(ctx, path) {
		return cfg, nil
	}

	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// SaveSubjectConfig writes cfg as the metadata file of dir.
func SaveSubjectConfig(ctx context.Context, fs adapter.ShelfFSAdapter, dir m.Path, cfg SubjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode subject config: %w", err)
	}

	path := dir.Join(SubjectConfigFile)
	if err := fs.WriteFile(ctx, path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// CommandOr returns the subject command, or fallback when it is not set.
func (c SubjectConfig) CommandOr(fallback string) string {
	if c.Command != "" {
		return c.Command
	}

	return fallback
}

// FilesOr returns the subject patterns, or fallback when none are set.
func (c SubjectConfig) FilesOr(fallback []string) []string {
	if len(c.Files) > 0 {
		return c.Files
	}

	return fallback
}
