package questionbank

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/prepforge/interview-engine/internal/models"
)

// packFile is the YAML shape of a question pack
type packFile struct {
	Topic    string `yaml:"topic"`
	Concepts []struct {
		Name   string   `yaml:"name"`
		Easy   []string `yaml:"easy"`
		Medium []string `yaml:"medium"`
		Hard   []string `yaml:"hard"`
	} `yaml:"concepts"`
}

// LoadFromDir loads all YAML question packs from a directory, appending their
// questions to the bank. Individual file failures are logged and skipped so a
// broken pack never prevents startup.
func (b *Bank) LoadFromDir(dir string) error {
	slog.Info("loading question packs", "dir", dir)

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		files = append(files, matches...)
	}

	loaded := 0
	for _, file := range files {
		if err := b.LoadFromFile(file); err != nil {
			slog.Warn("failed to load question pack", "file", file, "error", err)
			continue
		}
		loaded++
	}

	slog.Info("question packs loaded", "count", loaded, "total_files", len(files))
	return nil
}

// LoadFromFile loads a single YAML question pack.
func (b *Bank) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var pack packFile
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	if pack.Topic == "" {
		return fmt.Errorf("question pack topic is required")
	}

	for _, concept := range pack.Concepts {
		if concept.Name == "" {
			return fmt.Errorf("concept name is required in pack %q", pack.Topic)
		}
		b.Add(pack.Topic, concept.Name, models.DifficultyEasy, concept.Easy...)
		b.Add(pack.Topic, concept.Name, models.DifficultyMedium, concept.Medium...)
		b.Add(pack.Topic, concept.Name, models.DifficultyHard, concept.Hard...)
	}

	slog.Info("question pack loaded", "topic", pack.Topic, "concepts", len(pack.Concepts))
	return nil
}
