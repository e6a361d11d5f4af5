package questionbank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prepforge/interview-engine/internal/models"
)

const validPack = `topic: spark
concepts:
  - name: partitioning
    easy:
      - "What does partitioning mean in Spark?"
    medium:
      - "How do you decide on a partition count for a shuffle-heavy job?"
    hard:
      - "Describe a skewed-partition incident and how you fixed it."
  - name: caching
    easy:
      - "When would you cache an RDD or DataFrame?"
`

func writePack(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	bank := NewBank()
	path := writePack(t, t.TempDir(), "spark.yaml", validPack)

	if err := bank.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	easy := bank.Lookup("spark", "partitioning", models.DifficultyEasy)
	if len(easy) != 1 || easy[0] != "What does partitioning mean in Spark?" {
		t.Errorf("easy slot = %v", easy)
	}
	if got := bank.Lookup("spark", "partitioning", models.DifficultyHard); len(got) != 1 {
		t.Errorf("hard slot = %v, want one question", got)
	}
	if got := bank.Lookup("spark", "caching", models.DifficultyMedium); got != nil {
		t.Errorf("unset difficulty should stay empty, got %v", got)
	}
}

func TestLoadFromFileRejectsMissingTopic(t *testing.T) {
	bank := NewBank()
	path := writePack(t, t.TempDir(), "broken.yaml", "concepts:\n  - name: something\n")

	if err := bank.LoadFromFile(path); err == nil {
		t.Fatal("expected an error for a pack without a topic")
	}
}

func TestLoadFromFileRejectsUnnamedConcept(t *testing.T) {
	bank := NewBank()
	path := writePack(t, t.TempDir(), "broken.yaml", "topic: spark\nconcepts:\n  - easy: [\"q\"]\n")

	if err := bank.LoadFromFile(path); err == nil {
		t.Fatal("expected an error for a concept without a name")
	}
}

func TestLoadFromDirSkipsBrokenPacks(t *testing.T) {
	bank := NewBank()
	dir := t.TempDir()
	writePack(t, dir, "spark.yaml", validPack)
	writePack(t, dir, "broken.yml", ": not yaml {{{")
	writePack(t, dir, "notes.txt", "ignored entirely")

	if err := bank.LoadFromDir(dir); err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}

	if got := bank.Lookup("spark", "caching", models.DifficultyEasy); len(got) != 1 {
		t.Errorf("valid pack not loaded alongside a broken one: %v", got)
	}
}
