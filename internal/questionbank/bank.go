package questionbank

import (
	"sync"

	"github.com/prepforge/interview-engine/internal/models"
)

// Bank holds the static fallback questions consulted when retrieval
// under-returns, keyed by topic, concept and difficulty. It ships with a
// builtin table and can be extended from YAML packs at startup.
type Bank struct {
	mu      sync.RWMutex
	entries map[string]map[string]map[models.Difficulty][]string
}

// NewBank returns a bank seeded with the builtin question table.
func NewBank() *Bank {
	b := &Bank{entries: map[string]map[string]map[models.Difficulty][]string{}}
	for topic, concepts := range builtinQuestions {
		for concept, byDifficulty := range concepts {
			for difficulty, questions := range byDifficulty {
				b.Add(topic, concept, difficulty, questions...)
			}
		}
	}
	return b
}

// Add appends questions for a topic/concept/difficulty slot.
func (b *Bank) Add(topic, concept string, difficulty models.Difficulty, questions ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.entries[topic] == nil {
		b.entries[topic] = map[string]map[models.Difficulty][]string{}
	}
	if b.entries[topic][concept] == nil {
		b.entries[topic][concept] = map[models.Difficulty][]string{}
	}
	b.entries[topic][concept][difficulty] = append(b.entries[topic][concept][difficulty], questions...)
}

// Lookup returns the questions for a topic/concept/difficulty slot,
// preserving insertion order. Nil when the slot is empty.
func (b *Bank) Lookup(topic, concept string, difficulty models.Difficulty) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	concepts, ok := b.entries[topic]
	if !ok {
		return nil
	}
	byDifficulty, ok := concepts[concept]
	if !ok {
		return nil
	}
	questions := byDifficulty[difficulty]
	if len(questions) == 0 {
		return nil
	}
	out := make([]string, len(questions))
	copy(out, questions)
	return out
}
