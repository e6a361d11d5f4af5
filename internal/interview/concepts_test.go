package interview

import (
	"reflect"
	"testing"
)

func TestConceptsForRelevanceFirst(t *testing.T) {
	got := ConceptsFor("sql", "needs query optimization and indexes knowledge", "")

	// Mentioned concepts lead in table order, then padding up to three.
	want := []string{"indexes", "optimization", "joins"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ConceptsFor = %v, want %v", got, want)
	}
}

func TestConceptsForNoMentionsPadsFromTable(t *testing.T) {
	got := ConceptsFor("python", "", "")

	want := []string{"data structures", "pandas", "numpy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ConceptsFor = %v, want first three table entries %v", got, want)
	}
}

func TestConceptsForUnknownTopic(t *testing.T) {
	got := ConceptsFor("underwater basket weaving", "", "")

	want := []string{"general knowledge", "fundamentals", "best practices"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ConceptsFor = %v, want generic concepts %v", got, want)
	}
}

func TestAvailableConcepts(t *testing.T) {
	concepts := []string{"joins", "subqueries", "indexes"}
	covered := []string{"joins", "indexes"}

	got := AvailableConcepts(concepts, covered)
	want := []string{"subqueries"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableConcepts = %v, want %v", got, want)
	}

	if got := AvailableConcepts(concepts, concepts); got != nil {
		t.Errorf("fully covered topic should yield nil, got %v", got)
	}
}
