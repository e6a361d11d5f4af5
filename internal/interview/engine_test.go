package interview

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/prepforge/interview-engine/internal/models"
	"github.com/prepforge/interview-engine/internal/questionbank"
)

func newTestEngine() *Engine {
	provider := NewQuestionProvider(nil, questionbank.NewBank(), fixedRand{})
	return NewEngine(provider, fixedRand{})
}

var testResumeContext = ResumeContext{
	JobDescription: "Looking for someone with strong sql skills",
	Skills:         "python, sql",
}

func TestAdvanceFromIntroduction(t *testing.T) {
	engine := newTestEngine()
	st := models.NewSessionState()

	response := engine.Advance(context.Background(), st,
		"I have five years of experience building data platforms and analytics tooling for product teams.",
		testResumeContext, models.InterviewTechnical)

	if st.LastQuestionType != models.QuestionTopicIntro {
		t.Errorf("state = %s, want topic_intro", st.LastQuestionType)
	}
	if st.CurrentTopic != "sql" {
		t.Errorf("topic = %q, want the skill/requirement intersection sql", st.CurrentTopic)
	}
	if !reflect.DeepEqual(st.ExploredTopics, []string{"sql"}) {
		t.Errorf("explored = %v, want [sql]", st.ExploredTopics)
	}
	if !strings.Contains(response, "experience with this area") {
		t.Errorf("topic intro should ask about experience, got %q", response)
	}
}

func TestAdvanceStallsOnVagueAnswer(t *testing.T) {
	engine := newTestEngine()
	st := &models.SessionState{
		Version:                 models.SessionStateVersion,
		CurrentTopic:            "python",
		ExploredTopics:          []string{"python"},
		QuestionsInCurrentTopic: 1,
		LastQuestionType:        models.QuestionConceptQuestion,
		ConceptsCovered:         map[string][]string{"python": {}},
		CurrentConcept:          "pandas",
		CurrentDifficulty:       models.DifficultyEasy,
		QuestionCountInConcept:  1,
	}
	before := *st
	beforeCovered := append([]string{}, st.ConceptsCovered["python"]...)

	response := engine.Advance(context.Background(), st, "ok", testResumeContext, models.InterviewTechnical)

	if st.CurrentConcept != before.CurrentConcept ||
		st.CurrentDifficulty != before.CurrentDifficulty ||
		st.QuestionCountInConcept != before.QuestionCountInConcept ||
		st.LastQuestionType != before.LastQuestionType {
		t.Errorf("vague answer must not advance state: before %+v, after %+v", before, *st)
	}
	if !reflect.DeepEqual(st.ConceptsCovered["python"], beforeCovered) {
		t.Errorf("covered concepts changed: %v", st.ConceptsCovered["python"])
	}
	if !strings.Contains(response, "pandas") {
		t.Errorf("stall response should probe the current concept, got %q", response)
	}
}

func TestAdvanceEscalatesDifficulty(t *testing.T) {
	engine := newTestEngine()
	st := &models.SessionState{
		Version:                 models.SessionStateVersion,
		CurrentTopic:            "python",
		ExploredTopics:          []string{"python"},
		QuestionsInCurrentTopic: 1,
		LastQuestionType:        models.QuestionConceptQuestion,
		ConceptsCovered:         map[string][]string{"python": {}},
		CurrentConcept:          "data structures",
		CurrentDifficulty:       models.DifficultyEasy,
		QuestionCountInConcept:  1,
	}

	engine.Advance(context.Background(), st, sufficientAnswer, testResumeContext, models.InterviewTechnical)

	if st.CurrentDifficulty != models.DifficultyMedium {
		t.Errorf("difficulty = %s, want medium", st.CurrentDifficulty)
	}
	if st.QuestionCountInConcept != 2 {
		t.Errorf("question count = %d, want 2", st.QuestionCountInConcept)
	}
	if st.CurrentConcept != "data structures" {
		t.Errorf("concept changed to %q during escalation", st.CurrentConcept)
	}
}

func TestAdvanceRotatesConcept(t *testing.T) {
	engine := newTestEngine()
	st := &models.SessionState{
		Version:                 models.SessionStateVersion,
		CurrentTopic:            "python",
		ExploredTopics:          []string{"python"},
		QuestionsInCurrentTopic: 1,
		LastQuestionType:        models.QuestionConceptQuestion,
		ConceptsCovered:         map[string][]string{"python": {}},
		CurrentConcept:          "data structures",
		CurrentDifficulty:       models.DifficultyMedium,
		QuestionCountInConcept:  2,
	}

	// Empty resume context keeps the concept list at the first three table
	// entries for the topic.
	engine.Advance(context.Background(), st, sufficientAnswer, ResumeContext{}, models.InterviewTechnical)

	if !containsString(st.ConceptsCovered["python"], "data structures") {
		t.Errorf("finished concept not marked covered: %v", st.ConceptsCovered["python"])
	}
	if st.CurrentConcept != "pandas" {
		t.Errorf("concept = %q, want the next available pandas", st.CurrentConcept)
	}
	if st.CurrentDifficulty != models.DifficultyEasy {
		t.Errorf("new concept must restart at easy, got %s", st.CurrentDifficulty)
	}
	if st.QuestionCountInConcept != 1 {
		t.Errorf("question count = %d, want 1", st.QuestionCountInConcept)
	}
	if st.QuestionsInCurrentTopic != 2 {
		t.Errorf("concepts in topic = %d, want 2", st.QuestionsInCurrentTopic)
	}
}

func TestAdvanceMovesToNewTopicWhenConceptsExhausted(t *testing.T) {
	engine := newTestEngine()
	st := &models.SessionState{
		Version:                 models.SessionStateVersion,
		CurrentTopic:            "python",
		ExploredTopics:          []string{"python"},
		QuestionsInCurrentTopic: 3,
		LastQuestionType:        models.QuestionConceptQuestion,
		ConceptsCovered: map[string][]string{
			"python": {"data structures", "pandas", "numpy"},
		},
		CurrentConcept:         "numpy",
		CurrentDifficulty:      models.DifficultyHard,
		QuestionCountInConcept: 2,
	}

	engine.Advance(context.Background(), st, sufficientAnswer, ResumeContext{}, models.InterviewTechnical)

	if st.LastQuestionType != models.QuestionTopicIntro {
		t.Errorf("state = %s, want topic_intro", st.LastQuestionType)
	}
	if st.CurrentTopic == "python" {
		t.Error("expected a new topic")
	}
	// Covered concepts of the previous topic survive the transition.
	if len(st.ConceptsCovered["python"]) != 3 {
		t.Errorf("previous topic coverage lost: %v", st.ConceptsCovered["python"])
	}
}

func TestAdvanceTopicLimitForcesRotation(t *testing.T) {
	engine := newTestEngine()
	st := &models.SessionState{
		Version:                 models.SessionStateVersion,
		CurrentTopic:            "python",
		ExploredTopics:          []string{"python"},
		QuestionsInCurrentTopic: maxConceptsPerTopic,
		LastQuestionType:        models.QuestionConceptQuestion,
		ConceptsCovered:         map[string][]string{"python": {"data structures"}},
		CurrentConcept:          "pandas",
		CurrentDifficulty:       models.DifficultyMedium,
		QuestionCountInConcept:  2,
	}

	engine.Advance(context.Background(), st, sufficientAnswer, ResumeContext{}, models.InterviewTechnical)

	if st.LastQuestionType != models.QuestionTopicIntro {
		t.Errorf("topic budget exhausted, state = %s, want topic_intro", st.LastQuestionType)
	}
}

func TestAdvanceNoDuplicateExploredTopics(t *testing.T) {
	engine := newTestEngine()
	explored := []string{"python", "sql", "data_engineering", "machine_learning", "data_visualization", "statistics"}
	st := &models.SessionState{
		Version:          models.SessionStateVersion,
		ExploredTopics:   append([]string{}, explored...),
		LastQuestionType: models.QuestionTopicIntro,
		ConceptsCovered: map[string][]string{
			"sql": {"joins"},
		},
		CurrentTopic: "statistics",
	}
	// Everything explored: selection revisits the first intersection topic.
	st.ConceptsCovered["statistics"] = []string{
		"hypothesis testing", "probability distributions", "sampling methods",
	}

	engine.Advance(context.Background(), st, sufficientAnswer, testResumeContext, models.InterviewTechnical)

	if st.CurrentTopic != "sql" {
		t.Fatalf("topic = %q, want revisited sql", st.CurrentTopic)
	}
	if len(st.ExploredTopics) != len(explored) {
		t.Errorf("revisit must not duplicate explored topics: %v", st.ExploredTopics)
	}
	// Coverage recorded during the first visit survives the revisit.
	if !reflect.DeepEqual(st.ConceptsCovered["sql"], []string{"joins"}) {
		t.Errorf("revisit reset covered concepts: %v", st.ConceptsCovered["sql"])
	}
}

func TestAdvanceRecoversFromUnknownState(t *testing.T) {
	engine := newTestEngine()
	st := &models.SessionState{
		Version:          models.SessionStateVersion,
		LastQuestionType: models.QuestionType("weird"),
		ConceptsCovered:  map[string][]string{},
	}

	engine.Advance(context.Background(), st, sufficientAnswer, testResumeContext, models.InterviewTechnical)

	if st.LastQuestionType != models.QuestionTopicIntro {
		t.Errorf("unknown state should recover into topic_intro, got %s", st.LastQuestionType)
	}
}
