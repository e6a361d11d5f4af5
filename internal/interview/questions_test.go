package interview

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/prepforge/interview-engine/internal/models"
	"github.com/prepforge/interview-engine/internal/questionbank"
)

// stubRetriever records the last query and serves canned results.
type stubRetriever struct {
	pairs []QAPair
	err   error

	lastQuery  string
	lastTopK   int
	lastFilter string
}

func (s *stubRetriever) RetrieveQA(ctx context.Context, query string, topK int, skillFilter string) ([]QAPair, error) {
	s.lastQuery = query
	s.lastTopK = topK
	s.lastFilter = skillFilter
	return s.pairs, s.err
}

func newTestProvider(r Retriever) *QuestionProvider {
	return NewQuestionProvider(r, questionbank.NewBank(), fixedRand{})
}

func TestGetQuestionsFallsBackOnRetrievalError(t *testing.T) {
	provider := newTestProvider(&stubRetriever{err: errors.New("connection refused")})

	got := provider.GetQuestions(context.Background(), "python", "data structures",
		models.DifficultyEasy, "data engineer role", models.InterviewTechnical, "python")

	want := []string{
		"What are the main data structures in Python and when would you use each one?",
		"Could you explain the difference between lists and tuples in Python?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetQuestions = %v, want static fallback %v", got, want)
	}
}

func TestGetQuestionsWithoutRetriever(t *testing.T) {
	provider := newTestProvider(nil)

	got := provider.GetQuestions(context.Background(), "sql", "joins",
		models.DifficultyHard, "", models.InterviewTechnical, "")

	if len(got) == 0 {
		t.Fatal("expected static questions without a retriever")
	}
}

func TestTechnicalQuestionsTopUpWhenUnderReturned(t *testing.T) {
	stub := &stubRetriever{pairs: []QAPair{{Question: "Only one question?", Score: 0.9}}}
	provider := newTestProvider(stub)

	got := provider.GetQuestions(context.Background(), "python", "pandas",
		models.DifficultyMedium, "", models.InterviewTechnical, "")

	if len(got) < 2 {
		t.Fatalf("under-returned retrieval must be topped up, got %v", got)
	}
	if got[0] != "Only one question?" {
		t.Errorf("retrieved questions keep rank order, got %v", got)
	}
	if stub.lastTopK != retrievalTopK {
		t.Errorf("topK = %d, want %d", stub.lastTopK, retrievalTopK)
	}
}

func TestRetrieveSkillFilterOnlyForSupportedTopics(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"python", "python"},
		{"sql", "sql"},
		{"machine_learning", "machine_learning"},
		{"statistics", ""},
		{"cloud", ""},
	}

	for _, tt := range tests {
		stub := &stubRetriever{pairs: []QAPair{
			{Question: "q1"}, {Question: "q2"}, {Question: "q3"},
		}}
		provider := newTestProvider(stub)

		provider.GetQuestions(context.Background(), tt.topic, "anything",
			models.DifficultyEasy, "", models.InterviewTechnical, "")

		if stub.lastFilter != tt.want {
			t.Errorf("topic %s: skill filter = %q, want %q", tt.topic, stub.lastFilter, tt.want)
		}
	}
}

func TestRetrieveDropsEmptyQuestions(t *testing.T) {
	stub := &stubRetriever{pairs: []QAPair{
		{Question: "keep me", Score: 0.8},
		{Question: "", Score: 0.7},
		{Question: "and me", Score: 0.6},
	}}
	provider := newTestProvider(stub)

	got := provider.GetQuestions(context.Background(), "sql", "joins",
		models.DifficultyEasy, "", models.InterviewTechnical, "")

	for _, q := range got {
		if q == "" {
			t.Fatalf("empty question leaked through: %v", got)
		}
	}
}

func TestTrimByDifficulty(t *testing.T) {
	questions := make([]string, 7)
	for i := range questions {
		questions[i] = fmt.Sprintf("q%d", i)
	}

	hard := trimByDifficulty(questions, models.DifficultyHard)
	if !reflect.DeepEqual(hard, []string{"q2", "q3", "q4", "q5", "q6"}) {
		t.Errorf("hard trim = %v, want the last five", hard)
	}

	easy := trimByDifficulty(questions, models.DifficultyEasy)
	if !reflect.DeepEqual(easy, []string{"q0", "q1", "q2", "q3", "q4"}) {
		t.Errorf("easy trim = %v, want the first five", easy)
	}

	medium := trimByDifficulty(questions, models.DifficultyMedium)
	if !reflect.DeepEqual(medium, []string{"q1", "q2", "q3", "q4", "q5"}) {
		t.Errorf("medium trim = %v, want the middle slice", medium)
	}

	short := []string{"a", "b"}
	if got := trimByDifficulty(short, models.DifficultyHard); !reflect.DeepEqual(got, short) {
		t.Errorf("short lists pass through untrimmed, got %v", got)
	}
}

func TestBehavioralQuestionsCapAtFive(t *testing.T) {
	provider := newTestProvider(&stubRetriever{err: errors.New("down")})

	got := provider.GetQuestions(context.Background(), "python", "pandas",
		models.DifficultyEasy, "building etl with python and sql", models.InterviewBehavioral, "python, sql")

	if len(got) != maxFallbackQuestions {
		t.Errorf("behavioral fallback = %d questions, want %d", len(got), maxFallbackQuestions)
	}
}

func TestBehavioralQueryMentionsConceptAndTopic(t *testing.T) {
	stub := &stubRetriever{pairs: []QAPair{
		{Question: "q1"}, {Question: "q2"}, {Question: "q3"},
	}}
	provider := newTestProvider(stub)

	provider.GetQuestions(context.Background(), "sql", "joins",
		models.DifficultyEasy, "analyst role", models.InterviewBehavioral, "sql")

	if stub.lastQuery == "" {
		t.Fatal("expected a retrieval query")
	}
	for _, fragment := range []string{"behavioral", "joins", "sql", "analyst role"} {
		if !strings.Contains(stub.lastQuery, fragment) {
			t.Errorf("query %q missing %q", stub.lastQuery, fragment)
		}
	}
}
