package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prepforge/interview-engine/internal/models"
	"github.com/prepforge/interview-engine/internal/questionbank"
)

type fakeStates struct {
	saved map[string]*models.SessionState
}

func newFakeStates() *fakeStates {
	return &fakeStates{saved: map[string]*models.SessionState{}}
}

func (f *fakeStates) Load(ctx context.Context, userID string) (*models.SessionState, error) {
	if st, ok := f.saved[userID]; ok {
		return st, nil
	}
	return models.NewSessionState(), nil
}

func (f *fakeStates) Save(ctx context.Context, userID string, st *models.SessionState) error {
	f.saved[userID] = st
	return nil
}

type fakeTranscripts struct {
	data map[string]models.Transcript
}

func newFakeTranscripts() *fakeTranscripts {
	return &fakeTranscripts{data: map[string]models.Transcript{}}
}

func (f *fakeTranscripts) Load(ctx context.Context, userID string) (models.Transcript, error) {
	return f.data[userID], nil
}

func (f *fakeTranscripts) Save(ctx context.Context, userID string, t models.Transcript) error {
	f.data[userID] = append(models.Transcript{}, t...)
	return nil
}

func (f *fakeTranscripts) Clear(ctx context.Context, userID string) error {
	delete(f.data, userID)
	return nil
}

type fakeResumes struct {
	resume        *models.Resume
	interviewType models.InterviewType
}

func (f *fakeResumes) LatestResume(ctx context.Context, userID string) (*models.Resume, error) {
	return f.resume, nil
}

func (f *fakeResumes) InterviewType(ctx context.Context, userID string) (models.InterviewType, error) {
	if f.interviewType == "" {
		return models.InterviewTechnical, nil
	}
	return f.interviewType, nil
}

func (f *fakeResumes) SetInterviewType(ctx context.Context, userID string, t models.InterviewType) error {
	f.interviewType = t
	return nil
}

func newTestService(resumes *fakeResumes) (*Service, *fakeStates, *fakeTranscripts) {
	states := newFakeStates()
	transcripts := newFakeTranscripts()
	engine := NewEngine(NewQuestionProvider(nil, questionbank.NewBank(), fixedRand{}), fixedRand{})
	return NewService(states, transcripts, resumes, engine, fixedRand{}), states, transcripts
}

func TestStartWithoutResume(t *testing.T) {
	service, _, _ := newTestService(&fakeResumes{})

	if _, err := service.Start(context.Background(), "u1", models.InterviewTechnical); !errors.Is(err, ErrNoResume) {
		t.Fatalf("Start without resume: err = %v, want ErrNoResume", err)
	}
}

func TestStartResetsSessionAndTranscript(t *testing.T) {
	resumes := &fakeResumes{resume: &models.Resume{Name: "Ada Lovelace"}}
	service, states, transcripts := newTestService(resumes)

	states.saved["u1"] = &models.SessionState{
		Version:      models.SessionStateVersion,
		CurrentTopic: "sql",
	}
	transcripts.data["u1"] = models.Transcript{{Question: "old", Answer: "stale"}}

	greeting, err := service.Start(context.Background(), "u1", models.InterviewType("panel"))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if !strings.Contains(greeting, "Ada Lovelace") {
		t.Errorf("greeting %q should address the candidate by name", greeting)
	}

	st := states.saved["u1"]
	if st.CurrentTopic != "" || st.LastQuestionType != models.QuestionIntroduction {
		t.Errorf("session state not reset: %+v", st)
	}

	history := transcripts.data["u1"]
	if len(history) != 1 || history[0].Question != greeting || history[0].Answer != "" {
		t.Errorf("transcript = %+v, want only the greeting", history)
	}

	// An unrecognized interview type falls back to technical.
	if resumes.interviewType != models.InterviewTechnical {
		t.Errorf("interview type = %s, want technical", resumes.interviewType)
	}
}

func TestStartStoresBehavioralPreference(t *testing.T) {
	resumes := &fakeResumes{resume: &models.Resume{}}
	service, _, _ := newTestService(resumes)

	if _, err := service.Start(context.Background(), "u1", models.InterviewBehavioral); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if resumes.interviewType != models.InterviewBehavioral {
		t.Errorf("interview type = %s, want behavioral", resumes.interviewType)
	}
}

func TestChatEndRequestShortCircuits(t *testing.T) {
	service, states, transcripts := newTestService(&fakeResumes{resume: &models.Resume{}})
	transcripts.data["u1"] = models.Transcript{{Question: "q", Answer: "a"}}

	response, ended, err := service.Chat(context.Background(), "u1", "I think we should end the interview here")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if !ended {
		t.Fatal("expected the interview to end")
	}
	if response != closingResponses[0] {
		t.Errorf("response = %q, want the closing message", response)
	}
	if len(transcripts.data["u1"]) != 1 {
		t.Errorf("end request must not touch the transcript: %+v", transcripts.data["u1"])
	}
	if len(states.saved) != 0 {
		t.Errorf("end request must not touch session state: %+v", states.saved)
	}
}

func TestChatWithoutResumeRotatesMockResponses(t *testing.T) {
	service, _, transcripts := newTestService(&fakeResumes{})
	transcripts.data["u1"] = models.Transcript{{Question: "Tell me about yourself."}}

	response, ended, err := service.Chat(context.Background(), "u1", "hello there")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if ended {
		t.Fatal("chat should not end the interview")
	}
	if response != mockResponses[1] {
		t.Errorf("response = %q, want mock response #1", response)
	}

	history := transcripts.data["u1"]
	if len(history) != 2 {
		t.Fatalf("transcript = %+v, want answered exchange plus pending question", history)
	}
	if history[0].Answer != "hello there" {
		t.Errorf("answer not recorded against the pending question: %+v", history[0])
	}
	if history[1].Question != response || history[1].Answer != "" {
		t.Errorf("pending exchange = %+v, want the new question unanswered", history[1])
	}
}

func TestChatAdvancesEngineAndPersistsState(t *testing.T) {
	resumes := &fakeResumes{resume: &models.Resume{
		Skills:         "python, sql",
		JobDescription: "Looking for someone with strong sql skills",
	}}
	service, states, transcripts := newTestService(resumes)
	transcripts.data["u1"] = models.Transcript{{Question: "Tell me about yourself."}}

	response, _, err := service.Chat(context.Background(), "u1",
		"I have five years of experience building data platforms and analytics tooling for product teams.")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	st := states.saved["u1"]
	if st == nil {
		t.Fatal("session state not persisted")
	}
	if st.LastQuestionType != models.QuestionTopicIntro || st.CurrentTopic != "sql" {
		t.Errorf("state = %+v, want topic_intro on sql", st)
	}

	history := transcripts.data["u1"]
	if history[len(history)-1].Question != response {
		t.Errorf("transcript tail = %+v, want the engine response", history[len(history)-1])
	}
}

func TestChatWithEmptyTranscriptUsesDefaultOpener(t *testing.T) {
	service, _, transcripts := newTestService(&fakeResumes{})

	if _, _, err := service.Chat(context.Background(), "u1", "hi"); err != nil {
		t.Fatalf("Chat: %v", err)
	}

	history := transcripts.data["u1"]
	if len(history) == 0 || history[0].Question != defaultOpener {
		t.Errorf("transcript = %+v, want the default opener", history)
	}
}
