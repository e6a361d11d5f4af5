package interview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prepforge/interview-engine/internal/models"
)

// ErrNoResume is returned when an interview is started for a user without an
// uploaded resume.
var ErrNoResume = errors.New("no resume found for this user")

// StateStore persists per-user session state between turns.
type StateStore interface {
	// Load returns the stored state, or a fresh default state when absent.
	Load(ctx context.Context, userID string) (*models.SessionState, error)
	Save(ctx context.Context, userID string, st *models.SessionState) error
}

// TranscriptStore persists the per-user interview transcript.
type TranscriptStore interface {
	Load(ctx context.Context, userID string) (models.Transcript, error)
	Save(ctx context.Context, userID string, t models.Transcript) error
	Clear(ctx context.Context, userID string) error
}

// ResumeSource exposes the resume and preference records a session runs
// against.
type ResumeSource interface {
	// LatestResume returns the user's most recent resume, or nil when none
	// was uploaded.
	LatestResume(ctx context.Context, userID string) (*models.Resume, error)
	InterviewType(ctx context.Context, userID string) (models.InterviewType, error)
	SetInterviewType(ctx context.Context, userID string, t models.InterviewType) error
}

// defaultOpener is used as the transcript question when history is somehow
// empty at chat time.
const defaultOpener = "Could you tell me about yourself and your background?"

// mockResponses keep a conversation going for users without resume data.
var mockResponses = []string{
	"That's interesting! Can you tell me about a challenging project you worked on and how you overcame obstacles?",
	"Great answer. How do you typically approach problem-solving when given a new task?",
	"I see. Could you explain more about your technical expertise?",
	"Interesting perspective. What tools and technologies are you most comfortable with?",
	"That makes sense. How do you ensure the quality of your work?",
	"Thank you for sharing that. What are your career goals for the next few years?",
	"I appreciate your answer. How do you stay updated with the latest trends in your field?",
	"Very informative. Now, could you walk me through your approach when faced with ambiguous requirements?",
}

// Service orchestrates interview turns: it owns the load→advance→save cycle
// around the engine, with per-user mutual exclusion so overlapping messages
// from the same user never lose updates.
type Service struct {
	states      StateStore
	transcripts TranscriptStore
	resumes     ResumeSource
	engine      *Engine
	rng         Rand

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewService wires the interview service.
func NewService(states StateStore, transcripts TranscriptStore, resumes ResumeSource, engine *Engine, rng Rand) *Service {
	return &Service{
		states:      states,
		transcripts: transcripts,
		resumes:     resumes,
		engine:      engine,
		rng:         rng,
		userLocks:   map[string]*sync.Mutex{},
	}
}

func (s *Service) lockUser(userID string) func() {
	s.mu.Lock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Start begins a fresh interview for the user: previous session state and
// transcript are discarded, the interview-type preference is stored, and the
// opening greeting is returned.
func (s *Service) Start(ctx context.Context, userID string, interviewType models.InterviewType) (string, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	resume, err := s.resumes.LatestResume(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load resume: %w", err)
	}
	if resume == nil {
		return "", ErrNoResume
	}

	if interviewType != models.InterviewBehavioral {
		interviewType = models.InterviewTechnical
	}
	if err := s.resumes.SetInterviewType(ctx, userID, interviewType); err != nil {
		return "", fmt.Errorf("store interview type: %w", err)
	}

	if err := s.states.Save(ctx, userID, models.NewSessionState()); err != nil {
		return "", fmt.Errorf("reset session state: %w", err)
	}
	if err := s.transcripts.Clear(ctx, userID); err != nil {
		return "", fmt.Errorf("clear transcript: %w", err)
	}

	greeting := Greeting(resume.Name)
	if err := s.transcripts.Save(ctx, userID, models.Transcript{{Question: greeting}}); err != nil {
		return "", fmt.Errorf("save transcript: %w", err)
	}

	slog.Info("interview started", "user_id", userID, "interview_type", interviewType)
	return greeting, nil
}

// Chat processes one candidate message and returns the interviewer's
// response plus an end-of-interview flag. An end request short-circuits
// everything and leaves the persisted session untouched so a report can
// still be generated from the transcript.
func (s *Service) Chat(ctx context.Context, userID, message string) (string, bool, error) {
	if IsEndRequest(message) {
		return ClosingMessage(s.rng), true, nil
	}

	unlock := s.lockUser(userID)
	defer unlock()

	history, err := s.transcripts.Load(ctx, userID)
	if err != nil {
		return "", false, fmt.Errorf("load transcript: %w", err)
	}

	lastQuestion := defaultOpener
	if len(history) > 0 {
		lastQuestion = history[len(history)-1].Question
		history = history[:len(history)-1]
	}
	history = append(history, models.Exchange{Question: lastQuestion, Answer: message})
	if err := s.transcripts.Save(ctx, userID, history); err != nil {
		return "", false, fmt.Errorf("save transcript: %w", err)
	}

	resume, err := s.resumes.LatestResume(ctx, userID)
	if err != nil {
		return "", false, fmt.Errorf("load resume: %w", err)
	}

	var response string
	if resume == nil {
		// No resume on file: rotate through canned interviewer prompts.
		slog.Warn("no resume data for user, using generic questions", "user_id", userID)
		response = mockResponses[len(history)%len(mockResponses)]
	} else {
		st, err := s.states.Load(ctx, userID)
		if err != nil {
			return "", false, fmt.Errorf("load session state: %w", err)
		}

		interviewType, err := s.resumes.InterviewType(ctx, userID)
		if err != nil {
			slog.Warn("failed to load interview type, defaulting to technical",
				"user_id", userID, "error", err)
			interviewType = models.InterviewTechnical
		}

		response = s.engine.Advance(ctx, st, message, ResumeContext{
			JobDescription: resume.JobDescription,
			Skills:         resume.Skills,
		}, interviewType)

		if err := s.states.Save(ctx, userID, st); err != nil {
			return "", false, fmt.Errorf("save session state: %w", err)
		}
	}

	history = append(history, models.Exchange{Question: response})
	if err := s.transcripts.Save(ctx, userID, history); err != nil {
		return "", false, fmt.Errorf("save transcript: %w", err)
	}

	return response, false, nil
}

// Transcript returns the user's current transcript for report generation.
func (s *Service) Transcript(ctx context.Context, userID string) (models.Transcript, error) {
	return s.transcripts.Load(ctx, userID)
}
