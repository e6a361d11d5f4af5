package models

// InterviewType selects the question style for a session
type InterviewType string

const (
	InterviewTechnical  InterviewType = "technical"
	InterviewBehavioral InterviewType = "behavioral"
)

// Difficulty of a concept question. Escalates within a concept and never
// regresses.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Next returns the difficulty one level up. Hard stays hard.
func (d Difficulty) Next() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyHard
	}
}

// QuestionType drives the session state machine's transition logic
type QuestionType string

const (
	QuestionIntroduction    QuestionType = "introduction"
	QuestionTopicIntro      QuestionType = "topic_intro"
	QuestionConceptQuestion QuestionType = "concept_question"
)

// SessionStateVersion is bumped whenever the serialized shape of
// SessionState changes, so stored sessions are never misread.
const SessionStateVersion = 1

// SessionState is the per-user interview session state, persisted as a
// versioned JSON blob between turns and mutated only by the engine.
type SessionState struct {
	Version                 int                 `json:"version"`
	CurrentTopic            string              `json:"current_topic,omitempty"`
	ExploredTopics          []string            `json:"explored_topics"`
	QuestionsInCurrentTopic int                 `json:"questions_in_current_topic"`
	LastQuestionType        QuestionType        `json:"last_question_type"`
	ConceptsCovered         map[string][]string `json:"concepts_covered"`
	CurrentConcept          string              `json:"current_concept,omitempty"`
	CurrentDifficulty       Difficulty          `json:"current_difficulty"`
	QuestionCountInConcept  int                 `json:"question_count_in_concept"`
}

// NewSessionState returns the default state for a freshly started interview.
func NewSessionState() *SessionState {
	return &SessionState{
		Version:           SessionStateVersion,
		ExploredTopics:    []string{},
		LastQuestionType:  QuestionIntroduction,
		ConceptsCovered:   map[string][]string{},
		CurrentDifficulty: DifficultyEasy,
	}
}

// Exchange is one question/answer pair in a transcript. Answer is empty for
// the most recent, not-yet-answered question.
type Exchange struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Transcript is the ordered question/answer history of one interview.
// Append-only during a session.
type Transcript []Exchange

// Answered returns the exchanges that have a non-empty answer,
// preserving order.
func (t Transcript) Answered() []Exchange {
	out := make([]Exchange, 0, len(t))
	for _, ex := range t {
		if ex.Question != "" && ex.Answer != "" {
			out = append(out, ex)
		}
	}
	return out
}

// ChatRequest is the body of a chat turn
type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// ChatResponse carries the interviewer's next utterance
type ChatResponse struct {
	Response     string `json:"response"`
	EndInterview bool   `json:"end_interview,omitempty"`
}

// StartInterviewRequest begins a new session, discarding any previous state
type StartInterviewRequest struct {
	UserID         string `json:"user_id"`
	JobDescription string `json:"job_description"`
	InterviewType  string `json:"interview_type,omitempty"`
}

// StartInterviewResponse carries the opening question
type StartInterviewResponse struct {
	Message  string `json:"message"`
	Question string `json:"question"`
}
