package interview

import (
	"context"
	"fmt"

	"github.com/prepforge/interview-engine/internal/models"
)

// Question budget per concept and per topic. Each concept gets one
// escalation (two questions) before it is marked covered; each topic cycles
// through at most five concepts before the interview moves on.
const (
	maxQuestionsPerConcept = 2
	maxConceptsPerTopic    = 5
)

// ResumeContext is the resume/job-description context a session runs
// against.
type ResumeContext struct {
	JobDescription string
	Skills         string
}

// Engine is the interview session state machine. It is deterministic for a
// fixed Rand and question provider, and mutates only the SessionState passed
// into Advance.
type Engine struct {
	provider *QuestionProvider
	rng      Rand
}

// NewEngine creates an engine around a question provider and randomness
// source.
func NewEngine(provider *QuestionProvider, rng Rand) *Engine {
	return &Engine{provider: provider, rng: rng}
}

// Advance processes one candidate answer and produces the interviewer's next
// utterance, transitioning the session state.
//
// The flow nests three escalations: difficulty within a concept, concepts
// within a topic, topics within the interview. Short or vague answers stall
// the machine: the candidate gets a follow-up probe and keeps their position
// instead of losing the current topic/concept.
func (e *Engine) Advance(ctx context.Context, st *models.SessionState, message string, rc ResumeContext, interviewType models.InterviewType) string {
	ev := EvaluateAnswer(e.rng, message, AnswerContext{
		Topic:   st.CurrentTopic,
		Concept: st.CurrentConcept,
	})

	var feedback string
	if (ev.IsShort || ev.IsVague) && ev.FollowUp != "" {
		feedback = ev.Feedback
		// Stall: ask the follow-up without advancing state. Introductions
		// are exempt so a terse opener still starts the interview.
		if st.LastQuestionType != models.QuestionIntroduction {
			return feedback + " " + ev.FollowUp
		}
	} else {
		feedback = AnswerFeedback(e.rng, len(message), ContainsTechnicalTerms(message))
	}

	switch st.LastQuestionType {
	case models.QuestionIntroduction:
		ack := IntroductionAcknowledgment(e.rng, message)
		return e.transitionToNewTopic(st, rc, ack, true)

	case models.QuestionTopicIntro:
		available := e.availableConcepts(st, rc)
		if len(available) > 0 {
			return e.startConcept(ctx, st, rc, interviewType, feedback, available[0], conceptIntro)
		}
		// Topic exhausted before any concept was asked: move on.
		return e.transitionToNewTopic(st, rc, feedback, false)

	case models.QuestionConceptQuestion:
		return e.advanceConcept(ctx, st, rc, interviewType, feedback)

	default:
		// Unknown state from an older session blob: recover by selecting a
		// fresh topic.
		return e.transitionToNewTopic(st, rc, feedback, len(st.ExploredTopics) == 0)
	}
}

// advanceConcept handles the concept_question state: escalate difficulty,
// then rotate concepts within the topic, then rotate topics.
func (e *Engine) advanceConcept(ctx context.Context, st *models.SessionState, rc ResumeContext, interviewType models.InterviewType, feedback string) string {
	if st.QuestionCountInConcept < maxQuestionsPerConcept {
		st.CurrentDifficulty = st.CurrentDifficulty.Next()
		st.QuestionCountInConcept++

		questions := e.provider.GetQuestions(ctx, st.CurrentTopic, st.CurrentConcept,
			st.CurrentDifficulty, rc.JobDescription, interviewType, rc.Skills)
		if len(questions) > 0 {
			return feedback + " " + questions[0]
		}
		return fmt.Sprintf("%s Going a bit deeper on %s, how would you approach a complex problem in this area?",
			feedback, st.CurrentConcept)
	}

	e.markConceptCovered(st)

	if st.QuestionsInCurrentTopic < maxConceptsPerTopic {
		available := e.availableConcepts(st, rc)
		if len(available) > 0 {
			st.QuestionsInCurrentTopic++
			return e.startConcept(ctx, st, rc, interviewType, feedback, available[0], conceptSwitch)
		}
	}
	return e.transitionToNewTopic(st, rc, feedback, false)
}

// conceptPhrasing distinguishes the first concept of a topic from a switch
// between concepts.
type conceptPhrasing int

const (
	conceptIntro conceptPhrasing = iota
	conceptSwitch
)

// startConcept moves the session onto a concept at easy difficulty and asks
// its first question.
func (e *Engine) startConcept(ctx context.Context, st *models.SessionState, rc ResumeContext, interviewType models.InterviewType, feedback, concept string, phrasing conceptPhrasing) string {
	st.CurrentConcept = concept
	st.CurrentDifficulty = models.DifficultyEasy
	st.QuestionCountInConcept = 1
	st.LastQuestionType = models.QuestionConceptQuestion

	questions := e.provider.GetQuestions(ctx, st.CurrentTopic, concept,
		models.DifficultyEasy, rc.JobDescription, interviewType, rc.Skills)

	if len(questions) > 0 {
		if phrasing == conceptSwitch {
			return fmt.Sprintf("%s Now, let's move on to %s. %s", feedback, concept, questions[0])
		}
		return fmt.Sprintf("%s Now, let's discuss %s in this area. %s", feedback, concept, questions[0])
	}

	if phrasing == conceptSwitch {
		return fmt.Sprintf("%s Let's switch to discussing %s. Can you explain your approach to this area?", feedback, concept)
	}
	return fmt.Sprintf("%s Let's talk about %s. Can you explain the key principles or approaches in this area?", feedback, concept)
}

// transitionToNewTopic selects the next topic, resets the per-topic state
// and asks the opening experience question. lead is the acknowledgment or
// feedback sentence that opens the response.
func (e *Engine) transitionToNewTopic(st *models.SessionState, rc ResumeContext, lead string, isFirstTopic bool) string {
	skills := ExtractSkills(rc.Skills)
	requirements := ExtractRequirements(rc.JobDescription)

	next := SelectNextTopic(skills, requirements, st.ExploredTopics)
	transition := TopicTransition(e.rng, next, isFirstTopic)

	st.CurrentTopic = next
	if !containsString(st.ExploredTopics, next) {
		st.ExploredTopics = append(st.ExploredTopics, next)
	}
	st.CurrentConcept = ""
	st.QuestionsInCurrentTopic = 1
	st.LastQuestionType = models.QuestionTopicIntro
	if st.ConceptsCovered == nil {
		st.ConceptsCovered = map[string][]string{}
	}
	// Covered concepts survive a topic revisit.
	if _, ok := st.ConceptsCovered[next]; !ok {
		st.ConceptsCovered[next] = []string{}
	}

	return fmt.Sprintf("%s %s Could you tell me about your experience with this area?", lead, transition)
}

func (e *Engine) availableConcepts(st *models.SessionState, rc ResumeContext) []string {
	concepts := ConceptsFor(st.CurrentTopic, rc.JobDescription, rc.Skills)
	return AvailableConcepts(concepts, st.ConceptsCovered[st.CurrentTopic])
}

func (e *Engine) markConceptCovered(st *models.SessionState) {
	if st.ConceptsCovered == nil {
		st.ConceptsCovered = map[string][]string{}
	}
	covered := st.ConceptsCovered[st.CurrentTopic]
	if st.CurrentConcept != "" && !containsString(covered, st.CurrentConcept) {
		st.ConceptsCovered[st.CurrentTopic] = append(covered, st.CurrentConcept)
	}
}
