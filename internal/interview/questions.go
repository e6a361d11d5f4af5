package interview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prepforge/interview-engine/internal/models"
	"github.com/prepforge/interview-engine/internal/questionbank"
)

// QAPair is one ranked result from the retrieval boundary
type QAPair struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"`
}

// Retriever is the vector-similarity question retrieval boundary. It may
// return fewer than topK results, or none; it must never be required for the
// interview to proceed.
type Retriever interface {
	RetrieveQA(ctx context.Context, query string, topK int, skillFilter string) ([]QAPair, error)
}

const retrievalTopK = 5

// Retrieval under-return thresholds before topping up from the static
// tables. The asymmetry between the two paths is deliberate and observable.
const (
	minTechnicalQuestions  = 2
	minBehavioralQuestions = 3
)

// maxFallbackQuestions caps generated fallback question lists
const maxFallbackQuestions = 5

// skillFilterTopics are the topics the retrieval service can filter on
var skillFilterTopics = []string{"python", "sql", "machine_learning"}

var difficultyTerms = map[models.Difficulty]string{
	models.DifficultyEasy:   "basic",
	models.DifficultyMedium: "intermediate",
	models.DifficultyHard:   "advanced",
}

// QuestionProvider assembles candidate questions for a topic/concept/
// difficulty, preferring the retrieval boundary and always falling back to
// the static question bank or templated prompts.
type QuestionProvider struct {
	retriever Retriever
	bank      *questionbank.Bank
	rng       Rand
}

// NewQuestionProvider wires a provider. bank must not be nil; retriever may
// be nil to force offline behavior.
func NewQuestionProvider(retriever Retriever, bank *questionbank.Bank, rng Rand) *QuestionProvider {
	return &QuestionProvider{retriever: retriever, bank: bank, rng: rng}
}

// GetQuestions returns candidate questions for the given slot, phrased
// according to the interview type.
func (p *QuestionProvider) GetQuestions(ctx context.Context, topic, concept string, difficulty models.Difficulty, jobDescription string, interviewType models.InterviewType, skills string) []string {
	if interviewType == models.InterviewBehavioral {
		return p.behavioralQuestions(ctx, topic, concept, jobDescription, skills)
	}
	return p.technicalQuestions(ctx, topic, concept, difficulty, jobDescription, skills)
}

func (p *QuestionProvider) technicalQuestions(ctx context.Context, topic, concept string, difficulty models.Difficulty, jobDescription, skills string) []string {
	difficultyTerm, ok := difficultyTerms[difficulty]
	if !ok {
		difficultyTerm = "intermediate"
	}

	techTerms := DetectTechTerms(skills, jobDescription, 3)
	query := fmt.Sprintf("%s technical interview questions about %s in %s for a %s position using %s",
		difficultyTerm, concept, topic, jobDescription, techContext(techTerms))

	questions, err := p.retrieve(ctx, query, topic)
	if err != nil {
		slog.Warn("question retrieval failed, using static fallback",
			"topic", topic, "concept", concept, "error", err)
		return p.fallbackConceptQuestions(topic, concept, difficulty)
	}

	if len(questions) < minTechnicalQuestions {
		slog.Info("retrieval under-returned technical questions",
			"topic", topic, "concept", concept, "difficulty", difficulty, "got", len(questions))
		questions = append(questions, p.fallbackConceptQuestions(topic, concept, difficulty)...)
	}
	return questions
}

func (p *QuestionProvider) behavioralQuestions(ctx context.Context, topic, concept, jobDescription, skills string) []string {
	techTerms := DetectTechTerms(skills, jobDescription, 3)
	query := fmt.Sprintf("behavioral interview questions about %s in %s for a %s position involving %s",
		concept, topic, jobDescription, techContext(techTerms))

	questions, err := p.retrieve(ctx, query, topic)
	if err != nil {
		slog.Warn("behavioral question retrieval failed, generating locally",
			"topic", topic, "concept", concept, "error", err)
		return p.generateBehavioralQuestions(topic, concept, techTerms)
	}

	if len(questions) < minBehavioralQuestions {
		slog.Info("retrieval under-returned behavioral questions",
			"topic", topic, "concept", concept, "got", len(questions))
		questions = append(questions, p.generateBehavioralQuestions(topic, concept, techTerms)...)
	}
	return questions
}

// retrieve queries the retrieval boundary and keeps only non-empty
// questions, preserving rank order.
func (p *QuestionProvider) retrieve(ctx context.Context, query, topic string) ([]string, error) {
	if p.retriever == nil {
		return nil, fmt.Errorf("no retriever configured")
	}

	skillFilter := ""
	if containsString(skillFilterTopics, topic) {
		skillFilter = topic
	}

	pairs, err := p.retriever.RetrieveQA(ctx, query, retrievalTopK, skillFilter)
	if err != nil {
		return nil, err
	}

	var questions []string
	for _, pair := range pairs {
		if pair.Question != "" {
			questions = append(questions, pair.Question)
		}
	}
	return questions, nil
}

func techContext(techTerms []string) string {
	if len(techTerms) == 0 {
		return "relevant technologies"
	}
	if len(techTerms) > 3 {
		techTerms = techTerms[:3]
	}
	return strings.Join(techTerms, ", ")
}

// fallbackConceptQuestions serves the static per-topic/concept/difficulty
// table, falling further back to experience-style prompts referencing the
// topic and concept. Lists longer than five are trimmed by difficulty: hard
// keeps the last five, easy the first five, medium a middle slice.
func (p *QuestionProvider) fallbackConceptQuestions(topic, concept string, difficulty models.Difficulty) []string {
	questions := p.bank.Lookup(topic, concept, difficulty)

	if len(questions) == 0 {
		questions = append(questions,
			fmt.Sprintf("Tell me about a challenging project where you applied your %s skills. What was your role and how did you overcome obstacles?", topic),
			fmt.Sprintf("Describe a situation where you had to learn a new %s technology or framework quickly. How did you approach it?", topic),
			fmt.Sprintf("Can you share an experience where you had to debug a complex issue related to %s? What was your process?", topic),
			fmt.Sprintf("Tell me about a time when you improved the performance or efficiency of a %s solution. What was your approach?", topic),
			fmt.Sprintf("Have you ever had to explain complex %s concepts to non-technical stakeholders? How did you approach this?", topic),
		)
		if concept != "" {
			questions = append(questions,
				fmt.Sprintf("Describe a project where you applied %s in your work. What challenges did you face?", concept),
				fmt.Sprintf("Tell me about a time when you had to make a difficult decision related to %s. What factors did you consider?", concept),
				fmt.Sprintf("Have you ever had to collaborate with others on implementing %s? How did you ensure effective teamwork?", concept),
				fmt.Sprintf("Share an experience where you had to adapt your approach to %s based on changing requirements.", concept),
			)
		}
		questions = append(questions,
			"Tell me about a time when you had to work with incomplete or messy data. How did you handle it?",
			"Describe a situation where you had to balance data quality with tight deadlines. What tradeoffs did you make?",
			"Can you share an experience where you helped drive a data-informed decision that had significant impact?",
			"Tell me about a time when you had to present complex analysis results to stakeholders. How did you make it understandable?",
		)
	}

	return trimByDifficulty(questions, difficulty)
}

// trimByDifficulty is a reproducible selection policy, not arbitrary
// truncation: later questions in a slot tend to be more complex, so hard
// keeps the tail, easy the head, and medium the middle.
func trimByDifficulty(questions []string, difficulty models.Difficulty) []string {
	if len(questions) <= maxFallbackQuestions {
		return questions
	}
	switch difficulty {
	case models.DifficultyHard:
		return questions[len(questions)-maxFallbackQuestions:]
	case models.DifficultyEasy:
		return questions[:maxFallbackQuestions]
	default:
		middle := len(questions) / 2
		return questions[middle-2 : middle+3]
	}
}

// generateBehavioralQuestions templates behavioral questions from the topic,
// concept and up to two detected technologies, plus a fixed pool of general
// data-professional prompts. Pools larger than five are shuffled down to
// five.
func (p *QuestionProvider) generateBehavioralQuestions(topic, concept string, techTerms []string) []string {
	var questions []string

	if containsString(skillFilterTopics, topic) || strings.Contains(topic, "data") {
		questions = append(questions,
			fmt.Sprintf("Tell me about a challenging project where you applied your %s skills. What was your role and how did you overcome obstacles?", topic),
			fmt.Sprintf("Describe a situation where you had to learn a new %s technology or framework quickly. How did you approach it?", topic),
			fmt.Sprintf("Can you share an experience where you had to debug a complex issue related to %s? What was your process?", topic),
			fmt.Sprintf("Tell me about a time when you improved the performance or efficiency of a %s solution. What was your approach?", topic),
			fmt.Sprintf("Have you ever had to explain complex %s concepts to non-technical stakeholders? How did you approach this?", topic),
		)
	}

	if concept != "" {
		questions = append(questions,
			fmt.Sprintf("Describe a project where you applied %s in your work. What challenges did you face?", concept),
			fmt.Sprintf("Tell me about a time when you had to make a difficult decision related to %s. What factors did you consider?", concept),
			fmt.Sprintf("Have you ever had to collaborate with others on implementing %s? How did you ensure effective teamwork?", concept),
			fmt.Sprintf("Share an experience where you had to adapt your approach to %s based on changing requirements.", concept),
			fmt.Sprintf("Can you describe a situation where you had to advocate for using %s when others preferred a different approach?", concept),
		)
	}

	terms := techTerms
	if len(terms) > 2 {
		terms = terms[:2]
	}
	for _, term := range terms {
		questions = append(questions,
			fmt.Sprintf("Tell me about your experience using %s. What projects have you applied it to?", term),
			fmt.Sprintf("Describe a challenge you faced when working with %s and how you overcame it.", term),
			fmt.Sprintf("Have you ever had to teach or mentor someone on %s? What approach did you take?", term),
		)
	}

	questions = append(questions,
		"Tell me about a time when you had to work with incomplete or messy data. How did you handle it?",
		"Describe a situation where you had to balance data quality with tight deadlines. What tradeoffs did you make?",
		"Can you share an experience where you helped drive a data-informed decision that had significant impact?",
		"Tell me about a time when you had to present complex analysis results to stakeholders. How did you make it understandable?",
		"Describe a situation where you identified an opportunity for process improvement through data analysis.",
	)

	if len(questions) > maxFallbackQuestions {
		p.rng.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
		return questions[:maxFallbackQuestions]
	}
	return questions
}
