package interview

import (
	"fmt"
	"strings"
)

// AnswerContext carries the topic/concept the answer was given against
type AnswerContext struct {
	Topic   string
	Concept string
}

// Evaluation is the outcome of judging one answer. A sufficient answer has
// everything zeroed, which tells the caller to fall back to the default
// feedback generator.
type Evaluation struct {
	IsShort  bool
	IsVague  bool
	FollowUp string
	Feedback string
}

// Sufficient reports whether the answer needs no special handling.
func (e Evaluation) Sufficient() bool {
	return !e.IsShort && !e.IsVague && e.FollowUp == "" && e.Feedback == ""
}

// genericPhrases are answers considered vague when they match the whole
// message.
var genericPhrases = []string{
	"yes", "no", "maybe", "i don't know", "not sure", "i guess", "ok", "okay",
}

var veryShortFeedback = []string{
	"I'd like to hear more about that.",
	"Could you elaborate on that?",
	"I'd appreciate if you could share more details.",
	"Let's explore that further.",
	"I'm interested in learning more about your perspective.",
}

var shortFeedback = []string{
	"Thanks for sharing that.",
	"I see.",
	"That's interesting.",
	"I appreciate your answer.",
	"Thank you for that response.",
}

// EvaluateAnswer classifies an answer as short/vague/sufficient and, for
// insufficient ones, produces feedback plus an optional follow-up probe.
// A merely-short answer of five or more words that is not vague gets
// feedback but no follow-up: shortness alone never escalates.
func EvaluateAnswer(rng Rand, answer string, ctx AnswerContext) Evaluation {
	words := strings.Fields(answer)
	wordCount := len(words)
	answerLength := len(answer)

	isShort := wordCount < 15 || answerLength < 80
	isVeryShort := wordCount < 5

	lower := strings.ToLower(answer)
	isVague := containsString(genericPhrases, lower) ||
		(wordCount < 10 && !strings.ContainsAny(answer, ",.;:!?"))

	var pool []string
	switch {
	case isVeryShort:
		pool = veryShortFeedback
	case isShort:
		pool = shortFeedback
	default:
		// Sufficient answer: the caller uses the default feedback generator.
		return Evaluation{}
	}

	ev := Evaluation{
		IsShort:  isShort,
		IsVague:  isVague,
		Feedback: pick(rng, pool),
	}

	if isVeryShort || isVague {
		ev.FollowUp = followUpQuestion(rng, ctx)
	}
	return ev
}

func followUpQuestion(rng Rand, ctx AnswerContext) string {
	if ctx.Topic == "" {
		return pick(rng, []string{
			"Could you elaborate on that with some specific examples?",
			"Can you tell me more about your experience in this area?",
			"What specific skills or approaches have you used?",
			"Could you walk me through a scenario where you applied this?",
			"What particular aspects have you found most challenging or interesting?",
		})
	}
	if ctx.Concept != "" {
		return pick(rng, []string{
			fmt.Sprintf("Could you explain more about your experience with %s in %s?", ctx.Concept, ctx.Topic),
			fmt.Sprintf("What specific aspects of %s have you worked with?", ctx.Concept),
			fmt.Sprintf("Can you provide an example of how you've applied %s?", ctx.Concept),
			fmt.Sprintf("What challenges have you faced when working with %s?", ctx.Concept),
			fmt.Sprintf("How would you explain %s to someone new to %s?", ctx.Concept, ctx.Topic),
		})
	}
	return pick(rng, []string{
		fmt.Sprintf("Could you share more about your experience with %s?", ctx.Topic),
		fmt.Sprintf("What specific projects have you worked on that involved %s?", ctx.Topic),
		fmt.Sprintf("What aspects of %s are you most familiar with?", ctx.Topic),
		fmt.Sprintf("How have you applied your knowledge of %s in your work?", ctx.Topic),
		fmt.Sprintf("What do you find most interesting about %s?", ctx.Topic),
	})
}

// feedbackTechnicalTerms drives the technical-term-presence heuristic behind
// the default feedback generator.
var feedbackTechnicalTerms = []string{
	"algorithm", "function", "database", "code", "python", "sql",
	"dataframe", "query", "model", "api", "class", "method",
}

// ContainsTechnicalTerms reports whether the answer mentions any of the
// feedback vocabulary.
func ContainsTechnicalTerms(answer string) bool {
	lower := strings.ToLower(answer)
	for _, term := range feedbackTechnicalTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

var simpleFeedback = []string{
	"That's a good point.",
	"I see, thanks for sharing that.",
	"That makes sense.",
	"Interesting perspective.",
	"Thanks for explaining that.",
	"I appreciate your answer.",
	"That's helpful information.",
	"Good to know.",
	"Thanks for sharing your approach.",
}

var technicalFeedback = []string{
	"That's a solid technical explanation.",
	"Your technical knowledge is evident.",
	"That's a well-articulated technical response.",
	"I appreciate your detailed technical explanation.",
	"Good technical insight there.",
}

var detailedFeedback = []string{
	"Thanks for the comprehensive answer.",
	"I appreciate that detailed explanation.",
	"That's quite thorough, thank you.",
	"Thanks for providing such a detailed response.",
	"That's a well-elaborated answer.",
}

// AnswerFeedback generates the default positive feedback phrase, weighted by
// answer length and technical-term presence.
func AnswerFeedback(rng Rand, answerLength int, containsTechnicalTerms bool) string {
	var candidates []string
	switch {
	case containsTechnicalTerms && answerLength > 100:
		candidates = append(append(candidates, technicalFeedback...), detailedFeedback...)
	case containsTechnicalTerms:
		candidates = append(append(candidates, technicalFeedback...), simpleFeedback...)
	case answerLength > 100:
		candidates = append(append(candidates, detailedFeedback...), simpleFeedback...)
	default:
		candidates = simpleFeedback
	}
	return pick(rng, candidates)
}

var experienceTerms = []string{
	"experience", "worked", "background", "years", "job", "role",
	"position", "project", "developed", "built", "created", "degree",
}

var educationTerms = []string{
	"university", "college", "degree", "graduated", "school",
	"bachelor", "master", "phd", "student", "studying",
}

var interestTerms = []string{
	"interested", "passion", "enjoy", "love", "excited", "hobby",
	"focus", "specialized", "specializing", "learning",
}

var experienceAcks = []string{
	"Thanks for sharing your professional background.",
	"I appreciate you walking me through your experience.",
	"Your experience sounds relevant for the role we're discussing.",
	"Thanks for sharing those details about your work history.",
}

var educationAcks = []string{
	"Thanks for sharing your educational background.",
	"Your academic background provides good context.",
	"I appreciate knowing about your educational journey.",
	"That's helpful to know about your studies.",
}

var interestAcks = []string{
	"I can see your enthusiasm for this field.",
	"Your interests align well with what we're looking for.",
	"It's great to hear about your passion in these areas.",
	"Thanks for sharing what motivates you in your work.",
}

var genericAcks = []string{
	"Thank you for that introduction.",
	"Thanks for sharing a bit about yourself.",
	"I appreciate you taking the time to introduce yourself.",
	"That gives me a better understanding of your background.",
}

var introTransitions = []string{
	"Now, I'd like to move on to some questions about your technical experience.",
	"Let's dive into some specific technical areas relevant to the role.",
	"I'd like to learn more about your technical skills and expertise.",
	"Now, let's focus on some technical aspects related to this position.",
}

// IntroductionAcknowledgment produces a personalized acknowledgment of the
// candidate's introduction before the first topic. Detection of
// experience/education/interest phrases picks the matching acknowledgment;
// only the first matching one is used to keep the response concise.
func IntroductionAcknowledgment(rng Rand, introMessage string) string {
	lower := strings.ToLower(introMessage)

	containsAny := func(terms []string) bool {
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return true
			}
		}
		return false
	}

	var acknowledgments []string
	if containsAny(experienceTerms) {
		acknowledgments = append(acknowledgments, pick(rng, experienceAcks))
	}
	if containsAny(educationTerms) {
		acknowledgments = append(acknowledgments, pick(rng, educationAcks))
	}
	if containsAny(interestTerms) {
		acknowledgments = append(acknowledgments, pick(rng, interestAcks))
	}
	if len(acknowledgments) == 0 {
		acknowledgments = append(acknowledgments, pick(rng, genericAcks))
	}

	return acknowledgments[0] + " " + pick(rng, introTransitions)
}

// endPhrases are matched case-insensitively as substrings of the incoming
// message to detect an end-of-interview request.
var endPhrases = []string{
	"i would like to end",
	"can we end",
	"let's end",
	"i think we can end",
	"i think we should end",
	"we can end",
	"we should end",
	"want to end",
	"i am done",
	"i'm done",
	"that's all",
	"that is all",
	"finish the interview",
	"conclude the interview",
	"let's wrap up",
	"let's finish",
	"wrap up the interview",
	"complete the interview",
	"end this interview",
	"end the interview",
	"don't have more questions",
	"no more questions",
}

// IsEndRequest reports whether the candidate asked to conclude the interview.
func IsEndRequest(message string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range endPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

var closingResponses = []string{
	"Thank you for your time today. I've learned a lot about your background and skills. The interview is now complete, and you'll be redirected to the feedback page.",
	"Great! We've covered quite a bit today. Thank you for sharing your experience and knowledge. We'll now wrap up the interview and move to the feedback.",
	"Thanks for this discussion. I appreciate your detailed responses. We'll conclude the interview now and proceed to the feedback section.",
	"That concludes our interview for today. Thank you for your thoughtful answers. You'll now be directed to the feedback page.",
}

// ClosingMessage returns the interviewer's sign-off.
func ClosingMessage(rng Rand) string {
	return pick(rng, closingResponses)
}

// Greeting opens the interview, personalized with the candidate's name when
// one was extracted from the resume.
func Greeting(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Hello! I'll be conducting your interview today. Could you start by telling me a bit about yourself and your background?"
	}
	return fmt.Sprintf("Hello %s! I'll be conducting your interview today. Could you start by telling me a bit about yourself and your background?", name)
}
