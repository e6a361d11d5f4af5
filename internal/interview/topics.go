package interview

import "fmt"

// topicDisplayNames maps internal topic ids to the names used in utterances
var topicDisplayNames = map[string]string{
	"python":             "Python programming",
	"sql":                "SQL and database management",
	"data_engineering":   "data engineering and ETL processes",
	"machine_learning":   "machine learning",
	"data_visualization": "data visualization",
	"cloud":              "cloud computing",
	"big_data":           "big data technologies",
	"statistics":         "statistics",
	"general":            "general technical skills",
}

// DisplayName returns the user-facing name for a topic id.
func DisplayName(topic string) string {
	if name, ok := topicDisplayNames[topic]; ok {
		return name
	}
	return topic
}

// commonTopics is the fixed fallback list consulted once skills and
// requirements are exhausted.
var commonTopics = []string{
	"python", "sql", "data_engineering", "machine_learning",
	"data_visualization", "statistics",
}

// SelectNextTopic picks the next interview topic. The fallback chain runs, in
// order: skill/requirement intersection, skills only, requirements only, the
// fixed common list, a revisit of the first intersecting topic, and finally
// the literal "general" topic. The order determines topic-repeat behavior
// once everything is exhausted, so it must not be rearranged.
func SelectNextTopic(skills, requirements SkillSet, explored []string) string {
	var intersection []string
	for _, topic := range skills.Categories {
		if requirements.Has(topic) {
			intersection = append(intersection, topic)
		}
	}

	available := excludeTopics(intersection, explored)

	if len(available) == 0 {
		available = excludeTopics(skills.Categories, explored)
	}
	if len(available) == 0 {
		available = excludeTopics(requirements.Categories, explored)
	}
	if len(available) == 0 {
		available = excludeTopics(commonTopics, explored)
	}
	if len(available) == 0 {
		if len(intersection) > 0 {
			return intersection[0]
		}
		return "general"
	}
	return available[0]
}

func excludeTopics(topics, explored []string) []string {
	var out []string
	for _, t := range topics {
		if !containsString(explored, t) {
			out = append(out, t)
		}
	}
	return out
}

// firstTopicTransitions introduce the opening topic of the interview
var firstTopicTransitions = []string{
	"Let's start by discussing your experience with %s.",
	"I'd like to begin by exploring your knowledge of %s.",
	"To start off, I'd like to ask you about your experience with %s.",
	"Let's dive into your background with %s first.",
}

// nextTopicTransitions bridge between subsequent topics
var nextTopicTransitions = []string{
	"Great. Now let's move on to discuss your experience with %s.",
	"Thank you for that. I'd like to switch gears and talk about your knowledge of %s.",
	"That's helpful information. Let's now explore your skills in %s.",
	"I appreciate those insights. Let's shift our focus to %s.",
	"Excellent. I'd like to move on to another area. Could you tell me about your experience with %s?",
}

// TopicTransition produces a natural transition phrase into the given topic.
func TopicTransition(rng Rand, topic string, isFirstTopic bool) string {
	pool := nextTopicTransitions
	if isFirstTopic {
		pool = firstTopicTransitions
	}
	return fmt.Sprintf(pick(rng, pool), DisplayName(topic))
}
