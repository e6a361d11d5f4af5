package interview

import "strings"

// topicConcepts lists, in priority order, the concepts probed within each
// topic.
var topicConcepts = map[string][]string{
	"python": {
		"data structures", "pandas", "numpy", "list comprehensions",
		"object-oriented programming", "decorators", "generators",
		"error handling", "file handling", "libraries", "frameworks",
	},
	"sql": {
		"joins", "subqueries", "indexes", "optimization", "window functions",
		"normalization", "data modeling", "transactions", "views", "stored procedures",
	},
	"data_engineering": {
		"etl processes", "data pipelines", "batch vs streaming", "data warehousing",
		"data lake", "data governance", "data quality", "data partitioning",
		"distributed computing", "workflow orchestration",
	},
	"machine_learning": {
		"supervised learning", "unsupervised learning", "feature engineering",
		"model evaluation", "overfitting", "underfitting", "cross-validation",
		"neural networks", "decision trees", "classification", "regression",
	},
	"data_visualization": {
		"chart types", "dashboarding", "bi tools", "visual design principles",
		"interactive visualizations", "storytelling with data", "reporting",
	},
	"cloud": {
		"service models", "deployment models", "storage solutions", "compute services",
		"serverless", "containers", "kubernetes", "infrastructure as code", "cost optimization",
	},
	"big_data": {
		"hadoop", "spark", "distributed systems", "parallel processing",
		"data partitioning", "scaling strategies", "real-time processing",
	},
	"statistics": {
		"hypothesis testing", "probability distributions", "sampling methods",
		"confidence intervals", "regression analysis", "experimental design",
		"a/b testing", "statistical significance", "correlation vs causation",
	},
	"general": {
		"problem solving", "communication", "teamwork", "project management",
		"time management", "technical documentation", "best practices",
	},
}

// genericConcepts are used for topics outside the taxonomy
var genericConcepts = []string{"general knowledge", "fundamentals", "best practices"}

// minRelevantConcepts is the floor on concepts returned per topic
const minRelevantConcepts = 3

// ConceptsFor returns the concepts to probe for a topic, ordered by
// relevance: concepts textually present in the job description or skills
// come first, then the remaining table entries pad the list to at least
// three (or until the table is exhausted).
func ConceptsFor(topic, jobDescription, skills string) []string {
	defaults, ok := topicConcepts[topic]
	if !ok {
		defaults = genericConcepts
	}

	jobLower := strings.ToLower(jobDescription)
	skillsLower := strings.ToLower(skills)

	var relevant []string
	for _, concept := range defaults {
		if strings.Contains(jobLower, concept) || strings.Contains(skillsLower, concept) {
			relevant = append(relevant, concept)
		}
	}

	if len(relevant) < minRelevantConcepts {
		for _, concept := range defaults {
			if !containsString(relevant, concept) {
				relevant = append(relevant, concept)
			}
			if len(relevant) >= minRelevantConcepts {
				break
			}
		}
	}
	return relevant
}

// AvailableConcepts filters out concepts already covered for the topic,
// preserving order.
func AvailableConcepts(concepts, covered []string) []string {
	var out []string
	for _, c := range concepts {
		if !containsString(covered, c) {
			out = append(out, c)
		}
	}
	return out
}
