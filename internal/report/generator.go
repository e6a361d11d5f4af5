// Package report converts a finished interview transcript into quantitative
// scores and qualitative feedback. Generation is a pure computation over the
// transcript and resume/job-description context.
package report

import (
	"math"
	"sort"
	"strings"

	"github.com/prepforge/interview-engine/internal/models"
)

// abbreviatedThreshold is the exchange count at or below which a session is
// considered too short to score.
const abbreviatedThreshold = 2

// technicalKeywords is the vocabulary counted toward the technical score.
var technicalKeywords = []string{
	"python", "sql", "database", "analysis", "modeling", "etl", "pipeline",
	"hadoop", "spark", "aws", "cloud", "machine learning", "statistics",
	"algorithm", "data engineering", "data science", "visualization",
	"tableau", "power bi", "bi", "excel", "analytics",
}

const idealAnswerPlaceholder = "A detailed response that addresses the key points with specific examples."

// Generate scores a transcript. Sessions with two or fewer answered
// exchanges get the degenerate report: nil scores and fixed guidance, a
// deliberate floor against presenting meaningless numbers for aborted
// interviews.
func Generate(transcript models.Transcript, jobDescription, skills string) *models.ReportResponse {
	answered := transcript.Answered()

	if len(answered) <= abbreviatedThreshold {
		return abbreviatedReport(answered)
	}

	exchanges := float64(len(answered))

	engagement := math.Min(85, 50+exchanges*5)

	var totalLength int
	for _, ex := range answered {
		totalLength += len(ex.Answer)
	}
	avgLength := float64(totalLength) / exchanges
	communication := math.Min(90, 40+math.Min(50, avgLength/5))

	keywordHits := countKeywordHits(answered, technicalKeywords)
	technical := math.Min(90, 50+float64(keywordHits)*3)

	overall := math.Floor(technical*0.4 + communication*0.3 + engagement*0.3)

	jobKeywords := keywordsIn(jobDescription, technicalKeywords)
	jobKeywordMatches := countKeywordHits(answered, jobKeywords)

	return &models.ReportResponse{
		Metrics: buildMetrics(answered, technical, communication, engagement),
		Report: models.Report{
			OverallScore:       &overall,
			TechnicalScore:     &technical,
			CommunicationScore: &communication,
			EngagementScore:    &engagement,
			Strengths:          buildStrengths(technical, avgLength, len(answered), jobKeywordMatches),
			Improvements:       buildImprovements(technical, avgLength, jobKeywordMatches, len(jobKeywords)),
			Examples:           buildExamples(answered),
			Resources:          buildResources(answered, skills),
		},
	}
}

func abbreviatedReport(answered []models.Exchange) *models.ReportResponse {
	metrics := models.ReportMetrics{QuestionAnswers: []models.AnswerMetric{}}
	for _, ex := range answered {
		metrics.QuestionAnswers = append(metrics.QuestionAnswers, models.AnswerMetric{
			Question:    ex.Question,
			UserAnswer:  ex.Answer,
			IdealAnswer: idealAnswerPlaceholder,
			Score:       0,
		})
	}

	return &models.ReportResponse{
		AbbreviatedInterview: true,
		Metrics:              metrics,
		Report: models.Report{
			Strengths:    []string{"The interview was ended before a complete assessment could be made."},
			Improvements: []string{"Complete a full interview to receive detailed feedback on your performance."},
			Examples: models.ReportExamples{
				Strong:           []models.AnswerExample{},
				NeedsImprovement: []models.AnswerExample{},
			},
			Resources: []models.Resource{
				{
					Title:       "Interview Preparation Guide",
					Description: "A comprehensive guide to help you prepare for technical and behavioral interviews.",
					Link:        "https://www.themuse.com/advice/interview-preparation-guide",
				},
				{
					Title:       "Practice Technical Interviews",
					Description: "Resources to practice technical interviews with real-world scenarios.",
					Link:        "https://leetcode.com/",
				},
			},
			Message: "This interview was ended early after your introduction. To receive meaningful feedback, try completing a full interview with technical and behavioral questions.",
		},
	}
}

// countKeywordHits counts keyword presence per answer: each keyword scores
// at most once per answer.
func countKeywordHits(answered []models.Exchange, keywords []string) int {
	count := 0
	for _, ex := range answered {
		lower := strings.ToLower(ex.Answer)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
	}
	return count
}

func keywordsIn(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			out = append(out, kw)
		}
	}
	return out
}

func buildStrengths(technical, avgLength float64, exchanges, jobKeywordMatches int) []string {
	var strengths []string

	if technical > 70 {
		strengths = append(strengths, "Demonstrated strong technical knowledge with detailed explanations")
	}
	if avgLength > 100 {
		strengths = append(strengths, "Provided thorough and comprehensive responses to questions")
	}
	if exchanges >= 4 {
		strengths = append(strengths, "Maintained consistent engagement throughout the interview")
	}
	if jobKeywordMatches > 3 {
		strengths = append(strengths, "Effectively aligned responses with job requirements")
	}

	if len(strengths) < 2 {
		strengths = append(strengths, "Willingness to engage with the interview process")
		if technical > 60 {
			strengths = append(strengths, "Demonstrated basic technical knowledge relevant to the position")
		} else {
			strengths = append(strengths, "Showed interest in the field and position")
		}
	}
	return strengths
}

func buildImprovements(technical, avgLength float64, jobKeywordMatches, jobKeywordCount int) []string {
	var improvements []string

	if technical < 70 {
		improvements = append(improvements, "Enhance technical explanations with more specific examples and terminology")
	}
	if avgLength < 70 {
		improvements = append(improvements, "Provide more detailed responses to showcase your experience and knowledge")
	}
	if jobKeywordMatches < 3 && jobKeywordCount > 0 {
		improvements = append(improvements, "Focus more on addressing the specific requirements mentioned in the job description")
	}

	if len(improvements) < 2 {
		improvements = append(improvements,
			"Continue practicing interview responses to build confidence",
			"Consider providing more concrete examples from your experience")
	}
	return improvements
}

// buildExamples picks the strongest and weakest answers by character length,
// a simple but reproducible proxy for answer quality.
func buildExamples(answered []models.Exchange) models.ReportExamples {
	sorted := make([]models.Exchange, len(answered))
	copy(sorted, answered)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Answer) > len(sorted[j].Answer)
	})

	examples := models.ReportExamples{
		Strong:           []models.AnswerExample{},
		NeedsImprovement: []models.AnswerExample{},
	}

	switch {
	case len(sorted) >= 2:
		examples.Strong = []models.AnswerExample{
			{
				Question: sorted[0].Question,
				Answer:   sorted[0].Answer,
				Reason:   "Provided a comprehensive response that demonstrates clear understanding.",
			},
			{
				Question: sorted[1].Question,
				Answer:   sorted[1].Answer,
				Reason:   "Showed good communication skills and technical knowledge.",
			},
		}
	case len(sorted) == 1:
		examples.Strong = []models.AnswerExample{
			{
				Question: sorted[0].Question,
				Answer:   sorted[0].Answer,
				Reason:   "Provided a good response that shows your understanding.",
			},
		}
	}

	switch {
	case len(sorted) >= 4:
		examples.NeedsImprovement = []models.AnswerExample{
			{
				Question:       sorted[len(sorted)-1].Question,
				Answer:         sorted[len(sorted)-1].Answer,
				BetterApproach: "Consider expanding your answer with specific examples and more technical details.",
			},
			{
				Question:       sorted[len(sorted)-2].Question,
				Answer:         sorted[len(sorted)-2].Answer,
				BetterApproach: "Try to provide more context and explain the concepts in greater depth.",
			},
		}
	case len(sorted) >= 2:
		examples.NeedsImprovement = []models.AnswerExample{
			{
				Question:       sorted[len(sorted)-1].Question,
				Answer:         sorted[len(sorted)-1].Answer,
				BetterApproach: "Expand your answer with more details and concrete examples from your experience.",
			},
		}
	}

	return examples
}

// buildResources recommends study material keyed off the skills text or any
// answer, with a guaranteed minimum of two entries.
func buildResources(answered []models.Exchange, skills string) []models.Resource {
	mentions := func(terms ...string) bool {
		skillsLower := strings.ToLower(skills)
		for _, term := range terms {
			if strings.Contains(skillsLower, term) {
				return true
			}
			for _, ex := range answered {
				if strings.Contains(strings.ToLower(ex.Answer), term) {
					return true
				}
			}
		}
		return false
	}

	var resources []models.Resource

	if mentions("sql") {
		resources = append(resources, models.Resource{
			Title:       "Advanced SQL Techniques",
			Description: "Enhance your SQL skills with advanced querying and optimization techniques.",
			Link:        "https://mode.com/sql-tutorial/advanced-sql-techniques/",
		})
	}
	if mentions("python") {
		resources = append(resources, models.Resource{
			Title:       "Python for Data Engineering",
			Description: "Master Python libraries and techniques for efficient data processing and ETL workflows.",
			Link:        "https://realpython.com/python-data-cleaning-numpy-pandas/",
		})
	}
	if mentions("etl", "pipeline") {
		resources = append(resources, models.Resource{
			Title:       "Modern Data Engineering Pipelines",
			Description: "Best practices for building scalable, maintainable ETL pipelines.",
			Link:        "https://www.startdataengineering.com/",
		})
	}
	if mentions("aws", "cloud") {
		resources = append(resources, models.Resource{
			Title:       "AWS for Data Engineering",
			Description: "Learn to leverage AWS services for efficient data processing and analytics.",
			Link:        "https://aws.amazon.com/big-data/what-is-a-data-lake/",
		})
	}

	if len(resources) < 2 {
		resources = append(resources,
			models.Resource{
				Title:       "Technical Interview Preparation",
				Description: "Practical tips and strategies for excelling in technical interviews.",
				Link:        "https://www.educative.io/courses/grokking-the-system-design-interview",
			},
			models.Resource{
				Title:       "Data Engineering Fundamentals",
				Description: "Master the core concepts and tools of modern data engineering.",
				Link:        "https://www.dataquest.io/path/data-engineer/",
			})
	}
	return resources
}

func buildMetrics(answered []models.Exchange, technical, communication, engagement float64) models.ReportMetrics {
	metrics := models.ReportMetrics{
		F1Score:         technical / 100,
		RougeScore:      communication / 100,
		BleuScore:       engagement / 100,
		QuestionAnswers: []models.AnswerMetric{},
	}
	for _, ex := range answered {
		metrics.QuestionAnswers = append(metrics.QuestionAnswers, models.AnswerMetric{
			Question:    ex.Question,
			UserAnswer:  ex.Answer,
			IdealAnswer: idealAnswerPlaceholder,
			Score:       math.Min(1.0, 0.5+float64(len(ex.Answer))/500),
		})
	}
	return metrics
}
