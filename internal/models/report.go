package models

// Report is the post-interview performance report. Scores are nil for
// abbreviated interviews (two or fewer answered exchanges).
type Report struct {
	OverallScore       *float64        `json:"overall_score"`
	TechnicalScore     *float64        `json:"technical_score"`
	CommunicationScore *float64        `json:"communication_score"`
	EngagementScore    *float64        `json:"engagement_score"`
	Strengths          []string        `json:"strengths"`
	Improvements       []string        `json:"improvements"`
	Examples           ReportExamples  `json:"examples"`
	Resources          []Resource      `json:"resources"`
	Message            string          `json:"message,omitempty"`
}

// ReportExamples groups the strongest and weakest answers
type ReportExamples struct {
	Strong           []AnswerExample `json:"strong"`
	NeedsImprovement []AnswerExample `json:"needsImprovement"`
}

// AnswerExample is a highlighted answer with a rationale. Reason is set for
// strong examples, BetterApproach for weak ones.
type AnswerExample struct {
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	Reason         string `json:"reason,omitempty"`
	BetterApproach string `json:"betterApproach,omitempty"`
}

// Resource is a recommended study link
type Resource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// ReportMetrics mirrors the three report scores as 0..1 scalars and carries
// the per-answer detail table.
type ReportMetrics struct {
	F1Score         float64        `json:"f1Score"`
	RougeScore      float64        `json:"rougeScore"`
	BleuScore       float64        `json:"bleuScore"`
	QuestionAnswers []AnswerMetric `json:"questionAnswers"`
}

// AnswerMetric is one row of the per-answer detail table
type AnswerMetric struct {
	Question    string  `json:"question"`
	UserAnswer  string  `json:"userAnswer"`
	IdealAnswer string  `json:"idealAnswer"`
	Score       float64 `json:"score"`
}

// ReportResponse is the full generate-report payload
type ReportResponse struct {
	AbbreviatedInterview bool          `json:"abbreviated_interview"`
	Metrics              ReportMetrics `json:"metrics"`
	Report               Report        `json:"report"`
}
