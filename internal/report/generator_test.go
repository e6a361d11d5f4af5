package report

import (
	"strings"
	"testing"

	"github.com/prepforge/interview-engine/internal/models"
)

// paddedAnswer builds an answer of exactly n characters starting with prefix.
func paddedAnswer(t *testing.T, prefix string, n int) string {
	t.Helper()
	if len(prefix) > n {
		t.Fatalf("prefix longer than target length %d: %q", n, prefix)
	}
	return prefix + strings.Repeat("x", n-len(prefix))
}

func TestGenerateAbbreviatedReport(t *testing.T) {
	transcript := models.Transcript{
		{Question: "Tell me about yourself.", Answer: "I am a data engineer."},
		{Question: "What is your experience with SQL?", Answer: "About three years."},
		{Question: "What indexes have you used?"},
	}

	got := Generate(transcript, "Data engineer role", "sql, python")

	if !got.AbbreviatedInterview {
		t.Fatal("expected abbreviated interview flag for two answered exchanges")
	}
	if got.Report.OverallScore != nil || got.Report.TechnicalScore != nil ||
		got.Report.CommunicationScore != nil || got.Report.EngagementScore != nil {
		t.Error("abbreviated report must not carry numeric scores")
	}
	if got.Report.Message == "" {
		t.Error("abbreviated report must explain why scores are missing")
	}
	if len(got.Report.Resources) != 2 {
		t.Errorf("abbreviated report resources = %d, want 2", len(got.Report.Resources))
	}
	if len(got.Metrics.QuestionAnswers) != 2 {
		t.Errorf("per-answer metrics rows = %d, want 2 (unanswered question excluded)", len(got.Metrics.QuestionAnswers))
	}
	for i, qa := range got.Metrics.QuestionAnswers {
		if qa.Score != 0 {
			t.Errorf("abbreviated answer %d score = %v, want 0", i, qa.Score)
		}
	}
	if got.Metrics.F1Score != 0 || got.Metrics.RougeScore != 0 || got.Metrics.BleuScore != 0 {
		t.Error("abbreviated report aggregate metrics must be zero")
	}
}

func TestGenerateFullReportScores(t *testing.T) {
	// Five answers of exactly 150 characters with six keyword mentions in
	// total. Expected scores: engagement min(85, 50+5*5)=75, communication
	// min(90, 40+150/5)=70, technical min(90, 50+3*6)=68, overall
	// floor(0.4*68+0.3*70+0.3*75)=70.
	transcript := models.Transcript{
		{Question: "q1", Answer: paddedAnswer(t, "I work with python and sql every day. ", 150)},
		{Question: "q2", Answer: paddedAnswer(t, "We run spark jobs in the cloud. ", 150)},
		{Question: "q3", Answer: paddedAnswer(t, "Our etl flows land in aws storage. ", 150)},
		{Question: "q4", Answer: paddedAnswer(t, "I keep our schemas clean. ", 150)},
		{Question: "q5", Answer: paddedAnswer(t, "I enjoy mentoring newer teammates. ", 150)},
	}

	got := Generate(transcript, "Backend developer role", "sql, python")

	if got.AbbreviatedInterview {
		t.Fatal("five answered exchanges must produce a full report")
	}

	assertScore := func(name string, score *float64, want float64) {
		t.Helper()
		if score == nil {
			t.Fatalf("%s score is nil", name)
		}
		if *score != want {
			t.Errorf("%s score = %v, want %v", name, *score, want)
		}
	}
	assertScore("engagement", got.Report.EngagementScore, 75)
	assertScore("communication", got.Report.CommunicationScore, 70)
	assertScore("technical", got.Report.TechnicalScore, 68)
	assertScore("overall", got.Report.OverallScore, 70)

	if got.Metrics.F1Score != 68.0/100 {
		t.Errorf("f1 = %v, want %v", got.Metrics.F1Score, 68.0/100)
	}
	if got.Metrics.RougeScore != 70.0/100 {
		t.Errorf("rouge = %v, want %v", got.Metrics.RougeScore, 70.0/100)
	}
	if got.Metrics.BleuScore != 75.0/100 {
		t.Errorf("bleu = %v, want %v", got.Metrics.BleuScore, 75.0/100)
	}

	// 150-character answers score 0.5 + 150/500 = 0.8 each.
	for i, qa := range got.Metrics.QuestionAnswers {
		if qa.Score != 0.8 {
			t.Errorf("answer %d micro-score = %v, want 0.8", i, qa.Score)
		}
	}
}

func TestGenerateScoreCaps(t *testing.T) {
	// Long, keyword-dense answers must cap at technical 90, communication 90,
	// engagement 85.
	dense := paddedAnswer(t, "python sql database analysis modeling etl pipeline hadoop spark aws cloud statistics algorithm tableau excel analytics ", 600)
	var transcript models.Transcript
	for i := 0; i < 10; i++ {
		transcript = append(transcript, models.Exchange{Question: "q", Answer: dense})
	}

	got := Generate(transcript, "", "")

	if *got.Report.TechnicalScore != 90 {
		t.Errorf("technical = %v, want cap 90", *got.Report.TechnicalScore)
	}
	if *got.Report.CommunicationScore != 90 {
		t.Errorf("communication = %v, want cap 90", *got.Report.CommunicationScore)
	}
	if *got.Report.EngagementScore != 85 {
		t.Errorf("engagement = %v, want cap 85", *got.Report.EngagementScore)
	}
}

func TestGenerateExamplesOrdering(t *testing.T) {
	transcript := models.Transcript{
		{Question: "q-short", Answer: strings.Repeat("a", 30)},
		{Question: "q-long", Answer: strings.Repeat("b", 300)},
		{Question: "q-mid", Answer: strings.Repeat("c", 120)},
		{Question: "q-tiny", Answer: strings.Repeat("d", 10)},
	}

	got := Generate(transcript, "", "")

	if len(got.Report.Examples.Strong) != 2 {
		t.Fatalf("strong examples = %d, want 2", len(got.Report.Examples.Strong))
	}
	if got.Report.Examples.Strong[0].Question != "q-long" {
		t.Errorf("strongest example = %q, want q-long", got.Report.Examples.Strong[0].Question)
	}
	if got.Report.Examples.Strong[1].Question != "q-mid" {
		t.Errorf("second strong example = %q, want q-mid", got.Report.Examples.Strong[1].Question)
	}

	if len(got.Report.Examples.NeedsImprovement) != 2 {
		t.Fatalf("weak examples = %d, want 2", len(got.Report.Examples.NeedsImprovement))
	}
	if got.Report.Examples.NeedsImprovement[0].Question != "q-tiny" {
		t.Errorf("weakest example = %q, want q-tiny", got.Report.Examples.NeedsImprovement[0].Question)
	}
}

func TestGenerateResourceSelection(t *testing.T) {
	long := strings.Repeat("x", 120)
	transcript := models.Transcript{
		{Question: "q1", Answer: "I write sql queries. " + long},
		{Question: "q2", Answer: "Mostly reporting work. " + long},
		{Question: "q3", Answer: "Dashboards and reviews. " + long},
	}

	got := Generate(transcript, "", "")

	var titles []string
	for _, r := range got.Report.Resources {
		titles = append(titles, r.Title)
	}
	if len(titles) < 2 {
		t.Fatalf("resources = %v, want at least two", titles)
	}
	foundSQL := false
	for _, title := range titles {
		if strings.Contains(title, "SQL") {
			foundSQL = true
		}
	}
	if !foundSQL {
		t.Errorf("resources %v missing the SQL recommendation", titles)
	}
}
