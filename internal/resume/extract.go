// Package resume extracts candidate details from uploaded resume text and
// builds the profile summary used to seed retrieval queries.
package resume

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/prepforge/interview-engine/internal/ai"
	"github.com/prepforge/interview-engine/internal/models"
)

// ErrUnsupportedFormat is returned for resume files that are not plain text.
var ErrUnsupportedFormat = fmt.Errorf("unsupported file format")

// ExtractText decodes an uploaded resume file into plain text.
func ExtractText(content []byte, filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "txt", "text", "md":
		return string(content), nil
	default:
		return "", fmt.Errorf("%w: .%s", ErrUnsupportedFormat, ext)
	}
}

var (
	skipNameHeaders = []string{"resume", "cv", "curriculum"}

	skillsStart = regexp.MustCompile(`(?i)skills|technologies|technical`)
	skillsEnd   = regexp.MustCompile(`(?i)education|experience|projects|certifications`)

	experienceStart = regexp.MustCompile(`(?i)work experience|professional experience|employment|career`)
	experienceEnd   = regexp.MustCompile(`(?i)education|skills|projects|certifications`)

	projectsStart = regexp.MustCompile(`(?i)projects|personal projects`)
	projectsEnd   = regexp.MustCompile(`(?i)education|skills|experience|certifications`)
)

// ExtractDetails pulls the candidate name and the skills, work experience and
// projects sections out of resume text. Heading matching is heuristic: a
// section starts at a line matching its header pattern and ends at the next
// line matching another section's header.
func ExtractDetails(text string) models.ResumeDetails {
	lines := strings.Split(text, "\n")

	return models.ResumeDetails{
		Name:           extractName(lines),
		Skills:         extractSection(lines, skillsStart, skillsEnd),
		WorkExperience: extractSection(lines, experienceStart, experienceEnd),
		Projects:       extractSection(lines, projectsStart, projectsEnd),
	}
}

// extractName takes the first non-empty line that is not a document header.
func extractName(lines []string) string {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		skip := false
		for _, header := range skipNameHeaders {
			if strings.Contains(lower, header) {
				skip = true
				break
			}
		}
		if !skip {
			return line
		}
	}
	return ""
}

func extractSection(lines []string, start, end *regexp.Regexp) string {
	inSection := false
	var collected []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if start.MatchString(line) && !inSection {
			inSection = true
			continue
		}
		if inSection && end.MatchString(line) {
			inSection = false
		}

		if inSection {
			collected = append(collected, line)
		}
	}

	return strings.Join(collected, " ")
}

// Summarizer produces the candidate profile summary stored with a resume.
type Summarizer struct {
	completer ai.Completer
}

// NewSummarizer wraps a completer. completer may be nil; summaries then fall
// back to a deterministic template.
func NewSummarizer(completer ai.Completer) *Summarizer {
	return &Summarizer{completer: completer}
}

const summaryPromptFormat = `Summarize the following candidate profile in 3-4 sentences for an interviewer.
Focus on the candidate's strongest skills and how they relate to the target position.

Resume:
%s

Job description:
%s`

// Summarize builds a short candidate profile summary. Completion failures
// degrade to the template summary so resume upload never fails on the
// generative boundary.
func (s *Summarizer) Summarize(ctx context.Context, resumeText, jobDescription string) string {
	if s.completer != nil {
		summary, err := s.completer.Complete(ctx, fmt.Sprintf(summaryPromptFormat, resumeText, jobDescription))
		if err == nil {
			return summary
		}
		slog.Warn("profile summary generation failed, using template", "error", err)
	}

	return templateSummary(resumeText, jobDescription)
}

// templateSummary is the offline summary: the extracted skills section joined
// with the first sentence of the job description.
func templateSummary(resumeText, jobDescription string) string {
	details := ExtractDetails(resumeText)

	skills := details.Skills
	if skills == "" {
		skills = "a range of technical skills"
	}

	target := strings.TrimSpace(jobDescription)
	if idx := strings.IndexAny(target, ".\n"); idx > 0 {
		target = target[:idx]
	}
	if target == "" {
		target = "the open position"
	}

	return fmt.Sprintf("Candidate with experience in %s, applying for %s.", skills, target)
}
