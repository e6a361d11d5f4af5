package interview

import (
	"regexp"
	"strings"
)

// skillCategory pairs a topic id with the keywords that map onto it. Order
// matters: topic selection falls back through these in declaration order.
type skillCategory struct {
	Topic    string
	Keywords []string
}

// skillCategories is the fixed taxonomy shared by skill and job-requirement
// extraction.
var skillCategories = []skillCategory{
	{"python", []string{"python", "pandas", "numpy", "scikit-learn", "sklearn", "pytorch", "tensorflow"}},
	{"sql", []string{"sql", "mysql", "postgresql", "database", "databases", "querying"}},
	{"data_engineering", []string{"etl", "data pipeline", "data engineering", "airflow", "spark", "hadoop"}},
	{"machine_learning", []string{"machine learning", "ml", "ai", "deep learning", "nlp", "natural language processing"}},
	{"data_visualization", []string{"tableau", "power bi", "visualization", "dashboard", "matplotlib", "seaborn"}},
	{"cloud", []string{"aws", "azure", "gcp", "cloud", "s3", "ec2", "lambda"}},
	{"big_data", []string{"spark", "hadoop", "big data", "distributed computing"}},
	{"statistics", []string{"statistics", "statistical analysis", "hypothesis testing", "a/b testing"}},
}

// SkillSet is an ordered category -> matched-keywords mapping. Categories
// keeps the taxonomy declaration order so downstream selection is
// deterministic.
type SkillSet struct {
	Categories []string
	Matches    map[string][]string
}

// Has reports whether the category matched at all.
func (s SkillSet) Has(category string) bool {
	_, ok := s.Matches[category]
	return ok
}

// ExtractSkills maps free skill text onto the topic taxonomy by substring
// membership.
func ExtractSkills(text string) SkillSet {
	return extractCategories(text)
}

// ExtractRequirements maps a job description onto the topic taxonomy. Same
// heuristic as ExtractSkills; kept separate because the two feeds are
// combined positionally by the topic selector.
func ExtractRequirements(jobDescription string) SkillSet {
	return extractCategories(jobDescription)
}

func extractCategories(text string) SkillSet {
	lower := strings.ToLower(text)
	out := SkillSet{Matches: map[string][]string{}}
	for _, cat := range skillCategories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				if !out.Has(cat.Topic) {
					out.Categories = append(out.Categories, cat.Topic)
				}
				out.Matches[cat.Topic] = append(out.Matches[cat.Topic], kw)
			}
		}
	}
	return out
}

// commonTechTerms is the technology vocabulary scanned when building
// retrieval queries and behavioral question templates.
var commonTechTerms = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node.js",
	"express", "django", "flask", "fastapi", "sql", "nosql", "mongodb",
	"postgresql", "mysql", "oracle", "aws", "azure", "gcp", "docker",
	"kubernetes", "terraform", "ci/cd", "git", "github", "bitbucket",
	"machine learning", "deep learning", "tensorflow", "pytorch", "pandas",
	"numpy", "scikit-learn", "data engineering", "etl", "airflow", "spark",
}

// DetectTechTerms returns up to max technologies mentioned in the candidate's
// skills, topped up from the job description. Skills are scanned first so the
// candidate's own stack dominates the query.
func DetectTechTerms(skills, jobDescription string, max int) []string {
	skillsLower := strings.ToLower(skills)
	jobLower := strings.ToLower(jobDescription)

	var terms []string
	for _, term := range commonTechTerms {
		if skillsLower != "" && strings.Contains(skillsLower, term) {
			terms = append(terms, term)
		}
	}
	if len(terms) < max {
		for _, term := range commonTechTerms {
			if strings.Contains(jobLower, term) && !containsString(terms, term) {
				terms = append(terms, term)
				if len(terms) >= max {
					break
				}
			}
		}
	}
	return terms
}

// technologyPatterns backs ExtractTechnologies. Whole-word matching is
// required here: plain substring checks turn "r" or "go" into false
// positives inside unrelated words.
var technologyPatterns = map[string]map[string][]string{
	"languages": {
		"python":     {"python", "py", "pytest"},
		"java":       {"java", "j2ee", "spring", "hibernate"},
		"javascript": {"javascript", "js", "typescript", "ts", "node.js", "nodejs"},
		"go":         {"golang", "go lang"},
		"r":          {"rstudio", "tidyverse"},
		"scala":      {"scala", "spark scala"},
		"rust":       {"rust", "rustlang"},
	},
	"databases": {
		"sql":           {"sql", "database", "rdbms"},
		"mysql":         {"mysql", "mariadb"},
		"postgresql":    {"postgres", "postgresql", "psql"},
		"mongodb":       {"mongo", "mongodb", "nosql"},
		"redis":         {"redis"},
		"elasticsearch": {"elasticsearch", "elk"},
	},
	"cloud": {
		"aws":        {"aws", "amazon web services", "ec2", "s3", "lambda", "rds"},
		"azure":      {"azure", "microsoft azure"},
		"gcp":        {"gcp", "google cloud", "bigquery"},
		"kubernetes": {"kubernetes", "k8s"},
		"docker":     {"docker", "containerization"},
		"terraform":  {"terraform", "infrastructure as code", "iac"},
	},
	"data_engineering": {
		"spark":   {"spark", "pyspark", "databricks"},
		"hadoop":  {"hadoop", "hdfs", "mapreduce"},
		"airflow": {"airflow", "dag"},
		"kafka":   {"kafka", "event streaming"},
		"etl":     {"etl", "extract transform load", "data pipeline"},
	},
	"ml_ai": {
		"machine_learning": {"machine learning", "ml", "artificial intelligence"},
		"deep_learning":    {"deep learning", "neural network", "cnn", "rnn", "lstm"},
		"nlp":              {"nlp", "natural language processing", "text mining"},
		"tensorflow":       {"tensorflow", "keras"},
		"pytorch":          {"pytorch", "torch"},
	},
	"data_analysis": {
		"pandas":             {"pandas", "dataframe"},
		"numpy":              {"numpy", "ndarray"},
		"tableau":            {"tableau"},
		"power_bi":           {"power bi", "powerbi"},
		"data_visualization": {"data visualization", "visualization", "matplotlib", "seaborn", "plotly"},
	},
}

// ExtractTechnologies scans resume skills plus work experience and returns
// categorized technologies, using whole-word regex matching.
func ExtractTechnologies(skills, experience string) map[string][]string {
	text := strings.ToLower(skills + " " + experience)
	found := map[string][]string{}

	for category, techs := range technologyPatterns {
		for name, keywords := range techs {
			for _, kw := range keywords {
				pattern := `\b` + regexp.QuoteMeta(kw) + `\b`
				if matched, _ := regexp.MatchString(pattern, text); matched {
					if !containsString(found[category], name) {
						found[category] = append(found[category], name)
					}
					break
				}
			}
		}
	}
	return found
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
