package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// InferredProfile holds the advisory fields scraped from resume text.
// Every field may be empty; GradeScore is nil when no pattern matched.
type InferredProfile struct {
	Name           string
	GradeScore     *float64
	Certifications string
}

var (
	gradeOutOfTenPattern = regexp.MustCompile(`(?i)(\d{1,2}(?:\.\d{1,2})?)\s*/\s*10`)
	gradeCGPAPattern     = regexp.MustCompile(`(?i)cgpa[\s:]*(\d{1,2}(?:\.\d{1,2})?)`)
	gradePercentPattern  = regexp.MustCompile(`(\d{2,3}(?:\.\d+)?)\s*%`)
)

// certificationKeywords is checked in order; matches keep this order in
// the joined result.
var certificationKeywords = []string{"aws", "cisco", "coursera", "isro", "google"}

type InferenceService interface {
	InferProfile(text string) InferredProfile
}

type inferenceService struct {
	titleCaser cases.Caser
}

func NewInferenceService() InferenceService {
	return &inferenceService{
		titleCaser: cases.Title(language.English),
	}
}

// InferProfile scans raw resume text for heuristic profile fields. It
// never fails: unmatched patterns simply leave their field empty.
func (i *inferenceService) InferProfile(text string) InferredProfile {
	return InferredProfile{
		Name:           i.inferName(text),
		GradeScore:     inferGradeScore(text),
		Certifications: inferCertifications(text),
	}
}

// inferName takes the first non-blank line, truncated to its first two
// words and title-cased.
func (i *inferenceService) inferName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		if len(words) > 2 {
			words = words[:2]
		}
		return i.titleCaser.String(strings.Join(words, " "))
	}
	return ""
}

// inferGradeScore checks the direct "x/10" and "CGPA x" patterns first;
// only when neither matches does it fall back to converting a percentage
// (divided by 9.5, rounded to 2 decimals). Values outside [0, 10] are
// discarded rather than clamped upward.
func inferGradeScore(text string) *float64 {
	for _, pattern := range []*regexp.Regexp{gradeOutOfTenPattern, gradeCGPAPattern} {
		if m := pattern.FindStringSubmatch(text); m != nil {
			if score, err := strconv.ParseFloat(m[1], 64); err == nil && score <= 10 {
				return &score
			}
		}
	}

	if m := gradePercentPattern.FindStringSubmatch(text); m != nil {
		if percent, err := strconv.ParseFloat(m[1], 64); err == nil {
			score := math.Round(percent/9.5*100) / 100
			if score > 10 {
				score = 10
			}
			return &score
		}
	}

	return nil
}

// inferCertifications does a case-insensitive substring search for each
// known issuer keyword and joins the upper-cased hits in keyword order.
func inferCertifications(text string) string {
	lower := strings.ToLower(text)

	var found []string
	for _, key := range certificationKeywords {
		if strings.Contains(lower, key) {
			found = append(found, strings.ToUpper(key))
		}
	}

	return strings.Join(found, ", ")
}
