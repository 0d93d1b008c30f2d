package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/riya0701/AI-Placement-Advisor/internal/models"
)

// skillTokenPattern keeps + # . inside tokens so skills like "c++",
// "c#" and "node.js" survive tokenization.
var skillTokenPattern = regexp.MustCompile(`[A-Za-z+#.]+`)

type VocabularyService interface {
	BuildVocabulary(catalog []models.RoleCatalogEntry) map[string]bool
	ExtractSkills(text string, vocabulary map[string]bool) string
}

type vocabularyService struct{}

func NewVocabularyService() VocabularyService {
	return &vocabularyService{}
}

// BuildVocabulary derives the master skill vocabulary from the catalog:
// every required-skill field is split on commas, trimmed and lowercased.
// An empty catalog yields an empty vocabulary; the caller decides whether
// that degenerate case is acceptable.
func (v *vocabularyService) BuildVocabulary(catalog []models.RoleCatalogEntry) map[string]bool {
	vocabulary := make(map[string]bool)
	for _, entry := range catalog {
		for _, skill := range strings.Split(entry.RequiredSkills, ",") {
			skill = strings.ToLower(strings.TrimSpace(skill))
			if skill != "" {
				vocabulary[skill] = true
			}
		}
	}
	return vocabulary
}

// ExtractSkills tokenizes free text, keeps only tokens present in the
// master vocabulary and returns them sorted, comma-and-space joined.
// The result is a filter over the vocabulary, never a passthrough of the
// input text.
func (v *vocabularyService) ExtractSkills(text string, vocabulary map[string]bool) string {
	found := make(map[string]bool)
	for _, token := range skillTokenPattern.FindAllString(text, -1) {
		token = strings.ToLower(token)
		if vocabulary[token] {
			found[token] = true
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	return strings.Join(skills, ", ")
}
