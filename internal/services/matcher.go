package services

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/riya0701/AI-Placement-Advisor/internal/models"
)

var (
	// ErrInvalidProfile is returned when the submitted skills field is
	// blank; the user can correct this.
	ErrInvalidProfile = errors.New("profile skills are blank")
	// ErrEmptyCatalog is returned when there are no roles to match
	// against; this is a configuration defect, not a user error.
	ErrEmptyCatalog = errors.New("role catalog is empty")
)

type MatcherService interface {
	Match(profile models.CandidateProfile, catalog []models.RoleCatalogEntry) (*models.MatchResult, error)
}

type matcherService struct{}

func NewMatcherService() MatcherService {
	return &matcherService{}
}

// Match scores the candidate profile against every catalog role with
// TF-IDF cosine similarity and computes the skill gap against the top
// role. The catalog and profile are never mutated.
func (m *matcherService) Match(profile models.CandidateProfile, catalog []models.RoleCatalogEntry) (*models.MatchResult, error) {
	if strings.TrimSpace(profile.Skills) == "" {
		return nil, ErrInvalidProfile
	}
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	profileDoc := strings.ToLower(strings.Join(
		[]string{profile.Skills, profile.Certifications, profile.Projects}, ", "))

	docs := make([]string, 0, len(catalog)+1)
	docs = append(docs, profileDoc)
	for _, entry := range catalog {
		docs = append(docs, strings.ToLower(entry.RequiredSkills))
	}

	vectors := vectorizeTFIDF(docs)

	ranked := make([]models.RoleMatch, len(catalog))
	for i, entry := range catalog {
		similarity := cosineSimilarity(vectors[0], vectors[i+1])
		ranked[i] = models.RoleMatch{
			RoleName:     entry.RoleName,
			MatchPercent: round2(similarity * 100),
		}
	}

	// Stable sort: equal scores keep catalog order.
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].MatchPercent > ranked[b].MatchPercent
	})

	top := ranked[0]
	var topEntry models.RoleCatalogEntry
	for _, entry := range catalog {
		if entry.RoleName == top.RoleName {
			topEntry = entry
			break
		}
	}

	missing := missingSkills(topEntry.RequiredSkills, profile.Skills)

	return &models.MatchResult{
		RankedRoles:    ranked,
		TopRole:        top,
		MissingSkills:  missing,
		FullyQualified: len(missing) == 0,
	}, nil
}

// missingSkills returns every required role skill absent from the user's
// declared skills, case-insensitive, preserving the role's order.
func missingSkills(roleSkills, userSkills string) []string {
	declared := make(map[string]bool)
	for _, skill := range splitSkillList(userSkills) {
		declared[skill] = true
	}

	missing := []string{}
	for _, skill := range splitSkillList(roleSkills) {
		if !declared[skill] {
			missing = append(missing, skill)
		}
	}
	return missing
}

func splitSkillList(list string) []string {
	parts := strings.Split(list, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
