package services

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/riya0701/AI-Placement-Advisor/internal/models"
)

func TestMatch_BlankSkills(t *testing.T) {
	svc := NewMatcherService()

	for _, skills := range []string{"", "   ", "\t\n"} {
		profile := models.CandidateProfile{Skills: skills, Projects: "chat app"}
		if _, err := svc.Match(profile, testCatalog()); !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("Match with skills %q: err = %v, want ErrInvalidProfile", skills, err)
		}
	}
}

func TestMatch_EmptyCatalog(t *testing.T) {
	svc := NewMatcherService()

	profile := models.CandidateProfile{Skills: "python"}
	if _, err := svc.Match(profile, nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Match with empty catalog: err = %v, want ErrEmptyCatalog", err)
	}
}

func TestMatch_RankingCompleteAndBounded(t *testing.T) {
	svc := NewMatcherService()
	catalog := testCatalog()

	profile := models.CandidateProfile{
		Skills:         "python, docker",
		Certifications: "AWS",
		Projects:       "inventory dashboard",
	}

	result, err := svc.Match(profile, catalog)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	if len(result.RankedRoles) != len(catalog) {
		t.Fatalf("ranking covers %d roles, want %d", len(result.RankedRoles), len(catalog))
	}

	for i, role := range result.RankedRoles {
		if role.MatchPercent < 0 || role.MatchPercent > 100 {
			t.Errorf("role %q score %v out of [0, 100]", role.RoleName, role.MatchPercent)
		}
		if rounded := math.Round(role.MatchPercent*100) / 100; rounded != role.MatchPercent {
			t.Errorf("role %q score %v not rounded to 2 decimals", role.RoleName, role.MatchPercent)
		}
		if i > 0 && role.MatchPercent > result.RankedRoles[i-1].MatchPercent {
			t.Errorf("ranking not descending at index %d", i)
		}
	}

	if result.TopRole != result.RankedRoles[0] {
		t.Errorf("TopRole = %+v, want first ranked entry %+v", result.TopRole, result.RankedRoles[0])
	}
}

func TestMatch_PerfectProfileScoresHundred(t *testing.T) {
	svc := NewMatcherService()
	catalog := []models.RoleCatalogEntry{
		{Position: 0, RoleName: "Data Analyst", RequiredSkills: "python, sql, excel"},
		{Position: 1, RoleName: "Backend Engineer", RequiredSkills: "python, sql, docker"},
	}

	profile := models.CandidateProfile{Skills: "python, sql, excel"}
	result, err := svc.Match(profile, catalog)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	if result.TopRole.RoleName != "Data Analyst" {
		t.Fatalf("TopRole = %q, want Data Analyst", result.TopRole.RoleName)
	}
	if result.TopRole.MatchPercent != 100 {
		t.Errorf("TopRole score = %v, want 100", result.TopRole.MatchPercent)
	}
	if !result.FullyQualified || len(result.MissingSkills) != 0 {
		t.Errorf("expected fully qualified with no missing skills, got %v", result.MissingSkills)
	}
}

// Two roles sharing the profile's entire skill set score identically;
// the tie keeps catalog order and the gap excludes declared skills.
func TestMatch_TiedRolesKeepCatalogOrder(t *testing.T) {
	svc := NewMatcherService()
	catalog := []models.RoleCatalogEntry{
		{Position: 0, RoleName: "Data Analyst", RequiredSkills: "python, sql, excel"},
		{Position: 1, RoleName: "Backend Engineer", RequiredSkills: "python, sql, docker"},
	}

	profile := models.CandidateProfile{Skills: "python, sql"}
	result, err := svc.Match(profile, catalog)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	first, second := result.RankedRoles[0], result.RankedRoles[1]
	if first.MatchPercent <= 0 || second.MatchPercent <= 0 {
		t.Errorf("both roles should score above zero, got %v and %v", first.MatchPercent, second.MatchPercent)
	}
	if first.MatchPercent != second.MatchPercent {
		t.Fatalf("scores should tie, got %v and %v", first.MatchPercent, second.MatchPercent)
	}
	if first.RoleName != "Data Analyst" || second.RoleName != "Backend Engineer" {
		t.Errorf("tie broke catalog order: got %q then %q", first.RoleName, second.RoleName)
	}

	if want := []string{"excel"}; !reflect.DeepEqual(result.MissingSkills, want) {
		t.Errorf("MissingSkills = %v, want %v", result.MissingSkills, want)
	}
}

func TestMatch_MissingSkillsOrderAndCase(t *testing.T) {
	svc := NewMatcherService()
	catalog := []models.RoleCatalogEntry{
		{Position: 0, RoleName: "Platform Engineer", RequiredSkills: "Go, Kubernetes, Terraform, Linux"},
	}

	profile := models.CandidateProfile{Skills: "LINUX, go"}
	result, err := svc.Match(profile, catalog)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	// Role order preserved, comparison case-insensitive, output lowercased.
	if want := []string{"kubernetes", "terraform"}; !reflect.DeepEqual(result.MissingSkills, want) {
		t.Errorf("MissingSkills = %v, want %v", result.MissingSkills, want)
	}
	if result.FullyQualified {
		t.Error("FullyQualified = true with missing skills present")
	}
}

func TestMatch_DoesNotMutateInputs(t *testing.T) {
	svc := NewMatcherService()
	catalog := testCatalog()
	catalogCopy := make([]models.RoleCatalogEntry, len(catalog))
	copy(catalogCopy, catalog)

	profile := models.CandidateProfile{Skills: "Python, SQL"}
	if _, err := svc.Match(profile, catalog); err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	if !reflect.DeepEqual(catalog, catalogCopy) {
		t.Error("Match mutated the catalog")
	}
}

func TestSplitSkillList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"trims and lowercases", " Python , SQL,  Excel ", []string{"python", "sql", "excel"}},
		{"drops empty segments", "python,,sql,", []string{"python", "sql"}},
		{"empty input", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitSkillList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitSkillList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
