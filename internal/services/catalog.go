package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/riya0701/AI-Placement-Advisor/internal/models"
)

type CatalogService interface {
	LoadFromCSV(path string) ([]models.RoleCatalogEntry, error)
	Validate(catalog []models.RoleCatalogEntry) error
}

type catalogService struct{}

func NewCatalogService() CatalogService {
	return &catalogService{}
}

// LoadFromCSV reads the role catalog from a CSV file with a header row.
// The role-name and skills columns are located by header name
// ("Role" / "Required_Skills", case-insensitive) and fall back to the
// first two columns when the headers are absent.
func (s *catalogService) LoadFromCSV(path string) ([]models.RoleCatalogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("catalog CSV has no data rows")
	}

	roleCol, skillsCol := locateColumns(records[0])

	var catalog []models.RoleCatalogEntry
	for i, record := range records[1:] {
		if len(record) <= roleCol || len(record) <= skillsCol {
			return nil, fmt.Errorf("catalog row %d has too few columns", i+2)
		}
		catalog = append(catalog, models.RoleCatalogEntry{
			ID:             uuid.New(),
			Position:       i,
			RoleName:       strings.TrimSpace(record[roleCol]),
			RequiredSkills: strings.TrimSpace(record[skillsCol]),
		})
	}

	if err := s.Validate(catalog); err != nil {
		return nil, err
	}

	return catalog, nil
}

// Validate fails fast on the catalog defects the matcher cannot tolerate:
// an empty table, blank role names or skill lists, duplicate role names.
func (s *catalogService) Validate(catalog []models.RoleCatalogEntry) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]bool)
	for i, entry := range catalog {
		if strings.TrimSpace(entry.RoleName) == "" {
			return fmt.Errorf("catalog entry %d has an empty role name", i)
		}
		if strings.TrimSpace(entry.RequiredSkills) == "" {
			return fmt.Errorf("role %q has an empty skill list", entry.RoleName)
		}
		if seen[entry.RoleName] {
			return fmt.Errorf("duplicate role name %q in catalog", entry.RoleName)
		}
		seen[entry.RoleName] = true
	}
	return nil
}

func locateColumns(header []string) (roleCol, skillsCol int) {
	roleCol, skillsCol = 0, 1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "role", "role_name":
			roleCol = i
		case "required_skills", "skills":
			skillsCol = i
		}
	}
	return roleCol, skillsCol
}
