package models

// RoleMatch is one scored role. MatchPercent is cosine similarity in
// TF-IDF space scaled to 0-100, rounded to 2 decimals.
type RoleMatch struct {
	RoleName     string  `json:"role_name"`
	MatchPercent float64 `json:"match_percent"`
}

// MatchResult is the output of one matching run. RankedRoles covers the
// entire catalog, descending by score; equal scores keep catalog order.
type MatchResult struct {
	RankedRoles    []RoleMatch `json:"ranked_roles"`
	TopRole        RoleMatch   `json:"top_role"`
	MissingSkills  []string    `json:"missing_skills"`
	FullyQualified bool        `json:"fully_qualified"`
}

type RecommendResponse struct {
	TopRoles       []RoleMatch `json:"top_roles"`
	RankedRoles    []RoleMatch `json:"ranked_roles"`
	TopRole        RoleMatch   `json:"top_role"`
	MissingSkills  []string    `json:"missing_skills"`
	FullyQualified bool        `json:"fully_qualified"`
}

type RoleListResponse struct {
	Roles          []RoleCatalogEntry `json:"roles"`
	VocabularySize int                `json:"vocabulary_size"`
}
