package models

// CandidateProfile is the user-submitted profile for one recommendation
// run. Skills, certifications and projects are comma-separated free text;
// only skills is required by the matcher.
type CandidateProfile struct {
	Name           string  `json:"name"`
	GradeScore     float64 `json:"grade_score"`
	Skills         string  `json:"skills"`
	Certifications string  `json:"certifications"`
	Projects       string  `json:"projects"`
}

type FetchResumeRequest struct {
	URL string `json:"url"`
}

// ResumeProfileResponse carries the auto-inferred profile fields back to
// the client after a resume upload or fetch. Every field is advisory and
// editable; Warning is set when text extraction degraded to empty text.
type ResumeProfileResponse struct {
	Name           string  `json:"name"`
	GradeScore     float64 `json:"grade_score"`
	Skills         string  `json:"skills"`
	Certifications string  `json:"certifications"`
	TextLength     int     `json:"text_length"`
	Warning        string  `json:"warning,omitempty"`
}
