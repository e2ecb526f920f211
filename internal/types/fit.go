package types

// FitAnalysis is the structured result of a job-fit analysis. When the
// service completion could not be parsed into this shape, Raw carries the
// full completion and every structured field is zero: absence of structure
// means "unparsed", not "empty".
type FitAnalysis struct {
	FitScore          int      `json:"fit_score,omitempty"`
	FitSummary        string   `json:"fit_summary,omitempty"`
	MatchingSkills    []string `json:"matching_skills,omitempty"`
	SkillGaps         []string `json:"skill_gaps,omitempty"`
	RedFlags          []string `json:"red_flags,omitempty"`
	Recommendations   []string `json:"recommendations,omitempty"`
	CVVersion         CVStyle  `json:"cv_version,omitempty"`
	KeywordsToInclude []string `json:"keywords_to_include,omitempty"`
	OpeningHook       string   `json:"opening_hook,omitempty"`
	Raw               string   `json:"raw,omitempty"`
}

// Parsed reports whether the analysis carries structured fields rather than
// the raw-text fallback.
func (f *FitAnalysis) Parsed() bool {
	return f.Raw == ""
}

// URLAnalysis is the result of the two-stage URL analysis: the stage-1
// narrative plus the stage-2 skill list. NewSkills is always non-nil; a
// failed second stage leaves it empty while preserving the narrative.
type URLAnalysis struct {
	Analysis  string   `json:"analysis"`
	NewSkills []string `json:"new_skills"`
}
