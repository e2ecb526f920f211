package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFitAnalysis_Valid(t *testing.T) {
	doc := `{
		"fit_score": 8,
		"fit_summary": "Strong localisation match",
		"matching_skills": ["LQA", "Terminology management"],
		"skill_gaps": ["Unity"],
		"cv_version": "localisation",
		"keywords_to_include": ["localisation", "LQA"],
		"opening_hook": "A decade of publishing meets games."
	}`
	assert.NoError(t, ValidateFitAnalysis(doc))
}

func TestValidateFitAnalysis_MinimalValid(t *testing.T) {
	assert.NoError(t, ValidateFitAnalysis(`{"fit_score": 5}`))
}

func TestValidateFitAnalysis_MissingScore(t *testing.T) {
	err := ValidateFitAnalysis(`{"fit_summary": "no score here"}`)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.NotEmpty(t, shapeErr.Failures)
}

func TestValidateFitAnalysis_WrongScoreType(t *testing.T) {
	var shapeErr *ShapeError
	require.ErrorAs(t, ValidateFitAnalysis(`{"fit_score": "eight"}`), &shapeErr)
}

func TestValidateFitAnalysis_InvalidCVVersion(t *testing.T) {
	var shapeErr *ShapeError
	require.ErrorAs(t, ValidateFitAnalysis(`{"fit_score": 7, "cv_version": "executive"}`), &shapeErr)
}

func TestValidateFitAnalysis_NotJSON(t *testing.T) {
	err := ValidateFitAnalysis("this is not json")
	require.Error(t, err)

	var shapeErr *ShapeError
	assert.False(t, errors.As(err, &shapeErr))
}
