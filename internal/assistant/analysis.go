package assistant

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/csiboto/kyle/internal/compose"
	"github.com/csiboto/kyle/internal/llm"
	"github.com/csiboto/kyle/internal/schemas"
	"github.com/csiboto/kyle/internal/types"
)

// AnalyzeFit scores the profile against a job description. The completion is
// expected to embed a JSON object; when it does not, the result degrades to
// the raw completion text instead of failing the call.
func (a *Assistant) AnalyzeFit(ctx context.Context, req types.GenerationRequest) (*types.FitAnalysis, error) {
	if strings.TrimSpace(req.JobDescription) == "" {
		return nil, &types.ValidationError{Field: "job_description", Message: "job description must not be empty"}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := a.ready(); err != nil {
		return nil, err
	}

	text, err := a.client.Generate(ctx, compose.JobFit(a.profile, req))
	if err != nil {
		return nil, err
	}

	return parseFitAnalysis(text), nil
}

// parseFitAnalysis extracts the structured analysis from a completion,
// degrading to the raw-text form when the embedded JSON is missing,
// malformed, or of the wrong shape.
func parseFitAnalysis(text string) *types.FitAnalysis {
	cleaned := llm.CleanJSONBlock(text)
	span, ok := llm.ObjectSpan(cleaned)
	if !ok {
		return &types.FitAnalysis{Raw: text}
	}

	if err := schemas.ValidateFitAnalysis(span); err != nil {
		return &types.FitAnalysis{Raw: text}
	}

	var fit types.FitAnalysis
	if err := json.Unmarshal([]byte(span), &fit); err != nil {
		return &types.FitAnalysis{Raw: text}
	}

	normalizeFitAnalysis(&fit)
	return &fit
}

// normalizeFitAnalysis clamps the score into 1-10 and fills the CV version
// when absent. Invalid-but-present versions never reach here: the schema
// rejects them and the result degrades instead.
func normalizeFitAnalysis(fit *types.FitAnalysis) {
	if fit.FitScore < 1 {
		fit.FitScore = 1
	}
	if fit.FitScore > 10 {
		fit.FitScore = 10
	}
	if !fit.CVVersion.Valid() {
		fit.CVVersion = types.CVStyleLocalisation
	}
}

// AnalyzeURL runs the two-stage URL analysis: a narrative comparison of the
// content against the profile, then a reduction of that narrative to newly
// identified skills. The second stage runs only after the first succeeds,
// and its failure degrades to an empty skill list rather than failing the
// call.
func (a *Assistant) AnalyzeURL(ctx context.Context, url string) (*types.URLAnalysis, error) {
	if strings.TrimSpace(url) == "" {
		return nil, &types.ValidationError{Field: "url", Message: "url must not be empty"}
	}
	if err := a.ready(); err != nil {
		return nil, err
	}

	narrative, err := a.client.Generate(ctx, compose.URLNarrative(a.profile, url))
	if err != nil {
		return nil, err
	}

	result := &types.URLAnalysis{
		Analysis:  narrative,
		NewSkills: []string{},
	}

	reply, err := a.client.Generate(ctx, compose.SkillExtraction(narrative))
	if err == nil {
		result.NewSkills = llm.DecodeStringArray(reply)
	}

	return result, nil
}
