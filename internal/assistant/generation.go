package assistant

import (
	"context"

	"github.com/csiboto/kyle/internal/compose"
	"github.com/csiboto/kyle/internal/types"
)

// GenerateLetter writes a cover letter. Job description and prior research
// are optional; when absent their prompt sections are omitted entirely.
func (a *Assistant) GenerateLetter(ctx context.Context, req types.GenerationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if err := a.ready(); err != nil {
		return "", err
	}

	return a.client.Generate(ctx, compose.CoverLetter(a.profile, req))
}

// GenerateCV writes a CV in the requested style. An unset style falls back
// to the localisation rendition.
func (a *Assistant) GenerateCV(ctx context.Context, req types.GenerationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if err := a.ready(); err != nil {
		return "", err
	}

	return a.client.Generate(ctx, compose.CV(a.profile, req))
}
