// Package assistant orchestrates the five generative tasks: chat, company
// research, job-fit analysis, URL analysis, and content generation. Each
// operation is an independent request/response unit; the assistant holds no
// state between calls beyond the immutable profile and the transport client.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/csiboto/kyle/internal/compose"
	"github.com/csiboto/kyle/internal/conversation"
	"github.com/csiboto/kyle/internal/llm"
	"github.com/csiboto/kyle/internal/profile"
	"github.com/csiboto/kyle/internal/types"
)

// Assistant executes assistant tasks against the generative service
type Assistant struct {
	client  llm.Client
	profile *profile.Context
	apiKey  string
}

// Config holds the assistant dependencies. Client may be left nil, in which
// case a Gemini client is created from APIKey; tests inject a fake Client.
type Config struct {
	APIKey  string
	Profile *profile.Context
	Client  llm.Client
}

// New creates an Assistant. An empty APIKey is not a constructor error:
// the assistant is still built, and every task call fails fast with a
// ConfigurationError before reaching the network.
func New(ctx context.Context, cfg Config) (*Assistant, error) {
	if cfg.Profile == nil {
		return nil, fmt.Errorf("profile context is required")
	}

	a := &Assistant{
		client:  cfg.Client,
		profile: cfg.Profile,
		apiKey:  cfg.APIKey,
	}

	if a.client == nil && cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, err
		}
		a.client = client
	}

	return a, nil
}

// Close releases the underlying client
func (a *Assistant) Close() error {
	if a.client != nil {
		return a.client.Close()
	}
	return nil
}

// Profile returns the immutable profile context the assistant grounds on
func (a *Assistant) Profile() *profile.Context {
	return a.profile
}

// ready gates every task on the process-level credential
func (a *Assistant) ready() error {
	if a.apiKey == "" || a.client == nil {
		return &llm.ConfigurationError{Message: "GEMINI_API_KEY is not set"}
	}
	return nil
}

// Chat answers one conversational turn. The caller owns the history: it
// supplies the prior window on every call and appends the reply itself.
func (a *Assistant) Chat(ctx context.Context, window []llm.Message, message string) (string, error) {
	thread, err := conversation.BuildThread(window, message)
	if err != nil {
		return "", err
	}
	if err := a.ready(); err != nil {
		return "", err
	}

	return a.client.Generate(ctx, compose.Chat(a.profile, thread))
}

// ResearchCompany produces the six-section company briefing
func (a *Assistant) ResearchCompany(ctx context.Context, company string) (string, error) {
	if strings.TrimSpace(company) == "" {
		return "", &types.ValidationError{Field: "company", Message: "company name must not be empty"}
	}
	if err := a.ready(); err != nil {
		return "", err
	}

	return a.client.Generate(ctx, compose.CompanyBriefing(company))
}
