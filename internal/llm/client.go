package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Message roles as carried on the wire between caller and core.
// The Gemini transport maps RoleAssistant to its own "model" role.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged turn in a request payload
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a fully composed payload for one generative call
type Request struct {
	System          string
	Messages        []Message
	Tier            ModelTier
	MaxOutputTokens int32
	Timeout         time.Duration
}

// Client is an abstraction over the generative service transport
type Client interface {
	// Generate sends one composed request and returns the textual completion
	Generate(ctx context.Context, req Request) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini-backed client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Message: "service API key is required"}
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &TransportError{Message: "failed to create Gemini client", Cause: err}
	}

	return &GeminiClient{client: client, config: config}, nil
}

// Generate sends the request as a single attempt under the request's timeout.
// Multi-message payloads replay all but the last message as chat history.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	modelName := c.config.GetModel(req.Tier)
	if modelName == "" {
		return "", &ConfigurationError{Message: "no model configured for tier " + string(req.Tier)}
	}
	if len(req.Messages) == 0 {
		return "", &ServiceError{Message: "request contains no messages"}
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.1)
	if req.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(req.MaxOutputTokens)
	}
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	last := req.Messages[len(req.Messages)-1]

	var resp *genai.GenerateContentResponse
	var err error
	if len(req.Messages) == 1 {
		resp, err = model.GenerateContent(ctx, genai.Text(last.Content))
	} else {
		cs := model.StartChat()
		for _, m := range req.Messages[:len(req.Messages)-1] {
			cs.History = append(cs.History, &genai.Content{
				Role:  wireRole(m.Role),
				Parts: []genai.Part{genai.Text(m.Content)},
			})
		}
		resp, err = cs.SendMessage(ctx, genai.Text(last.Content))
	}
	if err != nil {
		return "", classifyCallError(err)
	}

	return textFromResponse(resp)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// wireRole maps core message roles onto the Gemini chat roles
func wireRole(role string) string {
	if role == RoleAssistant {
		return "model"
	}
	return "user"
}

// classifyCallError sorts a failed call into the error taxonomy:
// a recognized HTTP status becomes a ServiceError, everything else
// (DNS, connection reset, deadline) is a TransportError.
func classifyCallError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &ServiceError{StatusCode: gerr.Code, Message: gerr.Message}
	}
	return &TransportError{Message: "generative service call failed", Cause: err}
}

// textFromResponse concatenates the textual parts of a Gemini response
func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &ServiceError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &ServiceError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", &ServiceError{Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
