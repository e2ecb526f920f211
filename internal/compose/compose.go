// Package compose builds the exact request payload for each assistant task.
// Every function here is a pure mapping from its inputs to an llm.Request:
// identical inputs produce byte-identical payloads, and optional context
// sections are omitted entirely rather than inserted as empty blocks.
package compose

import (
	"strings"
	"time"

	"github.com/csiboto/kyle/internal/llm"
	"github.com/csiboto/kyle/internal/profile"
	"github.com/csiboto/kyle/internal/prompts"
	"github.com/csiboto/kyle/internal/types"
)

// Placeholders used when a fit analysis arrives without company or role
const (
	UnknownCompany = "Unknown Company"
	UnknownRole    = "Unknown Role"
)

// Per-call budgets. URL narrative gets the long timeout; everything else is
// a single short round trip.
const (
	shortCallTimeout     = 30 * time.Second
	narrativeCallTimeout = 60 * time.Second
)

// Chat wraps an already-built conversation thread in the persona system
// instruction. The thread comes from the conversation package.
func Chat(p *profile.Context, thread []llm.Message) llm.Request {
	system := prompts.Format(prompts.MustGet("chat.json", "persona-system"), map[string]string{
		"ProfileContext": p.ContextBlock(),
	})

	return llm.Request{
		System:          system,
		Messages:        thread,
		Tier:            llm.TierStandard,
		MaxOutputTokens: 1024,
		Timeout:         shortCallTimeout,
	}
}

// CompanyBriefing asks for the fixed six-section company briefing
func CompanyBriefing(company string) llm.Request {
	body := prompts.Format(prompts.MustGet("research.json", "company-briefing"), map[string]string{
		"Company": company,
	})
	return singleTurn(body, llm.TierStandard, 2048, shortCallTimeout)
}

// JobFit asks for the JSON-only fit analysis of a job description.
// Missing company or role fall back to fixed placeholders instead of failing.
func JobFit(p *profile.Context, req types.GenerationRequest) llm.Request {
	company := strings.TrimSpace(req.Company)
	if company == "" {
		company = UnknownCompany
	}
	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = UnknownRole
	}

	body := prompts.Format(prompts.MustGet("analysis.json", "job-fit"), map[string]string{
		"ProfileContext": p.ContextBlock(),
		"Company":        company,
		"Role":           role,
		"JobDescription": req.JobDescription,
	})
	return singleTurn(body, llm.TierAdvanced, 2048, shortCallTimeout)
}

// URLNarrative asks for the stage-1 six-section narrative analysis of the
// content at url, compared against the current profile summary.
func URLNarrative(p *profile.Context, url string) llm.Request {
	body := prompts.Format(prompts.MustGet("analysis.json", "url-narrative"), map[string]string{
		"URL":            url,
		"ProfileSummary": p.Summary(),
	})
	return singleTurn(body, llm.TierAdvanced, 2048, narrativeCallTimeout)
}

// SkillExtraction asks for the stage-2 reduction of a narrative to a JSON
// array of newly identified skill names.
func SkillExtraction(narrative string) llm.Request {
	body := prompts.Format(prompts.MustGet("analysis.json", "skill-extraction"), map[string]string{
		"Narrative": narrative,
	})
	return singleTurn(body, llm.TierLite, 256, shortCallTimeout)
}

// CoverLetter builds the letter-generation request. Target role, job
// description, and prior research are appended only when present.
func CoverLetter(p *profile.Context, req types.GenerationRequest) llm.Request {
	var sb strings.Builder
	sb.WriteString(prompts.Format(prompts.MustGet("generation.json", "cover-letter"), map[string]string{
		"ProfileContext": p.ContextBlock(),
		"ClosingLine":    p.ClosingLine(),
	}))

	appendSection(&sb, "TARGET ROLE", targetLine(req))
	appendSection(&sb, "JOB DESCRIPTION", req.JobDescription)
	appendSection(&sb, "COMPANY RESEARCH", req.CompanyResearch)

	return singleTurn(sb.String(), llm.TierAdvanced, 1024, shortCallTimeout)
}

// CV builds the CV-generation request for the selected style
func CV(p *profile.Context, req types.GenerationRequest) llm.Request {
	style := req.CVStyle
	if !style.Valid() {
		style = types.CVStyleLocalisation
	}

	var sb strings.Builder
	sb.WriteString(prompts.Format(prompts.MustGet("generation.json", "cv"), map[string]string{
		"ProfileContext":  p.ContextBlock(),
		"StyleDescriptor": prompts.MustGet("generation.json", "cv-style-"+string(style)),
	}))

	appendSection(&sb, "TARGET ROLE", targetLine(req))
	appendSection(&sb, "JOB DESCRIPTION", req.JobDescription)
	appendSection(&sb, "COMPANY RESEARCH", req.CompanyResearch)

	return singleTurn(sb.String(), llm.TierAdvanced, 4096, shortCallTimeout)
}

func singleTurn(body string, tier llm.ModelTier, maxTokens int32, timeout time.Duration) llm.Request {
	return llm.Request{
		Messages:        []llm.Message{{Role: llm.RoleUser, Content: body}},
		Tier:            tier,
		MaxOutputTokens: maxTokens,
		Timeout:         timeout,
	}
}

// appendSection adds a headed context block, or nothing at all when the body
// is blank. Composed prompts never contain a header with no content.
func appendSection(sb *strings.Builder, header, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	sb.WriteString("\n\n")
	sb.WriteString(header)
	sb.WriteString(":\n")
	sb.WriteString(body)
}

func targetLine(req types.GenerationRequest) string {
	company := strings.TrimSpace(req.Company)
	role := strings.TrimSpace(req.Role)
	switch {
	case company != "" && role != "":
		return role + " at " + company
	case company != "":
		return company
	default:
		return role
	}
}
