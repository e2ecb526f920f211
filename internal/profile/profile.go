// Package profile loads the static profile document and renders the
// grounding context supplied to every generative call. The document is read
// once at process start and treated as immutable for the process lifetime.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Identity holds contact and availability facts
type Identity struct {
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Location          string            `json:"location"`
	AvailableFrom     string            `json:"available_from"`
	SalaryExpectation string            `json:"salary_expectation"`
	Links             map[string]string `json:"links"`
}

// ProfessionalIdentity holds the headline and about text
type ProfessionalIdentity struct {
	Headline string `json:"headline"`
	AboutMe  string `json:"about_me"`
}

// Experience is one role in the work history
type Experience struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Dates      string   `json:"dates"`
	Location   string   `json:"location"`
	Highlights []string `json:"highlights"`
}

// Education is one degree or certification
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Dates       string `json:"dates"`
	Focus       string `json:"focus"`
}

// Book is one published title
type Book struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Publisher string   `json:"publisher"`
	Year      string   `json:"year"`
}

// Context is the full profile document
type Context struct {
	Identity             Identity             `json:"profile"`
	ProfessionalIdentity ProfessionalIdentity `json:"professional_identity"`
	Skills               map[string][]string  `json:"skills"`
	Experience           []Experience         `json:"experience"`
	Education            []Education          `json:"education"`
	Books                []Book               `json:"books"`
	GamingBackground     string               `json:"gaming_background"`
}

// Load reads and parses the profile document from path
func Load(path string) (*Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var ctx Context
	if err := json.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	if strings.TrimSpace(ctx.Identity.Name) == "" {
		return nil, fmt.Errorf("profile is missing a name")
	}

	return &ctx, nil
}

// ContextBlock renders the full grounding text embedded in prompts
func (c *Context) ContextBlock() string {
	var sb strings.Builder

	sb.WriteString(c.Identity.Name)
	if c.ProfessionalIdentity.Headline != "" {
		sb.WriteString(" — " + c.ProfessionalIdentity.Headline)
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s | %s | %s\n", c.Identity.Email, c.Identity.Phone, c.Identity.Location))
	for _, label := range sortedLinkLabels(c.Identity.Links) {
		sb.WriteString(fmt.Sprintf("%s: %s\n", label, c.Identity.Links[label]))
	}

	if c.ProfessionalIdentity.AboutMe != "" {
		sb.WriteString("\nABOUT\n" + c.ProfessionalIdentity.AboutMe + "\n")
	}

	if len(c.Experience) > 0 {
		sb.WriteString("\nEXPERIENCE\n")
		for _, exp := range c.Experience {
			sb.WriteString(fmt.Sprintf("%s, %s (%s, %s)\n", exp.Title, exp.Company, exp.Dates, exp.Location))
			for _, h := range exp.Highlights {
				sb.WriteString("- " + h + "\n")
			}
		}
	}

	if len(c.Education) > 0 {
		sb.WriteString("\nEDUCATION\n")
		for _, edu := range c.Education {
			sb.WriteString(fmt.Sprintf("%s, %s (%s)", edu.Degree, edu.Institution, edu.Dates))
			if edu.Focus != "" {
				sb.WriteString(" — " + edu.Focus)
			}
			sb.WriteString("\n")
		}
	}

	if len(c.Skills) > 0 {
		sb.WriteString("\nSKILLS\n")
		for _, category := range sortedSkillCategories(c.Skills) {
			sb.WriteString(fmt.Sprintf("%s: %s\n", category, strings.Join(c.Skills[category], ", ")))
		}
	}

	if len(c.Books) > 0 {
		sb.WriteString("\nPUBLICATIONS\n")
		for _, book := range c.Books {
			sb.WriteString(fmt.Sprintf("- %s (%s, %s)\n", book.Title, book.Publisher, book.Year))
		}
	}

	if c.GamingBackground != "" {
		sb.WriteString("\nGAMING BACKGROUND\n" + c.GamingBackground + "\n")
	}

	if c.Identity.AvailableFrom != "" || c.Identity.SalaryExpectation != "" {
		sb.WriteString(fmt.Sprintf("\nAvailable from: %s | Salary expectation: %s\n",
			c.Identity.AvailableFrom, c.Identity.SalaryExpectation))
	}

	return sb.String()
}

// Summary renders the short current-profile description used when comparing
// external content against the profile.
func (c *Context) Summary() string {
	var sb strings.Builder

	sb.WriteString(c.Identity.Name)
	if c.ProfessionalIdentity.Headline != "" {
		sb.WriteString(", " + c.ProfessionalIdentity.Headline)
	}
	sb.WriteString(".")

	if len(c.Skills) > 0 {
		var all []string
		for _, category := range sortedSkillCategories(c.Skills) {
			all = append(all, c.Skills[category]...)
		}
		sb.WriteString(" Skills: " + strings.Join(all, ", ") + ".")
	}

	if c.Identity.AvailableFrom != "" {
		sb.WriteString(" Available from " + c.Identity.AvailableFrom + ".")
	}

	return sb.String()
}

// ClosingLine renders the availability and salary line appended to letters
func (c *Context) ClosingLine() string {
	if c.Identity.AvailableFrom == "" && c.Identity.SalaryExpectation == "" {
		return ""
	}
	return fmt.Sprintf("Available from: %s | Salary expectation: %s",
		c.Identity.AvailableFrom, c.Identity.SalaryExpectation)
}

// Deterministic ordering keeps prompt composition idempotent even though the
// document stores skills and links as maps.
func sortedSkillCategories(skills map[string][]string) []string {
	return sortedKeys(skills)
}

func sortedLinkLabels(links map[string]string) []string {
	return sortedKeys(links)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
