// Package intelligence holds the model-backed helpers. Nothing here touches
// persisted state; callers decide what to do with the returned drafts.
package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/alexanderramin/montessori/internal/llm"
)

// DefaultSuggestionCount is how many works are requested per area.
const DefaultSuggestionCount = 5

// Outcome classifies a suggestion request.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeEmpty       Outcome = "empty"
	OutcomeUnavailable Outcome = "unavailable"
)

// SuggestResult is the answer of the suggestion collaborator. It never
// carries a fault for the caller to handle: Err is informational and only
// set when Outcome is OutcomeUnavailable.
type SuggestResult struct {
	Outcome Outcome
	Works   []domain.WorkDraft
	Err     error
}

// HasSuggestions reports whether there is anything to offer the user.
func (r SuggestResult) HasSuggestions() bool {
	return r.Outcome == OutcomeOK && len(r.Works) > 0
}

// SuggestionService proposes new works for a curriculum area.
type SuggestionService interface {
	// Suggest asks for works in area. existing lists titles already in the
	// curriculum; matching suggestions are dropped.
	Suggest(ctx context.Context, area domain.Area, existing []string) SuggestResult
}

type suggestionService struct {
	client llm.LLMClient
	count  int
}

type SuggestOption func(*suggestionService)

func WithSuggestionCount(n int) SuggestOption {
	return func(s *suggestionService) {
		if n > 0 {
			s.count = n
		}
	}
}

func NewSuggestionService(client llm.LLMClient, opts ...SuggestOption) SuggestionService {
	s := &suggestionService{client: client, count: DefaultSuggestionCount}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type suggestedWork struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type suggestPayload struct {
	Works []suggestedWork `json:"works"`
}

func (s *suggestionService) Suggest(ctx context.Context, area domain.Area, existing []string) SuggestResult {
	if !area.Valid() {
		return unavailable(fmt.Errorf("unknown area %q", area))
	}
	if s.client == nil {
		return unavailable(llm.ErrDisabled)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSuggest,
		SystemPrompt: suggestSystemPrompt,
		UserPrompt:   buildSuggestPrompt(area, s.count, existing),
		Format:       suggestFormat,
	})
	if err != nil {
		return unavailable(fmt.Errorf("llm suggest failed: %w", err))
	}

	items, err := parseSuggestions(resp.Text)
	if err != nil {
		return unavailable(err)
	}

	works := FilterNew(toDrafts(area, items), existing)
	if len(works) == 0 {
		return SuggestResult{Outcome: OutcomeEmpty}
	}
	return SuggestResult{Outcome: OutcomeOK, Works: works}
}

// parseSuggestions accepts the requested object shape and, since some
// models ignore the schema, a bare array of works.
func parseSuggestions(text string) ([]suggestedWork, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	payload, objErr := llm.ExtractJSON[suggestPayload](trimmed, nil)
	if objErr == nil && payload.Works != nil {
		return payload.Works, nil
	}
	items, arrErr := llm.ExtractJSON[[]suggestedWork](trimmed, nil)
	if arrErr == nil {
		return items, nil
	}
	if objErr == nil {
		return nil, nil
	}
	return nil, fmt.Errorf("parsing suggestions: %w", errors.Join(objErr, arrErr))
}

func toDrafts(area domain.Area, items []suggestedWork) []domain.WorkDraft {
	out := make([]domain.WorkDraft, 0, len(items))
	for _, it := range items {
		title := strings.TrimSpace(it.Title)
		if title == "" {
			continue
		}
		out = append(out, domain.WorkDraft{
			Area:        area,
			Title:       title,
			Description: strings.TrimSpace(it.Description),
		})
	}
	return out
}

// FilterNew drops drafts whose title is already in existing or repeats an
// earlier draft. Titles compare case-insensitively after trimming.
func FilterNew(drafts []domain.WorkDraft, existing []string) []domain.WorkDraft {
	seen := make(map[string]bool, len(existing)+len(drafts))
	for _, t := range existing {
		seen[titleKey(t)] = true
	}
	var out []domain.WorkDraft
	for _, d := range drafts {
		k := titleKey(d.Title)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, d)
	}
	return out
}

func titleKey(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

func unavailable(err error) SuggestResult {
	return SuggestResult{Outcome: OutcomeUnavailable, Err: err}
}
