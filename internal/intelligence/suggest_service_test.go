package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/alexanderramin/montessori/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	text string
	err  error
	last llm.GenerateRequest
}

func (f *fakeClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.text, Model: "fake"}, nil
}

func (f *fakeClient) Available(context.Context) bool { return f.err == nil }

func TestSuggest_OK(t *testing.T) {
	client := &fakeClient{text: `{"works":[
		{"title":"数字与筹码","description":"奇偶数概念"},
		{"title":" 彩色串珠 ","description":" 数量与符号 "}
	]}`}
	svc := NewSuggestionService(client)

	res := svc.Suggest(context.Background(), domain.AreaMath, nil)

	require.Equal(t, OutcomeOK, res.Outcome)
	assert.True(t, res.HasSuggestions())
	assert.NoError(t, res.Err)
	assert.Equal(t, []domain.WorkDraft{
		{Area: domain.AreaMath, Title: "数字与筹码", Description: "奇偶数概念"},
		{Area: domain.AreaMath, Title: "彩色串珠", Description: "数量与符号"},
	}, res.Works)

	assert.Equal(t, llm.TaskSuggest, client.last.Task)
	assert.Contains(t, client.last.UserPrompt, "数学区")
	assert.Contains(t, client.last.UserPrompt, "Number of works: 5")
	assert.True(t, json.Valid(client.last.Format))
}

func TestSuggest_PromptListsExistingTitles(t *testing.T) {
	client := &fakeClient{text: `{"works":[]}`}
	svc := NewSuggestionService(client, WithSuggestionCount(3))

	svc.Suggest(context.Background(), domain.AreaLanguage, []string{"砂纸字母"})

	assert.Contains(t, client.last.UserPrompt, "- 砂纸字母")
	assert.Contains(t, client.last.UserPrompt, "Number of works: 3")
}

func TestSuggest_BareArrayAccepted(t *testing.T) {
	client := &fakeClient{text: "```json\n[{\"title\":\"粉红塔\",\"description\":\"大小\"}]\n```"}
	res := NewSuggestionService(client).Suggest(context.Background(), domain.AreaSensory, nil)
	require.Equal(t, OutcomeOK, res.Outcome)
	assert.Equal(t, "粉红塔", res.Works[0].Title)
}

func TestSuggest_EmptyOutcomes(t *testing.T) {
	for name, text := range map[string]string{
		"empty text":       "",
		"empty list":       `{"works":[]}`,
		"missing works":    `{}`,
		"blank titles":     `{"works":[{"title":"  ","description":"x"}]}`,
		"all already held": `{"works":[{"title":"数棒"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			res := NewSuggestionService(&fakeClient{text: text}).Suggest(context.Background(), domain.AreaMath, []string{"数棒"})
			assert.Equal(t, OutcomeEmpty, res.Outcome)
			assert.False(t, res.HasSuggestions())
			assert.Empty(t, res.Works)
			assert.NoError(t, res.Err)
		})
	}
}

func TestSuggest_UnavailableOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		client llm.LLMClient
		area   domain.Area
		is     error
	}{
		{"disabled", llm.NewClient(llm.DefaultConfig(), nil), domain.AreaMath, llm.ErrDisabled},
		{"nil client", nil, domain.AreaMath, llm.ErrDisabled},
		{"timeout", &fakeClient{err: llm.ErrTimeout}, domain.AreaMath, llm.ErrTimeout},
		{"unparsable", &fakeClient{text: "no idea"}, domain.AreaMath, llm.ErrInvalidOutput},
		{"bad area", &fakeClient{text: `{"works":[]}`}, domain.Area("art"), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := NewSuggestionService(tc.client).Suggest(context.Background(), tc.area, nil)
			assert.Equal(t, OutcomeUnavailable, res.Outcome)
			assert.False(t, res.HasSuggestions())
			require.Error(t, res.Err)
			if tc.is != nil {
				assert.ErrorIs(t, res.Err, tc.is)
			}
		})
	}
}

func TestFilterNew(t *testing.T) {
	drafts := []domain.WorkDraft{
		{Area: domain.AreaMath, Title: "Spindle Box"},
		{Area: domain.AreaMath, Title: "spindle box "},
		{Area: domain.AreaMath, Title: "数棒"},
		{Area: domain.AreaMath, Title: "邮票游戏"},
	}
	got := FilterNew(drafts, []string{"数棒"})
	require.Len(t, got, 2)
	assert.Equal(t, "Spindle Box", got[0].Title)
	assert.Equal(t, "邮票游戏", got[1].Title)

	assert.Nil(t, FilterNew(nil, []string{"x"}))
}

// TestSuggest_WithHTTPTestServer runs the full path through the Ollama
// client: request body, structured format and response parsing.
func TestSuggest_WithHTTPTestServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body["prompt"], "CULTURE")
		assert.NotNil(t, body["format"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model":    "test-model",
			"response": `{"works":[{"title":"太阳系模型","description":"认识行星"}]}`,
		})
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"
	cfg.MaxRetries = 0

	var log strings.Builder
	client := llm.NewClient(cfg, llm.NewLogObserver(&log))
	res := NewSuggestionService(client).Suggest(context.Background(), domain.AreaCulture, nil)

	require.Equal(t, OutcomeOK, res.Outcome)
	assert.Equal(t, []domain.WorkDraft{{Area: domain.AreaCulture, Title: "太阳系模型", Description: "认识行星"}}, res.Works)
	assert.Contains(t, log.String(), "task=suggest")
	assert.Contains(t, log.String(), "status=ok")
}

func TestSuggest_ServerDownIsUnavailable(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = "http://127.0.0.1:1"
	cfg.MaxRetries = 0

	res := NewSuggestionService(llm.NewClient(cfg, nil)).Suggest(context.Background(), domain.AreaMath, nil)
	assert.Equal(t, OutcomeUnavailable, res.Outcome)
	assert.True(t, errors.Is(res.Err, llm.ErrOllamaUnavailable))
}
