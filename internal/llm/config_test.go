package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_DisabledWithSuggestTask(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 20000, cfg.TaskTimeout(TaskSuggest))
	assert.Equal(t, 10000, cfg.TaskTimeout(TaskType("other")))
}

func TestLoadConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("MONTESSORI_LLM_ENABLED", "true")
	t.Setenv("MONTESSORI_LLM_ENDPOINT", "http://gpu-box:11434")
	t.Setenv("MONTESSORI_LLM_MODEL", "llama3.2")
	t.Setenv("MONTESSORI_LLM_TIMEOUT_MS", "9000")
	t.Setenv("MONTESSORI_LLM_MAX_RETRIES", "0")
	t.Setenv("MONTESSORI_LLM_SUGGEST_TIMEOUT_MS", "15000")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://gpu-box:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskSuggest))
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("MONTESSORI_LLM_SUGGEST_TIMEOUT_MS", "not-a-number")
	t.Setenv("MONTESSORI_LLM_MAX_RETRIES", "-2")
	t.Setenv("MONTESSORI_LLM_ENABLED", "maybe")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.Equal(t, 20000, cfg.TaskTimeout(TaskSuggest))
}
