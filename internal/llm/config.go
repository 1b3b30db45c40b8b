package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation being requested. Each task
// carries its own sampling parameters and timeout.
type TaskType string

const (
	// TaskSuggest asks the model for classic works of one curriculum area.
	TaskSuggest TaskType = "suggest"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// LLM is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "qwen2.5",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskSuggest: {Temperature: 0.4, MaxTokens: 1024, TimeoutMs: 20000},
		},
	}
}

// LoadConfig reads MONTESSORI_LLM_* environment variables, falling back to
// defaults for unset or unparsable values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("MONTESSORI_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MONTESSORI_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MONTESSORI_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("MONTESSORI_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if n, ok := envInt("MONTESSORI_LLM_TIMEOUT_MS"); ok && n > 0 {
		cfg.TimeoutMs = n
	}
	if n, ok := envInt("MONTESSORI_LLM_MAX_RETRIES"); ok && n >= 0 {
		cfg.MaxRetries = n
	}
	if n, ok := envInt("MONTESSORI_LLM_SUGGEST_TIMEOUT_MS"); ok && n > 0 {
		tc := cfg.Tasks[TaskSuggest]
		tc.TimeoutMs = n
		cfg.Tasks[TaskSuggest] = tc
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
