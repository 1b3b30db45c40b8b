package llm

import (
	"fmt"
	"io"
	"time"
)

// LLMCallEvent records metadata about a single Generate call.
type LLMCallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Attempts  int
	Success   bool
	ErrorCode string
}

// Observer receives events about LLM calls for logging.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver writes one line per call to an io.Writer.
type LogObserver struct {
	w   io.Writer
	now func() time.Time
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w, now: time.Now}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	ts := o.now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] llm_call task=%s model=%s attempts=%d latency_ms=%d status=%s\n",
		ts, event.Task, event.Model, event.Attempts, event.LatencyMs, status)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
