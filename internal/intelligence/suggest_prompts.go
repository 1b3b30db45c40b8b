package intelligence

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/montessori/internal/domain"
)

// suggestSystemPrompt instructs the model to propose classic works for one
// curriculum area.
const suggestSystemPrompt = `You are a curriculum assistant for a Montessori classroom.
You will be given one curriculum area. Propose classic Montessori works (activities) for that area.

You must output ONLY a JSON object of this shape:
{"works": [{"title": "...", "description": "..."}]}

Rules:
1. Titles MUST be written in Chinese and name a real, widely used Montessori material or activity.
2. Descriptions are one short sentence in Chinese stating the educational purpose.
3. Do not repeat any work listed under "existing works".
4. Output ONLY the JSON object, no markdown, no explanation.`

// suggestFormat is sent as Ollama's structured output schema.
var suggestFormat = json.RawMessage(`{
	"type": "object",
	"properties": {
		"works": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"title": {"type": "string", "description": "Name of the work in Chinese"},
					"description": {"type": "string", "description": "Brief educational purpose"}
				},
				"required": ["title", "description"]
			}
		}
	},
	"required": ["works"]
}`)

func buildSuggestPrompt(area domain.Area, count int, existing []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Area: %s (%s)\n", area, area.Key())
	fmt.Fprintf(&b, "Number of works: %d\n", count)
	if len(existing) > 0 {
		b.WriteString("Existing works:\n")
		for _, t := range existing {
			b.WriteString("- ")
			b.WriteString(t)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
