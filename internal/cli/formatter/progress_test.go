package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name   string
		pct    float64
		filled int
		label  string
	}{
		{"empty", 0, 0, "  0%"},
		{"half", 0.5, 5, " 50%"},
		{"full", 1, 10, "100%"},
		{"over clamps", 1.5, 10, "100%"},
		{"negative clamps", -0.2, 0, "  0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := stripANSI(RenderProgress(tt.pct, 10))
			assert.True(t, strings.HasPrefix(out, "["))
			assert.True(t, strings.HasSuffix(out, tt.label), out)
			assert.Equal(t, tt.filled, strings.Count(out, filledBlock))
			assert.Equal(t, 10-tt.filled, strings.Count(out, emptyBlock))
		})
	}
}

func TestRenderPercent(t *testing.T) {
	assert.Equal(t, stripANSI(RenderProgress(0.33, 10)), stripANSI(RenderPercent(33, 10)))
}

func TestRenderCompactBar(t *testing.T) {
	for _, dim := range []bool{false, true} {
		out := stripANSI(RenderCompactBar(0.5, 4, dim))
		assert.Equal(t, "██░░", out)
	}
	assert.Equal(t, "░░", stripANSI(RenderCompactBar(0, 1, false)), "width clamps to 2")
}
