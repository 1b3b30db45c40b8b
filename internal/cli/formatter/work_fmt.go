package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/montessori/internal/domain"
)

// FormatWorkList renders works grouped by area in display order. Areas with
// no works are listed so the curriculum shape stays visible.
func FormatWorkList(works []domain.Work) string {
	byArea := make(map[domain.Area][]domain.Work)
	for _, w := range works {
		byArea[w.Area] = append(byArea[w.Area], w)
	}

	var b strings.Builder
	for i, a := range domain.Areas() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", AreaStyle(a).Render(string(a)), Dim(fmt.Sprintf("(%d)", len(byArea[a]))))
		if len(byArea[a]) == 0 {
			b.WriteString("  " + Dim("暂无工作") + "\n")
			continue
		}
		rows := make([][]string, len(byArea[a]))
		for j, w := range byArea[a] {
			rows[j] = []string{Dim(ShortID(w.ID)), w.Title, Dim(Truncate(w.Description, 40))}
		}
		for _, line := range strings.Split(strings.TrimSuffix(RenderTable([]string{"ID", "TITLE", "DESCRIPTION"}, rows), "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

// FormatSuggestions renders drafts offered by the suggestion service.
func FormatSuggestions(area domain.Area, drafts []domain.WorkDraft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Header("Suggestions · "+string(area)))
	for i, d := range drafts {
		fmt.Fprintf(&b, "%2d. %s", i+1, Bold(d.Title))
		if d.Description != "" {
			b.WriteString("  " + Dim(d.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}
