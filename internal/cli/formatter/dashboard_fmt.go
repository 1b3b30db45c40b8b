package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/montessori/internal/stats"
)

// DashboardData is the input of the class dashboard.
type DashboardData struct {
	Overview stats.Overview
	Rates    []stats.AreaRate
	Rankings []stats.StudentRanking
}

// FormatDashboard renders the headline counts, one completion bar per area
// and the student leaderboard.
func FormatDashboard(d DashboardData) string {
	var b strings.Builder

	b.WriteString(Header("Classroom"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "学生 %s   工作 %s   进行中 %s   已掌握 %s\n",
		Bold(strconv.Itoa(d.Overview.Students)),
		Bold(strconv.Itoa(d.Overview.Works)),
		StyleYellow.Render(strconv.Itoa(d.Overview.InProgress)),
		StyleGreen.Render(strconv.Itoa(d.Overview.Completed)))

	b.WriteString("\n")
	b.WriteString(Header("Area completion"))
	b.WriteString("\n")
	rateRows := make([][]string, len(d.Rates))
	for i, r := range d.Rates {
		rateRows[i] = []string{
			AreaStyle(r.Area).Render(string(r.Area)),
			RenderPercent(r.Percent, 20),
			Dim(fmt.Sprintf("%d/%d", r.Completed, r.Possible)),
		}
	}
	b.WriteString(RenderTable([]string{"AREA", "COMPLETION", ""}, rateRows))

	b.WriteString("\n")
	b.WriteString(Header("Ranking"))
	b.WriteString("\n")
	if len(d.Rankings) == 0 {
		b.WriteString(Dim("No students yet. Add one with `montessori student add`.") + "\n")
		return b.String()
	}
	rankRows := make([][]string, len(d.Rankings))
	for i, r := range d.Rankings {
		rankRows[i] = []string{
			fmt.Sprintf("%d", i+1),
			Bold(r.Student.Name),
			strconv.Itoa(r.Completed),
			RenderPercent(r.Percent, 10),
		}
	}
	b.WriteString(RenderTable([]string{"#", "STUDENT", "DONE", "PROGRESS"}, rankRows))
	return b.String()
}
