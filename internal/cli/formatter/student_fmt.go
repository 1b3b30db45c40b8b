package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/alexanderramin/montessori/internal/stats"
)

// StudentRow pairs a student with its overall progress for list output.
type StudentRow struct {
	Student  domain.Student
	Progress domain.StudentProgress
}

// FormatStudentList renders the students table.
func FormatStudentList(rows []StudentRow) string {
	table := make([][]string, len(rows))
	for i, r := range rows {
		table[i] = []string{
			Dim(ShortID(r.Student.ID)),
			Bold(r.Student.Name),
			string(r.Student.Gender),
			strconv.Itoa(r.Student.Age),
			fmt.Sprintf("%d/%d", r.Progress.CompletedCount, r.Progress.TotalCount),
			RenderPercent(r.Progress.Percent, 10),
		}
	}
	return RenderTable([]string{"ID", "NAME", "GENDER", "AGE", "DONE", "PROGRESS"}, table)
}

// WorkLine is one work of the student detail view.
type WorkLine struct {
	Work      domain.Work
	Status    domain.WorkStatus
	UpdatedAt time.Time
}

// StudentDetailData is everything the student detail view renders.
type StudentDetailData struct {
	Student   domain.Student
	Progress  domain.StudentProgress
	Breakdown []stats.AreaProgress
	Works     map[domain.Area][]WorkLine
	Now       time.Time
}

// FormatStudentDetail renders a student card followed by one section per
// area with its nested progress bar and works.
func FormatStudentDetail(d StudentDetailData) string {
	var b strings.Builder

	card := []string{
		fmt.Sprintf("%s  %s", Bold(d.Student.Name), Dim(d.Student.ID)),
		fmt.Sprintf("%s · %d岁", d.Student.Gender, d.Student.Age),
	}
	if d.Student.ParentContact != "" {
		card = append(card, "家长联系: "+d.Student.ParentContact)
	}
	if d.Student.Notes != "" {
		card = append(card, Dim(d.Student.Notes))
	}
	card = append(card, "", fmt.Sprintf("总进度 %s  (%d 已掌握, %d 进行中, 共 %d)",
		RenderPercent(d.Progress.Percent, 20),
		d.Progress.CompletedCount, d.Progress.InProgressCount, d.Progress.TotalCount))
	b.WriteString(RenderBox(d.Student.Initial(), strings.Join(card, "\n")))
	b.WriteString("\n")

	for _, ap := range d.Breakdown {
		b.WriteString("\n")
		b.WriteString(formatAreaHeading(ap))
		b.WriteString("\n")
		lines := d.Works[ap.Area]
		if len(lines) == 0 {
			b.WriteString("  " + Dim("暂无工作") + "\n")
			continue
		}
		for _, l := range lines {
			fmt.Fprintf(&b, "  %s  %s", StatusPill(l.Status), l.Work.Title)
			if !l.UpdatedAt.IsZero() {
				b.WriteString("  " + Dim(HumanTimestampFrom(l.UpdatedAt, d.Now)))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatAreaHeading(ap stats.AreaProgress) string {
	label := AreaStyle(ap.Area).Render(string(ap.Area))
	heading := fmt.Sprintf("%s  %s  %d/%d", label, RenderPercent(ap.Percent, 12), ap.Completed, ap.Total)
	if ap.InProgress > 0 {
		heading += Dim(fmt.Sprintf("  (+%d 进行中)", ap.InProgress))
	}
	if ap.Mastered() {
		heading += "  " + StyleYellow.Render("🏆")
	}
	return heading
}
