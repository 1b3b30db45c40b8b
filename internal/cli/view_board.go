package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/montessori/internal/cli/formatter"
	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/alexanderramin/montessori/internal/service"
	"github.com/alexanderramin/montessori/internal/stats"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// boardRow is one flattened line of the board: an area heading or a work.
type boardRow struct {
	isArea bool
	area   domain.Area
	work   domain.Work
	status domain.WorkStatus
	// Only set on area rows.
	progress stats.AreaProgress
}

// boardLoadedMsg carries rows rebuilt from a fresh snapshot.
type boardLoadedMsg struct {
	rows []boardRow
}

// boardCycledMsg reports the result of cycling one work.
type boardCycledMsg struct {
	workID string
	status domain.WorkStatus
	err    error
}

type boardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Cycle    key.Binding
	Collapse key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Cycle, k.Collapse, k.Reload, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var boardKeys = boardKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Cycle:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "cycle status")),
	Collapse: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "collapse area")),
	Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// boardView shows one student's progress by area. Cursor and collapsed
// areas are view state only; every status change goes through the
// progress service.
type boardView struct {
	app       *App
	student   domain.Student
	rows      []boardRow
	cursor    int
	collapsed map[domain.Area]bool
	help      help.Model
	err       error
}

func newBoardView(app *App, student domain.Student) *boardView {
	return &boardView{
		app:       app,
		student:   student,
		rows:      buildBoardRows(app.Snapshots.Snapshot(), student.ID),
		collapsed: make(map[domain.Area]bool),
		help:      help.New(),
	}
}

func buildBoardRows(snap service.Snapshot, studentID string) []boardRow {
	breakdown := stats.StudentBreakdown(snap, studentID)
	rows := make([]boardRow, 0, len(snap.Works)+len(breakdown))
	for _, ap := range breakdown {
		rows = append(rows, boardRow{isArea: true, area: ap.Area, progress: ap})
		for _, w := range snap.WorksByArea(ap.Area) {
			rows = append(rows, boardRow{area: ap.Area, work: w, status: snap.StatusOf(studentID, w.ID)})
		}
	}
	return rows
}

func (v *boardView) visibleRows() []boardRow {
	out := make([]boardRow, 0, len(v.rows))
	for _, r := range v.rows {
		if !r.isArea && v.collapsed[r.area] {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (v *boardView) Init() tea.Cmd { return nil }

func (v *boardView) reload() tea.Cmd {
	app, id := v.app, v.student.ID
	return func() tea.Msg {
		return boardLoadedMsg{rows: buildBoardRows(app.Snapshots.Snapshot(), id)}
	}
}

func (v *boardView) cycle(workID string) tea.Cmd {
	app, id := v.app, v.student.ID
	return func() tea.Msg {
		status, err := app.Progress.CycleProgress(context.Background(), id, workID)
		return boardCycledMsg{workID: workID, status: status, err: err}
	}
}

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		v.rows = msg.rows
		v.clampCursor()
		return v, nil

	case boardCycledMsg:
		// The in-memory change is kept even when saving failed, so reload
		// either way and surface the error in the footer.
		v.err = msg.err
		return v, v.reload()

	case tea.KeyMsg:
		visible := v.visibleRows()
		switch {
		case key.Matches(msg, boardKeys.Quit):
			return v, tea.Quit
		case key.Matches(msg, boardKeys.Up):
			if v.cursor > 0 {
				v.cursor--
			}
		case key.Matches(msg, boardKeys.Down):
			if v.cursor < len(visible)-1 {
				v.cursor++
			}
		case key.Matches(msg, boardKeys.Cycle):
			if v.cursor < len(visible) && !visible[v.cursor].isArea {
				return v, v.cycle(visible[v.cursor].work.ID)
			}
		case key.Matches(msg, boardKeys.Collapse):
			if v.cursor < len(visible) {
				a := visible[v.cursor].area
				v.collapsed[a] = !v.collapsed[a]
				v.cursor = v.areaRowIndex(a)
			}
		case key.Matches(msg, boardKeys.Reload):
			v.err = nil
			return v, v.reload()
		}
	}
	return v, nil
}

// areaRowIndex returns the visible index of the heading row of area.
func (v *boardView) areaRowIndex(a domain.Area) int {
	for i, r := range v.visibleRows() {
		if r.isArea && r.area == a {
			return i
		}
	}
	return 0
}

func (v *boardView) clampCursor() {
	n := len(v.visibleRows())
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *boardView) View() string {
	var b strings.Builder
	sp := v.app.Progress.GetStudentProgress(v.student.ID)
	fmt.Fprintf(&b, "%s  %s\n\n", formatter.Header(v.student.Name), formatter.RenderPercent(sp.Percent, 20))

	for i, r := range v.visibleRows() {
		pointer := "  "
		if i == v.cursor {
			pointer = "> "
		}
		if r.isArea {
			marker := "▾"
			if v.collapsed[r.area] {
				marker = "▸"
			}
			heading := formatter.AreaStyle(r.area).Render(string(r.area))
			if r.progress.Mastered() {
				heading += " 🏆"
			}
			bar := formatter.RenderCompactBar(float64(r.progress.Percent)/100, 12, v.collapsed[r.area])
			fmt.Fprintf(&b, "%s%s %s %s %3d%% %d/%d\n", pointer, marker, heading,
				bar, r.progress.Percent, r.progress.Completed, r.progress.Total)
			continue
		}
		fmt.Fprintf(&b, "%s    %s %s\n", pointer, formatter.StatusPill(r.status), r.work.Title)
	}

	if v.err != nil {
		fmt.Fprintf(&b, "\n%s\n", formatter.Dim("error: "+v.err.Error()))
	}
	b.WriteString("\n" + v.help.View(boardKeys))
	return b.String()
}
