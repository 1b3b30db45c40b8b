package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

var areaColors = map[domain.Area]lipgloss.Color{
	domain.AreaDailyLife: ColorGreen,
	domain.AreaSensory:   ColorPurple,
	domain.AreaMath:      ColorBlue,
	domain.AreaLanguage:  ColorYellow,
	domain.AreaCulture:   ColorAqua,
}

// AreaStyle returns the accent style of an area.
func AreaStyle(area domain.Area) lipgloss.Style {
	if c, ok := areaColors[area]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return StyleDim
}

// StatusPill returns a colored status indicator such as "● 进行中".
func StatusPill(status domain.WorkStatus) string {
	switch status {
	case domain.StatusCompleted:
		return StyleGreen.Render("✔ 已掌握")
	case domain.StatusInProgress:
		return StyleYellow.Render("● 进行中")
	case domain.StatusNotStarted:
		return StyleDim.Render("○ 未开始")
	default:
		return StyleRed.Render("? " + string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
