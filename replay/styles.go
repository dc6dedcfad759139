package replay

import "github.com/charmbracelet/lipgloss"

// Palette used by DefaultStyles. The roles mirror a map view: the node being
// expanded stands out, the frontier is cool, the explored set is muted.
var (
	ColorCurrent  = lipgloss.Color("#2CD7C7")
	ColorFrontier = lipgloss.Color("#20B9B4")
	ColorBackward = lipgloss.Color("#E78AC3")
	ColorExplored = lipgloss.Color("#5C7A84")
	ColorPath     = lipgloss.Color("#7BD389")
	ColorMissing  = lipgloss.Color("#E74C3C")
)

// Styles holds one lipgloss style per frame element.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Current  lipgloss.Style
	Frontier lipgloss.Style
	Backward lipgloss.Style
	Explored lipgloss.Style
	Path     lipgloss.Style
	Missing  lipgloss.Style
}

// DefaultStyles returns the coloured styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Label:    lipgloss.NewStyle().Foreground(ColorExplored),
		Current:  lipgloss.NewStyle().Bold(true).Foreground(ColorCurrent),
		Frontier: lipgloss.NewStyle().Foreground(ColorFrontier),
		Backward: lipgloss.NewStyle().Foreground(ColorBackward),
		Explored: lipgloss.NewStyle().Foreground(ColorExplored),
		Path:     lipgloss.NewStyle().Bold(true).Foreground(ColorPath),
		Missing:  lipgloss.NewStyle().Foreground(ColorMissing),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()

	return Styles{Title: s, Label: s, Current: s, Frontier: s, Backward: s, Explored: s, Path: s, Missing: s}
}
