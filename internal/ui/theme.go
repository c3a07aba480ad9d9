package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Panels, from the outermost background to the focused list.
	Background string
	Surface    string
	SurfaceAlt string
	FocusBg    string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Swapped meals get their own hue; substitutions and promotions reuse
	// Info and Success.
	Swap string
}

// Badge kinds shown next to overridden dishes and meals.
const (
	BadgeSubstituted = "substituted"
	BadgePromoted    = "promoted"
	BadgeSwapped     = "swapped"
)

// BadgeColor returns the pill color for a badge kind, or Muted for an
// unknown kind.
func (t Theme) BadgeColor(kind string) string {
	switch kind {
	case BadgeSubstituted:
		return t.Info
	case BadgePromoted:
		return t.Success
	case BadgeSwapped:
		return t.Swap
	}
	return t.Muted
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	theme Theme
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	fg := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),
		InfoText:    fg(t.Info),

		Header: fg(t.Text).
			Background(lipgloss.Color(t.Surface)).
			Padding(0, 1),
		Footer: fg(t.Muted).
			Background(lipgloss.Color(t.Surface)).
			Padding(0, 1),
		Logo: fg(t.Warning).Bold(true),
		Selected: fg(t.SelectionText).
			Background(lipgloss.Color(t.SelectionBg)),

		theme: t,
	}
}

// BadgeStyle returns the pill style for a badge kind.
func (s Styles) BadgeStyle(kind string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.theme.Background)).
		Background(lipgloss.Color(s.theme.BadgeColor(kind))).
		Padding(0, 1)
}

// WithBackground returns a copy of Styles with every style painted on bgColor.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	for _, st := range []*lipgloss.Style{
		&out.Text, &out.MutedText, &out.FaintText, &out.AccentText,
		&out.SuccessText, &out.WarningText, &out.DangerText, &out.InfoText,
		&out.Header, &out.Footer, &out.Logo, &out.Selected,
	} {
		*st = st.Background(bg)
	}
	return out
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// Palettes are listed as
// background, surface, surfaceAlt, focus, selectionBg, selectionText,
// border, borderFocus, text, muted, faint, accent, success, warning,
// danger, info, swap.
var themes = map[string]Theme{
	// https://github.com/EdenEast/nightfox.nvim
	"Nightfox": palette("Nightfox",
		"#131a24", "#192330", "#212e3f", "#29394f", "#2b3b51", "#cdcecf",
		"#39506d", "#719cd6", "#cdcecf", "#738091", "#71839b", "#719cd6",
		"#81b29a", "#dbc074", "#c94f6d", "#63cdcf", "#f4a261"),
	// https://github.com/rebelot/kanagawa.nvim
	"Kanagawa": palette("Kanagawa",
		"#16161D", "#1F1F28", "#2A2A37", "#2A2A37", "#2D4F67", "#DCD7BA",
		"#54546D", "#7E9CD8", "#DCD7BA", "#C8C093", "#727169", "#7E9CD8",
		"#98BB6C", "#E6C384", "#E46876", "#7FB4CA", "#FFA066"),
	// Tailwind slate/sky
	"Slate": palette("Slate",
		"#020617", "#0f172a", "#1e293b", "#283548", "#0284c7", "#f8fafc",
		"#334155", "#38bdf8", "#f1f5f9", "#94a3b8", "#64748b", "#38bdf8",
		"#22c55e", "#f59e0b", "#ef4444", "#06b6d4", "#fb923c"),
}

func palette(name string, c ...string) Theme {
	return Theme{
		Name:          name,
		Background:    c[0],
		Surface:       c[1],
		SurfaceAlt:    c[2],
		FocusBg:       c[3],
		SelectionBg:   c[4],
		SelectionText: c[5],
		Border:        c[6],
		BorderFocus:   c[7],
		Text:          c[8],
		Muted:         c[9],
		Faint:         c[10],
		Accent:        c[11],
		Success:       c[12],
		Warning:       c[13],
		Danger:        c[14],
		Info:          c[15],
		Swap:          c[16],
	}
}

// GetTheme returns a theme by name, falling back to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[themeOrder[0]]
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}
