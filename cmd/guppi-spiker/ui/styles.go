// Package ui provides terminal styling and the interactive picker for
// guppi-spiker.
package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spiker/internal/spike"
)

var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#101F38")
	LightPrimary    = lipgloss.Color("#101F38")
	LightAccent     = lipgloss.Color("#558B2F")
	LightMuted      = lipgloss.Color("#6b7280")

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#8BC34A")
	DarkAccent     = lipgloss.Color("#8BC34A")
	DarkMuted      = lipgloss.Color("#9ca3af")
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		IsDark:     true,
	}
}

// DetectTheme picks dark mode from COLORFGBG or SPIKER_DARK_MODE=1, and
// light mode otherwise.
func DetectTheme() Theme {
	// Format is usually "foreground;background"; 0-6 and 8 are dark backgrounds.
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
		}
	}
	if os.Getenv("SPIKER_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Date   lipgloss.Style
	Slug   lipgloss.Style
	Marker lipgloss.Style
	Path   lipgloss.Style
}

// NewStyles creates styles bound to a renderer. The renderer decides
// whether color escapes are emitted, so output to a pipe stays plain.
func NewStyles(r *lipgloss.Renderer, theme Theme) Styles {
	return Styles{
		Theme:  theme,
		Date:   r.NewStyle().Foreground(theme.Muted),
		Slug:   r.NewStyle().Foreground(theme.Primary).Bold(true),
		Marker: r.NewStyle().Foreground(theme.Accent),
		Path:   r.NewStyle().Foreground(theme.Foreground),
	}
}

// WriteLong writes one aligned row per entry: date, slug, a "git" marker
// when the spike holds a repository, and the path.
func WriteLong(w io.Writer, entries []spike.Entry, hasRepo func(spike.Entry) bool) error {
	styles := NewStyles(lipgloss.NewRenderer(w), DetectTheme())

	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Slug))
	}

	for _, e := range entries {
		marker := "   "
		if hasRepo != nil && hasRepo(e) {
			marker = "git"
		}
		pad := strings.Repeat(" ", width-lipgloss.Width(e.Slug))
		_, err := fmt.Fprintf(w, "%s  %s%s  %s  %s\n",
			styles.Date.Render(e.Date),
			styles.Slug.Render(e.Slug), pad,
			styles.Marker.Render(marker),
			styles.Path.Render(e.Path))
		if err != nil {
			return err
		}
	}
	return nil
}
