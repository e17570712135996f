package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/dijkstep/steps"
)

// Legend colors per status.
var statusColors = []struct {
	status string
	hex    string
}{
	{StatusCurrent, "#f472b6"},
	{StatusVisited, "#818cf8"},
	{StatusFrontier, "#fbbf24"},
	{StatusUnvisited, "#9ca3af"},
}

const defaultWordWrap = 80

type terminalOptions struct {
	profile  termenv.Profile
	style    string
	wordWrap int
}

// TerminalOption configures NewTerminal.
type TerminalOption func(*terminalOptions)

// WithProfile forces a color profile instead of detecting it from stdout.
// termenv.Ascii disables colors entirely.
func WithProfile(p termenv.Profile) TerminalOption {
	return func(o *terminalOptions) {
		o.profile = p
	}
}

// WithStyle selects a glamour standard style ("dark", "light", "notty", ...).
// An empty name means auto-detection.
func WithStyle(name string) TerminalOption {
	return func(o *terminalOptions) {
		o.style = name
	}
}

// WithWordWrap sets the wrap width; n <= 0 keeps the default.
func WithWordWrap(n int) TerminalOption {
	return func(o *terminalOptions) {
		if n > 0 {
			o.wordWrap = n
		}
	}
}

// Terminal renders steps for a terminal.
type Terminal struct {
	renderer *glamour.TermRenderer
	profile  termenv.Profile
}

// NewTerminal builds a glamour renderer from opts.
func NewTerminal(opts ...TerminalOption) (*Terminal, error) {
	o := terminalOptions{
		profile:  termenv.ColorProfile(),
		wordWrap: defaultWordWrap,
	}
	for _, opt := range opts {
		opt(&o)
	}

	style := glamour.WithAutoStyle()
	if o.style != "" {
		style = glamour.WithStandardStyle(o.style)
	}
	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithColorProfile(o.profile),
		glamour.WithWordWrap(o.wordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("render: create terminal renderer: %w", err)
	}

	return &Terminal{renderer: r, profile: o.profile}, nil
}

// Legend returns one line naming every status in its color.
func (t *Terminal) Legend() string {
	parts := make([]string, len(statusColors))
	for i, sc := range statusColors {
		parts[i] = t.profile.String("■ " + sc.status).Foreground(t.profile.Color(sc.hex)).String()
	}
	return strings.Join(parts, "  ")
}

// Render returns the legend followed by the rendered Markdown of s.
func (t *Terminal) Render(s steps.Step, nodeCount int) (string, error) {
	out, err := t.renderer.Render(Markdown(s, nodeCount))
	if err != nil {
		return "", fmt.Errorf("render: step %s: %w", s.Kind, err)
	}
	return t.Legend() + "\n" + out, nil
}
