package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header is the title block printed above a report
type Header struct {
	Title  string            // e.g., "BYTE INSPECTION"
	Params map[string]string // e.g., {"Length": "6", "CRC-8": "d8"}
	Width  int
}

// NewHeader creates a header sized to the terminal
func NewHeader(title string, params map[string]string) *Header {
	return &Header{
		Title:  title,
		Params: params,
		Width:  GetTerminalWidth(),
	}
}

// SetWidth sets the width for rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

func (h *Header) sortedKeys() []string {
	keys := make([]string, 0, len(h.Params))
	for k := range h.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render returns the header inside a rounded border
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	title := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	if len(h.Params) == 0 {
		return BoxStyle(width).Render(title)
	}

	dividerWidth := width - 6
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := RenderHorizontalDivider(dividerWidth, "─")

	var paramLines []string
	for _, key := range h.sortedKeys() {
		paramLines = append(paramLines,
			HeaderParamKeyStyle.Render(key+":")+" "+HeaderParamValueStyle.Render(h.Params[key]))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, divider, strings.Join(paramLines, "\n"))
	return BoxStyle(width).Render(content)
}

// RenderPlain returns the header without styling, one param per line
func (h *Header) RenderPlain() string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(h.Title))
	b.WriteByte('\n')
	for _, key := range h.sortedKeys() {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(h.Params[key])
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
