package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Palette & Styles
// =============================================================================

// Crayon brands its CLI with a warm orange accent; everything else stays
// close to the terminal defaults so output reads fine on light and dark
// schemes alike.
var (
	colorAccent = lipgloss.Color("208") // crayon orange
	colorOK     = lipgloss.Color("35")
	colorWarn   = lipgloss.Color("220")
	colorErr    = lipgloss.Color("167")
	colorLink   = lipgloss.Color("75")
	colorBright = lipgloss.Color("255")
	colorMuted  = lipgloss.Color("245")
	colorFaint  = lipgloss.Color("240")
)

// Styles shared across commands.
var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorFaint)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorBright)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorWarn)
)

var (
	styleOK      = lipgloss.NewStyle().Foreground(colorOK)
	styleErr     = lipgloss.NewStyle().Foreground(colorErr)
	styleWarn    = lipgloss.NewStyle().Foreground(colorWarn)
	styleNote    = lipgloss.NewStyle().Foreground(colorMuted)
	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleCommand = lipgloss.NewStyle().Foreground(colorLink)
	styleLabel   = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
)

// =============================================================================
// Status Output
// =============================================================================

// statusLine prints a styled icon followed by a plain message.
func statusLine(style lipgloss.Style, icon, format string, args ...any) {
	fmt.Println(style.Render(icon) + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { statusLine(styleOK, "✓", format, args...) }

func printError(format string, args ...any) { statusLine(styleErr, "✗", format, args...) }

func printInfo(format string, args ...any) { statusLine(styleNote, "›", format, args...) }

// printWarning colors the whole message, not just the icon, so warnings
// stand out from routine output.
func printWarning(format string, args ...any) {
	fmt.Println(styleWarn.Render("!") + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a file the command wrote.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

// printKeyValue prints a fixed-width label column followed by its value.
func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Summaries
// =============================================================================

// printStats prints the one-line summary shown after a render: dataset and
// format counts, and whether the artifact came out of the cache.
func printStats(datasets, formats int, cached bool) {
	var b strings.Builder
	b.WriteString("  ")
	if datasets > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%d datasets", datasets)))
		b.WriteString(StyleDim.Render(" · "))
	}
	if formats > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%d formats", formats)))
		b.WriteString(StyleDim.Render(" · "))
	}
	if cached {
		b.WriteString(styleOK.Render("cached"))
	} else {
		b.WriteString(styleNote.Render("fresh"))
	}
	fmt.Println(b.String())
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() { fmt.Println() }
