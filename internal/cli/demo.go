package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/crayonviz/crayon/pkg/chart"
	"github.com/crayonviz/crayon/pkg/chartio"
	"github.com/crayonviz/crayon/pkg/pipeline"
)

// =============================================================================
// Built-in Demos
// =============================================================================

// demo describes one built-in example chart.
type demo struct {
	name string
	desc string
	spec chartio.Spec
}

// demos are the built-in example charts, one per chart flavor. Seeds are
// left at zero so the pipeline pins its default and renders stay
// reproducible.
var demos = []demo{
	{
		name: "traffic",
		desc: "Two-series line chart of weekly page views",
		spec: chartio.Spec{
			Kind:   chart.KindLine,
			Title:  "Weekly Traffic",
			XLabel: "day",
			YLabel: "views",
			Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Series: []chartio.Series{
				{Name: "blog", Values: []float64{512, 488, 603, 578, 692, 833, 790}},
				{Name: "docs", Values: []float64{220, 305, 289, 341, 366, 201, 188}},
			},
		},
	},
	{
		name: "revenue",
		desc: "Filled area chart of quarterly revenue",
		spec: chartio.Spec{
			Kind:   chart.KindLine,
			Title:  "Revenue by Quarter",
			YLabel: "k$",
			Area:   true,
			Labels: []string{"Q1", "Q2", "Q3", "Q4"},
			Series: []chartio.Series{
				{Name: "2024", Values: []float64{140, 162, 159, 201}},
				{Name: "2025", Values: []float64{188, 214, 243, 270}},
			},
		},
	},
	{
		name: "languages",
		desc: "Pie chart of lines of code by language",
		spec: chartio.Spec{
			Kind:  chart.KindPie,
			Title: "Lines of Code",
			Fill:  chart.FillOilPaint,
			Slices: []chartio.Slice{
				{Label: "Go", Value: 52},
				{Label: "TypeScript", Value: 26},
				{Label: "Shell", Value: 14},
				{Label: "Other", Value: 8},
			},
		},
	},
	{
		name: "storage",
		desc: "Donut chart of disk usage by volume",
		spec: chartio.Spec{
			Kind:  "donut",
			Title: "Disk Usage (GB)",
			Slices: []chartio.Slice{
				{Label: "photos", Value: 212},
				{Label: "media", Value: 154},
				{Label: "code", Value: 48},
				{Label: "system", Value: 31},
				{Label: "free", Value: 55},
			},
		},
	},
}

// demoByName finds a built-in demo by name.
func demoByName(name string) (demo, bool) {
	for _, d := range demos {
		if d.name == name {
			return d, true
		}
	}
	return demo{}, false
}

// demoNames returns the demo names in listing order.
func demoNames() []string {
	names := make([]string, len(demos))
	for i, d := range demos {
		names[i] = d.name
	}
	return names
}

// =============================================================================
// Command
// =============================================================================

// demoCommand creates the demo command for scaffolding example charts.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		specFormat string
		noCache    bool
		list       bool
	)

	cmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Write and render a built-in example chart",
		Long: `Write and render a built-in example chart.

The demo command writes a chart spec next to its rendered output, so there
is always a working file to start editing from. Without a name it opens an
interactive picker.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				printDemoList()
				return nil
			}
			formats := parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return c.runDemo(cmd.Context(), name, formats, output, specFormat, noCache)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list the built-in demos")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: the demo name)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&specFormat, "spec-format", "toml", "spec file format: toml, json, yaml")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runDemo writes the demo spec file and renders it.
func (c *CLI) runDemo(ctx context.Context, name string, formats []string, output, specFormat string, noCache bool) error {
	d, err := pickDemo(name)
	if err != nil {
		return err
	}
	if d == nil {
		return nil // picker dismissed
	}

	base := d.name
	if output != "" {
		base = strings.TrimSuffix(output, filepath.Ext(output))
	}
	specPath := base + "." + specFormat

	spec := d.spec
	if err := chartio.WriteFile(&spec, specPath); err != nil {
		return fmt.Errorf("write spec %s: %w", specPath, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s demo...", d.name))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Spec:    &spec,
		Formats: formats,
		Logger:  c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("demo %s: %w", d.name, err)
	}
	spinner.Stop()

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   formats,
		input:     specPath,
		specPath:  specPath,
		cacheHit:  result.CacheInfo.RenderHit,
		datasets:  result.Stats.Datasets,
	}); err != nil {
		return err
	}

	printNewline()
	printNextStep("Tweak it", "crayon render "+specPath+" --fill oilpaint")
	return nil
}

// pickDemo resolves a demo by name, or interactively when name is empty.
// A nil demo with nil error means the user dismissed the picker.
func pickDemo(name string) (*demo, error) {
	if name != "" {
		d, ok := demoByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown demo %q (valid: %s)", name, strings.Join(demoNames(), ", "))
		}
		return &d, nil
	}

	m := newDemoListModel(demos)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	fm, ok := finalModel.(demoListModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return nil, nil
	}
	return fm.Selected, nil
}

// printDemoList prints the built-in demos as a table.
func printDemoList() {
	headerStyle := lipgloss.NewStyle().Foreground(colorMuted).Bold(true)

	rows := make([][]string, len(demos))
	for i, d := range demos {
		rows[i] = []string{d.name, d.spec.Kind, d.desc}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("Name", "Kind", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	fmt.Println(t.Render())
	printNextStep("Try one", "crayon demo "+demos[0].name)
}

// =============================================================================
// demoListModel - Interactive demo selection
// =============================================================================

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorBright)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorFaint)
)

// demoListModel is the bubbletea model for interactive demo selection.
type demoListModel struct {
	Demos    []demo
	Cursor   int
	Selected *demo
}

// newDemoListModel creates a new demo list model.
func newDemoListModel(ds []demo) demoListModel {
	return demoListModel{Demos: ds}
}

func (m demoListModel) Init() tea.Cmd {
	return nil
}

func (m demoListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Demos)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Demos[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m demoListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Pick a Demo Chart"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, d := range m.Demos {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-11s %-6s %s", cursor, d.name, d.spec.Kind, listDimStyle.Render(d.desc))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
