package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/crayonviz/crayon/pkg/chart"
	"github.com/crayonviz/crayon/pkg/colorx"
	"github.com/crayonviz/crayon/pkg/errors"
)

// paletteCommand creates the palette command for previewing color tones.
func (c *CLI) paletteCommand() *cobra.Command {
	var (
		brightness float64
		saturation float64
		steps      int
	)

	cmd := &cobra.Command{
		Use:   "palette [color]",
		Short: "Preview color tone adjustments",
		Long: `Preview how chart colors respond to tone adjustments.

Without arguments the command shows the built-in chart palette. With a CSS
color (hex, rgb(), or an SVG color name) it prints a ladder of tones around
it, stepping brightness and saturation the same way charts derive shade
variants from series colors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printDefaultPalette()
				return nil
			}
			return printToneLadder(args[0], brightness, saturation, steps)
		},
	}

	cmd.Flags().Float64Var(&brightness, "brightness", 8, "brightness step per tone, in percentage points of lightness")
	cmd.Flags().Float64Var(&saturation, "saturation", 0, "saturation step per tone (-1 to 1)")
	cmd.Flags().IntVar(&steps, "steps", 3, "tones to show on each side of the base color")

	return cmd
}

// swatch renders a colored block for terminal display.
func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("        ")
}

// printDefaultPalette shows the built-in series color cycle.
func printDefaultPalette() {
	printInfo("Default chart palette")
	printNewline()
	for i, hex := range chart.DefaultPalette {
		fmt.Printf("  %s  %s  %s\n", swatch(hex), StyleValue.Render(hex), StyleDim.Render(fmt.Sprintf("series %d", i+1)))
	}
	printNewline()
	printNextStep("Adjust a tone", "crayon palette "+chart.DefaultPalette[0])
}

// printToneLadder shows tones around a base color, one adjustment step apart.
func printToneLadder(color string, brightness, saturation float64, steps int) error {
	base, ok := colorx.Resolve(color)
	if !ok {
		return errors.New(errors.ErrCodeInvalidColor,
			"cannot parse color %q (use hex, rgb(), or an SVG color name)", color)
	}
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", steps)
	}

	printKeyValue("base", color)
	printKeyValue("hex", base.Hex())
	printNewline()

	for i := -steps; i <= steps; i++ {
		adjusted := colorx.Adjust(color, float64(i)*brightness, float64(i)*saturation)
		hex := adjusted
		if c, ok := colorx.Resolve(adjusted); ok {
			hex = c.Hex()
		}

		marker := "  "
		label := fmt.Sprintf("%+d", i)
		if i == 0 {
			marker = StyleHighlight.Render("▸ ")
			label = " 0"
		}
		fmt.Printf("%s%s  %s  %s\n", marker, swatch(hex), StyleValue.Render(hex), StyleDim.Render(label))
	}
	return nil
}
