package exposureprobe

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode selects when report labels are coloured.
type ColorMode string

const (
	// ColorAuto colours output written to a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways colours output regardless of the writer.
	ColorAlways ColorMode = "always"
	// ColorNever disables colour.
	ColorNever ColorMode = "never"
)

// ParseColorMode converts a flag value into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("unknown color mode %q", s)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type palette struct {
	heading func(a ...any) string
	good    func(a ...any) string
	bad     func(a ...any) string
}

func newPalette(w io.Writer, mode ColorMode) palette {
	enabled := mode == ColorAlways || (mode == ColorAuto && isTerminal(w))
	if !enabled {
		plain := fmt.Sprint

		return palette{heading: plain, good: plain, bad: plain}
	}

	return palette{
		heading: sprinter(color.FgCyan, color.Bold),
		good:    sprinter(color.FgGreen),
		bad:     sprinter(color.FgRed, color.Bold),
	}
}

func sprinter(attrs ...color.Attribute) func(a ...any) string {
	c := color.New(attrs...)
	c.EnableColor()

	return c.SprintFunc()
}
