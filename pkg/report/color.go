package report

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColorEnabled resolves a --color mode ("auto", "always", "never") against
// the file output goes to. In auto mode colour is used only when f is a
// terminal and NO_COLOR is unset.
func ColorEnabled(mode string, f *os.File) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		if f == nil || os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode: %s", mode)
	}
}

// styles holds the colour formatters used by the human output.
type styles struct {
	title   *color.Color
	day     *color.Color
	label   *color.Color
	value   *color.Color
	elapsed *color.Color
	pass    *color.Color
	fail    *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		title:   color.New(color.Bold, color.FgHiWhite),
		day:     color.New(color.Bold, color.FgHiBlue),
		label:   color.New(color.Bold),
		value:   color.New(color.FgHiGreen),
		elapsed: color.New(color.FgHiBlack),
		pass:    color.New(color.FgGreen),
		fail:    color.New(color.Bold, color.FgRed),
	}

	for _, c := range []*color.Color{s.title, s.day, s.label, s.value, s.elapsed, s.pass, s.fail} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}
