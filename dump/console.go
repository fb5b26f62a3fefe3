package dump

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColorMode determines whether Console colors its output.
type ColorMode int

// Color modes for Config.
const (
	ColorAuto   ColorMode = iota // color if writing to a terminal
	ColorAlways                  // always color
	ColorNever                   // never color
)

// Config configures console output.
type Config struct {
	Color ColorMode
	// MaxItemWidth truncates the rendering of single items; 0 means 16.
	MaxItemWidth int
	// Dead is the symbol printed for dead slots; empty means "·".
	Dead string
}

func (cfg Config) normalized() Config {
	if cfg.MaxItemWidth <= 0 {
		cfg.MaxItemWidth = 16
	}
	if cfg.Dead == "" {
		cfg.Dead = "·"
	}
	return cfg
}

// useColor decides on coloring for writer w.
func (cfg Config) useColor(w io.Writer) bool {
	switch cfg.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Console writes a slot map of view to w, e.g.
//
//	len=2 cap=4 [a b · ·]
//
// Live slots are printed green and dead slots faint if coloring is enabled.
func Console[T any](w io.Writer, view Slotted[T], cfg Config) error {
	cfg = cfg.normalized()
	live := color.New(color.FgGreen)
	dead := color.New(color.Faint)
	if cfg.useColor(w) {
		live.EnableColor()
		dead.EnableColor()
	} else {
		live.DisableColor()
		dead.DisableColor()
	}
	items := view.Items()
	if len(items) != view.Len() {
		tracer().Errorf("dump: view reports %d items for length %d", len(items), view.Len())
	}
	var b strings.Builder
	fmt.Fprintf(&b, "len=%d cap=%d [", view.Len(), view.Cap())
	for i := 0; i < view.Cap(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i < len(items) {
			b.WriteString(live.Sprint(truncate(fmt.Sprint(items[i]), cfg.MaxItemWidth)))
		} else {
			b.WriteString(dead.Sprint(cfg.Dead))
		}
	}
	b.WriteString("]\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
