// SPDX-License-Identifier: MIT

package plotstyle

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// verbKind classifies the single conversion of a tick format.
type verbKind int

const (
	verbInt   verbKind = iota + 1 // %d, %i: value truncated toward zero
	verbFloat                     // %e %E %f %F %g %G
)

// tickFormat is a parsed printf-style format ready for fmt.Sprintf.
type tickFormat struct {
	layout string
	kind   verbKind
}

// parseFormat accepts printf formats with exactly one numeric conversion,
// optional flags (-+ #0), width and precision, and any literal text ("%%"
// included). %i is rewritten to %d.
func parseFormat(format string) (tickFormat, error) {
	out := []byte(format)
	var tf tickFormat
	verbs := 0
	for i := 0; i < len(out); i++ {
		if out[i] != '%' {
			continue
		}
		j := i + 1
		if j < len(out) && out[j] == '%' {
			i = j
			continue
		}
		for j < len(out) && isFlag(out[j]) {
			j++
		}
		for j < len(out) && isDigit(out[j]) {
			j++
		}
		if j < len(out) && out[j] == '.' {
			j++
			for j < len(out) && isDigit(out[j]) {
				j++
			}
		}
		if j >= len(out) {
			return tickFormat{}, fmt.Errorf("%q: dangling %%: %w", format, ErrBadFormat)
		}
		switch out[j] {
		case 'd':
			tf.kind = verbInt
		case 'i':
			out[j] = 'd'
			tf.kind = verbInt
		case 'e', 'E', 'f', 'F', 'g', 'G':
			tf.kind = verbFloat
		default:
			return tickFormat{}, fmt.Errorf("%q: verb %%%c: %w", format, out[j], ErrBadFormat)
		}
		verbs++
		i = j
	}
	if verbs != 1 {
		return tickFormat{}, fmt.Errorf("%q: %d numeric verbs: %w", format, verbs, ErrBadFormat)
	}
	tf.layout = string(out)

	return tf, nil
}

func isFlag(c byte) bool  { return c == '-' || c == '+' || c == ' ' || c == '#' || c == '0' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (tf tickFormat) format(v float64) string {
	if tf.kind == verbInt {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Sprint(v)
		}
		return fmt.Sprintf(tf.layout, int64(math.Trunc(v)))
	}

	return fmt.Sprintf(tf.layout, v)
}

// FormatTick renders one tick value with a printf-style format.
// FormatTick("%d", 2.7) is "2"; FormatTick("%.2f", 2) is "2.00".
//
// Errors: ErrBadFormat.
func FormatTick(format string, v float64) (string, error) {
	tf, err := parseFormat(format)
	if err != nil {
		return "", styleErrorf("FormatTick", err)
	}

	return tf.format(v), nil
}

// TickFormatter relabels the major ticks of the wrapped Ticker with Format.
// Tick positions and minor ticks (empty labels) are left as they are. A nil
// Ticker means plot.DefaultTicks.
type TickFormatter struct {
	Ticker plot.Ticker
	Format string
}

var _ plot.Ticker = TickFormatter{}

// NewTickFormatter validates format and wraps t.
// Errors: ErrBadFormat.
func NewTickFormatter(t plot.Ticker, format string) (TickFormatter, error) {
	if _, err := parseFormat(format); err != nil {
		return TickFormatter{}, styleErrorf("NewTickFormatter", err)
	}

	return TickFormatter{Ticker: t, Format: format}, nil
}

// Ticks implements plot.Ticker. An invalid Format leaves labels unchanged.
func (f TickFormatter) Ticks(min, max float64) []plot.Tick {
	var base plot.Ticker = plot.DefaultTicks{}
	if f.Ticker != nil {
		base = f.Ticker
	}
	ticks := base.Ticks(min, max)
	tf, err := parseFormat(f.Format)
	if err != nil {
		return ticks
	}
	for i := range ticks {
		if ticks[i].Label == "" {
			continue
		}
		ticks[i].Label = tf.format(ticks[i].Value)
	}

	return ticks
}

// FormatTicks installs printf-style tick formatters on both axes of p. An
// empty format leaves that axis alone. Both formats are validated before p is
// touched.
//
// Errors: ErrNilPlot, ErrBadFormat.
func FormatTicks(p *plot.Plot, xfmt, yfmt string) error {
	if p == nil {
		return styleErrorf("FormatTicks", ErrNilPlot)
	}
	for _, f := range []string{xfmt, yfmt} {
		if f == "" {
			continue
		}
		if _, err := parseFormat(f); err != nil {
			return styleErrorf("FormatTicks", err)
		}
	}
	if xfmt != "" {
		p.X.Tick.Marker = TickFormatter{Ticker: p.X.Tick.Marker, Format: xfmt}
	}
	if yfmt != "" {
		p.Y.Tick.Marker = TickFormatter{Ticker: p.Y.Tick.Marker, Format: yfmt}
	}

	return nil
}
