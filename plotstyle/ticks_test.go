// SPDX-License-Identifier: MIT

package plotstyle_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	"github.com/katalvlaran/nbkit/plotstyle"
)

func TestFormatTick(t *testing.T) {
	cases := []struct {
		format string
		v      float64
		want   string
	}{
		{"%d", 2.7, "2"},
		{"%d", -2.7, "-2"},
		{"%d", 40, "40"},
		{"%i", 3, "3"},
		{"%03d", 7.9, "007"},
		{"%.2f", 2, "2.00"},
		{"%.2f", 3.14159, "3.14"},
		{"%5.1f%%", 12.34, " 12.3%"},
		{"$%d$", 4, "$4$"},
		{"%.1e", 1500, "1.5e+03"},
		{"%g", 0.5, "0.5"},
	}
	for _, tc := range cases {
		got, err := plotstyle.FormatTick(tc.format, tc.v)
		require.NoError(t, err, tc.format)
		require.Equal(t, tc.want, got, tc.format)
	}
}

func TestFormatTick_BadFormats(t *testing.T) {
	for _, f := range []string{"", "plain", "%s", "%d %d", "%", "%5", "%%"} {
		_, err := plotstyle.FormatTick(f, 1)
		require.ErrorIs(t, err, plotstyle.ErrBadFormat, f)
	}
}

func TestTickFormatter_KeepsPositionsAndMinorTicks(t *testing.T) {
	base := plot.ConstantTicks{
		{Value: 1.5, Label: "1.5"},
		{Value: 1.75},
		{Value: 2.25, Label: "2.25"},
	}
	tf, err := plotstyle.NewTickFormatter(base, "%d")
	require.NoError(t, err)

	got := tf.Ticks(0, 3)
	require.Equal(t, []plot.Tick{
		{Value: 1.5, Label: "1"},
		{Value: 1.75},
		{Value: 2.25, Label: "2"},
	}, got)

	_, err = plotstyle.NewTickFormatter(base, "%q")
	require.ErrorIs(t, err, plotstyle.ErrBadFormat)
}

// '%d' / '%.2f' on the default ticker render integers / two-decimal floats.
func TestFormatTicks(t *testing.T) {
	p := plot.New()
	require.NoError(t, plotstyle.FormatTicks(p, "%d", "%.2f"))

	intRe := regexp.MustCompile(`^-?\d+$`)
	floatRe := regexp.MustCompile(`^-?\d+\.\d{2}$`)

	labels := 0
	for _, tk := range p.X.Tick.Marker.Ticks(0, 100) {
		if tk.Label != "" {
			labels++
			require.Regexp(t, intRe, tk.Label)
		}
	}
	require.Positive(t, labels)

	labels = 0
	for _, tk := range p.Y.Tick.Marker.Ticks(0, 1) {
		if tk.Label != "" {
			labels++
			require.Regexp(t, floatRe, tk.Label)
		}
	}
	require.Positive(t, labels)
}

func TestFormatTicks_EmptyAndInvalid(t *testing.T) {
	p := plot.New()
	xBefore := p.X.Tick.Marker
	require.NoError(t, plotstyle.FormatTicks(p, "", "%.1f"))
	require.Equal(t, xBefore, p.X.Tick.Marker)
	require.IsType(t, plotstyle.TickFormatter{}, p.Y.Tick.Marker)

	q := plot.New()
	qx, qy := q.X.Tick.Marker, q.Y.Tick.Marker
	require.ErrorIs(t, plotstyle.FormatTicks(q, "%d", "%s"), plotstyle.ErrBadFormat)
	require.Equal(t, qx, q.X.Tick.Marker)
	require.Equal(t, qy, q.Y.Tick.Marker)

	require.ErrorIs(t, plotstyle.FormatTicks(nil, "%d", ""), plotstyle.ErrNilPlot)
}
