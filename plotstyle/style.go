// SPDX-License-Identifier: MIT

package plotstyle

import (
	"fmt"
	"regexp"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Style is a complete plot look. Sizes are in points.
type Style struct {
	// FontFamily is the generic family: sans-serif, serif or monospace.
	FontFamily string `yaml:"font_family"`
	// Typeface is the preferred face within the family.
	Typeface string `yaml:"typeface"`
	// FontSize is the base size in points. A zero TitleSize, AxesLabelSize,
	// TickLabelSize or LegendSize inherits it.
	FontSize      float64  `yaml:"font_size"`
	TitleSize     float64  `yaml:"title_size"`
	AxesLabelSize float64  `yaml:"axes_label_size"`
	TickLabelSize float64  `yaml:"tick_label_size"`
	LegendSize    float64  `yaml:"legend_size"`
	UseTeX        bool     `yaml:"use_tex"`
	LatexPreamble []string `yaml:"latex_preamble"`
	MarkerSize    float64  `yaml:"marker_size"`
}

const defaultFontSize = 20

// Default returns the notebook style.
func Default() Style {
	return Style{
		FontFamily:    "sans-serif",
		Typeface:      "Helvetica",
		FontSize:      defaultFontSize,
		AxesLabelSize: defaultFontSize,
		UseTeX:        true,
		LatexPreamble: []string{`\usepackage{amsmath}`, `\usepackage{amsfonts}`},
		MarkerSize:    10,
	}
}

var (
	// generic family -> font variant of the bundled Liberation collection
	familyVariants = map[string]font.Variant{
		"sans-serif": "Sans",
		"sans":       "Sans",
		"serif":      "Serif",
		"monospace":  "Mono",
		"mono":       "Mono",
	}

	// Liberation fonts are metric-compatible with these faces.
	typefaceAliases = map[string]font.Typeface{
		"helvetica":       "Liberation",
		"arial":           "Liberation",
		"times":           "Liberation",
		"times new roman": "Liberation",
		"courier":         "Liberation",
		"courier new":     "Liberation",
		"liberation":      "Liberation",
	}

	usePackage = regexp.MustCompile(`^\\usepackage(\[[^\]]*\])?\{[A-Za-z0-9_,-]+\}$`)
)

// Validate reports whether the style can be applied.
// Errors: ErrInvalidStyle naming the first offending field.
func (s Style) Validate() error {
	if _, ok := familyVariants[strings.ToLower(s.FontFamily)]; !ok {
		return styleErrorf("Validate", fmt.Errorf("font_family %q: %w", s.FontFamily, ErrInvalidStyle))
	}
	if !(s.FontSize > 0) {
		return styleErrorf("Validate", fmt.Errorf("font_size = %g: %w", s.FontSize, ErrInvalidStyle))
	}
	if !(s.MarkerSize > 0) {
		return styleErrorf("Validate", fmt.Errorf("marker_size = %g: %w", s.MarkerSize, ErrInvalidStyle))
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"title_size", s.TitleSize},
		{"axes_label_size", s.AxesLabelSize},
		{"tick_label_size", s.TickLabelSize},
		{"legend_size", s.LegendSize},
	} {
		if !(f.v >= 0) {
			return styleErrorf("Validate", fmt.Errorf("%s = %g: %w", f.name, f.v, ErrInvalidStyle))
		}
	}
	for _, line := range s.LatexPreamble {
		if !usePackage.MatchString(strings.TrimSpace(line)) {
			return styleErrorf("Validate", fmt.Errorf("latex_preamble %q: %w", line, ErrInvalidStyle))
		}
	}

	return nil
}

// Font returns the font descriptor of the style at the given size.
// Helvetica, Arial, Times and Courier resolve to the metric-compatible
// Liberation faces bundled with gonum/plot; other names are looked up as is
// and fall back to the default face when missing.
func (s Style) Font(size float64) font.Font {
	tf, ok := typefaceAliases[strings.ToLower(s.Typeface)]
	if !ok {
		tf = font.Typeface(s.Typeface)
	}

	return font.Font{
		Typeface: tf,
		Variant:  familyVariants[strings.ToLower(s.FontFamily)],
		Size:     vg.Points(size),
	}
}

// TextHandler returns the LaTeX handler when UseTeX is set and the plain one
// otherwise. The bundled LaTeX handler renders math mode itself; the preamble
// is carried for documents that embed the figure.
func (s Style) TextHandler() text.Handler {
	if s.UseTeX {
		return text.Latex{Fonts: font.DefaultCache}
	}

	return text.Plain{Fonts: font.DefaultCache}
}

// Apply writes the style into p: title, axis labels, tick labels and legend.
// Errors: ErrNilPlot, ErrInvalidStyle.
func (s Style) Apply(p *plot.Plot) error {
	if p == nil {
		return styleErrorf("Apply", ErrNilPlot)
	}
	if err := s.Validate(); err != nil {
		return styleErrorf("Apply", err)
	}
	h := s.TextHandler()
	p.TextHandler = h

	restyle(&p.Title.TextStyle, s.Font(s.size(s.TitleSize)), h)
	restyle(&p.Legend.TextStyle, s.Font(s.size(s.LegendSize)), h)
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		restyle(&ax.Label.TextStyle, s.Font(s.size(s.AxesLabelSize)), h)
		restyle(&ax.Tick.Label, s.Font(s.size(s.TickLabelSize)), h)
	}

	return nil
}

// size resolves an element size, 0 meaning FontSize.
func (s Style) size(v float64) float64 {
	if v == 0 {
		return s.FontSize
	}

	return v
}

func restyle(ts *text.Style, f font.Font, h text.Handler) {
	ts.Font = f
	ts.Handler = h
}

// NewPlot returns a fresh plot with the style applied.
func (s Style) NewPlot() (*plot.Plot, error) {
	if err := s.Validate(); err != nil {
		return nil, styleErrorf("NewPlot", err)
	}
	p := plot.New()
	if err := s.Apply(p); err != nil {
		return nil, styleErrorf("NewPlot", err)
	}

	return p, nil
}

// ApplyGlyph sets the marker size: MarkerSize is a diameter in points.
func (s Style) ApplyGlyph(g *draw.GlyphStyle) {
	if g == nil {
		return
	}
	g.Radius = vg.Points(s.MarkerSize) / 2
}

// Glyph returns plotter.DefaultGlyphStyle resized to the style.
// The package-level default is copied, never modified.
func (s Style) Glyph() draw.GlyphStyle {
	g := plotter.DefaultGlyphStyle
	s.ApplyGlyph(&g)

	return g
}
