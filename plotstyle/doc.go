// SPDX-License-Identifier: MIT

// Package plotstyle holds an explicit, reusable plot style for
// gonum.org/v1/plot figures and printf-style tick label formatting.
//
// Nothing here touches process-wide state: a Style is a value, and Apply
// writes it into one *plot.Plot. Two goroutines may style two plots with two
// different styles at the same time.
//
// Default mirrors the notebook look: a sans-serif Helvetica-like face at 20pt
// for titles, axis labels, tick labels and legends, LaTeX text rendering with
// the amsmath/amsfonts preamble, and 10pt markers.
//
// Usage:
//
//	p, err := plotstyle.Default().NewPlot()
//	...
//	err = plotstyle.FormatTicks(p, "%d", "%.2f")
package plotstyle
