// Package render isolates chart rendering from the statistical
// computation path.
//
// Checks that can visualize their input accept a Renderer; the default is
// Nop, so no check ever draws unless a renderer is injected explicitly.
// PlotRenderer writes PNG files using gonum/plot.
package render
