// Package styles defines the brick color palette shared by every renderer.
//
// Cell values index [Palette] directly: 0 is the empty cell, and brick color
// c is drawn with Palette[c+1]. Each entry has a single-letter symbol used
// by the text format, a hex color for SVG and PNG output, and an ANSI 256
// color code for terminals.
package styles

import "strings"

// Color describes one palette entry.
type Color struct {
	Name   string
	Symbol string
	Hex    string
	ANSI   string
}

// Palette lists the empty cell followed by the ten brick colors.
var Palette = []Color{
	{Name: "empty", Symbol: ".", Hex: "#ece8df", ANSI: "237"},
	{Name: "red", Symbol: "R", Hex: "#c91a09", ANSI: "160"},
	{Name: "green", Symbol: "G", Hex: "#237841", ANSI: "28"},
	{Name: "blue", Symbol: "B", Hex: "#0055bf", ANSI: "25"},
	{Name: "cyan", Symbol: "C", Hex: "#36aebf", ANSI: "37"},
	{Name: "magenta", Symbol: "M", Hex: "#c870a0", ANSI: "169"},
	{Name: "yellow", Symbol: "Y", Hex: "#f2cd37", ANSI: "220"},
	{Name: "orange", Symbol: "O", Hex: "#fe8a18", ANSI: "208"},
	{Name: "purple", Symbol: "P", Hex: "#81007b", ANSI: "90"},
	{Name: "aqua", Symbol: "A", Hex: "#b3d7d1", ANSI: "152"},
	{Name: "black", Symbol: "K", Hex: "#1b2a34", ANSI: "235"},
}

// Cell returns the palette entry for a grid cell value. Unknown values map
// to the empty entry.
func Cell(v int) Color {
	if v < 0 || v >= len(Palette) {
		return Palette[0]
	}
	return Palette[v]
}

// Brick returns the palette entry for a brick color index.
func Brick(color int) Color {
	return Cell(color + 1)
}

// ParseSymbol returns the cell value for a text symbol. Matching is
// case-insensitive and '0' is accepted for empty.
func ParseSymbol(r rune) (int, bool) {
	if r == '0' {
		return 0, true
	}
	s := strings.ToUpper(string(r))
	for i, c := range Palette {
		if c.Symbol == s {
			return i, true
		}
	}
	return 0, false
}

// ParseName returns the brick color index for a color name.
func ParseName(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, c := range Palette[1:] {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}
