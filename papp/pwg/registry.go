// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// PWG self-describing media-size registry (PWG5101.1)

// Package pwg implements lookup of the PWG "self-describing" media
// size names (e.g. "na_letter_8.5x11in", "iso_a4_210x297mm") used
// throughout IPP Everywhere's media attributes.
package pwg

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is one registry entry: a media name and its dimensions in
// hundredths of millimeters, as carried in IPP's "media-size"
// collection.
type Size struct {
	Name          string
	WidthHundredMM  int
	LengthHundredMM int
}

// table holds the common sizes an IPP Everywhere printer is expected
// to know by name. It is not the complete PWG5101.1 registry; entries
// are added as drivers need them.
var table = map[string]Size{}

func reg(name string, wMils, hMils int) {
	// PWG names encode dimensions in inches (e.g. "8.5x11in") or
	// millimeters (e.g. "210x297mm"); the registry stores the
	// authoritative value directly in hundredths of a millimeter
	// rather than re-deriving it from the name on every lookup.
	table[name] = Size{Name: name, WidthHundredMM: wMils, LengthHundredMM: hMils}
}

func init() {
	reg("na_letter_8.5x11in", 21590, 27940)
	reg("na_legal_8.5x14in", 21590, 35560)
	reg("na_index-3x5_3x5in", 7620, 12700)
	reg("na_number-10_4.125x9.5in", 10477, 24130)
	reg("na_5x7_5x7in", 12700, 17780)
	reg("iso_a3_297x420mm", 29700, 42000)
	reg("iso_a4_210x297mm", 21000, 29700)
	reg("iso_a5_148x210mm", 14800, 21000)
	reg("iso_a6_105x148mm", 10500, 14800)
	reg("jis_b5_182x257mm", 18200, 25700)
	reg("om_card-80x130mm_80x130mm", 8000, 13000)
}

// Lookup returns the registry entry for name, and whether it was
// found.
func Lookup(name string) (Size, bool) {
	s, ok := table[name]
	return s, ok
}

// ParseCustom parses a PWG "custom_<name>_<W>x<H>in" or "..._mm" name
// into a Size, for media not present in the static table. It returns
// ok=false if name doesn't match the custom-media naming convention.
func ParseCustom(name string) (Size, bool) {
	if !strings.HasPrefix(name, "custom_") {
		return Size{}, false
	}

	rest := strings.TrimPrefix(name, "custom_")
	idx := strings.LastIndex(rest, "_")
	if idx < 0 {
		return Size{}, false
	}
	dims := rest[idx+1:]

	var unit string
	switch {
	case strings.HasSuffix(dims, "in"):
		unit = "in"
	case strings.HasSuffix(dims, "mm"):
		unit = "mm"
	default:
		return Size{}, false
	}
	dims = strings.TrimSuffix(dims, unit)

	parts := strings.SplitN(dims, "x", 2)
	if len(parts) != 2 {
		return Size{}, false
	}
	w, err1 := strconv.ParseFloat(parts[0], 64)
	h, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil {
		return Size{}, false
	}

	scale := 100.0 // hundredths of a millimeter per millimeter
	if unit == "in" {
		scale = 2540.0 // hundredths of a millimeter per inch
	}

	return Size{
		Name:            name,
		WidthHundredMM:  int(w * scale),
		LengthHundredMM: int(h * scale),
	}, true
}

// String implements fmt.Stringer for debugging/logging.
func (s Size) String() string {
	return fmt.Sprintf("%s (%dx%d)", s.Name, s.WidthHundredMM, s.LengthHundredMM)
}
