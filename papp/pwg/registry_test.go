// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Test for the PWG media-size registry

package pwg

import "testing"

func TestLookupKnown(t *testing.T) {
	size, ok := Lookup("iso_a4_210x297mm")
	if !ok {
		t.Fatalf("expected iso_a4_210x297mm to be found")
	}
	if size.WidthHundredMM != 21000 || size.LengthHundredMM != 29700 {
		t.Errorf("expected 21000x29700, got %dx%d", size.WidthHundredMM, size.LengthHundredMM)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("does_not_exist"); ok {
		t.Fatalf("expected an unregistered name to miss")
	}
}

func TestParseCustomInches(t *testing.T) {
	size, ok := ParseCustom("custom_mysize_4x6in")
	if !ok {
		t.Fatalf("expected custom_mysize_4x6in to parse")
	}
	if size.WidthHundredMM != 4*2540 || size.LengthHundredMM != 6*2540 {
		t.Errorf("expected %dx%d, got %dx%d",
			4*2540, 6*2540, size.WidthHundredMM, size.LengthHundredMM)
	}
}

func TestParseCustomMillimeters(t *testing.T) {
	size, ok := ParseCustom("custom_label_50x25mm")
	if !ok {
		t.Fatalf("expected custom_label_50x25mm to parse")
	}
	if size.WidthHundredMM != 5000 || size.LengthHundredMM != 2500 {
		t.Errorf("expected 5000x2500, got %dx%d", size.WidthHundredMM, size.LengthHundredMM)
	}
}

func TestParseCustomRejectsNonCustom(t *testing.T) {
	if _, ok := ParseCustom("na_letter_8.5x11in"); ok {
		t.Errorf("expected a non-custom name to be rejected")
	}
}

func TestParseCustomRejectsMalformed(t *testing.T) {
	cases := []string{
		"custom_nodimensions",
		"custom_bad_4x6cm",
		"custom_bad_axbin",
	}
	for _, name := range cases {
		if _, ok := ParseCustom(name); ok {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}
