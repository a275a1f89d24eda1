// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Test for job-template attribute validation

package papp

import (
	"testing"

	"github.com/OpenPrinting/go-mfp/proto/ipp"
	"github.com/OpenPrinting/go-mfp/util/optional"
	"github.com/OpenPrinting/goipp"
)

func testDriverPrinter() *Printer {
	driver := DriverData{
		Name:           "Test Printer",
		ColorSupported: ipp.ColorModeColor | ipp.ColorModeMonochrome,
		SidesSupported: ipp.SidesBitOneSided | ipp.SidesBitTwoSidedLongEdge,
		Sources:        []string{"main"},
		MediaSupported: []ipp.KwMedia{"na_letter_8.5x11in"},
	}
	return NewPrinter(1, "Test Printer", "uuid-1", "/ipp/print", driver)
}

func TestValidateJobAttributesAcceptsSupported(t *testing.T) {
	p := testDriverPrinter()
	rq := &ipp.JobAttributes{
		Copies:         optional.New(2),
		Media:          optional.New(ipp.KwMedia("na_letter_8.5x11in")),
		Sides:          optional.New(ipp.KwSides("one-sided")),
		PrintColorMode: optional.New("color"),
	}

	fails := &failureSet{}
	ok := ValidateJobAttributes(p, rq, fails)

	if !ok {
		t.Fatalf("expected acceptance, got failures: %+v", fails.items)
	}
	if !fails.empty() {
		t.Errorf("expected no recorded failures, got %d", len(fails.items))
	}
}

func TestValidateJobAttributesGathersAllFailures(t *testing.T) {
	p := testDriverPrinter()
	rq := &ipp.JobAttributes{
		Copies:         optional.New(0),                        // out of [1,999]
		Media:          optional.New(ipp.KwMedia("iso_a4_210x297mm")), // unsupported
		Sides:          optional.New(ipp.KwSides("two-sided-short-edge")), // unsupported
		PrintColorMode: optional.New("monochrome"),              // supported
	}

	fails := &failureSet{}
	ok := ValidateJobAttributes(p, rq, fails)

	if ok {
		t.Fatalf("expected rejection")
	}
	if len(fails.items) != 3 {
		t.Fatalf("expected 3 failures (copies, media, sides), got %d: %+v",
			len(fails.items), fails.items)
	}

	names := map[string]bool{}
	for _, it := range fails.items {
		names[it.attr.Name] = true
	}
	for _, want := range []string{"copies", "media", "sides"} {
		if !names[want] {
			t.Errorf("expected a failure for %q", want)
		}
	}
}

func TestValidateJobAttributesOrientationNoneAccepted(t *testing.T) {
	p := testDriverPrinter()
	rq := &ipp.JobAttributes{
		OrientationRequested: optional.New(ipp.OrientNone),
	}

	fails := &failureSet{}
	ok := ValidateJobAttributes(p, rq, fails)

	if !ok || !fails.empty() {
		t.Errorf("expected orientation-requested=NONE to be accepted, got ok=%v fails=%+v",
			ok, fails.items)
	}
}

func TestValidateJobAttributesPageRangesOrdering(t *testing.T) {
	p := testDriverPrinter()
	rq := &ipp.JobAttributes{
		PageRanges: []goipp.Range{{Lower: 5, Upper: 2}}, // invalid: upper < lower
	}

	fails := &failureSet{}
	ok := ValidateJobAttributes(p, rq, fails)

	if ok {
		t.Fatalf("expected rejection of an inverted page range")
	}
	if len(fails.items) != 1 || fails.items[0].attr.Name != "page-ranges" {
		t.Errorf("expected a single page-ranges failure, got %+v", fails.items)
	}
}
