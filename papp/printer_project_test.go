// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Test for the attribute projector

package papp

import (
	"testing"

	"github.com/OpenPrinting/go-mfp/proto/ipp"
	"github.com/OpenPrinting/goipp"
)

func findAttr(attrs goipp.Attributes, name string) (goipp.Attribute, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a, true
		}
	}
	return goipp.Attribute{}, false
}

func TestProjectAllAttributes(t *testing.T) {
	p := testDriverPrinter()
	sys := &stubSystem{}

	attrs := Project(p, nil, "", sys)

	if _, ok := findAttr(attrs, "printer-name"); !ok {
		t.Errorf("expected printer-name to be present when all attributes are requested")
	}
	if _, ok := findAttr(attrs, "copies-default"); !ok {
		t.Errorf("expected copies-default to be present when all attributes are requested")
	}
}

func TestProjectRequestedSingleAttribute(t *testing.T) {
	p := testDriverPrinter()
	sys := &stubSystem{}

	requested := map[string]bool{"printer-name": true}
	attrs := Project(p, requested, "", sys)

	if _, ok := findAttr(attrs, "printer-name"); !ok {
		t.Fatalf("expected printer-name to be present")
	}
	if _, ok := findAttr(attrs, "copies-default"); ok {
		t.Errorf("expected copies-default to be filtered out")
	}
}

func TestProjectRequestedGroup(t *testing.T) {
	p := testDriverPrinter()
	sys := &stubSystem{}

	requested := map[string]bool{ipp.GetPrinterAttributesJobTemplate: true}
	attrs := Project(p, requested, "", sys)

	if _, ok := findAttr(attrs, "copies-default"); !ok {
		t.Errorf("expected copies-default (job-template group) to be present")
	}
	if _, ok := findAttr(attrs, "printer-name"); ok {
		t.Errorf("expected printer-name (printer-description group) to be filtered out")
	}
}

func TestProjectCopiesSupportedNarrowsForPWGRaster(t *testing.T) {
	p := testDriverPrinter()
	sys := &stubSystem{}

	attrs := Project(p, nil, ipp.DocumentFormatPWGRaster, sys)

	attr, ok := findAttr(attrs, "copies-supported")
	if !ok {
		t.Fatalf("expected copies-supported to be present")
	}
	r, ok := attr.Values[0].V.(goipp.Range)
	if !ok {
		t.Fatalf("expected a goipp.Range value, got %#v", attr.Values[0].V)
	}
	if r.Lower != 1 || r.Upper != 1 {
		t.Errorf("expected {1 1} for a streaming raster document format, got %+v", r)
	}
}

func TestProjectCopiesSupportedDefaultsWide(t *testing.T) {
	p := testDriverPrinter()
	sys := &stubSystem{}

	attrs := Project(p, nil, ipp.DocumentFormatPDF, sys)

	attr, _ := findAttr(attrs, "copies-supported")
	r := attr.Values[0].V.(goipp.Range)
	if r.Lower != 1 || r.Upper != 999 {
		t.Errorf("expected {1 999} for a PDF document format, got %+v", r)
	}
}

func TestProjectStateReasonsNoneWhenIdle(t *testing.T) {
	p := testDriverPrinter()
	sys := &stubSystem{}

	attrs := Project(p, nil, "", sys)

	attr, ok := findAttr(attrs, "printer-state-reasons")
	if !ok {
		t.Fatalf("expected printer-state-reasons to be present")
	}
	if len(attr.Values) != 1 {
		t.Fatalf("expected a single reason, got %d", len(attr.Values))
	}
	if s, ok := attr.Values[0].V.(goipp.String); !ok || string(s) != "none" {
		t.Errorf("expected \"none\" for an idle printer with no reasons, got %#v", attr.Values[0].V)
	}
}

func TestProjectStateReasonsPaused(t *testing.T) {
	p := testDriverPrinter()
	p.State = PrinterStateStopped
	sys := &stubSystem{}

	attrs := Project(p, nil, "", sys)

	attr, _ := findAttr(attrs, "printer-state-reasons")
	found := false
	for _, v := range attr.Values {
		if s, ok := v.V.(goipp.String); ok && string(s) == "paused" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected \"paused\" among printer-state-reasons, got %+v", attr.Values)
	}
}
