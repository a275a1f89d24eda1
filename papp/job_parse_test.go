// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Test for job-template attribute extraction

package papp

import (
	"testing"

	"github.com/OpenPrinting/go-mfp/proto/ipp"
	"github.com/OpenPrinting/goipp"
)

func TestParseJobAttributesScalars(t *testing.T) {
	group := goipp.Attributes{
		{Name: "copies", Values: goipp.Values{{T: goipp.TagInteger, V: goipp.Integer(3)}}},
		{Name: "job-name", Values: goipp.Values{{T: goipp.TagName, V: goipp.String("report.pdf")}}},
		{Name: "sides", Values: goipp.Values{{T: goipp.TagKeyword, V: goipp.String("two-sided-long-edge")}}},
		{Name: "ipp-attribute-fidelity", Values: goipp.Values{{T: goipp.TagBoolean, V: goipp.Boolean(true)}}},
	}

	rq := parseJobAttributes(group)

	if c, set := rq.Copies.Get(); !set || c != 3 {
		t.Errorf("Copies: expected (3, true), got (%d, %v)", c, set)
	}
	if n, set := rq.JobName.Get(); !set || n != "report.pdf" {
		t.Errorf("JobName: expected (\"report.pdf\", true), got (%q, %v)", n, set)
	}
	if s, set := rq.Sides.Get(); !set || s != ipp.KwSides("two-sided-long-edge") {
		t.Errorf("Sides: expected two-sided-long-edge, got (%v, %v)", s, set)
	}
	if f, set := rq.IppAttributeFidelity.Get(); !set || !f {
		t.Errorf("IppAttributeFidelity: expected (true, true), got (%v, %v)", f, set)
	}
}

func TestParseJobAttributesPageRanges(t *testing.T) {
	group := goipp.Attributes{
		{Name: "page-ranges", Values: goipp.Values{
			{T: goipp.TagRange, V: goipp.Range{Lower: 1, Upper: 3}},
			{T: goipp.TagInteger, V: goipp.Integer(7)},
		}},
	}

	rq := parseJobAttributes(group)

	if len(rq.PageRanges) != 2 {
		t.Fatalf("expected 2 page ranges, got %d", len(rq.PageRanges))
	}
	if rq.PageRanges[0] != (goipp.Range{Lower: 1, Upper: 3}) {
		t.Errorf("range 0: expected {1 3}, got %+v", rq.PageRanges[0])
	}
	if rq.PageRanges[1] != (goipp.Range{Lower: 7, Upper: 7}) {
		t.Errorf("range 1: expected {7 7} (bare integer widened), got %+v", rq.PageRanges[1])
	}
}

func TestParseJobAttributesMediaCol(t *testing.T) {
	sizeCol := goipp.Attributes{
		{Name: "x-dimension", Values: goipp.Values{{T: goipp.TagInteger, V: goipp.Integer(21000)}}},
		{Name: "y-dimension", Values: goipp.Values{{T: goipp.TagInteger, V: goipp.Integer(29700)}}},
	}
	mediaCol := goipp.Attributes{
		{Name: "media-size-name", Values: goipp.Values{{T: goipp.TagKeyword, V: goipp.String("iso_a4_210x297mm")}}},
		{Name: "media-size", Values: goipp.Values{{T: goipp.TagBeginCollection, V: goipp.Collection(sizeCol)}}},
		{Name: "media-source", Values: goipp.Values{{T: goipp.TagKeyword, V: goipp.String("main")}}},
	}
	group := goipp.Attributes{
		{Name: "media-col", Values: goipp.Values{{T: goipp.TagBeginCollection, V: goipp.Collection(mediaCol)}}},
	}

	rq := parseJobAttributes(group)

	col, set := rq.MediaCol.Get()
	if !set {
		t.Fatalf("expected MediaCol to be set")
	}
	if col.MediaSizeName != "iso_a4_210x297mm" {
		t.Errorf("expected media-size-name iso_a4_210x297mm, got %q", col.MediaSizeName)
	}
	if col.MediaSource != "main" {
		t.Errorf("expected media-source main, got %q", col.MediaSource)
	}
	if col.MediaSize.XDimension != (goipp.Range{Lower: 21000, Upper: 21000}) {
		t.Errorf("expected x-dimension {21000 21000}, got %+v", col.MediaSize.XDimension)
	}
	if col.MediaSize.YDimension != (goipp.Range{Lower: 29700, Upper: 29700}) {
		t.Errorf("expected y-dimension {29700 29700}, got %+v", col.MediaSize.YDimension)
	}
}

func TestParseJobAttributesAbsent(t *testing.T) {
	rq := parseJobAttributes(goipp.Attributes{})

	if _, set := rq.Copies.Get(); set {
		t.Errorf("expected Copies unset on an empty group")
	}
	if _, set := rq.Media.Get(); set {
		t.Errorf("expected Media unset on an empty group")
	}
}
