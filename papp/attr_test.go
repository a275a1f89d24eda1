// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Test for attribute construction

package papp

import (
	"testing"

	"github.com/OpenPrinting/goipp"
)

func TestMakeAttrSingleValue(t *testing.T) {
	attr := makeAttr("copies", goipp.TagInteger, goipp.Integer(3))

	if attr.Name != "copies" {
		t.Errorf("expected name %q, got %q", "copies", attr.Name)
	}
	if len(attr.Values) != 1 {
		t.Fatalf("expected 1 value, got %d", len(attr.Values))
	}
	if attr.Values[0].T != goipp.TagInteger {
		t.Errorf("expected tag %v, got %v", goipp.TagInteger, attr.Values[0].T)
	}
	if v, ok := attr.Values[0].V.(goipp.Integer); !ok || int(v) != 3 {
		t.Errorf("expected value 3, got %#v", attr.Values[0].V)
	}
}

func TestFailureSetMultiValue(t *testing.T) {
	fails := &failureSet{}
	fails.add("finishings-supported", goipp.TagEnum,
		goipp.Integer(3), goipp.Integer(4), goipp.Integer(5))

	if fails.empty() {
		t.Fatalf("expected a non-empty failure set")
	}
	if len(fails.items) != 1 {
		t.Fatalf("expected 1 recorded attribute, got %d", len(fails.items))
	}

	attr := fails.items[0].attr
	if len(attr.Values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(attr.Values))
	}
	for i, want := range []int{3, 4, 5} {
		if v, ok := attr.Values[i].V.(goipp.Integer); !ok || int(v) != want {
			t.Errorf("value %d: expected %d, got %#v", i, want, attr.Values[i].V)
		}
	}
}

func TestFailureSetNoValue(t *testing.T) {
	fails := &failureSet{}
	fails.add("job-hold-until", goipp.TagKeyword)

	if len(fails.items) != 1 {
		t.Fatalf("expected 1 recorded attribute, got %d", len(fails.items))
	}
	if fails.items[0].attr.Values[0].T != goipp.TagUnsupportedValue {
		t.Errorf("expected out-of-band tag %v, got %v",
			goipp.TagUnsupportedValue, fails.items[0].attr.Values[0].T)
	}
}

func TestFailureSetApply(t *testing.T) {
	fails := &failureSet{}
	fails.add("copies", goipp.TagInteger, goipp.Integer(0))

	resp := newResponse(statusOk, 1)
	fails.apply(resp)

	group := resp.Unsupported()
	if len(*group) != 1 {
		t.Fatalf("expected 1 attribute in unsupported group, got %d", len(*group))
	}
	if (*group)[0].Name != "copies" {
		t.Errorf("expected %q, got %q", "copies", (*group)[0].Name)
	}
}
