// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Attribute construction helper

package papp

import "github.com/OpenPrinting/goipp"

// makeAttr builds a single-valued attribute. goipp does not export a
// constructor of its own (Attribute is a plain struct), so the core
// centralizes the one-liner here rather than repeating the literal at
// every call site.
func makeAttr(name string, tag goipp.Tag, v goipp.Value) goipp.Attribute {
	return goipp.Attribute{Name: name, Values: goipp.Values{{T: tag, V: v}}}
}
