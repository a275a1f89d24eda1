// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// IPP error taxonomy

package papp

import "github.com/OpenPrinting/goipp"

// unsupported records one attribute the core could not accept,
// carried into the response's "unsupported" group verbatim (RFC8011
// 3.1.6.1).
type unsupported struct {
	attr goipp.Attribute
}

// failureSet accumulates every attribute-level failure encountered
// while processing a request, so the response can report all of them
// at once instead of stopping at the first one.
type failureSet struct {
	items []unsupported
}

// add records name as failed, with the given tag and value(s).
func (f *failureSet) add(name string, tag goipp.Tag, values ...goipp.Value) {
	if len(values) == 0 {
		f.items = append(f.items, unsupported{
			attr: makeAttr(name, goipp.TagUnsupportedValue, goipp.Void{}),
		})
		return
	}

	attr := makeAttr(name, tag, values[0])
	for _, v := range values[1:] {
		attr.Values.Add(tag, v)
	}
	f.items = append(f.items, unsupported{attr: attr})
}

// addAttr records attr verbatim as failed (used when echoing back an
// attribute exactly as the client sent it, e.g. unrecognized
// Set-Printer-Attributes entries).
func (f *failureSet) addAttr(attr goipp.Attribute) {
	f.items = append(f.items, unsupported{attr: attr})
}

// empty reports whether no failures were recorded.
func (f *failureSet) empty() bool { return len(f.items) == 0 }

// apply copies every recorded failure into the response's
// "unsupported" attribute group.
func (f *failureSet) apply(resp *goipp.Message) {
	for _, u := range f.items {
		resp.Unsupported().Add(u.attr)
	}
}

// Status codes used throughout the dispatcher and handlers.
const (
	statusOk                      = goipp.StatusOk
	statusBadRequest              = goipp.StatusErrorBadRequest
	statusNotFound                = goipp.StatusErrorNotFound
	statusNotPossible             = goipp.StatusErrorNotPossible
	statusAttributesNotSupported  = goipp.StatusErrorAttributesOrValues
	statusNotAcceptingJobs        = goipp.StatusErrorNotAcceptingJobs
	statusBusy                    = goipp.StatusErrorBusy
	statusOperationNotSupported   = goipp.StatusErrorOperationNotSupported
	statusInternalError           = goipp.StatusErrorInternal
)
