// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Driver capability data

package papp

import (
	"github.com/OpenPrinting/go-mfp/proto/ipp"
	"github.com/OpenPrinting/goipp"
)

// IntRange is an inclusive [Lower, Upper] integer range, used for
// driver-declared ranges such as darkness and speed.
type IntRange struct {
	Lower, Upper int
}

// Contains reports whether v falls within the range, inclusive.
func (r IntRange) Contains(v int) bool {
	return v >= r.Lower && v <= r.Upper
}

// StatusCallback refreshes a printer's live status (supplies, media,
// state-reasons) from the physical device. It is invoked by the core
// at most once per second, and only while the printer is idle, with
// no printer lock held.
type StatusCallback func(p *Printer)

// IdentifyCallback asks the device to physically identify itself
// (flash a light, beep, display a message). It is invoked with no
// lock held.
type IdentifyCallback func(p *Printer, actions []string, message string)

// DriverData holds a printer's static and semi-static capabilities:
// the supported/default values for each job-template dimension. It is
// supplied at printer creation and is mostly read-only afterward; the
// handful of fields Set-Printer-Attributes is allowed to touch are
// documented on settableAttributes.
type DriverData struct {
	Name         string // printer-make-and-model
	VendorID     string

	ColorSupported ipp.ColorModeBitset
	ColorDefault   ipp.ColorModeBitset // single bit: the active mode

	ContentOptimizeSupported []string
	ContentOptimizeDefault   string

	OrientationSupported []int
	OrientationDefault   int

	QualitySupported []int
	QualityDefault   int

	ScalingSupported []string
	ScalingDefault   string

	SidesSupported ipp.SidesBitset
	SidesDefault   ipp.SidesBitset // single bit

	Sources []string // input tray names, e.g. "main", "manual", "by-pass-tray"
	Bins    []string // output bin names

	Resolutions       []goipp.Resolution
	ResolutionDefault goipp.Resolution

	MediaSupported []ipp.KwMedia
	MediaSizeSupported []ipp.MediaSize // (x-dimension, y-dimension) pairs accepted for custom media-col

	DarknessSupported bool
	DarknessRange     IntRange

	SpeedSupported bool
	SpeedRange     IntRange

	IdentifySupported ipp.IdentifyActionsBitset
	IdentifyDefault   ipp.IdentifyActionsBitset

	LabelModeSupported []string
	LabelModeDefault   string
	LabelTearOffSupported bool
	LabelTearOffDefault   int

	BorderlessSupported bool

	// VendorAttrs lists the names a vendor `<name>-default` attribute
	// is recognized under (Set-Printer-Attributes allowlist); values
	// round-trip opaquely, see Printer.vendorAttrs.
	VendorAttrs []string

	StatusCallback   StatusCallback
	IdentifyCallback IdentifyCallback
}

// Supply is one consumable record (ink, toner, waste tank, ...).
type Supply struct {
	Description string
	Color       string // colorant keyword, e.g. "cyan", "black", "multi-color"
	Type         string // "toner", "ink", "wasteToner", ...
	Level        int    // 0-100; -1 = unknown, -2 = unavailable
	IsConsumed   bool   // true for waste receptacles (lower is worse)
}

// ReadyMediaSlot describes the medium currently loaded in one input
// source; Empty is true when the source has no medium loaded.
type ReadyMediaSlot struct {
	Empty bool
	Media ipp.MediaCol
}
