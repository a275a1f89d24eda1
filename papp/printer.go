// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Printer state store

package papp

import (
	"sync"
	"time"

	"github.com/OpenPrinting/go-mfp/proto/ipp"
	"github.com/OpenPrinting/goipp"
)

// PrinterState is the IPP printer-state enum (RFC8011 4.4.11).
type PrinterState int

// PrinterState values.
const (
	PrinterStateIdle PrinterState = iota + 3
	PrinterStateProcessing
	PrinterStateStopped
)

// Printer is the root mutable entity of the core: one printer's
// identity, driver capabilities, ready media, supplies, state, and job
// indexes. All of Printer's mutable fields are guarded by its embedded
// [sync.RWMutex]; callers take RLock for projection (Get-Printer-Attributes,
// Get-Jobs) and Lock for mutation (Set-Printer-Attributes, Pause/Resume,
// job-index updates). No two printer locks are ever held simultaneously
// by the core, and the lock is never held across a driver callback.
type Printer struct {
	sync.RWMutex

	// Identity, immutable after creation.
	ID           int
	Name         string
	UUID         string
	ResourcePath string

	// Contact/location, settable via Set-Printer-Attributes.
	Contact            ipp.Contact
	Location           string
	GeoLocation        string // "geo:" URI, empty if unset
	Organization       string
	OrganizationalUnit string
	DNSSDName          string

	// Driver capabilities; Driver.* fields beyond the settable subset
	// are treated as read-only by the core.
	Driver DriverData

	// ReadyMedia is a fixed-capacity table, one slot per entry of
	// Driver.Sources, in the same order. Empty slots are always
	// contiguous at the tail.
	ReadyMedia []ReadyMediaSlot

	Supplies []Supply

	State        PrinterState
	StateReasons ipp.StateReasonsBitset
	IsStopped    bool // transient: pausing (true) vs already paused

	StartTime    time.Time
	ConfigTime   time.Time
	StateTime    time.Time
	StatusTime   time.Time // last driver status refresh

	activeJobs    []Job
	completedJobs []Job
	allJobs       []Job

	DeviceInUse   bool
	ProcessingJob Job

	// vendorAttrs stores `<name>-default` vendor attributes verbatim,
	// keyed by attribute name, for round-trip through
	// Set-/Get-Printer-Attributes. Never interpreted semantically.
	vendorAttrs map[string]goipp.Attribute
}
