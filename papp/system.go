// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// System collaborator contract

package papp

import "github.com/OpenPrinting/goipp"

// Resource is one entry of the system's localized resource table,
// used while projecting printer-strings-uri and
// printer-strings-languages-supported.
type Resource struct {
	Language string // RFC5646 language tag, e.g. "en", "en-us"
	Path     string // URI path of the resource, relative to the printer
}

// System is the core's outbound contract to the surrounding Printer
// Application: shutdown state, authentication configuration, TLS
// policy, and the shared resource table. It is implemented by the
// Printer Manager collaborator (out of scope here) and is consulted,
// never mutated, by the core -- except for ConfigChanged, which is a
// one-way notification.
type System interface {
	// ShutdownPending reports whether the system is shutting down;
	// when true, job-creation operations fail not-accepting-jobs.
	ShutdownPending() bool

	// AuthServiceConfigured reports whether an authentication service
	// is configured, affecting the "basic" entries projected into
	// printer-xri-supported/uri-authentication-supported.
	AuthServiceConfigured() bool

	// TLSOnly reports whether the system serves ipps:// exclusively.
	TLSOnly() bool

	// TLSDisabled reports whether the system never serves ipps://.
	TLSDisabled() bool

	// ExportVersions adds any system-wide, cross-printer attributes
	// (e.g. "generated-natural-language-supported") to attrs. requested
	// is nil when the client asked for "all" attributes.
	ExportVersions(attrs *goipp.Attributes, requested map[string]bool)

	// ConfigChanged notifies the system that a printer's persistent
	// configuration changed (i.e. after a successful
	// Set-Printer-Attributes), so it can invoke its save-callback.
	ConfigChanged()

	// Resources returns the shared, system-wide localized resource
	// table, guarded by the system's own lock (acquired only after
	// any printer lock already held, per the core's lock-ordering
	// rule).
	Resources() []Resource
}
