// MFP - Miulti-Function Printers and scanners toolkit
// IPP - Internet Printing Protocol implementation
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Get-Printer-Attributes group names

package ipp

// Standard attribute group names accepted in the "requested-attributes"
// operation attribute of Get-Printer-Attributes (RFC8011 3.2.5.1).
const (
	// GetPrinterAttributesAll requests all printer attributes,
	// except the media-col-database.
	GetPrinterAttributesAll = "all"

	// GetPrinterAttributesJobTemplate requests the Job Template
	// Attributes.
	GetPrinterAttributesJobTemplate = "job-template"

	// GetPrinterAttributesPrinterDescription requests the
	// Printer Description Attributes.
	GetPrinterAttributesPrinterDescription = "printer-description"

	// GetPrinterAttributesMediaColDatabase requests the collection
	// of supported media types.
	//
	// The "media-col-database" is not returned unless explicitly
	// requested, even if "all" attributes are requested.
	GetPrinterAttributesMediaColDatabase = "media-col-database"
)
