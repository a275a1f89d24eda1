// MFP - Miulti-Function Printers and scanners toolkit
// IPP - Internet Printing Protocol implementation
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Printer Description Attributes

package ipp

// Contact represents the "printer-contact-col" collection (PWG5100.13),
// describing a single point of contact for the printer.
type Contact struct {
	ContactName     string `ipp:"?contact-name,name"`
	ContactEmail    string `ipp:"?contact-vcard,uri"`
	ContactTelephone string `ipp:"?contact-telephone-number,uri"`
}

// GeoLocation represents the "printer-geo-location" attribute, a "geo:"
// scheme URI carrying latitude/longitude (RFC5870).
type GeoLocation struct {
	Latitude  float64
	Longitude float64
}

// KwCompression represents the "compression"/"compression-supported"
// keyword vocabulary (RFC8011 5.4.14 / PWG IPP Everywhere).
type KwCompression string

// KwCompression values.
const (
	CompressionNone    KwCompression = "none"
	CompressionGzip    KwCompression = "gzip"
	CompressionDeflate KwCompression = "deflate"
)

// Well-known document-format MIME types.
const (
	DocumentFormatPDF       = "application/pdf"
	DocumentFormatJPEG      = "image/jpeg"
	DocumentFormatPWGRaster = "image/pwg-raster"
	DocumentFormatURF       = "image/urf"
	DocumentFormatOctet     = "application/octet-stream"
	DocumentFormatTextPlain = "text/plain"
)

// KwUriSecurity represents the "uri-security-supported" keyword
// vocabulary (RFC8011 5.4.3).
type KwUriSecurity string

// KwUriSecurity values.
const (
	UriSecurityNone KwUriSecurity = "none"
	UriSecurityTLS  KwUriSecurity = "tls"
)

// KwUriAuthentication represents the "uri-authentication-supported"
// keyword vocabulary (RFC8011 5.4.2).
type KwUriAuthentication string

// KwUriAuthentication values.
const (
	UriAuthenticationNone       KwUriAuthentication = "none"
	UriAuthenticationRequesting KwUriAuthentication = "requesting-user-name"
	UriAuthenticationBasic      KwUriAuthentication = "basic"
	UriAuthenticationCertificate KwUriAuthentication = "certificate"
)

// PrinterOrganizationAliasCanonical is the attribute name IPP Everywhere
// treats as authoritative; "printer-organization-unit" is accepted on
// input as a PAPPL-originated compatibility alias but is never the name
// used to project the value back (see DESIGN.md).
const PrinterOrganizationAliasCanonical = "printer-organizational-unit"

// PrinterOrganizationAlias is the accepted-on-input alias spelling.
const PrinterOrganizationAlias = "printer-organization-unit"
