// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Set-Printer-Attributes: two-phase validate/apply

package papp

import (
	"strings"
	"time"

	"github.com/OpenPrinting/go-mfp/papp/pwg"
	"github.com/OpenPrinting/go-mfp/proto/ipp"
	"github.com/OpenPrinting/goipp"
)

// pwgLookup resolves a media keyword to its dimensions, trying the
// static PWG registry first and falling back to the "custom_..."
// naming convention.
func pwgLookup(name string) (pwg.Size, bool) {
	if size, ok := pwg.Lookup(name); ok {
		return size, true
	}
	return pwg.ParseCustom(name)
}

// settableKind distinguishes how an accepted attribute gets applied.
type settableKind int

const (
	kindString settableKind = iota
	kindContact
	kindVendor
	kindMediaReady
)

// settableEntry describes one attribute Set-Printer-Attributes is
// allowed to accept: its expected value tag, maximum value count, and
// how to apply it.
type settableEntry struct {
	tag      goipp.Tag
	maxCount int
	kind     settableKind
}

// settableAttributes is the fixed allowlist table driving the
// preflight phase. Names not present here -- besides the Create-Printer
// tolerance list and `<vendor>-default` names -- are rejected as
// unsupported.
var settableAttributes = map[string]settableEntry{
	"printer-location":    {goipp.TagText, 1, kindString},
	"printer-geo-location": {goipp.TagURI, 1, kindString},
	"printer-organization": {goipp.TagText, 1, kindString},
	// Both spellings are accepted on input; only the canonical name
	// (printer-organizational-unit) is ever projected back, see
	// DESIGN.md "printer-organization-unit alias".
	"printer-organizational-unit": {goipp.TagText, 1, kindString},
	"printer-organization-unit":   {goipp.TagText, 1, kindString},
	"printer-dns-sd-name":         {goipp.TagName, 1, kindString},
	"media-ready":                 {goipp.TagKeyword, 0, kindMediaReady}, // 0 = unbounded
}

// createPrinterTolerated lists operation-time attributes that
// Create-Printer (handled by the Printer Manager, not this core)
// tolerates alongside a printer-group Set; the core's preflight must
// not reject them outright even though they are not in
// settableAttributes.
var createPrinterTolerated = map[string]bool{
	"printer-device-id":       true,
	"printer-name":            true,
	"smi2699-device-uri":      true,
	"smi2699-device-command":  true,
}

// PreflightSetAttributes validates every printer-group attribute in
// group against settableAttributes, the Create-Printer tolerance
// list, and the driver's vendor-attribute names. It returns the
// accumulated failures; if non-empty, the caller must not call
// ApplySetAttributes.
func PreflightSetAttributes(p *Printer, group goipp.Attributes) *failureSet {
	fails := &failureSet{}

	for _, attr := range group {
		if createPrinterTolerated[attr.Name] {
			continue
		}

		if entry, ok := settableAttributes[attr.Name]; ok {
			if entry.maxCount > 0 && len(attr.Values) > entry.maxCount {
				fails.addAttr(attr)
				continue
			}
			for _, v := range attr.Values {
				if v.T != entry.tag {
					fails.addAttr(attr)
					break
				}
			}
			continue
		}

		if name, ok := vendorDefaultName(attr.Name); ok {
			if !vendorNameDeclared(p, name) {
				fails.addAttr(attr)
			}
			// TODO(papp): the value-tag is not validated against the
			// driver's declared type for this vendor name -- there is
			// no per-vendor-attribute schema to check it against.
			continue
		}

		fails.addAttr(attr)
	}

	return fails
}

func vendorDefaultName(name string) (string, bool) {
	const suffix = "-default"
	if strings.HasSuffix(name, suffix) && len(name) > len(suffix) {
		return name[:len(name)-len(suffix)], true
	}
	return "", false
}

func vendorNameDeclared(p *Printer, name string) bool {
	for _, v := range p.Driver.VendorAttrs {
		if v == name {
			return true
		}
	}
	return false
}

// ApplySetAttributes applies every attribute of group to p's state.
// The caller must hold p's write lock and must have already run
// PreflightSetAttributes successfully (empty failureSet). On return,
// p.ConfigTime is bumped and sys.ConfigChanged is signaled.
func ApplySetAttributes(p *Printer, group goipp.Attributes, sys System) {
	for _, attr := range group {
		if createPrinterTolerated[attr.Name] {
			continue
		}

		switch attr.Name {
		case "printer-location":
			p.Location = stringValue(attr)
		case "printer-geo-location":
			p.GeoLocation = stringValue(attr)
		case "printer-organization":
			p.Organization = stringValue(attr)
		case "printer-organization-unit", "printer-organizational-unit":
			p.OrganizationalUnit = stringValue(attr)
		case "printer-dns-sd-name":
			p.DNSSDName = stringValue(attr)
		case "media-ready":
			applyMediaReady(p, attr)
		default:
			if name, ok := vendorDefaultName(attr.Name); ok && vendorNameDeclared(p, name) {
				p.vendorAttrs[attr.Name] = attr
			}
		}
	}

	p.ConfigTime = time.Now()
	sys.ConfigChanged()
}

func stringValue(attr goipp.Attribute) string {
	if len(attr.Values) == 0 {
		return ""
	}
	if s, ok := attr.Values[0].V.(goipp.String); ok {
		return string(s)
	}
	return ""
}

// applyMediaReady resolves each keyword via the PWG size registry and
// clears trailing slots to empty.
func applyMediaReady(p *Printer, attr goipp.Attribute) {
	for i := range p.ReadyMedia {
		p.ReadyMedia[i] = ReadyMediaSlot{Empty: true}
	}

	for i, v := range attr.Values {
		if i >= len(p.ReadyMedia) {
			break
		}
		s, ok := v.V.(goipp.String)
		if !ok {
			continue
		}

		size, found := pwgLookup(string(s))
		if !found {
			continue
		}

		p.ReadyMedia[i] = ReadyMediaSlot{
			Empty: false,
			Media: ipp.MediaCol{
				MediaSizeName: ipp.KwMedia(s),
				MediaKey:      ipp.KwMedia(s),
				MediaSize: ipp.MediaSize{
					XDimension: goipp.Range{Lower: size.WidthHundredMM, Upper: size.WidthHundredMM},
					YDimension: goipp.Range{Lower: size.LengthHundredMM, Upper: size.LengthHundredMM},
				},
				MediaSource: sourceForSlot(p, i),
			},
		}
	}
}

func sourceForSlot(p *Printer, i int) string {
	if i < len(p.Driver.Sources) {
		return p.Driver.Sources[i]
	}
	return ""
}
