// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Attribute projector: media, supplies, URIs, resources, vendor

package papp

import (
	"fmt"

	"github.com/OpenPrinting/go-mfp/proto/ipp"
	"github.com/OpenPrinting/goipp"
)

func (pr *projection) projectMedia(p *Printer) {
	g := []string{groupJobTemplate}

	if len(p.Driver.MediaSupported) > 0 {
		values := make([]goipp.Value, len(p.Driver.MediaSupported))
		for i, m := range p.Driver.MediaSupported {
			values[i] = goipp.String(string(m))
		}
		pr.add("media-supported", goipp.TagKeyword, g, values...)
	}

	// media-ready: one keyword per non-empty slot.
	var mediaReady []goipp.Value
	for _, slot := range p.ReadyMedia {
		if !slot.Empty {
			mediaReady = append(mediaReady, goipp.String(string(slot.Media.MediaSizeName)))
		}
	}
	if len(mediaReady) > 0 {
		pr.add("media-ready", goipp.TagKeyword, g, mediaReady...)
	}

	// media-col-ready: one collection per non-empty slot, doubled
	// (bordered then borderless) iff the driver supports borderless
	// and the slot has a nonzero margin.
	var mediaColReady []goipp.Value
	for _, slot := range p.ReadyMedia {
		if slot.Empty {
			continue
		}
		mediaColReady = append(mediaColReady, mediaColValue(slot.Media))

		hasMargin := slot.Media.MediaTopMargin != 0 || slot.Media.MediaBottomMargin != 0 ||
			slot.Media.MediaLeftMargin != 0 || slot.Media.MediaRightMargin != 0
		if p.Driver.BorderlessSupported && hasMargin {
			borderless := slot.Media
			borderless.MediaTopMargin, borderless.MediaBottomMargin = 0, 0
			borderless.MediaLeftMargin, borderless.MediaRightMargin = 0, 0
			mediaColReady = append(mediaColReady, mediaColValue(borderless))
		}
	}
	if len(mediaColReady) > 0 {
		pr.add("media-col-ready", goipp.TagBeginCollection, g, mediaColReady...)
	}

	// media-col-default: omit if size-name empty.
	for i, slot := range p.ReadyMedia {
		if i == 0 && !slot.Empty && slot.Media.MediaSizeName != "" {
			pr.add("media-col-default", goipp.TagBeginCollection, g, mediaColValue(slot.Media))
			pr.add("media-default", goipp.TagKeyword, g, goipp.String(string(slot.Media.MediaSizeName)))
		}
	}
}

func mediaColValue(m ipp.MediaCol) goipp.Value {
	col := goipp.Attributes{}
	col.Add(makeAttr("media-size-name", goipp.TagKeyword, goipp.String(string(m.MediaSizeName))))
	col.Add(makeAttr("media-size", goipp.TagBeginCollection, mediaSizeValue(m.MediaSize)))
	if m.MediaSource != "" {
		col.Add(makeAttr("media-source", goipp.TagKeyword, goipp.String(m.MediaSource)))
	}
	if m.MediaType != "" {
		col.Add(makeAttr("media-type", goipp.TagKeyword, goipp.String(m.MediaType)))
	}
	col.Add(makeAttr("media-top-margin", goipp.TagInteger, goipp.Integer(m.MediaTopMargin)))
	col.Add(makeAttr("media-bottom-margin", goipp.TagInteger, goipp.Integer(m.MediaBottomMargin)))
	col.Add(makeAttr("media-left-margin", goipp.TagInteger, goipp.Integer(m.MediaLeftMargin)))
	col.Add(makeAttr("media-right-margin", goipp.TagInteger, goipp.Integer(m.MediaRightMargin)))
	return goipp.Collection(col)
}

func mediaSizeValue(s ipp.MediaSize) goipp.Value {
	col := goipp.Attributes{}
	col.Add(makeAttr("x-dimension", goipp.TagInteger, s.XDimension))
	col.Add(makeAttr("y-dimension", goipp.TagInteger, s.YDimension))
	return goipp.Collection(col)
}

func (pr *projection) projectSupplies(p *Printer) {
	g := []string{groupPrinterDescription}
	if len(p.Supplies) == 0 {
		return
	}

	values := make([]goipp.Value, len(p.Supplies))
	for i, s := range p.Supplies {
		values[i] = goipp.Binary(fmt.Sprintf(
			"index=%d;type=%s;maxcapacity=100;level=%d;colorantname=%s;",
			i+1, s.Type, s.Level, s.Color))
	}
	pr.add("printer-supply", goipp.TagString, g, values...)
}

func (pr *projection) projectURIs(p *Printer, sys System) {
	g := []string{groupPrinterDescription}

	base := p.ResourcePath

	var uris []string
	if !sys.TLSOnly() {
		uris = append(uris, "ipp://"+base)
	}
	if !sys.TLSDisabled() {
		uris = append(uris, "ipps://"+base)
	}

	uriValues := make([]goipp.Value, len(uris))
	authValues := make([]goipp.Value, len(uris))
	for i, u := range uris {
		uriValues[i] = goipp.String(u)

		auth := "none"
		if sys.AuthServiceConfigured() && len(u) >= 5 && u[:5] == "ipps:" {
			auth = "basic"
		}
		authValues[i] = goipp.String(auth)
	}
	pr.add("printer-uri-supported", goipp.TagURI, g, uriValues...)
	pr.add("uri-authentication-supported", goipp.TagKeyword, g, authValues...)

	var xriValues []goipp.Value
	for i, u := range uris {
		security := "none"
		if len(u) >= 4 && u[:4] == "ipps" {
			security = "tls"
		}
		xri := goipp.Attributes{}
		xri.Add(makeAttr("xri-uri", goipp.TagURI, goipp.String(u)))
		xri.Add(makeAttr("xri-authentication", goipp.TagKeyword, authValues[i]))
		xri.Add(makeAttr("xri-security", goipp.TagKeyword, goipp.String(security)))
		xriValues = append(xriValues, goipp.Collection(xri))
	}
	pr.add("printer-xri-supported", goipp.TagBeginCollection, g, xriValues...)

	pr.add("printer-icons", goipp.TagURI, g,
		goipp.String("https://"+base+"/icon-sm.png"),
		goipp.String("https://"+base+"/icon-md.png"),
		goipp.String("https://"+base+"/icon-lg.png"))
}

func (pr *projection) projectResources(p *Printer, sys System) {
	g := []string{groupPrinterDescription}

	resources := sys.Resources()
	if len(resources) == 0 {
		return
	}

	langValues := make([]goipp.Value, len(resources))
	for i, r := range resources {
		langValues[i] = goipp.String(r.Language)
	}
	pr.add("printer-strings-languages-supported", goipp.TagLanguage, g, langValues...)

	// printer-strings-uri: first resource matching the configured
	// natural language or its base (first two chars). The projector
	// uses "en" as the configured language, since Get-Printer-Attributes
	// does not carry a per-request language selector in this core's
	// scope.
	const lang = "en"
	for _, r := range resources {
		if r.Language == lang || (len(r.Language) >= 2 && r.Language[:2] == lang) {
			pr.add("printer-strings-uri", goipp.TagURI, g, goipp.String(r.Path))
			break
		}
	}
}

func (pr *projection) projectVendor(p *Printer) {
	g := []string{groupPrinterDescription}
	for name, attr := range p.vendorAttrs {
		if !pr.wants(name, g...) {
			continue
		}
		pr.attrs.Add(attr)
	}
}
