// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Attribute projector: printer snapshot -> response attributes

package papp

import (
	"fmt"
	"time"

	"github.com/OpenPrinting/go-mfp/proto/ipp"
	"github.com/OpenPrinting/goipp"
)

// projection bundles the output attributes and the filtering state
// needed while building them.
type projection struct {
	attrs      goipp.Attributes
	requested  map[string]bool // nil means "all"
	docFormat  string
}

// wants reports whether attribute name should be emitted: either the
// client asked for everything, asked for name specifically, or asked
// for a group (job-template/printer-description) that name belongs to.
func (pr *projection) wants(name string, groups ...string) bool {
	if pr.requested == nil || pr.requested[ipp.GetPrinterAttributesAll] {
		return true
	}
	if pr.requested[name] {
		return true
	}
	for _, g := range groups {
		if pr.requested[g] {
			return true
		}
	}
	return false
}

const (
	groupJobTemplate        = ipp.GetPrinterAttributesJobTemplate
	groupPrinterDescription = ipp.GetPrinterAttributesPrinterDescription
)

func (pr *projection) add(name string, tag goipp.Tag, groups []string, values ...goipp.Value) {
	if !pr.wants(name, groups...) || len(values) == 0 {
		return
	}
	attr := makeAttr(name, tag, values[0])
	for _, v := range values[1:] {
		attr.Values.Add(tag, v)
	}
	pr.attrs.Add(attr)
}

// Project assembles the printer-description and job-template response
// attributes for a Get-Printer-Attributes request, reading a
// consistent snapshot of p under its read lock. requested is nil for
// "all attributes"; docFormat is the client's "document-format"
// operation attribute, or "" if absent.
//
// Project takes p's reader lock for its entire duration and, for the
// printer-strings-uri rule, briefly takes sys's own lock afterward --
// never the other way around, per the core's lock-ordering rule.
func Project(p *Printer, requested map[string]bool, docFormat string, sys System) goipp.Attributes {
	p.RLock()
	defer p.RUnlock()

	pr := &projection{requested: requested, docFormat: docFormat}

	pr.projectState(p)
	pr.projectJobTemplateDefaults(p)
	pr.projectJobTemplateSupported(p, sys)
	pr.projectMedia(p)
	pr.projectSupplies(p)
	pr.projectURIs(p, sys)
	pr.projectResources(p, sys)
	pr.projectVendor(p)

	return pr.attrs
}

func (pr *projection) projectState(p *Printer) {
	g := []string{groupPrinterDescription}

	pr.add("printer-name", goipp.TagName, g, goipp.String(p.Name))
	pr.add("printer-uuid", goipp.TagURI, g, goipp.String("urn:uuid:"+p.UUID))
	pr.add("printer-location", goipp.TagText, g, goipp.String(p.Location))
	pr.add("printer-organization", goipp.TagText, g, goipp.String(p.Organization))
	pr.add("printer-organizational-unit", goipp.TagText, g, goipp.String(p.OrganizationalUnit))
	if p.GeoLocation != "" {
		pr.add("printer-geo-location", goipp.TagURI, g, goipp.String(p.GeoLocation))
	}
	pr.add("printer-make-and-model", goipp.TagText, g, goipp.String(p.Driver.Name))
	pr.add("printer-state", goipp.TagEnum, g, goipp.Integer(p.State))
	pr.add("printer-is-accepting-jobs", goipp.TagBoolean, g, goipp.Boolean(true))
	pr.add("queued-job-count", goipp.TagInteger, g, goipp.Integer(p.QueuedJobCount()))

	pr.add("printer-state-reasons", goipp.TagKeyword, g, stateReasonValues(p)...)

	// printer-config-change-time / printer-state-change-time: seconds
	// since printer start.
	pr.add("printer-config-change-time", goipp.TagInteger, g,
		goipp.Integer(int(p.ConfigTime.Sub(p.StartTime).Seconds())))
	pr.add("printer-state-change-time", goipp.TagInteger, g,
		goipp.Integer(int(p.StateTime.Sub(p.StartTime).Seconds())))

	opsAttr := []goipp.Value{
		goipp.Integer(goipp.OpPrintJob), goipp.Integer(goipp.OpValidateJob),
		goipp.Integer(goipp.OpCreateJob), goipp.Integer(goipp.OpCancelJob),
		goipp.Integer(goipp.OpGetJobAttributes), goipp.Integer(goipp.OpGetJobs),
		goipp.Integer(goipp.OpGetPrinterAttributes),
		goipp.Integer(goipp.OpSetPrinterAttributes),
		goipp.Integer(goipp.OpPausePrinter), goipp.Integer(goipp.OpResumePrinter),
		goipp.Integer(goipp.OpIdentifyPrinter),
		goipp.Integer(goipp.OpCancelJobs), goipp.Integer(goipp.OpCancelMyJobs),
	}
	pr.add("operations-supported", goipp.TagEnum, g, opsAttr...)

	pr.add("charset-configured", goipp.TagCharset, g, goipp.String("utf-8"))
	pr.add("charset-supported", goipp.TagCharset, g, goipp.String("utf-8"))
	pr.add("natural-language-configured", goipp.TagLanguage, g, goipp.String("en"))
	pr.add("generated-natural-language-supported", goipp.TagLanguage, g, goipp.String("en"))
	pr.add("ipp-versions-supported", goipp.TagKeyword, g,
		goipp.String("1.1"), goipp.String("2.0"))
	pr.add("pdl-override-supported", goipp.TagKeyword, g, goipp.String("attempted"))

	actions := identifyActionValues(p.Driver.IdentifyDefault)
	pr.add("identify-actions-default", goipp.TagKeyword, g, actions...)
	if len(p.Driver.IdentifySupported.Keywords()) > 0 {
		pr.add("identify-actions-supported", goipp.TagKeyword, g,
			keywordValues(p.Driver.IdentifySupported.Keywords())...)
	}

	if p.Driver.LabelModeDefault != "" {
		pr.add("label-mode-configured", goipp.TagKeyword, g, goipp.String(p.Driver.LabelModeDefault))
	}
	if p.Driver.LabelTearOffSupported {
		pr.add("label-tear-offset-configured", goipp.TagInteger, g,
			goipp.Integer(p.Driver.LabelTearOffDefault))
	}
}

// stateReasonValues builds the printer-state-reasons row: concrete
// reasons take priority; "paused"/"moving-to-paused" are appended when
// applicable, and "none" stands alone when nothing else applies.
func stateReasonValues(p *Printer) []goipp.Value {
	reasons := p.StateReasons.Keywords()

	var pauseReason string
	switch {
	case p.IsStopped:
		pauseReason = "moving-to-paused"
	case p.State == PrinterStateStopped:
		pauseReason = "paused"
	}

	if len(reasons) == 0 && pauseReason == "" {
		return []goipp.Value{goipp.String("none")}
	}

	values := make([]goipp.Value, 0, len(reasons)+1)
	for _, r := range reasons {
		values = append(values, goipp.String(r))
	}
	if pauseReason != "" {
		values = append(values, goipp.String(pauseReason))
	}
	return values
}

func identifyActionValues(bits ipp.IdentifyActionsBitset) []goipp.Value {
	return keywordValues(bits.Keywords())
}

func keywordValues(kws []string) []goipp.Value {
	values := make([]goipp.Value, len(kws))
	for i, k := range kws {
		values[i] = goipp.String(k)
	}
	return values
}

func (pr *projection) projectJobTemplateDefaults(p *Printer) {
	g := []string{groupJobTemplate}

	pr.add("copies-default", goipp.TagInteger, g, goipp.Integer(1))
	pr.add("sides-default", goipp.TagKeyword, g,
		keywordValues(p.Driver.SidesDefault.Keywords())...)
	pr.add("orientation-requested-default", goipp.TagEnum, g,
		goipp.Integer(orDefault(p.Driver.OrientationDefault, ipp.OrientPortrait)))

	quality := p.Driver.QualityDefault
	if quality == 0 {
		quality = ipp.QualityNormal // protocol-defined fallback for unset
	}
	pr.add("print-quality-default", goipp.TagEnum, g, goipp.Integer(quality))

	colorModes := p.Driver.ColorDefault.Keywords()
	if len(colorModes) > 0 {
		pr.add("print-color-mode-default", goipp.TagKeyword, g, goipp.String(colorModes[0]))
	}
	if p.Driver.ResolutionDefault.Xres != 0 {
		pr.add("printer-resolution-default", goipp.TagResolution, g,
			p.Driver.ResolutionDefault)
	}
	if p.Driver.ContentOptimizeDefault != "" {
		pr.add("print-content-optimize-default", goipp.TagKeyword, g,
			goipp.String(p.Driver.ContentOptimizeDefault))
	}
	if p.Driver.ScalingDefault != "" {
		pr.add("print-scaling-default", goipp.TagKeyword, g,
			goipp.String(p.Driver.ScalingDefault))
	}
	if p.Driver.DarknessSupported {
		pr.add("print-darkness-default", goipp.TagInteger, g, goipp.Integer(0))
	}
	if p.Driver.SpeedSupported {
		pr.add("print-speed-default", goipp.TagInteger, g,
			goipp.Integer(p.Driver.SpeedRange.Lower))
	}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func (pr *projection) projectJobTemplateSupported(p *Printer, sys System) {
	g := []string{groupJobTemplate}

	// copies-supported: streaming raster formats (PWG Raster, URF)
	// can't collate multiple copies in one rendering pass, so only a
	// single copy is advertised as supported for them.
	lower, upper := 1, 999
	switch pr.docFormat {
	case ipp.DocumentFormatPWGRaster, ipp.DocumentFormatURF:
		upper = 1
	}
	pr.add("copies-supported", goipp.TagRange, g,
		goipp.Range{Lower: lower, Upper: upper})

	pr.add("sides-supported", goipp.TagKeyword, g,
		keywordValues(p.Driver.SidesSupported.Keywords())...)

	orient := p.Driver.OrientationSupported
	if len(orient) > 0 {
		values := make([]goipp.Value, len(orient))
		for i, o := range orient {
			values[i] = goipp.Integer(o)
		}
		pr.add("orientation-requested-supported", goipp.TagEnum, g, values...)
	}

	quality := p.Driver.QualitySupported
	if len(quality) > 0 {
		values := make([]goipp.Value, len(quality))
		for i, q := range quality {
			values[i] = goipp.Integer(q)
		}
		pr.add("print-quality-supported", goipp.TagEnum, g, values...)
	}

	colorModes := p.Driver.ColorSupported.Keywords()
	if len(colorModes) > 0 {
		pr.add("print-color-mode-supported", goipp.TagKeyword, g,
			keywordValues(colorModes)...)
	}

	if len(p.Driver.Resolutions) > 0 {
		values := make([]goipp.Value, len(p.Driver.Resolutions))
		for i, r := range p.Driver.Resolutions {
			values[i] = r
		}
		pr.add("printer-resolution-supported", goipp.TagResolution, g, values...)
	}

	pr.add("page-ranges-supported", goipp.TagBoolean, g,
		goipp.Boolean(true))

	pr.add("document-format-supported", goipp.TagMimeType, g,
		goipp.String(ipp.DocumentFormatPDF), goipp.String(ipp.DocumentFormatJPEG),
		goipp.String(ipp.DocumentFormatPWGRaster), goipp.String(ipp.DocumentFormatOctet))
	pr.add("document-format-default", goipp.TagMimeType, g,
		goipp.String(ipp.DocumentFormatPDF))

	pr.add("multiple-document-handling-supported", goipp.TagKeyword, g,
		goipp.String(string(ipp.MultipleDocumentHandlingSeparateUncollated)),
		goipp.String(string(ipp.MultipleDocumentHandlingSeparateCollated)))

	if len(p.Driver.Sources) > 0 {
		pr.add("media-source-supported", goipp.TagKeyword, g,
			keywordValues(p.Driver.Sources)...)
		pr.add("printer-input-tray", goipp.TagString, g, inputTrayValues(p)...)
	}
	if len(p.Driver.Bins) > 0 {
		pr.add("output-bin-supported", goipp.TagKeyword, g,
			keywordValues(p.Driver.Bins)...)
	}
}

// inputTrayValues builds the printer-input-tray row.
func inputTrayValues(p *Printer) []goipp.Value {
	values := make([]goipp.Value, 0, len(p.Driver.Sources)+1)
	for i, src := range p.Driver.Sources {
		var t string
		switch src {
		case "manual":
			t = "sheetFeedManual"
		case "by-pass-tray":
			t = "sheetFeedAutoNonRemovableTray"
		default:
			t = "sheetFeedAutoRemovableTray"
		}

		level := -2
		feed, xfeed, cap := 0, 0, 0
		if i < len(p.ReadyMedia) && !p.ReadyMedia[i].Empty {
			level = -2
		}

		s := fmt.Sprintf(
			"type=%s;mediafeed=%d;mediaxfeed=%d;maxcapacity=%d;level=%d;status=0;name=%s;",
			t, feed, xfeed, cap, level, src)
		values = append(values, goipp.Binary(s))
	}
	values = append(values, goipp.Binary("type=smallCapacity;level=-2;status=0;name=auto;"))
	return values
}
