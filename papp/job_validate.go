// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Job-template attribute validation

package papp

import (
	"github.com/OpenPrinting/go-mfp/proto/ipp"
	"github.com/OpenPrinting/goipp"
)

// ValidateJobAttributes checks rq against p's driver capabilities,
// under p's read lock, gathering every failure into fails before
// returning -- checks never short-circuit, so the client sees every
// problem at once. It returns true iff rq is fully acceptable.
func ValidateJobAttributes(p *Printer, rq *ipp.JobAttributes, fails *failureSet) bool {
	p.RLock()
	defer p.RUnlock()

	ok := true
	fail := func(name string, tag goipp.Tag, v goipp.Value) {
		fails.add(name, tag, v)
		ok = false
	}

	if copies, set := rq.Copies.Get(); set {
		if copies < 1 || copies > 999 {
			fail("copies", goipp.TagInteger, goipp.Integer(copies))
		}
	}

	if imp, set := rq.JobImpressions.Get(); set {
		if imp < 0 {
			fail("job-impressions", goipp.TagInteger, goipp.Integer(imp))
		}
	}

	if jh, set := rq.JobHoldUntil.Get(); set {
		if jh != ipp.JobHoldUntilNoHold {
			fail("job-hold-until", goipp.TagKeyword, goipp.String(string(jh)))
		}
	}

	if pri, set := rq.JobPriority.Get(); set {
		if pri < 1 || pri > 100 {
			fail("job-priority", goipp.TagInteger, goipp.Integer(pri))
		}
	}

	if js, set := rq.JobSheets.Get(); set {
		if js != ipp.JobSheetsNone {
			fail("job-sheets", goipp.TagKeyword, goipp.String(string(js)))
		}
	}

	if media, set := rq.Media.Get(); set {
		if !mediaSupported(p, media) {
			fail("media", goipp.TagKeyword, goipp.String(string(media)))
		}
	}

	if col, set := rq.MediaCol.Get(); set {
		if !mediaColSupported(p, col) {
			fail("media-col", goipp.TagBeginCollection, mediaColValue(col))
		}
	}

	if mdh, set := rq.MultipleDocumentHandling.Get(); set {
		if !mdh.Valid() {
			fail("multiple-document-handling", goipp.TagKeyword, goipp.String(string(mdh)))
		}
	}

	if or, set := rq.OrientationRequested.Get(); set {
		// The upper bound is inclusive of NONE -- see DESIGN.md for
		// the decision to accept it rather than reject it.
		if or < ipp.OrientPortrait || or > ipp.OrientNone {
			fail("orientation-requested", goipp.TagEnum, goipp.Integer(or))
		}
	}

	if len(rq.PageRanges) > 0 {
		if !pageRangesSupported(p) {
			for _, r := range rq.PageRanges {
				fail("page-ranges", goipp.TagRange, r)
			}
		} else {
			for _, r := range rq.PageRanges {
				if r.Lower < 1 || r.Upper < r.Lower {
					fail("page-ranges", goipp.TagRange, r)
				}
			}
		}
	}

	if mode, set := rq.PrintColorMode.Get(); set {
		if !p.Driver.ColorSupported.Contains(mode) {
			fail("print-color-mode", goipp.TagKeyword, goipp.String(mode))
		}
	}

	if opt, set := rq.PrintContentOptimize.Get(); set {
		if !stringInList(p.Driver.ContentOptimizeSupported, opt) {
			fail("print-content-optimize", goipp.TagKeyword, goipp.String(opt))
		}
	}

	if dk, set := rq.PrintDarkness.Get(); set {
		if !p.Driver.DarknessSupported || !p.Driver.DarknessRange.Contains(dk) {
			fail("print-darkness", goipp.TagInteger, goipp.Integer(dk))
		}
	}

	if q, set := rq.PrintQuality.Get(); set {
		if q < ipp.QualityDraft || q > ipp.QualityHigh {
			fail("print-quality", goipp.TagEnum, goipp.Integer(q))
		}
	}

	if sc, set := rq.PrintScaling.Get(); set {
		if !stringInList(p.Driver.ScalingSupported, sc) {
			fail("print-scaling", goipp.TagKeyword, goipp.String(sc))
		}
	}

	if sp, set := rq.PrintSpeed.Get(); set {
		if !p.Driver.SpeedSupported || !p.Driver.SpeedRange.Contains(sp) {
			fail("print-speed", goipp.TagInteger, goipp.Integer(sp))
		}
	}

	if res, set := rq.PrinterResolution.Get(); set {
		if !resolutionSupported(p, res) {
			fail("printer-resolution", goipp.TagResolution, res)
		}
	}

	if sides, set := rq.Sides.Get(); set {
		if !p.Driver.SidesSupported.Contains(sides) {
			fail("sides", goipp.TagKeyword, goipp.String(string(sides)))
		}
	}

	return ok
}

func stringInList(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func mediaSupported(p *Printer, media ipp.KwMedia) bool {
	for _, m := range p.Driver.MediaSupported {
		if m == media {
			return true
		}
	}
	return false
}

func mediaColSupported(p *Printer, col ipp.MediaCol) bool {
	if col.MediaSizeName != "" {
		return mediaSupported(p, col.MediaSizeName)
	}

	for _, sz := range p.Driver.MediaSizeSupported {
		if sz.XDimension == col.MediaSize.XDimension &&
			sz.YDimension == col.MediaSize.YDimension {
			return true
		}
	}
	return false
}

func pageRangesSupported(p *Printer) bool {
	// Driver capability, mirrored in the projector's
	// page-ranges-supported row; this core advertises it
	// unconditionally true (printer_project.go).
	return true
}

func resolutionSupported(p *Printer, res goipp.Resolution) bool {
	for _, r := range p.Driver.Resolutions {
		if r == res {
			return true
		}
	}
	return false
}
