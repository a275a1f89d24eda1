// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Job-template attribute extraction from the wire message

package papp

import (
	"github.com/OpenPrinting/go-mfp/proto/ipp"
	"github.com/OpenPrinting/go-mfp/util/optional"
	"github.com/OpenPrinting/goipp"
)

// parseJobAttributes extracts the job-template fields of group into an
// [ipp.JobAttributes], leaving unrecognized or absent attributes at
// their zero/unset value. It never rejects anything itself --
// rejection is [ValidateJobAttributes]'s job.
func parseJobAttributes(group goipp.Attributes) *ipp.JobAttributes {
	rq := &ipp.JobAttributes{}

	for _, attr := range group {
		if len(attr.Values) == 0 {
			continue
		}
		v0 := attr.Values[0].V

		switch attr.Name {
		case "copies":
			if i, ok := v0.(goipp.Integer); ok {
				rq.Copies = optional.New(int(i))
			}
		case "finishings":
			for _, v := range attr.Values {
				if i, ok := v.V.(goipp.Integer); ok {
					rq.Finishings = append(rq.Finishings, int(i))
				}
			}
		case "ipp-attribute-fidelity":
			if b, ok := v0.(goipp.Boolean); ok {
				rq.IppAttributeFidelity = optional.New(bool(b))
			}
		case "job-hold-until":
			if s, ok := v0.(goipp.String); ok {
				rq.JobHoldUntil = optional.New(ipp.KwJobHoldUntil(s))
			}
		case "job-impressions":
			if i, ok := v0.(goipp.Integer); ok {
				rq.JobImpressions = optional.New(int(i))
			}
		case "job-name":
			if s, ok := v0.(goipp.String); ok {
				rq.JobName = optional.New(string(s))
			}
		case "job-priority":
			if i, ok := v0.(goipp.Integer); ok {
				rq.JobPriority = optional.New(int(i))
			}
		case "job-sheets":
			if s, ok := v0.(goipp.String); ok {
				rq.JobSheets = optional.New(ipp.KwJobSheets(s))
			}
		case "media":
			if s, ok := v0.(goipp.String); ok {
				rq.Media = optional.New(ipp.KwMedia(s))
			}
		case "media-col":
			if col, ok := v0.(goipp.Collection); ok {
				rq.MediaCol = optional.New(parseMediaCol(goipp.Attributes(col)))
			}
		case "multiple-document-handling":
			if s, ok := v0.(goipp.String); ok {
				rq.MultipleDocumentHandling = optional.New(ipp.KwMultipleDocumentHandling(s))
			}
		case "number-up":
			if i, ok := v0.(goipp.Integer); ok {
				rq.NumberUp = optional.New(int(i))
			}
		case "orientation-requested":
			if i, ok := v0.(goipp.Integer); ok {
				rq.OrientationRequested = optional.New(int(i))
			}
		case "page-ranges":
			for _, v := range attr.Values {
				switch r := v.V.(type) {
				case goipp.Range:
					rq.PageRanges = append(rq.PageRanges, r)
				case goipp.Integer:
					rq.PageRanges = append(rq.PageRanges,
						goipp.Range{Lower: int(r), Upper: int(r)})
				}
			}
		case "print-color-mode":
			if s, ok := v0.(goipp.String); ok {
				rq.PrintColorMode = optional.New(string(s))
			}
		case "print-content-optimize":
			if s, ok := v0.(goipp.String); ok {
				rq.PrintContentOptimize = optional.New(string(s))
			}
		case "print-darkness":
			if i, ok := v0.(goipp.Integer); ok {
				rq.PrintDarkness = optional.New(int(i))
			}
		case "print-quality":
			if i, ok := v0.(goipp.Integer); ok {
				rq.PrintQuality = optional.New(int(i))
			}
		case "print-scaling":
			if s, ok := v0.(goipp.String); ok {
				rq.PrintScaling = optional.New(string(s))
			}
		case "print-speed":
			if i, ok := v0.(goipp.Integer); ok {
				rq.PrintSpeed = optional.New(int(i))
			}
		case "printer-resolution":
			if r, ok := v0.(goipp.Resolution); ok {
				rq.PrinterResolution = optional.New(r)
			}
		case "sides":
			if s, ok := v0.(goipp.String); ok {
				rq.Sides = optional.New(ipp.KwSides(s))
			}
		}
	}

	return rq
}

func parseMediaCol(col goipp.Attributes) ipp.MediaCol {
	var m ipp.MediaCol

	for _, attr := range col {
		if len(attr.Values) == 0 {
			continue
		}
		v0 := attr.Values[0].V

		switch attr.Name {
		case "media-color":
			if s, ok := v0.(goipp.String); ok {
				m.MediaColor = ipp.KwColor(s)
			}
		case "media-hole-count":
			if i, ok := v0.(goipp.Integer); ok {
				m.MediaHoleCount = int(i)
			}
		case "media-info":
			if s, ok := v0.(goipp.String); ok {
				m.MediaInfo = string(s)
			}
		case "media-key":
			if s, ok := v0.(goipp.String); ok {
				m.MediaKey = ipp.KwMedia(s)
			}
		case "media-size":
			if sz, ok := v0.(goipp.Collection); ok {
				m.MediaSize = parseMediaSize(goipp.Attributes(sz))
			}
		case "media-size-name":
			if s, ok := v0.(goipp.String); ok {
				m.MediaSizeName = ipp.KwMedia(s)
			}
		case "media-source":
			if s, ok := v0.(goipp.String); ok {
				m.MediaSource = string(s)
			}
		case "media-type":
			if s, ok := v0.(goipp.String); ok {
				m.MediaType = string(s)
			}
		case "media-weight-metric":
			if i, ok := v0.(goipp.Integer); ok {
				m.MediaWeightMetric = int(i)
			}
		case "media-top-margin":
			if i, ok := v0.(goipp.Integer); ok {
				m.MediaTopMargin = int(i)
			}
		case "media-bottom-margin":
			if i, ok := v0.(goipp.Integer); ok {
				m.MediaBottomMargin = int(i)
			}
		case "media-left-margin":
			if i, ok := v0.(goipp.Integer); ok {
				m.MediaLeftMargin = int(i)
			}
		case "media-right-margin":
			if i, ok := v0.(goipp.Integer); ok {
				m.MediaRightMargin = int(i)
			}
		}
	}

	return m
}

func parseMediaSize(sz goipp.Attributes) ipp.MediaSize {
	var s ipp.MediaSize
	for _, attr := range sz {
		if len(attr.Values) == 0 {
			continue
		}
		switch attr.Name {
		case "x-dimension":
			s.XDimension = toRange(attr.Values[0].V)
		case "y-dimension":
			s.YDimension = toRange(attr.Values[0].V)
		}
	}
	return s
}

func toRange(v goipp.Value) goipp.Range {
	switch t := v.(type) {
	case goipp.Integer:
		return goipp.Range{Lower: int(t), Upper: int(t)}
	case goipp.Range:
		return goipp.Range{Lower: t.Lower, Upper: t.Upper}
	}
	return goipp.Range{}
}
