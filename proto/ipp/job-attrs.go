// MFP - Miulti-Function Printers and scanners toolkit
// IPP - Internet Printing Protocol implementation
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Job and Job Template Attributes

package ipp

import (
	"github.com/OpenPrinting/go-mfp/util/optional"
	"github.com/OpenPrinting/goipp"
)

// JobAttributes are the job-template attributes carried by a Print-Job,
// Validate-Job, or Create-Job request, and echoed (where applicable)
// into the job object's own attribute group.
//
// RFC8011, Internet Printing Protocol/1.1: Model and Semantics, 5.2.
type JobAttributes struct {
	Copies                   optional.Val[int]                      `ipp:"?copies,>0"`
	Finishings               []int                                  `ipp:"?finishings,enum"`
	IppAttributeFidelity     optional.Val[bool]                     `ipp:"?ipp-attribute-fidelity"`
	JobHoldUntil             optional.Val[KwJobHoldUntil]            `ipp:"?job-hold-until"`
	JobImpressions           optional.Val[int]                      `ipp:"?job-impressions,>=0"`
	JobName                  optional.Val[string]                    `ipp:"?job-name,name"`
	JobPriority              optional.Val[int]                       `ipp:"?job-priority,1:100"`
	JobSheets                optional.Val[KwJobSheets]                `ipp:"?job-sheets"`
	Media                    optional.Val[KwMedia]                   `ipp:"?media"`
	MediaCol                 optional.Val[MediaCol]                  `ipp:"?media-col"`
	MultipleDocumentHandling optional.Val[KwMultipleDocumentHandling] `ipp:"?multiple-document-handling"`
	NumberUp                 optional.Val[int]                      `ipp:"?number-up,>0"`
	OrientationRequested     optional.Val[int]                      `ipp:"?orientation-requested,enum"`
	PageRanges               []goipp.Range                 `ipp:"?page-ranges"`
	PrinterResolution        optional.Val[goipp.Resolution]          `ipp:"?printer-resolution"`
	PrintColorMode           optional.Val[string]                   `ipp:"?print-color-mode,keyword"`
	PrintContentOptimize     optional.Val[string]                   `ipp:"?print-content-optimize,keyword"`
	PrintDarkness            optional.Val[int]                      `ipp:"?print-darkness,-100:100"`
	PrintQuality             optional.Val[int]                      `ipp:"?print-quality,enum"`
	PrintScaling             optional.Val[string]                   `ipp:"?print-scaling,keyword"`
	PrintSpeed               optional.Val[int]                      `ipp:"?print-speed"`
	Sides                    optional.Val[KwSides]                  `ipp:"?sides"`
}

// JobTemplate are the corresponding "-default"/"-supported" printer
// description attributes, describing the range of values a
// JobAttributes request is allowed to use.
type JobTemplate struct {
	CopiesDefault                     int                          `ipp:"?copies-default,>0"`
	CopiesSupported                   goipp.Range                  `ipp:"?copies-supported,>0"`
	FinishingsDefault                 []int                        `ipp:"?finishings-default,enum"`
	FinishingsSupported               []int                        `ipp:"?finishings-supported,enum"`
	JobHoldUntilDefault               KwJobHoldUntil               `ipp:"?job-hold-until-default"`
	JobHoldUntilSupported             []KwJobHoldUntil             `ipp:"?job-hold-until-supported"`
	JobPriorityDefault                int                          `ipp:"?job-priority-default,1:100"`
	JobPrioritySupported              int                          `ipp:"?job-priority-supported,1:100"`
	JobSheetsDefault                  KwJobSheets                  `ipp:"?job-sheets-default"`
	JobSheetsSupported                []KwJobSheets                `ipp:"?job-sheets-supported"`
	MediaColDefault                   MediaCol                     `ipp:"?media-col-default"`
	MediaDefault                      KwMedia                      `ipp:"?media-default"`
	MediaReady                        []KwMedia                    `ipp:"?media-ready"`
	MediaColReady                     []MediaCol                   `ipp:"?media-col-ready"`
	MediaSupported                    []KwMedia                    `ipp:"?media-supported"`
	MultipleDocumentHandlingDefault   KwMultipleDocumentHandling   `ipp:"?multiple-document-handling-default"`
	MultipleDocumentHandlingSupported []KwMultipleDocumentHandling `ipp:"?multiple-document-handling-supported"`
	NumberUpDefault                   int                          `ipp:"?number-up-default,>0"`
	NumberUpSupported                 []goipp.Range       `ipp:"?number-up-supported,>0"`
	OrientationRequestedDefault       int                          `ipp:"?orientation-requested-default,enum"`
	OrientationRequestedSupported     []int                        `ipp:"?orientation-requested-supported,enum"`
	PageRangesSupported               bool                         `ipp:"?page-ranges-supported"`
	PrintColorModeDefault             string                       `ipp:"?print-color-mode-default,keyword"`
	PrintColorModeSupported           []string                     `ipp:"?print-color-mode-supported,keyword"`
	PrintContentOptimizeDefault       string                       `ipp:"?print-content-optimize-default,keyword"`
	PrintContentOptimizeSupported     []string                     `ipp:"?print-content-optimize-supported,keyword"`
	PrintDarknessDefault              int                          `ipp:"?print-darkness-default,-100:100"`
	PrintDarknessSupported            bool                         `ipp:"?print-darkness-supported"`
	PrinterResolutionDefault          goipp.Resolution             `ipp:"?printer-resolution-default"`
	PrinterResolutionSupported        []goipp.Resolution           `ipp:"?printer-resolution-supported"`
	PrintQualityDefault               int                          `ipp:"?print-quality-default,enum"`
	PrintQualitySupported             []int                        `ipp:"?print-quality-supported,enum"`
	PrintScalingDefault               string                       `ipp:"?print-scaling-default,keyword"`
	PrintScalingSupported             []string                     `ipp:"?print-scaling-supported,keyword"`
	PrintSpeedDefault                 int                          `ipp:"?print-speed-default"`
	PrintSpeedSupported               goipp.Range                  `ipp:"?print-speed-supported"`
	SidesDefault                      KwSides                      `ipp:"?sides-default"`
	SidesSupported                    []KwSides                    `ipp:"?sides-supported"`
}

// MediaCol is the "media-col"/"media-col-xxx" collection entry,
// describing a loaded medium in full (size, margins, source, type).
//
// PWG5100.3: 3.13, Table 10. PWG5100.7: 6.3.1, Table 6.
type MediaCol struct {
	MediaColor            KwColor               `ipp:"?media-color"`
	MediaHoleCount        int                   `ipp:"?media-hole-count,0:MAX"`
	MediaInfo             string                `ipp:"?media-info,text"`
	MediaKey              KwMedia               `ipp:"?media-key"`
	MediaSize             MediaSize             `ipp:"?media-size"`
	MediaSizeName         KwMedia               `ipp:"?media-size-name"`
	MediaSource           string                `ipp:"?media-source,keyword"`
	MediaSourceProperties MediaSourceProperties `ipp:"?media-source-properties"`
	MediaType             string                `ipp:"?media-type,keyword"`
	MediaWeightMetric     int                   `ipp:"?media-weight-metric,0:MAX"`
	MediaBottomMargin     int                   `ipp:"?media-bottom-margin,0:MAX"`
	MediaLeftMargin       int                   `ipp:"?media-left-margin,0:MAX"`
	MediaRightMargin      int                   `ipp:"?media-right-margin,0:MAX"`
	MediaTopMargin        int                   `ipp:"?media-top-margin,0:MAX"`
}

// MediaSize represents media size in hundredths of millimeters, either
// as exact dimensions or as a range (for custom/borderless media).
type MediaSize struct {
	XDimension goipp.Range `ipp:"x-dimension,0:MAX"`
	YDimension goipp.Range `ipp:"y-dimension,0:MAX"`
}

// MediaSourceProperties represents the "media-source-properties"
// collection nested in MediaCol.
type MediaSourceProperties struct {
	MediaSourceFeedDirection   string `ipp:"?media-source-feed-direction,keyword"`
	MediaSourceFeedOrientation int    `ipp:"?media-source-feed-orientation,enum"`
}
