// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Printer-scoped operation handlers

package papp

import (
	"time"

	"github.com/OpenPrinting/go-mfp/proto/ipp"
	"github.com/OpenPrinting/goipp"
)

// statusRefreshInterval bounds how often Get-Printer-Attributes may
// trigger the driver's status callback.
const statusRefreshInterval = time.Second

// refreshStatus invokes p.Driver.StatusCallback at most once a second
// and only while the printer is idle, with no printer lock held: the
// callback runs before the printer's reader lock is taken.
func refreshStatus(p *Printer) {
	if p.Driver.StatusCallback == nil {
		return
	}

	p.RLock()
	idle := !p.DeviceInUse && p.ProcessingJob == nil
	due := time.Since(p.StatusTime) >= statusRefreshInterval
	p.RUnlock()

	if !idle || !due {
		return
	}

	p.Driver.StatusCallback(p)

	p.Lock()
	p.StatusTime = time.Now()
	p.Unlock()
}

func handleGetPrinterAttributes(srv *Server, p *Printer, rq *goipp.Message, env *Envelope) *goipp.Message {
	refreshStatus(p)

	resp := newResponse(statusOk, rq.RequestID)
	docFormat, _ := stringOperationAttr(rq, "document-format")
	attrs := Project(p, requestedAttributesSet(rq), docFormat, srv.System)
	group := resp.Printer()
	*group = attrs
	return resp
}

func handleSetPrinterAttributes(srv *Server, p *Printer, rq *goipp.Message, env *Envelope) *goipp.Message {
	resp := newResponse(statusOk, rq.RequestID)

	group := *rq.Printer()
	fails := PreflightSetAttributes(p, group)
	if !fails.empty() {
		fails.apply(resp)
		resp.Code = goipp.Code(statusAttributesNotSupported)
		return resp
	}

	p.Lock()
	ApplySetAttributes(p, group, srv.System)
	p.Unlock()

	return resp
}

func handleIdentifyPrinter(srv *Server, p *Printer, rq *goipp.Message, env *Envelope) *goipp.Message {
	resp := newResponse(statusOk, rq.RequestID)

	var actions []string
	for _, attr := range *rq.Operation() {
		if attr.Name == "identify-actions" {
			for _, v := range attr.Values {
				if s, ok := v.V.(goipp.String); ok {
					actions = append(actions, string(s))
				}
			}
		}
	}

	var bits ipp.IdentifyActionsBitset
	if len(actions) > 0 {
		bits = ipp.IdentifyActionsFromKeywords(actions)
	} else {
		bits = p.Driver.IdentifyDefault
	}

	message, _ := stringOperationAttr(rq, "message")

	if p.Driver.IdentifyCallback != nil {
		p.Driver.IdentifyCallback(p, bits.Keywords(), message)
	}

	return resp
}

func handlePausePrinter(srv *Server, p *Printer, rq *goipp.Message, env *Envelope) *goipp.Message {
	resp := newResponse(statusOk, rq.RequestID)
	srv.Printers.Pause(p)
	return resp
}

func handleResumePrinter(srv *Server, p *Printer, rq *goipp.Message, env *Envelope) *goipp.Message {
	resp := newResponse(statusOk, rq.RequestID)
	srv.Printers.Resume(p)
	return resp
}
