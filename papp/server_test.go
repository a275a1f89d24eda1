// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Test for the operation dispatcher

package papp

import (
	"io"
	"testing"
	"time"

	"github.com/OpenPrinting/go-mfp/proto/ipp"
	"github.com/OpenPrinting/goipp"
)

type stubJob struct {
	id    int
	state JobState
}

func (j *stubJob) ID() int                { return j.id }
func (j *stubJob) State() JobState        { return j.state }
func (j *stubJob) StateReasons() []string { return nil }
func (j *stubJob) Username() string       { return "alice" }
func (j *stubJob) Name() string           { return "test job" }
func (j *stubJob) SubmitTime() time.Time  { return time.Time{} }

type stubLookup struct {
	printers map[string]*Printer
	paused   []*Printer
	resumed  []*Printer
}

func (s *stubLookup) Lookup(printerURI string) *Printer { return s.printers[printerURI] }
func (s *stubLookup) Pause(p *Printer)                  { s.paused = append(s.paused, p) }
func (s *stubLookup) Resume(p *Printer)                 { s.resumed = append(s.resumed, p) }

type stubJobManager struct{}

func (s *stubJobManager) CreateJob(p *Printer, idHint int, username, formatHint, name string,
	rq *ipp.JobAttributes) Job {
	return &stubJob{id: 1, state: JobStateCompleted}
}
func (s *stubJobManager) CancelJob(j Job)                                  {}
func (s *stubJobManager) CancelAll(p *Printer)                             {}
func (s *stubJobManager) CopyDocumentData(dst io.Writer, src io.Reader) (int64, error) {
	return io.Copy(dst, src)
}

func testServer(p *Printer, authz Authorizer) (*Server, *stubLookup) {
	lookup := &stubLookup{printers: map[string]*Printer{"/ipp/print": p}}
	srv := NewServer(lookup, &stubSystem{}, &stubJobManager{}, authz)
	return srv, lookup
}

func requestWithPrinterURI(op goipp.Op, uri string) *goipp.Message {
	rq := &goipp.Message{
		Version:   goipp.MakeVersion(2, 0),
		Code:      goipp.Code(op),
		RequestID: 1,
	}
	rq.Operation().Add(makeAttr("printer-uri", goipp.TagURI, goipp.String(uri)))
	return rq
}

func TestDispatchUnknownPrinterReturnsNotFound(t *testing.T) {
	p := testDriverPrinter()
	srv, _ := testServer(p, nil)

	rq := requestWithPrinterURI(goipp.OpGetPrinterAttributes, "/no/such/printer")
	rsp, err := srv.dispatch(rq, &Envelope{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if goipp.Status(rsp.Code) != statusNotFound {
		t.Errorf("expected statusNotFound, got %v", goipp.Status(rsp.Code))
	}
}

func TestDispatchUnknownOperationReturnsNotSupported(t *testing.T) {
	p := testDriverPrinter()
	srv, _ := testServer(p, nil)

	rq := requestWithPrinterURI(goipp.Op(0x7fff), "/ipp/print")
	rsp, err := srv.dispatch(rq, &Envelope{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if goipp.Status(rsp.Code) != statusOperationNotSupported {
		t.Errorf("expected statusOperationNotSupported, got %v", goipp.Status(rsp.Code))
	}
}

func TestDispatchMutatingOpDeniedByAuthorizer(t *testing.T) {
	p := testDriverPrinter()
	deny := func(env *Envelope, op goipp.Op) bool { return false }
	srv, lookup := testServer(p, deny)

	rq := requestWithPrinterURI(goipp.OpPausePrinter, "/ipp/print")
	_, err := srv.dispatch(rq, &Envelope{})
	if err != errAuthDenied {
		t.Fatalf("expected errAuthDenied, got %v", err)
	}
	if len(lookup.paused) != 0 {
		t.Errorf("expected Pause to never be called when auth is denied")
	}
}

func TestDispatchMutatingOpAllowedByAuthorizer(t *testing.T) {
	p := testDriverPrinter()
	allow := func(env *Envelope, op goipp.Op) bool { return true }
	srv, lookup := testServer(p, allow)

	rq := requestWithPrinterURI(goipp.OpPausePrinter, "/ipp/print")
	rsp, err := srv.dispatch(rq, &Envelope{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if goipp.Status(rsp.Code) != statusOk {
		t.Errorf("expected statusOk, got %v", goipp.Status(rsp.Code))
	}
	if len(lookup.paused) != 1 || lookup.paused[0] != p {
		t.Errorf("expected Pause to be called exactly once with p")
	}
}

func TestDispatchNonMutatingOpBypassesAuthorizer(t *testing.T) {
	p := testDriverPrinter()
	deny := func(env *Envelope, op goipp.Op) bool { return false }
	srv, _ := testServer(p, deny)

	rq := requestWithPrinterURI(goipp.OpGetPrinterAttributes, "/ipp/print")
	rsp, err := srv.dispatch(rq, &Envelope{})
	if err != nil {
		t.Fatalf("Get-Printer-Attributes is not a mutating operation, should never be denied: %s", err)
	}
	if goipp.Status(rsp.Code) != statusOk {
		t.Errorf("expected statusOk, got %v", goipp.Status(rsp.Code))
	}
}

func TestDispatchExtensionHandlerFallback(t *testing.T) {
	p := testDriverPrinter()
	srv, _ := testServer(p, nil)

	called := false
	srv.ExtensionHandler = func(rq *goipp.Message, env *Envelope) (*goipp.Message, bool) {
		called = true
		return newResponse(statusOk, rq.RequestID), true
	}

	rq := requestWithPrinterURI(goipp.Op(0x7ffe), "/ipp/print")
	rsp, err := srv.dispatch(rq, &Envelope{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !called {
		t.Fatalf("expected the extension handler to run for an unregistered op code")
	}
	if goipp.Status(rsp.Code) != statusOk {
		t.Errorf("expected statusOk from the extension handler, got %v", goipp.Status(rsp.Code))
	}
}

func TestRequestedAttributesSetAll(t *testing.T) {
	rq := requestWithPrinterURI(goipp.OpGetPrinterAttributes, "/ipp/print")

	if set := requestedAttributesSet(rq); set != nil {
		t.Errorf("expected nil (meaning \"all\") when requested-attributes is absent, got %v", set)
	}
}

func TestRequestedAttributesSetExplicit(t *testing.T) {
	rq := requestWithPrinterURI(goipp.OpGetPrinterAttributes, "/ipp/print")
	attr := makeAttr("requested-attributes", goipp.TagKeyword, goipp.String("printer-name"))
	attr.Values.Add(goipp.TagKeyword, goipp.String("printer-state"))
	rq.Operation().Add(attr)

	set := requestedAttributesSet(rq)
	if !set["printer-name"] || !set["printer-state"] {
		t.Errorf("expected both requested names to be present, got %v", set)
	}
	if len(set) != 2 {
		t.Errorf("expected exactly 2 entries, got %d", len(set))
	}
}
