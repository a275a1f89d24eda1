// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Operation dispatcher

package papp

import (
	"errors"
	"io"
	"net/http"

	"github.com/OpenPrinting/go-mfp/log"
	"github.com/OpenPrinting/go-mfp/transport"
	"github.com/OpenPrinting/goipp"
)

// Envelope carries the parts of the inbound HTTP request the core
// needs but does not itself parse: the authenticated username (empty
// if anonymous), whether the connection is TLS, and the raw document
// body reader positioned just past the decoded IPP message.
type Envelope struct {
	Username string
	TLS      bool
	Body     io.ReadCloser
}

// opHandler is the signature every per-operation handler implements.
type opHandler func(srv *Server, p *Printer, rq *goipp.Message, env *Envelope) *goipp.Message

// ExtensionHandler lets an installer handle operation codes this
// dispatcher doesn't know about. It returns ok=false to fall through
// to operation-not-supported.
type ExtensionHandler func(rq *goipp.Message, env *Envelope) (rsp *goipp.Message, ok bool)

// Authorizer decides whether a mutating operation may proceed.
// Returning false means the caller should respond with an HTTP
// status (not an IPP response): authorization failures are rejected
// at the transport level, before an IPP response is ever built.
type Authorizer func(env *Envelope, op goipp.Op) bool

// PrinterLookup resolves a request's "printer-uri" to the [Printer] it
// names, and exposes the two state transitions that remain the
// Printer Manager's responsibility: Pause-Printer and Resume-Printer
// delegate to Printer Manager's pause/resume, which transitions state.
// It is implemented by the external Printer Manager, which owns
// printers by id; the dispatcher only ever consults it.
type PrinterLookup interface {
	Lookup(printerURI string) *Printer

	// Pause begins transitioning p toward PrinterStateStopped.
	Pause(p *Printer)

	// Resume transitions p back to PrinterStateIdle.
	Resume(p *Printer)
}

// Server is the operation dispatcher: a fixed table from IPP
// operation code to handler, built once at construction time. It
// implements [http.Handler].
type Server struct {
	Printers         PrinterLookup
	System           System
	Jobs             JobManager
	Authorize        Authorizer
	ExtensionHandler ExtensionHandler

	table map[goipp.Op]opHandler
}

// NewServer creates a [Server] wired to the given collaborators, with
// every operation handler registered.
func NewServer(printers PrinterLookup, sys System, jobs JobManager, authz Authorizer) *Server {
	srv := &Server{
		Printers:  printers,
		System:    sys,
		Jobs:      jobs,
		Authorize: authz,
	}

	srv.table = map[goipp.Op]opHandler{
		goipp.OpPrintJob:              handlePrintJob,
		goipp.OpValidateJob:           handleValidateJob,
		goipp.OpCreateJob:             handleCreateJob,
		goipp.OpCancelJob:             handleCancelCurrentJob,
		goipp.OpCancelJobs:            handleCancelJobs,
		goipp.OpCancelMyJobs:          handleCancelMyJobs,
		goipp.OpGetJobs:               handleGetJobs,
		goipp.OpGetPrinterAttributes:  handleGetPrinterAttributes,
		goipp.OpSetPrinterAttributes:  handleSetPrinterAttributes,
		goipp.OpIdentifyPrinter:       handleIdentifyPrinter,
		goipp.OpPausePrinter:          handlePausePrinter,
		goipp.OpResumePrinter:         handleResumePrinter,
	}

	return srv
}

// ServeHTTP decodes the IPP request, dispatches it to the matching
// handler (or the extension handler, or operation-not-supported), and
// writes the encoded response. It implements [http.Handler].
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	peeker := transport.NewPeeker(r.Body)
	defer peeker.Close()

	var msg goipp.Message
	if err := msg.Decode(peeker); err != nil {
		log.Debug(ctx, "papp: decoding IPP message: %s", err)
		srv.writeResponse(w, errorResponse(statusBadRequest, 0))
		return
	}

	// The message header and attribute groups are fully consumed; stop
	// buffering so the document data that follows streams straight
	// through instead of being held in the peeker's replay buffer.
	peeker.Replace(nil)

	env := &Envelope{
		Username: requestingUserName(&msg),
		TLS:      r.TLS != nil,
		Body:     io.NopCloser(peeker),
	}

	rsp, err := srv.dispatch(&msg, env)
	if err != nil {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	srv.writeResponse(w, rsp)
}

// mutatingOps lists the operations that require authorization before
// the handler runs at all.
var mutatingOps = map[goipp.Op]bool{
	goipp.OpCancelJobs:           true,
	goipp.OpCancelMyJobs:         true,
	goipp.OpSetPrinterAttributes: true,
	goipp.OpPausePrinter:         true,
	goipp.OpResumePrinter:        true,
}

// errAuthDenied signals that dispatch must surface an HTTP-level
// rejection instead of an IPP response.
var errAuthDenied = errors.New("papp: authorization denied")

func (srv *Server) dispatch(rq *goipp.Message, env *Envelope) (*goipp.Message, error) {
	op := goipp.Op(rq.Code)

	p := srv.Printers.Lookup(printerURIValue(rq))
	if p == nil {
		return errorResponse(statusNotFound, rq.RequestID), nil
	}

	handler, ok := srv.table[op]
	if !ok {
		if srv.ExtensionHandler != nil {
			if rsp, handled := srv.ExtensionHandler(rq, env); handled {
				return rsp, nil
			}
		}
		return errorResponse(statusOperationNotSupported, rq.RequestID), nil
	}

	if mutatingOps[op] && srv.Authorize != nil && !srv.Authorize(env, op) {
		return nil, errAuthDenied
	}

	return handler(srv, p, rq, env), nil
}

func (srv *Server) writeResponse(w http.ResponseWriter, rsp *goipp.Message) {
	data, err := rsp.EncodeBytes()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/ipp")
	w.Write(data)
}

// newResponse builds a response with the mandatory operation
// attributes every handler must carry (RFC8011 3.1.4.2).
func newResponse(status goipp.Status, requestID uint32) *goipp.Message {
	rsp := &goipp.Message{
		Version:   goipp.MakeVersion(2, 0),
		Code:      goipp.Code(status),
		RequestID: requestID,
	}
	rsp.Operation().Add(makeAttr("attributes-charset", goipp.TagCharset, goipp.String("utf-8")))
	rsp.Operation().Add(makeAttr("attributes-natural-language", goipp.TagLanguage, goipp.String("en")))
	return rsp
}

func errorResponse(status goipp.Status, requestID uint32) *goipp.Message {
	return newResponse(status, requestID)
}

// setStatusMessage adds (or replaces) the operation-group
// "status-message" attribute, the human-readable text accompanying a
// response's status code.
func setStatusMessage(resp *goipp.Message, text string) {
	op := resp.Operation()
	for i, attr := range *op {
		if attr.Name == "status-message" {
			(*op)[i] = makeAttr("status-message", goipp.TagText, goipp.String(text))
			return
		}
	}
	op.Add(makeAttr("status-message", goipp.TagText, goipp.String(text)))
}

func requestingUserName(msg *goipp.Message) string {
	s, _ := stringOperationAttr(msg, "requesting-user-name")
	return s
}

func printerURIValue(msg *goipp.Message) string {
	s, _ := stringOperationAttr(msg, "printer-uri")
	return s
}

func stringOperationAttr(msg *goipp.Message, name string) (string, bool) {
	for _, attr := range *msg.Operation() {
		if attr.Name == name && len(attr.Values) > 0 {
			if s, ok := attr.Values[0].V.(goipp.String); ok {
				return string(s), true
			}
		}
	}
	return "", false
}

func intOperationAttr(msg *goipp.Message, name string) (int, bool) {
	for _, attr := range *msg.Operation() {
		if attr.Name == name && len(attr.Values) > 0 {
			if i, ok := attr.Values[0].V.(goipp.Integer); ok {
				return int(i), true
			}
		}
	}
	return 0, false
}

func boolOperationAttr(msg *goipp.Message, name string) (bool, bool) {
	for _, attr := range *msg.Operation() {
		if attr.Name == name && len(attr.Values) > 0 {
			if b, ok := attr.Values[0].V.(goipp.Boolean); ok {
				return bool(b), true
			}
		}
	}
	return false, false
}

func requestedAttributesSet(msg *goipp.Message) map[string]bool {
	var names []string
	for _, attr := range *msg.Operation() {
		if attr.Name == "requested-attributes" {
			for _, v := range attr.Values {
				if s, ok := v.V.(goipp.String); ok {
					names = append(names, string(s))
				}
			}
		}
	}
	if len(names) == 0 {
		return nil // "all"
	}

	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
