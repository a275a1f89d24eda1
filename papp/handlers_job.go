// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Job-scoped operation handlers

package papp

import (
	"bytes"
	"io"
	"sort"

	"github.com/OpenPrinting/go-mfp/proto/ipp"
	"github.com/OpenPrinting/goipp"
)

// validateAndRespond runs the job-template validator against rq under
// p's read lock and, on failure, populates resp's unsupported group
// and status. It returns false if validation failed.
func validateAndRespond(srv *Server, p *Printer, rq *ipp.JobAttributes, resp *goipp.Message) bool {
	if srv.System.ShutdownPending() {
		resp.Code = goipp.Code(statusNotAcceptingJobs)
		return false
	}

	fails := &failureSet{}
	if !ValidateJobAttributes(p, rq, fails) {
		fails.apply(resp)
		resp.Code = goipp.Code(statusAttributesNotSupported)
		return false
	}
	return true
}

func jobName(rq *ipp.JobAttributes) string {
	return rq.JobName.GetOr("Untitled")
}

func jobURI(p *Printer, id int) string {
	return "ipp://" + p.ResourcePath + "/" + itoa(id)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func handlePrintJob(srv *Server, p *Printer, rq *goipp.Message, env *Envelope) *goipp.Message {
	resp := newResponse(statusOk, rq.RequestID)

	rqAttrs := parseJobAttributes(*rq.Job())
	ok := validateAndRespond(srv, p, rqAttrs, resp)
	if !ok {
		discardDocument(env)
		return resp
	}

	document, hasDocument := peekDocumentData(env)
	if !hasDocument {
		resp.Code = goipp.Code(statusBadRequest)
		setStatusMessage(resp, "No document data.")
		return resp
	}

	name, _ := stringOperationAttr(rq, "document-format")
	job := srv.Jobs.CreateJob(p, 0, env.Username, name, jobName(rqAttrs), rqAttrs)
	if job == nil {
		io.Copy(io.Discard, document)
		resp.Code = goipp.Code(statusBusy)
		return resp
	}

	p.Lock()
	p.AddJob(job)
	p.Unlock()

	srv.Jobs.CopyDocumentData(io.Discard, document)

	addJobIdentity(resp, p, job)
	return resp
}

// peekDocumentData reads the first byte of env.Body to tell whether
// the client actually sent document data, returning a reader that
// still yields that byte to the caller. Print-Job requires document
// data to be present; an empty body is a client error.
func peekDocumentData(env *Envelope) (io.Reader, bool) {
	if env.Body == nil {
		return nil, false
	}
	var first [1]byte
	n, _ := env.Body.Read(first[:])
	if n == 0 {
		return nil, false
	}
	return io.MultiReader(bytes.NewReader(first[:n]), env.Body), true
}

func handleValidateJob(srv *Server, p *Printer, rq *goipp.Message, env *Envelope) *goipp.Message {
	resp := newResponse(statusOk, rq.RequestID)
	rqAttrs := parseJobAttributes(*rq.Job())
	validateAndRespond(srv, p, rqAttrs, resp)
	return resp
}

func handleCreateJob(srv *Server, p *Printer, rq *goipp.Message, env *Envelope) *goipp.Message {
	resp := newResponse(statusOk, rq.RequestID)

	rqAttrs := parseJobAttributes(*rq.Job())
	if !validateAndRespond(srv, p, rqAttrs, resp) {
		return resp
	}

	name, _ := stringOperationAttr(rq, "document-format")
	job := srv.Jobs.CreateJob(p, 0, env.Username, name, jobName(rqAttrs), rqAttrs)
	if job == nil {
		resp.Code = goipp.Code(statusBusy)
		return resp
	}

	p.Lock()
	p.AddJob(job)
	p.Unlock()

	addJobIdentity(resp, p, job)
	return resp
}

func addJobIdentity(resp *goipp.Message, p *Printer, job Job) {
	resp.Job().Add(makeAttr("job-id", goipp.TagInteger, goipp.Integer(job.ID())))
	resp.Job().Add(makeAttr("job-uri", goipp.TagURI, goipp.String(jobURI(p, job.ID()))))
	resp.Job().Add(makeAttr("job-state", goipp.TagEnum, goipp.Integer(job.State())))
	resp.Job().Add(makeAttr("job-state-message", goipp.TagText, goipp.String(job.State().String())))

	reasons := job.StateReasons()
	if len(reasons) == 0 {
		reasons = []string{"none"}
	}
	values := make([]goipp.Value, len(reasons))
	for i, r := range reasons {
		values[i] = goipp.String(r)
	}
	attr := makeAttr("job-state-reasons", goipp.TagKeyword, values[0])
	for _, v := range values[1:] {
		attr.Values.Add(goipp.TagKeyword, v)
	}
	resp.Job().Add(attr)
}

func discardDocument(env *Envelope) {
	if env.Body != nil {
		io.Copy(io.Discard, env.Body)
	}
}

func handleCancelCurrentJob(srv *Server, p *Printer, rq *goipp.Message, env *Envelope) *goipp.Message {
	resp := newResponse(statusOk, rq.RequestID)

	p.RLock()
	job := p.ProcessingJob
	p.RUnlock()

	if job == nil {
		resp.Code = goipp.Code(statusNotFound)
		setStatusMessage(resp, "No currently printing job.")
		return resp
	}
	if job.State().Terminal() {
		resp.Code = goipp.Code(statusNotPossible)
		return resp
	}

	srv.Jobs.CancelJob(job)
	return resp
}

func handleCancelJobs(srv *Server, p *Printer, rq *goipp.Message, env *Envelope) *goipp.Message {
	resp := newResponse(statusOk, rq.RequestID)
	srv.Jobs.CancelAll(p)
	return resp
}

func handleCancelMyJobs(srv *Server, p *Printer, rq *goipp.Message, env *Envelope) *goipp.Message {
	return handleCancelJobs(srv, p, rq, env)
}

func handleGetJobs(srv *Server, p *Printer, rq *goipp.Message, env *Envelope) *goipp.Message {
	resp := newResponse(statusOk, rq.RequestID)

	which, _ := stringOperationAttr(rq, "which-jobs")
	if which == "" {
		which = "not-completed"
	}

	myJobs, _ := boolOperationAttr(rq, "my-jobs")
	username, hasUser := stringOperationAttr(rq, "requesting-user-name")
	if myJobs && !hasUser {
		resp.Code = goipp.Code(statusBadRequest)
		return resp
	}

	limit, hasLimit := intOperationAttr(rq, "limit")

	p.RLock()
	var jobs []Job
	switch which {
	case "not-completed":
		jobs = append(jobs, p.ActiveJobs()...)
		sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].State() < jobs[j].State() })
	case "completed":
		jobs = append(jobs, p.CompletedJobs()...)
	case "all":
		jobs = append(jobs, p.AllJobs()...)
	default:
		p.RUnlock()
		resp.Code = goipp.Code(statusAttributesNotSupported)
		return resp
	}
	p.RUnlock()

	n := 0
	for _, j := range jobs {
		if myJobs && j.Username() != username {
			continue
		}
		if hasLimit && n >= limit {
			break
		}
		n++

		group := &goipp.Attributes{}
		group.Add(makeAttr("job-id", goipp.TagInteger, goipp.Integer(j.ID())))
		group.Add(makeAttr("job-uri", goipp.TagURI, goipp.String(jobURI(p, j.ID()))))
		group.Add(makeAttr("job-name", goipp.TagName, goipp.String(j.Name())))
		group.Add(makeAttr("job-state", goipp.TagEnum, goipp.Integer(j.State())))
		group.Add(makeAttr("job-originating-user-name", goipp.TagName, goipp.String(j.Username())))
		resp.Groups = append(resp.Groups, &goipp.AttributeGroup{
			Tag:   goipp.TagJobGroup,
			Attrs: *group,
		})
	}

	return resp
}
