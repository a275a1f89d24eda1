// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Job state store and Job Manager contract

package papp

import (
	"io"
	"time"

	"github.com/OpenPrinting/go-mfp/proto/ipp"
)

// JobState is the IPP job-state enum (RFC8011 4.3.7).
type JobState int

// JobState values.
const (
	JobStatePending JobState = iota + 3
	JobStateHeld
	JobStateProcessing
	JobStateStopped
	JobStateCanceled
	JobStateAborted
	JobStateCompleted
)

// Terminal reports whether the state is a terminal (completed) state:
// CANCELED, ABORTED, or COMPLETED.
func (s JobState) Terminal() bool {
	return s >= JobStateCanceled
}

// String returns the IPP keyword for the state.
func (s JobState) String() string {
	switch s {
	case JobStatePending:
		return "pending"
	case JobStateHeld:
		return "held"
	case JobStateProcessing:
		return "processing"
	case JobStateStopped:
		return "stopped"
	case JobStateCanceled:
		return "canceled"
	case JobStateAborted:
		return "aborted"
	case JobStateCompleted:
		return "completed"
	}
	return "unknown"
}

// Job is the core's read-only view of a print job. The job's actual
// lifecycle (state transitions, document rendering) is owned by the
// JobManager collaborator; the core only creates, cancels, and reads.
type Job interface {
	// ID returns the job's numeric identifier, unique within the
	// printer that owns it.
	ID() int

	// State returns the job's current state.
	State() JobState

	// StateReasons returns the job's current state-reasons keywords.
	StateReasons() []string

	// Username returns the submitting user, or "" if anonymous.
	Username() string

	// Name returns the job's "job-name", as submitted or defaulted.
	Name() string

	// SubmitTime returns when the job was created.
	SubmitTime() time.Time
}

// JobManager is the core's outbound contract for job lifecycle
// management: creation, cancellation, and document-data transfer. The
// core enqueues and cancels jobs through this interface; it never
// renders or spools document data itself.
type JobManager interface {
	// CreateJob creates a new job on behalf of a validated request.
	// idHint, when non-zero, requests a specific job id (used by
	// Create-Job followed by a separate Send-Document, out of scope
	// here); a value of 0 means "assign the next id". It returns nil
	// if the printer cannot currently accept a job (the core maps
	// this to server-error-busy).
	CreateJob(p *Printer, idHint int, username, formatHint, name string,
		rq *ipp.JobAttributes) Job

	// CancelJob requests cancellation of j. The manager effects the
	// state transition asynchronously; the core does not wait for it.
	CancelJob(j Job)

	// CancelAll cancels every non-terminal job owned by p.
	CancelAll(p *Printer)

	// CopyDocumentData streams document data from src (the HTTP
	// request body, already past the IPP attribute groups) into the
	// manager's spool for the job being created. It returns the
	// number of bytes copied.
	CopyDocumentData(dst io.Writer, src io.Reader) (int64, error)
}
