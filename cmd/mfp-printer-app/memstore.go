// MFP                   - Miulti-Function Printers and scanners toolkit
// cmd/mfp-printer-app   - IPP Printer Application process
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// In-memory Printer/Job Manager and System, standing in for the
// collaborators a real Printer Application shell would otherwise
// supply (persistent job storage, device I/O, system policy).

package main

import (
	"io"
	"sync"
	"time"

	"github.com/OpenPrinting/go-mfp/papp"
	"github.com/OpenPrinting/go-mfp/proto/ipp"
	"github.com/OpenPrinting/goipp"
)

// memJob is the minimal [papp.Job] a single-process demo needs: it
// never actually renders anything, just tracks state.
type memJob struct {
	id         int
	state      papp.JobState
	username   string
	name       string
	submitTime time.Time
}

func (j *memJob) ID() int                  { return j.id }
func (j *memJob) State() papp.JobState     { return j.state }
func (j *memJob) StateReasons() []string   { return nil }
func (j *memJob) Username() string         { return j.username }
func (j *memJob) Name() string             { return j.name }
func (j *memJob) SubmitTime() time.Time    { return j.submitTime }

// memManager is a single-process, in-memory [papp.JobManager] and
// [papp.PrinterLookup]: it hands out sequential job ids and
// immediately marks every job completed, since there is no real
// device behind this demo. Unlike a real Printer Manager, it does not
// persist anything across restarts.
type memManager struct {
	mu       sync.Mutex
	printers map[string]*papp.Printer
	nextJob  int
}

func newMemManager() *memManager {
	return &memManager{printers: make(map[string]*papp.Printer)}
}

func (m *memManager) addPrinter(path string, p *papp.Printer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.printers[path] = p
}

// Lookup implements [papp.PrinterLookup].
func (m *memManager) Lookup(printerURI string) *papp.Printer {
	m.mu.Lock()
	defer m.mu.Unlock()
	for path, p := range m.printers {
		if hasSuffixPath(printerURI, path) {
			return p
		}
	}
	return nil
}

func hasSuffixPath(uri, path string) bool {
	if len(uri) < len(path) {
		return false
	}
	return uri[len(uri)-len(path):] == path
}

// Pause implements [papp.PrinterLookup].
func (m *memManager) Pause(p *papp.Printer) {
	p.Lock()
	p.IsStopped = false
	p.State = papp.PrinterStateStopped
	p.StateTime = time.Now()
	p.Unlock()
}

// Resume implements [papp.PrinterLookup].
func (m *memManager) Resume(p *papp.Printer) {
	p.Lock()
	p.State = papp.PrinterStateIdle
	p.StateTime = time.Now()
	p.Unlock()
}

// CreateJob implements [papp.JobManager].
func (m *memManager) CreateJob(p *papp.Printer, idHint int, username, formatHint, name string,
	rq *ipp.JobAttributes) papp.Job {

	m.mu.Lock()
	m.nextJob++
	id := m.nextJob
	m.mu.Unlock()

	return &memJob{
		id:         id,
		state:      papp.JobStateCompleted,
		username:   username,
		name:       name,
		submitTime: time.Now(),
	}
}

// CancelJob implements [papp.JobManager]. The demo manager completes
// jobs synchronously, so there is never anything left to cancel.
func (m *memManager) CancelJob(j papp.Job) {}

// CancelAll implements [papp.JobManager].
func (m *memManager) CancelAll(p *papp.Printer) {}

// CopyDocumentData implements [papp.JobManager]: the demo discards
// document data rather than spooling it.
func (m *memManager) CopyDocumentData(dst io.Writer, src io.Reader) (int64, error) {
	return io.Copy(dst, src)
}

// memSystem is a minimal [papp.System] for a single, TLS-less,
// unauthenticated demo instance.
type memSystem struct {
	mu      sync.RWMutex
	changed int
}

func (s *memSystem) ShutdownPending() bool       { return false }
func (s *memSystem) AuthServiceConfigured() bool { return false }
func (s *memSystem) TLSOnly() bool               { return false }
func (s *memSystem) TLSDisabled() bool           { return true }

func (s *memSystem) ExportVersions(attrs *goipp.Attributes, requested map[string]bool) {}

func (s *memSystem) ConfigChanged() {
	s.mu.Lock()
	s.changed++
	s.mu.Unlock()
}

func (s *memSystem) Resources() []papp.Resource { return nil }
