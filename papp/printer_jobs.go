// MFP - Miulti-Function Printers and scanners toolkit
// Printer Application core
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Printer job indexes

package papp

import (
	"time"

	"github.com/OpenPrinting/goipp"
)

// NewPrinter creates a [Printer] in the IDLE state with the given
// identity and driver data. The caller (the Printer Manager) is
// responsible for assigning a unique ID and UUID.
func NewPrinter(id int, name, uuid, resourcePath string, driver DriverData) *Printer {
	now := time.Now()
	p := &Printer{
		ID:           id,
		Name:         name,
		UUID:         uuid,
		ResourcePath: resourcePath,
		Driver:       driver,
		ReadyMedia:   make([]ReadyMediaSlot, len(driver.Sources)),
		State:        PrinterStateIdle,
		StartTime:    now,
		ConfigTime:   now,
		StateTime:    now,
		vendorAttrs:  make(map[string]goipp.Attribute),
	}
	for i := range p.ReadyMedia {
		p.ReadyMedia[i].Empty = true
	}
	return p
}

// AddJob records a newly-created job in the active and all-jobs
// indexes. Callers must hold the printer's write lock.
func (p *Printer) AddJob(j Job) {
	p.allJobs = append(p.allJobs, j)
	p.activeJobs = append(p.activeJobs, j)
}

// RefreshJobIndexes moves any job that has reached a terminal state
// from the active index to the completed index. The Job Manager calls
// this after effecting a state transition; callers must hold the
// printer's write lock.
func (p *Printer) RefreshJobIndexes() {
	var active []Job
	for _, j := range p.activeJobs {
		if j.State().Terminal() {
			p.completedJobs = append(p.completedJobs, j)
		} else {
			active = append(active, j)
		}
	}
	p.activeJobs = active

	if p.ProcessingJob != nil && p.ProcessingJob.State().Terminal() {
		p.ProcessingJob = nil
	}
}

// ActiveJobs returns the active-jobs index (non-terminal states),
// ordered by ascending submission. Callers must hold at least the
// printer's read lock; the returned slice must not be mutated.
func (p *Printer) ActiveJobs() []Job { return p.activeJobs }

// CompletedJobs returns the completed-jobs index (terminal states:
// canceled, aborted, completed), ordered by ascending submission, as
// of the last RefreshJobIndexes. Callers must hold at
// least the printer's read lock.
func (p *Printer) CompletedJobs() []Job { return p.completedJobs }

// AllJobs returns the union of ActiveJobs and CompletedJobs, ordered
// by ascending submission. Callers must hold at least the printer's
// read lock.
func (p *Printer) AllJobs() []Job { return p.allJobs }

// QueuedJobCount returns the size of the active-jobs index.
func (p *Printer) QueuedJobCount() int { return len(p.activeJobs) }
