package models

import (
	"time"

	cerrors "cloudeng.io/errors"
)

// SourceResult records what happened to a single input source.
type SourceResult struct {
	Identifier string // Identifier as given on the command line
	Lines      int    // Lines written to the output
	Numbered   int    // Lines that received a counter prefix
	OpenErr    error  // Set when the source could not be opened
	ReadErr    error  // Set when reading stopped early
}

// Failed returns true if the source could not be fully processed.
func (s SourceResult) Failed() bool {
	return s.OpenErr != nil || s.ReadErr != nil
}

// RunResult is the aggregate of one invocation.
type RunResult struct {
	RunID    string         // Unique identifier of this run
	Mode     Mode           // Numbering policy used
	Sources  []SourceResult // One entry per identifier, in order
	Duration time.Duration  // Wall-clock time of the run
	errs     *cerrors.M
}

// NewRunResult creates an empty RunResult for the given run.
func NewRunResult(runID string, mode Mode) *RunResult {
	return &RunResult{
		RunID: runID,
		Mode:  mode,
		errs:  &cerrors.M{},
	}
}

// Add appends a source outcome and records its failure, if any.
func (r *RunResult) Add(s SourceResult) {
	r.Sources = append(r.Sources, s)
	r.errs.Append(s.OpenErr, s.ReadErr)
}

// Opened returns the number of sources that were opened successfully.
func (r *RunResult) Opened() int {
	n := 0
	for _, s := range r.Sources {
		if s.OpenErr == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of sources that failed to open or read.
func (r *RunResult) Failed() int {
	n := 0
	for _, s := range r.Sources {
		if s.Failed() {
			n++
		}
	}
	return n
}

// TotalLines returns the number of lines written across all sources.
func (r *RunResult) TotalLines() int {
	n := 0
	for _, s := range r.Sources {
		n += s.Lines
	}
	return n
}

// Err returns every per-source failure as a single error, or nil.
// Per-source failures never change the exit status; Err exists for logging.
func (r *RunResult) Err() error {
	if r.errs == nil {
		return nil
	}
	return r.errs.Err()
}
