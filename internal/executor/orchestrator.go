package executor

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/harrison/catr/internal/display"
	"github.com/harrison/catr/internal/logger"
	"github.com/harrison/catr/internal/models"
	"github.com/harrison/catr/internal/render"
	"github.com/harrison/catr/internal/source"
)

// Logger defines the interface for logging run progress and results.
type Logger interface {
	LogSourceStart(identifier string)
	LogSourceComplete(result models.SourceResult)
	LogSummary(result models.RunResult)
}

// SourceResolver opens input identifiers.
type SourceResolver interface {
	Resolve(identifier string) (*source.Stream, error)
}

// Orchestrator drives one catr invocation: it resolves every identifier in
// order, renders each opened source with a single shared counter, and reports
// sources that fail without stopping the run.
type Orchestrator struct {
	resolver SourceResolver
	out      *render.Writer
	reporter *display.Reporter
	logger   Logger
	runID    string
}

// NewOrchestrator creates a new Orchestrator instance.
// A nil log discards all events. An empty runID is replaced with a fresh UUID.
func NewOrchestrator(resolver SourceResolver, out *render.Writer, reporter *display.Reporter, log Logger, runID string) *Orchestrator {
	if resolver == nil {
		panic("source resolver cannot be nil")
	}
	if out == nil {
		panic("output writer cannot be nil")
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if runID == "" {
		runID = uuid.NewString()
	}

	return &Orchestrator{
		resolver: resolver,
		out:      out,
		reporter: reporter,
		logger:   log,
		runID:    runID,
	}
}

// Execute processes every identifier of the invocation.
//
// Sources that cannot be opened or read are reported and skipped; they are
// recorded in the result but never returned as an error. The only error
// Execute returns is a failure to write the output, which ends the run.
func (o *Orchestrator) Execute(inv models.Invocation) (*models.RunResult, error) {
	inv = inv.Normalize()
	start := time.Now()

	result := models.NewRunResult(o.runID, inv.Mode)
	counter := render.NewCounter()
	renderer := render.NewRenderer(o.out)

	var runErr error
	for _, identifier := range inv.Files {
		sr, err := o.processSource(identifier, renderer, counter, inv.Mode)
		result.Add(sr)
		if err != nil {
			runErr = err
			break
		}
	}

	if runErr == nil {
		if err := o.out.Flush(); err != nil {
			runErr = &render.WriteError{Err: err}
		}
	}

	result.Duration = time.Since(start)
	o.logger.LogSummary(*result)

	return result, runErr
}

// processSource renders a single source. The returned error is non-nil only
// for output failures.
func (o *Orchestrator) processSource(identifier string, renderer *render.Renderer, counter *render.Counter, mode models.Mode) (models.SourceResult, error) {
	sr := models.SourceResult{Identifier: identifier}
	o.logger.LogSourceStart(identifier)

	stream, err := o.resolver.Resolve(identifier)
	if err != nil {
		sr.OpenErr = err
		if ferr := o.out.Flush(); ferr != nil {
			return sr, &render.WriteError{Err: ferr}
		}
		o.reportOpen(identifier, err)
		o.logComplete(sr)
		return sr, nil
	}
	defer stream.Close()

	// Lines from stdin may arrive slowly or never end, so each one is
	// pushed through as soon as it is rendered.
	if stream.IsStdin() {
		prev := o.out.LineFlush()
		o.out.SetLineFlush(true)
		defer o.out.SetLineFlush(prev)
	}

	stats, err := renderer.Render(stream.Lines(), counter, mode)
	sr.Lines = stats.Lines
	sr.Numbered = stats.Numbered

	var writeErr *render.WriteError
	if errors.As(err, &writeErr) {
		o.logComplete(sr)
		return sr, err
	}

	if ferr := o.out.Flush(); ferr != nil {
		o.logComplete(sr)
		return sr, &render.WriteError{Err: ferr}
	}

	if err != nil {
		sr.ReadErr = err
		o.reportRead(stream.Identifier(), err)
	}

	o.logComplete(sr)
	return sr, nil
}

func (o *Orchestrator) reportOpen(identifier string, err error) {
	if o.reporter == nil {
		return
	}
	var openErr *source.OpenError
	if errors.As(err, &openErr) {
		err = openErr.Err
	}
	o.reporter.OpenFailure(identifier, err)
}

func (o *Orchestrator) reportRead(identifier string, err error) {
	if o.reporter == nil {
		return
	}
	var readErr *source.ReadError
	if errors.As(err, &readErr) {
		err = readErr.Err
	}
	o.reporter.ReadFailure(identifier, err)
}

func (o *Orchestrator) logComplete(sr models.SourceResult) {
	o.logger.LogSourceComplete(sr)
}
