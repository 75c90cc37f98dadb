package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dgallion1/edgarparse/internal/edgarerr"
	"github.com/dgallion1/edgarparse/internal/metrics"
	"github.com/dgallion1/edgarparse/internal/parser"
	"github.com/dgallion1/edgarparse/internal/report"
)

// Worker processes a single document job.
type Worker struct {
	jobs    *JobStore
	metrics *metrics.Recorder
	log     *slog.Logger
}

func NewWorker(jobs *JobStore, rec *metrics.Recorder, log *slog.Logger) *Worker {
	return &Worker{
		jobs:    jobs,
		metrics: rec,
		log:     log,
	}
}

// Process detects, parses and summarizes one job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)
	data := job.FileData()
	opts := job.Options()

	// Phase 1: Detect
	kind := job.Kind
	if kind == "" {
		job.SetStatus(StatusDetecting, "detecting")
		detected, err := parser.Detect(data)
		if err != nil {
			log.Error("detect failed", "error", err)
			job.Fail("detecting", ErrorKind(err), err.Error())
			return
		}
		kind = detected
		job.SetKind(kind)
	}
	log = log.With("kind", kind)

	if ctx.Err() != nil {
		job.Fail("parsing", "canceled", ctx.Err().Error())
		return
	}

	// Phase 1.5: Dedup check
	if prior := w.jobs.FindCompleted(job.ContentHash, kind, opts, job.ID); prior != nil {
		log.Info("duplicate document, reusing result", "existing_job_id", prior.ID)
		job.MarkDuplicate(prior)
		return
	}

	// Phase 2: Parse
	job.SetStatus(StatusParsing, "parsing")
	doc, summary, err := ParseDocument(kind, opts, data, w.metrics)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.Fail("parsing", ErrorKind(err), err.Error())
		return
	}

	job.Complete(doc, summary)
	log.Info("parse complete", "bytes", len(data), "items", summary.Items)
}

// ParseDocument parses data as kind, summarizes it and records metrics.
func ParseDocument(kind parser.Kind, opts parser.Options, data []byte, rec *metrics.Recorder) (any, report.Summary, error) {
	p, err := parser.ForKind(kind, opts)
	if err != nil {
		return nil, report.Summary{}, err
	}

	start := time.Now()
	doc, err := p.Parse(bytes.NewReader(data))
	elapsed := time.Since(start)
	if err != nil {
		if rec != nil {
			rec.RecordParse(string(kind), len(data), 0, elapsed, ErrorKind(err))
		}
		return nil, report.Summary{}, err
	}

	summary, err := report.Summarize(doc)
	if err != nil {
		return nil, report.Summary{}, err
	}
	if rec != nil {
		rec.RecordParse(string(kind), len(data), summary.Items, elapsed, "")
	}
	return doc, summary, nil
}

// ErrorKind classifies a parse or detection error for clients and metrics.
func ErrorKind(err error) string {
	if k := edgarerr.Kind(err); k != "" {
		return k
	}
	if errors.Is(err, parser.ErrUnknownKind) {
		return "unknown_kind"
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "canceled"
	}
	return "internal"
}
