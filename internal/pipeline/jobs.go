package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dgallion1/edgarparse/internal/parser"
	"github.com/dgallion1/edgarparse/internal/report"
)

// JobStatus represents the state of a parse job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusDetecting  JobStatus = "detecting"
	StatusParsing    JobStatus = "parsing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
	StatusDupSkipped JobStatus = "duplicate_skipped"
)

// Job tracks the state of a single document parse.
type Job struct {
	mu sync.Mutex

	ID       string      `json:"job_id"`
	Filename string      `json:"filename"`
	Kind     parser.Kind `json:"kind"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	ContentHash string    `json:"content_hash,omitempty"`
	DuplicateOf string    `json:"duplicate_of,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Internal: not serialized.
	opts      parser.Options
	fileData  []byte
	summary   report.Summary
	document  any
	errorKind string
	errors    []string
}

// NewJob creates a queued job for one file. An empty kind means detect.
func NewJob(filename string, kind parser.Kind, opts parser.Options, data []byte) *Job {
	now := time.Now()
	return &Job{
		ID:          uuid.NewString(),
		Filename:    filename,
		Kind:        kind,
		Status:      StatusQueued,
		Phase:       "queued",
		ContentHash: ContentHashHex(data),
		CreatedAt:   now,
		UpdatedAt:   now,
		opts:        opts,
		fileData:    data,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// FindCompleted returns a completed job other than exclude whose input and
// options match, or nil.
func (s *JobStore) FindCompleted(hash string, kind parser.Kind, opts parser.Options, exclude string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, job := range s.jobs {
		if id == exclude {
			continue
		}
		job.mu.Lock()
		match := job.Status == StatusCompleted && job.ContentHash == hash && job.Kind == kind && job.opts == opts
		job.mu.Unlock()
		if match {
			return job
		}
	}
	return nil
}

// Len returns the number of tracked jobs.
func (s *JobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		job.mu.Lock()
		expired := now.Sub(job.UpdatedAt) > s.ttl
		job.mu.Unlock()
		if expired {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// SetKind records the detected document kind.
func (j *Job) SetKind(kind parser.Kind) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Kind = kind
	j.UpdatedAt = time.Now()
}

// Fail records an error with its classification and marks the job failed.
func (j *Job) Fail(phase, errKind, msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, msg)
	j.errorKind = errKind
	j.Status = StatusFailed
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// Complete stores the parse result, releases the input and marks the job done.
func (j *Job) Complete(doc any, summary report.Summary) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.document = doc
	j.summary = summary
	j.fileData = nil
	j.Status = StatusCompleted
	j.Phase = "done"
	j.UpdatedAt = time.Now()
}

// MarkDuplicate copies the result of an earlier identical job.
func (j *Job) MarkDuplicate(of *Job) {
	doc, summary := of.Result()
	j.mu.Lock()
	defer j.mu.Unlock()
	j.document = doc
	j.summary = summary
	j.fileData = nil
	j.DuplicateOf = of.ID
	j.Status = StatusDupSkipped
	j.Phase = "dedup"
	j.UpdatedAt = time.Now()
}

// Result returns the parsed document and its summary.
func (j *Job) Result() (any, report.Summary) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.document, j.summary
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// Options returns the parser options the job was submitted with.
func (j *Job) Options() parser.Options {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.opts
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID          string      `json:"job_id"`
	Filename    string      `json:"filename"`
	Kind        parser.Kind `json:"kind,omitempty"`
	Status      JobStatus   `json:"status"`
	Phase       string      `json:"phase"`
	ContentHash string      `json:"content_hash"`
	DuplicateOf string      `json:"duplicate_of,omitempty"`
	Title       string      `json:"title,omitempty"`
	Items       int         `json:"items"`
	ErrorKind   string      `json:"error_kind,omitempty"`
	Errors      []string    `json:"errors"`
	Document    any         `json:"document,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := append([]string{}, j.errors...)
	return JobSnapshot{
		ID:          j.ID,
		Filename:    j.Filename,
		Kind:        j.Kind,
		Status:      j.Status,
		Phase:       j.Phase,
		ContentHash: j.ContentHash,
		DuplicateOf: j.DuplicateOf,
		Title:       j.summary.Title,
		Items:       j.summary.Items,
		ErrorKind:   j.errorKind,
		Errors:      errs,
		Document:    j.document,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
