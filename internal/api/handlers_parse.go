package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/edgarparse/internal/parser"
	"github.com/dgallion1/edgarparse/internal/pipeline"
	"github.com/dgallion1/edgarparse/internal/report"
	"github.com/dgallion1/edgarparse/internal/schema"
)

var errTooLarge = errors.New("upload too large")

type parseResult struct {
	kind    parser.Kind
	doc     any
	summary report.Summary
	err     error
}

// handleParse parses one document synchronously. The body is either the raw
// XML or a multipart form with a "file" part.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var kind parser.Kind
	if k := chi.URLParam(r, "kind"); k != "" {
		parsed, err := parser.ParseKind(k)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		kind = parsed
	}

	opts, err := requestOptions(r, s.opts)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	switch format {
	case "":
		format = "json"
	case "json", "markdown", "html":
	default:
		jsonError(w, fmt.Sprintf("unsupported format %q (want json, markdown or html)", format), http.StatusBadRequest)
		return
	}

	data, _, err := s.readUpload(w, r)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(data) == 0 {
		jsonError(w, "empty document", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if s.cfg.ParseTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ParseTimeout)
		defer cancel()
	}

	done := make(chan parseResult, 1)
	go func() {
		k := kind
		if k == "" {
			detected, err := parser.Detect(data)
			if err != nil {
				done <- parseResult{err: err}
				return
			}
			k = detected
		}
		doc, summary, err := pipeline.ParseDocument(k, opts, data, s.orchestrator.Metrics())
		done <- parseResult{kind: k, doc: doc, summary: summary, err: err}
	}()

	var res parseResult
	select {
	case <-ctx.Done():
		s.log.Warn("parse abandoned", "error", ctx.Err(), "bytes", len(data))
		jsonError(w, "parse timed out", http.StatusGatewayTimeout)
		return
	case res = <-done:
	}

	if res.err != nil {
		parseError(w, res.err)
		return
	}

	switch format {
	case "markdown", "html":
		md, err := report.Markdown(res.doc)
		if err != nil {
			jsonError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if format == "markdown" {
			w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
			io.WriteString(w, md)
			return
		}
		page, err := report.HTML(md)
		if err != nil {
			jsonError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, page)
	default:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"kind":     res.kind,
			"title":    res.summary.Title,
			"items":    res.summary.Items,
			"document": res.doc,
		})
	}
}

// readUpload returns the document bytes and a file name. Multipart bodies
// must carry a "file" part; anything else is read as the document itself.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	// Extra 1MB for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	var (
		src      io.Reader = r.Body
		filename           = "document.xml"
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return nil, "", uploadError("invalid multipart form", err)
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", fmt.Errorf("file is required: %w", err)
		}
		defer file.Close()
		filename = sanitizeFilename(header.Filename)
		if !parser.IsSupportedExtension(filename) {
			return nil, "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
		}
		src = file
	}

	data, err := io.ReadAll(io.LimitReader(src, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return nil, "", uploadError("failed to read body", err)
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, "", errTooLarge
	}
	return data, filename, nil
}

func uploadError(msg string, err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errTooLarge
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// requestOptions applies the policy, ownership_policy, thirteenf_policy and
// reject_unresolved query parameters on top of base.
func requestOptions(r *http.Request, base parser.Options) (parser.Options, error) {
	q := r.URL.Query()
	opts := base
	if v := q.Get("policy"); v != "" {
		p, err := schema.ParsePolicy(v)
		if err != nil {
			return opts, err
		}
		opts.OwnershipPolicy = p
		opts.ThirteenFPolicy = p
	}
	if v := q.Get("ownership_policy"); v != "" {
		p, err := schema.ParsePolicy(v)
		if err != nil {
			return opts, err
		}
		opts.OwnershipPolicy = p
	}
	if v := q.Get("thirteenf_policy"); v != "" {
		p, err := schema.ParsePolicy(v)
		if err != nil {
			return opts, err
		}
		opts.ThirteenFPolicy = p
	}
	if v := q.Get("reject_unresolved"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("reject_unresolved: %w", err)
		}
		opts.RejectUnresolvedContexts = b
	}
	return opts, nil
}

// parseError reports a document error as 422 with its classification.
func parseError(w http.ResponseWriter, err error) {
	kind := pipeline.ErrorKind(err)
	code := http.StatusUnprocessableEntity
	if kind == "internal" {
		code = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error(), "kind": kind})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
