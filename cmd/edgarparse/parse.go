package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/dgallion1/edgarparse/internal/metrics"
	"github.com/dgallion1/edgarparse/internal/parser"
	"github.com/dgallion1/edgarparse/internal/pipeline"
	"github.com/dgallion1/edgarparse/internal/report"
	"github.com/dgallion1/edgarparse/internal/schema"
)

type parseFlags struct {
	kind             string
	policy           string
	rejectUnresolved bool
	format           string
	jobs             int
}

// fileResult is one parsed input. Error is set instead of Document on failure.
type fileResult struct {
	File      string      `json:"file"`
	Kind      parser.Kind `json:"kind,omitempty"`
	Items     int         `json:"items"`
	Error     string      `json:"error,omitempty"`
	ErrorKind string      `json:"error_kind,omitempty"`
	Document  any         `json:"document,omitempty"`
}

func parseCmd() *cobra.Command {
	var f parseFlags

	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Parse filings and print the typed records",
		Long: `Parse one or more EDGAR XML files. Use "-" to read standard input.
The document kind is detected from the root element unless --kind is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			return runParse(cmd, log, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.kind, "kind", "k", "", "Document kind (ownership, 13f-document, 13f-table, xbrl)")
	cmd.Flags().StringVar(&f.policy, "policy", "strict", "Required-field policy for ownership and 13F (strict, lenient)")
	cmd.Flags().BoolVar(&f.rejectUnresolved, "reject-unresolved", false, "Fail XBRL facts whose contextRef is undeclared")
	cmd.Flags().StringVarP(&f.format, "format", "f", "json", "Output format (json, yaml, markdown)")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 4, "Files parsed concurrently")

	return cmd
}

func runParse(cmd *cobra.Command, log *slog.Logger, f parseFlags, args []string) error {
	var kind parser.Kind
	if f.kind != "" {
		k, err := parser.ParseKind(f.kind)
		if err != nil {
			return err
		}
		kind = k
	}
	policy, err := schema.ParsePolicy(f.policy)
	if err != nil {
		return err
	}
	switch f.format {
	case "json", "yaml", "markdown":
	default:
		return fmt.Errorf("unsupported format %q (want json, yaml or markdown)", f.format)
	}
	if f.jobs <= 0 {
		f.jobs = 1
	}

	opts := parser.Options{
		OwnershipPolicy:          policy,
		ThirteenFPolicy:          policy,
		RejectUnresolvedContexts: f.rejectUnresolved,
	}
	rec := metrics.NewRecorder(metrics.NewParseStats(time.Hour))

	inputs := make([][]byte, len(args))
	for i, path := range args {
		data, err := readInput(cmd, path)
		if err != nil {
			return err
		}
		inputs[i] = data
	}

	results := make([]fileResult, len(args))
	var g errgroup.Group
	g.SetLimit(f.jobs)
	for i, path := range args {
		g.Go(func() error {
			results[i] = parseOne(log, path, kind, opts, inputs[i], rec)
			return nil
		})
	}
	g.Wait()

	if err := writeResults(cmd.OutOrStdout(), f.format, results); err != nil {
		return err
	}

	snap := rec.Stats().Snapshot()
	log.Debug("parse stats", "count", snap.All.Count, "failures", snap.All.Failures, "p95_ms", snap.All.P95Ms)
	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(args))
	}
	return nil
}

func parseOne(log *slog.Logger, path string, kind parser.Kind, opts parser.Options, data []byte, rec *metrics.Recorder) fileResult {
	res := fileResult{File: path, Kind: kind}
	if res.Kind == "" {
		detected, err := parser.Detect(data)
		if err != nil {
			res.Error, res.ErrorKind = err.Error(), pipeline.ErrorKind(err)
			log.Warn("detect failed", "file", path, "error", err)
			return res
		}
		res.Kind = detected
	}
	doc, summary, err := pipeline.ParseDocument(res.Kind, opts, data, rec)
	if err != nil {
		res.Error, res.ErrorKind = err.Error(), pipeline.ErrorKind(err)
		log.Warn("parse failed", "file", path, "kind", res.Kind, "error", err)
		return res
	}
	res.Items, res.Document = summary.Items, doc
	log.Info("parsed", "file", path, "kind", res.Kind, "items", summary.Items)
	return res
}

func writeResults(w io.Writer, format string, results []fileResult) error {
	switch format {
	case "markdown":
		for i, r := range results {
			if i > 0 {
				io.WriteString(w, "\n---\n\n")
			}
			if r.Error != "" {
				fmt.Fprintf(w, "# %s\n\nError (%s): %s\n", r.File, r.ErrorKind, r.Error)
				continue
			}
			md, err := report.Markdown(r.Document)
			if err != nil {
				return err
			}
			io.WriteString(w, md)
		}
		return nil
	case "yaml":
		// Round-trip through JSON so the json tags name the keys.
		raw, err := json.Marshal(results)
		if err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
