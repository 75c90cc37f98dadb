package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestParseStatsSnapshotPercentiles(t *testing.T) {
	stats := NewParseStats(time.Hour)
	stats.Record("ownership", 100, false)
	stats.Record("ownership", 200, false)
	stats.Record("xbrl", 300, false)
	stats.Record("xbrl", 400, true)
	stats.Record("xbrl", 500, false)

	snap := stats.Snapshot().All
	if snap.Count != 5 {
		t.Fatalf("expected count=5, got %d", snap.Count)
	}
	if snap.MinMs != 100 {
		t.Fatalf("expected min=100, got %d", snap.MinMs)
	}
	if snap.MaxMs != 500 {
		t.Fatalf("expected max=500, got %d", snap.MaxMs)
	}
	if snap.AvgMs != 300 {
		t.Fatalf("expected avg=300, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 300 {
		t.Fatalf("expected p50=300, got %f", snap.P50Ms)
	}
	if snap.P95Ms != 480 {
		t.Fatalf("expected p95=480, got %f", snap.P95Ms)
	}
	if snap.P99Ms != 496 {
		t.Fatalf("expected p99=496, got %f", snap.P99Ms)
	}
	if snap.Failures != 1 {
		t.Fatalf("expected failures=1, got %d", snap.Failures)
	}
}

func TestParseStatsGroupsByKind(t *testing.T) {
	stats := NewParseStats(time.Hour)
	stats.Record("ownership", 10, false)
	stats.Record("xbrl", 30, true)
	stats.Record("xbrl", 50, false)

	snap := stats.Snapshot()
	if len(snap.ByKind) != 2 {
		t.Fatalf("expected 2 kinds, got %d", len(snap.ByKind))
	}
	x := snap.ByKind["xbrl"]
	if x.Count != 2 || x.Failures != 1 || x.AvgMs != 40 {
		t.Fatalf("unexpected xbrl snapshot: %+v", x)
	}
	if snap.WindowSeconds != 3600 {
		t.Fatalf("expected window 3600s, got %f", snap.WindowSeconds)
	}
}

func TestParseStatsPrunesExpiredSamples(t *testing.T) {
	stats := NewParseStats(10 * time.Millisecond)
	stats.Record("ownership", 100, false)
	time.Sleep(25 * time.Millisecond)

	snap := stats.Snapshot()
	if snap.All.Count != 0 || len(snap.ByKind) != 0 {
		t.Fatalf("expected empty window after prune, got %+v", snap)
	}

	stats.Record("ownership", 200, false)
	all := stats.Snapshot().All
	if all.Count != 1 {
		t.Fatalf("expected count=1 for fresh sample, got %d", all.Count)
	}
	if all.MinMs != 200 || all.MaxMs != 200 {
		t.Fatalf("expected min=max=200, got min=%d max=%d", all.MinMs, all.MaxMs)
	}
}

func TestParseStatsRecordClampsNegativeDuration(t *testing.T) {
	stats := NewParseStats(time.Hour)
	stats.Record("xbrl", -10, false)
	snap := stats.Snapshot().All
	if snap.Count != 1 {
		t.Fatalf("expected count=1, got %d", snap.Count)
	}
	if snap.MinMs != 0 || snap.MaxMs != 0 {
		t.Fatalf("expected clamped duration=0, got min=%d max=%d", snap.MinMs, snap.MaxMs)
	}
}

func TestRecorderRecordParse(t *testing.T) {
	stats := NewParseStats(time.Hour)
	rec := NewRecorder(stats)

	before := counterValue(t, "edgarparse_parses_total", "status", "error")
	rec.RecordParse("13f-table", 512, 0, 3*time.Millisecond, "missing_element")
	after := counterValue(t, "edgarparse_parses_total", "status", "error")
	if after-before != 1 {
		t.Fatalf("expected error counter to grow by 1, got %f", after-before)
	}

	itemsBefore := counterValue(t, "edgarparse_items_extracted_total", "", "")
	rec.RecordParse("13f-table", 512, 7, time.Millisecond, "")
	if got := counterValue(t, "edgarparse_items_extracted_total", "", "") - itemsBefore; got != 7 {
		t.Fatalf("expected 7 items, got %f", got)
	}

	if snap := rec.Stats().Snapshot().ByKind["13f-table"]; snap.Count != 2 || snap.Failures != 1 {
		t.Fatalf("unexpected window snapshot: %+v", snap)
	}
}

// counterValue sums the 13f-table series of a counter family, optionally
// narrowed to one extra label value.
func counterValue(t *testing.T, name, label, want string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["kind"] != "13f-table" || (label != "" && labels[label] != want) {
				continue
			}
			total += m.GetCounter().GetValue()
		}
	}
	return total
}
