package runner

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/tidwall/sjson"

	"github.com/omarluq/curryhoward/internal/exercise"
)

// ErrFailed is wrapped by Report.Err when any exercise failed.
var ErrFailed = errors.New("exercises failed")

// ErrUnknownFormat is returned by Report.Write for formats other than text and json.
var ErrUnknownFormat = errors.New("unknown report format")

// Status is the outcome of one exercise.
type Status string

// Statuses.
const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Result is the outcome of one exercise.
type Result struct {
	Err      error
	Name     string
	Section  exercise.Section
	Status   Status
	Reason   string
	Duration time.Duration
}

// Report summarizes a run.
type Report struct {
	RunID   string
	Results []Result
	Elapsed time.Duration
	Passed  int
	Failed  int
	Skipped int
}

func newReport(runID string, results []Result, elapsed time.Duration) *Report {
	counts := lo.CountValuesBy(results, func(r Result) Status {
		return r.Status
	})
	return &Report{
		RunID:   runID,
		Results: results,
		Elapsed: elapsed,
		Passed:  counts[StatusPassed],
		Failed:  counts[StatusFailed],
		Skipped: counts[StatusSkipped],
	}
}

// OK reports whether nothing failed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Err returns an error wrapping ErrFailed if any exercise failed.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	names := lo.FilterMap(r.Results, func(res Result, _ int) (string, bool) {
		return res.Name, res.Status == StatusFailed
	})
	return fmt.Errorf("%w: %s", ErrFailed, strings.Join(names, ", "))
}

// Write renders the report as "text" or "json".
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "", "text":
		return r.WriteText(w)
	case "json":
		return r.WriteJSON(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

var statusMarks = map[Status]string{
	StatusPassed:  "✓",
	StatusFailed:  "✗",
	StatusSkipped: "-",
}

// WriteText writes one line per exercise followed by a summary line.
func (r *Report) WriteText(w io.Writer) error {
	width := lo.Max(lo.Map(r.Results, func(res Result, _ int) int {
		return len(res.Name)
	}))

	var b strings.Builder
	for _, res := range r.Results {
		fmt.Fprintf(&b, "%s %-*s  %s", statusMarks[res.Status], width, res.Name, res.Section)
		switch res.Status {
		case StatusFailed:
			fmt.Fprintf(&b, "\n    %s", indent(res.Err.Error()))
		case StatusSkipped:
			fmt.Fprintf(&b, "  (%s)", res.Reason)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\n%d passed, %d failed, %d skipped in %s (run %s)\n",
		r.Passed, r.Failed, r.Skipped, r.Elapsed.Round(time.Microsecond), r.RunID)

	_, err := io.WriteString(w, b.String())
	return err
}

func indent(s string) string {
	return strings.ReplaceAll(strings.TrimRight(s, "\n"), "\n", "\n    ")
}

// WriteJSON writes the report as a single JSON document.
func (r *Report) WriteJSON(w io.Writer) error {
	doc, err := r.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(append(doc, '\n'))
	return err
}

// MarshalJSON implements json.Marshaler.
func (r *Report) MarshalJSON() ([]byte, error) {
	doc := &jsonDoc{raw: "{}"}
	doc.set("run_id", r.RunID)
	doc.set("ok", r.OK())
	doc.set("summary.passed", r.Passed)
	doc.set("summary.failed", r.Failed)
	doc.set("summary.skipped", r.Skipped)
	doc.set("summary.elapsed_us", r.Elapsed.Microseconds())
	doc.setRaw("results", "[]")

	for _, res := range r.Results {
		item := &jsonDoc{raw: "{}"}
		item.set("name", res.Name)
		item.set("section", string(res.Section))
		item.set("status", string(res.Status))
		item.set("duration_us", res.Duration.Microseconds())
		if res.Err != nil {
			item.set("error", res.Err.Error())
		}
		if res.Reason != "" {
			item.set("reason", res.Reason)
		}
		if item.err != nil {
			return nil, item.err
		}
		doc.setRaw("results.-1", item.raw)
	}

	if doc.err != nil {
		return nil, fmt.Errorf("encode report: %w", doc.err)
	}
	return []byte(doc.raw), nil
}

// jsonDoc applies sjson edits, keeping the first error.
type jsonDoc struct {
	err error
	raw string
}

func (d *jsonDoc) set(path string, value any) {
	if d.err != nil {
		return
	}
	d.raw, d.err = sjson.Set(d.raw, path, value)
}

func (d *jsonDoc) setRaw(path, value string) {
	if d.err != nil {
		return
	}
	d.raw, d.err = sjson.SetRaw(d.raw, path, value)
}
