// SPDX-License-Identifier: MIT

package tracesink

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numerics/core"
)

// Report is the serialized form of one solver run: outcome plus trace.
// NaN and ±Inf metrics are written as YAML .nan / .inf.
type Report struct {
	RunID      string      `yaml:"run_id"`
	Method     string      `yaml:"method"`
	Status     string      `yaml:"status"`
	Kind       string      `yaml:"kind"`
	Iterations int         `yaml:"iterations"`
	Metric     float64     `yaml:"metric"`
	Value      []float64   `yaml:"value,flow,omitempty"`
	Error      string      `yaml:"error,omitempty"`
	Columns    []string    `yaml:"columns,flow"`
	Rows       [][]float64 `yaml:"rows"`
}

// NewReport summarizes a scalar result under a fresh random run id.
func NewReport(res core.Result[float64]) Report {
	r := newReport(res.Status, res.Kind, res.Iterations, res.Metric, res.Err, res.Trace)
	if res.OK() {
		r.Value = []float64{res.Value}
	}

	return r
}

// NewVectorReport summarizes a vector result (linear solvers).
func NewVectorReport(res core.Result[[]float64]) Report {
	r := newReport(res.Status, res.Kind, res.Iterations, res.Metric, res.Err, res.Trace)
	r.Value = append([]float64(nil), res.Value...)

	return r
}

func newReport(st core.Status, kind core.ErrorKind, iters int, metric float64, err error, tr *core.Trace) Report {
	r := Report{
		RunID:      uuid.NewString(),
		Status:     st.String(),
		Kind:       kind.String(),
		Iterations: iters,
		Metric:     metric,
		Rows:       [][]float64{},
	}
	if err != nil {
		r.Error = err.Error()
	}
	if tr != nil {
		r.Method = tr.Schema.Method
		r.Columns = append([]string(nil), tr.Schema.Columns...)
		for _, rec := range tr.Records {
			row := make([]float64, 0, len(rec.Values)+1)
			row = append(row, float64(rec.Iteration))
			r.Rows = append(r.Rows, append(row, rec.Values...))
		}
	}

	return r
}

// Trace rebuilds the core.Trace carried by the report.
//
// Errors: ErrMalformedReport when a row does not hold iteration + one value
// per column.
func (r Report) Trace() (*core.Trace, error) {
	tr := core.NewTrace(core.Schema{Method: r.Method, Columns: append([]string(nil), r.Columns...)}, len(r.Rows))
	for i, row := range r.Rows {
		if len(row) != len(r.Columns)+1 {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), len(r.Columns)+1, ErrMalformedReport)
		}
		tr.Append(int(row[0]), row[1:]...)
	}

	return tr, nil
}

// WriteYAML encodes r as a YAML document. Rows are written in flow style,
// one record per line.
func WriteYAML(w io.Writer, r Report) error {
	var doc yaml.Node
	if err := doc.Encode(r); err != nil {
		return fmt.Errorf("tracesink: encode report: %w", err)
	}
	flowRows(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("tracesink: write report: %w", err)
	}

	return enc.Close()
}

// flowRows switches each record under "rows" to flow style.
func flowRows(doc *yaml.Node) {
	if doc.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "rows" {
			continue
		}
		for _, row := range doc.Content[i+1].Content {
			row.Style = yaml.FlowStyle
		}
	}
}

// ReadYAML decodes a report written by WriteYAML.
func ReadYAML(rd io.Reader) (Report, error) {
	var r Report
	if err := yaml.NewDecoder(rd).Decode(&r); err != nil {
		return Report{}, fmt.Errorf("tracesink: read report: %v: %w", err, ErrMalformedReport)
	}
	if r.RunID == "" {
		return Report{}, fmt.Errorf("tracesink: read report: missing run_id: %w", ErrMalformedReport)
	}

	return r, nil
}
