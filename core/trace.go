// SPDX-License-Identifier: MIT

// Package core: iteration trace recording.
//
// Purpose:
//   - Give every solver one way to emit a per-pass record, whatever the caller
//     asked for (a collected Trace, a streaming Observer, both or neither).
//   - Expose the column Schema so sinks render any algorithm without knowing it.
//
// Determinism:
//   - Records keep insertion order; values are copied on append so a solver may
//     reuse its scratch slices between passes.
package core

import "math"

// nan is the "no metric yet" marker for failed results.
var nan = math.NaN()

// Schema names an algorithm's trace and its value columns.
// Columns does NOT include the leading iteration index; sinks prepend it.
type Schema struct {
	Method  string   // e.g. "bisection"
	Columns []string // e.g. ["lower", "upper", "mid", "f(mid)", "error"]
}

// Header returns the full column header including the iteration column.
func (s Schema) Header() []string {
	h := make([]string, 0, len(s.Columns)+1)
	h = append(h, IterationColumn)
	h = append(h, s.Columns...)

	return h
}

// IterationColumn is the header label of the leading iteration index.
const IterationColumn = "iteration"

// ErrorColumn is the conventional label of the error-metric column; every
// schema in numerics ends with it.
const ErrorColumn = "error"

// Record is one immutable row of a Trace: the 1-based pass index plus the
// values listed by the Schema, in Schema order.
type Record struct {
	Iteration int
	Values    []float64
}

// Metric returns the last value of the record (the error metric by convention),
// or NaN for an empty record.
func (r Record) Metric() float64 {
	if len(r.Values) == 0 {
		return nan
	}

	return r.Values[len(r.Values)-1]
}

// Trace is the ordered sequence of Records produced by one solver call.
type Trace struct {
	Schema  Schema
	Records []Record
}

// NewTrace allocates an empty trace for the given schema.
// capHint pre-sizes the record slice (use the iteration cap); negative hints are ignored.
func NewTrace(s Schema, capHint int) *Trace {
	if capHint < 0 {
		capHint = 0
	}

	return &Trace{Schema: s, Records: make([]Record, 0, capHint)}
}

// Append copies values into a new Record and appends it.
// Complexity: O(len(values)).
func (t *Trace) Append(iteration int, values ...float64) Record {
	vs := make([]float64, len(values))
	copy(vs, values)
	rec := Record{Iteration: iteration, Values: vs}
	t.Records = append(t.Records, rec)

	return rec
}

// Len returns the number of records; nil-safe.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Records)
}

// Last returns the final record and true, or a zero Record and false when empty.
func (t *Trace) Last() (Record, bool) {
	if t.Len() == 0 {
		return Record{}, false
	}

	return t.Records[len(t.Records)-1], true
}

// Column returns a copy of column idx (0-based into Schema.Columns) across all records.
// Returns nil when idx is out of range.
func (t *Trace) Column(idx int) []float64 {
	if t == nil || idx < 0 || idx >= len(t.Schema.Columns) {
		return nil
	}
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		if idx < len(r.Values) {
			out[i] = r.Values[idx]
		} else {
			out[i] = nan
		}
	}

	return out
}

// Recorder fans one per-pass record out to the optional Trace and Observer.
// A zero Recorder (no trace, no observer) is valid and records nothing, so
// solvers call Record unconditionally.
type Recorder struct {
	trace    *Trace
	observer Observer
}

// NewRecorder builds the recorder a solver uses for one call, honoring
// o.Trace and o.Observer.
func NewRecorder(s Schema, o Options) *Recorder {
	r := &Recorder{observer: o.Observer}
	if o.Trace {
		r.trace = NewTrace(s, o.MaxIterations)
	}

	return r
}

// Record emits one pass. The trace and the observer each get their own copy
// of values; callers may reuse the slice.
func (r *Recorder) Record(iteration int, values ...float64) {
	if r.trace == nil && r.observer == nil {
		return
	}
	if r.trace != nil {
		r.trace.Append(iteration, values...)
	}
	if r.observer != nil {
		vs := make([]float64, len(values))
		copy(vs, values)
		r.observer(Record{Iteration: iteration, Values: vs})
	}
}

// Trace returns the collected trace, or nil when tracing was not requested.
func (r *Recorder) Trace() *Trace { return r.trace }
