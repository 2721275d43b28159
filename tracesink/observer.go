// SPDX-License-Identifier: MIT

package tracesink

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/numerics/core"
)

// LogObserver returns a core.Observer that writes one debug line per pass,
// keyed by the schema's column names:
//
//	DEBUG pass method=bisection iteration=3 lower=1.25 upper=1.5 ... error=0.125
func LogObserver(l *log.Logger, schema core.Schema) core.Observer {
	return func(rec core.Record) {
		kv := make([]interface{}, 0, 4+2*len(rec.Values))
		kv = append(kv, "method", schema.Method, core.IterationColumn, rec.Iteration)
		for i, v := range rec.Values {
			name := "?"
			if i < len(schema.Columns) {
				name = schema.Columns[i]
			}
			kv = append(kv, name, v)
		}
		l.Debug("pass", kv...)
	}
}
