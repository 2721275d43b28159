// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numerics/core"
)

var (
	// ErrBadOrder is returned by Maclaurin for a term count outside 1..MaxSeriesTerms.
	ErrBadOrder = errors.New("expr: series term count out of range")

	// ErrNotAnalytic is returned by Maclaurin when a derivative at 0 is NaN or ±Inf
	// (e.g. ln(x), sqrt(x), 1/x).
	ErrNotAnalytic = errors.New("expr: function is not analytic at 0")
)

// ParseError reports malformed input with the byte offset of the offending token.
type ParseError struct {
	Input string // full source text
	Pos   int    // byte offset into Input
	Msg   string // what went wrong
}

// Error renders `expr: <msg> at position <pos> in "<input>"`.
func (e *ParseError) Error() string {
	return fmt.Sprintf("expr: %s at position %d in %q", e.Msg, e.Pos, e.Input)
}

// Unwrap ties every parse failure to core.ErrParse, so core.KindOf reports KindParse.
func (e *ParseError) Unwrap() error { return core.ErrParse }
