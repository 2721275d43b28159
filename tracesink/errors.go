// SPDX-License-Identifier: MIT

package tracesink

import "errors"

var (
	// ErrEmptyTrace is returned when a sink needs at least one record.
	ErrEmptyTrace = errors.New("tracesink: trace is empty")

	// ErrUnknownFormat is returned for an unsupported chart format.
	ErrUnknownFormat = errors.New("tracesink: unknown image format")

	// ErrMalformedReport is returned when a YAML report does not match its schema.
	ErrMalformedReport = errors.New("tracesink: malformed report")
)
