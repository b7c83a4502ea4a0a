// Package seed loads fixture documents into a writable provider store.
package seed

import (
	"fmt"
	"time"
)

// Result tracks counts and errors from a seeding operation.
type Result struct {
	Collections int
	Written     int
	Failed      int
	Errors      []string
	Duration    time.Duration
}

// Add merges another Result into this one.
func (r *Result) Add(other Result) {
	r.Collections += other.Collections
	r.Written += other.Written
	r.Failed += other.Failed
	r.Errors = append(r.Errors, other.Errors...)
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the seed operation.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"collections=%d written=%d failed=%d errors=%d duration=%s",
		r.Collections, r.Written, r.Failed, len(r.Errors),
		r.Duration.Round(time.Millisecond),
	)
}
