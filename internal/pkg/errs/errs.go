package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg, keeping the original chain intact.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark ties err to a sentinel so callers can match it with Is while the
// full cause stays available for logging.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}

// Is reports whether err matches target. Marks attached with Mark are only
// visible to cockroachdb's Is, not the standard library's, so sentinel
// matching must go through here.
func Is(err error, target error) bool {
	return cr.Is(err, target)
}
