// Package errs implements the small error-kind taxonomy the pipeline
// uses to decide how to react to a failure: abort the process, skip a
// window, or fall through to a best-effort default. Every error that
// crosses a package boundary in this repository is wrapped with one of
// these kinds via github.com/pkg/errors, so callers can recover the
// kind with KindOf instead of string-matching messages.
package errs

import "github.com/pkg/errors"

// Kind classifies why an operation failed.
type Kind int

const (
	// Unknown is the kind of an error that did not originate from this
	// package — KindOf returns it for plain errors and for errors from
	// other libraries that were never wrapped here.
	Unknown Kind = iota
	// InvalidArgument marks a malformed request: a bad region string, a
	// BED line with the wrong column count, an invalid config value.
	InvalidArgument
	// FailedPrecondition marks a request that is well-formed but cannot
	// be satisfied in the current state, e.g. a reference lookup that
	// would read past the end of a contig.
	FailedPrecondition
	// NotFound marks a lookup that failed because the thing looked up
	// does not exist, e.g. a contig absent from the reference.
	NotFound
	// Internal marks a failure that should be impossible given the
	// caller's own invariants, e.g. an integer parse failure on a line
	// already validated to have the right shape.
	Internal
	// Fatal marks an infrastructure failure that always aborts the
	// process: cannot create a directory, cannot write a file header.
	Fatal
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case FailedPrecondition:
		return "FailedPrecondition"
	case NotFound:
		return "NotFound"
	case Internal:
		return "Internal"
	case Fatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}

// kindedError pairs a Kind with the wrapped cause so KindOf can recover
// it later without string matching.
type kindedError struct {
	kind  Kind
	cause error
}

func (e *kindedError) Error() string { return e.cause.Error() }
func (e *kindedError) Cause() error  { return e.cause } // github.com/pkg/errors Causer
func (e *kindedError) Unwrap() error { return e.cause }

// New returns an error of the given kind with the given message.
func New(kind Kind, message string) error {
	return &kindedError{kind: kind, cause: errors.New(message)}
}

// Newf returns an error of the given kind formatted per fmt.Sprintf.
func Newf(kind Kind, format string, args ...any) error {
	return &kindedError{kind: kind, cause: errors.Errorf(format, args...)}
}

// Wrap annotates err with message and tags it with kind. A nil err
// returns nil, matching github.com/pkg/errors.Wrap.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &kindedError{kind: kind, cause: errors.Wrap(err, message)}
}

// KindOf recovers the Kind tagged onto err by New/Newf/Wrap, walking
// wrapped causes. Returns Unknown for an untagged error or nil.
func KindOf(err error) Kind {
	var ke *kindedError
	for err != nil {
		if k, ok := err.(*kindedError); ok {
			ke = k
			break
		}
		err = errors.Unwrap(err)
	}
	if ke == nil {
		return Unknown
	}
	return ke.kind
}

// Is reports whether err is tagged with kind.
func Is(err error, kind Kind) bool { return KindOf(err) == kind }
