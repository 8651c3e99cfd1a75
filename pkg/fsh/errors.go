package fsh

import (
	"errors"
	"os"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := fs.ChangeDirectory(path)
//	if errors.Is(err, fsh.ErrNotFound) {
//	    // Report the missing path to the user
//	}
var (
	// ErrNotFound indicates a path did not resolve to an expected file or
	// directory.
	ErrNotFound = errors.New("no such file or directory")

	// ErrAlreadyExists indicates a copy destination collision without the
	// overwrite flag.
	ErrAlreadyExists = errors.New("destination already exists")

	// ErrPermission indicates the operating system denied access.
	ErrPermission = errors.New("permission denied")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ClassifyOSError maps an error returned by an OS call onto the sentinel
// vocabulary above, preserving the original error in the chain. Errors that
// already carry a sentinel, and errors with no sentinel equivalent, are
// returned unchanged.
func ClassifyOSError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrPermission):
		return err
	case os.IsNotExist(err):
		return &classifiedError{sentinel: ErrNotFound, cause: err}
	case os.IsPermission(err):
		return &classifiedError{sentinel: ErrPermission, cause: err}
	case os.IsExist(err):
		return &classifiedError{sentinel: ErrAlreadyExists, cause: err}
	}
	return err
}

// classifiedError attaches a sentinel to an OS error without losing either:
// errors.Is matches both the sentinel and the original chain.
type classifiedError struct {
	sentinel error
	cause    error
}

func (e *classifiedError) Error() string { return e.cause.Error() }

func (e *classifiedError) Is(target error) bool { return target == e.sentinel }

func (e *classifiedError) Unwrap() error { return e.cause }

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrPermission):
		return ExitPermissionDenied
	}

	return ExitGeneralError
}
