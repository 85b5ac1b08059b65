package convert

import (
	"errors"
	"fmt"
)

// UnavailableError reports a backend whose underlying mechanism cannot
// be found at construction time. It is fatal to the whole run, never a
// per-file condition.
type UnavailableError struct {
	Backend string
	Reason  string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s backend unavailable: %s", e.Backend, e.Reason)
}

func IsUnavailable(err error) bool {
	var e *UnavailableError
	return errors.As(err, &e)
}

// AccessError reports a file that could not be read or written.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot access %q: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

func IsAccess(err error) bool {
	var e *AccessError
	return errors.As(err, &e)
}

// DecodeError reports corrupt or unsupported pixel data, including
// dimension probe output that does not parse.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func IsDecode(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}

// ExecError reports an external tool that could not be spawned or
// exited non-zero.
type ExecError struct {
	Cmd    string
	Err    error
	Stderr string
}

func (e *ExecError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed: %v: %s", e.Cmd, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s failed: %v", e.Cmd, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

func IsExec(err error) bool {
	var e *ExecError
	return errors.As(err, &e)
}
