// Package errorList collects the problems found while decoding a registry or
// building a catalog, so that a single run can report all of them at once.
package errorList

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTooManyErrors marks the point where Trim cut the list.
var ErrTooManyErrors = errors.New("too many errors")

// ErrorList wraps multiple errors as a single error.
type ErrorList []error

func (errs ErrorList) Error() string {
	switch len(errs) {
	case 0:
		return "<no errors>"
	case 1:
		return errs[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", errs[0].Error(), len(errs)-1)
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (errs ErrorList) Unwrap() []error { return errs }

// Detail renders every error on its own line.
func (errs ErrorList) Detail() string {
	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		lines = append(lines, err.Error())
	}
	return strings.Join(lines, "\n")
}

// ErrOrNil returns nil if ErrorList is empty, or the error otherwise.
func (errs ErrorList) ErrOrNil() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Append an error to the list.
//
// Nested lists are flattened and nil errors are ignored:
//
//	errs = errs.Append(reg.Validate())
func (errs ErrorList) Append(err error) ErrorList {
	if err == nil {
		return errs
	}
	var list ErrorList
	if errors.As(err, &list) {
		return append(errs, list...)
	}
	return append(errs, err)
}

// AppendDistinct is similar to Append, but skips err when its message equals
// the last one on the list. Tokens shared by many groups would otherwise
// report the same problem once per group.
func (errs ErrorList) AppendDistinct(err error) ErrorList {
	if err == nil {
		return errs
	}
	if l := len(errs); l > 0 && errs[l-1].Error() == err.Error() {
		return errs
	}
	return errs.Append(err)
}

// Trim the list to at most limit entries followed by ErrTooManyErrors.
func (errs ErrorList) Trim(limit int) ErrorList {
	if len(errs) <= limit {
		return errs
	}
	return append(errs[:limit:limit], ErrTooManyErrors)
}
