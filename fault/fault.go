// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package fault contains a coded error type for use as the reason side of a
// result. Every fault carries a stable machine-readable code next to the
// human-readable message so callers can branch without string matching.
package fault

import (
	"fmt"
)

const (
	CodeUnknown = "F0000"
)

type Fault interface {
	error
	Code() string
	Message() string
}

type fault struct {
	code    string
	message string
}

func (f *fault) Error() string {
	return fmt.Sprintf("%s: %s", f.code, f.message)
}

func (f *fault) Code() string {
	return f.code
}

func (f *fault) Message() string {
	return f.message
}

type faultUnwrap struct {
	Fault
	cause error
}

func (f *faultUnwrap) Unwrap() error {
	return f.cause
}

func New(code string, message string) Fault {
	return &fault{
		code:    code,
		message: message,
	}
}

// Wrap attaches a code to an existing error and keeps it reachable through
// errors.Unwrap. A nil err returns a nil Fault.
func Wrap(code string, err error) Fault {
	if err == nil {
		return nil
	}
	if f, ok := err.(Fault); ok {
		return &faultUnwrap{
			Fault: New(code, f.Message()),
			cause: f,
		}
	}
	return &faultUnwrap{
		cause: err,
		Fault: New(code, err.Error()),
	}
}

func WrapUnknown(err error) Fault {
	return Wrap(CodeUnknown, err)
}
