// Package apperr defines the error taxonomy surfaced to users of the viewers.
// Every failure is terminal for the current request; the message names the
// likely cause so the user can fix the URL or selector and try again.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind string

const (
	KindInput   Kind = "input"
	KindFetch   Kind = "fetch"
	KindParse   Kind = "parse"
	KindContent Kind = "content"
)

// Sentinels for errors.Is matching by kind.
var (
	ErrInput   = errors.New("invalid input")
	ErrFetch   = errors.New("fetch failed")
	ErrParse   = errors.New("empty or unparseable CSV")
	ErrContent = errors.New("no matching content")
)

// Error is a user-facing failure with a kind and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
	// Hint is appended after the cause, e.g. how to publish a sheet.
	Hint string
}

func (e *Error) Error() string {
	msg := e.Msg
	switch {
	case e.Err != nil && msg == "":
		msg = e.Err.Error()
	case e.Err != nil:
		msg += ": " + e.Err.Error()
	}
	if e.Hint != "" {
		msg += ". " + e.Hint
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInput:
		return e.Kind == KindInput
	case ErrFetch:
		return e.Kind == KindFetch
	case ErrParse:
		return e.Kind == KindParse
	case ErrContent:
		return e.Kind == KindContent
	}
	return false
}

func Input(format string, args ...any) error {
	return &Error{Kind: KindInput, Msg: fmt.Sprintf(format, args...)}
}

func Fetch(format string, args ...any) error {
	return &Error{Kind: KindFetch, Msg: fmt.Sprintf(format, args...)}
}

func Parse(format string, args ...any) error {
	return &Error{Kind: KindParse, Msg: fmt.Sprintf(format, args...)}
}

func Content(format string, args ...any) error {
	return &Error{Kind: KindContent, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// WithHint wraps err, keeping its kind (Fetch when it has none), and appends hint.
func WithHint(err error, msg, hint string) error {
	if err == nil {
		return nil
	}
	kind := KindOf(err)
	if kind == "" {
		kind = KindFetch
	}
	return &Error{Kind: kind, Msg: msg, Err: err, Hint: hint}
}

// KindOf returns the kind of the outermost *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Message returns the user-visible text of err: the outermost *Error's
// message, without the context prefixes added by callers further up.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}
