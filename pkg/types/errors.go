package types

import (
	"errors"
	"fmt"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindUnknown             ErrKind = iota
	ErrKindTruncated                   // fewer bytes available than a read requires
	ErrKindMalformedRecord             // signature or tag does not match its magic
	ErrKindUnsupportedFormat           // header format field is not direct-load
	ErrKindInvalidText                 // name bytes do not decode under their encoding
	ErrKindSubkeyNotFound              // no child key with the requested name
	ErrKindValueNotFound               // no value with the requested name
	ErrKindValueListAbsent             // key has no value list at all
	ErrKindUnsupportedListType         // subkey list tag is not li/lf/lh/ri
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindTruncated:
		return "truncated"
	case ErrKindMalformedRecord:
		return "malformed record"
	case ErrKindUnsupportedFormat:
		return "unsupported format"
	case ErrKindInvalidText:
		return "invalid text"
	case ErrKindSubkeyNotFound:
		return "subkey not found"
	case ErrKindValueNotFound:
		return "value not found"
	case ErrKindValueListAbsent:
		return "value list absent"
	case ErrKindUnsupportedListType:
		return "unsupported list type"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so the package sentinels work with
// errors.Is no matter what message the concrete error carries.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinel errors, one per kind.
var (
	ErrTruncated           = &Error{Kind: ErrKindTruncated, Msg: "truncated"}
	ErrMalformedRecord     = &Error{Kind: ErrKindMalformedRecord, Msg: "malformed record"}
	ErrUnsupportedFormat   = &Error{Kind: ErrKindUnsupportedFormat, Msg: "unsupported hive format"}
	ErrInvalidText         = &Error{Kind: ErrKindInvalidText, Msg: "invalid text"}
	ErrSubkeyNotFound      = &Error{Kind: ErrKindSubkeyNotFound, Msg: "subkey not found"}
	ErrValueNotFound       = &Error{Kind: ErrKindValueNotFound, Msg: "value not found"}
	ErrValueListAbsent     = &Error{Kind: ErrKindValueListAbsent, Msg: "value list absent"}
	ErrUnsupportedListType = &Error{Kind: ErrKindUnsupportedListType, Msg: "unsupported subkey list type"}
)

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around cause.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}

// IsNotFound reports whether err means "the name is not in this hive"
// rather than "the hive is damaged".
func IsNotFound(err error) bool {
	switch KindOf(err) {
	case ErrKindSubkeyNotFound, ErrKindValueNotFound, ErrKindValueListAbsent:
		return true
	default:
		return false
	}
}
