// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package secretserver

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Class groups error kinds by who has to act on them.
type Class string

const (
	ClassValidation     Class = "ValidationError"
	ClassAuthentication Class = "AuthenticationError"
	ClassProtocol       Class = "ProtocolError"
	ClassTransport      Class = "TransportError"
)

// Kind narrows a Class down to the failing condition.
type Kind string

const (
	KindMissingField        Kind = "MissingField"
	KindUnknownSelector     Kind = "UnknownSelector"
	KindInvalidConfig       Kind = "InvalidConfiguration"
	KindHTTPFailure         Kind = "HttpFailure"
	KindInvalidResponseBody Kind = "InvalidResponseBody"
	KindMissingTokenField   Kind = "MissingTokenField"
	KindWrongTokenType      Kind = "WrongTokenType"
	KindTimeout             Kind = "Timeout"
	KindCanceled            Kind = "Canceled"
	KindConnectionFailure   Kind = "ConnectionFailure"
)

// Class sentinels for errors.Is.
var (
	ErrValidation     = &Error{Class: ClassValidation}
	ErrAuthentication = &Error{Class: ClassAuthentication}
	ErrProtocol       = &Error{Class: ClassProtocol}
	ErrTransport      = &Error{Class: ClassTransport}
)

// Error is the only error type returned by this package.
//
// Msg is sanitized when the error is built: it never contains the password of
// the call that produced it.
type Error struct {
	Class Class
	Kind  Kind
	// Fields lists the offending input fields for validation errors.
	Fields []string
	// StatusCode is the HTTP status for HttpFailure errors.
	StatusCode int
	Msg        string
	Err        error
}

func (e *Error) Error() string {
	if e.Kind == "" {
		return string(e.Class)
	}
	return fmt.Sprintf("%s (%s): %s", e.Class, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Class, and on Kind too when the target sets one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Class != e.Class {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// KindOf returns the Kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func validationError(kind Kind, fields []string, msg string) *Error {
	return &Error{Class: ClassValidation, Kind: kind, Fields: fields, Msg: msg}
}

func protocolError(kind Kind, msg string, cause error) *Error {
	return &Error{Class: ClassProtocol, Kind: kind, Msg: msg, Err: cause}
}

func authenticationError(status int, msg string) *Error {
	return &Error{Class: ClassAuthentication, Kind: KindHTTPFailure, StatusCode: status, Msg: msg}
}

// transportError classifies a network-layer failure. The cause text is
// scrubbed because url.Error and friends echo request details.
func transportError(op string, err error, secrets ...string) *Error {
	kind := KindConnectionFailure
	var nerr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &nerr) && nerr.Timeout():
		kind = KindTimeout
	case errors.Is(err, context.Canceled):
		kind = KindCanceled
	}
	msg := fmt.Sprintf("%s: %s", op, RedactSecrets(err.Error()))
	return &Error{Class: ClassTransport, Kind: kind, Msg: redactSecret(msg, secrets...), Err: err}
}

// sanitize returns err with every literal secret stripped from its message.
// Errors foreign to this package are classified as transport failures.
func sanitize(err error, secrets ...string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		return transportError("authenticate", err, secrets...)
	}
	out := *e
	out.Msg = redactSecret(e.Msg, secrets...)
	return &out
}
