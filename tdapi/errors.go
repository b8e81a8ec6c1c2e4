package tdapi

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// TdError is implemented by everything that carries an engine error code:
// the Error object, the connection-level error and the well-known Codes.
type TdError interface {
	error
	TdErrorCode() int32
	TdErrorMessage() string
}

var _ TdError = (*Error)(nil)

func (e *Error) Error() string {
	return fmt.Sprintf("tdlib error %d: %s", e.Code, e.Message)
}

func (e *Error) TdErrorCode() int32 {
	return e.Code
}

func (e *Error) TdErrorMessage() string {
	return e.Message
}

type causer interface {
	Cause() error
}

type unwrapper interface {
	Unwrap() error
}

// AsTdError walks the cause chain of err and returns the first engine error
// found, as an Error object.
func AsTdError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}

	if te, ok := err.(TdError); ok {
		if e, ok := te.(*Error); ok {
			return e, true
		}
		return &Error{Code: te.TdErrorCode(), Message: te.TdErrorMessage()}, true
	}

	if ce, ok := err.(causer); ok {
		if cause := ce.Cause(); cause != err {
			return AsTdError(cause)
		}
	}
	if ue, ok := err.(unwrapper); ok {
		return AsTdError(ue.Unwrap())
	}

	return nil, false
}

// IsCode returns true if err is an engine error with the given code.
func IsCode(err error, code Code) bool {
	if e, ok := AsTdError(err); ok {
		return e.Code == int32(code)
	}
	return false
}

var floodWaitRe = regexp.MustCompile(`(?:FLOOD_WAIT_|retry after )(\d+)`)

// RetryAfter extracts the delay from a flood-control error, either
// "FLOOD_WAIT_X" (420) or "Too Many Requests: retry after X" (429).
func RetryAfter(err error) (time.Duration, bool) {
	e, ok := AsTdError(err)
	if !ok {
		return 0, false
	}
	if e.Code != int32(CodeFloodWait) && e.Code != int32(CodeTooManyRequests) {
		return 0, false
	}

	m := floodWaitRe.FindStringSubmatch(e.Message)
	if m == nil {
		return 0, false
	}
	secs, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}
