// Package apperr carries the error taxonomy handlers translate to HTTP
// statuses. Unknown errors fall through as 500 without leaking detail.
package apperr

import "net/http"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUpload
	KindDelivery
	KindInternal
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "error"
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(msg string) error          { return &Error{Kind: KindValidation, Msg: msg} }
func Unauthorized(msg string) error        { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Forbidden(msg string) error           { return &Error{Kind: KindForbidden, Msg: msg} }
func NotFound(msg string) error            { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) error            { return &Error{Kind: KindConflict, Msg: msg} }
func Upload(msg string, err error) error   { return &Error{Kind: KindUpload, Msg: msg, Err: err} }
func Delivery(msg string, err error) error { return &Error{Kind: KindDelivery, Msg: msg, Err: err} }
func Internal(msg string, err error) error { return &Error{Kind: KindInternal, Msg: msg, Err: err} }
