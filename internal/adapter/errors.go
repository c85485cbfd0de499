package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedResponse  = errors.New("unexpected validator response")
)
