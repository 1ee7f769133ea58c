package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooLarge            = errors.New("request too large")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoToken = errors.New("no token set, log in first")
)
