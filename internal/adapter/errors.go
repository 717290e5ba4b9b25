package adapter

import "errors"

// Sentinel errors returned (wrapped) by [ServiceClient] implementations.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrEmptyAccessToken    = errors.New("service returned an empty access token")
)
