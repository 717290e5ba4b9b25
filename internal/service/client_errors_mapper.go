// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tabpfn-client/internal/adapter"
)

// operation names the call being mapped, since the same status means
// different things for login and for an authenticated request.
type operation int

const (
	opAuthenticated operation = iota
	opLogin
	opRegister
	opPredict
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(op operation, err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if op == opRegister {
			return fmt.Errorf("%w: %s", ErrRegisterOnServer, msg)
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		if op == opLogin {
			return ErrWrongPassword
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		if op == opPredict {
			return ErrTrainSetNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if op == opRegister {
			return ErrEmailAlreadyRegistered
		}

	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrInternalServerError):
		switch op {
		case opLogin:
			return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
		case opRegister:
			return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
