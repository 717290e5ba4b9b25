// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the tabpfn inference service.
//
// The primary abstraction is [ServiceClient], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServiceClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tabpfn-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_client_mock.go -package=mock

// ServiceClient defines transport-agnostic communication with the inference
// service. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServiceClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Health checks that the service is reachable and healthy.
	Health(ctx context.Context) error

	// CheckToken asks the service whether the stored token is still accepted.
	// Returns [ErrUnauthorized] (wrapped) when it is not.
	CheckToken(ctx context.Context) error

	// Login exchanges credentials for an access token. On success the token
	// is stored via SetToken and returned.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Register creates an account. A token returned by the service is stored
	// via SetToken.
	Register(ctx context.Context, reg models.Registration) (models.RegisterResponse, error)

	// PasswordPolicy returns the password requirements for registration.
	PasswordPolicy(ctx context.Context) (models.PasswordPolicy, error)

	// EmailVerificationStatus reports whether email has been verified.
	EmailVerificationStatus(ctx context.Context, email string) (bool, error)

	// GreetingMessages returns the announcements currently published by the
	// service.
	GreetingMessages(ctx context.Context) ([]string, error)

	// Fit uploads a training set and returns its server-side identifier.
	Fit(ctx context.Context, upload models.TrainSetUpload) (string, error)

	// Predict runs inference against a previously uploaded training set.
	// Returns [ErrNotFound] (wrapped) when the training set is unknown.
	Predict(ctx context.Context, req models.PredictRequest) (models.Prediction, error)
}
