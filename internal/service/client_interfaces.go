// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the collaborators a tabpfn session talks to:
// the user authentication service and the inference service. Both are built
// on the transport adapter and the local SQLite cache.
package service

import (
	"context"

	"github.com/MKhiriev/go-tabpfn-client/models"
	"gonum.org/v1/gonum/mat"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// UserAuthService defines the client-side contract for acquiring, caching and
// revoking the access token used by every inference request.
type UserAuthService interface {
	// IsAccessibleConnection reports whether the service answers its health
	// check. Transport errors are logged and reported as false.
	IsAccessibleConnection(ctx context.Context) bool

	// TryReuseExistingToken looks for a configured or cached token and asks
	// the service whether it is still accepted. A rejected or expired cached
	// token is deleted. Returns true when the token was installed on the
	// adapter.
	TryReuseExistingToken(ctx context.Context) (bool, error)

	// CachedEmail returns the email stored with the current credential, or an
	// empty string when unknown.
	CachedEmail(ctx context.Context) string

	// Login exchanges email and password for a token, installs it and caches
	// it together with the email.
	Login(ctx context.Context, email, password string) error

	// Register creates an account. A token returned by the service is
	// installed and cached. Returns the notice sent by the service.
	Register(ctx context.Context, reg models.Registration) (string, error)

	// PasswordPolicy returns the password requirements shown on registration.
	PasswordPolicy(ctx context.Context) ([]string, error)

	// GetUserEmailVerificationStatus reports whether email was verified.
	GetUserEmailVerificationStatus(ctx context.Context, email string) (bool, error)

	// RetrieveGreetingMessages returns the greeting messages that were not
	// returned before and records them as seen.
	RetrieveGreetingMessages(ctx context.Context) ([]string, error)

	// ResetCache drops the cached credential, the train set cache and the
	// seen messages, and clears the installed token.
	ResetCache(ctx context.Context) error

	// AccessToken returns the token currently installed on the adapter.
	AccessToken() string

	// Close releases the local cache.
	Close() error
}

// InferenceService defines the client-side contract for uploading training
// sets and requesting predictions against them.
type InferenceService interface {
	// Fit uploads X and y unless an identical training set was uploaded
	// before, and returns the server-side train set UID.
	Fit(ctx context.Context, X mat.Matrix, y mat.Vector) (string, error)

	// Predict runs inference for X against trainSetUID. Returns
	// [ErrTrainSetNotFound] when the service no longer knows the train set.
	Predict(ctx context.Context, trainSetUID string, X mat.Matrix, task models.Task, params map[string]any) (models.Prediction, error)
}
