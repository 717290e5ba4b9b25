// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tabpfn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
	"github.com/MKhiriev/go-tabpfn-client/models"
	"github.com/spf13/pflag"
)

// state is what a session knows after initialization. auth and inference are
// non-nil exactly when initialized and useServer are both true.
type state struct {
	initialized bool
	useServer   bool
	userEmail   string
	auth        AuthHandle
	inference   InferenceHandle
}

// Session is one client session with the inference service.
type Session struct {
	state state

	connector Connector
	prompter  Prompter
	cacheDir  string
	logger    *logger.Logger

	flags     *pflag.FlagSet
	promptOut io.Writer
	buildInfo *models.AppBuildInfo
}

// NewSession builds an uninitialized session. Collaborators not supplied by
// opts are built from the configuration (flags, TABPFN_* environment, JSON
// file, defaults).
func NewSession(opts ...Option) (*Session, error) {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}

	if s.connector == nil || s.prompter == nil || s.cacheDir == "" || s.logger == nil {
		if err := s.applyDefaults(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Init initializes the session. With useServer false it only marks the
// session initialized and never touches the network. With useServer true it
// connects to the service, reuses a cached token or runs the terms and login
// prompts, and shows new greeting messages.
//
// On failure the session keeps its previous state. A successful call on an
// already initialized session replaces its state and closes the previous
// collaborators.
func (s *Session) Init(ctx context.Context, useServer bool) error {
	if !useServer {
		s.replaceState(state{initialized: true})
		return nil
	}

	s.prompter.PromptWelcome()

	auth, inference, err := s.connector.Connect(ctx)
	if err != nil {
		return fmt.Errorf("error connecting to the inference service: %w", err)
	}

	email, err := s.authenticate(ctx, auth)
	if err != nil {
		closeHandles(s.logger, auth, inference)
		return err
	}

	s.replaceState(state{
		initialized: true,
		useServer:   true,
		userEmail:   email,
		auth:        auth,
		inference:   inference,
	})
	return nil
}

func (s *Session) authenticate(ctx context.Context, auth AuthHandle) (string, error) {
	if !auth.IsAccessibleConnection(ctx) {
		return "", ErrServiceUnreachable
	}

	reused, err := auth.TryReuseExistingToken(ctx)
	if err != nil {
		return "", fmt.Errorf("error reusing access token: %w", err)
	}

	var email string
	if reused {
		s.prompter.PromptReusingExistingToken()
		email = auth.CachedEmail(ctx)
	} else {
		accepted, err := s.prompter.PromptTermsAndConditions(ctx)
		if err != nil {
			return "", fmt.Errorf("error prompting terms and conditions: %w", err)
		}
		if !accepted {
			return "", ErrTermsNotAccepted
		}

		email, err = s.prompter.PromptAndSetToken(ctx, auth)
		if err != nil {
			return "", fmt.Errorf("error authenticating user: %w", err)
		}
	}

	messages, err := auth.RetrieveGreetingMessages(ctx)
	if err != nil {
		return "", fmt.Errorf("error retrieving greeting messages: %w", err)
	}
	s.prompter.PromptRetrievedGreetingMessages(messages)

	return email, nil
}

// Reset drops the session state and removes the cache directory. If the
// session used the service, its cache is invalidated first; a failure to do
// so is logged and does not stop the reset. A missing cache directory is not
// an error.
func (s *Session) Reset(ctx context.Context) error {
	prev := s.state
	s.state = state{}

	if prev.useServer && prev.auth != nil {
		if err := prev.auth.ResetCache(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("failed to invalidate service cache on reset")
		}
	}
	closeHandles(s.logger, prev.auth, prev.inference)

	if s.cacheDir == "" {
		return nil
	}
	if err := os.RemoveAll(s.cacheDir); err != nil {
		return fmt.Errorf("error removing cache directory %s: %w", s.cacheDir, err)
	}
	return nil
}

// Close releases the collaborators without touching the cache. The session
// becomes uninitialized.
func (s *Session) Close() error {
	prev := s.state
	s.state = state{}
	return closeHandles(s.logger, prev.auth, prev.inference)
}

// Initialized reports whether Init completed successfully.
func (s *Session) Initialized() bool { return s.state.initialized }

// UseServer reports whether the session talks to the inference service.
func (s *Session) UseServer() bool { return s.state.useServer }

// UserEmail is the email of the authenticated user, empty when unknown.
func (s *Session) UserEmail() string { return s.state.userEmail }

// AuthHandle returns the authentication collaborator or nil.
func (s *Session) AuthHandle() AuthHandle { return s.state.auth }

// InferenceHandle returns the inference collaborator or nil.
func (s *Session) InferenceHandle() InferenceHandle { return s.state.inference }

// CacheDir is the directory removed by Reset.
func (s *Session) CacheDir() string { return s.cacheDir }

// AccessToken returns the access token of a server session, or an empty
// string.
func (s *Session) AccessToken() string {
	if s.state.auth == nil {
		return ""
	}
	return s.state.auth.AccessToken()
}

func (s *Session) replaceState(next state) {
	prev := s.state
	if prev.initialized {
		s.logger.Warn().
			Bool("use_server", next.useServer).
			Msg("session re-initialized, previous state replaced")
	}
	s.state = next

	if prev.auth != next.auth || prev.inference != next.inference {
		closeHandles(s.logger, prev.auth, prev.inference)
	}
}

func closeHandles(log *logger.Logger, auth AuthHandle, inference InferenceHandle) error {
	var errs []error

	if c, ok := auth.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	if c, ok := inference.(io.Closer); ok {
		if ac, same := auth.(io.Closer); !same || ac != c {
			errs = append(errs, c.Close())
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		log.Warn().Err(err).Msg("failed to close session collaborators")
	}
	return err
}
