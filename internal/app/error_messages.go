// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared user-facing message strings used by the SDK
// errors, the prompt agent and the CLI.
//
// Keeping them in one place ensures consistent wording between the error
// returned by the SDK and what the prompt agent prints for the same event.
package app

const (
	// MsgServiceUnreachable is reported when the health check of the
	// inference service fails during initialization.
	MsgServiceUnreachable = "TabPFN is inaccessible at the moment, please try again later"

	// MsgTermsNotAccepted is reported when the user declines the terms and
	// conditions prompt.
	MsgTermsNotAccepted = "you must agree to the terms and conditions to use TabPFN"

	// MsgEmailNotVerified is reported when an estimator is built for an
	// account whose email address has not been confirmed yet.
	MsgEmailNotVerified = "Dear User, your email has not been verified. Please, check your mailbox, verify your email and try again!"

	// MsgNotInitialized is reported by fit and predict before a session was
	// initialized.
	MsgNotInitialized = "tabpfn is not initialized, call Session.Init first"

	// MsgNotFitted is reported by predict before a successful fit.
	MsgNotFitted = "estimator is not fitted yet, call Fit first"

	// MsgServerModeRequired is reported when fitting in a session that was
	// initialized without the inference service.
	MsgServerModeRequired = "local fitting is not implemented, initialize the session with the inference service"

	// MsgUnsupportedMetric is reported when a regressor cannot map its
	// optimize metric onto a prediction field.
	MsgUnsupportedMetric = "optimize metric is not supported"

	// MsgUnsupportedModel is the warning recorded when an estimator names a
	// model other than the hosted one.
	MsgUnsupportedModel = "only 'latest_tabpfn_hosted' model is supported at the moment for the hosted service"

	// MsgInvalidInput is reported when the training or prediction matrices
	// have inconsistent shapes.
	MsgInvalidInput = "invalid input"

	// MsgPredictionShape is reported when the service answers with a
	// different number of rows than were sent.
	MsgPredictionShape = "prediction does not match the rows of X"

	// MsgWrongCredentials is shown when login is rejected by the service.
	MsgWrongCredentials = "wrong email or password"

	// MsgEmailAlreadyRegistered is shown when registration is rejected
	// because the account already exists.
	MsgEmailAlreadyRegistered = "email is already registered"

	// MsgTokenIsExpiredOrInvalid is reported when the service refuses the
	// bearer token.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgTrainSetNotFound is reported when the service no longer knows the
	// uploaded training set. The estimator must be fitted again.
	MsgTrainSetNotFound = "train set is not known to the service anymore, fit the estimator again"
)

// Prompt agent texts.
const (
	// MsgWelcome is the banner shown once when a server session starts.
	MsgWelcome = "Welcome to TabPFN!"

	// MsgWelcomeNotice follows the banner.
	MsgWelcomeNotice = "TabPFN is still under active development, and we are working hard to make it better. " +
		"Please bear with us if you encounter any issues."

	// MsgReusingToken is printed when a cached access token was accepted.
	MsgReusingToken = "Found existing access token, reusing it for authentication."

	// MsgTermsAndConditions is shown before asking for acceptance.
	MsgTermsAndConditions = "By using TabPFN, you agree to the following terms and conditions:\n\n" +
		"Please refrain from uploading any personally identifiable or otherwise sensitive data. " +
		"Uploaded datasets are stored on the service to answer prediction requests and can be removed " +
		"by resetting the client."

	// MsgTermsQuestion is the y/n question of the terms prompt.
	MsgTermsQuestion = "Do you agree to the above terms and conditions? (y/n)"

	// MsgGreetingHeader precedes the list of new greeting messages.
	MsgGreetingHeader = "Messages from the TabPFN team:"

	// MsgVerifyEmail is printed after a successful registration.
	MsgVerifyEmail = "We have sent you an email with a verification link. Please verify your email before using an estimator."
)
