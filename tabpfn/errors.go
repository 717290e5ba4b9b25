package tabpfn

import (
	"errors"

	"github.com/MKhiriev/go-tabpfn-client/internal/app"
	"github.com/MKhiriev/go-tabpfn-client/internal/service"
	"github.com/MKhiriev/go-tabpfn-client/internal/tui"
)

// Fatal conditions returned by [Session] and the estimators.
var (
	ErrServiceUnreachable = errors.New(app.MsgServiceUnreachable)
	ErrTermsNotAccepted   = errors.New(app.MsgTermsNotAccepted)
	ErrEmailNotVerified   = errors.New(app.MsgEmailNotVerified)
	ErrNotInitialized     = errors.New(app.MsgNotInitialized)
	ErrNotFitted          = errors.New(app.MsgNotFitted)
	ErrServerModeRequired = errors.New(app.MsgServerModeRequired)
	ErrUnsupportedMetric  = errors.New(app.MsgUnsupportedMetric)
	ErrInvalidInput       = errors.New(app.MsgInvalidInput)
	ErrPredictionShape    = errors.New(app.MsgPredictionShape)
)

// ErrUnsupportedModel is never returned. It is recorded as a warning by Fit
// when the estimator names a model other than [HostedModel].
var ErrUnsupportedModel = errors.New(app.MsgUnsupportedModel)

// Errors of the collaborators that callers may want to match.
var (
	// ErrTrainSetExpired is returned by predict when the service dropped the
	// training set. Fit the estimator again.
	ErrTrainSetExpired = service.ErrTrainSetNotFound

	// ErrUserQuit is returned by Init when the user left a prompt.
	ErrUserQuit = tui.ErrUserQuit
)
