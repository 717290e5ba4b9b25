package tabpfn

import (
	"context"

	"github.com/MKhiriev/go-tabpfn-client/models"
	"gonum.org/v1/gonum/mat"
)

//go:generate mockgen -source=interfaces.go -destination=internal/mock/tabpfn_mock.go -package=mock

// AuthHandle is the authentication collaborator of a session.
type AuthHandle interface {
	// IsAccessibleConnection reports whether the service can be reached.
	IsAccessibleConnection(ctx context.Context) bool

	// TryReuseExistingToken installs a previously cached token if the
	// service still accepts it.
	TryReuseExistingToken(ctx context.Context) (bool, error)

	// CachedEmail returns the email of the reused credential, if known.
	CachedEmail(ctx context.Context) string

	// Login, Register and PasswordPolicy back the interactive login flow.
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, reg models.Registration) (string, error)
	PasswordPolicy(ctx context.Context) ([]string, error)

	// GetUserEmailVerificationStatus reports whether email was verified.
	GetUserEmailVerificationStatus(ctx context.Context, email string) (bool, error)

	// RetrieveGreetingMessages returns the messages not shown before.
	RetrieveGreetingMessages(ctx context.Context) ([]string, error)

	// ResetCache invalidates every locally cached credential and upload.
	ResetCache(ctx context.Context) error

	// AccessToken returns the installed access token.
	AccessToken() string
}

// InferenceHandle is the inference collaborator of a session.
type InferenceHandle interface {
	// Fit uploads the training set and returns its server-side UID.
	Fit(ctx context.Context, X mat.Matrix, y mat.Vector) (string, error)

	// Predict runs task for X against the training set trainSetUID. params is
	// the estimator parameter map.
	Predict(ctx context.Context, trainSetUID string, X mat.Matrix, task models.Task, params map[string]any) (models.Prediction, error)
}

// Connector builds the collaborators of a server session. Handles that
// implement io.Closer are closed when the session replaces or drops them.
type Connector interface {
	Connect(ctx context.Context) (AuthHandle, InferenceHandle, error)
}

// Prompter interacts with the user during initialization.
type Prompter interface {
	PromptWelcome()
	PromptReusingExistingToken()

	// PromptTermsAndConditions reports whether the user accepted the terms.
	PromptTermsAndConditions(ctx context.Context) (bool, error)

	// PromptAndSetToken runs login or registration against auth and returns
	// the email of the authenticated account.
	PromptAndSetToken(ctx context.Context, auth AuthHandle) (string, error)

	PromptRetrievedGreetingMessages(messages []string)
}
