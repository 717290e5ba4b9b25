package models

import "time"

// Credentials are the login form values sent to the service.
type Credentials struct {
	// Email is the account identifier.
	Email string `json:"email"`

	// Password is sent as-is over the (TLS) transport and never stored.
	Password string `json:"password"`
}

// Registration is the payload of the account creation request.
type Registration struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`

	// ValidationLink is an optional link the service embeds into the
	// verification email.
	ValidationLink string `json:"validation_link,omitempty"`
}

// StoredCredential is the access token cached on the local device together
// with the email it was issued for.
type StoredCredential struct {
	Email       string
	AccessToken string
	UpdatedAt   time.Time
}
