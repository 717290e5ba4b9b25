package models

// LoginResponse is returned by the login endpoint.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// RegisterResponse is returned by the registration endpoint. Token is the
// access token of the freshly created account; Message is a human-readable
// notice (typically asking to verify the email address).
type RegisterResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// PasswordPolicy lists the password requirements shown on registration.
type PasswordPolicy struct {
	Requirements []string `json:"requirements"`
}

// EmailVerificationStatus is returned by the verification status endpoint.
type EmailVerificationStatus struct {
	IsVerified bool `json:"is_verified"`
}

// GreetingMessages holds announcements published by the service.
type GreetingMessages struct {
	Messages []string `json:"messages"`
}

// TrainSetUpload carries a CSV-encoded training set.
type TrainSetUpload struct {
	// X is the feature matrix, one row per sample.
	X []byte
	// Y is the target vector, one value per line.
	Y []byte
}

// FitResponse is returned by the fit endpoint.
type FitResponse struct {
	// TrainSetUID identifies the uploaded training set on the server and
	// must be sent with every prediction against it.
	TrainSetUID string `json:"train_set_uid"`
}

// PredictRequest is the input of the predict endpoint.
type PredictRequest struct {
	TrainSetUID string
	Task        Task

	// Config is the JSON-encoded estimator parameter map.
	Config []byte

	// X is the CSV-encoded test feature matrix.
	X []byte
}
