// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-tabpfn-client/internal/config"
	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
	"github.com/MKhiriev/go-tabpfn-client/internal/utils"
	"github.com/MKhiriev/go-tabpfn-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates an httpServiceClient pointed at the test server.
func newTestClient(t *testing.T, serverURL string) *httpServiceClient {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	c, err := NewHTTPServiceClient(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return c.(*httpServiceClient)
}

// newTestServer routes r through httptest and returns the client under test.
func newTestServer(t *testing.T, r chi.Router) *httpServiceClient {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return newTestClient(t, srv.URL)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requireBearer(t *testing.T, r *http.Request, token string) {
	t.Helper()
	assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
}

// ── Health ───────────────────────────────────────────────────────────────────

func TestHealth_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get(pathHealth, func(w http.ResponseWriter, r *http.Request) {
		_, err := uuid.Parse(r.Header.Get(utils.TraceIDHeader))
		assert.NoError(t, err, "expected uuid trace id")
		w.WriteHeader(http.StatusOK)
	})

	c := newTestServer(t, r)
	assert.NoError(t, c.Health(context.Background()))
}

func TestHealth_ServiceDown(t *testing.T) {
	r := chi.NewRouter()
	r.Get(pathHealth, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	c := newTestServer(t, r)
	assert.ErrorIs(t, c.Health(context.Background()), ErrBadGateway)
}

func TestHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url)
	err := c.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "health request")
}

// ── CheckToken ───────────────────────────────────────────────────────────────

func TestCheckToken_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get(pathProtected, func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r, "tok")
		w.WriteHeader(http.StatusOK)
	})

	c := newTestServer(t, r)
	c.SetToken(" tok ")
	assert.NoError(t, c.CheckToken(context.Background()))
}

func TestCheckToken_Unauthorized(t *testing.T) {
	r := chi.NewRouter()
	r.Get(pathProtected, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid token"})
	})

	c := newTestServer(t, r)
	c.SetToken("expired")
	err := c.CheckToken(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid token")
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post(pathLogin, func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Email: "a@b.c", Password: "pw"}, creds)
		writeJSON(w, http.StatusOK, models.LoginResponse{AccessToken: "new-token"})
	})

	c := newTestServer(t, r)
	token, err := c.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
	assert.Equal(t, "new-token", c.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	r := chi.NewRouter()
	r.Post(pathLogin, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("wrong password"))
	})

	c := newTestServer(t, r)
	_, err := c.Login(context.Background(), models.Credentials{Email: "a@b.c"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.Token())
}

func TestLogin_EmptyToken(t *testing.T) {
	r := chi.NewRouter()
	r.Post(pathLogin, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.LoginResponse{})
	})

	c := newTestServer(t, r)
	_, err := c.Login(context.Background(), models.Credentials{})
	assert.ErrorIs(t, err, ErrEmptyAccessToken)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	reg := models.Registration{Email: "a@b.c", Password: "pw", PasswordConfirm: "pw", ValidationLink: "tabpfn-2023"}

	r := chi.NewRouter()
	r.Post(pathRegister, func(w http.ResponseWriter, r *http.Request) {
		var got models.Registration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, reg, got)
		writeJSON(w, http.StatusOK, models.RegisterResponse{Message: "check your inbox", Token: "reg-token"})
	})

	c := newTestServer(t, r)
	resp, err := c.Register(context.Background(), reg)

	require.NoError(t, err)
	assert.Equal(t, "check your inbox", resp.Message)
	assert.Equal(t, "reg-token", c.Token())
}

func TestRegister_Conflict(t *testing.T) {
	r := chi.NewRouter()
	r.Post(pathRegister, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"detail": "User already exists"})
	})

	c := newTestServer(t, r)
	_, err := c.Register(context.Background(), models.Registration{Email: "a@b.c"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "User already exists")
}

func TestRegister_ValidationError(t *testing.T) {
	r := chi.NewRouter()
	r.Post(pathRegister, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": []string{"password too short"}})
	})

	c := newTestServer(t, r)
	_, err := c.Register(context.Background(), models.Registration{Email: "a@b.c"})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "password too short")
}

// ── PasswordPolicy / EmailVerificationStatus / GreetingMessages ─────────────

func TestPasswordPolicy_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get(pathPasswordPolicy, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.PasswordPolicy{Requirements: []string{"Length(8)", "Numbers(1)"}})
	})

	c := newTestServer(t, r)
	policy, err := c.PasswordPolicy(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Length(8)", "Numbers(1)"}, policy.Requirements)
}

func TestEmailVerificationStatus_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get(pathEmailVerification, func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r, "tok")
		assert.Equal(t, "a@b.c", r.URL.Query().Get("email"))
		writeJSON(w, http.StatusOK, models.EmailVerificationStatus{IsVerified: true})
	})

	c := newTestServer(t, r)
	c.SetToken("tok")
	verified, err := c.EmailVerificationStatus(context.Background(), "a@b.c")

	require.NoError(t, err)
	assert.True(t, verified)
}

func TestEmailVerificationStatus_Forbidden(t *testing.T) {
	r := chi.NewRouter()
	r.Get(pathEmailVerification, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	c := newTestServer(t, r)
	_, err := c.EmailVerificationStatus(context.Background(), "a@b.c")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGreetingMessages_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get(pathGreetingMessages, func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r, "tok")
		writeJSON(w, http.StatusOK, models.GreetingMessages{Messages: []string{"hello", "news"}})
	})

	c := newTestServer(t, r)
	c.SetToken("tok")
	messages, err := c.GreetingMessages(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "news"}, messages)
}

// ── Fit / Predict ────────────────────────────────────────────────────────────

func readPart(t *testing.T, r *http.Request, name string) string {
	t.Helper()
	f, _, err := r.FormFile(name)
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	return string(data)
}

func TestFit_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post(pathFit, func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r, "tok")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "1,2\n3,4\n", readPart(t, r, partXFile))
		assert.Equal(t, "0\n1\n", readPart(t, r, partYFile))
		writeJSON(w, http.StatusOK, models.FitResponse{TrainSetUID: "ts-1"})
	})

	c := newTestServer(t, r)
	c.SetToken("tok")
	uid, err := c.Fit(context.Background(), models.TrainSetUpload{X: []byte("1,2\n3,4\n"), Y: []byte("0\n1\n")})

	require.NoError(t, err)
	assert.Equal(t, "ts-1", uid)
}

// dropFirstAttempt closes the connection of the first request without a
// response so the client has to retry, then serves next.
func dropFirstAttempt(t *testing.T, attempts *atomic.Int32, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			conn, _, err := w.(http.Hijacker).Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		next(w, r)
	}
}

func newRetryingClient(t *testing.T, r chi.Router) *httpServiceClient {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := NewHTTPServiceClient(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
		RetryCount:     2,
	}, logger.Nop())
	require.NoError(t, err)
	return c.(*httpServiceClient)
}

func TestFit_RetryResendsFiles(t *testing.T) {
	var attempts atomic.Int32
	r := chi.NewRouter()
	r.Post(pathFit, dropFirstAttempt(t, &attempts, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "1,2\n3,4\n", readPart(t, r, partXFile))
		assert.Equal(t, "0\n1\n", readPart(t, r, partYFile))
		writeJSON(w, http.StatusOK, models.FitResponse{TrainSetUID: "ts-1"})
	}))

	c := newRetryingClient(t, r)
	uid, err := c.Fit(context.Background(), models.TrainSetUpload{X: []byte("1,2\n3,4\n"), Y: []byte("0\n1\n")})

	require.NoError(t, err)
	assert.Equal(t, "ts-1", uid)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestPredict_RetryResendsFileAndFields(t *testing.T) {
	var attempts atomic.Int32
	r := chi.NewRouter()
	r.Post(pathPredict, dropFirstAttempt(t, &attempts, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "5,6\n", readPart(t, r, partXFile))
		assert.Equal(t, "ts-1", r.FormValue(fieldTrainSetID))
		assert.Equal(t, "regression", r.FormValue(fieldTask))
		writeJSON(w, http.StatusOK, map[string]any{"mean": []float64{1.5}})
	}))

	c := newRetryingClient(t, r)
	pred, err := c.Predict(context.Background(), models.PredictRequest{
		TrainSetUID: "ts-1",
		Task:        models.TaskRegression,
		Config:      []byte(`{}`),
		X:           []byte("5,6\n"),
	})

	require.NoError(t, err)
	mean, err := pred.Vector(models.FieldMean)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5}, mean)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestFit_EmptyUID(t *testing.T) {
	r := chi.NewRouter()
	r.Post(pathFit, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.FitResponse{})
	})

	c := newTestServer(t, r)
	_, err := c.Fit(context.Background(), models.TrainSetUpload{X: []byte("1\n"), Y: []byte("0\n")})
	assert.Error(t, err)
}

func TestPredict_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post(pathPredict, func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r, "tok")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "5,6\n", readPart(t, r, partXFile))
		assert.Equal(t, "ts-1", r.FormValue(fieldTrainSetID))
		assert.Equal(t, "classification", r.FormValue(fieldTask))
		assert.JSONEq(t, `{"n_estimators":4}`, r.FormValue(fieldConfig))
		writeJSON(w, http.StatusOK, map[string]any{"probas": [][]float64{{0.1, 0.9}}})
	})

	c := newTestServer(t, r)
	c.SetToken("tok")
	pred, err := c.Predict(context.Background(), models.PredictRequest{
		TrainSetUID: "ts-1",
		Task:        models.TaskClassification,
		Config:      []byte(`{"n_estimators":4}`),
		X:           []byte("5,6\n"),
	})

	require.NoError(t, err)
	probas, err := pred.Matrix(models.FieldProbas)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.1, 0.9}}, probas)
}

func TestPredict_TrainSetNotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Post(pathPredict, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "train set not found"})
	})

	c := newTestServer(t, r)
	_, err := c.Predict(context.Background(), models.PredictRequest{TrainSetUID: "gone", Task: models.TaskRegression})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPredict_MalformedBody(t *testing.T) {
	r := chi.NewRouter()
	r.Post(pathPredict, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[1,2,3]`))
	})

	c := newTestServer(t, r)
	_, err := c.Predict(context.Background(), models.PredictRequest{TrainSetUID: "ts"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode predict response")
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestMapHTTPError_StatusCodes(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			r := chi.NewRouter()
			r.Get(pathHealth, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			c := newTestServer(t, r)
			assert.ErrorIs(t, c.Health(context.Background()), tt.want)
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Get(pathHealth, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	c := newTestServer(t, r)
	err := c.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "full url", input: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash", input: "https://api.example.com/", want: "https://api.example.com"},
		{name: "no scheme", input: "localhost:8080", want: "http://localhost:8080"},
		{name: "spaces", input: "  http://h:1  ", want: "http://h:1"},
		{name: "empty", input: "", wantErr: true},
		{name: "no host", input: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServiceClient_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServiceClient(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}
